package rpc_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sabouaram/pogoclient/auth"
	"github.com/sabouaram/pogoclient/crypt"
	"github.com/sabouaram/pogoclient/envelope"
	"github.com/sabouaram/pogoclient/hash"
	"github.com/sabouaram/pogoclient/requests"
	. "github.com/sabouaram/pogoclient/rpc"
	"github.com/sabouaram/pogoclient/rpcstate"
	"github.com/sabouaram/pogoclient/transport"
)

type fakePool struct {
	responses []transport.Response
	errs      []error
	calls     []string
	bodies    [][]byte
}

func (f *fakePool) Post(ctx context.Context, url string, headers map[string]string, body []byte, proxyURL string) (transport.Response, error) {
	i := len(f.calls)
	f.calls = append(f.calls, url)
	f.bodies = append(f.bodies, body)
	var resp transport.Response
	var err error
	if i < len(f.responses) {
		resp = f.responses[i]
	}
	if i < len(f.errs) {
		err = f.errs[i]
	}
	return resp, err
}

func (f *fakePool) Close() {}

type fakeHash struct{}

func (fakeHash) Hash(ctx context.Context, in hash.Input) (hash.Hashes, error) {
	return hash.Hashes{LocationHash: 1, LocationAuthHash: -2, RequestHashes: []int64{42}}, nil
}

type fakeAuth struct {
	token     string
	ticket    auth.Ticket
	has       bool
	refreshes int
}

func (a *fakeAuth) Provider() auth.Provider { return auth.ProviderPtc }
func (a *fakeAuth) GetAccessToken(ctx context.Context, forceRefresh bool) (string, error) {
	if forceRefresh {
		a.refreshes++
	}
	return a.token, nil
}
func (a *fakeAuth) HasTicket() bool           { return a.has }
func (a *fakeAuth) GetTicket() auth.Ticket    { return a.ticket }
func (a *fakeAuth) SetTicket(t auth.Ticket)   { a.ticket = t; a.has = true }
func (a *fakeAuth) IsNewTicket(ms int64) bool { return !a.has || ms > a.ticket.ExpireMs }
func (a *fakeAuth) CheckTicket() bool         { return false }

func newTestEngine(pool transport.Pool, a auth.Auth) (*Engine, error) {
	key, err := crypt.GenKey()
	if err != nil {
		return nil, err
	}
	enc, err := crypt.New(key)
	if err != nil {
		return nil, err
	}
	st, err := rpcstate.New()
	if err != nil {
		return nil, err
	}
	return New("https://pgorelease.nianticlabs.com/plfe/rpc", pool, fakeHash{}, a, st, enc,
		DeviceInfo{Fields: map[string]string{"device_id": "abc"}}, 1, nil), nil
}

func responseBytes(env envelope.ResponseEnvelope) []byte {
	return env.Marshal()
}

var _ = Describe("Engine.Call", func() {
	It("fails fast without a player position, before touching the transport", func() {
		pool := &fakePool{}
		e, err := newTestEngine(pool, &fakeAuth{token: "ABC"})
		Expect(err).ToNot(HaveOccurred())

		_, callErr := e.Call(context.Background(), []SubrequestSpec{{Type: requests.TypeGetPlayer}}, Position{})
		Expect(callErr).To(HaveOccurred())
		Expect(pool.calls).To(BeEmpty())
	})

	It("sends auth_info when there is no cached ticket", func() {
		raw := responseBytes(envelope.ResponseEnvelope{StatusCode: 1})
		pool := &fakePool{responses: []transport.Response{{StatusCode: 200, Body: raw}}}
		e, err := newTestEngine(pool, &fakeAuth{token: "ABC"})
		Expect(err).ToNot(HaveOccurred())

		responses, callErr := e.Call(context.Background(), []SubrequestSpec{{Type: requests.TypeGetPlayer}}, Position{Latitude: 47.5, Longitude: 19.05})
		Expect(callErr).ToNot(HaveOccurred())
		Expect(responses).To(HaveLen(1))
		Expect(pool.calls).To(HaveLen(1))

		sent, decErr := envelope.UnmarshalRequestEnvelope(pool.bodies[0])
		Expect(decErr).ToNot(HaveOccurred())
		Expect(sent.AuthTicket).To(BeNil())
		Expect(sent.AuthInfo).ToNot(BeNil())
		Expect(sent.AuthInfo.Token.Contents).To(Equal("ABC"))
	})

	It("follows a redirect exactly once", func() {
		redirect := responseBytes(envelope.ResponseEnvelope{StatusCode: 53, ApiUrl: "https://foo.example/rpc"})
		ok := responseBytes(envelope.ResponseEnvelope{StatusCode: 1})
		pool := &fakePool{responses: []transport.Response{
			{StatusCode: 200, Body: redirect},
			{StatusCode: 200, Body: ok},
		}}
		e, err := newTestEngine(pool, &fakeAuth{token: "ABC"})
		Expect(err).ToNot(HaveOccurred())

		_, callErr := e.Call(context.Background(), []SubrequestSpec{{Type: requests.TypeGetPlayer}}, Position{Latitude: 47.5, Longitude: 19.05})
		Expect(callErr).ToNot(HaveOccurred())
		Expect(pool.calls).To(HaveLen(2))
		Expect(pool.calls[1]).To(Equal("https://foo.example/rpc"))
	})

	It("refreshes the token exactly once on an expired-auth status", func() {
		expired := responseBytes(envelope.ResponseEnvelope{StatusCode: 102})
		ok := responseBytes(envelope.ResponseEnvelope{StatusCode: 1})
		pool := &fakePool{responses: []transport.Response{
			{StatusCode: 200, Body: expired},
			{StatusCode: 200, Body: ok},
		}}
		a := &fakeAuth{token: "ABC"}
		e, err := newTestEngine(pool, a)
		Expect(err).ToNot(HaveOccurred())

		_, callErr := e.Call(context.Background(), []SubrequestSpec{{Type: requests.TypeGetPlayer}}, Position{Latitude: 47.5, Longitude: 19.05})
		Expect(callErr).ToNot(HaveOccurred())
		Expect(pool.calls).To(HaveLen(2))
		Expect(a.refreshes).To(Equal(1))
	})
})
