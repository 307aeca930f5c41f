package transport_test

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sabouaram/pogoclient/transport"
)

var _ = Describe("Pool.Post", func() {
	It("returns the response body and status", func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			Expect(r.Header.Get("Content-Type")).To(Equal("application/octet-stream"))
			w.Write([]byte("ok"))
		}))
		defer srv.Close()

		p := transport.New(transport.DefaultOptions(), nil)
		defer p.Close()

		resp, err := p.Post(context.Background(), srv.URL, nil, []byte("payload"), "")
		Expect(err).ToNot(HaveOccurred())
		Expect(string(resp.Body)).To(Equal("ok"))
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
	})

	It("surfaces a non-2xx status as an error while still returning the response", func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		p := transport.New(transport.DefaultOptions(), nil)
		defer p.Close()

		resp, err := p.Post(context.Background(), srv.URL, nil, nil, "")
		Expect(err).To(HaveOccurred())
		Expect(resp.StatusCode).To(Equal(http.StatusInternalServerError))
	})

	It("rejects an unsupported proxy scheme", func() {
		p := transport.New(transport.DefaultOptions(), nil)
		defer p.Close()

		_, err := p.Post(context.Background(), "http://example.com", nil, nil, "ftp://x")
		Expect(err).To(HaveOccurred())
	})

	It("relays a request through a hand-rolled SOCKS4 CONNECT handshake", func() {
		backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("via-socks4"))
		}))
		defer backend.Close()
		backendHost := strings.TrimPrefix(backend.URL, "http://")

		ln, err := net.Listen("tcp", "127.0.0.1:0")
		Expect(err).ToNot(HaveOccurred())
		defer ln.Close()

		go func() {
			defer GinkgoRecover()
			conn, aerr := ln.Accept()
			if aerr != nil {
				return
			}
			defer conn.Close()

			req := make([]byte, 256)
			n, rerr := conn.Read(req)
			Expect(rerr).ToNot(HaveOccurred())
			Expect(n).To(BeNumerically(">=", 9))
			Expect(req[0]).To(BeEquivalentTo(0x04))
			Expect(req[1]).To(BeEquivalentTo(0x01))

			_, werr := conn.Write([]byte{0x00, 0x5a, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00})
			Expect(werr).ToNot(HaveOccurred())

			upstream, derr := net.Dial("tcp", backendHost)
			Expect(derr).ToNot(HaveOccurred())
			defer upstream.Close()

			go io.Copy(upstream, conn)
			io.Copy(conn, upstream)
		}()

		p := transport.New(transport.DefaultOptions(), nil)
		defer p.Close()

		resp, err := p.Post(context.Background(), backend.URL, nil, []byte("payload"), "socks4://"+ln.Addr().String())
		Expect(err).ToNot(HaveOccurred())
		Expect(string(resp.Body)).To(Equal("via-socks4"))
	})
})
