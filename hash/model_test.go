package hash_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sabouaram/pogoclient/hash"
	"github.com/sabouaram/pogoclient/transport"
)

var _ = Describe("Client.Hash", func() {
	It("parses requestHashes/locationAuthHash as signed integers", func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			Expect(r.Header.Get("X-AuthToken")).To(Equal("K1"))
			w.Write([]byte(`{"locationAuthHash":4294967295,"locationHash":1,"requestHashes":[18446744073709551615]}`))
		}))
		defer srv.Close()

		pool := transport.New(transport.HashOptions(), nil)
		defer pool.Close()

		c := hash.New(pool, srv.URL, []string{"K1"}, nil)
		out, err := c.Hash(context.Background(), hash.Input{Latitude: 1, Longitude: 2, Accuracy: 10})
		Expect(err).ToNot(HaveOccurred())
		Expect(out.LocationHash).To(BeEquivalentTo(1))
		Expect(out.LocationAuthHash).To(BeEquivalentTo(-1))
		Expect(out.RequestHashes[0]).To(BeEquivalentTo(-1))
	})

	It("rotates to the second key immediately on a multi-key 429", func() {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			n := atomic.AddInt32(&calls, 1)
			key := r.Header.Get("X-AuthToken")
			if n == 1 {
				Expect(key).To(Equal("K1"))
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			Expect(key).To(Equal("K2"))
			w.Write([]byte(`{"locationAuthHash":0,"locationHash":0,"requestHashes":[]}`))
		}))
		defer srv.Close()

		pool := transport.New(transport.HashOptions(), nil)
		defer pool.Close()

		c := hash.New(pool, srv.URL, []string{"K1", "K2"}, nil)
		_, err := c.Hash(context.Background(), hash.Input{})
		Expect(err).ToNot(HaveOccurred())
		Expect(atomic.LoadInt32(&calls)).To(BeEquivalentTo(2))
	})

	It("retries the same key below the 400-failure eviction threshold", func() {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			n := atomic.AddInt32(&calls, 1)
			if n <= 2 {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			w.Write([]byte(`{"locationAuthHash":0,"locationHash":0,"requestHashes":[]}`))
		}))
		defer srv.Close()

		pool := transport.New(transport.HashOptions(), nil)
		defer pool.Close()

		c := hash.New(pool, srv.URL, []string{"ONLY"}, nil)
		_, err := c.Hash(context.Background(), hash.Input{})
		Expect(err).ToNot(HaveOccurred())
	})

	It("sleeps until the period end then retries the same single key on 429", func() {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			n := atomic.AddInt32(&calls, 1)
			key := r.Header.Get("X-AuthToken")
			Expect(key).To(Equal("ONLY"))
			if n == 1 {
				periodEnd := time.Now().Add(-200 * time.Millisecond).Unix()
				w.Header().Set("X-RatePeriodEnd", strconv.FormatInt(periodEnd, 10))
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			w.Write([]byte(`{"locationAuthHash":0,"locationHash":0,"requestHashes":[]}`))
		}))
		defer srv.Close()

		pool := transport.New(transport.HashOptions(), nil)
		defer pool.Close()

		c := hash.New(pool, srv.URL, []string{"ONLY"}, nil)
		_, err := c.Hash(context.Background(), hash.Input{})
		Expect(err).ToNot(HaveOccurred())
		Expect(atomic.LoadInt32(&calls)).To(BeEquivalentTo(2))
	})

	It("gives up on a single-key 429 once the context is cancelled during the wait", func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			periodEnd := time.Now().Add(5 * time.Second).Unix()
			w.Header().Set("X-RatePeriodEnd", strconv.FormatInt(periodEnd, 10))
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		pool := transport.New(transport.HashOptions(), nil)
		defer pool.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		c := hash.New(pool, srv.URL, []string{"ONLY"}, nil)
		_, err := c.Hash(ctx, hash.Input{})
		Expect(err).To(HaveOccurred())
		Expect(err).To(MatchError(context.DeadlineExceeded))
	})
})
