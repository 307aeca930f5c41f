/*
 * MIT License
 *
 * Copyright (c) 2023 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

// Package transport is Component A, the Transport Pool: a small set of shared
// HTTP(S) connectors keyed by direct-vs-SOCKS-via-proxy, exposing a single
// post(url, headers, body, proxy?) primitive with bounded keepalive reuse.
package transport

import (
	"context"
	"time"
)

// Response is what Post returns on any completed HTTP round trip, successful or
// not — callers that need to inspect status code or headers (the hash oracle's
// quota-header harvest) don't have to re-derive them from the error.
type Response struct {
	StatusCode int
	Header     map[string][]string
	Body       []byte
}

// Pool posts raw bytes through an *http.Client chosen by proxy.
type Pool interface {
	// Post sends body to url with the given headers through the connector
	// appropriate for proxyURL ("" for direct). A non-2xx status is still
	// returned in Response alongside a non-nil ErrorHTTPStatus error, so callers
	// that need the body or headers of an error response (the hash oracle's
	// status-code dispatch table) can read Response even when err != nil.
	Post(ctx context.Context, url string, headers map[string]string, body []byte, proxyURL string) (Response, error)

	// Close tears down every connector the pool has created.
	Close()
}

// Options configures the pool's connectors.
type Options struct {
	// MaxConnsPerHost bounds each connector's simultaneous connections (~300-400
	// per the spec).
	MaxConnsPerHost int
	// ConnectTimeout bounds dialing (~5s per the spec).
	ConnectTimeout time.Duration
	// IdleConnTimeout bounds how long an idle connection is kept before the pool
	// forces a fresh dial. The hashing endpoint needs this set low (~7.5s) because
	// its load balancer silently drops long-idle TLS sessions; the RPC endpoint
	// can use a longer default.
	IdleConnTimeout time.Duration
}

// DefaultOptions matches the RPC endpoint's tolerances.
func DefaultOptions() Options {
	return Options{
		MaxConnsPerHost: 350,
		ConnectTimeout:  5 * time.Second,
		IdleConnTimeout: 60 * time.Second,
	}
}

// HashOptions matches the spec's ~7.5s idle-eviction requirement for hashing
// sessions, whose load balancer drops long-idle TLS connections silently.
func HashOptions() Options {
	o := DefaultOptions()
	o.IdleConnTimeout = 7500 * time.Millisecond
	return o
}
