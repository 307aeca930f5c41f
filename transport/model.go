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

package transport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"golang.org/x/net/proxy"

	"github.com/sabouaram/pogoclient/certificates"
	liberr "github.com/sabouaram/pogoclient/errors"
	"github.com/sabouaram/pogoclient/logger"
	"github.com/sabouaram/pogoclient/netproto"
)

// pool lazily creates connectors on demand: one for direct/HTTP-proxy traffic
// (a plain *http.Transport with TLS verification disabled to match the remote
// service's pinned certs), one per SOCKS5 proxy host (dialing through
// golang.org/x/net/proxy, which only speaks SOCKS5), and one per SOCKS4/4a
// proxy host (a hand-rolled CONNECT handshake, since golang.org/x/net/proxy
// exposes no SOCKS4 dialer). Connections recycle through the stdlib's own
// IdleConnTimeout bookkeeping, which implements the same
// "evict-on-reacquire-if-stale" behavior the spec describes for the teacher's
// timed connector, without a hand-rolled connection cache.
type pool struct {
	opts Options
	log  logger.Logger

	mu      sync.Mutex
	direct  *http.Client
	socks   map[string]*http.Client
	clients []*http.Client
}

// New builds a Pool. log may be nil, in which case the package default is used.
func New(opts Options, log logger.Logger) Pool {
	if log == nil {
		log = logger.Default()
	}
	return &pool{opts: opts, log: log, socks: make(map[string]*http.Client)}
}

func (p *pool) baseTransport() *http.Transport {
	return &http.Transport{
		MaxConnsPerHost:     p.opts.MaxConnsPerHost,
		MaxIdleConnsPerHost: p.opts.MaxConnsPerHost,
		IdleConnTimeout:     p.opts.IdleConnTimeout,
		TLSClientConfig:     certificates.DefaultProfile().Config(),
		DialContext: (&net.Dialer{
			Timeout: p.opts.ConnectTimeout,
		}).DialContext,
	}
}

func (p *pool) directClient() *http.Client {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.direct == nil {
		p.direct = &http.Client{Transport: p.baseTransport()}
		p.clients = append(p.clients, p.direct)
	}
	return p.direct
}

func (p *pool) socksClient(u *url.URL) (*http.Client, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	key := u.Host
	if c, ok := p.socks[key]; ok {
		return c, nil
	}

	var auth *proxy.Auth
	if u.User != nil {
		pass, _ := u.User.Password()
		auth = &proxy.Auth{User: u.User.Username(), Password: pass}
	}

	dialer, err := proxy.SOCKS5("tcp", u.Host, auth, &net.Dialer{Timeout: p.opts.ConnectTimeout})
	if err != nil {
		return nil, ErrorProxy.Error(err)
	}

	tr := p.baseTransport()
	tr.DialContext = func(ctx context.Context, network, addr string) (net.Conn, error) {
		return dialer.Dial(network, addr)
	}

	c := &http.Client{Transport: tr}
	p.socks[key] = c
	p.clients = append(p.clients, c)
	return c, nil
}

// socks4Client builds (or reuses) a connector for a socks4://socks4a:// proxy
// host, wiring a hand-rolled SOCKS4/4a CONNECT handshake into the transport's
// DialContext. golang.org/x/net/proxy implements SOCKS5 only, so SOCKS4
// cannot reuse socksClient's dialer.
func (p *pool) socks4Client(u *url.URL) (*http.Client, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	key := "4:" + u.Host
	if c, ok := p.socks[key]; ok {
		return c, nil
	}

	userID := ""
	if u.User != nil {
		userID = u.User.Username()
	}
	proxyAddr := u.Host
	dialer := &net.Dialer{Timeout: p.opts.ConnectTimeout}

	tr := p.baseTransport()
	tr.DialContext = func(ctx context.Context, network, addr string) (net.Conn, error) {
		conn, err := dialer.DialContext(ctx, "tcp", proxyAddr)
		if err != nil {
			return nil, err
		}
		if err := socks4Connect(conn, addr, userID); err != nil {
			conn.Close()
			return nil, err
		}
		return conn, nil
	}

	c := &http.Client{Transport: tr}
	p.socks[key] = c
	p.clients = append(p.clients, c)
	return c, nil
}

// socks4Connect performs a SOCKS4/4a CONNECT request over conn: version byte
// 0x04, command byte 0x01, the target port and address, and a (possibly
// empty) userid string, each null-terminated. A non-IPv4 or unresolved host
// falls back to SOCKS4a, signalling with the 0.0.0.1 address and appending
// the hostname after the userid.
func socks4Connect(conn net.Conn, targetAddr, userID string) error {
	host, portStr, err := net.SplitHostPort(targetAddr)
	if err != nil {
		return err
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return fmt.Errorf("socks4: invalid target port %q: %w", portStr, err)
	}

	req := []byte{0x04, 0x01, byte(port >> 8), byte(port)}

	ip4 := net.ParseIP(host)
	if ip4 != nil {
		ip4 = ip4.To4()
	}

	socks4a := ip4 == nil
	if socks4a {
		req = append(req, 0, 0, 0, 1)
	} else {
		req = append(req, ip4...)
	}
	req = append(req, []byte(userID)...)
	req = append(req, 0)
	if socks4a {
		req = append(req, []byte(host)...)
		req = append(req, 0)
	}

	if _, err := conn.Write(req); err != nil {
		return fmt.Errorf("socks4: sending connect request: %w", err)
	}

	resp := make([]byte, 8)
	if _, err := io.ReadFull(conn, resp); err != nil {
		return fmt.Errorf("socks4: reading connect reply: %w", err)
	}
	if resp[1] != 0x5a {
		return fmt.Errorf("socks4: connect request rejected or failed, code %#x", resp[1])
	}
	return nil
}

func (p *pool) clientFor(proxyURL string) (*http.Client, error) {
	scheme, u, err := netproto.Classify(proxyURL)
	if err != nil {
		return nil, ErrorProxy.Error(err)
	}

	switch scheme {
	case netproto.SchemeDirect:
		return p.directClient(), nil
	case netproto.SchemeHTTP:
		c := *p.directClient()
		tr := p.baseTransport()
		tr.Proxy = http.ProxyURL(u)
		c.Transport = tr
		return &c, nil
	case netproto.SchemeSocks4:
		return p.socks4Client(u)
	case netproto.SchemeSocks5:
		return p.socksClient(u)
	default:
		return nil, ErrorProxy.Errorf("unsupported proxy scheme")
	}
}

func (p *pool) Post(ctx context.Context, rawURL string, headers map[string]string, body []byte, proxyURL string) (Response, error) {
	client, err := p.clientFor(proxyURL)
	if err != nil {
		return Response{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, bytes.NewReader(body))
	if err != nil {
		return Response{}, ErrorUnexpected.Error(err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/octet-stream")
	}

	p.log.WithFields(logger.Fields{"url": rawURL, "proxy": proxyURL}).Debug("transport: posting")

	resp, err := client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return Response{}, ErrorTimeout.Error(err)
		}
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return Response{}, ErrorTimeout.Error(err)
		}
		return Response{}, ErrorNetwork.Error(err)
	}
	defer resp.Body.Close()

	out, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, ErrorNetwork.Error(err)
	}

	r := Response{StatusCode: resp.StatusCode, Header: map[string][]string(resp.Header), Body: out}

	if resp.StatusCode >= 400 {
		return r, ErrorHTTPStatus.Errorf("unexpected status %d", resp.StatusCode)
	}

	return r, nil
}

func (p *pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, c := range p.clients {
		c.CloseIdleConnections()
	}
}
