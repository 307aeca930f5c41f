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

// Package netproto classifies proxy URLs by scheme, the way the teacher's
// network/protocol package classifies network addresses by an enum instead of
// comparing raw strings scattered across callers.
package netproto

import (
	"fmt"
	"net/url"
	"strings"
)

// Scheme is the proxy transport a Transport Pool connector must speak.
type Scheme uint8

const (
	SchemeDirect Scheme = iota
	SchemeHTTP
	SchemeSocks4
	SchemeSocks5
)

func (s Scheme) String() string {
	switch s {
	case SchemeHTTP:
		return "http"
	case SchemeSocks4:
		return "socks4"
	case SchemeSocks5:
		return "socks5"
	default:
		return "direct"
	}
}

// IsSocks reports whether the scheme requires the SOCKS connector rather than
// the plain TCP/TLS one.
func (s Scheme) IsSocks() bool {
	return s == SchemeSocks4 || s == SchemeSocks5
}

// Classify parses a proxy URL string ("", "http://..", "socks4://..", "socks5://..")
// into its Scheme and a parsed *url.URL. An empty string classifies as SchemeDirect.
func Classify(raw string) (Scheme, *url.URL, error) {
	if raw == "" {
		return SchemeDirect, nil, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return SchemeDirect, nil, fmt.Errorf("netproto: invalid proxy url: %w", err)
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return SchemeHTTP, u, nil
	case "socks4", "socks4a":
		return SchemeSocks4, u, nil
	case "socks5", "socks5h":
		return SchemeSocks5, u, nil
	default:
		return SchemeDirect, u, fmt.Errorf("netproto: unsupported proxy scheme %q", u.Scheme)
	}
}
