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

// Package certificates builds the tls.Config profiles the transport pool attaches
// to its connectors. The remote service pins its own certificate chain and the
// client never validates it, so the only profile in practice is "skip verify" —
// but the type stays distinct from a raw bool so a future pinned-CA profile has
// somewhere to live without touching transport.
package certificates

import "crypto/tls"

// Profile describes how a connector should treat the remote TLS certificate.
type Profile struct {
	// InsecureSkipVerify mirrors the remote service's pinned-cert posture: the
	// client does not validate the server chain.
	InsecureSkipVerify bool
	ServerName         string
	MinVersion         uint16
}

// DefaultProfile matches the Niantic endpoints: no verification, TLS 1.2 floor.
func DefaultProfile() Profile {
	return Profile{
		InsecureSkipVerify: true,
		MinVersion:         tls.VersionTLS12,
	}
}

// Config renders the profile into a *tls.Config ready to attach to an http.Transport.
func (p Profile) Config() *tls.Config {
	return &tls.Config{
		InsecureSkipVerify: p.InsecureSkipVerify,
		ServerName:         p.ServerName,
		MinVersion:         p.MinVersion,
	}
}
