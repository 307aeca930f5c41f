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

// Package auth is Component C, the Auth Provider: produces a bearer access token
// (PTC's web-OAuth CAS flow, or Google's device-login flow) and caches the
// server-issued session ticket the RPC engine prefers once one is available.
package auth

import (
	"context"
	"time"
)

// Provider distinguishes the two supported login flavors.
type Provider uint8

const (
	ProviderPtc Provider = iota
	ProviderGoogle
)

// Ticket is the server-issued short-lived session credential carried in an
// envelope's auth_ticket field in lieu of the OAuth bearer token.
type Ticket struct {
	ExpireMs int64
	Start    []byte
	End      []byte
}

// ticketExpiryBufferMs is how far ahead of the real expiry the ticket is
// considered stale, so a call never races the server's own clock.
const ticketExpiryBufferMs = 10_000

// Auth is the contract the RPC engine drives for both PTC and Google providers.
type Auth interface {
	Provider() Provider

	// GetAccessToken returns the cached token if still valid, otherwise performs
	// a fresh login (PTC) or refresh-token exchange (Google). forceRefresh skips
	// the cache check entirely, e.g. after a status-102 InvalidAuthToken.
	GetAccessToken(ctx context.Context, forceRefresh bool) (string, error)

	HasTicket() bool
	GetTicket() Ticket
	SetTicket(t Ticket)
	// IsNewTicket reports whether a just-observed ticket is newer than the
	// cached one and should replace it.
	IsNewTicket(expireMs int64) bool
	// CheckTicket reports whether the cached ticket is still inside its valid
	// window (now < expire_ms - 10s).
	CheckTicket() bool
}

// Clock is overridable for deterministic tests.
type Clock func() time.Time
