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

// Package hash is Component B, the Hash Oracle Client: it calls an external
// hashing service with a canonical payload and manages one or more API keys with
// per-key quota status, rotation on quota exhaustion, and removal on expiry.
package hash

import (
	"context"
	"time"
)

// Hashes is the oracle's response, reinterpreted to signed integers per the
// protocol's two's-complement convention.
type Hashes struct {
	LocationHash     int32
	LocationAuthHash int32
	RequestHashes    []int64
}

// Input is the canonical fingerprint handed to the oracle for one call.
type Input struct {
	TimestampMs int64
	Latitude    float64
	Longitude   float64
	Accuracy    float64
	AuthTicket  []byte
	SessionHash []byte
	Subrequests [][]byte
}

// Client is the contract the RPC engine drives; it hides key rotation, quota
// bookkeeping and retry policy behind a single call.
type Client interface {
	Hash(ctx context.Context, in Input) (Hashes, error)
}

// KeyStatus mirrors one auth key's server-reported quota state.
type KeyStatus struct {
	Remaining  int
	PeriodEnd  time.Time
	Maximum    int
	Expiration time.Time
	Failures   int
}

func (s KeyStatus) exhausted(now time.Time) bool {
	return s.Remaining < 3 && now.Before(s.PeriodEnd)
}
