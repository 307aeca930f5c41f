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

// Package rpcstate holds the Rpc State object described in the specification: the
// per-client request-id generator, session entropy, and small pieces of server
// echoed state (message8) that must survive across many calls on one logical
// client. It is the single piece of mutable state the RPC engine owns per
// session rather than reconstructing on every call.
package rpcstate

import (
	"crypto/rand"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/sabouaram/pogoclient/atomic"
	"github.com/sabouaram/pogoclient/signaldist"
)

// lehmerModulus is 2^31-1, the Mersenne prime the Lehmer generator operates over.
const lehmerModulus = 2147483647
const lehmerMultiplier = 16807

// Range is a fixed (min,max) pair drawn once at construction, used for the
// per-session magnetic field ranges.
type Range struct {
	Min, Max float64
}

// State is the Rpc State object, safe for concurrent use by many in-flight calls
// on the same logical client.
type State struct {
	// CorrelationID is a debug-only correlation id for log lines; it is never
	// part of the wire protocol.
	CorrelationID string

	startTimeMs int64
	startOnce   bool

	sessionHash [16]byte

	counter *atomic.Uint32Counter
	lehmer  *atomic.Int32Value

	magX, magY, magZ Range

	course float64

	message8 []byte
}

// New builds a fresh Rpc State: session hash is 16 random bytes, the Lehmer seed
// starts at 16807 per the spec, request_counter starts at 1, and the three
// magnetic-field ranges are drawn once.
func New() (*State, error) {
	var sh [16]byte
	if _, err := rand.Read(sh[:]); err != nil {
		return nil, err
	}

	s := &State{
		CorrelationID: uuid.NewString(),
		sessionHash:   sh,
		counter:       atomic.NewUint32Counter(1),
		lehmer:        atomic.NewInt32Value(lehmerMultiplier),
		course:        rand.Float64() * 359.99,
	}

	s.magX = drawMagneticRange()
	s.magY = drawMagneticRange()
	// mag_z_max = mag_y_min + 15, not mag_z_min + 15 — a quirk carried verbatim
	// from the original protocol implementation, preserved byte-for-byte.
	zMin := -rand.Float64() * 1500
	s.magZ = Range{Min: zMin, Max: s.magY.Min + 15}

	return s, nil
}

func drawMagneticRange() Range {
	min := -rand.Float64() * 1500
	return Range{Min: min, Max: min + 15}
}

// SessionHash returns the 16 stable session bytes.
func (s *State) SessionHash() []byte {
	out := make([]byte, 16)
	copy(out, s.sessionHash[:])
	return out
}

// StartTimeMs lazily initializes start_time_ms to now - uniform(6000,10000) on
// first access, then returns the same value for the state's lifetime.
func (s *State) StartTimeMs() int64 {
	if !s.startOnce {
		jitter := 6000 + rand.Int64N(4000)
		s.startTimeMs = time.Now().UnixMilli() - jitter
		s.startOnce = true
	}
	return s.startTimeMs
}

// NextLehmer advances and returns the Lehmer LCG: seed <- (seed*16807) mod (2^31-1).
func (s *State) NextLehmer() int64 {
	prev := int64(s.lehmer.Load())
	next := (prev * lehmerMultiplier) % lehmerModulus
	s.lehmer.Swap(int32(next))
	return next
}

// NextRequestID computes request_id = (next_lehmer() << 32) | (++request_counter).
func (s *State) NextRequestID() int64 {
	l := s.NextLehmer()
	c := s.counter.Incr()
	return (l << 32) | int64(c)
}

// MagneticRanges returns the three fixed ranges drawn at construction.
func (s *State) MagneticRanges() (x, y, z Range) {
	return s.magX, s.magY, s.magZ
}

// Course returns the current heading and advances it by a triangular drift
// around its previous value, wrapping within [0,359.99).
func (s *State) Course() float64 {
	c := s.course
	s.course = triangularDrift(c)
	return c
}

func triangularDrift(prev float64) float64 {
	delta := signaldist.TriangularFloat(-30, 30, 0)
	next := prev + delta
	for next < 0 {
		next += 359.99
	}
	for next >= 359.99 {
		next -= 359.99
	}
	return next
}

// Message8 returns the cached opaque platform-8 echo, or nil if never observed.
func (s *State) Message8() []byte {
	return s.message8
}

// SetMessage8 caches the first-observed platform-8 echo for reuse thereafter.
func (s *State) SetMessage8(b []byte) {
	if s.message8 == nil {
		s.message8 = b
	}
}
