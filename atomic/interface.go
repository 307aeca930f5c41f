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

// Package atomic provides the small set of lock-free counters the engine needs to
// keep Rpc State's request counter and Lehmer seed safe under concurrent calls on
// the same state, without pulling a full atomic-value library for a handful of uses.
package atomic

import "sync/atomic"

// Uint32Counter is a monotonically increasing 32-bit counter, used for request_counter.
type Uint32Counter struct {
	v uint32
}

// NewUint32Counter returns a counter starting at the given value.
func NewUint32Counter(start uint32) *Uint32Counter {
	c := &Uint32Counter{}
	atomic.StoreUint32(&c.v, start)
	return c
}

// Incr atomically increments the counter and returns its new value.
func (c *Uint32Counter) Incr() uint32 {
	return atomic.AddUint32(&c.v, 1)
}

func (c *Uint32Counter) Load() uint32 {
	return atomic.LoadUint32(&c.v)
}

// Int32Value holds the lehmer seed (seed = seed*16807 mod 2^31-1). Load and
// Swap are each atomic; there is no compare-and-swap, so a Load followed by a
// Swap is two separate steps.
type Int32Value struct {
	v int64
}

func NewInt32Value(start int32) *Int32Value {
	val := &Int32Value{}
	atomic.StoreInt64(&val.v, int64(start))
	return val
}

func (v *Int32Value) Load() int32 {
	return int32(atomic.LoadInt64(&v.v))
}

// Swap atomically replaces the stored value and returns the previous one.
func (v *Int32Value) Swap(n int32) int32 {
	return int32(atomic.SwapInt64(&v.v, int64(n)))
}

// Bool is a simple atomic flag.
type Bool struct {
	v uint32
}

func (b *Bool) Load() bool { return atomic.LoadUint32(&b.v) != 0 }

// CompareAndSwap reports whether the swap from old to new succeeded.
func (b *Bool) CompareAndSwap(old, new bool) bool {
	var o, n uint32
	if old {
		o = 1
	}
	if new {
		n = 1
	}
	return atomic.CompareAndSwapUint32(&b.v, o, n)
}

func (b *Bool) Store(v bool) {
	if v {
		atomic.StoreUint32(&b.v, 1)
	} else {
		atomic.StoreUint32(&b.v, 0)
	}
}
