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

package auth

import "sync"

// ticketCache is the shared, mutex-guarded ticket bookkeeping both PTC and
// Google providers embed, matching the base Auth class's ticket fields in the
// original implementation.
type ticketCache struct {
	mu     sync.Mutex
	ticket Ticket
	has    bool
	now    Clock
}

func newTicketCache(now Clock) *ticketCache {
	if now == nil {
		now = timeNow
	}
	return &ticketCache{now: now}
}

func (t *ticketCache) HasTicket() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.has
}

func (t *ticketCache) GetTicket() Ticket {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ticket
}

func (t *ticketCache) SetTicket(tk Ticket) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.ticket = tk
	t.has = true
}

// IsNewTicket reports whether expireMs is later than the cached ticket's expiry,
// meaning a just-parsed ticket should replace the cached one.
func (t *ticketCache) IsNewTicket(expireMs int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return !t.has || expireMs > t.ticket.ExpireMs
}

// CheckTicket is true exactly when now_ms < expire_ms - 10_000, per the spec's
// ticket valid-window invariant.
func (t *ticketCache) CheckTicket() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.has {
		return false
	}
	nowMs := t.now().UnixMilli()
	return nowMs < t.ticket.ExpireMs-ticketExpiryBufferMs
}
