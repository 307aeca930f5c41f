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

package hash

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/sabouaram/pogoclient/logger"
	"github.com/sabouaram/pogoclient/transport"
)

const failureEvictThreshold = 10

type client struct {
	pool     transport.Pool
	endpoint string
	log      logger.Logger

	mu      sync.Mutex
	keys    []string
	status  map[string]*KeyStatus
	current int
	multi   bool
}

// New builds a hash oracle Client rotating over keys. pool should be configured
// with transport.HashOptions() so idle connections recycle on the ~7.5s bound
// the remote load balancer enforces.
func New(pool transport.Pool, endpoint string, keys []string, log logger.Logger) Client {
	if log == nil {
		log = logger.Default()
	}
	status := make(map[string]*KeyStatus, len(keys))
	for _, k := range keys {
		status[k] = &KeyStatus{}
	}
	return &client{
		pool:     pool,
		endpoint: endpoint,
		log:      log,
		keys:     keys,
		status:   status,
		multi:    len(keys) > 1,
	}
}

func (c *client) activeKey() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.keys[c.current]
}

// advance steps the ring forward up to len(keys) positions looking for a usable
// key, mirroring itertools.cycle over the key list. It returns the soonest
// period_end if every key is currently exhausted.
func (c *client) advance(now time.Time) (key string, soonest time.Time, found bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := len(c.keys)
	for i := 0; i < n; i++ {
		idx := (c.current + i) % n
		k := c.keys[idx]
		st := c.status[k]
		if !st.exhausted(now) {
			c.current = idx
			return k, time.Time{}, true
		}
		if soonest.IsZero() || st.PeriodEnd.Before(soonest) {
			soonest = st.PeriodEnd
		}
	}
	return c.keys[c.current], soonest, false
}

func (c *client) rotateNext() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = (c.current + 1) % len(c.keys)
	return c.keys[c.current]
}

// evictKey removes key from the rotation entirely, matching the original's
// remove_token behavior, which also collapses back to single-key mode once
// only one key remains.
func (c *client) evictKey(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, k := range c.keys {
		if k == key {
			c.keys = append(c.keys[:i:i], c.keys[i+1:]...)
			break
		}
	}
	delete(c.status, key)
	if c.current >= len(c.keys) {
		c.current = 0
	}
	c.multi = len(c.keys) > 1
}

func (c *client) isMulti() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.multi
}

func (c *client) keyStatus(key string) *KeyStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	if st, ok := c.status[key]; ok {
		return st
	}
	st := &KeyStatus{}
	c.status[key] = st
	return st
}

func (c *client) Hash(ctx context.Context, in Input) (Hashes, error) {
	now := time.Now()
	key, soonest, ok := c.advance(now)
	if !ok {
		d := time.Until(soonest.Add(time.Second))
		if d > 0 {
			c.log.Warn("hash: all keys exhausted, sleeping until quota refresh")
			select {
			case <-time.After(d):
			case <-ctx.Done():
				return Hashes{}, ctx.Err()
			}
		}
		key = c.activeKey()
	}

	body, err := newPayload(in).marshal()
	if err != nil {
		return Hashes{}, ErrorBadHashRequest.Error(err)
	}

	return c.doWithRetry(ctx, key, body)
}

func (c *client) doWithRetry(ctx context.Context, key string, body []byte) (Hashes, error) {
	var result Hashes
	rotated := false

	op := func() error {
		rotated = false
		resp, err := c.pool.Post(ctx, c.endpoint, map[string]string{
			"X-AuthToken":  key,
			"Content-Type": "application/json",
		}, body, "")
		if err != nil && resp.StatusCode == 0 {
			return ErrorOffline.Error(err)
		}
		c.harvestHeaders(key, resp.Header)

		switch {
		case resp.StatusCode == http.StatusOK:
			c.keyStatus(key).Failures = 0
			var parsed response
			if jerr := json.Unmarshal(resp.Body, &parsed); jerr != nil {
				return backoff.Permanent(ErrorMalformedResponse.Error(jerr))
			}
			result = parsed.toHashes()
			return nil

		case resp.StatusCode == http.StatusBadRequest:
			st := c.keyStatus(key)
			st.Failures++
			if st.Failures < failureEvictThreshold {
				return ErrorBadHashRequest.Errorf("bad request, failures=%d", st.Failures)
			}
			if c.isMulti() {
				c.evictKey(key)
				key = c.activeKey()
				return ErrorExpiredKey.Errorf("key rotated after threshold")
			}
			return backoff.Permanent(ErrorExpiredKey.Error())

		case resp.StatusCode == http.StatusForbidden:
			return backoff.Permanent(ErrorTempBan.Error())

		case resp.StatusCode == http.StatusTooManyRequests:
			st := c.keyStatus(key)
			st.Remaining = 0
			if c.isMulti() {
				key = c.rotateNext()
				rotated = true
				return ErrorQuotaExceeded.Errorf("quota exceeded, rotated")
			}
			if werr := c.waitForPeriodEnd(ctx, st); werr != nil {
				return backoff.Permanent(werr)
			}
			return ErrorQuotaExceeded.Errorf("quota exceeded, retrying same key after period end")

		case resp.StatusCode == http.StatusNotFound || resp.StatusCode >= 500:
			return ErrorOffline.Error()

		default:
			return backoff.Permanent(ErrorUnexpectedResponse.Errorf("status %d", resp.StatusCode))
		}
	}

	// A multi-key 429 has already switched keys, so the next key is tried at
	// once instead of after the backoff interval.
	attempt := func() error {
		err := op()
		if rotated {
			err = op()
		}
		return err
	}

	bo := backoff.WithMaxRetries(backoff.NewConstantBackOff(1500*time.Millisecond), 2)
	if err := backoff.Retry(attempt, backoff.WithContext(bo, ctx)); err != nil {
		return Hashes{}, unwrapFinal(err)
	}
	return result, nil
}

// waitForPeriodEnd blocks until st.PeriodEnd+1s, the same quota-refresh wait
// Hash uses when every key is exhausted up front, so a single-key 429 retries
// the same key instead of failing the call outright.
func (c *client) waitForPeriodEnd(ctx context.Context, st *KeyStatus) error {
	d := time.Until(st.PeriodEnd.Add(time.Second))
	if d <= 0 {
		return nil
	}
	c.log.Warn("hash: single key exhausted, sleeping until quota refresh")
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func unwrapFinal(err error) error {
	if pe, ok := err.(*backoff.PermanentError); ok {
		return pe.Err
	}
	return err
}

// harvestHeaders updates the key's quota bookkeeping from the oracle's
// best-effort rate/expiry headers, per §4.2.
func (c *client) harvestHeaders(key string, h map[string][]string) {
	st := c.keyStatus(key)

	if v := headerInt(h, "X-RateRequestsRemaining"); v >= 0 {
		st.Remaining = v
	}
	if v := headerUnixSeconds(h, "X-RatePeriodEnd"); !v.IsZero() {
		st.PeriodEnd = v
	}
	if v := headerInt(h, "X-MaxRequestCount"); v >= 0 {
		st.Maximum = v
	}
	if v := headerUnixSeconds(h, "X-AuthTokenExpiration"); !v.IsZero() {
		st.Expiration = v
	}
}

func headerInt(h map[string][]string, name string) int {
	vs, ok := h[http.CanonicalHeaderKey(name)]
	if !ok || len(vs) == 0 {
		return -1
	}
	n, err := strconv.Atoi(vs[0])
	if err != nil {
		return -1
	}
	return n
}

func headerUnixSeconds(h map[string][]string, name string) time.Time {
	vs, ok := h[http.CanonicalHeaderKey(name)]
	if !ok || len(vs) == 0 {
		return time.Time{}
	}
	n, err := strconv.ParseInt(vs[0], 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.Unix(n, 0)
}
