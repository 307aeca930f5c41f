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
	"encoding/base64"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// payload is the canonical JSON body sent to the oracle. Altitude deliberately
// carries the accuracy value, not an altitude — that is the remote protocol's
// own wire-level quirk, preserved byte-for-byte rather than "fixed".
type payload struct {
	Timestamp   int64    `json:"Timestamp"`
	Latitude    float64  `json:"Latitude"`
	Longitude   float64  `json:"Longitude"`
	Altitude    float64  `json:"Altitude"`
	AuthTicket  string   `json:"AuthTicket"`
	SessionData string   `json:"SessionData"`
	Requests    []string `json:"Requests"`
}

func newPayload(in Input) payload {
	reqs := make([]string, len(in.Subrequests))
	for i, r := range in.Subrequests {
		reqs[i] = base64.StdEncoding.EncodeToString(r)
	}

	return payload{
		Timestamp:   in.TimestampMs,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
		Altitude:    in.Accuracy,
		AuthTicket:  base64.StdEncoding.EncodeToString(in.AuthTicket),
		SessionData: base64.StdEncoding.EncodeToString(in.SessionHash),
		Requests:    reqs,
	}
}

func (p payload) marshal() ([]byte, error) {
	return json.Marshal(p)
}

// response is the oracle's reply; the three hash fields arrive as unsigned JSON
// numbers and must be reinterpreted as signed two's-complement values.
type response struct {
	LocationAuthHash uint32   `json:"locationAuthHash"`
	LocationHash     uint32   `json:"locationHash"`
	RequestHashes    []uint64 `json:"requestHashes"`
}

func (r response) toHashes() Hashes {
	out := Hashes{
		LocationHash:     int32(r.LocationHash),
		LocationAuthHash: int32(r.LocationAuthHash),
		RequestHashes:    make([]int64, len(r.RequestHashes)),
	}
	for i, h := range r.RequestHashes {
		out.RequestHashes[i] = int64(h)
	}
	return out
}
