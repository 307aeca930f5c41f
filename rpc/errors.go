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

package rpc

import (
	"errors"
	"fmt"

	liberr "github.com/sabouaram/pogoclient/errors"
)

const (
	ErrorNoPlayerPosition liberr.CodeError = liberr.MinPkgRpc + iota
	ErrorBadRPC
	ErrorInvalidRPC
	ErrorUnexpected
	ErrorMalformedResponse
)

func init() {
	liberr.RegisterMessages(liberr.MinPkgRpc, func(code liberr.CodeError) string {
		switch code {
		case ErrorNoPlayerPosition:
			return "both latitude and longitude must be set"
		case ErrorBadRPC:
			return "server rejected request as malformed"
		case ErrorInvalidRPC:
			return "server rejected platform request or invalidated the session"
		case ErrorUnexpected:
			return "unexpected status code in response envelope"
		case ErrorMalformedResponse:
			return "could not parse response envelope"
		}
		return liberr.NullMessage
	})
}

// errAuthTokenExpired and errRedirect are the two locally-recovered protocol
// conditions (status 102 and 53): the engine's retry loop handles both
// internally and neither is ever returned from Call.
var errAuthTokenExpired = errors.New("rpc: auth token expired")

type errRedirect struct {
	endpoint string
}

func (e *errRedirect) Error() string {
	return fmt.Sprintf("rpc: redirected to %s", e.endpoint)
}
