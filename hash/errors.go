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

import liberr "github.com/sabouaram/pogoclient/errors"

const (
	ErrorBadHashRequest = liberr.MinPkgHash + iota
	ErrorExpiredKey
	ErrorTempBan
	ErrorQuotaExceeded
	ErrorOffline
	ErrorTimeout
	ErrorMalformedResponse
	ErrorUnexpectedResponse
)

func init() {
	liberr.RegisterMessages(ErrorBadHashRequest, func(code liberr.CodeError) string {
		switch code {
		case ErrorBadHashRequest:
			return "bad hash request"
		case ErrorExpiredKey:
			return "hash key expired"
		case ErrorTempBan:
			return "ip temporarily banned by hashing service"
		case ErrorQuotaExceeded:
			return "hashing quota exceeded"
		case ErrorOffline:
			return "hashing service offline"
		case ErrorTimeout:
			return "hashing service timed out"
		case ErrorMalformedResponse:
			return "malformed hash response"
		case ErrorUnexpectedResponse:
			return "unexpected hash response"
		default:
			return liberr.UnknownMessage
		}
	})
}
