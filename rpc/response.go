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
	"github.com/sabouaram/pogoclient/auth"
	"github.com/sabouaram/pogoclient/envelope"
	"github.com/sabouaram/pogoclient/requests"
)

// handleResponse parses the response envelope, caches a newly-observed
// ticket and the platform-8 echo, and dispatches on status_code.
func (e *Engine) handleResponse(raw []byte, subrequests []SubrequestSpec) ([]NamedResponse, error) {
	resp, err := envelope.UnmarshalResponseEnvelope(raw)
	if err != nil {
		return nil, ErrorMalformedResponse.Error(err)
	}

	if resp.AuthTicket != nil && e.authP.IsNewTicket(resp.AuthTicket.ExpireTimestampMs) {
		e.authP.SetTicket(auth.Ticket{
			ExpireMs: resp.AuthTicket.ExpireTimestampMs,
			Start:    resp.AuthTicket.Start,
			End:      resp.AuthTicket.End,
		})
	}

	if e.state.Message8() == nil {
		for _, pr := range resp.PlatformReturns {
			if pr.Type == envelope.PlatformTypeEcho8 {
				if echo, err := envelope.UnmarshalPlatEightRequest(pr.Response); err == nil && echo.Field1 != nil {
					e.state.SetMessage8(echo.Field1)
				}
				break
			}
		}
	}

	switch resp.StatusCode {
	case 1, 2:
		return decodeReturns(resp.Returns, subrequests), nil
	case 3:
		return nil, ErrorBadRPC.Error()
	case 52, 100:
		return nil, ErrorInvalidRPC.Error()
	case 53:
		return nil, &errRedirect{endpoint: resp.ApiUrl}
	case 102:
		return nil, errAuthTokenExpired
	default:
		return nil, ErrorUnexpected.Error()
	}
}

func decodeReturns(returns [][]byte, subrequests []SubrequestSpec) []NamedResponse {
	out := make([]NamedResponse, 0, len(returns))
	for i, raw := range returns {
		if i >= len(subrequests) {
			break
		}
		reqType := subrequests[i].Type
		d, ok := requests.Lookup(reqType)
		if !ok {
			out = append(out, NamedResponse{Name: "unknown"})
			continue
		}
		parsed, err := requests.Parse(d.Response, raw)
		if err != nil {
			out = append(out, NamedResponse{Name: d.Name})
			continue
		}
		out = append(out, NamedResponse{Name: d.Name, Data: parsed})
	}
	return out
}
