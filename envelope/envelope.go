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

package envelope

// Subrequest is one typed operation inside an envelope's requests list: the
// request type tag plus its already-serialized argument message.
type Subrequest struct {
	RequestType    int32
	RequestMessage []byte
}

func (s Subrequest) Marshal() []byte {
	var b []byte
	b = appendInt32(b, 1, s.RequestType)
	b = appendBytes(b, 2, s.RequestMessage)
	return b
}

func UnmarshalSubrequest(raw []byte) (Subrequest, error) {
	var s Subrequest
	err := walkFields(raw, func(f field) error {
		switch f.num {
		case 1:
			s.RequestType = f.asInt32()
		case 2:
			s.RequestMessage = append([]byte(nil), f.buf...)
		}
		return nil
	})
	return s, err
}

// Subresponse is the response counterpart: the server echoes no type tag, only
// the raw per-request bytes in request order; the caller maps them back to
// request names positionally.
type Subresponse struct {
	Response []byte
}

// RequestEnvelope is the top-level protobuf message carrying one batch RPC.
type RequestEnvelope struct {
	StatusCode             int32
	RequestID              int64
	Requests               []Subrequest
	AuthTicket             *AuthTicket
	AuthInfo               *AuthInfo
	PlatformRequests       []PlatformRequest
	Latitude               float64
	Longitude              float64
	Altitude               float64
	MsSinceLastLocationfix int64
}

func (e RequestEnvelope) Marshal() []byte {
	var b []byte
	b = appendInt32(b, 1, e.StatusCode)
	b = appendInt64(b, 2, e.RequestID)
	for _, r := range e.Requests {
		b = appendMessage(b, 3, r.Marshal())
	}
	if e.AuthTicket != nil {
		b = appendMessage(b, 4, e.AuthTicket.Marshal())
	}
	for _, p := range e.PlatformRequests {
		b = appendMessage(b, 5, p.Marshal())
	}
	b = appendDouble(b, 6, e.Latitude)
	b = appendDouble(b, 7, e.Longitude)
	b = appendDouble(b, 8, e.Altitude)
	if e.AuthInfo != nil {
		b = appendMessage(b, 9, e.AuthInfo.Marshal())
	}
	b = appendInt64(b, 10, e.MsSinceLastLocationfix)
	return b
}

func UnmarshalRequestEnvelope(raw []byte) (RequestEnvelope, error) {
	var e RequestEnvelope
	err := walkFields(raw, func(f field) error {
		switch f.num {
		case 1:
			e.StatusCode = f.asInt32()
		case 2:
			e.RequestID = f.asInt64()
		case 3:
			r, err := UnmarshalSubrequest(f.buf)
			if err != nil {
				return err
			}
			e.Requests = append(e.Requests, r)
		case 4:
			t, err := UnmarshalAuthTicket(f.buf)
			if err != nil {
				return err
			}
			e.AuthTicket = &t
		case 5:
			p, err := UnmarshalPlatformRequest(f.buf)
			if err != nil {
				return err
			}
			e.PlatformRequests = append(e.PlatformRequests, p)
		case 6:
			e.Latitude = f.asDouble()
		case 7:
			e.Longitude = f.asDouble()
		case 8:
			e.Altitude = f.asDouble()
		case 9:
			a, err := UnmarshalAuthInfo(f.buf)
			if err != nil {
				return err
			}
			e.AuthInfo = &a
		case 10:
			e.MsSinceLastLocationfix = f.asInt64()
		}
		return nil
	})
	return e, err
}

// ResponseEnvelope is the server's reply to a RequestEnvelope.
type ResponseEnvelope struct {
	StatusCode       int32
	RequestID        int64
	Returns          [][]byte
	AuthTicket       *AuthTicket
	ApiUrl           string
	PlatformReturns  []PlatformReturn
	Error            string
}

func (e ResponseEnvelope) Marshal() []byte {
	var b []byte
	b = appendInt32(b, 1, e.StatusCode)
	b = appendInt64(b, 2, e.RequestID)
	for _, r := range e.Returns {
		b = appendBytes(b, 3, r)
	}
	if e.AuthTicket != nil {
		b = appendMessage(b, 4, e.AuthTicket.Marshal())
	}
	if e.ApiUrl != "" {
		b = appendString(b, 5, e.ApiUrl)
	}
	for _, p := range e.PlatformReturns {
		b = appendMessage(b, 6, p.Marshal())
	}
	if e.Error != "" {
		b = appendString(b, 7, e.Error)
	}
	return b
}

func UnmarshalResponseEnvelope(raw []byte) (ResponseEnvelope, error) {
	var e ResponseEnvelope
	err := walkFields(raw, func(f field) error {
		switch f.num {
		case 1:
			e.StatusCode = f.asInt32()
		case 2:
			e.RequestID = f.asInt64()
		case 3:
			e.Returns = append(e.Returns, append([]byte(nil), f.buf...))
		case 4:
			t, err := UnmarshalAuthTicket(f.buf)
			if err != nil {
				return err
			}
			e.AuthTicket = &t
		case 5:
			e.ApiUrl = f.asString()
		case 6:
			p, err := UnmarshalPlatformReturn(f.buf)
			if err != nil {
				return err
			}
			e.PlatformReturns = append(e.PlatformReturns, p)
		case 7:
			e.Error = f.asString()
		}
		return nil
	})
	return e, err
}
