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

// AuthTicket is the server-issued rolling session credential: once present and
// unexpired it replaces the OAuth bearer token in later envelopes.
type AuthTicket struct {
	ExpireTimestampMs int64
	Start             []byte
	End               []byte
}

func (t AuthTicket) Marshal() []byte {
	var b []byte
	b = appendInt64(b, 1, t.ExpireTimestampMs)
	b = appendBytes(b, 2, t.Start)
	b = appendBytes(b, 3, t.End)
	return b
}

func UnmarshalAuthTicket(raw []byte) (AuthTicket, error) {
	var t AuthTicket
	err := walkFields(raw, func(f field) error {
		switch f.num {
		case 1:
			t.ExpireTimestampMs = f.asInt64()
		case 2:
			t.Start = append([]byte(nil), f.buf...)
		case 3:
			t.End = append([]byte(nil), f.buf...)
		}
		return nil
	})
	return t, err
}

// AuthToken is the OAuth-flavored credential attached when no ticket is held yet.
type AuthToken struct {
	Contents string
	Unknown2 int32
}

func (t AuthToken) Marshal() []byte {
	var b []byte
	b = appendString(b, 1, t.Contents)
	b = appendInt32(b, 2, t.Unknown2)
	return b
}

func UnmarshalAuthToken(raw []byte) (AuthToken, error) {
	var t AuthToken
	err := walkFields(raw, func(f field) error {
		switch f.num {
		case 1:
			t.Contents = f.asString()
		case 2:
			t.Unknown2 = f.asInt32()
		}
		return nil
	})
	return t, err
}

// AuthInfo wraps an AuthToken with the issuing provider's name ("ptc" or "google").
type AuthInfo struct {
	Provider string
	Token    AuthToken
}

func (a AuthInfo) Marshal() []byte {
	var b []byte
	b = appendString(b, 1, a.Provider)
	b = appendMessage(b, 2, a.Token.Marshal())
	return b
}

func UnmarshalAuthInfo(raw []byte) (AuthInfo, error) {
	var a AuthInfo
	err := walkFields(raw, func(f field) error {
		switch f.num {
		case 1:
			a.Provider = f.asString()
		case 2:
			tok, err := UnmarshalAuthToken(f.buf)
			if err != nil {
				return err
			}
			a.Token = tok
		}
		return nil
	})
	return a, err
}
