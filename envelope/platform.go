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

// Platform request/return type tags that matter to the request pipeline; all
// others pass through opaquely as raw bytes.
const (
	PlatformTypeSendEncryptedSignature = 6
	PlatformTypeEcho8                  = 8
)

// PlatformRequest is one platform-level extension attached alongside the
// typed subrequests (signature, probe echo).
type PlatformRequest struct {
	Type    int32
	Request []byte
}

func (p PlatformRequest) Marshal() []byte {
	var b []byte
	b = appendInt32(b, 1, p.Type)
	b = appendBytes(b, 2, p.Request)
	return b
}

func UnmarshalPlatformRequest(raw []byte) (PlatformRequest, error) {
	var p PlatformRequest
	err := walkFields(raw, func(f field) error {
		switch f.num {
		case 1:
			p.Type = f.asInt32()
		case 2:
			p.Request = append([]byte(nil), f.buf...)
		}
		return nil
	})
	return p, err
}

// PlatformReturn is the server's counterpart to PlatformRequest.
type PlatformReturn struct {
	Type     int32
	Response []byte
}

func UnmarshalPlatformReturn(raw []byte) (PlatformReturn, error) {
	var p PlatformReturn
	err := walkFields(raw, func(f field) error {
		switch f.num {
		case 1:
			p.Type = f.asInt32()
		case 2:
			p.Response = append([]byte(nil), f.buf...)
		}
		return nil
	})
	return p, err
}

func (p PlatformReturn) Marshal() []byte {
	var b []byte
	b = appendInt32(b, 1, p.Type)
	b = appendBytes(b, 2, p.Response)
	return b
}

// PlatEightRequest is the body of a type-8 platform request: an opaque echo of
// whatever the server last sent back in a prior type-8 platform return.
type PlatEightRequest struct {
	Field1 []byte
}

func (p PlatEightRequest) Marshal() []byte {
	if p.Field1 == nil {
		return nil
	}
	return appendBytes(nil, 1, p.Field1)
}

func UnmarshalPlatEightRequest(raw []byte) (PlatEightRequest, error) {
	var p PlatEightRequest
	err := walkFields(raw, func(f field) error {
		if f.num == 1 {
			p.Field1 = append([]byte(nil), f.buf...)
		}
		return nil
	})
	return p, err
}

// SendEncryptedSignatureRequest carries the encrypted signal log.
type SendEncryptedSignatureRequest struct {
	EncryptedSignature []byte
}

func (s SendEncryptedSignatureRequest) Marshal() []byte {
	return appendBytes(nil, 2, s.EncryptedSignature)
}

func UnmarshalSendEncryptedSignatureRequest(raw []byte) (SendEncryptedSignatureRequest, error) {
	var s SendEncryptedSignatureRequest
	err := walkFields(raw, func(f field) error {
		if f.num == 2 {
			s.EncryptedSignature = append([]byte(nil), f.buf...)
		}
		return nil
	})
	return s, err
}
