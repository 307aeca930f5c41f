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

package crypt

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
)

type enc struct {
	a cipher.AEAD
}

// Encrypt seals plain behind a fresh random nonce. timestampMs and version are
// bound in as AEAD additional data, matching the real protocol's practice of
// tying a signature to the signal log's own timestamp; the nonce is prepended to
// the returned bytes so Decrypt can recover it without a side channel.
func (e *enc) Encrypt(plain []byte, timestampMs int64, version int32) ([]byte, error) {
	nonce := make([]byte, e.a.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	ad := additionalData(timestampMs, version)
	return e.a.Seal(nonce, nonce, plain, ad), nil
}

// Decrypt recovers the plaintext from bytes produced by Encrypt, given the same
// timestampMs/version pair used to seal it.
func (e *enc) Decrypt(cipherBytes []byte, timestampMs int64, version int32) ([]byte, error) {
	ns := e.a.NonceSize()
	if len(cipherBytes) < ns {
		return nil, fmt.Errorf("crypt: ciphertext shorter than nonce")
	}
	nonce, body := cipherBytes[:ns], cipherBytes[ns:]
	return e.a.Open(nil, nonce, body, additionalData(timestampMs, version))
}

func additionalData(timestampMs int64, version int32) []byte {
	ad := make([]byte, 12)
	binary.BigEndian.PutUint64(ad[0:8], uint64(timestampMs))
	binary.BigEndian.PutUint32(ad[8:12], uint32(version))
	return ad
}
