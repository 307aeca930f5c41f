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

// Package crypt stands in for the signal-encryption primitive the RPC engine treats
// as an opaque external collaborator: encrypt(plain_bytes, timestamp_ms, version) ->
// cipher_bytes. The real protocol's signature algorithm is not the interesting part
// of this module; this package gives it a concrete, swappable AES-256-GCM body in
// the same shape the teacher's encoding/aes package wraps crypto/cipher.
package crypt

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"io"
)

// Encryptor turns a plaintext signal-log payload into the opaque ciphertext attached
// to a type-6 platform-request.
type Encryptor interface {
	Encrypt(plain []byte, timestampMs int64, version int32) ([]byte, error)
	Decrypt(cipherBytes []byte, timestampMs int64, version int32) ([]byte, error)
}

func GenKey() ([32]byte, error) {
	var key [32]byte
	_, err := io.ReadFull(rand.Reader, key[:])
	return key, err
}

// New builds an Encryptor from a 32-byte key (AES-256). The nonce is generated fresh
// per call and prepended to the ciphertext, so a single Encryptor is safe for
// concurrent use across many calls on the same Rpc State.
func New(key [32]byte) (Encryptor, error) {
	blk, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(blk)
	if err != nil {
		return nil, err
	}

	return &enc{a: gcm}, nil
}
