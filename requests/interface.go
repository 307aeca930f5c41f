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

// Package requests holds the per-request-type message descriptor table: the
// upstream library resolves protobuf descriptors by string name derived from
// the request-type enum at runtime. Here that becomes a static table, indexed
// by enum value, of request/response field specs that the generic Build and
// Parse functions apply to an untyped argument map — the same permissive contract (scalars assign fields, slices
// become repeated fields, nested maps become nested messages, unknown names
// are skipped rather than rejected) without a generated descriptor set.
package requests

import (
	"fmt"

	"github.com/sabouaram/pogoclient/logger"
)

// Kind tags how a named field should be encoded/decoded.
type Kind uint8

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBytes
	KindMessage
)

// FieldSpec describes one named field of a MessageSpec: its wire field number,
// its Kind, whether it repeats, and — for KindMessage — the nested spec.
type FieldSpec struct {
	Number   int32
	Kind     Kind
	Repeated bool
	Nested   MessageSpec
}

// MessageSpec is a field-name -> FieldSpec table, the descriptor for one
// request or response message.
type MessageSpec map[string]FieldSpec

// Descriptor pairs a request message's field spec with its response's,
// looked up by request-type tag.
type Descriptor struct {
	Name    string
	Request MessageSpec
	Response MessageSpec
}

var registry = map[int32]Descriptor{}
var log = logger.Default()

// Register adds a descriptor for a request-type tag; this package registers
// its own descriptors from the init() in types.go.
func Register(requestType int32, d Descriptor) {
	registry[requestType] = d
}

// Lookup returns the descriptor for a request-type tag, if any.
func Lookup(requestType int32) (Descriptor, bool) {
	d, ok := registry[requestType]
	return d, ok
}

// Build serializes args into the wire bytes for spec, skipping unknown names
// and type mismatches rather than failing — matching the upstream library's
// permissive subrequest construction.
func Build(spec MessageSpec, args map[string]interface{}) []byte {
	var b []byte
	for name, v := range args {
		fs, ok := spec[name]
		if !ok {
			log.WithFields(logger.Fields{"field": name}).Warn("unknown request field, skipping")
			continue
		}
		appended, ok := appendField(b, fs, v)
		if !ok {
			log.WithFields(logger.Fields{"field": name}).Warn("request field type mismatch, skipping")
			continue
		}
		b = appended
	}
	return b
}

func appendField(b []byte, fs FieldSpec, v interface{}) ([]byte, bool) {
	if fs.Repeated {
		items, ok := v.([]interface{})
		if !ok {
			return b, false
		}
		for _, item := range items {
			var ok2 bool
			b, ok2 = appendScalarOrNested(b, fs, item)
			if !ok2 {
				return b, false
			}
		}
		return b, true
	}
	return appendScalarOrNested(b, fs, v)
}

func appendScalarOrNested(b []byte, fs FieldSpec, v interface{}) ([]byte, bool) {
	switch fs.Kind {
	case KindString:
		s, ok := v.(string)
		if !ok {
			return b, false
		}
		return appendString(b, fs.Number, s), true
	case KindInt:
		switch n := v.(type) {
		case int:
			return appendInt64(b, fs.Number, int64(n)), true
		case int64:
			return appendInt64(b, fs.Number, n), true
		case int32:
			return appendInt64(b, fs.Number, int64(n)), true
		default:
			return b, false
		}
	case KindFloat:
		switch n := v.(type) {
		case float64:
			return appendDouble(b, fs.Number, n), true
		case float32:
			return appendDouble(b, fs.Number, float64(n)), true
		default:
			return b, false
		}
	case KindBytes:
		by, ok := v.([]byte)
		if !ok {
			return b, false
		}
		return appendBytes(b, fs.Number, by), true
	case KindMessage:
		m, ok := v.(map[string]interface{})
		if !ok {
			return b, false
		}
		return appendBytes(b, fs.Number, Build(fs.Nested, m)), true
	default:
		return b, false
	}
}

// Parse decodes raw wire bytes into a name->value map per spec, skipping
// unknown field numbers.
func Parse(spec MessageSpec, raw []byte) (map[string]interface{}, error) {
	byNumber := make(map[int32]struct {
		name string
		fs   FieldSpec
	}, len(spec))
	for name, fs := range spec {
		byNumber[fs.Number] = struct {
			name string
			fs   FieldSpec
		}{name, fs}
	}

	out := make(map[string]interface{})
	err := walkFields(raw, func(num int32, typ byte, vint uint64, f64 uint64, buf []byte) error {
		entry, ok := byNumber[num]
		if !ok {
			return nil
		}
		val, ok := decodeField(entry.fs, vint, f64, buf)
		if !ok {
			return nil
		}
		if entry.fs.Repeated {
			list, _ := out[entry.name].([]interface{})
			out[entry.name] = append(list, val)
		} else {
			out[entry.name] = val
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("requests: parse: %w", err)
	}
	return out, nil
}

func decodeField(fs FieldSpec, vint uint64, f64 uint64, buf []byte) (interface{}, bool) {
	switch fs.Kind {
	case KindString:
		return string(buf), true
	case KindInt:
		return int64(vint), true
	case KindFloat:
		return fromBits(f64), true
	case KindBytes:
		return append([]byte(nil), buf...), true
	case KindMessage:
		nested, err := Parse(fs.Nested, buf)
		if err != nil {
			return nil, false
		}
		return nested, true
	default:
		return nil, false
	}
}
