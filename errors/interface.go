/*
 * MIT License
 *
 * Copyright (c) 2020 Nicolas JUHEL
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

// Package errors provides the shared error taxonomy for every package of this module.
//
// It mirrors the numeric-code-plus-parent-chain approach used across the component
// packages: each package reserves a block of codes via a Min<Pkg> base constant and
// registers its human-readable messages in an init(). Locally-recovered protocol
// conditions (see rpc package) are deliberately NOT expressed through this taxonomy;
// only errors meant to reach the caller of a component are.
package errors

import (
	"errors"
	"fmt"
	"runtime"
)

// Package code bases, one per component. Each package starts its own CodeError
// iota block at its Min constant so two packages never collide.
const (
	MinPkgTransport = 100
	MinPkgHash      = 200
	MinPkgAuth      = 300
	MinPkgRpc       = 400
	MinPkgConfig    = 500
	MinPkgCrypt     = 600

	MinAvailable = 1000
)

// CodeError is a small numeric classification, similar in spirit to an HTTP status code.
type CodeError uint16

const (
	UnknownError CodeError = 0
	UnknownMessage         = "unknown error"
	NullMessage            = ""
)

// Message renders a human string for a registered error code.
type Message func(code CodeError) string

var idMsgFct = make(map[CodeError]Message)

// RegisterMessages associates a contiguous code range (identified by its minimum code)
// with a message resolver. Packages call this once from their init().
func RegisterMessages(min CodeError, fct Message) {
	idMsgFct[min] = fct
}

func findBase(c CodeError) CodeError {
	var best CodeError
	for base := range idMsgFct {
		if c >= base && base >= best {
			best = base
		}
	}
	return best
}

func (c CodeError) Message() string {
	if c == UnknownError {
		return UnknownMessage
	}
	if f, ok := idMsgFct[findBase(c)]; ok {
		if m := f(c); m != "" {
			return m
		}
	}
	return UnknownMessage
}

func (c CodeError) Error(parent ...error) Error {
	return New(c, c.Message(), parent...)
}

func (c CodeError) Errorf(pattern string, args ...any) Error {
	return New(c, fmt.Sprintf(pattern, args...))
}

// Error is a standard error enriched with a code, a parent chain, and a capture frame.
type Error interface {
	error

	IsCode(code CodeError) bool
	HasCode(code CodeError) bool
	GetCode() CodeError

	Add(parent ...error)
	HasParent() bool
	GetParent() []error
	Unwrap() []error
}

type ers struct {
	c CodeError
	m string
	p []error
	t runtime.Frame
}

func getFrame() runtime.Frame {
	pc := make([]uintptr, 1)
	if n := runtime.Callers(3, pc); n < 1 {
		return runtime.Frame{}
	}
	frame, _ := runtime.CallersFrames(pc).Next()
	return frame
}

// New builds an Error carrying the given code, message and optional parent errors.
func New(code CodeError, message string, parent ...error) Error {
	return &ers{
		c: code,
		m: message,
		p: filterNil(parent),
		t: getFrame(),
	}
}

func filterNil(in []error) []error {
	out := make([]error, 0, len(in))
	for _, e := range in {
		if e != nil {
			out = append(out, e)
		}
	}
	return out
}

func (e *ers) Error() string {
	if e.t.File != "" {
		return fmt.Sprintf("[%d] %s (%s:%d)", e.c, e.m, trimPath(e.t.File), e.t.Line)
	}
	return fmt.Sprintf("[%d] %s", e.c, e.m)
}

func trimPath(p string) string {
	depth := 0
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] == '/' {
			depth++
			if depth == 2 {
				return p[i+1:]
			}
		}
	}
	return p
}

func (e *ers) IsCode(code CodeError) bool { return e.c == code }

func (e *ers) HasCode(code CodeError) bool {
	if e.c == code {
		return true
	}
	for _, p := range e.p {
		if Has(p, code) {
			return true
		}
	}
	return false
}

func (e *ers) GetCode() CodeError { return e.c }

func (e *ers) Add(parent ...error) { e.p = append(e.p, filterNil(parent)...) }

func (e *ers) HasParent() bool { return len(e.p) > 0 }

func (e *ers) GetParent() []error { return e.p }

func (e *ers) Unwrap() []error { return e.p }

// Is reports whether err is (or wraps) an *Error value.
func Is(err error) bool {
	var e Error
	return errors.As(err, &e)
}

// Get returns err as an Error, or nil if it is not one.
func Get(err error) Error {
	var e Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// Has reports whether err, or any of its parents, carries the given code.
func Has(err error, code CodeError) bool {
	if e := Get(err); e != nil {
		return e.HasCode(code)
	}
	return false
}
