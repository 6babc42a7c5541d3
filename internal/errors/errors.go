/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
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

// Package errors implements the error taxonomy of the runtime substrate:
// invariant violations, configuration errors, transport errors, stream
// errors and fatal signals, each tagged with a numeric CodeError and an
// automatically captured call-site frame, with optional parent chaining
// so a transport failure can carry the stream error that caused it.
package errors

import (
	"fmt"
	"runtime"
	"strings"
)

// CodeError classifies an Error the way an HTTP status code classifies a
// response: a small registry of well-known values plus room for callers
// to mint their own in the unused range.
type CodeError uint16

const (
	// CodeUnknown is used when no taxonomy code applies.
	CodeUnknown CodeError = 0

	// CodeInvariant marks a programming fault: a variant-mismatch unit
	// access, a clone of a codec with partial state, an invalid config
	// value that should have been rejected earlier. Code never crosses
	// a network boundary; it panics with an *Error value.
	CodeInvariant CodeError = 100

	// CodeConfig marks a synchronous start/connect failure detected
	// before any I/O: bad address, port 0, invalid codec bound.
	CodeConfig CodeError = 200

	// CodeTransport marks a read/write failure, a remote close, or a
	// connect timeout. The affected connection is torn down.
	CodeTransport CodeError = 300

	// CodeStream marks a codec framing violation (oversized frame,
	// varint overflow). Reported as a CodeTransport failure because
	// there is no recovery point once a frame boundary is lost.
	CodeStream CodeError = 301

	// CodeFatalSignal marks the fail path driven by a fatal OS signal.
	CodeFatalSignal CodeError = 500
)

// Error is an error value carrying a CodeError, an optional parent chain,
// and the call-site frame where it was created.
type Error interface {
	error

	// Code returns the CodeError classifying this error.
	Code() CodeError

	// Is reports whether err has a case-insensitively equal message
	// and, when err is also an Error of this package, the same code, so
	// that stdlib errors.Is keeps working across this type.
	Is(err error) bool

	// Add appends one or more parent errors to this error's chain.
	Add(parent ...error)

	// Parent returns the direct parent chain (not transitively
	// flattened).
	Parent() []error

	// HasCode reports whether this error or any parent carries code.
	HasCode(code CodeError) bool

	// Trace returns "file:line func" for the call site that created
	// this error, or "" if unavailable.
	Trace() string
}

type wrappedError struct {
	code    CodeError
	message string
	parent  []error
	trace   string
}

// New creates an Error with the given code and message, chaining any
// non-nil parent errors given.
func New(code CodeError, message string, parent ...error) Error {
	return newError(code, message, parent...)
}

// Newf is New with fmt.Sprintf-style formatting of message.
func Newf(code CodeError, format string, args ...interface{}) Error {
	return newError(code, fmt.Sprintf(format, args...))
}

// IfError returns an Error built from code/message only if at least one
// non-nil, non-empty error is present in errs; otherwise it returns nil.
// Grounded on golib/errors' IfError, used at call sites that want to
// short-circuit an "ok" path without an intermediate nil check.
func IfError(code CodeError, message string, errs ...error) Error {
	var parents []error
	for _, e := range errs {
		if e != nil && e.Error() != "" {
			parents = append(parents, e)
		}
	}
	if len(parents) == 0 {
		return nil
	}
	return newError(code, message, parents...)
}

func newError(code CodeError, message string, parent ...error) Error {
	e := &wrappedError{
		code:    code,
		message: message,
		trace:   callerFrame(3),
	}
	e.Add(parent...)
	return e
}

func callerFrame(skip int) string {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return ""
	}
	fn := runtime.FuncForPC(pc)
	name := "unknown"
	if fn != nil {
		parts := strings.Split(fn.Name(), "/")
		name = parts[len(parts)-1]
	}
	return fmt.Sprintf("%s:%d %s", file, line, name)
}

func (e *wrappedError) Error() string {
	if e == nil {
		return ""
	}
	return e.message
}

func (e *wrappedError) Code() CodeError {
	if e == nil {
		return CodeUnknown
	}
	return e.code
}

func (e *wrappedError) Trace() string {
	if e == nil {
		return ""
	}
	return e.trace
}

func (e *wrappedError) Parent() []error {
	if e == nil {
		return nil
	}
	return e.parent
}

func (e *wrappedError) Add(parent ...error) {
	for _, p := range parent {
		if p == nil {
			continue
		}
		e.parent = append(e.parent, p)
	}
}

func (e *wrappedError) HasCode(code CodeError) bool {
	if e == nil {
		return false
	}
	if e.code == code {
		return true
	}
	for _, p := range e.parent {
		if we, ok := p.(Error); ok && we.HasCode(code) {
			return true
		}
	}
	return false
}

func (e *wrappedError) Is(err error) bool {
	if e == nil || err == nil {
		return false
	}
	if we, ok := err.(*wrappedError); ok {
		return e.code == we.code && strings.EqualFold(e.message, we.message)
	}
	return strings.EqualFold(e.message, err.Error())
}

// Invariant panics with an Error of CodeInvariant. Used for programming
// faults that must never be caught by normal code paths (spec.md §7).
func Invariant(message string) {
	panic(newError(CodeInvariant, message))
}

// Invariantf is Invariant with formatting.
func Invariantf(format string, args ...interface{}) {
	panic(newError(CodeInvariant, fmt.Sprintf(format, args...)))
}
