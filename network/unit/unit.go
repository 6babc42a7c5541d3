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

// Package unit implements the Unit value type shared by every codec and
// by Connection: a typed, tagged protocol message value, optionally
// composite. Grounded on original_source/include/server_lib/network/unit.h
// and nt_unit.h — the spec (spec.md §9) treats the original's three
// near-identical Unit types (unit, nt_unit, app_unit) as one concept,
// which is what this package implements.
package unit

import (
	liberr "github.com/nabbar/srvlib/internal/errors"
)

// Kind tags which variant a Unit carries.
type Kind uint8

const (
	// KindNull carries only the ok flag — no payload.
	KindNull Kind = iota
	// KindInteger carries an unsigned 32-bit payload.
	KindInteger
	// KindString carries an arbitrary byte-sequence payload.
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindString:
		return "string"
	case KindNull:
		return "null"
	}
	return "unknown"
}

// Unit is a typed, tagged value shaped for protocol messages: one of
// {integer, string, null}, a success/error flag, and an ordered
// sequence of nested children enabling composite messages (spec.md §3).
type Unit struct {
	kind     Kind
	u32      uint32
	str      []byte
	ok       bool
	children []Unit
}

// NewInteger builds an integer-variant Unit.
func NewInteger(v uint32, ok bool) Unit {
	return Unit{kind: KindInteger, u32: v, ok: ok}
}

// NewString builds a string-variant Unit. The byte slice is stored as
// given (not copied) — callers that reuse their buffer must clone it
// first, matching the zero-copy framing this library is built for.
func NewString(b []byte, ok bool) Unit {
	return Unit{kind: KindString, str: b, ok: ok}
}

// NewNull builds a null-variant Unit carrying only ok.
func NewNull(ok bool) Unit {
	return Unit{kind: KindNull, ok: ok}
}

// NewContainer builds a composite Unit: a carrier with no scalar payload
// of its own whose nested children are the wire-order sequence a codec's
// Create() assembles (spec.md §4.1's "container's nested sequence holds
// {header unit, payload unit}").
func NewContainer(ok bool, children ...Unit) Unit {
	return Unit{kind: KindNull, ok: ok, children: children}
}

// Kind returns the variant tag.
func (u Unit) Kind() Kind { return u.kind }

// Ok returns the success/error flag.
func (u Unit) Ok() bool { return u.ok }

// Children returns the nested unit sequence, or nil for a scalar unit.
func (u Unit) Children() []Unit { return u.children }

// AsUint32 returns the integer payload. It is an invariant violation
// (spec.md §3, §7) to call this on a non-integer unit; such a call
// panics rather than returning a zero value, so a protocol mismatch is
// never silently mistaken for a valid 0.
func (u Unit) AsUint32() uint32 {
	if u.kind != KindInteger {
		liberr.Invariantf("unit: AsUint32 called on a %s unit", u.kind)
	}
	return u.u32
}

// AsString returns the string payload. Invariant violation if the unit
// is not string-kind (see AsUint32).
func (u Unit) AsString() []byte {
	if u.kind != KindString {
		liberr.Invariantf("unit: AsString called on a %s unit", u.kind)
	}
	return u.str
}

// Error returns the string payload only when Ok() is false; otherwise
// it returns an empty string, matching spec.md §3 ("error() returns the
// string payload only when ok == false").
func (u Unit) Error() string {
	if u.ok {
		return ""
	}
	return string(u.str)
}

// Equal compares tag, payload, ok-flag and nested children in order
// (spec.md §3's equality invariant).
func (u Unit) Equal(o Unit) bool {
	if u.kind != o.kind || u.ok != o.ok {
		return false
	}
	switch u.kind {
	case KindInteger:
		if u.u32 != o.u32 {
			return false
		}
	case KindString:
		if string(u.str) != string(o.str) {
			return false
		}
	}
	if len(u.children) != len(o.children) {
		return false
	}
	for i := range u.children {
		if !u.children[i].Equal(o.children[i]) {
			return false
		}
	}
	return true
}
