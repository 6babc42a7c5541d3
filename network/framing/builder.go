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

// Package framing implements the UnitBuilder (codec) contract and its
// three concrete codecs — raw, msg (varint length-prefixed) and dstream
// (delimiter-terminated) — grounded on
// original_source/include/server_lib/network/{unit_builder_i,raw_builder,
// msg_builder,dstream_builder}.h.
package framing

import (
	"github.com/nabbar/srvlib/network/unit"
)

// Builder is a stateful parser + factory (spec.md §3's UnitBuilder). A
// Server/Client config holds one Builder prototype; every accepted or
// opened Connection owns a fresh Clone of it.
type Builder interface {
	// Clone copies configuration (delimiter, max size, ...) but never
	// parser state — cloning a Builder with partially-received bytes
	// is a programming error (spec.md §4.1) and panics via
	// internal/errors.Invariant.
	Clone() Builder

	// Create serialises payload into a wire-ready Unit, including any
	// framing header the codec needs (spec.md §4.1's "Create semantics").
	Create(payload []byte, ok bool) unit.Unit

	// Feed consumes a prefix of *buf into parser state, leaving *buf
	// holding the unconsumed remainder, and returns the receiver so
	// calls can be chained the way spec.md's feed(&mut buf) -> self
	// describes.
	Feed(buf *[]byte) Builder

	// Ready reports whether one complete Unit has been assembled.
	Ready() bool

	// Take returns the assembled Unit. Calling it before Ready is true
	// is a programming error.
	Take() unit.Unit

	// Reset clears parser state, preparing the Builder for the next
	// unit on the same connection.
	Reset()

	// Err returns the fatal stream error observed while feeding, if
	// any (e.g. a deframed length beyond the configured maximum). Once
	// non-nil it stays set until Reset.
	Err() error
}

// Serialize flattens a Unit produced by a Builder's Create into its
// wire-form bytes: the concatenation of its children's serialised form
// if it has children (spec.md §4.1 — "serialisation of Composite is the
// concatenation of serialised children"), or the scalar payload itself
// for a leaf unit.
func Serialize(u unit.Unit) []byte {
	if children := u.Children(); len(children) > 0 {
		var out []byte
		for _, c := range children {
			out = append(out, Serialize(c)...)
		}
		return out
	}

	switch u.Kind() {
	case unit.KindInteger:
		return EncodeVarint(u.AsUint32())
	case unit.KindString:
		return u.AsString()
	default:
		return nil
	}
}
