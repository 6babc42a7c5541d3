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

package framing

import (
	"bytes"

	liberr "github.com/nabbar/srvlib/internal/errors"
	"github.com/nabbar/srvlib/network/unit"
)

// DefaultDelimiter terminates a dstream frame when none is configured
// (spec.md §4.1).
const DefaultDelimiter = "\r\n\r\n"

// dstreamBuilder frames on a configurable byte-string delimiter: create
// appends it, feed searches for it and emits the preceding bytes.
// Grounded on
// original_source/include/server_lib/network/dstream_builder.h.
type dstreamBuilder struct {
	delim []byte

	buf   []byte
	body  []byte
	ready bool
}

// NewDstream returns a Builder prototype for the delimiter-terminated
// codec. An empty delimiter selects DefaultDelimiter.
func NewDstream(delimiter []byte) Builder {
	if len(delimiter) == 0 {
		delimiter = []byte(DefaultDelimiter)
	}
	d := make([]byte, len(delimiter))
	copy(d, delimiter)
	return &dstreamBuilder{delim: d}
}

func (b *dstreamBuilder) Clone() Builder {
	if len(b.buf) > 0 || b.ready {
		liberr.Invariant("framing: cannot clone a dstream builder with in-flight parser state")
	}
	d := make([]byte, len(b.delim))
	copy(d, b.delim)
	return &dstreamBuilder{delim: d}
}

func (b *dstreamBuilder) Create(payload []byte, ok bool) unit.Unit {
	return unit.NewContainer(ok,
		unit.NewString(payload, true),
		unit.NewString(b.delim, true),
	)
}

func (b *dstreamBuilder) Feed(buf *[]byte) Builder {
	if b.ready {
		return b
	}

	b.buf = append(b.buf, *buf...)
	*buf = nil

	idx := bytes.Index(b.buf, b.delim)
	if idx < 0 {
		return b
	}

	b.body = append([]byte(nil), b.buf[:idx]...)
	remainder := b.buf[idx+len(b.delim):]
	b.buf = nil
	b.ready = true

	if len(remainder) > 0 {
		*buf = remainder
	}
	return b
}

func (b *dstreamBuilder) Ready() bool { return b.ready }

func (b *dstreamBuilder) Take() unit.Unit {
	return unit.NewString(b.body, true)
}

func (b *dstreamBuilder) Reset() {
	b.buf = nil
	b.body = nil
	b.ready = false
}

func (b *dstreamBuilder) Err() error { return nil }
