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
	liberr "github.com/nabbar/srvlib/internal/errors"
	"github.com/nabbar/srvlib/network/unit"
)

// rawBuilder has no framing at all: every non-empty feed batch becomes
// one unit, grounded on
// original_source/include/server_lib/network/raw_builder.h.
type rawBuilder struct {
	buf   []byte
	ready bool
}

// NewRaw returns a Builder prototype for the unframed codec.
func NewRaw() Builder {
	return &rawBuilder{}
}

func (b *rawBuilder) Clone() Builder {
	if len(b.buf) > 0 || b.ready {
		liberr.Invariant("framing: cannot clone a raw builder with in-flight parser state")
	}
	return &rawBuilder{}
}

func (b *rawBuilder) Create(payload []byte, ok bool) unit.Unit {
	return unit.NewString(payload, ok)
}

func (b *rawBuilder) Feed(buf *[]byte) Builder {
	if len(*buf) == 0 {
		return b
	}
	b.buf = append(b.buf, *buf...)
	*buf = nil
	b.ready = true
	return b
}

func (b *rawBuilder) Ready() bool { return b.ready }

func (b *rawBuilder) Take() unit.Unit {
	return unit.NewString(b.buf, true)
}

func (b *rawBuilder) Reset() {
	b.buf = nil
	b.ready = false
}

func (b *rawBuilder) Err() error { return nil }
