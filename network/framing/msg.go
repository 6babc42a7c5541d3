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

// DefaultMsgMax is the default maximum payload size accepted by a msg
// codec before a deframed length is treated as a fatal stream error
// (spec.md §4.1).
const DefaultMsgMax = 1024

// msgBuilder is the varint length-prefixed codec: a varint length `n`
// followed by exactly n payload bytes. Grounded on
// original_source/include/server_lib/network/msg_builder.h.
type msgBuilder struct {
	max uint32

	lenBuf  []byte
	length  uint32
	haveLen bool

	payload *stringReader
	ready   bool
	err     error
}

// NewMsg returns a Builder prototype for the msg codec. A max of 0
// selects DefaultMsgMax.
func NewMsg(max uint32) Builder {
	if max == 0 {
		max = DefaultMsgMax
	}
	return &msgBuilder{max: max}
}

func (b *msgBuilder) Clone() Builder {
	if b.haveLen || len(b.lenBuf) > 0 || b.ready {
		liberr.Invariant("framing: cannot clone a msg builder with in-flight parser state")
	}
	return &msgBuilder{max: b.max}
}

func (b *msgBuilder) Create(payload []byte, ok bool) unit.Unit {
	return unit.NewContainer(ok,
		unit.NewInteger(uint32(len(payload)), true),
		unit.NewString(payload, true),
	)
}

func (b *msgBuilder) Feed(buf *[]byte) Builder {
	if b.err != nil || b.ready {
		return b
	}

	if !b.haveLen {
		b.lenBuf = append(b.lenBuf, *buf...)
		*buf = nil

		n, consumed, ok, err := DecodeVarint(b.lenBuf)
		if err != nil {
			b.err = err
			return b
		}
		if !ok {
			return b
		}

		// leftover bytes past the varint already belong to the payload
		// (or to the next frame, once the payload itself is satisfied).
		leftover := b.lenBuf[consumed:]
		b.lenBuf = nil
		b.haveLen = true
		b.length = n

		if n > b.max {
			b.err = liberr.Newf(liberr.CodeStream, "framing: msg length %d exceeds max %d", n, b.max)
			return b
		}

		b.payload = newStringReader(n)
		b.payload.feed(&leftover)
		*buf = leftover
	} else {
		b.payload.feed(buf)
	}

	if b.payload.isReady() {
		b.ready = true
	}
	return b
}

func (b *msgBuilder) Ready() bool { return b.ready }

func (b *msgBuilder) Take() unit.Unit {
	return unit.NewString(b.payload.take(), true)
}

func (b *msgBuilder) Reset() {
	b.lenBuf = nil
	b.length = 0
	b.haveLen = false
	b.payload = nil
	b.ready = false
	b.err = nil
}

func (b *msgBuilder) Err() error { return b.err }
