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

// stringReader accumulates exactly n bytes across any number of feeds.
// Grounded on original_source/include/server_lib/network/string_builder.h,
// it is the sub-state the msg codec composes with a varint length
// (spec.md §4.1).
type stringReader struct {
	n     uint32
	buf   []byte
	ready bool
}

func newStringReader(n uint32) *stringReader {
	return &stringReader{n: n, buf: []byte{}}
}

// feed consumes as much of *buf as needed to reach n accumulated bytes,
// shrinking *buf to its unconsumed remainder. The n == 0 case becomes
// ready on the first call regardless of whether *buf has any bytes to
// offer (spec.md §4.1).
func (r *stringReader) feed(buf *[]byte) {
	if r.ready {
		return
	}
	if r.n == 0 {
		r.ready = true
		return
	}
	need := int(r.n) - len(r.buf)
	take := len(*buf)
	if take > need {
		take = need
	}
	r.buf = append(r.buf, (*buf)[:take]...)
	*buf = (*buf)[take:]
	if len(r.buf) >= int(r.n) {
		r.ready = true
	}
}

func (r *stringReader) isReady() bool { return r.ready }

func (r *stringReader) take() []byte { return r.buf }
