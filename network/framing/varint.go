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

import liberr "github.com/nabbar/srvlib/internal/errors"

// EncodeVarint encodes n as 1-5 little-endian base-128 bytes, high bit
// set on every byte except the last (spec.md §6's wire format). It is
// built on the standard library alone: the pack carries no
// general-purpose varint dependency worth taking for an encoder this
// small (see DESIGN.md).
func EncodeVarint(n uint32) []byte {
	var out []byte
	for {
		b := byte(n & 0x7f)
		n >>= 7
		if n != 0 {
			out = append(out, b|0x80)
		} else {
			out = append(out, b)
			break
		}
	}
	return out
}

// DecodeVarint decodes a varint prefix of buf. ok is false ("need more
// bytes") if buf ends before a terminating byte (high bit clear) is
// seen. err is non-nil only on accumulator overflow past 32 bits — a
// fatal stream error per spec.md §4.1, distinct from "need more bytes".
func DecodeVarint(buf []byte) (value uint32, consumed int, ok bool, err error) {
	var shift uint
	for i, b := range buf {
		if i == 4 && (b&0x7f) > 0x0f {
			// 5th byte would push meaningful bits past bit 31.
			return 0, 0, false, liberr.New(liberr.CodeStream, "framing: varint overflow")
		}
		if i >= 5 {
			// no valid 32-bit varint needs a 6th byte.
			return 0, 0, false, liberr.New(liberr.CodeStream, "framing: varint overflow")
		}
		value |= uint32(b&0x7f) << shift
		if b&0x80 == 0 {
			return value, i + 1, true, nil
		}
		shift += 7
	}
	return 0, 0, false, nil
}
