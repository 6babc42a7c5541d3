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

package framing_test

import (
	"github.com/nabbar/srvlib/network/framing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Msg builder", func() {
	It("creates a length-prefixed wire form", func() {
		b := framing.NewMsg(0)
		u := b.Create([]byte("HELLO"), true)
		Expect(framing.Serialize(u)).To(Equal([]byte{0x05, 'H', 'E', 'L', 'L', 'O'}))
	})

	It("deframes a single complete frame fed in one chunk", func() {
		b := framing.NewMsg(0)
		buf := []byte{0x04, 'P', 'I', 'N', 'G'}
		b.Feed(&buf)

		Expect(b.Ready()).To(BeTrue())
		Expect(b.Take().AsString()).To(Equal([]byte("PING")))
		Expect(b.Err()).To(BeNil())
	})

	It("deframes a frame split across byte-at-a-time feeds", func() {
		b := framing.NewMsg(0)
		frame := []byte{0x04, 'P', 'I', 'N', 'G'}
		for _, c := range frame {
			chunk := []byte{c}
			b.Feed(&chunk)
		}
		Expect(b.Ready()).To(BeTrue())
		Expect(b.Take().AsString()).To(Equal([]byte("PING")))
	})

	It("leaves the trailing bytes of a second frame in buf (S2 chunked deframing)", func() {
		b := framing.NewMsg(0)
		buf := []byte{0x05, 'H', 'E', 'L', 'L', 'O', 0x05, 'W', 'O', 'R', 'L', 'D'}
		b.Feed(&buf)

		Expect(b.Ready()).To(BeTrue())
		Expect(b.Take().AsString()).To(Equal([]byte("HELLO")))
		Expect(buf).To(Equal([]byte{0x05, 'W', 'O', 'R', 'L', 'D'}))

		b.Reset()
		b.Feed(&buf)
		Expect(b.Ready()).To(BeTrue())
		Expect(b.Take().AsString()).To(Equal([]byte("WORLD")))
	})

	It("signals a stream error on an oversized frame without buffering it (S3)", func() {
		b := framing.NewMsg(10)
		buf := []byte{0x80, 0x01}
		b.Feed(&buf)

		Expect(b.Ready()).To(BeFalse())
		Expect(b.Err()).ToNot(BeNil())
	})

	It("panics cloning a builder with in-flight parser state", func() {
		b := framing.NewMsg(0)
		buf := []byte{0x04, 'P', 'I'}
		b.Feed(&buf)
		Expect(func() { b.Clone() }).To(Panic())
	})

	It("clones cleanly between frames", func() {
		b := framing.NewMsg(0)
		Expect(func() { b.Clone() }).ToNot(Panic())
	})
})
