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

var _ = Describe("Dstream builder", func() {
	It("appends the delimiter on create", func() {
		b := framing.NewDstream(nil)
		u := b.Create([]byte("alpha"), true)
		Expect(framing.Serialize(u)).To(Equal([]byte("alpha\r\n\r\n")))
	})

	It("deframes two delimiter-terminated frames split across two writes (S4)", func() {
		b := framing.NewDstream(nil)
		first := []byte("alph")
		b.Feed(&first)
		Expect(b.Ready()).To(BeFalse())

		second := []byte("a\r\n\r\nbeta\r\n\r\n")
		b.Feed(&second)
		Expect(b.Ready()).To(BeTrue())
		Expect(b.Take().AsString()).To(Equal([]byte("alpha")))
		Expect(second).To(Equal([]byte("beta\r\n\r\n")))

		b.Reset()
		b.Feed(&second)
		Expect(b.Ready()).To(BeTrue())
		Expect(b.Take().AsString()).To(Equal([]byte("beta")))
	})

	It("supports a custom delimiter", func() {
		b := framing.NewDstream([]byte("|"))
		buf := []byte("one|")
		b.Feed(&buf)
		Expect(b.Ready()).To(BeTrue())
		Expect(b.Take().AsString()).To(Equal([]byte("one")))
	})

	It("panics cloning a builder with in-flight parser state", func() {
		b := framing.NewDstream(nil)
		buf := []byte("partial")
		b.Feed(&buf)
		Expect(func() { b.Clone() }).To(Panic())
	})
})
