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
	"testing"

	"github.com/nabbar/srvlib/network/framing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestFraming(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Framing Suite")
}

var _ = Describe("Raw builder", func() {
	It("creates a unit with no header bytes", func() {
		b := framing.NewRaw()
		u := b.Create([]byte("PING"), true)
		Expect(framing.Serialize(u)).To(Equal([]byte("PING")))
	})

	It("becomes ready as soon as any bytes are fed", func() {
		b := framing.NewRaw()
		buf := []byte("hello")
		b.Feed(&buf)

		Expect(b.Ready()).To(BeTrue())
		Expect(buf).To(BeEmpty())
		Expect(b.Take().AsString()).To(Equal([]byte("hello")))
		Expect(b.Err()).To(BeNil())
	})

	It("stays not-ready on an empty feed", func() {
		b := framing.NewRaw()
		buf := []byte{}
		b.Feed(&buf)
		Expect(b.Ready()).To(BeFalse())
	})

	It("accumulates bytes across multiple feeds", func() {
		b := framing.NewRaw()
		first := []byte("hel")
		second := []byte("lo")
		b.Feed(&first)
		b.Feed(&second)
		Expect(b.Take().AsString()).To(Equal([]byte("hello")))
	})

	It("resets parser state", func() {
		b := framing.NewRaw()
		buf := []byte("x")
		b.Feed(&buf)
		b.Reset()
		Expect(b.Ready()).To(BeFalse())
	})

	It("panics cloning a builder with in-flight state", func() {
		b := framing.NewRaw()
		buf := []byte("x")
		b.Feed(&buf)
		Expect(func() { b.Clone() }).To(Panic())
	})

	It("clones cleanly with no in-flight state", func() {
		b := framing.NewRaw()
		Expect(func() { b.Clone() }).ToNot(Panic())
	})
})
