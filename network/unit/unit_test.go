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

package unit_test

import (
	"testing"

	"github.com/nabbar/srvlib/network/unit"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestUnit(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Unit Suite")
}

var _ = Describe("Unit", func() {
	It("round-trips an integer payload", func() {
		u := unit.NewInteger(42, true)
		Expect(u.Kind()).To(Equal(unit.KindInteger))
		Expect(u.AsUint32()).To(Equal(uint32(42)))
	})

	It("round-trips a string payload", func() {
		u := unit.NewString([]byte("PING"), true)
		Expect(u.AsString()).To(Equal([]byte("PING")))
	})

	It("panics accessing the wrong variant", func() {
		u := unit.NewInteger(1, true)
		Expect(func() { u.AsString() }).To(Panic())
	})

	It("Error returns the payload only when not ok", func() {
		failed := unit.NewString([]byte("boom"), false)
		Expect(failed.Error()).To(Equal("boom"))

		ok := unit.NewString([]byte("boom"), true)
		Expect(ok.Error()).To(Equal(""))
	})

	It("Equal compares kind, payload, ok and children in order", func() {
		a := unit.NewContainer(true, unit.NewInteger(4, true), unit.NewString([]byte("PING"), true))
		b := unit.NewContainer(true, unit.NewInteger(4, true), unit.NewString([]byte("PING"), true))
		c := unit.NewContainer(true, unit.NewString([]byte("PING"), true), unit.NewInteger(4, true))

		Expect(a.Equal(b)).To(BeTrue())
		Expect(a.Equal(c)).To(BeFalse())
	})
})
