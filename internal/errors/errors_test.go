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

package errors_test

import (
	"errors"
	"testing"

	liberr "github.com/nabbar/srvlib/internal/errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestErrors(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Internal Errors Suite")
}

var _ = Describe("Error taxonomy", func() {
	It("carries the code it was created with", func() {
		e := liberr.New(liberr.CodeTransport, "connection reset")
		Expect(e.Code()).To(Equal(liberr.CodeTransport))
		Expect(e.Error()).To(Equal("connection reset"))
	})

	It("chains parent errors", func() {
		root := errors.New("boom")
		e := liberr.New(liberr.CodeStream, "frame too large", root)
		Expect(e.Parent()).To(HaveLen(1))
		Expect(e.HasCode(liberr.CodeStream)).To(BeTrue())
	})

	It("IfError returns nil when all parents are nil", func() {
		Expect(liberr.IfError(liberr.CodeConfig, "bad config")).To(BeNil())
	})

	It("IfError returns an error when a parent is non-nil", func() {
		e := liberr.IfError(liberr.CodeConfig, "bad config", errors.New("port 0"))
		Expect(e).ToNot(BeNil())
		Expect(e.Code()).To(Equal(liberr.CodeConfig))
	})

	It("Invariant panics with a CodeInvariant error", func() {
		defer func() {
			r := recover()
			Expect(r).ToNot(BeNil())
			e, ok := r.(liberr.Error)
			Expect(ok).To(BeTrue())
			Expect(e.Code()).To(Equal(liberr.CodeInvariant))
		}()
		liberr.Invariant("accessed string on integer unit")
	})

	It("Trace captures a non-empty call site", func() {
		e := liberr.New(liberr.CodeUnknown, "x")
		Expect(e.Trace()).ToNot(BeEmpty())
	})
})
