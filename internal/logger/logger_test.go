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

package logger_test

import (
	"bytes"
	"testing"

	liblog "github.com/nabbar/srvlib/internal/logger"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestLogger(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Internal Logger Suite")
}

var _ = Describe("Logger", func() {
	It("writes entries at or above the configured level", func() {
		buf := &bytes.Buffer{}
		l := liblog.New(liblog.Options{Level: liblog.WarnLevel, Output: buf})

		l.Info("should not appear", nil)
		Expect(buf.Len()).To(Equal(0))

		l.Warning("should appear", liblog.Fields{"k": "v"})
		Expect(buf.String()).To(ContainSubstring("should appear"))
	})

	It("Clone duplicates fields independently", func() {
		l := liblog.New(liblog.Options{Level: liblog.DebugLevel})
		l.SetFields(liblog.Fields{"a": 1})

		c := l.Clone()
		c.SetFields(liblog.Fields{"a": 2})

		Expect(l.GetFields()["a"]).To(Equal(1))
		Expect(c.GetFields()["a"]).To(Equal(2))
	})

	It("Discard never panics and never writes", func() {
		liblog.Discard.Debug("x", nil)
		liblog.Discard.Fatal("x", nil)
		Expect(liblog.Discard.GetLevel()).To(Equal(liblog.Level(0)))
	})
})
