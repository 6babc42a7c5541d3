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

package loop_test

import (
	"sync/atomic"
	"time"

	"github.com/nabbar/srvlib/loop"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Loop", func() {
	It("runs posted tasks in FIFO order", func() {
		l := loop.New(loop.DefaultConfig())
		Expect(l.Start(nil)).ToNot(HaveOccurred())
		defer l.Stop()

		var order []int
		done := make(chan struct{})
		for i := 0; i < 5; i++ {
			i := i
			l.Post(func() {
				order = append(order, i)
				if i == 4 {
					close(done)
				}
			})
		}

		Eventually(done, time.Second).Should(BeClosed())
		Expect(order).To(Equal([]int{0, 1, 2, 3, 4}))
	})

	It("reports IsRunning and IsThisLoop correctly", func() {
		l := loop.New(loop.DefaultConfig())
		Expect(l.IsRunning()).To(BeFalse())
		Expect(l.Start(nil)).ToNot(HaveOccurred())
		defer l.Stop()

		Expect(l.IsRunning()).To(BeTrue())
		Expect(l.IsThisLoop()).To(BeFalse())

		var insideCheck atomic.Bool
		done := make(chan struct{})
		l.Post(func() {
			insideCheck.Store(l.IsThisLoop())
			close(done)
		})
		Eventually(done, time.Second).Should(BeClosed())
		Expect(insideCheck.Load()).To(BeTrue())
	})

	It("fires a posted on_start callback", func() {
		l := loop.New(loop.DefaultConfig())
		done := make(chan struct{})
		Expect(l.Start(func() { close(done) })).ToNot(HaveOccurred())
		defer l.Stop()

		Eventually(done, time.Second).Should(BeClosed())
	})

	It("never fires a one-shot timer stopped before it elapses", func() {
		l := loop.New(loop.DefaultConfig())
		Expect(l.Start(nil)).ToNot(HaveOccurred())
		defer l.Stop()

		var fired atomic.Bool
		timer := l.PostAfter(50*time.Millisecond, func() { fired.Store(true) })
		timer.Stop()

		time.Sleep(150 * time.Millisecond)
		Expect(fired.Load()).To(BeFalse())
	})

	It("fires a repeat task at least twice before being stopped", func() {
		l := loop.New(loop.DefaultConfig())
		Expect(l.Start(nil)).ToNot(HaveOccurred())
		defer l.Stop()

		var count atomic.Int32
		pt := l.Repeat(10*time.Millisecond, func() { count.Add(1) })

		Eventually(func() int32 { return count.Load() }, time.Second).Should(BeNumerically(">=", 2))
		pt.Stop()

		observed := count.Load()
		time.Sleep(100 * time.Millisecond)
		Expect(count.Load()).To(BeNumerically("<=", observed+1))
	})

	It("is reusable after Stop", func() {
		l := loop.New(loop.DefaultConfig())
		Expect(l.Start(nil)).ToNot(HaveOccurred())
		l.Stop()
		Expect(l.IsRunning()).To(BeFalse())

		Expect(l.Start(nil)).ToNot(HaveOccurred())
		defer l.Stop()
		Expect(l.IsRunning()).To(BeTrue())
	})
})

var _ = Describe("NamedTimers", func() {
	It("replaces a previously scheduled timer under the same name", func() {
		l := loop.New(loop.DefaultConfig())
		Expect(l.Start(nil)).ToNot(HaveOccurred())
		defer l.Stop()

		nt := loop.NewNamedTimers(l)
		var fired atomic.Int32

		nt.Schedule("greet", 30*time.Millisecond, func() { fired.Add(1) })
		nt.Schedule("greet", 30*time.Millisecond, func() { fired.Add(100) })

		Eventually(func() int32 { return fired.Load() }, time.Second).Should(Equal(int32(100)))
	})

	It("cancels a scheduled timer", func() {
		l := loop.New(loop.DefaultConfig())
		Expect(l.Start(nil)).ToNot(HaveOccurred())
		defer l.Stop()

		nt := loop.NewNamedTimers(l)
		var fired atomic.Bool
		nt.Schedule("once", 30*time.Millisecond, func() { fired.Store(true) })
		nt.Cancel("once")

		time.Sleep(100 * time.Millisecond)
		Expect(fired.Load()).To(BeFalse())
	})
})
