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

package mtloop_test

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/nabbar/srvlib/mtloop"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Mtloop", func() {
	It("reports the configured worker count", func() {
		l := mtloop.New(mtloop.DefaultConfig())
		Expect(l.NumThreads()).To(Equal(4))
	})

	It("runs every posted task exactly once across the pool", func() {
		l := mtloop.New(mtloop.Config{NumThreads: 4, QueueHint: 8})
		Expect(l.Start(nil)).ToNot(HaveOccurred())
		defer l.Stop()

		var count atomic.Int32
		const total = 200
		for i := 0; i < total; i++ {
			l.Post(func() { count.Add(1) })
		}

		Eventually(func() int32 { return count.Load() }, time.Second).Should(Equal(int32(total)))
	})

	// S5 — multi-thread start barrier: on_start sees NumThreads() == n
	// and, while it blocks, the other workers run n*3 tasks posted from
	// it; the spec passes once every one of them has run. Which worker
	// ran each task is not checked.
	It("only signals on_start once all N workers have entered their run loop", func() {
		const n = 4
		l := mtloop.New(mtloop.Config{NumThreads: n, QueueHint: 8})

		seen := make(chan struct{})
		var mu sync.Mutex
		ids := map[int]bool{}

		Expect(l.Start(func() {
			Expect(l.NumThreads()).To(Equal(n))

			var wg sync.WaitGroup
			for i := 0; i < n*3; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					done := make(chan bool, 1)
					l.Post(func() { done <- l.IsThisLoop() })
					if <-done {
						mu.Lock()
						ids[i%n] = true
						mu.Unlock()
					}
				}(i)
			}
			wg.Wait()
			close(seen)
		})).ToNot(HaveOccurred())
		defer l.Stop()

		Eventually(seen, time.Second).Should(BeClosed())
	})

	It("is not IsThisLoop from an unrelated goroutine", func() {
		l := mtloop.New(mtloop.DefaultConfig())
		Expect(l.Start(nil)).ToNot(HaveOccurred())
		defer l.Stop()
		Expect(l.IsThisLoop()).To(BeFalse())
	})

	It("never fires a one-shot timer stopped before it elapses", func() {
		l := mtloop.New(mtloop.DefaultConfig())
		Expect(l.Start(nil)).ToNot(HaveOccurred())
		defer l.Stop()

		var fired atomic.Bool
		timer := l.PostAfter(50*time.Millisecond, func() { fired.Store(true) })
		timer.Stop()

		time.Sleep(150 * time.Millisecond)
		Expect(fired.Load()).To(BeFalse())
	})

	It("is reusable after Stop", func() {
		l := mtloop.New(mtloop.DefaultConfig())
		Expect(l.Start(nil)).ToNot(HaveOccurred())
		l.Stop()
		Expect(l.IsRunning()).To(BeFalse())

		Expect(l.Start(nil)).ToNot(HaveOccurred())
		defer l.Stop()
		Expect(l.IsRunning()).To(BeTrue())
	})
})
