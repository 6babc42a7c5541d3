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

package syncutil_test

import (
	"sync"
	"testing"

	"github.com/nabbar/srvlib/internal/syncutil"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestSyncutil(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Internal Syncutil Suite")
}

var _ = Describe("Mutex", func() {
	It("allows sequential Lock/Unlock", func() {
		var m syncutil.Mutex
		m.Lock()
		m.Unlock()
		m.Lock()
		m.Unlock()
	})

	It("serializes concurrent goroutines without deadlocking", func() {
		var m syncutil.Mutex
		var wg sync.WaitGroup
		counter := 0
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				m.Lock()
				counter++
				m.Unlock()
			}()
		}
		wg.Wait()
		Expect(counter).To(Equal(50))
	})

	It("LockGuarded panics on same-goroutine recursion", func() {
		var m syncutil.Mutex
		Expect(func() {
			m.LockGuarded(func() {
				m.LockGuarded(func() {})
			})
		}).To(Panic())
	})
})
