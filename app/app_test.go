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

package app_test

import (
	"sync/atomic"
	"time"

	"github.com/nabbar/srvlib/app"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Config", func() {
	It("validates the default configuration", func() {
		Expect(app.DefaultConfig().Validate()).ToNot(HaveOccurred())
	})

	It("loads defaults when FromViper is given a nil viper instance", func() {
		cfg, err := app.FromViper(nil, "")
		Expect(err).ToNot(HaveOccurred())
		Expect(cfg.MainLoop).To(Equal(app.DefaultConfig().MainLoop))
	})
})

// The Application singleton can only be Init'd once per process, so
// every assertion that depends on a live instance lives in this single
// spec rather than being spread across independent Its.
var _ = Describe("Application", func() {
	It("drives the full singleton lifecycle", func() {
		var started, exited, exitedOnLoop atomic.Bool
		var controlled atomic.Int32
		var failed atomic.Bool

		a, err := app.Init(app.DefaultConfig(), nil, app.WithName("srvlib-test"))
		Expect(err).ToNot(HaveOccurred())
		Expect(a).ToNot(BeNil())

		Expect(app.Instance()).To(Equal(a))

		_, err = app.Init(app.DefaultConfig(), nil)
		Expect(err).To(HaveOccurred())

		a.OnStart(func() { started.Store(true) })
		a.OnExit(func() {
			// spec.md §4.8 / §3: on_exit must run on the main loop thread,
			// before the loop has torn down.
			exitedOnLoop.Store(a.Loop().IsThisLoop())
			exited.Store(true)
		})
		a.OnControl(func(sig app.ControlSignal) { controlled.Store(int32(sig)) })
		a.OnFail(func(error) { failed.Store(true) })

		exitCode := make(chan int, 1)
		go func() { exitCode <- a.Run() }()

		Eventually(func() bool { return started.Load() }, time.Second).Should(BeTrue())
		Eventually(func() bool { return a.IsRunning() }, time.Second).Should(BeTrue())

		a.Loop().Post(func() { a.Stop(7) })

		Eventually(exitCode, time.Second).Should(Receive(Equal(7)))
		Eventually(func() bool { return exited.Load() }, time.Second).Should(BeTrue())
		Expect(exitedOnLoop.Load()).To(BeTrue())
		Eventually(func() bool { return a.IsRunning() }, time.Second).Should(BeFalse())

		// stopCh is already closed, so a second Run returns immediately
		// with the same exit code instead of blocking again.
		Expect(a.Run()).To(Equal(7))
	})
})

var _ = Describe("BlockBrokenPipe", func() {
	It("supports nested Lock/Unlock without panicking", func() {
		outer := app.BlockBrokenPipe()
		inner := app.BlockBrokenPipe()
		inner.Unlock()
		outer.Unlock()
	})
})
