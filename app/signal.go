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

package app

import (
	"os"
	"os/signal"
)

// runSignalLoop consumes termination, control and fatal signal
// channels until Stop is called or a termination/fatal signal arrives.
// Grounded on httpserver/run's waitNotify: signal.Notify feeding a
// select alongside an internal stop channel, generalised from one
// server's shutdown to the whole process's (spec.md §4.8).
func (a *app) runSignalLoop() {
	term := make(chan os.Signal, 4)
	ctrl := make(chan os.Signal, 4)
	fatal := make(chan os.Signal, 4)

	registerTerminationSignals(term)
	registerControlSignals(ctrl)
	registerFatalSignals(fatal)

	defer signal.Stop(term)
	defer signal.Stop(ctrl)
	defer signal.Stop(fatal)

	for {
		select {
		case <-term:
			a.Stop(0)
			return
		case s := <-ctrl:
			cs := controlSignalFor(s)
			a.mainLoop.Post(func() { a.fireControl(cs) })
		case s := <-fatal:
			a.handleFatal(s)
			return
		case <-a.stopCh:
			return
		}
	}
}
