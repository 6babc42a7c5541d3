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

//go:build windows

package app

import (
	"os"
	"os/signal"
	"syscall"
)

// registerTerminationSignals wires the signals Windows actually
// delivers through os/signal.
func registerTerminationSignals(ch chan<- os.Signal) {
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
}

// registerControlSignals is a no-op: Windows has no SIGUSR1/SIGUSR2
// (spec.md's Windows fatal-signal non-goal extends to the rest of the
// POSIX signal surface this controller uses).
func registerControlSignals(ch chan<- os.Signal) {}

// registerFatalSignals is a no-op on Windows; see the package non-goal
// recorded for fatal-signal handling.
func registerFatalSignals(ch chan<- os.Signal) {}

func controlSignalFor(s os.Signal) ControlSignal { return ControlUser1 }

// raiseDefault just exits; Windows has no equivalent notion of
// restoring a signal's default disposition and re-raising it.
func raiseDefault(sig os.Signal) {
	os.Exit(1)
}
