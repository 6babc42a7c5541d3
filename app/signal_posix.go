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

//go:build !windows

package app

import (
	"os"
	"os/signal"
	"syscall"
)

// registerTerminationSignals wires SIGINT/SIGTERM/SIGQUIT, the same
// set httpserver/run's waitNotify listens for.
func registerTerminationSignals(ch chan<- os.Signal) {
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
}

// registerControlSignals wires SIGUSR1/SIGUSR2 (spec.md §4.8).
func registerControlSignals(ch chan<- os.Signal) {
	signal.Notify(ch, syscall.SIGUSR1, syscall.SIGUSR2)
}

// registerFatalSignals wires the signals whose default action produces
// a core dump (spec.md §4.8's crash handling). Go's runtime intercepts
// genuine memory-fault SIGSEGV/SIGBUS/SIGFPE/SIGILL raised by the
// process itself and always terminates regardless of any os/signal
// registration, so this only observes instances delivered externally
// (e.g. `kill -SEGV <pid>`) — there is no portable way in Go to install
// a handler for a runtime-raised hardware fault the way the C++
// original does with sigaction.
func registerFatalSignals(ch chan<- os.Signal) {
	signal.Notify(ch, syscall.SIGSEGV, syscall.SIGBUS, syscall.SIGFPE, syscall.SIGILL, syscall.SIGABRT)
}

func controlSignalFor(s os.Signal) ControlSignal {
	if s == syscall.SIGUSR1 {
		return ControlUser1
	}
	return ControlUser2
}

// raiseDefault restores sig's default disposition and re-delivers it
// to this process, so a fatal signal still produces the kernel's usual
// termination/core-dump behaviour after OnFail has run. Go's signal
// package only ever intercepts externally-delivered instances of these
// signals (see registerFatalSignals), so re-raising here is always
// safe: the original hardware fault, if any, already terminated the
// process before this code could run.
func raiseDefault(sig os.Signal) {
	s, ok := sig.(syscall.Signal)
	if !ok {
		os.Exit(1)
		return
	}
	signal.Reset(sig)
	_ = syscall.Kill(os.Getpid(), s)
}
