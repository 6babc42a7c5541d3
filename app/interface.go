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
	"github.com/nabbar/srvlib/loop"
)

// ControlSignal names the two operator-directed signals the
// Application reacts to without exiting (spec.md §4.8: SIGUSR1/SIGUSR2).
type ControlSignal int

const (
	// ControlUser1 corresponds to SIGUSR1.
	ControlUser1 ControlSignal = iota + 1

	// ControlUser2 corresponds to SIGUSR2.
	ControlUser2
)

func (c ControlSignal) String() string {
	switch c {
	case ControlUser1:
		return "USR1"
	case ControlUser2:
		return "USR2"
	default:
		return "unknown"
	}
}

// Application is the process-wide controller: one MainLoop, signal
// handling for termination, operator control and fatal crashes, and
// the process-lifecycle hooks spec.md §4.8 names (run/stop/wait).
type Application interface {
	// Loop returns the MainLoop every component sharing the process's
	// initial thread should post work to.
	Loop() loop.Loop

	// OnStart registers an observer invoked once, from the main loop,
	// right after Run begins accepting signals. Must be called before
	// Run.
	OnStart(cb func())

	// OnExit registers an observer invoked once, from the main loop,
	// before Run returns — on a clean SIGINT/SIGTERM shutdown or an
	// explicit Stop. Must be called before Run.
	OnExit(cb func())

	// OnControl registers an observer invoked on SIGUSR1/SIGUSR2,
	// dispatched on the main loop. Must be called before Run.
	OnControl(cb func(ControlSignal))

	// OnFail registers an observer invoked with the terminating error
	// when a fatal signal is caught. Must be called before Run.
	OnFail(cb func(error))

	// Run starts the main loop and blocks the calling goroutine until
	// Stop is called or a termination signal arrives, then returns the
	// process exit code (spec.md §4.8's run()/wait() merged into one
	// call, since Go has no separate detached-thread run()).
	Run() int

	// Stop requests a clean shutdown with the given exit code; safe to
	// call from any goroutine, any number of times.
	Stop(code int)

	// IsRunning reports whether Run is currently blocked serving the
	// process.
	IsRunning() bool
}
