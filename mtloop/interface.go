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

package mtloop

import (
	"time"

	"github.com/nabbar/srvlib/loop"
)

// Task, Timer and PeriodicalTimer are shared verbatim with package
// loop — the multi-thread loop is the same contract, just backed by N
// workers (spec.md §4.3).
type (
	Task            = loop.Task
	Timer           = loop.Timer
	PeriodicalTimer = loop.PeriodicalTimer
)

// Loop is the N-worker event loop: the same contract as loop.Loop plus
// NumThreads (spec.md §4.3).
type Loop interface {
	Post(task Task)
	PostAfter(d time.Duration, task Task) Timer
	Repeat(interval time.Duration, task Task) PeriodicalTimer
	Start(onStart Task) error
	Stop()
	IsRunning() bool
	IsThisLoop() bool
	ChangeThreadName(name string)
	QueueLen() int

	// NumThreads returns the configured worker pool size.
	NumThreads() int
}
