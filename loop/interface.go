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

package loop

import "time"

// Task is a unit of work posted to a Loop. Tasks run to completion —
// there are no suspension points within a task (spec.md §5).
type Task func()

// Timer is a scoped handle over a one-shot post_after. Stop is
// idempotent and cancels the pending fire if it has not already run
// (spec.md §4.2's generation-id cancellation).
type Timer interface {
	Stop()
}

// PeriodicalTimer is a scoped handle over a repeat. Stop prevents any
// future firing; an in-flight execution is not interrupted.
type PeriodicalTimer interface {
	Stop()
}

// Loop is the single-thread cooperative task executor (spec.md §4.2).
type Loop interface {
	// Post enqueues task to run once on this loop, FIFO against any
	// other Post already queued. Safe from any goroutine.
	Post(task Task)

	// PostAfter schedules task to run once after duration has
	// elapsed, returning a Timer that can cancel it before it fires.
	PostAfter(d time.Duration, task Task) Timer

	// Repeat schedules task to run every interval, re-arming from the
	// start of the previous firing (spec.md §4.2). Returns a
	// PeriodicalTimer that can stop future firings.
	Repeat(interval time.Duration, task Task) PeriodicalTimer

	// Start launches the loop's worker goroutine. onStart, if given,
	// is posted (not necessarily run) before Start returns.
	Start(onStart Task) error

	// Stop signals the worker goroutine to exit and returns without
	// waiting for it: a task that is already running may still be
	// executing when Stop returns. Queued-but-unrun tasks are not
	// guaranteed to execute. The Loop remains reusable for another
	// Start afterwards.
	Stop()

	// IsRunning reports whether the worker goroutine is active.
	IsRunning() bool

	// IsThisLoop reports whether it is called from the goroutine that
	// owns this loop.
	IsThisLoop() bool

	// ChangeThreadName updates the best-effort OS thread name applied
	// at the next Start; truncated to MaxThreadNameLen bytes.
	ChangeThreadName(name string)

	// QueueLen reports the number of tasks currently pending, for
	// callers that want to sample queue depth (e.g. as a metrics
	// gauge). A point-in-time snapshot only.
	QueueLen() int
}
