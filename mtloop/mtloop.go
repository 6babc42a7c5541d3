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
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/nabbar/srvlib/internal/option"
	"github.com/nabbar/srvlib/internal/syncutil"
)

// New builds a multi-thread Loop from cfg, applying opts in order.
// Grounded on golib/runner/startStop's constructor shape and
// spec.md §4.3's N-worker, shared-queue contract.
func New(cfg Config, opts ...Option) Loop {
	option.Apply(&cfg, opts...)
	return &mtLoop{cfg: cfg}
}

type mtLoop struct {
	cfg Config

	mu      sync.Mutex
	cond    *sync.Cond
	queue   []Task
	stopped bool

	running atomic.Bool
	workers sync.Map // int64 goroutine id -> struct{}
	wg      sync.WaitGroup
}

func (l *mtLoop) Post(task Task) {
	if task == nil {
		return
	}
	l.mu.Lock()
	l.queue = append(l.queue, task)
	cond := l.cond
	l.mu.Unlock()

	if cond != nil {
		cond.Signal()
	}
}

func (l *mtLoop) PostAfter(d time.Duration, task Task) Timer {
	t := &oneShotTimer{}
	stamp := t.Stamp()
	time.AfterFunc(d, func() {
		if t.Live(stamp) {
			l.Post(task)
		}
	})
	return t
}

func (l *mtLoop) Repeat(interval time.Duration, task Task) PeriodicalTimer {
	pt := &periodicalTimer{}
	stamp := pt.Stamp()

	var fire func()
	fire = func() {
		if !pt.Live(stamp) {
			return
		}
		time.AfterFunc(interval, fire)
		l.Post(task)
	}
	time.AfterFunc(interval, fire)
	return pt
}

// Start launches NumThreads worker goroutines and blocks until every
// one of them has entered its run loop — the critical start barrier
// (spec.md §4.3) — before posting onStart and returning.
func (l *mtLoop) Start(onStart Task) error {
	if !l.running.CompareAndSwap(false, true) {
		return nil
	}

	l.mu.Lock()
	l.cond = sync.NewCond(&l.mu)
	l.queue = nil
	l.stopped = false
	l.mu.Unlock()

	l.workers = sync.Map{}

	n := l.cfg.NumThreads
	var barrier atomic.Int32
	barrier.Store(int32(n))
	barrierDone := make(chan struct{})

	l.wg.Add(n)
	for i := 0; i < n; i++ {
		go l.runWorker(i, &barrier, barrierDone)
	}
	<-barrierDone

	if onStart != nil {
		l.Post(onStart)
	}
	return nil
}

func (l *mtLoop) runWorker(index int, barrier *atomic.Int32, barrierDone chan struct{}) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer l.wg.Done()

	l.workers.Store(syncutil.GoroutineID(), struct{}{})
	setThreadName(fmt.Sprintf("%s-%d", l.cfg.threadName(), index))

	if barrier.Add(-1) == 0 {
		close(barrierDone)
	}

	for {
		task, ok := l.dequeue()
		if !ok {
			return
		}
		task()
	}
}

func (l *mtLoop) dequeue() (Task, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for len(l.queue) == 0 && !l.stopped {
		l.cond.Wait()
	}
	if len(l.queue) == 0 {
		return nil, false
	}
	t := l.queue[0]
	l.queue = l.queue[1:]
	return t, true
}

// Stop signals every worker to drain and exit after its current task,
// then joins them all. Queued-but-unrun tasks are not guaranteed to
// execute (spec.md §4.2, carried to C3).
func (l *mtLoop) Stop() {
	if !l.running.CompareAndSwap(true, false) {
		return
	}

	l.mu.Lock()
	l.stopped = true
	cond := l.cond
	l.mu.Unlock()

	if cond != nil {
		cond.Broadcast()
	}
	l.wg.Wait()
	l.workers = sync.Map{}
}

func (l *mtLoop) IsRunning() bool { return l.running.Load() }

// IsThisLoop reports true if the calling goroutine is one of the N
// active workers (spec.md §4.3).
func (l *mtLoop) IsThisLoop() bool {
	if !l.running.Load() {
		return false
	}
	_, ok := l.workers.Load(syncutil.GoroutineID())
	return ok
}

func (l *mtLoop) ChangeThreadName(name string) {
	l.mu.Lock()
	l.cfg.Name = name
	l.mu.Unlock()
}

func (l *mtLoop) NumThreads() int { return l.cfg.NumThreads }

func (l *mtLoop) QueueLen() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}
