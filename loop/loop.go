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

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/nabbar/srvlib/internal/option"
	"github.com/nabbar/srvlib/internal/syncutil"
)

// New builds a Loop from cfg, applying opts in order. Grounded on
// golib/runner/startStop.New's constructor shape, generalised with a
// task queue and timer support.
func New(cfg Config, opts ...Option) Loop {
	option.Apply(&cfg, opts...)
	l := &eventLoop{cfg: cfg}
	if cfg.QueueHint > 0 {
		l.queue = make([]Task, 0, cfg.QueueHint)
	}
	return l
}

// eventLoop is the single-thread Loop implementation (spec.md §4.2).
type eventLoop struct {
	cfg Config

	mu    sync.Mutex
	queue []Task

	running atomic.Bool
	ownerID atomic.Int64
	wake    chan struct{}
	done    chan struct{}
}

func (l *eventLoop) Post(task Task) {
	if task == nil {
		return
	}
	l.mu.Lock()
	l.queue = append(l.queue, task)
	wake := l.wake
	l.mu.Unlock()

	if wake != nil {
		select {
		case wake <- struct{}{}:
		default:
		}
	}
}

func (l *eventLoop) PostAfter(d time.Duration, task Task) Timer {
	t := &oneShotTimer{}
	stamp := t.Stamp()
	time.AfterFunc(d, func() {
		if t.Live(stamp) {
			l.Post(task)
		}
	})
	return t
}

func (l *eventLoop) Repeat(interval time.Duration, task Task) PeriodicalTimer {
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

func (l *eventLoop) Start(onStart Task) error {
	if !l.running.CompareAndSwap(false, true) {
		return nil
	}

	l.mu.Lock()
	l.wake = make(chan struct{}, 1)
	l.done = make(chan struct{})
	done := l.done
	l.mu.Unlock()

	started := make(chan struct{})
	go l.run(started, done)
	<-started

	if onStart != nil {
		l.Post(onStart)
	}
	return nil
}

func (l *eventLoop) run(started, stop chan struct{}) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	l.ownerID.Store(syncutil.GoroutineID())
	setThreadName(l.cfg.threadName())
	close(started)

	for {
		l.mu.Lock()
		pending := l.queue
		l.queue = nil
		wake := l.wake
		l.mu.Unlock()

		for _, t := range pending {
			t()
		}

		if len(pending) > 0 {
			continue
		}

		select {
		case <-stop:
			return
		case <-wake:
		}
	}
}

func (l *eventLoop) Stop() {
	if !l.running.CompareAndSwap(true, false) {
		return
	}

	l.mu.Lock()
	done := l.done
	l.mu.Unlock()

	if done != nil {
		close(done)
	}
	l.ownerID.Store(0)
}

func (l *eventLoop) IsRunning() bool { return l.running.Load() }

func (l *eventLoop) IsThisLoop() bool {
	return l.running.Load() && l.ownerID.Load() == syncutil.GoroutineID()
}

func (l *eventLoop) ChangeThreadName(name string) {
	l.mu.Lock()
	l.cfg.Name = name
	l.mu.Unlock()
}

func (l *eventLoop) QueueLen() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}
