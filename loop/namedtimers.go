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
	"sync"
	"time"
)

// NamedTimers is a convenience collection over a Loop's one-shot
// timers, keyed by name instead of by handle. Not required by the
// distilled spec's Timer/PeriodicalTimer contract; supplemented from
// original_source/include/server_lib/timers.h, which distinguishes a
// single timer entry ("solo_timers.h") from a named collection.
type NamedTimers struct {
	loop Loop

	mu     sync.Mutex
	timers map[string]Timer
}

// NewNamedTimers binds a NamedTimers collection to loop.
func NewNamedTimers(l Loop) *NamedTimers {
	return &NamedTimers{loop: l, timers: make(map[string]Timer)}
}

// Schedule (re)schedules the timer registered under name, replacing
// and stopping any prior one-shot with the same name.
func (n *NamedTimers) Schedule(name string, d time.Duration, task Task) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if prev, ok := n.timers[name]; ok {
		prev.Stop()
	}
	n.timers[name] = n.loop.PostAfter(d, task)
}

// Cancel stops and forgets the timer registered under name, if any.
func (n *NamedTimers) Cancel(name string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if prev, ok := n.timers[name]; ok {
		prev.Stop()
		delete(n.timers, name)
	}
}
