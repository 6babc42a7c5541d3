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

package transport

import (
	"sync"
	"sync/atomic"
)

// ScopeRunner is the mandatory "continue lock" idiom (spec.md §4.4,
// glossary "Scope lock"): every async operation must acquire it before
// touching the connection; Close takes the exclusive side, refusing
// any further Enter and blocking until every already-admitted
// continuation has returned. Without it a scheduled callback could
// outlive its owning connection and touch freed state.
//
// A sync.RWMutex models this directly: Enter is a read-lock (any
// number of continuations run concurrently), Close is a write-lock
// (exclusive, and blocks on the readers already in).
type ScopeRunner struct {
	mu     sync.RWMutex
	closed atomic.Bool
}

// Enter admits one continuation. The returned leave func must be
// called exactly once when the continuation finishes. ok is false if
// the scope is already closed — the caller must not proceed.
func (s *ScopeRunner) Enter() (leave func(), ok bool) {
	if s.closed.Load() {
		return nil, false
	}
	s.mu.RLock()
	if s.closed.Load() {
		s.mu.RUnlock()
		return nil, false
	}
	return s.mu.RUnlock, true
}

// Close refuses all future Enter calls and blocks until every
// in-flight continuation has called its leave func. Idempotent.
func (s *ScopeRunner) Close() {
	if !s.closed.CompareAndSwap(false, true) {
		return
	}
	s.mu.Lock()
	//nolint:staticcheck // immediately released: Close's sole purpose is the blocking drain above.
	s.mu.Unlock()
}
