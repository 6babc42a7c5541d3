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

// Package syncutil supplements the spec with the original's
// protected_mutex.h: a mutex wrapper that panics on recursive self-lock
// instead of deadlocking silently, used by Connection's send buffer and
// Server's connection map (both explicitly named in spec.md §5 as
// independently-mutexed shared resources).
package syncutil

import (
	"sync"
	"sync/atomic"
)

// Mutex is a sync.Mutex that additionally remembers which goroutine
// owns it, so LockGuarded can turn a same-goroutine recursive lock into
// an immediate panic instead of a silent, permanent deadlock.
type Mutex struct {
	mu      sync.Mutex
	ownerID atomic.Int64
}

// Lock acquires the mutex.
func (m *Mutex) Lock() {
	m.mu.Lock()
	m.ownerID.Store(goroutineID())
}

// Unlock releases the mutex.
func (m *Mutex) Unlock() {
	m.ownerID.Store(0)
	m.mu.Unlock()
}

// TryLock attempts to acquire the mutex without blocking.
func (m *Mutex) TryLock() bool {
	if m.mu.TryLock() {
		m.ownerID.Store(goroutineID())
		return true
	}
	return false
}

// LockGuarded runs fn with the mutex held, panicking instead of
// deadlocking if the calling goroutine already owns this Mutex (e.g. a
// disconnect callback invoked synchronously from within code that is
// itself holding the connection's send-buffer lock).
func (m *Mutex) LockGuarded(fn func()) {
	if id := goroutineID(); m.ownerID.Load() == id && id != 0 {
		panic("syncutil: recursive LockGuarded on an already-held Mutex")
	}
	m.Lock()
	defer m.Unlock()
	fn()
}
