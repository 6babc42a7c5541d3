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

// Package gentimer implements the generation-id timer cancellation
// primitive shared by loop and mtloop (spec.md §4.2): cancelling a
// timer bumps its generation; a pending fire stamped with a stale
// generation is a no-op. Stands in for real cancellation on executors
// that lack it (spec.md §9).
package gentimer

import "sync/atomic"

// Timer is the shared cancellation counter. The zero value is ready
// to use.
type Timer struct {
	gen atomic.Int64
}

// Stamp captures the current generation for a scheduled fire to check
// against later.
func (t *Timer) Stamp() int64 { return t.gen.Load() }

// Live reports whether a fire stamped with id is still valid.
func (t *Timer) Live(id int64) bool { return t.gen.Load() == id }

// Stop invalidates any fire stamped before this call. Idempotent.
func (t *Timer) Stop() { t.gen.Add(1) }
