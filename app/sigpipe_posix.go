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
	"os/signal"
	"sync"
	"syscall"
)

// SigPipeBlock is a scoped SIGPIPE silencer: a daemonized process with
// its stdout/stderr switched off can otherwise die on its first write
// attempt to a closed stream. Grounded on
// original_source/include/server_lib/signal_helper.h's block_pipe_signal,
// generalised from a static lock/unlock pair to a nesting counter so
// two independent callers can each hold a block without one's Unlock
// prematurely re-arming SIGPIPE for the other.
type SigPipeBlock interface {
	// Lock silences SIGPIPE, incrementing the nesting count.
	Lock()

	// Unlock decrements the nesting count, restoring SIGPIPE's default
	// disposition once it reaches zero.
	Unlock()
}

var (
	sigPipeMu    sync.Mutex
	sigPipeCount int
)

type sigPipeBlock struct{}

// BlockBrokenPipe returns a SigPipeBlock already locked, the same
// auto-lock-on-construct convenience the original's RAII type gave.
func BlockBrokenPipe() SigPipeBlock {
	b := &sigPipeBlock{}
	b.Lock()
	return b
}

func (*sigPipeBlock) Lock() {
	sigPipeMu.Lock()
	defer sigPipeMu.Unlock()
	sigPipeCount++
	if sigPipeCount == 1 {
		signal.Ignore(syscall.SIGPIPE)
	}
}

func (*sigPipeBlock) Unlock() {
	sigPipeMu.Lock()
	defer sigPipeMu.Unlock()
	if sigPipeCount == 0 {
		return
	}
	sigPipeCount--
	if sigPipeCount == 0 {
		signal.Reset(syscall.SIGPIPE)
	}
}
