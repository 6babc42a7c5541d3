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
	"context"
	"net"
	"sync"
	"sync/atomic"

	"github.com/nabbar/srvlib/loop"
)

// listenServer is the shared ServerHandle implementation for both TCP
// and Unix-domain acceptors (spec.md §4.4, §4.6's start/accept/fail
// sequence), grounded on golib/socket/server/tcp's
// New(update, handler, cfg) / IsRunning shape.
type listenServer struct {
	loopDispatch

	listen  func(context.Context) (net.Listener, error)
	cleanup func()

	mu       sync.Mutex
	ln       net.Listener
	running  atomic.Bool
	stopping atomic.Bool
	wg       sync.WaitGroup
}

// NewTCPServer builds a ServerHandle bound to cfg, dispatching
// callbacks on l.
func NewTCPServer(cfg TCPConfig, l loop.Loop) ServerHandle {
	return &listenServer{
		loopDispatch: loopDispatch{loop: l},
		listen:       cfg.listen,
	}
}

// NewUnixServer builds a ServerHandle over a Unix-domain socket,
// honouring cfg's preserve-socket-file / delete-on-shutdown strategy.
func NewUnixServer(cfg UnixConfig, l loop.Loop) ServerHandle {
	s := &listenServer{loopDispatch: loopDispatch{loop: l}}
	s.listen = func(ctx context.Context) (net.Listener, error) {
		ln, path, err := cfg.listen(ctx)
		if err != nil {
			return nil, err
		}
		if cfg.DeleteOnShutdown && cfg.PreserveSocketFile {
			s.cleanup = func() { _ = removeFile(path) }
		}
		return ln, nil
	}
	return s
}

func (s *listenServer) Start(onStarted func(), onNewConn func(ConnectionHandle), onFail func(error)) error {
	ln, err := s.listen(context.Background())
	if err != nil {
		if onFail != nil {
			onFail(err)
		}
		return err
	}

	s.mu.Lock()
	s.ln = ln
	s.mu.Unlock()
	s.running.Store(true)
	s.stopping.Store(false)

	s.wg.Add(1)
	go s.acceptLoop(ln, onNewConn, onFail)

	if onStarted != nil {
		s.post(onStarted)
	}
	return nil
}

func (s *listenServer) acceptLoop(ln net.Listener, onNewConn func(ConnectionHandle), onFail func(error)) {
	defer s.wg.Done()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if s.stopping.Load() {
				return
			}
			if onFail != nil {
				s.post(func() { onFail(err) })
			}
			return
		}

		ch := newConnHandle(NewConnID(), conn, s.loop)
		if onNewConn != nil {
			s.post(func() { onNewConn(ch) })
		}
	}
}

// Stop refuses further accepts and releases the acceptor (spec.md
// §4.6). wait blocks until the accept goroutine has exited.
func (s *listenServer) Stop(wait bool) {
	if !s.running.CompareAndSwap(true, false) {
		return
	}
	s.stopping.Store(true)

	s.mu.Lock()
	ln := s.ln
	s.mu.Unlock()

	if ln != nil {
		_ = ln.Close()
	}
	if wait {
		s.wg.Wait()
	}
	if s.cleanup != nil {
		s.cleanup()
	}
}

func (s *listenServer) IsRunning() bool { return s.running.Load() }
