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

package server

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/nabbar/srvlib/internal/logger"
	"github.com/nabbar/srvlib/internal/metrics"
	"github.com/nabbar/srvlib/internal/option"
	"github.com/nabbar/srvlib/internal/syncutil"
	"github.com/nabbar/srvlib/loop"
	"github.com/nabbar/srvlib/network/connection"
	"github.com/nabbar/srvlib/network/framing"
	"github.com/nabbar/srvlib/network/transport"
)

// srv is the concrete Server (spec.md §3, §4.6).
type srv struct {
	handle transport.ServerHandle
	codec  framing.Builder
	loop   loop.Loop
	cfg    Config
	log    logger.FuncLog
	met    *metrics.Server

	gate *semaphore.Weighted

	mu    syncutil.Mutex
	conns map[uint64]connection.Connection

	// connWG tracks every accepted connection still awaiting its
	// disconnect-removal callback, so Stop can block on it when
	// Config.StopWait is set (spec.md §4.6).
	connWG sync.WaitGroup

	onStart      []func()
	onNewConn    []NewConnFunc
	onDisconnect []DisconnectFunc
	onFail       []FailFunc
}

// New builds a Server over handle, cloning codec fresh for every
// accepted connection and dispatching every callback on l.
func New(handle transport.ServerHandle, codec framing.Builder, l loop.Loop, cfg Config, log logger.FuncLog, met *metrics.Server, opts ...Option) Server {
	option.Apply(&cfg, opts...)

	s := &srv{
		handle: handle,
		codec:  codec,
		loop:   l,
		cfg:    cfg,
		log:    log,
		met:    met,
		conns:  make(map[uint64]connection.Connection),
	}
	if cfg.MaxInFlightAccepts > 0 {
		s.gate = semaphore.NewWeighted(cfg.MaxInFlightAccepts)
	}
	return s
}

// NewTCP is New, building the transport.ServerHandle from tcfg.
func NewTCP(tcfg transport.TCPConfig, codec framing.Builder, l loop.Loop, cfg Config, log logger.FuncLog, met *metrics.Server, opts ...Option) Server {
	return New(transport.NewTCPServer(tcfg, l), codec, l, cfg, log, met, opts...)
}

// NewUnix is New, building the transport.ServerHandle from ucfg.
func NewUnix(ucfg transport.UnixConfig, codec framing.Builder, l loop.Loop, cfg Config, log logger.FuncLog, met *metrics.Server, opts ...Option) Server {
	return New(transport.NewUnixServer(ucfg, l), codec, l, cfg, log, met, opts...)
}

func (s *srv) logger() logger.Logger {
	if s.log == nil {
		return logger.Discard
	}
	if l := s.log(); l != nil {
		return l
	}
	return logger.Discard
}

// OnStart registers an observer invoked once bind+listen succeeds.
func (s *srv) OnStart(cb func()) {
	if cb != nil {
		s.onStart = append(s.onStart, cb)
	}
}

// OnNewConnection registers an observer invoked for every accepted connection.
func (s *srv) OnNewConnection(cb NewConnFunc) {
	if cb != nil {
		s.onNewConn = append(s.onNewConn, cb)
	}
}

// OnDisconnect registers an observer invoked when an accepted
// connection disconnects, after it has been removed from the map.
func (s *srv) OnDisconnect(cb DisconnectFunc) {
	if cb != nil {
		s.onDisconnect = append(s.onDisconnect, cb)
	}
}

// OnFail registers an observer invoked on bind/listen/accept failure.
func (s *srv) OnFail(cb FailFunc) {
	if cb != nil {
		s.onFail = append(s.onFail, cb)
	}
}

func (s *srv) Start() error {
	return s.handle.Start(s.fireStart, s.onAccept, s.fireFail)
}

func (s *srv) fireStart() {
	for _, cb := range s.onStart {
		cb()
	}
}

func (s *srv) fireFail(err error) {
	s.logger().Error("server: failure", logger.Fields{"server": s.cfg.Name, "error": err.Error()})
	if s.met != nil {
		s.met.AcceptFailed(s.cfg.Name)
	}
	for _, cb := range s.onFail {
		cb(err)
	}
}

// onAccept instantiates a Connection for a freshly accepted transport
// endpoint, inserts it into the connection map under lock, wires its
// disconnect removal, and fans out on_new_connection (spec.md §4.6).
func (s *srv) onAccept(ch transport.ConnectionHandle) {
	if s.gate != nil {
		if err := s.gate.Acquire(context.Background(), 1); err != nil {
			ch.Disconnect()
			return
		}
	}

	clone := s.codec.Clone()
	c := connection.New(ch, clone, s.cfg.Connection, s.log)

	s.connWG.Add(1)
	s.mu.LockGuarded(func() {
		s.conns[c.ID()] = c
	})

	if s.met != nil {
		s.met.Accepted(s.cfg.Name)
	}

	c.OnDisconnect(func(conn connection.Connection) {
		s.mu.LockGuarded(func() {
			delete(s.conns, conn.ID())
		})
		if s.gate != nil {
			s.gate.Release(1)
		}
		if s.met != nil {
			s.met.Disconnected(s.cfg.Name)
		}
		for _, cb := range s.onDisconnect {
			cb(conn)
		}
		s.connWG.Done()
	})

	for _, cb := range s.onNewConn {
		cb(c)
	}
}

// Stop refuses further accepts and disconnects every open connection
// (spec.md §4.6). If Config.StopWait is set, Stop blocks until the
// accept goroutine has exited *and* every accepted connection's
// disconnect-removal callback (connWG, decremented from onAccept's
// OnDisconnect closure) has actually run, not merely until the
// acceptor is released.
func (s *srv) Stop() {
	s.handle.Stop(s.cfg.StopWait)

	var conns []connection.Connection
	s.mu.LockGuarded(func() {
		for _, c := range s.conns {
			conns = append(conns, c)
		}
	})
	for _, c := range conns {
		c.Disconnect()
	}

	if s.cfg.StopWait {
		s.connWG.Wait()
	}
}

func (s *srv) IsRunning() bool { return s.handle.IsRunning() }

func (s *srv) Post(task func()) {
	if s.loop == nil || task == nil {
		return
	}
	s.loop.Post(task)
}

func (s *srv) ConnectionCount() int {
	n := 0
	s.mu.LockGuarded(func() {
		n = len(s.conns)
	})
	return n
}
