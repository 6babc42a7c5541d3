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

package connection

import (
	"sync"
	"sync/atomic"

	"github.com/nabbar/srvlib/internal/logger"
	"github.com/nabbar/srvlib/internal/syncutil"
	"github.com/nabbar/srvlib/network/framing"
	"github.com/nabbar/srvlib/network/transport"
	"github.com/nabbar/srvlib/network/unit"
)

// receiveSub and discSub are the observer-list entries for OnReceive /
// OnDisconnect. Unsubscribe flips live to false rather than mutating
// the slice, so a fire-in-progress iteration never races a concurrent
// Unsubscribe (design notes §9's typed-handle replacement for the raw
// void* sink lists in the source).
type receiveSub struct {
	fn   ReceiveFunc
	live atomic.Bool
}

func (s *receiveSub) Unsubscribe() { s.live.Store(false) }

type discSub struct {
	fn   DisconnectFunc
	live atomic.Bool
}

func (s *discSub) Unsubscribe() { s.live.Store(false) }

// conn is the concrete Connection (spec.md §3, §4.5), binding one
// transport.ConnectionHandle to one framing.Builder clone.
type conn struct {
	handle transport.ConnectionHandle
	codec  framing.Builder
	cfg    Config
	log    logger.FuncLog

	residual []byte

	sendMu  syncutil.Mutex
	sendBuf []byte

	obsMu     sync.Mutex
	receivers []*receiveSub
	disconns  []*discSub
}

// New binds handle to codec (a fresh clone the caller owns exclusively)
// and starts the receive pipeline (spec.md §4.5 step 1). log may be
// nil, in which case every component falls back to logger.Discard.
func New(handle transport.ConnectionHandle, codec framing.Builder, cfg Config, log logger.FuncLog) Connection {
	c := &conn{handle: handle, codec: codec, cfg: cfg, log: log}
	handle.OnDisconnect(c.fireDisconnect)
	c.issueRead()
	return c
}

func (c *conn) logger() logger.Logger {
	if c.log == nil {
		return logger.Discard
	}
	if l := c.log(); l != nil {
		return l
	}
	return logger.Discard
}

func (c *conn) ID() uint64 { return c.handle.ID() }

func (c *conn) RemoteEndpointString() string { return c.handle.RemoteEndpointString() }

func (c *conn) Create(payload []byte, ok bool) unit.Unit {
	return c.codec.Create(payload, ok)
}

func (c *conn) issueRead() {
	c.handle.AsyncRead(c.cfg.chunkSize(), c.onRead)
}

// onRead implements spec.md §4.5 step 2: append to the residual
// buffer, then feed/take/dispatch in a loop until Feed makes no more
// progress, re-issuing the read unless the connection is now gone.
func (c *conn) onRead(res transport.ReadResult) {
	if res.Err != nil {
		c.handle.Disconnect()
		return
	}

	c.residual = append(c.residual, res.Data...)

	for {
		before := len(c.residual)
		c.codec.Feed(&c.residual)

		if err := c.codec.Err(); err != nil {
			c.logger().Warning("connection: stream error, disconnecting", logger.Fields{"id": c.ID(), "error": err.Error()})
			c.handle.Disconnect()
			return
		}

		if c.codec.Ready() {
			u := c.codec.Take()
			c.codec.Reset()
			c.dispatchReceive(u)
			continue
		}

		if len(c.residual) == before {
			break
		}
	}

	if c.handle.IsConnected() {
		c.issueRead()
	}
}

func (c *conn) dispatchReceive(u unit.Unit) {
	c.obsMu.Lock()
	subs := append([]*receiveSub(nil), c.receivers...)
	c.obsMu.Unlock()

	for _, s := range subs {
		if s.live.Load() {
			s.fn(c, u)
		}
	}
}

// Post appends u's serialised form to the send buffer (spec.md §4.5's
// send pipeline).
func (c *conn) Post(u unit.Unit) bool {
	if !c.handle.IsConnected() {
		return false
	}
	b := framing.Serialize(u)
	c.sendMu.LockGuarded(func() {
		c.sendBuf = append(c.sendBuf, b...)
	})
	return true
}

// Commit atomically takes the send buffer and issues one AsyncWrite.
func (c *conn) Commit() bool {
	if !c.handle.IsConnected() {
		return false
	}

	var batch []byte
	c.sendMu.LockGuarded(func() {
		batch = c.sendBuf
		c.sendBuf = nil
	})
	if len(batch) == 0 {
		return false
	}

	c.handle.AsyncWrite(batch, func(res transport.WriteResult) {
		if res.Err != nil {
			c.logger().Warning("connection: write error, disconnecting", logger.Fields{"id": c.ID(), "error": res.Err.Error()})
			c.handle.Disconnect()
		}
	})
	return true
}

func (c *conn) Send(u unit.Unit) bool {
	if !c.Post(u) {
		return false
	}
	return c.Commit()
}

func (c *conn) OnReceive(cb ReceiveFunc) Subscription {
	s := &receiveSub{fn: cb}
	s.live.Store(true)
	c.obsMu.Lock()
	c.receivers = append(c.receivers, s)
	c.obsMu.Unlock()
	return s
}

func (c *conn) OnDisconnect(cb DisconnectFunc) Subscription {
	s := &discSub{fn: cb}
	s.live.Store(true)
	c.obsMu.Lock()
	c.disconns = append(c.disconns, s)
	c.obsMu.Unlock()
	return s
}

// fireDisconnect runs every live disconnect observer exactly once, in
// reverse-registration order (spec.md §4.5).
func (c *conn) fireDisconnect() {
	c.obsMu.Lock()
	subs := append([]*discSub(nil), c.disconns...)
	c.obsMu.Unlock()

	for i := len(subs) - 1; i >= 0; i-- {
		if subs[i].live.Load() {
			subs[i].fn(c)
		}
	}
}

func (c *conn) Disconnect() { c.handle.Disconnect() }

func (c *conn) IsConnected() bool { return c.handle.IsConnected() }
