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
	"io"
	"net"
	"sync"
	"sync/atomic"

	"github.com/nabbar/srvlib/loop"
)

// connHandle is the concrete ConnectionHandle over a net.Conn
// (spec.md §4.4). Every async operation is gated by scope, the
// mandatory continue-lock, so a read/write completion can never fire
// after Disconnect has released the socket.
type connHandle struct {
	loopDispatch

	id   uint64
	conn net.Conn

	scope ScopeRunner

	disconnectOnce sync.Once
	connected      atomic.Bool

	mu       sync.Mutex
	onDiscon []func()
}

func newConnHandle(id uint64, conn net.Conn, l loop.Loop) *connHandle {
	c := &connHandle{loopDispatch: loopDispatch{loop: l}, id: id, conn: conn}
	c.connected.Store(true)
	if tcpConn, ok := conn.(*net.TCPConn); ok {
		_ = tcpConn.SetNoDelay(true)
	}
	return c
}

func (c *connHandle) ID() uint64 { return c.id }

func (c *connHandle) RemoteEndpointString() string {
	if c.conn == nil || c.conn.RemoteAddr() == nil {
		return ""
	}
	return c.conn.RemoteAddr().String()
}

func (c *connHandle) AsyncRead(n uint32, cb func(ReadResult)) {
	leave, ok := c.scope.Enter()
	if !ok {
		return
	}
	go func() {
		defer leave()

		buf := make([]byte, n)
		read, err := c.conn.Read(buf)
		if err == nil && read == 0 {
			err = io.EOF
		}
		c.post(func() {
			if c.connected.Load() {
				cb(ReadResult{Data: buf[:read], Err: err})
			}
		})
	}()
}

func (c *connHandle) AsyncWrite(data []byte, cb func(WriteResult)) {
	leave, ok := c.scope.Enter()
	if !ok {
		return
	}
	go func() {
		defer leave()

		written, err := c.conn.Write(data)
		c.post(func() {
			if c.connected.Load() {
				cb(WriteResult{N: written, Err: err})
			}
		})
	}()
}

func (c *connHandle) OnDisconnect(cb func()) {
	if cb == nil {
		return
	}
	c.mu.Lock()
	c.onDiscon = append(c.onDiscon, cb)
	c.mu.Unlock()
}

// Disconnect closes the socket, waits for every in-flight async
// continuation to finish (the scope-lock guarantee, spec.md §4.4),
// then fires disconnect observers exactly once in reverse-registration
// order (spec.md §4.5).
func (c *connHandle) Disconnect() {
	c.disconnectOnce.Do(func() {
		c.connected.Store(false)
		_ = c.conn.Close()
		c.scope.Close()

		c.mu.Lock()
		cbs := c.onDiscon
		c.mu.Unlock()

		for i := len(cbs) - 1; i >= 0; i-- {
			cb := cbs[i]
			c.post(cb)
		}
	})
}

func (c *connHandle) IsConnected() bool { return c.connected.Load() }
