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

package client

import (
	"sync"

	"github.com/nabbar/srvlib/internal/logger"
	"github.com/nabbar/srvlib/internal/option"
	"github.com/nabbar/srvlib/loop"
	"github.com/nabbar/srvlib/network/connection"
	"github.com/nabbar/srvlib/network/framing"
	"github.com/nabbar/srvlib/network/transport"
)

// cli is the concrete Client (spec.md §3, §4.7).
type cli struct {
	handle transport.ClientHandle
	codec  framing.Builder
	loop   loop.Loop
	cfg    Config
	log    logger.FuncLog

	onConnect []ConnectFunc
	onFail    []FailFunc

	mu   sync.Mutex
	conn connection.Connection
}

// New builds a Client over handle, cloning codec fresh on every
// successful connect and dispatching every callback on l.
func New(handle transport.ClientHandle, codec framing.Builder, l loop.Loop, cfg Config, log logger.FuncLog, opts ...Option) Client {
	option.Apply(&cfg, opts...)
	return &cli{handle: handle, codec: codec, loop: l, cfg: cfg, log: log}
}

// NewTCP is New, building the transport.ClientHandle from tcfg.
func NewTCP(tcfg transport.TCPConfig, codec framing.Builder, l loop.Loop, cfg Config, log logger.FuncLog, opts ...Option) Client {
	return New(transport.NewTCPClient(tcfg, l), codec, l, cfg, log, opts...)
}

// NewUnix is New, building the transport.ClientHandle from ucfg.
func NewUnix(ucfg transport.UnixConfig, codec framing.Builder, l loop.Loop, cfg Config, log logger.FuncLog, opts ...Option) Client {
	return New(transport.NewUnixClient(ucfg, l), codec, l, cfg, log, opts...)
}

func (c *cli) logger() logger.Logger {
	if c.log == nil {
		return logger.Discard
	}
	if l := c.log(); l != nil {
		return l
	}
	return logger.Discard
}

func (c *cli) OnConnect(cb ConnectFunc) {
	if cb != nil {
		c.onConnect = append(c.onConnect, cb)
	}
}

func (c *cli) OnFail(cb FailFunc) {
	if cb != nil {
		c.onFail = append(c.onFail, cb)
	}
}

func (c *cli) Connect() bool {
	return c.handle.Connect(c.onConnected, c.onConnectFail)
}

// onConnected instantiates the single Connection, clears it on
// disconnect, and fans out on_connect (spec.md §4.7).
func (c *cli) onConnected(ch transport.ConnectionHandle) {
	clone := c.codec.Clone()
	conn := connection.New(ch, clone, c.cfg.Connection, c.log)

	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()

	conn.OnDisconnect(func(connection.Connection) {
		c.mu.Lock()
		c.conn = nil
		c.mu.Unlock()
	})

	for _, cb := range c.onConnect {
		cb(conn)
	}
}

func (c *cli) onConnectFail(err error) {
	c.logger().Warning("client: connect failed", logger.Fields{"client": c.cfg.Name, "error": err.Error()})
	for _, cb := range c.onFail {
		cb(err)
	}
}

func (c *cli) Post(task func()) {
	if c.loop == nil || task == nil {
		return
	}
	c.loop.Post(task)
}

func (c *cli) Connection() connection.Connection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn
}
