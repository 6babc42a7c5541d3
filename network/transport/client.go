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

	liberr "github.com/nabbar/srvlib/internal/errors"
	"github.com/nabbar/srvlib/loop"
)

var errNilDialer = liberr.New(liberr.CodeConfig, "transport: client has no dialer configured")

// dialer is the shared shape TCPConfig.dial / UnixConfig.dial fit, so
// one dialClient implementation backs both transports (spec.md §4.4's
// ClientHandle, grounded on golib/socket/client/tcp's New/Connect
// shape, generalised to any net.Conn dialer).
type dialer func(context.Context) (net.Conn, error)

type dialClient struct {
	loopDispatch
	dial dialer
}

// NewTCPClient builds a ClientHandle that dials cfg's address,
// dispatching callbacks on l.
func NewTCPClient(cfg TCPConfig, l loop.Loop) ClientHandle {
	return &dialClient{loopDispatch: loopDispatch{loop: l}, dial: cfg.dial}
}

// NewUnixClient builds a ClientHandle that dials cfg's Unix-domain
// socket path, dispatching callbacks on l.
func NewUnixClient(cfg UnixConfig, l loop.Loop) ClientHandle {
	return &dialClient{loopDispatch: loopDispatch{loop: l}, dial: cfg.dial}
}

// Connect resolves and dials in a background goroutine (spec.md §4.7:
// "connect with configurable timeout ... returns false only if ...
// synchronously aborted"); the dial itself, and any timeout, is
// entirely the dialer's concern (TCPConfig/UnixConfig.dial already
// apply ConnectTimeoutMs via context.WithTimeout).
func (c *dialClient) Connect(onConnected func(ConnectionHandle), onFail func(error)) bool {
	if c.dial == nil {
		if onFail != nil {
			c.post(func() { onFail(errNilDialer) })
		}
		return false
	}

	go func() {
		conn, err := c.dial(context.Background())
		if err != nil {
			if onFail != nil {
				c.post(func() { onFail(err) })
			}
			return
		}

		ch := newConnHandle(NewConnID(), conn, c.loop)
		if onConnected != nil {
			c.post(func() { onConnected(ch) })
		}
	}()
	return true
}
