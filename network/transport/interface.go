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

// Package transport implements the socket I/O primitives (spec.md
// §4.4): listen/accept, connect, async read/write and graceful close
// over TCP and Unix-domain sockets, with the mandatory scope-lock
// idiom guarding every async continuation's access to a connection
// that might already be torn down. Grounded on golib/socket/server/tcp
// and golib/socket/client/tcp's New/IsRunning/IsGone surface, adapted
// from their net.Conn-update-function pattern to this module's
// loop-dispatched callback contract.
package transport

import "github.com/nabbar/srvlib/loop"

// ReadResult is delivered to an AsyncRead callback. Err is non-nil on
// any read failure, including the remote half-close represented by a
// zero-byte read (spec.md §4.5's "zero-byte reads ... are treated as
// disconnect").
type ReadResult struct {
	Data []byte
	Err  error
}

// WriteResult is delivered to an AsyncWrite callback.
type WriteResult struct {
	N   int
	Err error
}

// ConnectionHandle is the minimal transport-level surface Connection
// (C5) builds on (spec.md §4.4).
type ConnectionHandle interface {
	// ID is a per-process monotonic identifier assigned at accept/connect time.
	ID() uint64

	// RemoteEndpointString renders the peer address for logging.
	RemoteEndpointString() string

	// AsyncRead reads up to n bytes and dispatches cb on the
	// configured loop with the outcome. Short reads are normal.
	AsyncRead(n uint32, cb func(ReadResult))

	// AsyncWrite writes data and dispatches cb on the configured loop.
	AsyncWrite(data []byte, cb func(WriteResult))

	// Disconnect closes the underlying socket and, after every
	// in-flight callback has returned (the scope-lock guarantee),
	// fires registered disconnect observers in reverse-registration
	// order exactly once.
	Disconnect()

	// OnDisconnect registers an observer. Safe to call at any time
	// before Disconnect has fully completed.
	OnDisconnect(cb func())

	// IsConnected reports whether Disconnect has not (yet) completed.
	IsConnected() bool
}

// ServerHandle is the acceptor surface C6 builds on (spec.md §4.4).
type ServerHandle interface {
	// Start resolves the configured address, binds and listens, then
	// invokes onStarted (dispatched on the configured loop). Accepted
	// connections are reported via onNewConn; bind/listen/accept
	// failures via onFail. Returns a synchronous configuration error,
	// if any, without invoking onFail a second time for it.
	Start(onStarted func(), onNewConn func(ConnectionHandle), onFail func(error)) error

	// Stop refuses further accepts and releases the acceptor. If wait
	// is true, it blocks until the accept goroutine has exited.
	Stop(wait bool)

	// IsRunning reports whether the acceptor is live.
	IsRunning() bool
}

// ClientHandle is the outbound-connect surface C7 builds on (spec.md §4.4).
type ClientHandle interface {
	// Connect resolves and dials the configured address, dispatching
	// onConnected or onFail on the configured loop. Returns false only
	// on synchronous configuration errors.
	Connect(onConnected func(ConnectionHandle), onFail func(error)) bool
}

// loopDispatch is the shared shape every concrete handle closes over
// to hop callbacks onto the owning loop (spec.md §4.4 — "all callbacks
// are dispatched on the loop configured for that transport").
type loopDispatch struct {
	loop loop.Loop
}

func (d loopDispatch) post(task func()) {
	if d.loop == nil {
		task()
		return
	}
	d.loop.Post(task)
}
