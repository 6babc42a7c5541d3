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
	"github.com/nabbar/srvlib/network/connection"
)

// NewConnFunc observes a freshly-accepted Connection, dispatched on
// the server's loop (spec.md §4.6).
type NewConnFunc func(connection.Connection)

// DisconnectFunc observes one accepted Connection's disconnect.
type DisconnectFunc func(connection.Connection)

// FailFunc observes a bind/listen/accept failure (spec.md §4.6, §7).
type FailFunc func(error)

// Server accepts inbound connections, owns their lifetimes, and fans
// out their events (spec.md §3's "Server" data model, §4.6).
type Server interface {
	// OnStart registers an observer invoked once bind+listen succeeds.
	// Must be called before Start.
	OnStart(cb func())

	// OnNewConnection registers an observer invoked for every accepted
	// connection. Must be called before Start.
	OnNewConnection(cb NewConnFunc)

	// OnDisconnect registers an observer invoked when an accepted
	// connection disconnects, after it has been removed from the
	// internal id -> Connection map.
	OnDisconnect(cb DisconnectFunc)

	// OnFail registers an observer invoked on bind/listen/accept failure.
	OnFail(cb FailFunc)

	// Start resolves, binds and listens, then begins accepting.
	// Returns a synchronous configuration/bind/listen error, if any.
	Start() error

	// Stop refuses further accepts and disconnects every open
	// connection; if Config.StopWait is true it blocks until their
	// disconnect handlers have completed.
	Stop()

	// IsRunning reports whether the acceptor is live.
	IsRunning() bool

	// Post forwards task to the server's loop.
	Post(task func())

	// ConnectionCount reports the number of currently-open connections.
	ConnectionCount() int
}
