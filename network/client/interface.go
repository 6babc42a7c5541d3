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
	"github.com/nabbar/srvlib/network/connection"
)

// ConnectFunc observes a successful outbound connect.
type ConnectFunc func(connection.Connection)

// FailFunc observes a synchronous or asynchronous connect failure.
type FailFunc func(error)

// Client establishes an outbound connection, owns it, and surfaces its
// events (spec.md §3's "Client" data model, §4.7). A Client does not
// expose its own disconnect event — subscribe via the Connection
// returned to ConnectFunc instead (spec.md §4.7).
type Client interface {
	// OnConnect registers an observer invoked on successful connect.
	// Must be called before Connect.
	OnConnect(cb ConnectFunc)

	// OnFail registers an observer invoked on connect failure. Must be
	// called before Connect.
	OnFail(cb FailFunc)

	// Connect dials the configured address. Returns false only if the
	// configuration is invalid or the connect was synchronously
	// aborted; asynchronous failure goes through OnFail.
	Connect() bool

	// Post forwards task to the client's worker loop.
	Post(task func())

	// Connection returns the current Connection, or nil if not
	// connected.
	Connection() connection.Connection
}
