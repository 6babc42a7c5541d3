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
	"github.com/nabbar/srvlib/network/unit"
)

// ReceiveFunc observes a unit deframed from this Connection's peer.
type ReceiveFunc func(Connection, unit.Unit)

// DisconnectFunc observes this Connection's single disconnect event.
type DisconnectFunc func(Connection)

// Subscription is returned by OnReceive/OnDisconnect (design notes §9:
// "subscription yields a handle whose drop unsubscribes"). Go has no
// destructors, so the adaptation keeps the method but requires an
// explicit call rather than a scope-exit.
type Subscription interface {
	Unsubscribe()
}

// Connection binds one transport endpoint to one codec clone and
// exposes unit-level send/receive (spec.md §4.5, §3's "Connection"
// data model).
type Connection interface {
	// ID returns the process-wide monotonic connection id.
	ID() uint64

	// RemoteEndpointString renders the peer address for logging.
	RemoteEndpointString() string

	// Create builds a wire-ready Unit via this Connection's codec
	// clone, mirroring framing.Builder.Create.
	Create(payload []byte, ok bool) unit.Unit

	// Post serialises u and appends it to the send buffer without
	// issuing a write (spec.md §4.5 — batching under caller control).
	// Returns false if the connection is already disconnected.
	Post(u unit.Unit) bool

	// Commit atomically takes the current send buffer and issues one
	// AsyncWrite. Returns false if the connection is already
	// disconnected or the buffer was empty.
	Commit() bool

	// Send is Post(u) followed by Commit().
	Send(u unit.Unit) bool

	// OnReceive subscribes to deframed units. Safe to call at any time.
	OnReceive(cb ReceiveFunc) Subscription

	// OnDisconnect subscribes to the single disconnect event, fired in
	// reverse-registration order (spec.md §4.5).
	OnDisconnect(cb DisconnectFunc) Subscription

	// Disconnect tears down the connection. Idempotent; disconnect
	// observers fire exactly once regardless of who called this.
	Disconnect()

	// IsConnected reports whether Disconnect has not yet completed.
	IsConnected() bool
}
