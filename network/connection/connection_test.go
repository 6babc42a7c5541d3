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

package connection_test

import (
	"sync/atomic"
	"time"

	"github.com/nabbar/srvlib/loop"
	"github.com/nabbar/srvlib/network/connection"
	"github.com/nabbar/srvlib/network/framing"
	"github.com/nabbar/srvlib/network/transport"
	"github.com/nabbar/srvlib/network/unit"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// pairUp starts a TCP server and client transport on the given port,
// wraps both accepted/connected handles into raw-codec Connections, and
// returns the two ends once both are live.
func pairUp(port uint16) (server connection.Connection, client connection.Connection) {
	l := loop.New(loop.DefaultConfig())
	Expect(l.Start(nil)).ToNot(HaveOccurred())

	srvHandle := transport.NewTCPServer(transport.DefaultTCPConfig(port), l)
	cliHandle := transport.NewTCPClient(transport.DefaultTCPConfig(port), l)

	serverCh := make(chan connection.Connection, 1)
	Expect(srvHandle.Start(nil, func(h transport.ConnectionHandle) {
		serverCh <- connection.New(h, framing.NewRaw(), connection.DefaultConfig(), nil)
	}, nil)).ToNot(HaveOccurred())

	clientCh := make(chan connection.Connection, 1)
	Expect(cliHandle.Connect(func(h transport.ConnectionHandle) {
		clientCh <- connection.New(h, framing.NewRaw(), connection.DefaultConfig(), nil)
	}, nil)).To(BeTrue())

	var s, c connection.Connection
	Eventually(serverCh, time.Second).Should(Receive(&s))
	Eventually(clientCh, time.Second).Should(Receive(&c))
	return s, c
}

var _ = Describe("Connection", func() {
	It("delivers a unit sent by one side to the other's OnReceive", func() {
		server, client := pairUp(18701)

		received := make(chan unit.Unit, 1)
		server.OnReceive(func(_ connection.Connection, u unit.Unit) {
			received <- u
		})

		Expect(client.Send(client.Create([]byte("hello"), true))).To(BeTrue())

		var got unit.Unit
		Eventually(received, time.Second).Should(Receive(&got))
		Expect(got.AsString()).To(Equal([]byte("hello")))
		Expect(got.Ok()).To(BeTrue())
	})

	It("fires OnDisconnect in reverse-registration order exactly once", func() {
		server, client := pairUp(18702)
		_ = client

		var order []int
		done := make(chan struct{})
		server.OnDisconnect(func(connection.Connection) {
			order = append(order, 1)
			close(done)
		})
		server.OnDisconnect(func(connection.Connection) { order = append(order, 2) })
		server.OnDisconnect(func(connection.Connection) { order = append(order, 3) })

		server.Disconnect()
		Eventually(done, time.Second).Should(BeClosed())
		Expect(order).To(Equal([]int{3, 2, 1}))
		Expect(server.IsConnected()).To(BeFalse())
	})

	It("stops delivering to an unsubscribed receiver", func() {
		server, client := pairUp(18703)

		var calls atomic.Int32
		sub := server.OnReceive(func(connection.Connection, unit.Unit) { calls.Add(1) })
		sub.Unsubscribe()

		Expect(client.Send(client.Create([]byte("x"), true))).To(BeTrue())
		time.Sleep(50 * time.Millisecond)
		Expect(calls.Load()).To(Equal(int32(0)))
	})

	It("refuses Post/Commit/Send once disconnected", func() {
		server, client := pairUp(18704)
		_ = server

		client.Disconnect()
		Eventually(func() bool { return client.IsConnected() }, time.Second).Should(BeFalse())

		Expect(client.Post(client.Create(nil, true))).To(BeFalse())
		Expect(client.Commit()).To(BeFalse())
		Expect(client.Send(client.Create(nil, true))).To(BeFalse())
	})
})
