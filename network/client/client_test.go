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

package client_test

import (
	"time"

	"github.com/nabbar/srvlib/loop"
	"github.com/nabbar/srvlib/network/client"
	"github.com/nabbar/srvlib/network/connection"
	"github.com/nabbar/srvlib/network/framing"
	"github.com/nabbar/srvlib/network/transport"
	"github.com/nabbar/srvlib/network/unit"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Client", func() {
	It("connects, fires OnConnect and exchanges units with the accepted peer", func() {
		l := loop.New(loop.DefaultConfig())
		Expect(l.Start(nil)).ToNot(HaveOccurred())
		defer l.Stop()

		srvHandle := transport.NewTCPServer(transport.DefaultTCPConfig(18901), l)
		serverConn := make(chan connection.Connection, 1)
		Expect(srvHandle.Start(nil, func(h transport.ConnectionHandle) {
			serverConn <- connection.New(h, framing.NewRaw(), connection.DefaultConfig(), nil)
		}, nil)).ToNot(HaveOccurred())

		cli := client.NewTCP(transport.DefaultTCPConfig(18901), framing.NewRaw(), l, client.DefaultConfig(), nil)

		connected := make(chan connection.Connection, 1)
		cli.OnConnect(func(c connection.Connection) { connected <- c })

		Expect(cli.Connect()).To(BeTrue())

		var clientSide connection.Connection
		Eventually(connected, time.Second).Should(Receive(&clientSide))
		Expect(cli.Connection()).To(Equal(clientSide))

		var serverSide connection.Connection
		Eventually(serverConn, time.Second).Should(Receive(&serverSide))

		received := make(chan unit.Unit, 1)
		serverSide.OnReceive(func(_ connection.Connection, u unit.Unit) { received <- u })

		Expect(clientSide.Send(clientSide.Create([]byte("ping"), true))).To(BeTrue())

		var got unit.Unit
		Eventually(received, time.Second).Should(Receive(&got))
		Expect(got.AsString()).To(Equal([]byte("ping")))
	})

	It("clears Connection() once its connection is disconnected", func() {
		l := loop.New(loop.DefaultConfig())
		Expect(l.Start(nil)).ToNot(HaveOccurred())
		defer l.Stop()

		srvHandle := transport.NewTCPServer(transport.DefaultTCPConfig(18902), l)
		Expect(srvHandle.Start(nil, func(h transport.ConnectionHandle) {
			connection.New(h, framing.NewRaw(), connection.DefaultConfig(), nil)
		}, nil)).ToNot(HaveOccurred())

		cli := client.NewTCP(transport.DefaultTCPConfig(18902), framing.NewRaw(), l, client.DefaultConfig(), nil)
		connected := make(chan connection.Connection, 1)
		cli.OnConnect(func(c connection.Connection) { connected <- c })
		Expect(cli.Connect()).To(BeTrue())

		var c connection.Connection
		Eventually(connected, time.Second).Should(Receive(&c))
		c.Disconnect()

		Eventually(func() connection.Connection { return cli.Connection() }, time.Second).Should(BeNil())
	})

	It("reports a failed connect through OnFail", func() {
		l := loop.New(loop.DefaultConfig())
		Expect(l.Start(nil)).ToNot(HaveOccurred())
		defer l.Stop()

		// Nothing is listening on this port.
		cli := client.NewTCP(transport.DefaultTCPConfig(18903), framing.NewRaw(), l, client.DefaultConfig(), nil)

		failed := make(chan error, 1)
		cli.OnFail(func(err error) { failed <- err })
		Expect(cli.Connect()).To(BeTrue())

		Eventually(failed, time.Second).Should(Receive())
		Expect(cli.Connection()).To(BeNil())
	})
})
