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

package server_test

import (
	"sync/atomic"
	"time"

	"github.com/nabbar/srvlib/loop"
	"github.com/nabbar/srvlib/network/connection"
	"github.com/nabbar/srvlib/network/framing"
	"github.com/nabbar/srvlib/network/server"
	"github.com/nabbar/srvlib/network/transport"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Server", func() {
	It("fires OnStart and OnNewConnection for an accepted peer", func() {
		l := loop.New(loop.DefaultConfig())
		Expect(l.Start(nil)).ToNot(HaveOccurred())
		defer l.Stop()

		srv := server.NewTCP(transport.DefaultTCPConfig(18801), framing.NewRaw(), l, server.DefaultConfig(), nil, nil)

		started := make(chan struct{})
		newConn := make(chan connection.Connection, 1)
		srv.OnStart(func() { close(started) })
		srv.OnNewConnection(func(c connection.Connection) { newConn <- c })

		Expect(srv.Start()).ToNot(HaveOccurred())
		defer srv.Stop()

		Eventually(started, time.Second).Should(BeClosed())

		cli := transport.NewTCPClient(transport.DefaultTCPConfig(18801), l)
		Expect(cli.Connect(func(transport.ConnectionHandle) {}, nil)).To(BeTrue())

		Eventually(newConn, time.Second).Should(Receive())
		Eventually(func() int { return srv.ConnectionCount() }, time.Second).Should(Equal(1))
	})

	It("fans out OnDisconnect and decrements ConnectionCount when a peer disconnects", func() {
		l := loop.New(loop.DefaultConfig())
		Expect(l.Start(nil)).ToNot(HaveOccurred())
		defer l.Stop()

		srv := server.NewTCP(transport.DefaultTCPConfig(18802), framing.NewRaw(), l, server.DefaultConfig(), nil, nil)

		newConn := make(chan connection.Connection, 1)
		var disconnected atomic.Bool
		srv.OnNewConnection(func(c connection.Connection) { newConn <- c })
		srv.OnDisconnect(func(connection.Connection) { disconnected.Store(true) })

		Expect(srv.Start()).ToNot(HaveOccurred())
		defer srv.Stop()

		cli := transport.NewTCPClient(transport.DefaultTCPConfig(18802), l)
		clientConn := make(chan transport.ConnectionHandle, 1)
		Expect(cli.Connect(func(h transport.ConnectionHandle) { clientConn <- h }, nil)).To(BeTrue())

		var accepted connection.Connection
		Eventually(newConn, time.Second).Should(Receive(&accepted))

		var ch transport.ConnectionHandle
		Eventually(clientConn, time.Second).Should(Receive(&ch))
		ch.Disconnect()

		Eventually(func() bool { return disconnected.Load() }, time.Second).Should(BeTrue())
		Eventually(func() int { return srv.ConnectionCount() }, time.Second).Should(Equal(0))
	})

	It("stops accepting and disconnects open connections on Stop", func() {
		l := loop.New(loop.DefaultConfig())
		Expect(l.Start(nil)).ToNot(HaveOccurred())
		defer l.Stop()

		srv := server.NewTCP(transport.DefaultTCPConfig(18803), framing.NewRaw(), l, server.DefaultConfig(), nil, nil)
		Expect(srv.Start()).ToNot(HaveOccurred())

		cli := transport.NewTCPClient(transport.DefaultTCPConfig(18803), l)
		connected := make(chan struct{})
		Expect(cli.Connect(func(transport.ConnectionHandle) { close(connected) }, nil)).To(BeTrue())
		Eventually(connected, time.Second).Should(BeClosed())
		Eventually(func() int { return srv.ConnectionCount() }, time.Second).Should(Equal(1))

		srv.Stop()
		Expect(srv.IsRunning()).To(BeFalse())
		// Config.StopWait defaults to true, so Stop must have already
		// waited for the accepted connection's disconnect handlers to
		// run; this assertion must hold synchronously, with no Eventually.
		Expect(srv.ConnectionCount()).To(Equal(0))
	})
})
