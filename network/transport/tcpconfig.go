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
	"strconv"
	"syscall"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sys/unix"
)

// TCPConfig configures a TCP acceptor or an outbound TCP connect
// (spec.md §4.4, §6 — "TCP (host+port; default host localhost)").
type TCPConfig struct {
	Host string `mapstructure:"host" json:"host" yaml:"host" toml:"host" validate:"omitempty"`
	Port uint16 `mapstructure:"port" json:"port" yaml:"port" toml:"port" validate:"required,gt=0"`

	// ReuseAddr sets SO_REUSEADDR on the listening socket. Default on
	// for servers (spec.md §4.4).
	ReuseAddr bool `mapstructure:"reuseAddr" json:"reuseAddr" yaml:"reuseAddr" toml:"reuseAddr"`

	// ConnectTimeoutMs bounds an outbound connect; 0 means platform
	// default (spec.md §4.7).
	ConnectTimeoutMs uint32 `mapstructure:"connectTimeoutMs" json:"connectTimeoutMs" yaml:"connectTimeoutMs" toml:"connectTimeoutMs" validate:"gte=0"`
}

// DefaultTCPConfig returns a Config listening on localhost with
// SO_REUSEADDR enabled.
func DefaultTCPConfig(port uint16) TCPConfig {
	return TCPConfig{Host: "localhost", Port: port, ReuseAddr: true}
}

func (c TCPConfig) Validate() error {
	return validator.New().Struct(c)
}

func (c TCPConfig) address() string {
	host := c.Host
	if host == "" {
		host = "localhost"
	}
	return net.JoinHostPort(host, strconv.Itoa(int(c.Port)))
}

// listen binds and listens, applying SO_REUSEADDR via the socket
// Control hook when configured (the net.ListenConfig.Control idiom for
// raw socket options, wired to golang.org/x/sys/unix per this
// module's domain stack).
func (c TCPConfig) listen(ctx context.Context) (net.Listener, error) {
	lc := net.ListenConfig{}
	if c.ReuseAddr {
		lc.Control = func(_, _ string, conn syscall.RawConn) error {
			var sockErr error
			err := conn.Control(func(fd uintptr) {
				sockErr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEADDR, 1)
			})
			if err != nil {
				return err
			}
			return sockErr
		}
	}
	return lc.Listen(ctx, "tcp", c.address())
}

func (c TCPConfig) dial(ctx context.Context) (net.Conn, error) {
	d := net.Dialer{}
	if c.ConnectTimeoutMs > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, msDuration(c.ConnectTimeoutMs))
		defer cancel()
	}
	return d.DialContext(ctx, "tcp", c.address())
}
