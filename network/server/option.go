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
	"github.com/nabbar/srvlib/internal/option"
	"github.com/nabbar/srvlib/network/connection"
)

// Option mutates a Config at construction time.
type Option = option.Option[Config]

// WithName labels this server in logs and metrics.
func WithName(name string) Option {
	return func(c *Config) { c.Name = name }
}

// WithMaxInFlightAccepts bounds concurrent accept handling.
func WithMaxInFlightAccepts(n int64) Option {
	return func(c *Config) { c.MaxInFlightAccepts = n }
}

// WithConnectionConfig overrides every accepted Connection's settings.
func WithConnectionConfig(cc connection.Config) Option {
	return func(c *Config) { c.Connection = cc }
}

// WithStopWait sets whether Stop blocks for connection drain.
func WithStopWait(wait bool) Option {
	return func(c *Config) { c.StopWait = wait }
}
