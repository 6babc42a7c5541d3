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

// Package client implements C7 (spec.md §4.7): an outbound connect that
// owns at most one Connection and surfaces its events, sharing the
// worker loop with user code so application logic can execute alongside
// receive callbacks without its own synchronisation. Grounded on
// original_source/include/server_lib/network/client.h and
// golib/socket/client/tcp's New(cfg, loop).Connect shape — the
// "persistent reconnecting client" (nt_persist_client) named in spec.md
// §1 as out of scope is deliberately not built here.
package client

import (
	"github.com/go-playground/validator/v10"

	"github.com/nabbar/srvlib/network/connection"
)

// Config configures the single Connection a Client may hold.
type Config struct {
	// Name labels this client in logs.
	Name string `mapstructure:"name" json:"name" yaml:"name" toml:"name" validate:"omitempty"`

	// Connection configures the opened Connection's receive pipeline.
	Connection connection.Config `mapstructure:"connection" json:"connection" yaml:"connection" toml:"connection"`
}

// DefaultConfig returns a Config with default connection settings.
func DefaultConfig() Config {
	return Config{Connection: connection.DefaultConfig()}
}

func (c Config) Validate() error {
	return validator.New().Struct(c)
}
