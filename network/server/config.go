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

// Package server implements C6 (spec.md §4.6): an acceptor that owns
// every accepted Connection's lifetime and fans out start/new-connection/
// disconnect/fail events to the caller. Grounded on
// original_source/include/server_lib/network/server.h and
// golib/socket/server/tcp's New(cfg, loop).Start/Stop shape.
package server

import (
	"github.com/go-playground/validator/v10"

	"github.com/nabbar/srvlib/network/connection"
)

// Config bounds the accept loop's admission concurrency and the
// per-connection receive pipeline's chunk size.
type Config struct {
	// Name labels this server in logs and metrics (e.g. "game-tcp").
	Name string `mapstructure:"name" json:"name" yaml:"name" toml:"name" validate:"omitempty"`

	// MaxInFlightAccepts bounds how many accepted connections are held
	// open at once via a weighted semaphore (SPEC_FULL's domain-stack
	// wiring of golang.org/x/sync/semaphore, grounded on
	// golib/semaphore/sem): the accept callback takes a slot, waiting
	// for one if none is free, and the slot is released when that
	// connection disconnects. 0 means unbounded.
	MaxInFlightAccepts int64 `mapstructure:"maxInFlightAccepts" json:"maxInFlightAccepts" yaml:"maxInFlightAccepts" toml:"maxInFlightAccepts" validate:"gte=0"`

	// Connection configures every accepted Connection's receive pipeline.
	Connection connection.Config `mapstructure:"connection" json:"connection" yaml:"connection" toml:"connection"`

	// StopWait, when true, makes Stop block until every connection's
	// disconnect handlers have completed (spec.md §4.6).
	StopWait bool `mapstructure:"stopWait" json:"stopWait" yaml:"stopWait" toml:"stopWait"`
}

// DefaultConfig returns a Config with an unbounded accept gate and
// default connection settings.
func DefaultConfig() Config {
	return Config{Connection: connection.DefaultConfig(), StopWait: true}
}

func (c Config) Validate() error {
	return validator.New().Struct(c)
}
