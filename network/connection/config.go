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

// Package connection implements C5 (spec.md §4.5): it binds one
// transport.ConnectionHandle to one framing.Builder clone and exposes
// unit-level send/receive instead of raw bytes. Grounded on
// original_source/include/server_lib/network/connection.h, adapted
// from golib/socket's net.Conn-wrapping update-function pattern to
// this module's codec-framed pipeline.
package connection

import (
	"github.com/go-playground/validator/v10"
)

// DefaultChunkSize is the per-read buffer size used when Config.ChunkSize
// is left at zero (spec.md §4.5).
const DefaultChunkSize = 4096

// Config configures a Connection's receive pipeline.
type Config struct {
	// ChunkSize bounds each AsyncRead request against the transport.
	// Short reads are normal; the codec's Feed loop reassembles units
	// across them.
	ChunkSize uint32 `mapstructure:"chunkSize" json:"chunkSize" yaml:"chunkSize" toml:"chunkSize" validate:"gte=0"`
}

// DefaultConfig returns a Config with DefaultChunkSize.
func DefaultConfig() Config {
	return Config{ChunkSize: DefaultChunkSize}
}

func (c Config) Validate() error {
	return validator.New().Struct(c)
}

func (c Config) chunkSize() uint32 {
	if c.ChunkSize == 0 {
		return DefaultChunkSize
	}
	return c.ChunkSize
}
