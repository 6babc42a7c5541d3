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

// Package loop implements the single-thread cooperative event loop
// (spec.md §4.2): a FIFO task queue plus one-shot and periodical
// timers cancellable via a generation id, bound to one named OS
// thread. Grounded on golib/runner/startStop's start/stop/IsRunning
// contract, generalised with a queue and timer wheel.
package loop

import (
	"github.com/go-playground/validator/v10"
)

// MaxThreadNameLen is the longest OS thread name the platform thread
// naming call accepts; longer names are silently truncated (spec.md
// §4.2's change_thread_name).
const MaxThreadNameLen = 15

// Config configures a Loop. Validated with go-playground/validator/v10,
// the same struct-tag convention golib/config and golib/httpserver use.
type Config struct {
	// Name is the loop's display / OS thread name, truncated to
	// MaxThreadNameLen bytes at Start.
	Name string `mapstructure:"name" json:"name" yaml:"name" toml:"name" validate:"omitempty"`

	// QueueHint sizes the initial task queue buffer; it is a
	// performance hint only, never a hard cap.
	QueueHint int `mapstructure:"queueHint" json:"queueHint" yaml:"queueHint" toml:"queueHint" validate:"gte=0"`
}

// DefaultConfig returns a Config with a zero-value name and a sane
// queue hint.
func DefaultConfig() Config {
	return Config{QueueHint: 64}
}

// Validate checks the configuration, matching the
// "Validate() returns a wrapped validator error" convention used
// throughout this module's Config types.
func (c Config) Validate() error {
	return validator.New().Struct(c)
}

func (c Config) threadName() string {
	if len(c.Name) <= MaxThreadNameLen {
		return c.Name
	}
	return c.Name[:MaxThreadNameLen]
}
