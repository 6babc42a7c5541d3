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

// Package mtloop implements the multi-thread event loop (spec.md
// §4.3): the same Loop contract as package loop, plus num_threads(),
// with N worker goroutines pulling from one shared queue and a
// critical start barrier ensuring on_start only runs once all N
// workers have entered their run loop.
package mtloop

import "github.com/go-playground/validator/v10"

// Config configures a multi-thread Loop.
type Config struct {
	Name       string `mapstructure:"name" json:"name" yaml:"name" toml:"name" validate:"omitempty"`
	NumThreads int    `mapstructure:"numThreads" json:"numThreads" yaml:"numThreads" toml:"numThreads" validate:"required,gt=0"`
	QueueHint  int    `mapstructure:"queueHint" json:"queueHint" yaml:"queueHint" toml:"queueHint" validate:"gte=0"`
}

// DefaultConfig returns a 4-worker Config with a sane queue hint.
func DefaultConfig() Config {
	return Config{NumThreads: 4, QueueHint: 64}
}

func (c Config) Validate() error {
	return validator.New().Struct(c)
}

func (c Config) threadName() string {
	const max = 15
	if len(c.Name) <= max {
		return c.Name
	}
	return c.Name[:max]
}
