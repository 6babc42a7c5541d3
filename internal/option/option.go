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

// Package option implements the generic "apply a set of functional
// options to a config struct" idiom (supplementing spec.md from
// original_source/include/server_lib/options_helper.h), generalized
// with a type parameter so every component config (loop.Config,
// transport.TCPConfig, app.Config, ...) can share one Option[T] type
// and one Apply helper instead of hand-rolling it per package, the way
// golib/logger/options.go hand-rolls a single-purpose version of this
// for Logger.SetOptions.
package option

// Option mutates a *T in place; T is typically a component's Config.
type Option[T any] func(*T)

// Apply runs every non-nil option against cfg in order.
func Apply[T any](cfg *T, opts ...Option[T]) {
	for _, o := range opts {
		if o != nil {
			o(cfg)
		}
	}
}
