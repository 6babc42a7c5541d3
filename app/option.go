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

package app

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/nabbar/srvlib/internal/option"
	"github.com/nabbar/srvlib/loop"
)

// Option mutates a Config at construction time.
type Option = option.Option[Config]

// WithName sets the process's display / main-loop thread name.
func WithName(name string) Option {
	return func(c *Config) { c.Name = name }
}

// WithStdump enables a fatal-signal stack dump written to path.
func WithStdump(path string) Option {
	return func(c *Config) { c.StdumpPath = path }
}

// WithCorefile enables raising RLIMIT_CORE to unbounded; when
// disableExclPolicy is true a pre-existing core file is moved aside
// first.
func WithCorefile(disableExclPolicy bool) Option {
	return func(c *Config) {
		c.EnableCorefile = true
		c.CorefileDisableExclPolicy = disableExclPolicy
	}
}

// WithCorefileFailThreadOnly records a request to restrict the core
// dump to the faulting thread (see Config.CorefileFailThreadOnly).
func WithCorefileFailThreadOnly(only bool) Option {
	return func(c *Config) { c.CorefileFailThreadOnly = only }
}

// WithLockIO redirects stdout/stderr to the null device at Init.
func WithLockIO(lock bool) Option {
	return func(c *Config) { c.LockIO = lock }
}

// WithMakeDaemon re-execs the process detached from its controlling
// terminal before Run starts the main loop.
func WithMakeDaemon(daemon bool) Option {
	return func(c *Config) { c.MakeDaemon = daemon }
}

// WithWorkDir chdir's into dir at Init.
func WithWorkDir(dir string) Option {
	return func(c *Config) { c.WorkDir = dir }
}

// WithMainLoopConfig overrides the MainLoop's settings.
func WithMainLoopConfig(cfg loop.Config) Option {
	return func(c *Config) { c.MainLoop = cfg }
}

// WithRegisterer enables process-lifecycle metrics on reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(c *Config) { c.Registerer = reg }
}
