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

// Package app implements C8 (spec.md §4.8): the process-wide Application
// controller binding signal handling, a main loop and process lifecycle
// into one singleton. Grounded on golib/runner/startStop's start/stop
// contract and httpserver/run's waitNotify signal-select pattern,
// generalised from one server's lifecycle to the whole process's, and
// on original_source/include/server_lib for the crash-dump and
// daemonization surface the distilled spec.md dropped.
package app

import (
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"

	"github.com/nabbar/srvlib/loop"
)

// Config configures the Application singleton (spec.md §4.8's
// enable_stdump/enable_corefile/lock_io/make_daemon surface).
type Config struct {
	// Name labels this process in logs and as the main loop's OS
	// thread name.
	Name string `mapstructure:"name" json:"name" yaml:"name" toml:"name" validate:"omitempty"`

	// StdumpPath, if non-empty, is the file a fatal signal's stack
	// trace is appended to. Corresponds to enable_stdump(path).
	StdumpPath string `mapstructure:"stdumpPath" json:"stdumpPath" yaml:"stdumpPath" toml:"stdumpPath" validate:"omitempty"`

	// EnableCorefile raises RLIMIT_CORE to unbounded so a fatal signal
	// produces a core file. Corresponds to enable_corefile.
	EnableCorefile bool `mapstructure:"enableCorefile" json:"enableCorefile" yaml:"enableCorefile" toml:"enableCorefile"`

	// CorefileDisableExclPolicy, when set alongside EnableCorefile,
	// renames any pre-existing core file out of the way first instead
	// of leaving the kernel's overwrite-or-skip policy to decide.
	CorefileDisableExclPolicy bool `mapstructure:"corefileDisableExclPolicy" json:"corefileDisableExclPolicy" yaml:"corefileDisableExclPolicy" toml:"corefileDisableExclPolicy"`

	// CorefileFailThreadOnly records a request to restrict the core
	// dump to the faulting thread. Recorded but not enforced: Linux
	// has no portable, unprivileged per-thread core dump knob, so this
	// is surfaced to operators (e.g. to set coredump_filter out of
	// band) rather than silently ignored.
	CorefileFailThreadOnly bool `mapstructure:"corefileFailThreadOnly" json:"corefileFailThreadOnly" yaml:"corefileFailThreadOnly" toml:"corefileFailThreadOnly"`

	// LockIO redirects os.Stdout and os.Stderr to the null device during
	// Init, the way a daemonized process silences its original
	// controlling terminal.
	LockIO bool `mapstructure:"lockIO" json:"lockIO" yaml:"lockIO" toml:"lockIO"`

	// MakeDaemon re-execs the process detached from its controlling
	// terminal, in its own session, before MainLoop starts.
	MakeDaemon bool `mapstructure:"makeDaemon" json:"makeDaemon" yaml:"makeDaemon" toml:"makeDaemon"`

	// WorkDir, if non-empty, is chdir'd into at Init, the daemonized
	// process's replacement for a controlling terminal's cwd.
	WorkDir string `mapstructure:"workDir" json:"workDir" yaml:"workDir" toml:"workDir" validate:"omitempty"`

	// MainLoop configures the MainLoop wrapping the process's initial
	// thread (spec.md §4.8).
	MainLoop loop.Config `mapstructure:"mainLoop" json:"mainLoop" yaml:"mainLoop" toml:"mainLoop"`

	// Registerer, if non-nil, registers a main loop queue-depth gauge,
	// sampled once a second while Run is active. Left nil, no metrics
	// are recorded.
	Registerer prometheus.Registerer `mapstructure:"-" json:"-" yaml:"-" toml:"-"`
}

// DefaultConfig returns a Config with a default-sized main loop and no
// crash-handling, daemonization or IO-locking behaviour enabled.
func DefaultConfig() Config {
	return Config{MainLoop: loop.DefaultConfig()}
}

// Validate checks the configuration, matching the
// "Validate() returns a wrapped validator error" convention used
// throughout this module's Config types.
func (c Config) Validate() error {
	return validator.New().Struct(c)
}

// FromViper unmarshals key into a Config seeded with DefaultConfig,
// the way golib/viper-backed components load their settings: callers
// hold the *viper.Viper instance and decide when to reload it, this
// module only consumes one snapshot.
func FromViper(v *viper.Viper, key string) (Config, error) {
	cfg := DefaultConfig()
	if v == nil {
		return cfg, nil
	}
	var err error
	if key == "" {
		err = v.Unmarshal(&cfg)
	} else {
		err = v.UnmarshalKey(key, &cfg)
	}
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}
