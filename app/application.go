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
	"os"
	"sync"
	"sync/atomic"
	"time"

	liberr "github.com/nabbar/srvlib/internal/errors"
	"github.com/nabbar/srvlib/internal/logger"
	"github.com/nabbar/srvlib/internal/metrics"
	"github.com/nabbar/srvlib/internal/option"
	"github.com/nabbar/srvlib/loop"
)

var (
	instMu sync.Mutex
	inst   *app
)

// Init configures and installs the process-wide Application singleton.
// It must run before any other goroutine is spawned: daemonization (if
// requested) re-execs the whole process, and the core-dump policy must
// be in place before anything can crash. Returns an error if the
// singleton was already initialized.
func Init(cfg Config, log logger.FuncLog, opts ...Option) (Application, error) {
	option.Apply(&cfg, opts...)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	instMu.Lock()
	defer instMu.Unlock()

	if inst != nil {
		return nil, liberr.New(liberr.CodeInvariant, "application: already initialized")
	}

	if cfg.WorkDir != "" {
		if err := ChangeCurrentDir(cfg.WorkDir); err != nil {
			return nil, liberr.New(liberr.CodeConfig, "application: change working directory", err)
		}
	}

	if cfg.MakeDaemon {
		if err := daemonize(); err != nil {
			return nil, liberr.New(liberr.CodeConfig, "application: daemonize", err)
		}
	}

	if cfg.LockIO {
		if err := lockIO(); err != nil {
			return nil, liberr.New(liberr.CodeConfig, "application: lock io", err)
		}
	}

	if cfg.EnableCorefile {
		if err := enableCorefile(cfg.CorefileDisableExclPolicy); err != nil {
			// Non-fatal: a missing privilege to raise RLIMIT_CORE should not
			// prevent the process from starting.
			if log != nil && log() != nil {
				log().Warning("application: enable corefile", logger.Fields{"error": err.Error()})
			}
		}
	}

	a := &app{
		cfg:    cfg,
		log:    log,
		stopCh: make(chan struct{}),
	}
	a.mainLoop = loop.New(cfg.MainLoop, loop.WithName(cfg.Name))
	if cfg.Registerer != nil {
		a.queueDepth = metrics.NewLoopQueueDepth(cfg.Registerer, "srvlib")
	}

	inst = a
	return a, nil
}

// Instance returns the current Application singleton, or nil if Init
// has not been called.
func Instance() Application {
	instMu.Lock()
	defer instMu.Unlock()
	if inst == nil {
		return nil
	}
	return inst
}

// ChangeCurrentDir changes the process's working directory, the Go
// equivalent of the original's change_current_dir: a daemonized process
// has no meaningful inherited cwd to rely on.
func ChangeCurrentDir(path string) error {
	return os.Chdir(path)
}

type app struct {
	cfg Config
	log logger.FuncLog

	mainLoop   loop.Loop
	queueDepth *metrics.LoopQueueDepth

	mu        sync.Mutex
	onStart   []func()
	onExit    []func()
	onControl []func(ControlSignal)
	onFail    []func(error)

	running  atomic.Bool
	exitCode atomic.Int64
	stopOnce sync.Once
	stopCh   chan struct{}
}

func (a *app) logger() logger.Logger {
	if a.log == nil {
		return logger.Discard
	}
	if l := a.log(); l != nil {
		return l
	}
	return logger.Discard
}

func (a *app) Loop() loop.Loop { return a.mainLoop }

func (a *app) OnStart(cb func()) {
	if cb == nil {
		return
	}
	a.mu.Lock()
	a.onStart = append(a.onStart, cb)
	a.mu.Unlock()
}

func (a *app) OnExit(cb func()) {
	if cb == nil {
		return
	}
	a.mu.Lock()
	a.onExit = append(a.onExit, cb)
	a.mu.Unlock()
}

func (a *app) OnControl(cb func(ControlSignal)) {
	if cb == nil {
		return
	}
	a.mu.Lock()
	a.onControl = append(a.onControl, cb)
	a.mu.Unlock()
}

func (a *app) OnFail(cb func(error)) {
	if cb == nil {
		return
	}
	a.mu.Lock()
	a.onFail = append(a.onFail, cb)
	a.mu.Unlock()
}

func (a *app) IsRunning() bool { return a.running.Load() }

// Run starts the main loop, installs signal handling, and blocks until
// a termination signal, a fatal signal, or an explicit Stop unblocks
// it (spec.md §4.8's run()/wait(), merged into one call since Go has
// no detached-thread equivalent of the original's separate run()).
func (a *app) Run() int {
	if !a.running.CompareAndSwap(false, true) {
		return int(a.exitCode.Load())
	}
	defer a.running.Store(false)

	if err := a.mainLoop.Start(a.fireStart); err != nil {
		a.fireFail(err)
		return 1
	}

	if a.queueDepth != nil {
		timer := a.mainLoop.Repeat(time.Second, func() {
			a.queueDepth.Set(a.cfg.Name, a.mainLoop.QueueLen())
		})
		defer timer.Stop()
	}

	a.runSignalLoop()

	// on_exit callbacks run on the main loop thread, matching the
	// original's documented contract ("invokes all callbacks (expect
	// fail_callback) in main thread where main_loop was runned",
	// original_source/include/server_lib/application.h): post fireExit
	// as a task and wait for it to actually run before the loop is
	// stopped, since a stopped loop's run goroutine has already
	// returned and would never execute a task queued afterward.
	exitDone := make(chan struct{})
	a.mainLoop.Post(func() {
		a.fireExit()
		close(exitDone)
	})
	<-exitDone
	a.mainLoop.Stop()

	return int(a.exitCode.Load())
}

// Stop requests a clean shutdown with the given exit code. Safe from
// any goroutine; only the first call's code takes effect.
func (a *app) Stop(code int) {
	a.stopOnce.Do(func() {
		a.exitCode.Store(int64(code))
		close(a.stopCh)
	})
}

func (a *app) fireStart() {
	a.mu.Lock()
	cbs := append([]func(){}, a.onStart...)
	a.mu.Unlock()
	for _, cb := range cbs {
		cb()
	}
}

func (a *app) fireExit() {
	a.mu.Lock()
	cbs := append([]func(){}, a.onExit...)
	a.mu.Unlock()
	for _, cb := range cbs {
		cb()
	}
}

func (a *app) fireControl(sig ControlSignal) {
	a.mu.Lock()
	cbs := append([]func(ControlSignal){}, a.onControl...)
	a.mu.Unlock()
	for _, cb := range cbs {
		cb(sig)
	}
}

func (a *app) fireFail(err error) {
	a.logger().Error("application: fatal", logger.Fields{"error": err.Error()})
	a.mu.Lock()
	cbs := append([]func(error){}, a.onFail...)
	a.mu.Unlock()
	for _, cb := range cbs {
		cb(err)
	}
}

// handleFatal records a best-effort stack dump, fans out OnFail, then
// restores the signal's default disposition and re-raises it so the
// kernel's own core-dump/termination behaviour still applies — this
// process never silently survives a fatal signal.
func (a *app) handleFatal(sig os.Signal) {
	if a.cfg.StdumpPath != "" {
		if err := writeStdump(a.cfg.StdumpPath, sig); err != nil {
			a.logger().Warning("application: write stack dump", logger.Fields{"error": err.Error()})
		}
	}
	a.fireFail(liberr.Newf(liberr.CodeFatalSignal, "application: fatal signal %s", sig))
	raiseDefault(sig)
}
