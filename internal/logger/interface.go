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

// Package logger is the structured-logging ambient layer shared by every
// component of the runtime substrate (event loops, transport, connection,
// server, client, application controller). It wraps logrus the way
// golib/logger does: a small Logger interface, level-gated sinks, and
// per-component default Fields, so a host process can inject one Logger
// instance and have every subsystem log through it consistently.
package logger

import (
	"io"
)

// FuncLog is a lazy accessor for a Logger instance, the same dependency
// injection idiom golib/logger uses so components can be constructed
// before a logger is configured.
type FuncLog func() Logger

// Logger is the logging contract every component in this module depends
// on, never on logrus or stdlib log directly.
type Logger interface {
	io.Writer

	// SetLevel changes the minimal severity written to the sink.
	SetLevel(lvl Level)

	// GetLevel returns the minimal severity written to the sink.
	GetLevel() Level

	// SetFields replaces the default fields attached to every entry.
	SetFields(f Fields)

	// GetFields returns the default fields attached to every entry.
	GetFields() Fields

	// Clone duplicates the logger with its own copy of default fields,
	// so a per-connection or per-loop logger can add an id field
	// without mutating the parent's fields.
	Clone() Logger

	Debug(message string, fields Fields)
	Info(message string, fields Fields)
	Warning(message string, fields Fields)
	Error(message string, fields Fields)

	// Fatal logs at FatalLevel; unlike golib's logger, it never calls
	// os.Exit itself — callers (the application controller) decide
	// the exit path explicitly.
	Fatal(message string, fields Fields)
}

// Discard is a Logger that drops every entry; the zero-value default
// every component falls back to when no logger is injected.
var Discard Logger = &discard{fields: Fields{}}

type discard struct {
	lvl    Level
	fields Fields
}

func (d *discard) Write(p []byte) (int, error)  { return len(p), nil }
func (d *discard) SetLevel(lvl Level)            { d.lvl = lvl }
func (d *discard) GetLevel() Level               { return d.lvl }
func (d *discard) SetFields(f Fields)             { d.fields = f }
func (d *discard) GetFields() Fields              { return d.fields }
func (d *discard) Clone() Logger                  { return &discard{lvl: d.lvl, fields: d.fields.Clone()} }
func (d *discard) Debug(string, Fields)           {}
func (d *discard) Info(string, Fields)            {}
func (d *discard) Warning(string, Fields)         {}
func (d *discard) Error(string, Fields)           {}
func (d *discard) Fatal(string, Fields)           {}
