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

package logger

import (
	"sync"

	"github.com/sirupsen/logrus"
)

type logger struct {
	mu     sync.Mutex
	lvl    Level
	fields Fields
	rus    *logrus.Logger
}

// New builds a Logger backed by logrus, configured per opt.
func New(opt Options) Logger {
	opt = opt.withDefaults()

	rus := logrus.New()
	rus.SetOutput(opt.Output)
	rus.SetLevel(logrus.TraceLevel) // level gating happens in this wrapper

	if opt.JSON {
		rus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		rus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return &logger{
		lvl:    opt.Level,
		fields: Fields{},
		rus:    rus,
	}
}

func (l *logger) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rus.Out.Write(p)
}

func (l *logger) SetLevel(lvl Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lvl = lvl
}

func (l *logger) GetLevel() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lvl
}

func (l *logger) SetFields(f Fields) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fields = f
}

func (l *logger) GetFields() Fields {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fields
}

func (l *logger) Clone() Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	return &logger{
		lvl:    l.lvl,
		fields: l.fields.Clone(),
		rus:    l.rus,
	}
}

func (l *logger) entry(fields Fields) *logrus.Entry {
	return l.rus.WithFields(l.GetFields().Add(fields).logrus())
}

func (l *logger) allowed(lvl Level) bool {
	return l.GetLevel() >= lvl && l.GetLevel() != NilLevel
}

func (l *logger) Debug(message string, fields Fields) {
	if l.allowed(DebugLevel) {
		l.entry(fields).Debug(message)
	}
}

func (l *logger) Info(message string, fields Fields) {
	if l.allowed(InfoLevel) {
		l.entry(fields).Info(message)
	}
}

func (l *logger) Warning(message string, fields Fields) {
	if l.allowed(WarnLevel) {
		l.entry(fields).Warn(message)
	}
}

func (l *logger) Error(message string, fields Fields) {
	if l.allowed(ErrorLevel) {
		l.entry(fields).Error(message)
	}
}

func (l *logger) Fatal(message string, fields Fields) {
	if l.allowed(FatalLevel) {
		l.entry(fields).Error("[fatal] " + message)
	}
}
