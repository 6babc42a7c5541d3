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
	"fmt"
	"os"
	"runtime/debug"
	"time"
)

// writeStdump appends a human-readable stack trace for every goroutine
// to path, tagged with the triggering signal and a timestamp (spec.md
// §4.8's enable_stdump). The original splits this into an
// async-signal-safe raw capture plus a separate demangle pass because
// a C handler running inside the signal's hardware context cannot
// safely allocate or call into the C++ runtime. That split does not
// apply here: Go delivers signal notifications over a channel consumed
// by an ordinary goroutine (see registerFatalSignals), not inside a raw
// signal handler, so formatting and writing the dump directly is safe.
func writeStdump(path string, sig os.Signal) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = fmt.Fprintf(f, "--- fatal signal %s at %s (pid %d) ---\n%s\n",
		sig, time.Now().Format(time.RFC3339), os.Getpid(), debug.Stack())
	return err
}
