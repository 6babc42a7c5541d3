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

//go:build !windows

package app

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// enableCorefile raises RLIMIT_CORE to unbounded so a fatal signal's
// default disposition produces a core file (spec.md §4.8's
// enable_corefile). When disableExclPolicy is set, a pre-existing
// "core" file in the working directory is moved aside first, the Go
// equivalent of the original's O_EXCL backup behaviour.
func enableCorefile(disableExclPolicy bool) error {
	if disableExclPolicy {
		backupExistingCorefile()
	}
	return unix.Setrlimit(unix.RLIMIT_CORE, &unix.Rlimit{
		Cur: unix.RLIM_INFINITY,
		Max: unix.RLIM_INFINITY,
	})
}

func backupExistingCorefile() {
	if _, err := os.Stat("core"); err != nil {
		return
	}
	_ = os.Rename("core", fmt.Sprintf("core.%d.%d", os.Getpid(), time.Now().Unix()))
}
