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

package transport

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// UnixConfig configures a Unix-domain acceptor or outbound connect
// (spec.md §4.4, §6 — "local Unix-domain socket (filesystem path)").
type UnixConfig struct {
	// Path is the socket file. Ignored (and generated) when
	// PreserveSocketFile is true.
	Path string `mapstructure:"path" json:"path" yaml:"path" toml:"path" validate:"omitempty"`

	// PreserveSocketFile generates a process-unique path under Dir,
	// removing any stale file at bind time (spec.md §4.4's
	// "preserve socket file" strategy).
	PreserveSocketFile bool `mapstructure:"preserveSocketFile" json:"preserveSocketFile" yaml:"preserveSocketFile" toml:"preserveSocketFile"`

	// Dir is where a preserved socket file is created; defaults to
	// os.TempDir() when empty.
	Dir string `mapstructure:"dir" json:"dir" yaml:"dir" toml:"dir" validate:"omitempty"`

	// DeleteOnShutdown removes the socket file once the acceptor
	// stops, when PreserveSocketFile generated it.
	DeleteOnShutdown bool `mapstructure:"deleteOnShutdown" json:"deleteOnShutdown" yaml:"deleteOnShutdown" toml:"deleteOnShutdown"`

	ConnectTimeoutMs uint32 `mapstructure:"connectTimeoutMs" json:"connectTimeoutMs" yaml:"connectTimeoutMs" toml:"connectTimeoutMs" validate:"gte=0"`
}

func (c UnixConfig) Validate() error {
	if !c.PreserveSocketFile && c.Path == "" {
		return fmt.Errorf("transport: unix config requires a path unless preserveSocketFile is set")
	}
	return validator.New().Struct(c)
}

// resolvePath returns the socket path to bind, generating a
// process-unique one via google/uuid when PreserveSocketFile is set
// and removing any stale file left from a prior crash.
func (c UnixConfig) resolvePath() (string, error) {
	path := c.Path
	if c.PreserveSocketFile {
		dir := c.Dir
		if dir == "" {
			dir = os.TempDir()
		}
		path = filepath.Join(dir, "srvlib-"+uuid.NewString()+".sock")
	}

	if _, err := os.Stat(path); err == nil {
		if rmErr := os.Remove(path); rmErr != nil {
			return "", rmErr
		}
	}
	return path, nil
}

func (c UnixConfig) listen(_ context.Context) (net.Listener, string, error) {
	path, err := c.resolvePath()
	if err != nil {
		return nil, "", err
	}
	ln, err := net.Listen("unix", path)
	if err != nil {
		return nil, "", err
	}
	return ln, path, nil
}

// removeFile deletes the socket file at path, ignoring a missing file
// (the normal case when the process already cleaned up, or a peer
// beat us to it).
func removeFile(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (c UnixConfig) dial(ctx context.Context) (net.Conn, error) {
	d := net.Dialer{}
	if c.ConnectTimeoutMs > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, msDuration(c.ConnectTimeoutMs))
		defer cancel()
	}
	return d.DialContext(ctx, "unix", c.Path)
}
