// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package atomicio provides atomic file writing.
package atomicio

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// WriteFrom streams r into a file atomically, replacing name if it exists.
// Readers of name observe either the old contents or the complete new ones.
//
// The file gets permission bits perm. If modTime is not zero, it becomes the
// modification time of the file. WriteFrom returns the number of bytes
// written.
func WriteFrom(name string, r io.Reader, perm fs.FileMode, modTime time.Time) (n int64, err error) {
	// Create a temporary file in the same directory to ensure that it's on the
	// same filesystem, which is a requirement for an atomic os.Rename.
	f, err := os.CreateTemp(filepath.Dir(name), "."+filepath.Base(name)+".tmp")
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()

	if n, err = io.Copy(f, r); err != nil {
		return n, err
	}
	if err := f.Chmod(perm); err != nil {
		return n, err
	}
	if err := f.Close(); err != nil {
		return n, err
	}
	if !modTime.IsZero() {
		if err := os.Chtimes(f.Name(), time.Time{}, modTime); err != nil {
			return n, err
		}
	}

	return n, os.Rename(f.Name(), name)
}
