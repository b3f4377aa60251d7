// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package rename

import (
	"errors"
	"os"
	"syscall"

	"go.astrophena.name/autonum/internal/atomicio"
)

// errSameFile is the failure of copying a file onto itself.
var errSameFile = errors.New("source and destination are the same file")

// copyFile copies src over dst, keeping the permission bits and the
// modification time of src.
func copyFile(src, dst string) (int64, error) {
	f, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return 0, err
	}
	if dfi, err := os.Stat(dst); err == nil && os.SameFile(fi, dfi) {
		return 0, errSameFile
	}
	return atomicio.WriteFrom(dst, f, fi.Mode().Perm(), fi.ModTime())
}

// rename is os.Rename, swapped in tests.
var rename = os.Rename

// moveFile moves src over dst. Across filesystems it copies and then removes
// src.
func moveFile(src, dst string) (int64, error) {
	fi, err := os.Stat(src)
	if err != nil {
		return 0, err
	}

	err = rename(src, dst)
	if err == nil {
		return fi.Size(), nil
	}
	if !errors.Is(err, syscall.EXDEV) {
		return 0, err
	}

	n, err := copyFile(src, dst)
	if err != nil {
		return 0, err
	}
	return n, os.Remove(src)
}
