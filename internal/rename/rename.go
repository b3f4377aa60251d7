// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package rename copies or moves a batch of files into a destination
// directory under sequential names.
//
// Every file at position i of the batch is named
//
//	<prefix>_<start+i><ext>
//
// where the number is zero-padded to at least three digits and ext is the
// original extension, kept verbatim. A file that can't be processed still
// consumes its number.
//
// Failures of individual files are collected in [Result]; only an invalid
// [Config] or an unusable destination abort the batch.
package rename

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"go.astrophena.name/autonum/internal/logger"
)

// ErrInvalidConfig is returned when a [Config] can't describe a batch.
var ErrInvalidConfig = errors.New("invalid configuration")

// errNotFound is the per-file failure of a path that is not a regular file.
var errNotFound = errors.New("file not found")

// Config describes a batch.
type Config struct {
	Dest   string // destination directory, created if missing
	Prefix string // prepended to every new name
	Start  int    // number given to the first file
	Move   bool   // move instead of copy
}

// Validate reports whether c describes a batch that can run.
func (c Config) Validate() error {
	switch {
	case c.Dest == "":
		return fmt.Errorf("%w: destination is required", ErrInvalidConfig)
	case c.Prefix == "":
		return fmt.Errorf("%w: prefix is required", ErrInvalidConfig)
	case strings.ContainsAny(c.Prefix, `/`+string(filepath.Separator)):
		return fmt.Errorf("%w: prefix %q contains a path separator", ErrInvalidConfig, c.Prefix)
	case c.Start < 0:
		return fmt.Errorf("%w: start must not be negative, got %d", ErrInvalidConfig, c.Start)
	}
	return nil
}

// Result is the outcome of a batch. Success+len(Errors) always equals the
// number of files in the batch.
type Result struct {
	Success int      `json:"success"`
	Errors  []string `json:"errors"`
}

func (r *Result) fail(src string, err error) {
	r.Errors = append(r.Errors, filepath.Base(src)+": "+err.Error())
}

// Name returns the new name of a file numbered n whose extension is ext.
func Name(prefix string, n int, ext string) string {
	return fmt.Sprintf("%s_%03d%s", prefix, n, ext)
}

// ext returns the extension of path the way the name suffix is understood by
// users: a leading dot (".bashrc") or a trailing one ("notes.") is not an
// extension.
func ext(path string) string {
	base := filepath.Base(path)
	e := filepath.Ext(base)
	if e == base || e == "." {
		return ""
	}
	return e
}

// Op is a single step of a batch.
type Op struct {
	Index  int    // position in the batch
	Source string // path as given
	Name   string // new base name
	Target string // Dest joined with Name
	Size   int64  // source size, if known
	Err    error  // why the file will be skipped, if it will
}

// Plan computes the steps of a batch without touching the filesystem
// beyond stat calls. It doesn't validate cfg.
func Plan(cfg Config, files []string) []Op {
	ops := make([]Op, 0, len(files))
	for i, src := range files {
		ops = append(ops, plan(cfg, i, src))
	}
	return ops
}

func plan(cfg Config, i int, src string) Op {
	name := Name(cfg.Prefix, cfg.Start+i, ext(src))
	op := Op{
		Index:  i,
		Source: src,
		Name:   name,
		Target: filepath.Join(cfg.Dest, name),
	}
	if fi, err := os.Stat(src); err != nil || !fi.Mode().IsRegular() {
		op.Err = errNotFound
	} else {
		op.Size = fi.Size()
	}
	return op
}

// Preview returns the result running ops would produce if every transfer
// succeeded.
func Preview(ops []Op) Result {
	res := Result{Errors: []string{}}
	for _, op := range ops {
		if op.Err != nil {
			res.fail(op.Source, op.Err)
			continue
		}
		res.Success++
	}
	return res
}

// EnsureDest creates dir and any missing parents.
func EnsureDest(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating destination: %w", err)
	}
	return nil
}

// Rename runs the batch described by cfg over files, in order. Each file is
// looked up when its turn comes, so earlier steps of the batch are visible to
// later ones.
//
// The returned error is non-nil only when cfg is invalid or the destination
// can't be created; in that case no file has been touched.
func Rename(ctx context.Context, cfg Config, files []string) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	if err := EnsureDest(cfg.Dest); err != nil {
		return Result{}, err
	}

	verb, transfer := "copied", copyFile
	if cfg.Move {
		verb, transfer = "moved", moveFile
	}

	res := Result{Errors: []string{}}
	for i, src := range files {
		op := plan(cfg, i, src)
		if op.Err != nil {
			logger.Warn(ctx, "skipping file", slog.String("path", op.Source), slog.Any("error", op.Err))
			res.fail(op.Source, op.Err)
			continue
		}

		n, err := transfer(op.Source, op.Target)
		if err != nil {
			logger.Warn(ctx, "transfer failed", slog.String("from", op.Source), slog.String("to", op.Target), slog.Any("error", err))
			res.fail(op.Source, err)
			continue
		}

		logger.Info(ctx, verb,
			slog.String("from", op.Source),
			slog.String("to", op.Target),
			slog.String("size", humanize.IBytes(uint64(n))),
		)
		res.Success++
	}

	logger.Debug(ctx, "batch finished", slog.Int("success", res.Success), slog.Int("failed", len(res.Errors)))
	return res, nil
}
