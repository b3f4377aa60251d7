// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"cmp"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"go.astrophena.name/autonum/internal/cli"
	"go.astrophena.name/autonum/internal/cli/restrict"
	"go.astrophena.name/autonum/internal/filelist"
	"go.astrophena.name/autonum/internal/logger"
	"go.astrophena.name/autonum/internal/preview"
	"go.astrophena.name/autonum/internal/rename"

	"github.com/landlock-lsm/go-landlock/landlock"
)

func main() { cli.Main(new(app)) }

type app struct {
	files   string
	output  string
	prefix  string
	start   int
	move    bool
	dry     bool
	verbose bool
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.files, "files", "", "JSON array of `paths` to process, or - to read it from stdin.")
	fs.StringVar(&a.output, "output", "", "Destination `directory`, created if missing.")
	fs.StringVar(&a.prefix, "prefix", "", "Prefix of the new file names.")
	fs.IntVar(&a.start, "start", 1, "Number of the first file.")
	fs.BoolVar(&a.move, "move", false, "Move files instead of copying them.")
	fs.BoolVar(&a.dry, "dry", false, "Print what would be done, but don't touch any file.")
	fs.BoolVar(&a.verbose, "v", false, "Log every step to stderr.")
}

type errorReport struct {
	Error string `json:"error"`
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)

	if a.verbose {
		l := logger.New(env.Stderr)
		l.Level.Set(slog.LevelDebug)
		ctx = logger.Put(ctx, l)
	}

	res, err := a.run(ctx, env)
	if err != nil {
		if werr := writeJSON(env.Stderr, errorReport{Error: err.Error()}); werr != nil {
			return werr
		}
		return cli.Quiet(err)
	}
	return writeJSON(env.Stdout, res)
}

func (a *app) run(ctx context.Context, env *cli.Env) (rename.Result, error) {
	if len(env.Args) > 0 {
		return rename.Result{}, fmt.Errorf("%w: unexpected arguments %q", cli.ErrInvalidArgs, env.Args)
	}
	if a.files == "" {
		return rename.Result{}, fmt.Errorf("%w: -files is required", cli.ErrInvalidArgs)
	}

	var (
		files []string
		err   error
	)
	if a.files == "-" {
		files, err = filelist.Read(env.Stdin)
	} else {
		files, err = filelist.Parse([]byte(a.files))
	}
	if err != nil {
		return rename.Result{}, err
	}

	cfg := rename.Config{
		Dest:   cmp.Or(a.output, env.Getenv("AUTONUM_OUTPUT")),
		Prefix: cmp.Or(a.prefix, env.Getenv("AUTONUM_PREFIX")),
		Start:  a.start,
		Move:   a.move,
	}
	if err := cfg.Validate(); err != nil {
		return rename.Result{}, err
	}
	logger.Debug(ctx, "starting batch",
		slog.Int("files", len(files)),
		slog.String("dest", cfg.Dest),
		slog.String("prefix", cfg.Prefix),
		slog.Int("start", cfg.Start),
		slog.Bool("move", cfg.Move),
	)

	if a.dry {
		ops := rename.Plan(cfg, files)
		preview.Render(env.Stderr, verb(cfg.Move), ops)
		return rename.Preview(ops), nil
	}

	if err := rename.EnsureDest(cfg.Dest); err != nil {
		return rename.Result{}, err
	}
	restrict.DoUnlessTesting(ctx, sandbox(cfg, files)...)

	return rename.Rename(ctx, cfg, files)
}

func verb(move bool) string {
	if move {
		return "move"
	}
	return "copy"
}

// sandbox returns the landlock rules confining a batch. The destination is
// writable and sources are readable. In move mode their directories are
// writable too, and all of them get the refer right so that rename(2) between
// them isn't refused with EXDEV.
func sandbox(cfg rename.Config, files []string) []landlock.Rule {
	rwDir := landlock.RWDirs
	if cfg.Move {
		rwDir = func(paths ...string) landlock.FSRule { return landlock.RWDirs(paths...).WithRefer() }
	}
	rules := []landlock.Rule{rwDir(cfg.Dest)}

	var (
		sources []string
		dirs    = map[string]bool{}
	)
	for _, f := range files {
		// Paths missing now are reported as not found later; landlock refuses
		// rules on nonexistent paths.
		if fi, err := os.Stat(f); err != nil || !fi.Mode().IsRegular() {
			continue
		}
		sources = append(sources, f)
		dirs[filepath.Dir(f)] = true
	}

	if cfg.Move {
		for dir := range dirs {
			rules = append(rules, rwDir(dir))
		}
	} else if len(sources) > 0 {
		rules = append(rules, landlock.ROFiles(sources...))
	}
	return rules
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
