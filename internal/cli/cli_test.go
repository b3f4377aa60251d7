// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package cli

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"testing"

	"go.astrophena.name/autonum/internal/testutil"
)

type flagApp struct {
	name string
	got  []string
}

func (a *flagApp) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.name, "name", "", "Name.")
}

func (a *flagApp) Run(ctx context.Context) error {
	a.got = GetEnv(ctx).Args
	return nil
}

func runApp(t *testing.T, app App, args ...string) (stderr string, err error) {
	t.Helper()
	var out, errb bytes.Buffer
	env := &Env{Args: args, Stdout: &out, Stderr: &errb}
	err = Run(WithEnv(context.Background(), env), app)
	return errb.String(), err
}

func TestRunParsesFlags(t *testing.T) {
	t.Parallel()

	app := new(flagApp)
	if _, err := runApp(t, app, "-name", "foo", "bar", "baz"); err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, app.name, "foo")
	testutil.AssertEqual(t, app.got, []string{"bar", "baz"})
}

func TestRunHelpIsUnprintable(t *testing.T) {
	t.Parallel()

	SetDocComment([]byte("/*\nFrobnicator frobs.\n*/\npackage main\n"))
	stderr, err := runApp(t, new(flagApp), "-h")
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("got %v, want flag.ErrHelp", err)
	}
	if isPrintableError(err) {
		t.Fatal("help error must not be printed")
	}
	testutil.AssertEqual(t, bytes.Contains([]byte(stderr), []byte("Frobnicator frobs.")), true)
}

func TestRunVersion(t *testing.T) {
	t.Parallel()

	_, err := runApp(t, AppFunc(func(context.Context) error { return nil }), "-version")
	if !errors.Is(err, ErrExitVersion) {
		t.Fatalf("got %v, want ErrExitVersion", err)
	}
}

func TestQuiet(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	err := Quiet(fmt.Errorf("wrapped: %w", errBoom))
	if isPrintableError(err) {
		t.Fatal("quiet error must not be printed")
	}
	if !errors.Is(err, errBoom) {
		t.Fatal("quiet error must unwrap to the original")
	}
	if Quiet(nil) != nil {
		t.Fatal("Quiet(nil) must be nil")
	}
	if !isPrintableError(errBoom) {
		t.Fatal("plain errors must be printed")
	}
}

func TestGetEnvDefaultsToOS(t *testing.T) {
	t.Parallel()

	env := GetEnv(context.Background())
	if env.Stdout == nil || env.Getenv == nil {
		t.Fatal("OS environment must be fully populated")
	}
}
