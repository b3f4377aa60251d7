// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package preview

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"go.astrophena.name/autonum/internal/rename"
)

func TestRender(t *testing.T) {
	t.Parallel()

	ops := []rename.Op{
		{Index: 0, Source: "/in/missing.txt", Name: "f_001.txt", Err: errors.New("file not found")},
		{Index: 1, Source: "/in/exists.txt", Name: "f_002.txt", Size: 2048},
		{Index: 2, Source: "/in/big.iso", Name: "f_003.iso", Size: 3 << 20},
	}

	var buf bytes.Buffer
	Render(&buf, "copy", ops)
	out := buf.String()

	for _, want := range []string{
		"missing.txt", "f_001.txt", "skip: file not found",
		"exists.txt", "f_002.txt", "2.0 KiB",
		"big.iso", "f_003.iso", "3.0 MiB",
		"2 to copy, 1 skipped",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output must contain %q, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "/in/") {
		t.Errorf("sources must be shown by base name, got:\n%s", out)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	var rows []string
	for _, l := range lines {
		if strings.Contains(l, "f_00") {
			rows = append(rows, l)
		}
	}
	if len(rows) != 3 || !strings.Contains(rows[0], "f_001") || !strings.Contains(rows[2], "f_003") {
		t.Errorf("rows must keep batch order, got:\n%s", out)
	}
}

func TestRenderEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	Render(&buf, "move", nil)
	if !strings.Contains(buf.String(), "0 to move, 0 skipped") {
		t.Errorf("got:\n%s", buf.String())
	}
}
