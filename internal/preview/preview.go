// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package preview renders a planned batch as a table.
package preview

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"go.astrophena.name/autonum/internal/rename"
)

// Render writes ops to w, one row per file in batch order, with a footer
// summing what would be transferred. verb names the transfer ("copy" or
// "move").
func Render(w io.Writer, verb string, ops []rename.Op) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Footer = text.FormatDefault
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight, AlignFooter: text.AlignRight},
	})

	t.AppendHeader(table.Row{"#", "Source", "New name", "Size", "Action"})

	var (
		total   uint64
		ok      int
		skipped int
	)
	for _, op := range ops {
		size, action := humanize.IBytes(uint64(op.Size)), verb
		if op.Err != nil {
			size, action = "-", "skip: "+op.Err.Error()
			skipped++
		} else {
			total += uint64(op.Size)
			ok++
		}
		t.AppendRow(table.Row{op.Index, filepath.Base(op.Source), op.Name, size, action})
	}

	t.AppendFooter(table.Row{"", "", fmt.Sprintf("%d to %s, %d skipped", ok, verb, skipped), humanize.IBytes(total), ""})
	t.Render()
}
