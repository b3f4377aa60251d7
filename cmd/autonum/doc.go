// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Autonum copies or moves a list of files into a folder under sequential names.

# Usage

	$ autonum -files '["a.jpg", "b.png"]' -output <dir> -prefix <prefix> [flags...]

Each file is named <prefix>_<number><extension>. The first file gets the -start
number, the second one the next number, and so on, in the order of the list.
Numbers have at least three digits. The original extension is kept as is.

A file that doesn't exist is reported and skipped, but still uses up its
number. Existing files in the output folder with the same name are
overwritten. Files are copied unless -move is given.

The list is a JSON array of paths; use -files - to read it from standard input.
-output and -prefix default to the AUTONUM_OUTPUT and AUTONUM_PREFIX
environment variables.

The result is printed to standard output as JSON:

	{"success": 2, "errors": ["c.jpg: file not found"]}

If the batch can't run at all (bad list, bad flags, unusable output folder),
autonum prints {"error": "..."} to standard error and exits with status 1.

With -dry, autonum prints a table of what would happen to standard error and
the expected result to standard output, without changing anything on disk.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/autonum/internal/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
