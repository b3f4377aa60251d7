// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package filelist decodes the JSON document listing files to process.
//
// The document must be a JSON array of strings. Order is significant: it
// defines the numbering.
package filelist

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// ErrMalformed is returned when the document is not valid JSON or is not an
// array of strings.
var ErrMalformed = errors.New("malformed file list")

//go:embed schema.json
var schemaSrc string

var schema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaSrc))
})

// Parse decodes data into a list of paths.
func Parse(data []byte) ([]string, error) {
	s, err := schema()
	if err != nil {
		return nil, fmt.Errorf("loading file list schema: %w", err)
	}

	res, err := s.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if !res.Valid() {
		var msgs []string
		for _, e := range res.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, fmt.Errorf("%w: %s", ErrMalformed, strings.Join(msgs, "; "))
	}

	files := []string{}
	if err := json.Unmarshal(data, &files); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return files, nil
}

// Read reads the whole of r and parses it with [Parse].
func Read(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading file list: %w", err)
	}
	return Parse(data)
}
