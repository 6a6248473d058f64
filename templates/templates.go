// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package templates

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/dustin/go-humanize"
)

//go:embed *.html
var files embed.FS

// reltime renders timestamps as "2 hours ago" style strings
var pages = template.Must(template.New("").Funcs(template.FuncMap{
	"reltime": humanize.Time,
}).ParseFS(files, "*.html"))

// Render writes the named page (e.g. "index.html") with the given data
func Render(w io.Writer, name string, data interface{}) error {
	if err := pages.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	return nil
}
