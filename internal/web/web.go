// Package web holds the server-rendered pages and their template helpers.
package web

import (
	"embed"
	"html/template"
	"path"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

//go:embed templates/*.html
var files embed.FS

// Templates parses every embedded page with the helper funcs.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(Funcs()).ParseFS(files, "templates/*.html"))
}

func Funcs() template.FuncMap {
	return template.FuncMap{
		"basename": Basename,
		"bytes":    Bytes,
		"modified": Modified,
		"icon":     Icon,
		"plural":   Plural,
	}
}

// Basename is the last path segment of a blob name.
func Basename(name string) string {
	if b := path.Base(name); b != "." && b != "/" {
		return b
	}
	return name
}

// Bytes formats a size in binary units; unknown or zero sizes render empty.
func Bytes(size *int64) string {
	if size == nil || *size <= 0 {
		return ""
	}
	return humanize.IBytes(uint64(*size))
}

// Modified renders a last-modified time in UTC, or "" when unknown.
func Modified(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.UTC().Format("Jan 2, 2006 15:04 UTC")
}

// Icon picks a glyph for a file by extension.
func Icon(name string) string {
	switch strings.ToLower(strings.TrimPrefix(path.Ext(name), ".")) {
	case "pdf":
		return "📄"
	case "jpg", "jpeg", "png", "gif":
		return "🖼️"
	default:
		return "📎"
	}
}

// Plural returns "s" unless n is 1.
func Plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
