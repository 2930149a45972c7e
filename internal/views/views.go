// Package views holds the server-rendered pages.
package views

import (
	"embed"
	"html/template"
	"time"

	"task-list-web/internal/models"
)

//go:embed templates/*.html
var files embed.FS

// Page template names.
const (
	IndexPage    = "index.html"
	NotFoundPage = "not_found.html"
	ErrorPage    = "error.html"
)

// Funcs are the helpers available to every template.
var Funcs = template.FuncMap{
	"formatDate": FormatDate,
	"deref": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
}

// FormatDate renders an optional calendar date, or "" when unset.
func FormatDate(d *time.Time) string {
	if d == nil {
		return ""
	}
	return d.Format(models.DateLayout)
}

// Load parses the embedded templates.
func Load() (*template.Template, error) {
	return template.New("").Funcs(Funcs).ParseFS(files, "templates/*.html")
}
