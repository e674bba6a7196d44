// Package templates renders the server-side HTML pages. It receives
// validated data structures from the handlers and returns markup; nothing
// here touches the stores or the session.
package templates

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed *.html
var files embed.FS

// Renderer holds the parsed page templates.
type Renderer struct {
	pages *template.Template
}

// New parses the embedded pages.
func New() (*Renderer, error) {
	pages, err := template.ParseFS(files, "*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{pages: pages}, nil
}

// Render writes the named page to w with the given data.
func (r *Renderer) Render(w http.ResponseWriter, name string, data any) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return r.pages.ExecuteTemplate(w, name, data)
}
