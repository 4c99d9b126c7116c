package greeting

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
)

// HelloTemplate is the template rendered for the greeting page.
const HelloTemplate = "hello.html"

// Page is the data passed to HelloTemplate.
type Page struct {
	Name string
}

// Renderer renders the parsed page templates.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses templates/*.html from fsys.
func NewRenderer(fsys fs.FS) (*Renderer, error) {
	tmpl, err := template.ParseFS(fsys, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	if tmpl.Lookup(HelloTemplate) == nil {
		return nil, fmt.Errorf("template %s not found", HelloTemplate)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Hello renders the greeting page for name into w.
func (r *Renderer) Hello(w io.Writer, name string) error {
	return r.tmpl.ExecuteTemplate(w, HelloTemplate, Page{Name: name})
}
