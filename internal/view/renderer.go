// Package view renders the storefront HTML pages.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"time"

	"grocer/internal/session"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templatesFS embed.FS

const layout = "layout.html"

// Page is the value every template receives.
type Page struct {
	Session *session.Session
	Flashes []session.Flash
	Data    any
}

// Renderer implements echo.Renderer; each page is parsed together with the shared layout.
type Renderer struct {
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	"money": func(v float64) string { return fmt.Sprintf("$%.2f", v) },
	"date":  func(t time.Time) string { return t.Format("January 2, 2006") },
	"join":  strings.Join,
}

func New() (*Renderer, error) {
	files, err := fs.Glob(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	r := &Renderer{pages: map[string]*template.Template{}}
	for _, f := range files {
		base := path.Base(f)
		if base == layout {
			continue
		}
		t, err := template.New(layout).Funcs(funcs).ParseFS(templatesFS, "templates/"+layout, f)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", base, err)
		}
		r.pages[strings.TrimSuffix(base, ".html")] = t
	}
	return r, nil
}

// Render pops the session flashes so they show exactly once.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}
	s := session.FromContext(c)
	return t.ExecuteTemplate(w, layout, Page{
		Session: s,
		Flashes: s.PopFlashes(),
		Data:    data,
	})
}
