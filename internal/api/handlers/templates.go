package handlers

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/labstack/echo/v4"

	domain "github.com/RaviKishore94/hofvidz-3.0project/pkg/types"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

const baseTemplate = "templates/base.gohtml"

// Templates renders the embedded HTML pages. Each page is parsed together
// with the base layout and executed from its "base" template.
type Templates struct {
	pages map[string]*template.Template
}

// NewTemplates parses every embedded page template.
func NewTemplates() (*Templates, error) {
	names, err := fs.Glob(templateFS, "templates/*.gohtml")
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}

	funcs := template.FuncMap{
		"embedURL": domain.EmbedURL,
	}

	t := &Templates{pages: make(map[string]*template.Template, len(names))}
	for _, name := range names {
		if name == baseTemplate {
			continue
		}
		tmpl, err := template.New(path.Base(name)).Funcs(funcs).ParseFS(templateFS, baseTemplate, name)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
		t.pages[strings.TrimSuffix(path.Base(name), ".gohtml")] = tmpl
	}
	return t, nil
}

// Render implements echo.Renderer.
func (t *Templates) Render(w io.Writer, name string, data any, _ echo.Context) error {
	tmpl, ok := t.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	return tmpl.ExecuteTemplate(w, "base", data)
}
