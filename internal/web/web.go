// Package web holds the page templates and the browser shim.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"employee-directory/internal/api"

	"github.com/labstack/echo/v4"
)

// Page template names.
const (
	IndexPage = "index.html"
	AddPage   = "add.html"
	EditPage  = "edit.html"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// Static 為 /static 下的內嵌檔案 (live.js)
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// IndexData is rendered into the page shell. Flash must already be JSON.
type IndexData struct {
	Flash template.JS
}

type EditData struct {
	Employee api.Employee
}

// Renderer implements echo.Renderer over the embedded page templates.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: map[string]*template.Template{}}
	for _, name := range []string{IndexPage, AddPage, EditPage} {
		t, err := template.ParseFS(templatesFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("NewRenderer: %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("web: unknown page %q", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}

// Shell renders the index page without flash messages. Live sessions mirror it.
func (r *Renderer) Shell() (string, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, IndexPage, IndexData{}, nil); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var _ echo.Renderer = (*Renderer)(nil)
