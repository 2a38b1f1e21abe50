// Package view renders the HTML pages of the application through echo's Renderer hook.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"

	"github.com/labstack/echo/v4"

	"todo-web/internal/domain/entity"
)

const (
	Lists    = "lists"
	NewList  = "new_list"
	List     = "list"
	EditList = "edit_list"

	layout = "layout"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page is the data every template receives. Error and Success are the flash messages of the request.
type Page struct {
	BasePath string
	Error    string
	Success  string
	Lists    []entity.List
	List     *entity.List
	// ListName is the submitted name redisplayed after a failed create or rename
	ListName string
}

// URL joins parts under the configured context path
func (p Page) URL(parts ...any) string {
	segments := make([]string, 0, len(parts)+1)
	segments = append(segments, "/", p.BasePath)
	for _, part := range parts {
		segments = append(segments, fmt.Sprint(part))
	}
	return path.Join(segments...)
}

// Title is the name of the list shown by the page, if any
func (p Page) Title() string {
	if p.List == nil {
		return ""
	}
	return p.List.Name
}

type Renderer struct {
	templates map[string]*template.Template
}

var _ echo.Renderer = (*Renderer)(nil)

// NewRenderer parses every page together with the shared layout
func NewRenderer() (*Renderer, error) {
	funcs := template.FuncMap{
		"sortLists": entity.SortByCompletion[entity.List],
		"sortTodos": entity.SortByCompletion[entity.Todo],
		"listClass": listClass,
	}

	renderer := &Renderer{templates: make(map[string]*template.Template)}
	for _, name := range []string{Lists, NewList, List, EditList} {
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templateFS, templateFile(layout), templateFile(name))
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		renderer.templates[name] = tmpl
	}
	return renderer, nil
}

func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	tmpl, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("template %s: %w", name, fs.ErrNotExist)
	}
	return tmpl.ExecuteTemplate(w, layout, data)
}

func templateFile(name string) string {
	return "templates/" + name + ".html"
}

func listClass(list entity.List) string {
	if list.IsComplete() {
		return "complete"
	}
	return ""
}
