package handler

import (
	"html/template"
	"io"
	"path/filepath"
	"sync"

	"github.com/gin-gonic/gin"
)

type Renderer struct {
	templatesDir string
	templates    map[string]*template.Template
	mu           sync.RWMutex
	funcs        template.FuncMap
}

func NewRenderer(templatesDir string) *Renderer {
	return &Renderer{
		templatesDir: templatesDir,
		templates:    make(map[string]*template.Template),
		funcs:        defaultFuncs(),
	}
}

func defaultFuncs() template.FuncMap {
	return template.FuncMap{
		"contains": func(items []string, v string) bool {
			for _, item := range items {
				if item == v {
					return true
				}
			}
			return false
		},
	}
}

func (r *Renderer) loadTemplate(name string) (*template.Template, error) {
	r.mu.RLock()
	if tmpl, ok := r.templates[name]; ok {
		r.mu.RUnlock()
		return tmpl, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	if tmpl, ok := r.templates[name]; ok {
		return tmpl, nil
	}

	layoutPath := filepath.Join(r.templatesDir, "layouts", "base.html")
	pagePath := filepath.Join(r.templatesDir, "pages", name+".html")

	tmpl, err := template.New("").Funcs(r.funcs).ParseFiles(layoutPath, pagePath)
	if err != nil {
		return nil, err
	}

	r.templates[name] = tmpl
	return tmpl, nil
}

func (r *Renderer) Render(w io.Writer, name string, data any) error {
	tmpl, err := r.loadTemplate(name)
	if err != nil {
		return err
	}
	return tmpl.ExecuteTemplate(w, "base", data)
}

func (r *Renderer) HTML(c *gin.Context, code int, name string, data any) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(code)
	if err := r.Render(c.Writer, name, data); err != nil {
		c.String(500, "Template error: %v", err)
	}
}
