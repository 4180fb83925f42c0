package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/pkg"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Page is the data every template receives.
type Page struct {
	Title string
	User  *auth.Identity
	Error string
	// Form echoes submitted form values back when a form is re-rendered
	Form map[string]string
	Data any
}

// Renderer holds one parsed template set per page, each on top of the shared layout.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	return newRenderer(templatesFS)
}

func newRenderer(fsys fs.FS) (*Renderer, error) {
	base, err := template.New("base").Funcs(funcMap()).ParseFS(fsys, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	pageFiles, err := fs.Glob(fsys, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("glob page templates: %w", err)
	}

	pages := make(map[string]*template.Template, len(pageFiles))
	for _, f := range pageFiles {
		name := path.Base(f)
		if name == "layout.html" {
			continue
		}
		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone base template: %w", err)
		}
		if _, err := clone.ParseFS(fsys, f); err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		pages[name] = clone
	}

	return &Renderer{pages: pages}, nil
}

// Render executes the page into a buffer first, so a failing template never
// leaves a half written response.
func (r *Renderer) Render(w http.ResponseWriter, name string, page Page, status int) {
	tmpl, ok := r.pages[name]
	if !ok {
		log.Errorf("render: template %q not found", name)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", page); err != nil {
		log.Errorf("render %s: %s", name, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.HTML, buf.Bytes(), status)
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"derefStr": func(p *string) string {
			if p == nil {
				return ""
			}
			return *p
		},
		"weight": func(f float64) string {
			s := fmt.Sprintf("%.2f", f)
			s = strings.TrimRight(s, "0")
			return strings.TrimSuffix(s, ".")
		},
		"join": strings.Join,
		"add":  func(a, b int) int { return a + b },
	}
}
