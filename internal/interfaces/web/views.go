package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/gofiber/fiber/v2"
)

//go:embed templates/*.html
var templatesFS embed.FS

// pages plantillas de página; cada una se compone con el layout.
var pages = []string{"login", "dashboard", "products", "users", "reports"}

// Renderer cache de plantillas compiladas. Las vistas son deliberadamente
// mínimas: el contrato relevante es contra los servicios, no el markup.
type Renderer struct {
	templates map[string]*template.Template
	toasts    *Toasts
}

// NewRenderer compila todas las páginas contra el layout común.
func NewRenderer(toasts *Toasts) (*Renderer, error) {
	funcs := template.FuncMap{
		"money": money,
	}
	compiled := make(map[string]*template.Template, len(pages))
	for _, name := range pages {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(
			templatesFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("web: compilar plantilla %s: %w", name, err)
		}
		compiled[name] = t
	}
	return &Renderer{templates: compiled, toasts: toasts}, nil
}

// viewData contexto común de toda página renderizada.
type viewData struct {
	Title  string
	Toasts []string
	Data   any
}

// Render dibuja la página con los toasts pendientes drenados.
func (r *Renderer) Render(c *fiber.Ctx, page, title string, data any) error {
	t, ok := r.templates[page]
	if !ok {
		return fmt.Errorf("web: plantilla desconocida %q", page)
	}
	var buf bytes.Buffer
	vd := viewData{Title: title, Toasts: r.toasts.Drain(), Data: data}
	if err := t.ExecuteTemplate(&buf, "layout.html", vd); err != nil {
		return err
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}
