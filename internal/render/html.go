// Package render paints layout.Document trees. One embedded document
// template produces the markup; the preview and print wrappers around it
// only differ in chrome (zoom scaffolding vs. @page rules), which keeps the
// two outputs textually identical.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	texttemplate "text/template"

	"resume-builder/internal/layout"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Zoom bounds for the interactive preview.
const (
	MinScale     = 0.3
	MaxScale     = 1.5
	DefaultScale = 0.8
)

type HTMLRenderer struct {
	tpl *template.Template
	css template.CSS
}

func NewHTMLRenderer() (*HTMLRenderer, error) {
	tpl, err := template.New("resume").
		Funcs(template.FuncMap{"join": strings.Join}).
		ParseFS(templateFS, "templates/*.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	// the stylesheet goes through text/template: it is not markup and must
	// keep its quotes intact
	cssTpl, err := texttemplate.ParseFS(templateFS, "templates/style.css.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse stylesheet: %w", err)
	}
	var css bytes.Buffer
	if err := cssTpl.ExecuteTemplate(&css, "style.css.tmpl", geometry()); err != nil {
		return nil, fmt.Errorf("render stylesheet: %w", err)
	}

	return &HTMLRenderer{tpl: tpl, css: template.CSS(css.String())}, nil
}

// Document paints the shared resume markup for a layout tree.
func (r *HTMLRenderer) Document(doc layout.Document) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tpl.ExecuteTemplate(&buf, "document.html.tmpl", doc); err != nil {
		return "", fmt.Errorf("render document: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// Preview renders the interactive page: the document wrapped in zoom
// scaffolding, scaled by the given factor (clamped to the zoom bounds).
func (r *HTMLRenderer) Preview(doc layout.Document, title string, scale float64) (string, error) {
	body, err := r.Document(doc)
	if err != nil {
		return "", err
	}
	return r.wrap("preview.html.tmpl", title, body, ClampScale(scale))
}

// Print renders the export page: the same document under @page A4 rules,
// ready to be handed to the PDF renderer.
func (r *HTMLRenderer) Print(doc layout.Document, title string) (string, error) {
	body, err := r.Document(doc)
	if err != nil {
		return "", err
	}
	return r.wrap("print.html.tmpl", title, body, 1)
}

func (r *HTMLRenderer) wrap(name, title string, body template.HTML, scale float64) (string, error) {
	var buf bytes.Buffer
	data := struct {
		Title string
		CSS   template.CSS
		Body  template.HTML
		Scale string
	}{Title: title, CSS: r.css, Body: body, Scale: fmt.Sprintf("%g", scale)}
	if err := r.tpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

// ClampScale bounds a requested zoom factor, substituting the default for
// zero or negative values.
func ClampScale(scale float64) float64 {
	if scale <= 0 {
		return DefaultScale
	}
	if scale < MinScale {
		return MinScale
	}
	if scale > MaxScale {
		return MaxScale
	}
	return scale
}

func geometry() map[string]int {
	return map[string]int{
		"PageWidth":    layout.PageWidth,
		"PageHeight":   layout.PageHeight,
		"MarginX":      layout.MarginX,
		"MarginTop":    layout.MarginTop,
		"MarginBottom": layout.MarginBottom,
		"ContentWidth": layout.ContentWidth,
		"BodySize":     layout.BodySize,
		"NameSize":     layout.NameSize,
		"HeadingSize":  layout.HeadingSize,
	}
}
