package render

import (
	"context"
	"fmt"
	"strings"

	"resume-builder/internal/layout"
	"resume-builder/internal/model"
)

// PDFRenderer turns a print-ready HTML page into PDF bytes. Implemented by
// pkg/infrastructure.ChromedpRenderer; tests substitute a stub.
type PDFRenderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// Exporter produces the downloadable artifact for a record. The document is
// fully buffered before anything is handed to the caller, so a failed
// generation never exposes a partial file.
type Exporter struct {
	html *HTMLRenderer
	pdf  PDFRenderer
}

func NewExporter(html *HTMLRenderer, pdf PDFRenderer) *Exporter {
	return &Exporter{html: html, pdf: pdf}
}

// Export renders the record to a single fixed-size PDF and returns the
// bytes with the download file name.
func (e *Exporter) Export(ctx context.Context, rec model.Resume) ([]byte, string, error) {
	doc := layout.Build(rec)
	page, err := e.html.Print(doc, rec.Name)
	if err != nil {
		return nil, "", fmt.Errorf("render print page: %w", err)
	}
	pdf, err := e.pdf.RenderHTMLToPDF(ctx, page)
	if err != nil {
		return nil, "", fmt.Errorf("generate pdf: %w", err)
	}
	return pdf, FileName(rec), nil
}

// FileName derives the download name from the person's name: first word,
// then the remaining words joined by underscores. An empty name falls back
// to the base "Resume".
func FileName(rec model.Resume) string {
	fields := strings.Fields(rec.PersonalInfo.Name)
	first := "Resume"
	last := ""
	if len(fields) > 0 && fields[0] != "" {
		first = fields[0]
	}
	if len(fields) > 1 {
		last = strings.Join(fields[1:], "_")
	}
	if last != "" {
		return fmt.Sprintf("%s_%s_Resume.pdf", first, last)
	}
	return fmt.Sprintf("%s_Resume.pdf", first)
}
