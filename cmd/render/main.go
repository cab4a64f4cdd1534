// Command render is a debugging tool: it reads one raw resume record from a
// JSON file, migrates it and writes the preview HTML next to it.
package main

import (
	"fmt"
	"os"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/pflag"

	"resume-builder/internal/layout"
	"resume-builder/internal/migration"
	"resume-builder/internal/render"
)

func main() {
	var in, out string
	var scale float64
	pflag.StringVarP(&in, "in", "i", "resume.json", "path to a raw resume record")
	pflag.StringVarP(&out, "out", "o", "", "output HTML path (default: input with .html)")
	pflag.Float64VarP(&scale, "scale", "s", 1.0, "preview scale factor")
	pflag.Parse()

	if out == "" {
		out = strings.TrimSuffix(in, ".json") + ".html"
	}

	b, err := os.ReadFile(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read record: %v\n", err)
		os.Exit(2)
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		fmt.Fprintf(os.Stderr, "unmarshal: %v\n", err)
		os.Exit(2)
	}

	rec, changed := migration.Migrate(raw)
	if changed {
		fmt.Fprintln(os.Stderr, "note: record was migrated to the current shape")
	}

	html, err := render.NewHTMLRenderer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "renderer: %v\n", err)
		os.Exit(2)
	}
	page, err := html.Preview(layout.Build(rec), rec.Name, scale)
	if err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(2)
	}

	if err := os.WriteFile(out, []byte(page), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write out: %v\n", err)
		os.Exit(2)
	}
	fmt.Printf("wrote %s\n", out)
}
