// Package htmlview renders roster console pages as a standalone HTML document.
package htmlview

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"io"
	"io/fs"
	"log/slog"

	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/ui/viewmodel"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// mdRenderer escapes raw HTML in descriptions; WithUnsafe is never set.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// RendererConfig holds configuration for creating a Renderer.
type RendererConfig struct {
	TemplateFS fs.FS        // Templates to parse; defaults to the embedded set
	Logger     *slog.Logger // Logger for template errors (optional)
}

// Renderer renders a viewmodel.Page through the "page" template.
type Renderer struct {
	t      *template.Template
	logger *slog.Logger
}

// NewRenderer parses the templates.
func NewRenderer(cfg RendererConfig) (*Renderer, error) {
	fsys := cfg.TemplateFS
	if fsys == nil {
		sub, err := fs.Sub(templateFS, "templates")
		if err != nil {
			return nil, err
		}
		fsys = sub
	}

	t, err := template.New("root").Funcs(templateFuncs()).ParseFS(fsys, "*.tmpl")
	if err != nil {
		if cfg.Logger != nil {
			cfg.Logger.Error("template parsing failed",
				slog.Any("error", err),
				slog.String("phase", "initialization"),
			)
		}
		return nil, err
	}
	if t.Lookup("page") == nil {
		return nil, errors.New(`template "page" is not defined`)
	}
	return &Renderer{t: t, logger: cfg.Logger}, nil
}

// Write renders page to w. Nothing is written if the template fails.
func (r *Renderer) Write(w io.Writer, page viewmodel.Page) error {
	var buf bytes.Buffer
	if err := r.t.ExecuteTemplate(&buf, "page", page); err != nil {
		if r.logger != nil {
			r.logger.Error("template execution failed",
				slog.String("template", "page"),
				slog.Any("error", err),
			)
		}
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"markdown": renderMarkdown,
		"spotsClass": func(n int) string {
			if n <= 0 {
				return "spots-none"
			}
			return "spots-open"
		},
	}
}

// renderMarkdown converts a description to HTML. On failure the text is
// returned escaped.
func renderMarkdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src)) //nolint:gosec // escaped above
	}
	return template.HTML(buf.String()) //nolint:gosec // goldmark escapes raw HTML without WithUnsafe
}
