package leads

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"strings"

	"github.com/aymerick/raymond"

	"github.com/bildo/landing/pkg/logger"
)

//go:embed templates
var templateFS embed.FS

// TemplateService renders notification emails with Handlebars templates
// embedded in the binary:
//   - templates/layouts/*.hbs wrap the rendered body as {{content}}
//   - templates/*.hbs are the message bodies
type TemplateService struct {
	log       *slog.Logger
	templates map[string]*raymond.Template
	layouts   map[string]*raymond.Template
}

// TemplateRenderResult contains the rendered email content
type TemplateRenderResult struct {
	HTML string
	Text string
}

// TemplateContext is the data passed to templates
type TemplateContext map[string]any

// NewTemplateService parses every embedded template up front.
func NewTemplateService(log *slog.Logger) (*TemplateService, error) {
	return newTemplateService(templateFS, "templates", log)
}

func newTemplateService(fsys fs.FS, root string, log *slog.Logger) (*TemplateService, error) {
	ts := &TemplateService{
		log:       log.With(logger.Scope("leads.template")),
		templates: make(map[string]*raymond.Template),
		layouts:   make(map[string]*raymond.Template),
	}

	if err := ts.loadDir(fsys, root, ts.templates); err != nil {
		return nil, err
	}
	if err := ts.loadDir(fsys, path.Join(root, "layouts"), ts.layouts); err != nil {
		return nil, err
	}

	ts.log.Debug("loaded email templates",
		slog.Int("templates", len(ts.templates)),
		slog.Int("layouts", len(ts.layouts)))

	return ts, nil
}

func (ts *TemplateService) loadDir(fsys fs.FS, dir string, into map[string]*raymond.Template) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("read template dir %s: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".hbs") {
			continue
		}
		content, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return fmt.Errorf("read template %s: %w", entry.Name(), err)
		}
		tmpl, err := raymond.Parse(string(content))
		if err != nil {
			return fmt.Errorf("failed to parse template %s: %w", entry.Name(), err)
		}
		into[strings.TrimSuffix(entry.Name(), ".hbs")] = tmpl
	}
	return nil
}

// HasTemplate checks if a template exists
func (ts *TemplateService) HasTemplate(name string) bool {
	_, ok := ts.templates[name]
	return ok
}

// Render renders templateName and wraps it in layoutName when one is given.
func (ts *TemplateService) Render(templateName string, context TemplateContext, layoutName string) (*TemplateRenderResult, error) {
	tmpl, ok := ts.templates[templateName]
	layout := ts.layouts[layoutName]

	if !ok {
		return nil, fmt.Errorf("template not found: %s", templateName)
	}

	content, err := tmpl.Exec(context)
	if err != nil {
		return nil, fmt.Errorf("failed to render template %s: %w", templateName, err)
	}

	if layoutName != "" {
		if layout == nil {
			ts.log.Debug("layout not found, using template directly", slog.String("layout", layoutName))
		} else {
			layoutCtx := make(TemplateContext, len(context)+1)
			for k, v := range context {
				layoutCtx[k] = v
			}
			layoutCtx["content"] = raymond.SafeString(content)

			content, err = layout.Exec(layoutCtx)
			if err != nil {
				return nil, fmt.Errorf("failed to render layout %s: %w", layoutName, err)
			}
		}
	}

	return &TemplateRenderResult{
		HTML: content,
		Text: plainText(context),
	}, nil
}

// plainText builds the text/plain alternative from the lead in context.
func plainText(context TemplateContext) string {
	var parts []string
	if title, ok := context["title"].(string); ok && title != "" {
		parts = append(parts, title, "")
	}
	if lead, ok := context["lead"].(Lead); ok {
		parts = append(parts,
			"Nombre: "+lead.Name,
			"Email: "+lead.Email,
		)
		if lead.Phone != "" {
			parts = append(parts, "Teléfono: "+lead.Phone)
		}
		parts = append(parts, "Empresa: "+lead.Company)
		if lead.Message != "" {
			parts = append(parts, "", lead.Message)
		}
	}
	return strings.Join(parts, "\n")
}
