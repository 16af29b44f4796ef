package templates

import (
	"bytes"
	"fmt"
	"io/fs"
	"text/template"

	"github.com/pfgen/cli/internal/naming"
)

// Renderer handles template rendering with data substitution.
type Renderer struct {
	opts Options
	data Data
}

// NewRenderer creates a renderer for name under opts.
func NewRenderer(name naming.Name, opts Options) *Renderer {
	return &Renderer{opts: opts, data: NewData(name, opts)}
}

// Render renders the template for artifact and returns the file content.
func (r *Renderer) Render(artifact Artifact) (string, error) {
	t, err := Get(artifact, r.opts.Language)
	if err != nil {
		return "", err
	}

	content, err := fs.ReadFile(templateFS, t.File)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", t.File, err)
	}

	out, err := r.RenderString(string(content))
	if err != nil {
		return "", fmt.Errorf("rendering %s: %w", t.File, err)
	}
	return out, nil
}

// RenderString renders a template string and returns the result.
func (r *Renderer) RenderString(content string) (string, error) {
	tmpl, err := template.New("file").Option("missingkey=error").Parse(content)
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, r.data); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}

	return buf.String(), nil
}

// Render renders a single artifact for name under opts.
func Render(artifact Artifact, name naming.Name, opts Options) (string, error) {
	return NewRenderer(name, opts).Render(artifact)
}
