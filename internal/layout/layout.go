// Package layout maps an entity name and generation options to the ordered
// list of files to create.
package layout

import (
	"fmt"
	"path"
	"strings"

	oerrors "github.com/pfgen/cli/internal/errors"
	"github.com/pfgen/cli/internal/naming"
	"github.com/pfgen/cli/internal/templates"
)

// DefaultSourceRoot is the source directory used when none is configured.
const DefaultSourceRoot = "src"

// Kind is the family of artifacts to generate.
type Kind string

const (
	// Backend is a REST module: controller, routes, and model.
	Backend Kind = "backend"

	// ReactComponent is a UI component with its stylesheet.
	ReactComponent Kind = "component"
)

// Options are the generation choices for one invocation.
type Options struct {
	Kind      Kind
	Structure templates.Structure
	Language  templates.Language

	// SourceRoot is the slash-separated source directory relative to the
	// project root. Empty means DefaultSourceRoot.
	SourceRoot string
}

// File is one planned artifact.
type File struct {
	// RelativePath is slash-separated and relative to the project root.
	RelativePath string

	// Artifact is the kind of file.
	Artifact templates.Artifact

	// Content is the rendered file text.
	Content string

	// Description is a short label for summaries.
	Description string
}

// FilePlan is the ordered list of files for one entity.
type FilePlan struct {
	// Name is the normalized entity name.
	Name naming.Name

	// Options are the options the plan was built with.
	Options Options

	// Dir is the directory that holds the entity, relative to the project
	// root. For MVC it is the source root itself.
	Dir string

	// Files are the planned files in creation order.
	Files []File
}

// Paths returns the relative paths of all planned files.
func (p *FilePlan) Paths() []string {
	out := make([]string, len(p.Files))
	for i, f := range p.Files {
		out[i] = f.RelativePath
	}
	return out
}

// Plan builds the file plan for raw under opts. It does not touch the
// filesystem.
func Plan(raw string, opts Options) (*FilePlan, error) {
	raw = naming.Trim(raw)
	if err := naming.Validate(raw); err != nil {
		return nil, err
	}

	opts, err := normalizeOptions(opts)
	if err != nil {
		return nil, err
	}

	l, err := lookup(opts.Kind, opts.Structure)
	if err != nil {
		return nil, err
	}

	name := naming.Normalize(raw)
	renderer := templates.NewRenderer(name, templates.Options{
		Language:  opts.Language,
		Structure: opts.Structure,
	})

	plan := &FilePlan{
		Name:    name,
		Options: opts,
		Dir:     path.Join(opts.SourceRoot, l.dir(name)),
		Files:   make([]File, 0, len(l.entries)),
	}

	for _, e := range l.entries {
		tmpl, err := templates.Get(e.artifact, opts.Language)
		if err != nil {
			return nil, err
		}

		content, err := renderer.Render(e.artifact)
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", e.artifact, err)
		}

		plan.Files = append(plan.Files, File{
			RelativePath: path.Join(opts.SourceRoot, e.dir(name), e.file(name, opts.Language)),
			Artifact:     e.artifact,
			Content:      content,
			Description:  tmpl.Description,
		})
	}

	return plan, nil
}

// Artifacts lists the artifacts planned for opts, in creation order.
func Artifacts(opts Options) ([]templates.Artifact, error) {
	opts, err := normalizeOptions(opts)
	if err != nil {
		return nil, err
	}
	l, err := lookup(opts.Kind, opts.Structure)
	if err != nil {
		return nil, err
	}
	out := make([]templates.Artifact, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.artifact
	}
	return out, nil
}

func normalizeOptions(opts Options) (Options, error) {
	switch opts.Language {
	case templates.JavaScript, templates.TypeScript:
	default:
		return opts, oerrors.NewValidationError(
			fmt.Sprintf("unknown language %q", opts.Language), "", "language",
			fmt.Sprintf("Valid languages: %s", strings.Join(templates.ValidLanguages(), ", ")))
	}

	if opts.Kind == ReactComponent {
		// Components have a single fixed layout.
		opts.Structure = templates.StructureNone
	}

	root, err := cleanSourceRoot(opts.SourceRoot)
	if err != nil {
		return opts, err
	}
	opts.SourceRoot = root

	return opts, nil
}

// cleanSourceRoot returns a clean relative source root that stays inside the
// project.
func cleanSourceRoot(root string) (string, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		return DefaultSourceRoot, nil
	}

	root = path.Clean(strings.ReplaceAll(root, "\\", "/"))
	if path.IsAbs(root) || root == ".." || strings.HasPrefix(root, "../") {
		return "", oerrors.NewValidationError(
			fmt.Sprintf("source root %q must be a path inside the project", root), "", "sourceRoot",
			"Use a relative path such as src or app/src.")
	}
	return root, nil
}
