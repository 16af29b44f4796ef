package layout

import (
	"fmt"
	"strings"

	oerrors "github.com/pfgen/cli/internal/errors"
	"github.com/pfgen/cli/internal/naming"
	"github.com/pfgen/cli/internal/templates"
)

// entry places one artifact.
type entry struct {
	artifact templates.Artifact
	dir      func(naming.Name) string
	file     func(naming.Name, templates.Language) string
}

// convention is the ordered set of entries for one (kind, structure) pair.
type convention struct {
	// dir is the entity directory relative to the source root.
	dir     func(naming.Name) string
	entries []entry
}

type conventionKey struct {
	kind      Kind
	structure templates.Structure
}

var conventions = map[conventionKey]convention{
	{Backend, templates.MVC}: {
		dir: fixedDir(""),
		entries: []entry{
			{templates.Controller, fixedDir("controllers"), backendFile("controller")},
			{templates.Routes, fixedDir("routes"), backendFile("routes")},
			{templates.Model, fixedDir("models"), backendFile("model")},
		},
	},
	{Backend, templates.Feature}: {
		dir: moduleDir,
		entries: []entry{
			{templates.Controller, moduleDir, backendFile("controller")},
			{templates.Routes, moduleDir, backendFile("routes")},
			{templates.Model, moduleDir, backendFile("model")},
		},
	},
	{ReactComponent, templates.StructureNone}: {
		dir: componentDir,
		entries: []entry{
			{templates.Component, componentDir, componentFile},
			{templates.Stylesheet, componentDir, stylesheetFile},
		},
	},
}

func lookup(kind Kind, structure templates.Structure) (convention, error) {
	c, ok := conventions[conventionKey{kind, structure}]
	if !ok {
		if kind == Backend {
			return convention{}, oerrors.NewValidationError(
				fmt.Sprintf("unknown structure %q for backend modules", structure), "", "structure",
				fmt.Sprintf("Valid structures: %s", strings.Join(templates.ValidStructures(), ", ")))
		}
		return convention{}, oerrors.NewValidationError(
			fmt.Sprintf("unknown entity kind %q", kind), "", "kind",
			"Valid kinds: backend, component")
	}
	return c, nil
}

func fixedDir(dir string) func(naming.Name) string {
	return func(naming.Name) string { return dir }
}

func moduleDir(n naming.Name) string {
	return n.Kebab
}

func componentDir(n naming.Name) string {
	return "components/" + n.Pascal
}

// backendFile names files <kebab>.<suffix>.<ext>.
func backendFile(suffix string) func(naming.Name, templates.Language) string {
	return func(n naming.Name, l templates.Language) string {
		return n.Kebab + "." + suffix + "." + l.SourceExt()
	}
}

func componentFile(n naming.Name, l templates.Language) string {
	return n.Pascal + "." + l.ComponentExt()
}

func stylesheetFile(n naming.Name, _ templates.Language) string {
	return n.Pascal + ".module.css"
}
