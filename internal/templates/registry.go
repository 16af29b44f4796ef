package templates

import (
	"embed"
	"fmt"
	"sort"
)

//go:embed files/*.tmpl
var templateFS embed.FS

// Template describes one embedded template.
type Template struct {
	// Artifact is the kind of file the template produces.
	Artifact Artifact

	// Language is the variant the template serves.
	Language Language

	// File is the template path inside the embedded filesystem.
	File string

	// Description is shown next to generated files in summaries.
	Description string
}

type key struct {
	artifact Artifact
	language Language
}

// registry maps (artifact, language) to its template. Variants that differ
// only in substituted data share a file.
var registry = map[key]Template{
	{Controller, JavaScript}: {Controller, JavaScript, "files/controller.js.tmpl", "CRUD handlers"},
	{Controller, TypeScript}: {Controller, TypeScript, "files/controller.ts.tmpl", "CRUD handlers"},
	{Routes, JavaScript}:     {Routes, JavaScript, "files/routes.tmpl", "Express router"},
	{Routes, TypeScript}:     {Routes, TypeScript, "files/routes.tmpl", "Express router"},
	{Model, JavaScript}:      {Model, JavaScript, "files/model.js.tmpl", "Mongoose schema"},
	{Model, TypeScript}:      {Model, TypeScript, "files/model.ts.tmpl", "Mongoose schema and interface"},
	{Component, JavaScript}:  {Component, JavaScript, "files/component.jsx.tmpl", "React component"},
	{Component, TypeScript}:  {Component, TypeScript, "files/component.tsx.tmpl", "React component"},
	{Stylesheet, JavaScript}: {Stylesheet, JavaScript, "files/stylesheet.css.tmpl", "CSS module"},
	{Stylesheet, TypeScript}: {Stylesheet, TypeScript, "files/stylesheet.css.tmpl", "CSS module"},
}

// Get returns the template for an artifact in the given language.
func Get(artifact Artifact, language Language) (Template, error) {
	t, ok := registry[key{artifact, language}]
	if !ok {
		return Template{}, fmt.Errorf("no template for %s in %s", artifact, language)
	}
	return t, nil
}

// List returns all templates ordered by artifact, then language.
func List() []Template {
	out := make([]Template, 0, len(registry))
	for _, t := range registry {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Artifact != out[j].Artifact {
			return out[i].Artifact < out[j].Artifact
		}
		return out[i].Language < out[j].Language
	})
	return out
}
