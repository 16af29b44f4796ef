// Package templates renders the text of generated artifacts from embedded templates.
package templates

import (
	"fmt"
	"strings"

	"github.com/pfgen/cli/internal/naming"
)

// Artifact identifies one kind of generated file.
type Artifact string

const (
	// Controller holds the five CRUD handler stubs.
	Controller Artifact = "controller"

	// Routes binds HTTP verbs and paths to the controller handlers.
	Routes Artifact = "routes"

	// Model declares the persistence schema.
	Model Artifact = "model"

	// Component is a presentational React component.
	Component Artifact = "component"

	// Stylesheet is the CSS module co-located with a component.
	Stylesheet Artifact = "stylesheet"
)

// Language selects the JavaScript or TypeScript variant of a template.
type Language string

const (
	// JavaScript emits untyped .js / .jsx sources.
	JavaScript Language = "javascript"

	// TypeScript emits annotated .ts / .tsx sources.
	TypeScript Language = "typescript"
)

// ParseLanguage parses a language name or its file extension shorthand.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "javascript", "js":
		return JavaScript, nil
	case "typescript", "ts":
		return TypeScript, nil
	default:
		return "", fmt.Errorf("unknown language %q; valid languages: %s", s, strings.Join(ValidLanguages(), ", "))
	}
}

// ValidLanguages returns the canonical language names.
func ValidLanguages() []string {
	return []string{string(JavaScript), string(TypeScript)}
}

// SourceExt returns the extension for backend sources.
func (l Language) SourceExt() string {
	if l == TypeScript {
		return "ts"
	}
	return "js"
}

// ComponentExt returns the extension for component sources.
func (l Language) ComponentExt() string {
	if l == TypeScript {
		return "tsx"
	}
	return "jsx"
}

// Structure selects how backend artifacts are grouped on disk.
type Structure string

const (
	// StructureNone applies to entity kinds without a structural choice.
	StructureNone Structure = ""

	// MVC groups artifacts by type: controllers/, routes/, models/.
	MVC Structure = "mvc"

	// Feature groups all artifacts of a module in one directory.
	Feature Structure = "feature"
)

// ParseStructure parses a structure name.
func ParseStructure(s string) (Structure, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mvc":
		return MVC, nil
	case "feature", "feature-based":
		return Feature, nil
	default:
		return "", fmt.Errorf("unknown structure %q; valid structures: %s", s, strings.Join(ValidStructures(), ", "))
	}
}

// ValidStructures returns the canonical structure names.
func ValidStructures() []string {
	return []string{string(MVC), string(Feature)}
}

// Options select the template variant to render.
type Options struct {
	Language  Language
	Structure Structure
}

// Data holds the values substituted into a template.
type Data struct {
	// Name carries every case form of the entity name.
	Name naming.Name

	// ControllerImport is the module path routes import handlers from.
	ControllerImport string

	// StylesheetFile is the stylesheet file name a component imports.
	StylesheetFile string
}

// NewData derives template data for name under opts.
func NewData(name naming.Name, opts Options) Data {
	return Data{
		Name:             name,
		ControllerImport: controllerImport(name, opts.Structure),
		StylesheetFile:   name.Pascal + ".module.css",
	}
}

// controllerImport returns the relative import of the controller module.
// Both variants import the emitted .js path so TypeScript output works under
// NodeNext module resolution.
func controllerImport(name naming.Name, structure Structure) string {
	file := name.Kebab + ".controller.js"
	if structure == Feature {
		return "./" + file
	}
	return "../controllers/" + file
}
