package config

import (
	_ "embed"
	"fmt"
	"os"
	"path"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	cueyaml "cuelang.org/go/encoding/yaml"
)

//go:embed schema.cue
var configSchemaCUE []byte

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Validator validates configuration against the embedded CUE schema.
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
}

// NewValidator creates a new configuration validator.
func NewValidator() (*Validator, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileBytes(configSchemaCUE, cue.Filename("schema.cue"))
	if schema.Err() != nil {
		return nil, fmt.Errorf("compiling schema: %w", schema.Err())
	}

	def := schema.LookupPath(cue.ParsePath("#Config"))
	if !def.Exists() {
		return nil, fmt.Errorf("schema has no #Config definition")
	}

	return &Validator{ctx: ctx, schema: def}, nil
}

// ValidateFile validates the YAML config file at path against the schema.
// Unknown fields are rejected.
func (v *Validator) ValidateFile(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	return v.ValidateBytes(filePath, data)
}

// ValidateBytes validates YAML config data against the schema.
func (v *Validator) ValidateBytes(filename string, data []byte) error {
	if strings.TrimSpace(string(data)) == "" {
		return nil
	}

	file, err := cueyaml.Extract(filename, data)
	if err != nil {
		return ValidationErrors{{Field: "(file)", Message: fmt.Sprintf("invalid YAML: %v", err)}}
	}

	value := v.ctx.BuildFile(file)
	if value.Err() != nil {
		return ValidationErrors{{Field: "(file)", Message: value.Err().Error()}}
	}

	unified := v.schema.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return toValidationErrors(err)
	}

	return nil
}

// Validate checks values that came from flags, env, or an already loaded file.
func (v *Validator) Validate(cfg *Config) error {
	var errs ValidationErrors

	if cfg.SourceRoot != "" {
		root := path.Clean(strings.ReplaceAll(cfg.SourceRoot, "\\", "/"))
		if path.IsAbs(root) || root == ".." || strings.HasPrefix(root, "../") {
			errs = append(errs, ValidationError{
				Field:   "sourceRoot",
				Message: "must be a relative path inside the project",
			})
		}
	}

	switch strings.ToLower(cfg.Language) {
	case "", "javascript", "typescript", "js", "ts":
	default:
		errs = append(errs, ValidationError{
			Field:   "language",
			Message: "must be one of javascript, typescript",
		})
	}

	switch strings.ToLower(cfg.Structure) {
	case "", "mvc", "feature":
	default:
		errs = append(errs, ValidationError{
			Field:   "structure",
			Message: "must be one of mvc, feature",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func toValidationErrors(err error) ValidationErrors {
	var errs ValidationErrors
	for _, e := range cueerrors.Errors(err) {
		field := strings.Join(e.Path(), ".")
		if field == "" {
			field = "(root)"
		}
		format, args := e.Msg()
		errs = append(errs, ValidationError{
			Field:   field,
			Message: fmt.Sprintf(format, args...),
		})
	}
	if len(errs) == 0 {
		errs = append(errs, ValidationError{Field: "(root)", Message: err.Error()})
	}
	return errs
}
