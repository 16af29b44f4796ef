// Package cmdutil provides shared command utilities for the generator
// commands. It centralizes flag groups, option resolution, and error output.
package cmdutil

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pfgen/cli/internal/output"
	"github.com/pfgen/cli/internal/templates"
)

// GenerateFlags holds flags common to the generator commands
// (backend, component).
type GenerateFlags struct {
	Language string
	DryRun   bool
	Output   string
}

// AddTo registers the generate flags on the given cobra command.
func (f *GenerateFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Language, "lang", "l", "",
		fmt.Sprintf("Language variant: %s (env: PFG_LANGUAGE)", strings.Join(templates.ValidLanguages(), ", ")))
	cmd.Flags().BoolVar(&f.DryRun, "dry-run", false,
		"Print the planned files without writing them")
	cmd.Flags().StringVarP(&f.Output, "output", "o", "text",
		fmt.Sprintf("Dry-run output format: %s", strings.Join(output.ValidFormats(), ", ")))
}

// Format parses the --output value.
func (f *GenerateFlags) Format() (output.Format, error) {
	format := output.ParseFormat(f.Output)
	if !format.IsValid() {
		return "", fmt.Errorf("invalid output format %q (valid: %s)",
			f.Output, strings.Join(output.ValidFormats(), ", "))
	}
	return format, nil
}

// StructureFlags holds the backend structure flag.
type StructureFlags struct {
	Structure string
}

// AddTo registers the structure flag on the given cobra command.
func (f *StructureFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Structure, "structure", "s", "",
		fmt.Sprintf("Backend structure: %s (env: PFG_STRUCTURE)", strings.Join(templates.ValidStructures(), ", ")))
}
