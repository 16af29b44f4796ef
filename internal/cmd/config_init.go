package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pfgen/cli/internal/cmdtypes"
	"github.com/pfgen/cli/internal/cmdutil"
	"github.com/pfgen/cli/internal/config"
	oerrors "github.com/pfgen/cli/internal/errors"
	"github.com/pfgen/cli/internal/output"
)

const configHeader = "# pfg configuration\n# Values here are overridden by PFG_* environment variables and flags.\n\n"

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Initialize the pfg configuration file with default values.

The file is created at ~/.pfg/config.yaml unless --config or PFG_CONFIG
names another location.

Examples:
  # Initialize configuration
  pfg config init

  # Overwrite existing configuration
  pfg config init --force`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runConfigInit(cfg, force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing configuration")

	return c
}

func runConfigInit(cfg *cmdtypes.GlobalConfig, force bool) error {
	path, err := configPath(cfg)
	if err != nil {
		return cmdutil.PrintError("could not resolve config path", oerrors.Wrap(oerrors.ErrNotFound, err.Error()))
	}

	exists, err := config.FileExists(path)
	if err != nil {
		return cmdutil.PrintError("could not check config file", err)
	}
	if exists && !force {
		return cmdutil.PrintError("config init failed", &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: path,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrValidation,
		})
	}

	var buf bytes.Buffer
	buf.WriteString(configHeader)
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(config.DefaultConfig()); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return cmdutil.PrintError("config init failed",
			oerrors.NewPermissionError("could not create config directory", filepath.Dir(path), ""))
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return cmdutil.PrintError("config init failed",
			oerrors.NewPermissionError("could not write config file", path, ""))
	}

	output.Println(output.FormatCheckmark("Configuration initialized at " + path))
	output.Println("Validate with: pfg config vet")
	return nil
}
