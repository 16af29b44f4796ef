package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pfgen/cli/internal/cmdtypes"
	"github.com/pfgen/cli/internal/cmdutil"
	"github.com/pfgen/cli/internal/config"
	oerrors "github.com/pfgen/cli/internal/errors"
	"github.com/pfgen/cli/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate the pfg configuration file.

Checks performed:
  1. Config file exists at resolved path
  2. Config file is valid YAML matching the configuration schema
     (known keys only, language and structure values, relative sourceRoot)

The config path is resolved using precedence:
  --config flag > PFG_CONFIG env > ~/.pfg/config.yaml

Examples:
  # Validate default configuration
  pfg config vet

  # Validate custom config path
  pfg config vet --config /path/to/config.yaml`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runConfigVet(cfg)
		},
	}
}

func runConfigVet(cfg *cmdtypes.GlobalConfig) error {
	path, err := configPath(cfg)
	if err != nil {
		return cmdutil.PrintError("could not resolve config path", oerrors.Wrap(oerrors.ErrNotFound, err.Error()))
	}

	output.Debug("validating config", "path", path)

	exists, err := config.FileExists(path)
	if err != nil {
		return cmdutil.PrintError("could not check config file", err)
	}
	if !exists {
		return cmdutil.PrintError("config vet failed", oerrors.NewNotFoundError(
			"configuration file not found", path,
			"Run 'pfg config init' to create default configuration."))
	}
	output.Println(output.FormatVetCheck("Config file found", path))

	validator, err := config.NewValidator()
	if err != nil {
		return fmt.Errorf("creating validator: %w", err)
	}

	if err := validator.ValidateFile(path); err != nil {
		var verrs config.ValidationErrors
		if errors.As(err, &verrs) {
			return cmdutil.PrintError("config validation failed: "+path, &oerrors.ExitError{
				Code: oerrors.ExitValidationError,
				Err:  err,
			})
		}
		return cmdutil.PrintError("could not read config file", err)
	}
	output.Println(output.FormatVetCheck("Schema valid", ""))

	return nil
}
