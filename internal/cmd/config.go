package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pfgen/cli/internal/cmdtypes"
	"github.com/pfgen/cli/internal/config"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Configuration management for the pfg CLI.`,
	}

	c.AddCommand(NewConfigInitCmd(cfg))
	c.AddCommand(NewConfigVetCmd(cfg))

	return c
}

// configPath returns the resolved config path, falling back to the default
// when the command runs without the root command.
func configPath(cfg *cmdtypes.GlobalConfig) (string, error) {
	if cfg != nil && cfg.ConfigPath != "" {
		return config.ExpandPath(cfg.ConfigPath)
	}
	p, err := config.GetConfigFile()
	if err != nil {
		return "", err
	}
	return config.ExpandPath(p)
}
