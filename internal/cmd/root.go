// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pfgen/cli/internal/cmdtypes"
	"github.com/pfgen/cli/internal/config"
	"github.com/pfgen/cli/internal/layout"
	"github.com/pfgen/cli/internal/output"
	"github.com/pfgen/cli/internal/prompt"
	"github.com/pfgen/cli/internal/version"
)

// rootFlags holds the persistent flags of the root command.
type rootFlags struct {
	config     string
	root       string
	sourceRoot string
	verbose    bool
	timestamps bool
}

// NewRootCmd creates the root command for the pfg CLI.
func NewRootCmd() *cobra.Command {
	cfg := &cmdtypes.GlobalConfig{}
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "pfg",
		Short: "Project file generator",
		Long: `pfg scaffolds source files into a JavaScript or TypeScript project.

It provides commands to:
  - Create a REST backend module (controller, routes, model)
  - Create a React component with its stylesheet module

Existing files are never overwritten.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initializeGlobals(cmd, flags, cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.config, "config", "", "Path to config file (env: PFG_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&flags.root, "root", "", "Project root (env: PFG_ROOT, default: nearest directory with package.json or .git)")
	rootCmd.PersistentFlags().StringVar(&flags.sourceRoot, "source-root", "", "Source directory below the project root (env: PFG_SOURCE_ROOT, default: src)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flags.timestamps, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(NewBackendCmd(cfg))
	rootCmd.AddCommand(NewComponentCmd(cfg))
	rootCmd.AddCommand(NewConfigCmd(cfg))
	rootCmd.AddCommand(NewVersionCmd(cfg))

	return rootCmd
}

// initializeGlobals loads configuration, sets up logging, and fills cfg.
func initializeGlobals(cmd *cobra.Command, flags *rootFlags, cfg *cmdtypes.GlobalConfig) error {
	configPath, err := config.ResolveConfigPath(flags.config)
	if err != nil {
		return err
	}

	loaded, loadErr := config.NewLoader().Load(configPath.Value)
	if loadErr != nil {
		// Commands still work without a config file.
		loaded = &config.Config{}
	}

	// Build LogConfig with precedence: flag > config > default(true)
	logCfg := output.LogConfig{Verbose: flags.verbose}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(flags.timestamps)
	} else if loaded.Log.Timestamps != nil {
		logCfg.Timestamps = loaded.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	if loadErr != nil {
		output.Warn("ignoring config file", "path", configPath.Value, "error", loadErr)
	}

	sourceRoot := config.Resolve(config.ResolveOptions{
		Key:          "sourceRoot",
		FlagValue:    flags.sourceRoot,
		EnvVar:       config.EnvSourceRoot,
		LoadedValue:  loaded.SourceRoot,
		DefaultValue: layout.DefaultSourceRoot,
	})

	cfg.Config = loaded
	cfg.ConfigPath = configPath.Value
	cfg.Root = flags.root
	cfg.SourceRoot = sourceRoot.Value
	cfg.Verbose = flags.verbose
	if output.IsInteractive() {
		cfg.Prompter = prompt.NewHuh()
	}

	info := version.Get()
	output.Debug("pfg started",
		"version", info.Version,
		"interactive", cfg.Prompter != nil,
	)
	config.LogResolvedValues(configPath, sourceRoot)

	return nil
}
