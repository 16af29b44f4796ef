package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pfgen/cli/internal/cmdtypes"
	"github.com/pfgen/cli/internal/cmdutil"
	"github.com/pfgen/cli/internal/config"
	oerrors "github.com/pfgen/cli/internal/errors"
	"github.com/pfgen/cli/internal/layout"
	"github.com/pfgen/cli/internal/scaffold"
	"github.com/pfgen/cli/internal/workspace"
)

// NewBackendCmd creates the backend command.
func NewBackendCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var gf cmdutil.GenerateFlags
	var sf cmdutil.StructureFlags

	c := &cobra.Command{
		Use:     "backend [name]",
		Aliases: []string{"module"},
		Short:   "Create a REST backend module",
		Long: `Create a REST backend module: a controller with five CRUD handlers,
a router binding them, and a model.

Structures:
  mvc       <src>/controllers/<name>.controller.<ext>
            <src>/routes/<name>.routes.<ext>
            <src>/models/<name>.model.<ext>
  feature   <src>/<name>/<name>.{controller,routes,model}.<ext>

Values not given as flags are read from the environment and config file,
then asked for interactively.

Examples:
  # Prompt for everything
  pfg backend

  # Create src/controllers/host.controller.ts and friends
  pfg backend host --structure mvc --lang ts

  # Show the plan as YAML without writing
  pfg backend host -s feature -l js --dry-run -o yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			structure := cmdutil.ResolveStructure(sf.Structure, cfg)
			return runGenerate(c, args, cfg, layout.Backend, &gf, structure)
		},
	}

	gf.AddTo(c)
	sf.AddTo(c)

	return c
}

// NewComponentCmd creates the component command.
func NewComponentCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var gf cmdutil.GenerateFlags

	c := &cobra.Command{
		Use:   "component [name]",
		Short: "Create a React component",
		Long: `Create a React component and its CSS module in
<src>/components/<Name>/.

Examples:
  # Create src/components/UserCard/UserCard.tsx and UserCard.module.css
  pfg component user-card --lang ts`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runGenerate(c, args, cfg, layout.ReactComponent, &gf, config.ResolvedValue{})
		},
	}

	gf.AddTo(c)

	return c
}

func runGenerate(c *cobra.Command, args []string, cfg *cmdtypes.GlobalConfig, kind layout.Kind, gf *cmdutil.GenerateFlags, structure config.ResolvedValue) error {
	format, err := gf.Format()
	if err != nil {
		return cmdutil.PrintError("invalid flag", oerrors.NewValidationError(err.Error(), "", "output", ""))
	}

	language := cmdutil.ResolveLanguage(gf.Language, cfg)
	config.LogResolvedValues(language, structure)

	var name string
	if len(args) > 0 {
		name = args[0]
	}

	req := scaffold.Request{
		Kind:       kind,
		Name:       name,
		Structure:  structure.Value,
		Language:   language.Value,
		SourceRoot: cfg.SourceRoot,
		Workspace:  workspace.Options{Flag: cfg.Root},
		DryRun:     gf.DryRun,
		Format:     format,
	}

	if _, err := scaffold.Run(c.Context(), req, scaffold.Deps{Prompter: cfg.Prompter}); err != nil {
		return cmdutil.PrintError("generation failed", err)
	}
	return nil
}
