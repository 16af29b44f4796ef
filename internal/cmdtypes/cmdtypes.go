// Package cmdtypes provides shared types for the cmd package and its helpers.
// It is separate from internal/cmd so that internal/cmdutil can use them
// without an import cycle.
package cmdtypes

import (
	"github.com/pfgen/cli/internal/config"
	oerrors "github.com/pfgen/cli/internal/errors"
	"github.com/pfgen/cli/internal/prompt"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every sub-command
// constructor.
type GlobalConfig struct {
	// Config is the loaded config file merged with the environment. Never nil
	// after PersistentPreRunE.
	Config *config.Config

	ConfigPath string // resolved --config path
	Root       string // raw --root flag value
	SourceRoot string // resolved source root (flag > env > config > default)
	Verbose    bool

	// Prompter asks for missing values. Nil when stdin is not a terminal.
	Prompter prompt.Prompter
}

// Exit codes, aliased from internal/errors.
const (
	ExitSuccess          = oerrors.ExitSuccess
	ExitGeneralError     = oerrors.ExitGeneralError
	ExitValidationError  = oerrors.ExitValidationError
	ExitPermissionDenied = oerrors.ExitPermissionDenied
	ExitNotFound         = oerrors.ExitNotFound
)

// ExitError is a type alias to internal/errors.ExitError.
type ExitError = oerrors.ExitError
