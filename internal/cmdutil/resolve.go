package cmdutil

import (
	"github.com/pfgen/cli/internal/cmdtypes"
	"github.com/pfgen/cli/internal/config"
)

// ResolveLanguage resolves the language using flag > env > config. An empty
// result means the user is asked.
func ResolveLanguage(flag string, cfg *cmdtypes.GlobalConfig) config.ResolvedValue {
	return config.Resolve(config.ResolveOptions{
		Key:         "language",
		FlagValue:   flag,
		EnvVar:      config.EnvLanguage,
		LoadedValue: loaded(cfg).Language,
	})
}

// ResolveStructure resolves the backend structure using flag > env > config.
// An empty result means the user is asked.
func ResolveStructure(flag string, cfg *cmdtypes.GlobalConfig) config.ResolvedValue {
	return config.Resolve(config.ResolveOptions{
		Key:         "structure",
		FlagValue:   flag,
		EnvVar:      config.EnvStructure,
		LoadedValue: loaded(cfg).Structure,
	})
}

func loaded(cfg *cmdtypes.GlobalConfig) *config.Config {
	if cfg == nil || cfg.Config == nil {
		return &config.Config{}
	}
	return cfg.Config
}
