package config

import (
	"os"

	"github.com/pfgen/cli/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is a configuration value and where it came from.
type ResolvedValue struct {
	// Key is the config key.
	Key string
	// Value is the resolved value; empty if nothing was set.
	Value string
	// Source indicates where the value came from; empty if nothing was set.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveOptions contains the candidates for one configuration value.
type ResolveOptions struct {
	// Key is the config key, for logging.
	Key string
	// FlagValue is the flag value (empty if not set).
	FlagValue string
	// EnvVar is the environment variable bound to the key.
	EnvVar string
	// LoadedValue is the value from the loader, which already merges the
	// config file and the environment.
	LoadedValue string
	// DefaultValue is used when nothing else is set.
	DefaultValue string
}

// Resolve resolves one value using precedence:
// (1) flag, (2) environment, (3) config file, (4) default.
func Resolve(opts ResolveOptions) ResolvedValue {
	result := ResolvedValue{
		Key:      opts.Key,
		Shadowed: make(map[ConfigSource]string),
	}

	envValue := ""
	if opts.EnvVar != "" {
		envValue = os.Getenv(opts.EnvVar)
	}

	// The loader prefers env over file, so a loaded value equal to the env
	// value is attributed to the environment.
	loadedSource := SourceConfig
	if envValue != "" && opts.LoadedValue == envValue {
		loadedSource = SourceEnv
	}

	switch {
	case opts.FlagValue != "":
		result.Value = opts.FlagValue
		result.Source = SourceFlag
		if opts.LoadedValue != "" {
			result.Shadowed[loadedSource] = opts.LoadedValue
		}
	case opts.LoadedValue != "":
		result.Value = opts.LoadedValue
		result.Source = loadedSource
	case opts.DefaultValue != "":
		result.Value = opts.DefaultValue
		result.Source = SourceDefault
	}

	return result
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) PFG_CONFIG env, (3) ~/.pfg/config.yaml default.
func ResolveConfigPath(flagValue string) (ResolvedValue, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return ResolvedValue{}, err
	}

	return Resolve(ResolveOptions{
		Key:          "config",
		FlagValue:    flagValue,
		LoadedValue:  os.Getenv(EnvConfig),
		EnvVar:       EnvConfig,
		DefaultValue: paths.ConfigFile,
	}), nil
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values ...ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
