// Package config provides configuration loading and management.
package config

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty" json:"timestamps,omitempty"`
}

// Config represents the pfg CLI configuration.
// Loaded from ~/.pfg/config.yaml, validated against the embedded CUE schema.
type Config struct {
	// SourceRoot is the source directory below the project root.
	// Env: PFG_SOURCE_ROOT, Default: src
	SourceRoot string `mapstructure:"sourceRoot" yaml:"sourceRoot,omitempty" json:"sourceRoot,omitempty"`

	// Language is the default language variant (javascript or typescript).
	// Env: PFG_LANGUAGE, Default: unset (prompt)
	Language string `mapstructure:"language" yaml:"language,omitempty" json:"language,omitempty"`

	// Structure is the default backend structure (mvc or feature).
	// Env: PFG_STRUCTURE, Default: unset (prompt)
	Structure string `mapstructure:"structure" yaml:"structure,omitempty" json:"structure,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log,omitempty" json:"log,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `pfg config init` to generate the initial config file.
func DefaultConfig() *Config {
	timestamps := true
	return &Config{
		SourceRoot: "src",
		Log:        LogConfig{Timestamps: &timestamps},
	}
}

// WithDefaults returns a copy of c with empty fields filled from DefaultConfig.
func (c *Config) WithDefaults() *Config {
	out := *c
	def := DefaultConfig()
	if out.SourceRoot == "" {
		out.SourceRoot = def.SourceRoot
	}
	if out.Log.Timestamps == nil {
		out.Log.Timestamps = def.Log.Timestamps
	}
	return &out
}
