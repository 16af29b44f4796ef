package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name         string
		env          string
		opts         ResolveOptions
		wantValue    string
		wantSource   ConfigSource
		wantShadowed map[ConfigSource]string
	}{
		{
			name:         "flag wins over loaded config",
			opts:         ResolveOptions{Key: "language", FlagValue: "ts", EnvVar: EnvLanguage, LoadedValue: "javascript"},
			wantValue:    "ts",
			wantSource:   SourceFlag,
			wantShadowed: map[ConfigSource]string{SourceConfig: "javascript"},
		},
		{
			name:         "flag shadows env",
			env:          "typescript",
			opts:         ResolveOptions{Key: "language", FlagValue: "js", EnvVar: EnvLanguage, LoadedValue: "typescript"},
			wantValue:    "js",
			wantSource:   SourceFlag,
			wantShadowed: map[ConfigSource]string{SourceEnv: "typescript"},
		},
		{
			name:         "loaded value from env",
			env:          "typescript",
			opts:         ResolveOptions{Key: "language", EnvVar: EnvLanguage, LoadedValue: "typescript"},
			wantValue:    "typescript",
			wantSource:   SourceEnv,
			wantShadowed: map[ConfigSource]string{},
		},
		{
			name:         "loaded value from config",
			opts:         ResolveOptions{Key: "language", EnvVar: EnvLanguage, LoadedValue: "javascript"},
			wantValue:    "javascript",
			wantSource:   SourceConfig,
			wantShadowed: map[ConfigSource]string{},
		},
		{
			name:         "default",
			opts:         ResolveOptions{Key: "sourceRoot", EnvVar: EnvSourceRoot, DefaultValue: "src"},
			wantValue:    "src",
			wantSource:   SourceDefault,
			wantShadowed: map[ConfigSource]string{},
		},
		{
			name:         "nothing set",
			opts:         ResolveOptions{Key: "structure", EnvVar: EnvStructure},
			wantShadowed: map[ConfigSource]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.opts.EnvVar, tt.env)

			got := Resolve(tt.opts)
			assert.Equal(t, tt.opts.Key, got.Key)
			assert.Equal(t, tt.wantValue, got.Value)
			assert.Equal(t, tt.wantSource, got.Source)
			assert.Equal(t, tt.wantShadowed, got.Shadowed)
		})
	}
}

func TestResolveConfigPath(t *testing.T) {
	t.Setenv(EnvConfig, "")
	paths, err := DefaultPaths()
	require.NoError(t, err)

	got, err := ResolveConfigPath("")
	require.NoError(t, err)
	assert.Equal(t, paths.ConfigFile, got.Value)
	assert.Equal(t, SourceDefault, got.Source)

	t.Setenv(EnvConfig, "/env/config.yaml")
	got, err = ResolveConfigPath("")
	require.NoError(t, err)
	assert.Equal(t, "/env/config.yaml", got.Value)
	assert.Equal(t, SourceEnv, got.Source)

	got, err = ResolveConfigPath("/flag/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/flag/config.yaml", got.Value)
	assert.Equal(t, SourceFlag, got.Source)
	assert.Equal(t, "/env/config.yaml", got.Shadowed[SourceEnv])
}
