// Package workspace resolves the single project root that generated files are
// written into.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pfgen/cli/internal/config"
	oerrors "github.com/pfgen/cli/internal/errors"
	"github.com/pfgen/cli/internal/output"
)

// EnvRoot names the environment variable that overrides the project root.
const EnvRoot = "PFG_ROOT"

// Markers are the entries whose presence marks a directory as a project root,
// checked in order.
var Markers = []string{"package.json", ".git"}

// SourceDiscovered indicates the root was found by walking up from the start
// directory.
const SourceDiscovered config.ConfigSource = "discovered"

// Options control root resolution.
type Options struct {
	// Flag is the --root flag value (empty if not set).
	Flag string

	// StartDir is where discovery begins. Empty means the working directory.
	StartDir string
}

// Root is a resolved project root.
type Root struct {
	// Path is the absolute, clean root path.
	Path string

	// Source indicates where the root came from.
	Source config.ConfigSource

	// Marker is the project marker found, when discovered.
	Marker string
}

// Resolve resolves the project root using precedence:
// (1) --root flag, (2) PFG_ROOT env, (3) nearest ancestor of StartDir holding
// a project marker.
func Resolve(opts Options) (Root, error) {
	if opts.Flag != "" {
		return explicit(opts.Flag, config.SourceFlag)
	}
	if env := os.Getenv(EnvRoot); env != "" {
		return explicit(env, config.SourceEnv)
	}

	start := opts.StartDir
	if start == "" {
		wd, err := os.Getwd()
		if err != nil {
			return Root{}, fmt.Errorf("getting working directory: %w", err)
		}
		start = wd
	}

	return discover(start)
}

func explicit(dir string, source config.ConfigSource) (Root, error) {
	expanded, err := config.ExpandPath(dir)
	if err != nil {
		return Root{}, fmt.Errorf("expanding root path: %w", err)
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return Root{}, fmt.Errorf("getting absolute path: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return Root{}, oerrors.NewNoWorkspaceError(abs)
	}

	output.Debug("workspace root resolved", "root", abs, "source", source)
	return Root{Path: abs, Source: source}, nil
}

func discover(start string) (Root, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return Root{}, fmt.Errorf("getting absolute path: %w", err)
	}

	dir := abs
	for {
		for _, m := range Markers {
			if _, err := os.Stat(filepath.Join(dir, m)); err == nil {
				output.Debug("workspace root resolved", "root", dir, "source", SourceDiscovered, "marker", m)
				return Root{Path: dir, Source: SourceDiscovered, Marker: m}, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return Root{}, oerrors.NewNoWorkspaceError(abs)
		}
		dir = parent
	}
}
