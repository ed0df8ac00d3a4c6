package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// projectConfig is the optional rms-check.toml file, looked up from the
// target file's directory upward.
type projectConfig struct {
	Check  checkConfig  `toml:"check"`
	Format formatConfig `toml:"format"`
}

type checkConfig struct {
	// Compatibility is the default target game version, overridable with
	// --compat and by the script's own header comment.
	Compatibility string `toml:"compatibility"`
	// Disable lists lint names to skip, e.g. ["dead-branch-comment"].
	Disable []string `toml:"disable"`
}

type formatConfig struct {
	TabSize        int64 `toml:"tab_size"`
	UseSpaces      *bool `toml:"use_spaces"`
	AlignArguments *bool `toml:"align_arguments"`
}

func findConfig(startDir string) (string, bool, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "rms-check.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadConfig reads the nearest rms-check.toml. A missing file is not an
// error; the zero config is returned.
func loadConfig(startDir string) (projectConfig, error) {
	var cfg projectConfig
	path, ok, err := findConfig(startDir)
	if err != nil || !ok {
		return cfg, err
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}
