package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// manifest is an optional place.toml found in the working directory or one of
// its parents. It supplies defaults that flags override.
type manifest struct {
	Path   string
	Root   string
	Config manifestConfig
}

type manifestConfig struct {
	Expand expandConfig `toml:"expand"`
}

type expandConfig struct {
	MaxSteps int  `toml:"max_steps"`
	Passes   int  `toml:"passes"`
	Jobs     int  `toml:"jobs"`
	Cache    bool `toml:"cache"`
}

func findPlaceToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "place.toml")
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

// loadManifest walks up from startDir looking for place.toml. A missing
// manifest is not an error; everything in it is optional.
func loadManifest(startDir string) (*manifest, bool, error) {
	path, ok, err := findPlaceToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	var cfg manifestConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, true, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if cfg.Expand.MaxSteps < 0 {
		return nil, true, fmt.Errorf("%s: [expand].max_steps must not be negative", path)
	}
	if cfg.Expand.Passes < 0 {
		return nil, true, fmt.Errorf("%s: [expand].passes must not be negative", path)
	}
	return &manifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
	}, true, nil
}
