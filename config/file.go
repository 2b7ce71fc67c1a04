package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrNotFound indicates no configuration file was found at the requested
// location. Callers commonly treat it as "run with defaults".
var ErrNotFound = errors.New("config: no autoid.yaml or autoid.yml found")

// File is the on-disk shape of an autoid.yaml configuration file. The
// policy lives under a top-level "autoid" key so the file can coexist with
// other tool sections in a shared project config.
type File struct {
	AutoID Configuration `yaml:"autoid"`
}

// Load reads and parses an autoid.yaml file from the given path.
// If the path is a directory, it looks for autoid.yaml or autoid.yml in
// that directory. The returned configuration is normalized.
func Load(path string) (Configuration, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return Configuration{}, fmt.Errorf("%w at %s", ErrNotFound, path)
	}
	if err != nil {
		return Configuration{}, fmt.Errorf("failed to stat path: %w", err)
	}

	configPath := path
	if info.IsDir() {
		configPath = ""
		for _, name := range []string{"autoid.yaml", "autoid.yml"} {
			candidate := filepath.Join(path, name)
			if _, err := os.Stat(candidate); err == nil {
				configPath = candidate
				break
			}
		}
		if configPath == "" {
			return Configuration{}, fmt.Errorf("%w in %s", ErrNotFound, path)
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return Configuration{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Configuration{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	return file.AutoID.Normalize(), nil
}

// LoadFromDir searches for autoid.yaml starting from the given directory
// and walking up to parent directories until found or root is reached.
func LoadFromDir(dir string) (Configuration, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return Configuration{}, fmt.Errorf("failed to get absolute path: %w", err)
	}

	for {
		cfg, err := Load(absDir)
		if err == nil {
			return cfg, nil
		}

		parent := filepath.Dir(absDir)
		if parent == absDir {
			// Reached root
			return Configuration{}, fmt.Errorf("%w in %s or parent directories", ErrNotFound, dir)
		}
		absDir = parent
	}
}

// LoadFromCurrentDir loads autoid.yaml from the current working directory.
func LoadFromCurrentDir() (Configuration, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return Configuration{}, fmt.Errorf("failed to get current directory: %w", err)
	}
	return LoadFromDir(cwd)
}
