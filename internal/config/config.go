// Package config loads vtdemo's on-disk configuration: terminal size
// defaults and where to keep logs and session recordings.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is vtdemo's YAML-configurable settings.
type Config struct {
	Rows         int    `yaml:"rows"`
	Cols         int    `yaml:"cols"`
	LogPath      string `yaml:"log_path"`
	RecordingDir string `yaml:"recording_dir"`
}

// Default returns the built-in configuration used when no file is present.
func Default() *Config {
	return &Config{
		Rows:         24,
		Cols:         80,
		LogPath:      "",
		RecordingDir: os.TempDir(),
	}
}

// Load reads a YAML config file at path, falling back to Default for any
// field the file doesn't set. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
