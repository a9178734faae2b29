package cli

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the optional YAML file (~/.config/dex-chunker/config.yaml).
// Command line flags win over every value here.
type Config struct {
	InputDir  string `yaml:"input_dir"`
	OutputDir string `yaml:"output_dir"`
	Pattern   string `yaml:"pattern"`
	ChunkSize int    `yaml:"chunk_size"`
	Quiet     bool   `yaml:"quiet"`
}

func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "dex-chunker", "config.yaml")
}

// LoadConfig reads the config file at path. A missing file is only an error
// when the path was given explicitly; otherwise a zero Config is returned.
func LoadConfig(path string, explicit bool) (Config, error) {
	if path == "" {
		return Config{}, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) && !explicit {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, errors.Wrap(err, "LoadConfig error reading file")
	}

	cfg := Config{}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, `LoadConfig error parsing "%s"`, path)
	}
	if cfg.ChunkSize < 0 {
		return Config{}, errors.Errorf(`LoadConfig error: negative chunk_size %d in "%s"`, cfg.ChunkSize, path)
	}
	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}

func firstPositive(values ...int) int {
	for _, value := range values {
		if value > 0 {
			return value
		}
	}
	return 0
}
