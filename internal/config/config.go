package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	LogDir string `toml:"log_dir"`
}

// Scan contains configuration for metadata extraction and the worker pool.
type Scan struct {
	Workers   int  `toml:"workers"`
	WindowKiB int  `toml:"window_kib"`
	FullScan  bool `toml:"full_scan"`
}

// Log contains logging output configuration.
type Log struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config centralizes every knob the CLI needs.
type Config struct {
	Paths Paths `toml:"paths"`
	Scan  Scan  `toml:"scan"`
	Log   Log   `toml:"log"`
}

// Load reads the configuration file at path, falling back to repository
// defaults when the file does not exist. An empty path means the default
// location. The returned config is normalized and validated.
func Load(path string) (*Config, error) {
	cfg := Default()

	resolved, err := resolveConfigPath(path)
	if err != nil {
		if path != "" {
			return nil, err
		}
		// No home directory to probe; run on defaults.
		resolved = ""
	}

	var data []byte
	if resolved != "" {
		data, err = os.ReadFile(resolved)
	} else {
		err = fs.ErrNotExist
	}
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", resolved, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if path != "" {
			return nil, fmt.Errorf("config file not found: %s", resolved)
		}
	default:
		return nil, fmt.Errorf("read config %s: %w", resolved, err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DefaultConfigPath returns the canonical config file location.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "exifsort", "config.toml"), nil
}

// Sample returns the embedded sample configuration file contents.
func Sample() string {
	return sampleConfig
}

// WriteSample writes the sample configuration to path, refusing to clobber
// an existing file.
func WriteSample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	return os.WriteFile(path, []byte(sampleConfig), 0o644)
}

// Marshal renders the effective configuration as TOML.
func (c *Config) Marshal() (string, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("render config: %w", err)
	}
	return string(data), nil
}

func resolveConfigPath(path string) (string, error) {
	if path != "" {
		return expandPath(path)
	}
	return DefaultConfigPath()
}
