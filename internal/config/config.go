// Package config handles reading and writing .interview/config.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level structure for .interview/config.yaml.
type Config struct {
	Version int          `yaml:"version"`
	Server  ServerConfig `yaml:"server"`
	Files   FilesConfig  `yaml:"files"`
}

// ServerConfig holds connection settings for the interview service.
type ServerConfig struct {
	URL            string `yaml:"url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"` // 0 leaves the HTTP default
}

// FilesConfig holds default paths for the upload pair, so regular users
// don't have to pass --resume/--jd on every run.
type FilesConfig struct {
	Resume string `yaml:"resume"`
	JD     string `yaml:"jd"`
}

// configFileName is the path relative to the working directory.
const configDir = ".interview"
const configFile = "config.yaml"

// ReadConfig reads .interview/config.yaml from the given directory.
// dir is the directory containing .interview/ (not .interview/ itself).
// Returns an error if the file is not found or YAML is malformed.
func ReadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, configDir, configFile)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

// WriteConfig writes cfg to .interview/config.yaml in the given directory.
// Creates the .interview/ directory if it does not exist.
func WriteConfig(dir string, cfg *Config) error {
	dirPath := filepath.Join(dir, configDir)
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	path := filepath.Join(dirPath, configFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Server: ServerConfig{
			URL:            "http://127.0.0.1:8000",
			TimeoutSeconds: 60,
		},
	}
}
