// Package config loads the abicall CLI configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the CLI configuration file layout.
type Config struct {
	Log          LogConfig    `yaml:"log"`
	Output       OutputConfig `yaml:"output"`
	ArtifactDirs []string     `yaml:"artifact_dirs"`
}

// LogConfig controls the CLI logger.
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// OutputConfig controls how descriptors are printed.
type OutputConfig struct {
	Indent   bool `yaml:"indent"`
	Calldata bool `yaml:"calldata"`
}

// ErrArtifactNotFound indicates no artifact matched the requested name.
var ErrArtifactNotFound = errors.New("artifact not found")

// DefaultPaths are searched, in order, when no config file is given.
var DefaultPaths = []string{
	"abicall.yaml",
	".abicall.yaml",
	"config/abicall.yaml",
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:      "warn",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
		},
		Output: OutputConfig{
			Indent: true,
		},
		ArtifactDirs: []string{"out", "artifacts"},
	}
}

// Load reads the YAML file at path over the defaults. An empty path
// searches DefaultPaths; finding nothing there is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = findConfigFile()
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func findConfigFile() string {
	for _, path := range DefaultPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ResolveArtifact maps a CLI argument to an artifact file. A path that
// exists is returned as is; otherwise each artifact directory is searched
// for NAME, NAME.json and the Foundry layout NAME.sol/NAME.json.
func (c *Config) ResolveArtifact(arg string) (string, error) {
	if fileExists(arg) {
		return arg, nil
	}
	for _, dir := range c.ArtifactDirs {
		candidates := []string{
			filepath.Join(dir, arg),
			filepath.Join(dir, arg+".json"),
			filepath.Join(dir, arg+".sol", arg+".json"),
		}
		for _, p := range candidates {
			if fileExists(p) {
				return p, nil
			}
		}
	}
	return "", fmt.Errorf("%w: %s", ErrArtifactNotFound, arg)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
