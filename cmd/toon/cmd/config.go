package cmd

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the YAML-tagged default-options file the teacher's
// DatabaseConfig struct (cli/cmd/config.go) is grounded on: instead of
// a map of named database connections, this describes the toon.Options
// defaults a user wants without repeating flags on every invocation.
type Config struct {
	Delimiter    string `yaml:"delimiter"`
	Indent       int    `yaml:"indent"`
	Strict       bool   `yaml:"strict"`
	KeyFolding   string `yaml:"key_folding"`
	FlattenDepth *int   `yaml:"flatten_depth"`
	ExpandPaths  string `yaml:"expand_paths"`
}

// LoadConfig reads ~/.toon.yaml if present. A missing file is not an
// error -- the CLI falls back to flag defaults, mirroring the
// teacher's LoadConfig except that a missing config here is optional
// rather than fatal (sqlcode.yaml is required for its schema-deploy
// workflow; toon has sensible defaults for every field).
func LoadConfig() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, err
	}
	path := filepath.Join(home, ".toon.yaml")
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyConfigDefaults overrides a flag value only when it still equals
// the cobra-declared default and the config file set something else.
// An explicit flag whose value equals the default is indistinguishable
// from an unset one, so the config value wins there; strict: true in
// the config always turns strict mode on. FlattenDepth is read from the
// file but not applied: the CLI has no flatten-depth setting.
func applyConfigDefaults(cfg Config) {
	if cfg.Delimiter != "" && delimiterFlag == "comma" {
		delimiterFlag = cfg.Delimiter
	}
	if cfg.Indent != 0 && indentFlag == 2 {
		indentFlag = cfg.Indent
	}
	if cfg.Strict {
		strictFlag = true
	}
	if cfg.KeyFolding != "" && keyFoldingFlag == "off" {
		keyFoldingFlag = cfg.KeyFolding
	}
	if cfg.ExpandPaths != "" && expandPathsFlag == "off" {
		expandPathsFlag = cfg.ExpandPaths
	}
}
