package model

import "path/filepath"

type Config struct {
	Claude    ClaudeConfig    `yaml:"claude"`
	Documents DocumentsConfig `yaml:"documents"`
	OutputDir string          `yaml:"output_dir"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type ClaudeConfig struct {
	Binary string   `yaml:"binary"`
	Model  string   `yaml:"model"`
	Args   []string `yaml:"args,omitempty"`
}

// DocumentsConfig toggles individual artifacts. Unset values mean enabled.
type DocumentsConfig struct {
	PRD      *bool `yaml:"prd"`
	ClaudeMD *bool `yaml:"claude_md"`
	Readme   *bool `yaml:"readme"`
}

func (d DocumentsConfig) PRDEnabled() bool {
	return d.PRD == nil || *d.PRD
}

func (d DocumentsConfig) ClaudeMDEnabled() bool {
	return d.ClaudeMD == nil || *d.ClaudeMD
}

func (d DocumentsConfig) ReadmeEnabled() bool {
	return d.Readme == nil || *d.Readme
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	Dir   string `yaml:"dir"`
}

// ApplyDefaults fills zero values with the built-in defaults.
func ApplyDefaults(cfg Config) Config {
	if cfg.Claude.Binary == "" {
		cfg.Claude.Binary = "claude"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Dir == "" {
		cfg.Logging.Dir = filepath.Join(".blueprint", "logs")
	}
	return cfg
}
