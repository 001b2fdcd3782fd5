// Package setup handles blueprint project initialization.
package setup

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	yamlv3 "gopkg.in/yaml.v3"

	"github.com/msageha/blueprint/internal/model"
	atomicyaml "github.com/msageha/blueprint/internal/yaml"
	"github.com/msageha/blueprint/templates"
)

const configName = "blueprint.yaml"

// Init writes a starter blueprint.yaml into the given project directory and
// creates the log directory. An existing config is left untouched.
func Init(projectDir string) error {
	absDir, err := filepath.Abs(projectDir)
	if err != nil {
		return fmt.Errorf("resolve project dir: %w", err)
	}

	cfgPath := filepath.Join(absDir, configName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	}

	raw, err := fs.ReadFile(templates.FS, "config.yaml")
	if err != nil {
		return fmt.Errorf("read config template: %w", err)
	}

	// Parse through the real config type so template drift fails here
	// rather than on the next design run.
	var cfg model.Config
	if err := yamlv3.Unmarshal(raw, &cfg); err != nil {
		return fmt.Errorf("parse config template: %w", err)
	}

	logDir := model.ApplyDefaults(cfg).Logging.Dir
	if !filepath.IsAbs(logDir) {
		logDir = filepath.Join(absDir, logDir)
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	// Write the raw template so its comments survive.
	if err := atomicyaml.AtomicWriteRaw(cfgPath, raw); err != nil {
		return fmt.Errorf("write %s: %w", configName, err)
	}

	return nil
}
