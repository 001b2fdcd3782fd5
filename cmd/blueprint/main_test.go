package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/msageha/blueprint/internal/model"
)

func TestLoadConfigAbsentDefaultPath(t *testing.T) {
	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(oldwd) })

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Claude.Binary != "" || cfg.OutputDir != "" || cfg.Documents.PRD != nil {
		t.Fatalf("expected zero config, got %+v", cfg)
	}
}

func TestLoadConfigExplicitMissing(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config")
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blueprint.yaml")
	if err := os.WriteFile(path, []byte("claude: ["), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := loadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestLoadConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blueprint.yaml")
	content := `
claude:
  binary: /usr/local/bin/claude
  model: sonnet
documents:
  readme: false
output_dir: docs
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Claude.Binary != "/usr/local/bin/claude" || cfg.Claude.Model != "sonnet" {
		t.Fatalf("claude config wrong: %+v", cfg.Claude)
	}
	if cfg.OutputDir != "docs" || cfg.Logging.Level != "debug" {
		t.Fatalf("config wrong: %+v", cfg)
	}
	if cfg.Documents.ReadmeEnabled() {
		t.Fatal("readme should be disabled")
	}
	if !cfg.Documents.PRDEnabled() {
		t.Fatal("unset prd should stay enabled")
	}
}

func TestApplyFlagsOverridesConfig(t *testing.T) {
	cmd := newDesignCmd()
	if err := cmd.ParseFlags([]string{"--output-dir", "out", "--model", "opus", "--no-prd"}); err != nil {
		t.Fatal(err)
	}

	cfg := model.Config{OutputDir: "from-config"}
	cfg.Claude.Model = "sonnet"
	disabled := false
	cfg.Documents.ClaudeMD = &disabled

	applyFlags(&cfg, cmd.Flags())

	if cfg.OutputDir != "out" {
		t.Fatalf("output dir not overridden: %q", cfg.OutputDir)
	}
	if cfg.Claude.Model != "opus" {
		t.Fatalf("model not overridden: %q", cfg.Claude.Model)
	}
	if cfg.Documents.PRDEnabled() {
		t.Fatal("--no-prd should disable prd")
	}
	if cfg.Documents.ClaudeMDEnabled() {
		t.Fatal("untouched claude_md config value should survive")
	}
	if !cfg.Documents.ReadmeEnabled() {
		t.Fatal("readme default should survive")
	}
}

func TestApplyFlagsUnchangedKeepsConfig(t *testing.T) {
	cmd := newDesignCmd()
	if err := cmd.ParseFlags(nil); err != nil {
		t.Fatal(err)
	}

	cfg := model.Config{OutputDir: "from-config"}
	applyFlags(&cfg, cmd.Flags())

	if cfg.OutputDir != "from-config" {
		t.Fatalf("config value clobbered: %q", cfg.OutputDir)
	}
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()

	out := &bytes.Buffer{}
	root := newRootCmd()
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs([]string{"init", dir})

	if err := root.Execute(); err != nil {
		t.Fatalf("init: %v", err)
	}
	if !strings.Contains(out.String(), "Created blueprint.yaml") {
		t.Fatalf("init output wrong: %q", out.String())
	}

	cfg, err := loadConfig(filepath.Join(dir, "blueprint.yaml"))
	if err != nil {
		t.Fatalf("starter config unreadable: %v", err)
	}
	if cfg.Claude.Binary != "claude" {
		t.Fatalf("starter config binary: %q", cfg.Claude.Binary)
	}

	root = newRootCmd()
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs([]string{"init", dir})
	if err := root.Execute(); err == nil {
		t.Fatal("second init should refuse to overwrite")
	}
}

func TestVersionCommand(t *testing.T) {
	out := &bytes.Buffer{}
	root := newRootCmd()
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs([]string{"version"})

	if err := root.Execute(); err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out.String(), "blueprint "+version) {
		t.Fatalf("version output wrong: %q", out.String())
	}
}
