package model

import (
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestConfigUnmarshal(t *testing.T) {
	raw := []byte(`
claude:
  binary: /usr/local/bin/claude
  model: sonnet
  args: ["--dangerously-skip-permissions"]
documents:
  prd: true
  claude_md: false
output_dir: docs/design
logging:
  level: debug
`)

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if cfg.Claude.Binary != "/usr/local/bin/claude" {
		t.Errorf("claude.binary: got %q", cfg.Claude.Binary)
	}
	if cfg.Claude.Model != "sonnet" {
		t.Errorf("claude.model: got %q", cfg.Claude.Model)
	}
	if len(cfg.Claude.Args) != 1 || cfg.Claude.Args[0] != "--dangerously-skip-permissions" {
		t.Errorf("claude.args: got %v", cfg.Claude.Args)
	}
	if cfg.OutputDir != "docs/design" {
		t.Errorf("output_dir: got %q", cfg.OutputDir)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("logging.level: got %q", cfg.Logging.Level)
	}
	if !cfg.Documents.PRDEnabled() {
		t.Error("documents.prd: explicit true read back as disabled")
	}
	if cfg.Documents.ClaudeMDEnabled() {
		t.Error("documents.claude_md: explicit false read back as enabled")
	}
	// readme omitted from the file: unset means enabled
	if !cfg.Documents.ReadmeEnabled() {
		t.Error("documents.readme: unset should mean enabled")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := ApplyDefaults(Config{})

	if cfg.Claude.Binary != "claude" {
		t.Errorf("claude.binary default: got %q", cfg.Claude.Binary)
	}
	if cfg.OutputDir != "." {
		t.Errorf("output_dir default: got %q", cfg.OutputDir)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("logging.level default: got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Dir != filepath.Join(".blueprint", "logs") {
		t.Errorf("logging.dir default: got %q", cfg.Logging.Dir)
	}
	if !cfg.Documents.PRDEnabled() || !cfg.Documents.ClaudeMDEnabled() || !cfg.Documents.ReadmeEnabled() {
		t.Error("document toggles should default Enabled")
	}
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	off := false
	in := Config{
		Claude:    ClaudeConfig{Binary: "claude-dev", Model: "opus"},
		Documents: DocumentsConfig{Readme: &off},
		OutputDir: "out",
		Logging:   LoggingConfig{Level: "warn", Dir: "logs"},
	}

	cfg := ApplyDefaults(in)

	if cfg.Claude.Binary != "claude-dev" || cfg.Claude.Model != "opus" {
		t.Errorf("claude config overwritten: %+v", cfg.Claude)
	}
	if cfg.OutputDir != "out" {
		t.Errorf("output_dir overwritten: got %q", cfg.OutputDir)
	}
	if cfg.Logging.Level != "warn" || cfg.Logging.Dir != "logs" {
		t.Errorf("logging config overwritten: %+v", cfg.Logging)
	}
	if cfg.Documents.ReadmeEnabled() {
		t.Error("explicit readme=false lost during defaulting")
	}
}

func TestAnswerSetOrdering(t *testing.T) {
	a := NewAnswerSet()
	a.Set("app_type", "CLI Tool")
	a.Set("app_name", "tasker")
	a.Set("key_features", "sync, offline mode")

	want := []string{"app_type", "app_name", "key_features"}
	if got := a.IDs(); !reflect.DeepEqual(got, want) {
		t.Errorf("IDs: got %v, want %v", got, want)
	}
	if a.Len() != 3 {
		t.Errorf("Len: got %d, want 3", a.Len())
	}

	v, ok := a.Get("app_name")
	if !ok || v != "tasker" {
		t.Errorf("Get(app_name): got %q, %v", v, ok)
	}
	if _, ok := a.Get("missing"); ok {
		t.Error("Get(missing): expected not found")
	}
}

func TestAnswerSetOverwriteKeepsPosition(t *testing.T) {
	a := NewAnswerSet()
	a.Set("app_name", "first")
	a.Set("app_type", "CLI Tool")
	a.Set("app_name", "second")

	want := []string{"app_name", "app_type"}
	if got := a.IDs(); !reflect.DeepEqual(got, want) {
		t.Errorf("IDs after overwrite: got %v, want %v", got, want)
	}
	if v, _ := a.Get("app_name"); v != "second" {
		t.Errorf("overwritten value: got %q, want %q", v, "second")
	}
	if a.Len() != 2 {
		t.Errorf("Len after overwrite: got %d, want 2", a.Len())
	}
}

func TestQuestionHasFollowUpFor(t *testing.T) {
	q := Question{
		ID:   "deployment",
		Text: "Where will this run?",
		Kind: KindMultipleChoice,
		Options: []string{
			"Cloud",
			"On-premises",
		},
		FollowUp: map[string]string{"Cloud": "cloud_details"},
	}

	if !q.HasFollowUpFor("Cloud") {
		t.Error("expected follow-up for mapped answer")
	}
	if q.HasFollowUpFor("On-premises") {
		t.Error("unexpected follow-up for unmapped answer")
	}

	bare := Question{ID: "app_name", Kind: KindFreeText}
	if bare.HasFollowUpFor("anything") {
		t.Error("unexpected follow-up with no mapping")
	}
}

func TestDocumentKindFilename(t *testing.T) {
	cases := []struct {
		kind DocumentKind
		want string
	}{
		{DocPRD, "PRD.md"},
		{DocClaudeMD, "CLAUDE.md"},
		{DocReadme, "README.md"},
		{DocumentKind("unknown"), ""},
	}
	for _, tc := range cases {
		if got := tc.kind.Filename(); got != tc.want {
			t.Errorf("Filename(%q): got %q, want %q", tc.kind, got, tc.want)
		}
	}
}
