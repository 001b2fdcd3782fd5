package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"ERROR", LevelError},
		{"", LevelInfo},
		{"bogus", LevelInfo},
	}
	for _, tc := range cases {
		if got := ParseLevel(tc.in); got != tc.want {
			t.Errorf("ParseLevel(%q): got %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger("generator", "warn", &buf, nil)

	l.Debugf("dropped debug")
	l.Infof("dropped info")
	l.Warnf("kept warn")
	l.Errorf("kept error")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("below-level lines written: %q", out)
	}
	if !strings.Contains(out, "WARN generator: kept warn") {
		t.Errorf("warn line missing: %q", out)
	}
	if !strings.Contains(out, "ERROR generator: kept error") {
		t.Errorf("error line missing: %q", out)
	}
}

func TestWithComponentSharesDestination(t *testing.T) {
	var buf bytes.Buffer
	root := newLogger("root", "debug", &buf, nil)
	child := root.WithComponent("claude")

	child.Infof("invoking collaborator")

	if !strings.Contains(buf.String(), "INFO claude: invoking collaborator") {
		t.Errorf("derived component tag missing: %q", buf.String())
	}
	// closing the derived logger must not touch the shared handle
	if err := child.Close(); err != nil {
		t.Errorf("Close on derived logger: %v", err)
	}
}

func TestOpenCreatesLogDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")
	l := Open(dir, "info", "run")
	defer func() { _ = l.Close() }()

	l.Infof("run started")

	data, err := os.ReadFile(filepath.Join(dir, "design.log"))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "run started") {
		t.Errorf("log line not written: %q", string(data))
	}
}

func TestOpenFailureDegradesToDiscard(t *testing.T) {
	// a file where the directory should be forces MkdirAll to fail
	base := t.TempDir()
	blocker := filepath.Join(base, "logs")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatalf("write blocker: %v", err)
	}

	l := Open(filepath.Join(blocker, "inner"), "info", "run")
	l.Infof("should not panic")
	if err := l.Close(); err != nil {
		t.Errorf("Close on discard logger: %v", err)
	}
}
