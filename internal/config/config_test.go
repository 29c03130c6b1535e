package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if *cfg != *Default() {
		t.Errorf("Empty config should yield the defaults, got %+v", cfg)
	}
	if cfg.Level() != logrus.WarnLevel {
		t.Errorf("Default level should be warn, got %s", cfg.Level())
	}
}

func TestParseOverrides(t *testing.T) {
	cfg, err := Parse(strings.NewReader(`
log_level: debug
color: false
repl:
  prompt: "lox> "
`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Level() != logrus.DebugLevel {
		t.Errorf("Expected debug level, got %s", cfg.Level())
	}
	if cfg.Color {
		t.Errorf("Color should be disabled")
	}
	if cfg.REPL.Prompt != "lox> " {
		t.Errorf("Unexpected prompt %q", cfg.REPL.Prompt)
	}
	// Keys left out keep their defaults
	if cfg.REPL.ContinuationPrompt != ". " {
		t.Errorf("Unexpected continuation prompt %q", cfg.REPL.ContinuationPrompt)
	}
	if cfg.REPL.HistoryFile != "~/.rlox_history" {
		t.Errorf("Unexpected history file %q", cfg.REPL.HistoryFile)
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	if _, err := Parse(strings.NewReader("colour: true\n")); err == nil {
		t.Errorf("Unknown keys should be rejected")
	}
}

func TestValidate(t *testing.T) {
	_, err := Parse(strings.NewReader(`
log_level: loud
repl:
  prompt: ""
  continuation_prompt: ""
`))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected a validation error, got %v", err)
	}
	if len(verr.Issues) != 3 {
		t.Errorf("Expected 3 issues, got %v", verr.Issues)
	}
	if !strings.HasPrefix(verr.Error(), "config validation failed: log_level:") {
		t.Errorf("Unexpected message %q", verr.Error())
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	// Missing files
	missing := filepath.Join(dir, "missing.yaml")
	cfg, err := Load(missing, true)
	if err != nil {
		t.Fatal(err)
	}
	if *cfg != *Default() {
		t.Errorf("Missing optional config should yield the defaults")
	}
	if _, err := Load(missing, false); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected a not exist error, got %v", err)
	}

	// Empty path
	cfg, err = Load("", false)
	if err != nil {
		t.Fatal(err)
	}
	if *cfg != *Default() {
		t.Errorf("Empty path should yield the defaults")
	}

	path := filepath.Join(dir, "rlox.yaml")
	if err := os.WriteFile(path, []byte("log_level: error\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load(path, false)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Level() != logrus.ErrorLevel {
		t.Errorf("Expected error level, got %s", cfg.Level())
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("log_level: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad, true); err == nil || !strings.Contains(err.Error(), bad) {
		t.Errorf("Expected a parse error naming the file, got %v", err)
	}
}

func TestHistoryPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := Default()
	if p := cfg.HistoryPath(); p != filepath.Join(home, ".rlox_history") {
		t.Errorf("Unexpected history path %q", p)
	}

	cfg.REPL.HistoryFile = "/tmp/history"
	if p := cfg.HistoryPath(); p != "/tmp/history" {
		t.Errorf("Absolute paths are kept, got %q", p)
	}

	cfg.REPL.HistoryFile = ""
	if p := cfg.HistoryPath(); p != "" {
		t.Errorf("Empty history file disables history, got %q", p)
	}

	if p := DefaultPath(); p != filepath.Join(home, ".rlox.yaml") {
		t.Errorf("Unexpected default path %q", p)
	}
}
