// Package config loads rlox settings from a YAML file.
//
// A config file looks like:
//
//	log_level: debug
//	color: false
//	repl:
//	  prompt: "> "
//	  continuation_prompt: ". "
//	  history_file: ~/.rlox_history
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const fileName = ".rlox.yaml"

// Config holds the settings of the rlox command
type Config struct {
	LogLevel string `yaml:"log_level"`
	Color    bool   `yaml:"color"`
	REPL     REPL   `yaml:"repl"`
}

// REPL holds the interactive prompt settings
type REPL struct {
	Prompt             string `yaml:"prompt"`
	ContinuationPrompt string `yaml:"continuation_prompt"`
	HistoryFile        string `yaml:"history_file"`
}

// ValidationError aggregates config validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "config: invalid configuration"
	}
	return "config validation failed: " + strings.Join(e.Issues, "; ")
}

// Default returns the settings used when no config file exists
func Default() *Config {
	return &Config{
		LogLevel: "warn",
		Color:    true,
		REPL: REPL{
			Prompt:             "> ",
			ContinuationPrompt: ". ",
			HistoryFile:        "~/.rlox_history",
		},
	}
}

// DefaultPath is $HOME/.rlox.yaml, or "" when the home directory is unknown
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, fileName)
}

// Load reads the config file at path. When optional is set a missing file
// yields the defaults instead of an error.
func Load(path string, optional bool) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a config over the defaults and validates it. Unknown keys
// are rejected.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field and reports all problems at once
func (c *Config) Validate() error {
	var issues []string
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		issues = append(issues, fmt.Sprintf("log_level: %v", err))
	}
	if c.REPL.Prompt == "" {
		issues = append(issues, "repl.prompt must not be empty")
	}
	if c.REPL.ContinuationPrompt == "" {
		issues = append(issues, "repl.continuation_prompt must not be empty")
	}
	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

// Level is the parsed log level, Validate guarantees it parses
func (c *Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.WarnLevel
	}
	return level
}

// HistoryPath expands a leading "~/" of the history file. An empty
// history file disables history.
func (c *Config) HistoryPath() string {
	path := c.REPL.HistoryFile
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, path[2:])
}
