// Package config loads the immutable run configuration for the framework.
//
// A Config is constructed once at process start and passed explicitly to
// every component that needs it. There is no global instance; tests that
// need different settings build their own value.
//
// Sources are layered, later wins: built-in defaults, an optional YAML file,
// a .env file in the working directory, then process environment variables.
// An absent override is never an error.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds every recognized option for one test run. Values are fixed
// after Load returns; components receive the struct by value.
type Config struct {
	// Browser selection
	Browser    string `env:"BROWSER" yaml:"browser"`
	Headless   bool   `env:"HEADLESS" yaml:"headless"`
	WindowSize string `env:"WINDOW_SIZE" yaml:"window_size"`

	// Timeouts
	ImplicitWait    Duration `env:"IMPLICIT_WAIT" yaml:"implicit_wait"`
	ExplicitWait    Duration `env:"EXPLICIT_WAIT" yaml:"explicit_wait"`
	PageLoadTimeout Duration `env:"PAGE_LOAD_TIMEOUT" yaml:"page_load_timeout"`

	// Target environment
	BaseURL     string `env:"BASE_URL" yaml:"base_url"`
	Environment string `env:"ENVIRONMENT" yaml:"environment"`

	// Remote grid; empty means local browser processes
	RemoteURL string `env:"REMOTE_URL" yaml:"remote_url"`

	// API testing
	APIBaseURL string   `env:"API_BASE_URL" yaml:"api_base_url"`
	APIKey     string   `env:"API_KEY" yaml:"api_key"`
	APITimeout Duration `env:"API_TIMEOUT" yaml:"api_timeout"`

	// Execution
	ParallelWorkers int `env:"PARALLEL_WORKERS" yaml:"parallel_workers"`
	Reruns          int `env:"RERUNS_ON_FAILURE" yaml:"reruns_on_failure"`

	// Logging
	LogLevel string `env:"LOG_LEVEL" yaml:"log_level"`
	LogFile  string `env:"LOG_FILE" yaml:"log_file"`
}

// Default returns the built-in configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Browser:         "chrome",
		Headless:        false,
		WindowSize:      "1920x1080",
		ImplicitWait:    Duration(10 * time.Second),
		ExplicitWait:    Duration(30 * time.Second),
		PageLoadTimeout: Duration(30 * time.Second),
		BaseURL:         "https://example.com",
		Environment:     "staging",
		APIBaseURL:      "https://api.example.com",
		APITimeout:      Duration(30 * time.Second),
		ParallelWorkers: 4,
		Reruns:          2,
		LogLevel:        "info",
		LogFile:         "logs/seam.log",
	}
}

// Load builds the run configuration. path names an optional YAML overrides
// file; an empty path or a missing file is fine. A .env file in the working
// directory is applied next, then real environment variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	// Missing .env is the common case, not an error.
	_ = godotenv.Load()

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks invariants that would otherwise surface as confusing
// failures deep inside a test run.
func (c Config) Validate() error {
	if _, _, err := parseWindowSize(c.WindowSize); err != nil {
		return &FieldError{Field: "window_size", Reason: err.Error()}
	}
	if c.ExplicitWait <= 0 {
		return &FieldError{Field: "explicit_wait", Reason: "must be positive"}
	}
	if c.PageLoadTimeout <= 0 {
		return &FieldError{Field: "page_load_timeout", Reason: "must be positive"}
	}
	if c.APITimeout <= 0 {
		return &FieldError{Field: "api_timeout", Reason: "must be positive"}
	}
	if c.ParallelWorkers < 1 {
		return &FieldError{Field: "parallel_workers", Reason: "must be at least 1"}
	}
	if c.Reruns < 0 {
		return &FieldError{Field: "reruns_on_failure", Reason: "must not be negative"}
	}
	return nil
}

// WindowWidth returns the width component of WindowSize.
func (c Config) WindowWidth() int {
	w, _, err := parseWindowSize(c.WindowSize)
	if err != nil {
		return 0
	}
	return w
}

// WindowHeight returns the height component of WindowSize.
func (c Config) WindowHeight() int {
	_, h, err := parseWindowSize(c.WindowSize)
	if err != nil {
		return 0
	}
	return h
}

func parseWindowSize(size string) (int, int, error) {
	parts := strings.Split(size, "x")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected WIDTHxHEIGHT, got %q", size)
	}
	w, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || w <= 0 {
		return 0, 0, fmt.Errorf("invalid width in %q", size)
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || h <= 0 {
		return 0, 0, fmt.Errorf("invalid height in %q", size)
	}
	return w, h, nil
}

// FieldError reports a configuration value that failed validation.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid configuration field %s: %s", e.Field, e.Reason)
}
