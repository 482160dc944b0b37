// Package main provides seam-doctor, a setup verification tool. It loads
// the run configuration, starts the browser driver, acquires one headless
// session of the configured kind, opens a blank page, and tears everything
// down. A zero exit means the environment is ready for test runs.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/seamq/seam/pkg/browser"
	"github.com/seamq/seam/pkg/config"
	"github.com/seamq/seam/pkg/logging"
)

func main() {
	configPath := flag.String("config", "", "path to an optional YAML overrides file")
	browserName := flag.String("browser", "", "backend to verify (chrome, firefox, edge); defaults to the configured one")
	flag.Parse()

	if err := run(*configPath, *browserName); err != nil {
		fmt.Fprintf(os.Stderr, "seam-doctor: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("environment OK")
}

func run(configPath, browserName string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}

	log, logErr := logging.New(cfg)
	if logErr != nil {
		log.Warn("file logging unavailable, using stderr only", zap.Error(logErr))
	}
	defer log.Sync() //nolint:errcheck // stderr sync is best-effort

	name := browserName
	if name == "" {
		name = cfg.Browser
	}
	kind, err := browser.ParseKind(name)
	if err != nil {
		return err
	}

	manager := browser.NewManager(browser.WithLogger(log))
	defer func() {
		if err := manager.Stop(); err != nil {
			log.Warn("driver shutdown failed", zap.Error(err))
		}
	}()

	opts := browser.OptionsFromConfig(cfg)
	opts.Headless = true // verification never needs a window

	session, err := manager.Acquire(kind, opts)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}
	defer manager.Release(session)

	if err := session.Navigate("about:blank"); err != nil {
		return fmt.Errorf("navigation: %w", err)
	}

	log.Info("verification passed",
		zap.String("backend", string(kind)),
		zap.String("session_id", session.ID))
	return nil
}
