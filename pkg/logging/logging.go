// Package logging builds the framework's structured logger.
//
// Records are JSON-encoded and written to the configured log file and to
// stderr. Every record carries a run ID so interleaved parallel test
// processes can be told apart in a shared log directory.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/seamq/seam/pkg/config"
)

var (
	runID     string
	runIDOnce sync.Once
)

// RunID returns the process-wide run identifier, generated once.
func RunID() string {
	runIDOnce.Do(func() {
		runID = uuid.NewString()
	})
	return runID
}

// New builds the run logger from configuration. If the log file cannot be
// created the returned logger writes to stderr only and the error explains
// why; callers can log a warning and keep going.
func New(cfg config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	stderrCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(os.Stderr),
		level,
	)

	fields := zap.Fields(zap.String("run_id", RunID()))

	file, fileErr := openLogFile(cfg.LogFile)
	if fileErr != nil {
		return zap.New(stderrCore, fields), fileErr
	}

	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(file),
		level,
	)

	return zap.New(zapcore.NewTee(fileCore, stderrCore), fields), nil
}

func openLogFile(path string) (*os.File, error) {
	if path == "" {
		return nil, fmt.Errorf("no log file configured")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	// Append so parallel workers sharing a file do not clobber each other.
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}
