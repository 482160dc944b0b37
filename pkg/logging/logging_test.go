package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seamq/seam/pkg/config"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	cfg := config.Default()
	cfg.LogFile = filepath.Join(t.TempDir(), "logs", "seam.log")
	cfg.LogLevel = "debug"

	log, err := New(cfg)
	require.NoError(t, err)

	log.Info("session started")
	_ = log.Sync()

	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)

	line := strings.SplitN(strings.TrimSpace(string(data)), "\n", 2)[0]
	var record map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(line), &record))

	assert.Equal(t, "session started", record["msg"])
	assert.Equal(t, RunID(), record["run_id"])
	assert.NotEmpty(t, record["ts"])
}

func TestNew_UnwritableFileFallsBackToStderr(t *testing.T) {
	cfg := config.Default()
	cfg.LogFile = filepath.Join(t.TempDir(), "occupied")
	// Make the parent path a file so MkdirAll fails underneath it.
	require.NoError(t, os.WriteFile(cfg.LogFile, []byte("x"), 0o600))
	cfg.LogFile = filepath.Join(cfg.LogFile, "seam.log")

	log, err := New(cfg)
	assert.Error(t, err)
	require.NotNil(t, log)
	// Usable despite the error.
	log.Info("still logging")
}

func TestNew_UnknownLevelDefaultsToInfo(t *testing.T) {
	cfg := config.Default()
	cfg.LogFile = filepath.Join(t.TempDir(), "seam.log")
	cfg.LogLevel = "chatty"

	log, err := New(cfg)
	require.NoError(t, err)

	log.Debug("suppressed")
	log.Info("kept")
	_ = log.Sync()

	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "suppressed")
	assert.Contains(t, string(data), "kept")
}

func TestRunID_Stable(t *testing.T) {
	assert.Equal(t, RunID(), RunID())
	assert.NotEmpty(t, RunID())
}
