package main

import (
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/teamboard/internal/model"
)

func TestSetupLoggingWritesToFile(t *testing.T) {
	t.Setenv("DEBUG", "")
	path := filepath.Join(t.TempDir(), "logs", "teamboard.log")
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetLevel(log.InfoLevel)
	})

	closeLog, err := setupLogging(model.LogConfig{Level: "warn", File: path})
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("shown")
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "shown")
	assert.NotContains(t, string(data), "hidden")
}

func TestSetupLoggingDebugEnv(t *testing.T) {
	t.Setenv("DEBUG", "true")
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetLevel(log.InfoLevel)
	})

	closeLog, err := setupLogging(model.LogConfig{Level: "error"})
	require.NoError(t, err)
	defer closeLog()
	assert.Equal(t, log.DebugLevel, log.GetLevel())
}

func TestSetupLoggingRejectsBadLevel(t *testing.T) {
	_, err := setupLogging(model.LogConfig{Level: "loud"})
	assert.Error(t, err)
}
