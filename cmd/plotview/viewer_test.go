package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartupFailureReachesLogFile(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "logs", "plotview.txt")
	cfgPath := filepath.Join(dir, "plotview.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log:\n  format: json\n  file: "+logFile+"\n"), 0644))

	err := runViewer(context.Background(), cfgPath, filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	var logged loggedError
	assert.True(t, errors.As(err, &logged))
	assert.ErrorIs(t, err, os.ErrNotExist)

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "plotview failed")
	assert.Contains(t, string(data), "missing.json")
}

func TestConfigErrorIsNotLogged(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "plotview.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("fps: [\n"), 0644))

	err := runViewer(context.Background(), cfgPath, filepath.Join(dir, "plot.json"))
	require.Error(t, err)
	var logged loggedError
	assert.False(t, errors.As(err, &logged))
}
