package logging_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/slicegen/slicegen/internal/adapters/outbound/logging"
	"github.com/slicegen/slicegen/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONToStderr(t *testing.T) {
	var buf bytes.Buffer
	log, closer := logging.New(domain.LogConfig{Level: "info", Format: "json"}, &buf)
	defer closer.Close()

	log.Info("slice generated", "entity", "Article")
	log.Debug("hidden")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "slice generated", rec["msg"])
	assert.Equal(t, "Article", rec["entity"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNew_TextDebug(t *testing.T) {
	var buf bytes.Buffer
	log, closer := logging.New(domain.LogConfig{Level: "DEBUG", Format: "text"}, &buf)
	defer closer.Close()

	log.Debug("schema line skipped")
	assert.Contains(t, buf.String(), "schema line skipped")
	assert.Contains(t, buf.String(), "level=DEBUG")
}

func TestNew_UnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log, _ := logging.New(domain.LogConfig{Level: "verbose"}, &buf)

	log.Debug("hidden")
	log.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_RotatingFile(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "slicegen.log")
	log, closer := logging.New(domain.LogConfig{Format: "json", File: path, MaxSizeMB: 1, MaxBackups: 1}, &buf)

	log.Info("to file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
	assert.Empty(t, buf.String())
}
