package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTextLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Format: FormatText, Output: &buf})

	logger.Info("parsed document", "format", "yaml", "bytes", 128)

	out := buf.String()
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "parsed document")
	assert.Contains(t, out, "format=yaml")
	assert.Contains(t, out, "bytes=128")
	assert.NotContains(t, out, "\x1b[", "a plain buffer gets no color codes")
}

func TestNewJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Format: FormatJSON, Output: &buf})

	logger.Info("parsed document", "format", "toml")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "parsed document", record["msg"])
	assert.Equal(t, "toml", record["format"])
	assert.Equal(t, "INFO", record["level"])
}

func TestNewUnknownFormatFallsBackToText(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Format: Format("xml"), Output: &buf})

	logger.Info("hello")
	assert.Contains(t, buf.String(), "hello")
	assert.False(t, json.Valid(buf.Bytes()))
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelWarn, Format: FormatText, Output: &buf})

	logger.Debug("dropped")
	logger.Info("dropped too")
	logger.Warn("kept")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "kept")
}

func TestLevelFromVerbosity(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, LevelFromVerbosity(0))
	assert.Equal(t, slog.LevelInfo, LevelFromVerbosity(-1))
	assert.Equal(t, slog.LevelDebug, LevelFromVerbosity(1))
	assert.Equal(t, slog.LevelDebug-4, LevelFromVerbosity(2))
	assert.Equal(t, slog.LevelDebug-4, LevelFromVerbosity(5))
}

func TestHandlerWithAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, nil)).With("component", "scanner")

	logger.Info("state change", "state", "content")

	out := buf.String()
	assert.Contains(t, out, "component=scanner")
	assert.Contains(t, out, "state=content")
	idx := strings.Index(out, "component=")
	require.GreaterOrEqual(t, idx, 0)
	assert.Less(t, idx, strings.Index(out, "state="),
		"bound attributes print before record attributes")
}

func TestIsTTYOnBuffer(t *testing.T) {
	assert.False(t, IsTTY(&bytes.Buffer{}))
	assert.False(t, SupportsColor(&bytes.Buffer{}))
}
