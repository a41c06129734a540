// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package server

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.input))
		})
	}
}

func TestNewLogHandler_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newLogHandler(&buf, slog.LevelInfo, "json"))

	logger.Info("request", "locale", "fr")
	logger.Debug("hidden")

	assert.JSONEq(t, `{"level":"INFO","msg":"request","locale":"fr"}`, removeTime(t, buf.Bytes()))
}

func TestNewLogHandler_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newLogHandler(&buf, slog.LevelWarn, "text"))

	logger.Info("hidden")
	logger.Warn("missing translations", "locale", "he")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "missing translations")
	assert.Contains(t, buf.String(), "he")
}

func removeTime(t *testing.T, line []byte) string {
	t.Helper()
	var m map[string]any
	assert.NoError(t, json.Unmarshal(line, &m))
	delete(m, "time")
	out, err := json.Marshal(m)
	assert.NoError(t, err)
	return string(out)
}
