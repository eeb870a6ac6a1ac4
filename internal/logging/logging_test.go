// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/jeranaias/supportdesk-tui/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zapcore.Level
		wantErr bool
	}{
		{"", zapcore.InfoLevel, false},
		{"debug", zapcore.DebugLevel, false},
		{"WARN", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"loud", zapcore.InfoLevel, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_DisabledIsNop(t *testing.T) {
	logger, err := New(config.LogConfig{Enabled: false}, Options{})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.ErrorLevel))
}

func TestNew_WritesJSONWithSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "desk.log")

	logger, err := New(config.LogConfig{Enabled: true, Level: "info", Path: path}, Options{SessionID: "abc-123"})
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Info("message sent")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "message sent", entry["msg"])
	assert.Equal(t, "abc-123", entry["session"])
}

func TestNew_FlagPathEnablesLogging(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flag.log")

	logger, err := New(config.LogConfig{Enabled: false}, Options{Path: path, Verbose: true})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
	logger.Debug("verbose")
	_ = logger.Sync()

	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestResolvePath_DefaultsUnderConfigDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SUPPORTDESK_HOME", dir)

	path, err := ResolvePath(config.LogConfig{}, Options{})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "supportdesk.log"), path)
}
