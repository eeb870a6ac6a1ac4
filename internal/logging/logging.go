// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging builds the structured logger used by supportdesk.
//
// The terminal belongs to the UI, so the logger writes JSON lines to a file
// and never to stdout or stderr. A disabled log yields zap.NewNop().
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jeranaias/supportdesk-tui/internal/config"
)

// Options tweak logger construction beyond the config file.
type Options struct {
	// Path overrides cfg.Path when non-empty (the --log-file flag).
	Path string
	// Verbose forces debug level.
	Verbose bool
	// SessionID tags every entry. A random UUID is used when empty.
	SessionID string
}

// ParseLevel maps a config level name onto a zap level.
// Empty means info.
func ParseLevel(name string) (zapcore.Level, error) {
	if strings.TrimSpace(name) == "" {
		return zapcore.InfoLevel, nil
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(name))); err != nil {
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q: %w", name, err)
	}
	return lvl, nil
}

// ResolvePath returns the file the logger will write to.
func ResolvePath(cfg config.LogConfig, opts Options) (string, error) {
	if opts.Path != "" {
		return opts.Path, nil
	}
	if cfg.Path != "" {
		return cfg.Path, nil
	}
	return config.DefaultLogPath()
}

// New builds a production JSON logger writing to the configured file.
// Every entry carries a "session" field so one run can be grepped out of a
// shared log.
func New(cfg config.LogConfig, opts Options) (*zap.Logger, error) {
	if !cfg.Enabled && opts.Path == "" {
		return zap.NewNop(), nil
	}

	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	if opts.Verbose {
		level = zapcore.DebugLevel
	}

	path, err := ResolvePath(cfg, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve log path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.OutputPaths = []string{path}
	zcfg.ErrorOutputPaths = []string{path}
	zcfg.EncoderConfig.TimeKey = "ts"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zcfg.Sampling = nil

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	sessionID := opts.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	return logger.With(zap.String("session", sessionID)), nil
}
