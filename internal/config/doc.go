// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for supportdesk.
//
// Supports TOML and JSON configuration files, with defaults, environment
// variable overrides, and validation.
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (SUPPORTDESK_*)
//   - ~/.supportdesk/config.toml
//   - ~/.supportdesk/config.json
//   - Built-in defaults
//
// SUPPORTDESK_HOME replaces ~/.supportdesk as the configuration directory.
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    fmt.Fprintln(os.Stderr, err)
//	}
//	exts := cfg.Attach.AllowedExtensions
package config
