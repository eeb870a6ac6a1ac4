// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides the supportdesk command tree.
//
// The root command starts the operator console. Subcommands:
//
//	supportdesk                    start the console
//	supportdesk version            print build information
//	supportdesk config path        print the config file location
//	supportdesk config show        print the effective configuration
//	supportdesk config init        write a default config file
//
// Global flags:
//
//	--config PATH     use this config file instead of ~/.supportdesk/config.toml
//	--seed PATH       load the conversation fixture from a TOML file
//	--log-file PATH   write the log here ("off" in config disables logging)
//	--verbose         debug-level logging
//	--no-alt-screen   render inline instead of the alternate screen
package cli
