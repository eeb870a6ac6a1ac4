// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared by the supportdesk packages.
//
// String helpers are display-width aware so Cyrillic and CJK text lines up
// in the terminal panes:
//   - FirstRunes: the first N characters
//   - FitWidth: cut to N terminal columns with an ellipsis
//   - PadRight: pad to N terminal columns
//
// AtomicWriteFile writes a file through a temp file + rename so a crash never
// leaves a half-written config behind.
package util
