// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"os"

	"golang.org/x/term"
)

// ErrNotTerminal is returned when the console is started without a TTY.
var ErrNotTerminal = errors.New("supportdesk needs an interactive terminal (stdout is not a TTY)")

// IsTTY returns true if stdin is a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// IsStdoutTTY returns true if stdout is a terminal.
func IsStdoutTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// isInteractive is swapped out in tests.
var isInteractive = func() bool {
	return IsTTY() && IsStdoutTTY()
}
