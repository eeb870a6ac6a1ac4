// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package chat provides the Bubble Tea model of the operator console screen.

# Layout

	+-------------------------------+--------------------+
	| header: client, secure chat   | Профиль клиента    |
	+-------------------------------+ avatar, contacts   |
	| message thread (viewport)     |                    |
	|                               | Операции | Заметки |
	+-------------------------------+ cards / notes      |
	| templates, chip, input line   |                    |
	+-------------------------------+--------------------+
	| key hints                                          |

The sidebar is dropped on terminals narrower than styles.SidebarMinWidth.

# Focus

Tab and Shift+Tab cycle focus between the composer, the template bar and
the sidebar. Esc always returns to the composer. Global shortcuts (file
picker, template hotkeys, save notes, help, quit) work from any focus.

# Overlays

Ctrl+O opens a bubbles/filepicker restricted to the allowed extensions.
F1 opens a key reference rendered from markdown with glamour.

All domain changes go through console.Console; the model only keeps view
state (focus, active tab, overlay, widget models).
*/
package chat
