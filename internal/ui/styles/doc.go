// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the supportdesk console.

All colors use Lip Gloss AdaptiveColor so the same palette works on dark and
light terminals.

# Color System (colors.go)

  - Primary - employee bubbles, focused panes, the send marker
  - Accent  - the secure chat shield and lock markers
  - Success - completed operations, incoming money
  - Warning - operations still in processing
  - Danger  - outgoing money, picker errors

Surface and text tokens layer the panes: Surface, SurfaceDim, Overlay for
backgrounds and borders; TextPrimary, TextSecondary, TextMuted for copy.

# Theme (theme.go)

Theme bundles every lipgloss.Style the components use. NewTheme takes the
configured mode:

	theme := styles.NewTheme("auto")  // ask the terminal
	theme := styles.NewTheme("light") // force the light palette

Forcing a mode calls lipgloss.SetHasDarkBackground, which switches every
AdaptiveColor at once.
*/
package styles
