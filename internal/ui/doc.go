// Package ui provides the user interface components for the emailwriter TUI.
//
// # Overview
//
// The ui package implements the visual components of emailwriter using the
// Bubble Tea framework and Lipgloss styling library. Components hold view
// state only; the workflow state lives in reply.Session and is pushed into
// the components by the app package.
//
// # Layout System
//
// On wide terminals the layout is organized as follows:
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line)                                     │
//	├──────────────────────────┬──────────────────────────┤
//	│                          │                          │
//	│   Compose                │   Reply                  │
//	│   (1/2 width)            │   (1/2 width)            │
//	│                          │                          │
//	├──────────────────────────┴──────────────────────────┤
//	│ Footer (1 line)                                     │
//	└─────────────────────────────────────────────────────┘
//
// Below StackBelowWidth columns the compose panel sits above the reply
// panel and both take the full width.
//
// # Components
//
// ViewContext: Singleton that manages centralized layout calculations.
//
// Header: Application title plus the selected tone and workflow status,
// on a gradient background.
//
// Footer: Context-aware keyboard shortcuts, replaced by flash messages
// (the notices emitted by the reply workflow) until they expire.
//
// Compose: Email editor with a live character count, the selected tone and
// the generate action, which renders disabled or as a spinner while an
// attempt is pending.
//
// ReplyPanel: Editable draft with character and word counts, a "Copied!"
// indicator and a badge when the draft is the fallback template.
//
// TonePicker: huh select over the tone catalog, shown as an overlay.
//
// # Styles
//
// Styles are derived from the active Theme (theme.go) by buildStyles in
// styles.go; SetTheme regenerates them.
package ui
