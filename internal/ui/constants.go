// Package ui provides constants for layout calculations and configuration.
package ui

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// ComposeWidthRatio is the denominator for the compose panel width (1/2 of total width)
	ComposeWidthRatio = 2

	// StackBelowWidth is the terminal width under which the panels are stacked
	// vertically instead of side by side
	StackBelowWidth = 90

	// MinTerminalWidth and MinTerminalHeight clamp layout math on tiny terminals
	MinTerminalWidth  = 40
	MinTerminalHeight = 12

	// InputPaddingWidth is the horizontal padding inside a panel (Padding(0, 1) = 1 left + 1 right)
	InputPaddingWidth = 2

	// PanelChromeHeight is the number of non-editor lines inside a panel:
	// title, blank line, and the status line under the editor
	PanelChromeHeight = 3

	// ComposeExtraHeight is the tone and action lines under the email editor
	ComposeExtraHeight = 2

	// MinEditorHeight is the smallest textarea height we render
	MinEditorHeight = 3

	// DefaultWrapWidth is the default width for text wrapping when the terminal width is unknown
	DefaultWrapWidth = 80
)

// Tone picker dimensions
const (
	// PickerWidth is the width of the tone picker overlay
	PickerWidth = 56
)
