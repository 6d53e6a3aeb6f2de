package ui

import "charm.land/lipgloss/v2"

// Color palette - Purple + Cyan/Teal theme
var (
	ColorPrimary     = lipgloss.Color("#7C3AED") // Purple
	ColorSecondary   = lipgloss.Color("#06B6D4") // Cyan
	ColorMuted       = lipgloss.Color("#6B7280") // Gray
	ColorBorder      = lipgloss.Color("#374151") // Dark gray
	ColorBorderFocus = lipgloss.Color("#7C3AED") // Purple when focused
	ColorBg          = lipgloss.Color("#1F2937") // Dark background
	ColorText        = lipgloss.Color("#F9FAFB") // Light text
	ColorTextMuted   = lipgloss.Color("#B0B8C4") // Muted text
	ColorTextInverse = lipgloss.Color("#1F2937") // Dark text for light backgrounds
	ColorWarning     = lipgloss.Color("#F59E0B") // Amber for fallback drafts
	ColorInfo        = lipgloss.Color("#06B6D4") // Cyan for info
	ColorError       = lipgloss.Color("#EF4444") // Red for errors
	ColorSuccess     = lipgloss.Color("#10B981") // Green for success
)

// Header styles
var (
	HeaderStyle      lipgloss.Style
	HeaderTitleStyle lipgloss.Style
)

// Footer styles
var (
	FooterStyle     lipgloss.Style
	FooterKeyStyle  lipgloss.Style
	FooterDescStyle lipgloss.Style
)

// Panel styles
var (
	PanelStyle        lipgloss.Style
	PanelFocusedStyle lipgloss.Style
	PanelTitleStyle   lipgloss.Style
	PanelMetaStyle    lipgloss.Style
)

// Action and status styles
var (
	ButtonStyle         lipgloss.Style
	ButtonDisabledStyle lipgloss.Style
	ToneSelectedStyle   lipgloss.Style
	ToneUnsetStyle      lipgloss.Style
	CopiedStyle         lipgloss.Style
	FallbackBadgeStyle  lipgloss.Style
	StatusLoadingStyle  lipgloss.Style
	StatusErrorStyle    lipgloss.Style
	SpinnerStyle        lipgloss.Style
)

// Picker styles
var (
	PickerStyle      lipgloss.Style
	PickerTitleStyle lipgloss.Style
	PickerHelpStyle  lipgloss.Style
)

func init() {
	buildStyles()
}

// buildStyles derives every style from the current color variables.
func buildStyles() {
	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Background(ColorPrimary).
		Padding(0, 1)

	HeaderTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)

	PanelFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus).
		Padding(0, 1)

	PanelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary)

	PanelMetaStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	ButtonStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorTextInverse).
		Background(ColorPrimary).
		Padding(0, 2)

	ButtonDisabledStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Background(ColorBorder).
		Padding(0, 2)

	ToneSelectedStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	ToneUnsetStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)

	CopiedStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSuccess)

	FallbackBadgeStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorWarning)

	StatusLoadingStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Italic(true)

	StatusErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)

	SpinnerStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary)

	PickerStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2).
		Width(PickerWidth)

	PickerTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)

	PickerHelpStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		MarginTop(1)
}
