package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

// appTitle is rendered at the left edge of the header.
const appTitle = " emailwriter"

// Header represents the top header bar
type Header struct {
	width  int
	tone   string
	status string
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetTone sets the selected tone label to display
func (h *Header) SetTone(label string) {
	h.tone = label
}

// SetStatus sets the workflow status shown muted next to the tone
func (h *Header) SetStatus(status string) {
	h.status = status
}

// View renders the header
func (h *Header) View() string {
	var rightText string
	if h.tone != "" {
		rightText = h.tone
	}
	if h.status != "" {
		if rightText != "" {
			rightText += " "
		}
		rightText += "(" + h.status + ")"
	}
	if rightText != "" {
		rightText += " "
	}

	// Pad by display width so wide runes keep the bar flush
	paddingLen := h.width - runewidth.StringWidth(appTitle) - runewidth.StringWidth(rightText)
	if paddingLen < 0 {
		paddingLen = 0
	}

	fullContent := appTitle + strings.Repeat(" ", paddingLen) + rightText

	return h.renderGradient(fullContent, h.status)
}

// parseHexColor parses a hex color string (e.g., "#7C3AED") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders the content with a theme-aware gradient background.
// The parenthesized status portion is muted.
func (h *Header) renderGradient(content string, status string) string {
	if len(content) == 0 {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	// End color: fade to the main background
	endR, endG, endB := parseHexColor(theme.Bg)

	textColor := lipgloss.Color(theme.Text)
	mutedColor := lipgloss.Color(theme.TextMuted)

	runes := []rune(content)

	statusStart := -1
	if status != "" {
		if idx := strings.LastIndex(content, "("+status+")"); idx >= 0 {
			statusStart = len([]rune(content[:idx]))
		}
	}

	titleLen := len([]rune(appTitle))
	width := len(runes)
	var result strings.Builder

	for i, r := range runes {
		t := float64(i) / float64(width)

		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		bgColor := lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))

		style := lipgloss.NewStyle().
			Background(bgColor).
			Bold(i < titleLen)

		if statusStart >= 0 && i >= statusStart {
			style = style.Foreground(mutedColor)
		} else {
			style = style.Foreground(textColor)
		}

		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
