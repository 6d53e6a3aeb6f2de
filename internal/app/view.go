package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/zhubert/emailwriter/internal/ui"
)

// updateSizes recalculates and applies dimensions to all UI components
func (m *Model) updateSizes() {
	ctx := ui.GetViewContext()
	ctx.UpdateTerminalSize(m.width, m.height)

	m.header.SetWidth(ctx.TerminalWidth)
	m.footer.SetWidth(ctx.TerminalWidth)
	m.compose.SetSize(ctx.ComposeWidth, ctx.ComposeHeight)
	m.replyPanel.SetSize(ctx.ReplyWidth, ctx.ReplyHeight)
}

// View renders the app
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true

	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current view as a string.
// This is useful for testing.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := m.header.View()
	footer := m.footer.View()

	composeView := m.compose.View()
	replyView := m.replyPanel.View()

	var panels string
	if ui.GetViewContext().Stacked {
		panels = lipgloss.JoinVertical(lipgloss.Left, composeView, replyView)
	} else {
		panels = lipgloss.JoinHorizontal(lipgloss.Top, composeView, replyView)
	}

	view := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		panels,
		footer,
	)

	// Overlay the tone picker if open
	if m.picker != nil {
		return lipgloss.Place(
			m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			m.picker.View(),
		)
	}

	return view
}
