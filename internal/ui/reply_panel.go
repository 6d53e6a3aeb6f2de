package ui

import (
	"fmt"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/zhubert/emailwriter/internal/reply"
)

// ReplyPanel shows the editable draft and its derived counts.
type ReplyPanel struct {
	width   int
	height  int
	focused bool

	editor textarea.Model

	visible  bool
	fellBack bool
	copied   bool
	metrics  reply.Metrics
}

// NewReplyPanel creates the reply panel
func NewReplyPanel() *ReplyPanel {
	ta := textarea.New()
	ta.CharLimit = 0
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.SetHeight(MinEditorHeight)

	return &ReplyPanel{editor: ta}
}

// SetSize sets the reply panel dimensions
func (r *ReplyPanel) SetSize(width, height int) {
	r.width = width
	r.height = height

	ctx := GetViewContext()
	r.editor.SetWidth(ctx.InnerWidth(width))
	r.editor.SetHeight(ctx.EditorHeight(height, 0))
}

// SetFocused sets the focus state
func (r *ReplyPanel) SetFocused(focused bool) {
	r.focused = focused
	if focused {
		r.editor.Focus()
	} else {
		r.editor.Blur()
	}
}

// IsFocused returns the focus state
func (r *ReplyPanel) IsFocused() bool {
	return r.focused
}

// SetDraft replaces the draft text
func (r *ReplyPanel) SetDraft(text string) {
	r.editor.SetValue(text)
}

// Value returns the (possibly edited) draft
func (r *ReplyPanel) Value() string {
	return r.editor.Value()
}

// SetVisible shows or hides the draft
func (r *ReplyPanel) SetVisible(visible bool) {
	r.visible = visible
}

// SetFallback marks the draft as the fallback template
func (r *ReplyPanel) SetFallback(fellBack bool) {
	r.fellBack = fellBack
}

// SetCopied toggles the "Copied!" indicator
func (r *ReplyPanel) SetCopied(copied bool) {
	r.copied = copied
}

// SetMetrics sets the counts shown under the draft. They are measured on
// the committed draft rather than the editor text.
func (r *ReplyPanel) SetMetrics(m reply.Metrics) {
	r.metrics = m
}

// Update forwards input to the editor when focused and visible
func (r *ReplyPanel) Update(msg tea.Msg) tea.Cmd {
	if !r.focused || !r.visible {
		return nil
	}
	var cmd tea.Cmd
	r.editor, cmd = r.editor.Update(msg)
	return cmd
}

// View renders the reply panel
func (r *ReplyPanel) View() string {
	style := PanelStyle
	if r.focused && r.visible {
		style = PanelFocusedStyle
	}
	style = style.Width(r.width).Height(r.height)

	title := PanelTitleStyle.Render("Generated Reply")

	if !r.visible {
		hint := PanelMetaStyle.Render("Your generated reply will appear here.")
		return style.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", hint))
	}

	if r.fellBack {
		title += " " + FallbackBadgeStyle.Render("(fallback template)")
	}

	status := PanelMetaStyle.Render(fmt.Sprintf("%d characters · %d words", r.metrics.Characters, r.metrics.Words))
	if r.copied {
		status += "  " + CopiedStyle.Render("✓ Copied!")
	}

	return style.Render(lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		r.editor.View(),
		status,
	))
}
