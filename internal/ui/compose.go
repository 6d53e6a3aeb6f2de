package ui

import (
	"fmt"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/zhubert/emailwriter/internal/reply"
)

// Compose is the input panel: the original email, the selected tone and
// the generate action.
type Compose struct {
	width   int
	height  int
	focused bool

	editor  textarea.Model
	spinner spinner.Model

	toneLabel string
	canSubmit bool
	pending   bool
}

// NewCompose creates the compose panel
func NewCompose() *Compose {
	ta := textarea.New()
	ta.Placeholder = "Paste the email you want to reply to..."
	ta.CharLimit = 0
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.SetHeight(MinEditorHeight)

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(SpinnerStyle),
	)

	return &Compose{
		editor:  ta,
		spinner: sp,
	}
}

// SetSize sets the compose panel dimensions
func (c *Compose) SetSize(width, height int) {
	c.width = width
	c.height = height

	ctx := GetViewContext()
	c.editor.SetWidth(ctx.InnerWidth(width))
	c.editor.SetHeight(ctx.EditorHeight(height, ComposeExtraHeight))
}

// SetFocused sets the focus state
func (c *Compose) SetFocused(focused bool) {
	c.focused = focused
	if focused {
		c.editor.Focus()
	} else {
		c.editor.Blur()
	}
}

// IsFocused returns the focus state
func (c *Compose) IsFocused() bool {
	return c.focused
}

// Value returns the email text
func (c *Compose) Value() string {
	return c.editor.Value()
}

// SetValue replaces the email text
func (c *Compose) SetValue(text string) {
	c.editor.SetValue(text)
}

// SetTone sets the tone label shown under the editor ("" when unselected)
func (c *Compose) SetTone(label string) {
	c.toneLabel = label
}

// SetSubmitState updates how the generate action renders
func (c *Compose) SetSubmitState(canSubmit, pending bool) {
	c.canSubmit = canSubmit
	c.pending = pending
}

// Pending reports whether the loading indicator is shown
func (c *Compose) Pending() bool {
	return c.pending
}

// SpinnerTick starts the loading indicator animation
func (c *Compose) SpinnerTick() tea.Cmd {
	return c.spinner.Tick
}

// UpdateSpinner advances the loading indicator. Ticks stop once the
// attempt is no longer pending.
func (c *Compose) UpdateSpinner(msg spinner.TickMsg) tea.Cmd {
	if !c.pending {
		return nil
	}
	var cmd tea.Cmd
	c.spinner, cmd = c.spinner.Update(msg)
	return cmd
}

// Update forwards input to the editor when focused
func (c *Compose) Update(msg tea.Msg) tea.Cmd {
	if !c.focused {
		return nil
	}
	var cmd tea.Cmd
	c.editor, cmd = c.editor.Update(msg)
	return cmd
}

// View renders the compose panel
func (c *Compose) View() string {
	title := PanelTitleStyle.Render("Original Email")

	count := PanelMetaStyle.Render(fmt.Sprintf("%d characters", reply.CharacterCount(c.editor.Value())))

	toneLine := "Tone: "
	if c.toneLabel != "" {
		toneLine += ToneSelectedStyle.Render(c.toneLabel)
	} else {
		toneLine += ToneUnsetStyle.Render("not selected (ctrl+t)")
	}

	var action string
	switch {
	case c.pending:
		action = c.spinner.View() + " " + StatusLoadingStyle.Render("Generating Reply...")
	case c.canSubmit:
		action = ButtonStyle.Render("Generate Reply")
	default:
		action = ButtonDisabledStyle.Render("Generate Reply")
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		c.editor.View(),
		count,
		toneLine,
		action,
	)

	style := PanelStyle
	if c.focused {
		style = PanelFocusedStyle
	}
	return style.Width(c.width).Height(c.height).Render(content)
}
