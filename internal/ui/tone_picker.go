package ui

import (
	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/zhubert/emailwriter/internal/keys"
	"github.com/zhubert/emailwriter/internal/tone"
)

// TonePicker is the overlay used to choose a reply tone.
type TonePicker struct {
	form  *huh.Form
	value string
}

// NewTonePicker builds a picker over the tone catalog with current
// preselected.
func NewTonePicker(current tone.Tone) *TonePicker {
	p := &TonePicker{value: string(current)}

	catalog := tone.Options()
	options := make([]huh.Option[string], len(catalog))
	for i, opt := range catalog {
		options[i] = huh.NewOption(opt.Label, string(opt.Value))
	}

	p.form = huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Reply tone").
			Description("How should the reply sound?").
			Options(options...).
			Height(len(options)+2).
			Value(&p.value),
	)).
		WithTheme(PickerTheme()).
		WithShowHelp(false).
		WithWidth(PickerWidth - 6)

	initHuhForm(p.form)
	return p
}

// Selected returns the highlighted tone.
func (p *TonePicker) Selected() (tone.Tone, bool) {
	t := tone.Tone(p.value)
	return t, t.Valid()
}

// Update forwards a message to the form. Enter and Escape are left to the
// caller.
func (p *TonePicker) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.form, cmd = huhFormUpdate(p.form, msg)
	return cmd
}

// View renders the picker box, including the description of the
// highlighted tone.
func (p *TonePicker) View() string {
	title := PickerTitleStyle.Render("Select a tone")
	parts := []string{title, p.form.View()}
	if opt, ok := tone.Lookup(tone.Tone(p.value)); ok {
		parts = append(parts, PanelMetaStyle.Render(opt.Description))
	}
	parts = append(parts, PickerHelpStyle.Render("↑/↓: choose  Enter: select  Esc: cancel"))
	return PickerStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// initHuhForm initializes a huh form eagerly so it renders correctly
// immediately.
func initHuhForm(form *huh.Form) {
	form.Init()
}

// huhFormUpdate intercepts Enter and Escape (handled by the app layer) and
// delegates everything else to the huh form.
func huhFormUpdate(form *huh.Form, msg tea.Msg) (*huh.Form, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.Enter, keys.Escape:
			return form, nil
		}
	}

	m, cmd := form.Update(msg)
	if f, ok := m.(*huh.Form); ok {
		form = f
	}
	return form, cmd
}

// PickerTheme returns a huh theme that matches the current color palette.
// This is called each time a huh form is created to pick up the current theme colors.
func PickerTheme() huh.Theme {
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)

		// Focused field: left border indicator
		t.Focused.Base = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(ColorPrimary)
		t.Focused.Card = t.Focused.Base
		t.Focused.Title = lipgloss.NewStyle().Foreground(ColorText).Bold(true)
		t.Focused.Description = lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true)

		// Select styles
		t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(ColorPrimary).SetString("> ")
		t.Focused.Option = lipgloss.NewStyle().Foreground(ColorText)
		t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(ColorSecondary)

		t.Blurred = t.Focused
		t.Blurred.Base = lipgloss.NewStyle().PaddingLeft(2)
		t.Blurred.Card = t.Blurred.Base

		t.FieldSeparator = lipgloss.NewStyle().SetString("\n")
		t.Help = help.New().Styles

		return t
	})
}
