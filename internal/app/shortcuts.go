package app

import (
	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/emailwriter/internal/keys"
)

// Shortcut represents a keyboard shortcut with its metadata and handler.
// This is the single source of truth for the main screen's shortcuts.
type Shortcut struct {
	Key         string                              // The key binding (e.g., "ctrl+y")
	Description string                              // Human-readable description
	Handler     func(m *Model) (tea.Model, tea.Cmd) // Action to perform
	Condition   func(m *Model) bool                 // Optional extra condition
}

// ShortcutRegistry lists every shortcut handled while the tone picker is
// closed. Keys that are not listed here go to the focused editor.
var ShortcutRegistry = []Shortcut{
	{
		Key:         keys.CtrlEnter,
		Description: "Generate reply",
		Handler:     shortcutGenerate,
	},
	{
		Key:         keys.CtrlG,
		Description: "Generate reply",
		Handler:     shortcutGenerate,
	},
	{
		Key:         keys.CtrlT,
		Description: "Choose tone",
		Handler:     shortcutOpenTonePicker,
	},
	{
		Key:         keys.Tab,
		Description: "Switch between email and reply",
		Handler:     shortcutToggleFocus,
		Condition:   (*Model).canSwitchFocus,
	},
	{
		Key:         keys.ShiftTab,
		Description: "Switch between email and reply",
		Handler:     shortcutToggleFocus,
		Condition:   (*Model).canSwitchFocus,
	},
	{
		Key:         keys.CtrlY,
		Description: "Copy reply to clipboard",
		Handler:     shortcutCopy,
		Condition:   hasOutput,
	},
	{
		Key:         keys.CtrlS,
		Description: "Download reply",
		Handler:     shortcutDownload,
		Condition:   hasOutput,
	},
	{
		Key:         keys.CtrlR,
		Description: "Start over",
		Handler:     shortcutReset,
	},
	{
		Key:         keys.CtrlC,
		Description: "Quit",
		Handler:     shortcutQuit,
	},
}

func hasOutput(m *Model) bool {
	return m.session.OutputVisible()
}

// lookupShortcut returns the enabled shortcut bound to key
func (m *Model) lookupShortcut(key string) (Shortcut, bool) {
	for _, s := range ShortcutRegistry {
		if s.Key != key {
			continue
		}
		if s.Condition != nil && !s.Condition(m) {
			return Shortcut{}, false
		}
		return s, true
	}
	return Shortcut{}, false
}

func shortcutGenerate(m *Model) (tea.Model, tea.Cmd) {
	return m, m.startGeneration()
}

func shortcutOpenTonePicker(m *Model) (tea.Model, tea.Cmd) {
	m.openTonePicker()
	return m, nil
}

func shortcutToggleFocus(m *Model) (tea.Model, tea.Cmd) {
	if m.focus == FocusCompose {
		m.setFocus(FocusReply)
	} else {
		m.setFocus(FocusCompose)
	}
	return m, nil
}

func shortcutCopy(m *Model) (tea.Model, tea.Cmd) {
	return m, m.copyDraft()
}

func shortcutDownload(m *Model) (tea.Model, tea.Cmd) {
	return m, m.downloadDraft()
}

func shortcutReset(m *Model) (tea.Model, tea.Cmd) {
	m.resetSession()
	return m, nil
}

func shortcutQuit(m *Model) (tea.Model, tea.Cmd) {
	m.stopGenerating()
	return m, tea.Quit
}
