// Package keys provides string constants for Bubble Tea v2 key press events.
//
// These constants are derived from tea.KeyPressMsg{Code: tea.KeyXxx}.String()
// and are guaranteed to match the actual runtime values. Using these constants
// instead of hardcoded strings prevents typo bugs (e.g., "escape" vs "esc").
//
// Single-character keys like "a", "y", "?" are not included here because they
// are unambiguous and cannot be misspelled in a meaningful way.
package keys

import tea "charm.land/bubbletea/v2"

// Action keys
var (
	Enter    = tea.KeyPressMsg{Code: tea.KeyEnter}.String()                    // "enter"
	Tab      = tea.KeyPressMsg{Code: tea.KeyTab}.String()                      // "tab"
	ShiftTab = (tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}).String() // "shift+tab"
	Escape   = tea.KeyPressMsg{Code: tea.KeyEscape}.String()                   // "esc"
)

// Ctrl combinations
var (
	CtrlC     = (tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}).String()           // "ctrl+c"
	CtrlEnter = (tea.KeyPressMsg{Code: tea.KeyEnter, Mod: tea.ModCtrl}).String() // "ctrl+enter"
	CtrlG     = (tea.KeyPressMsg{Code: 'g', Mod: tea.ModCtrl}).String()           // "ctrl+g"
	CtrlT     = (tea.KeyPressMsg{Code: 't', Mod: tea.ModCtrl}).String()           // "ctrl+t"
	CtrlY     = (tea.KeyPressMsg{Code: 'y', Mod: tea.ModCtrl}).String()           // "ctrl+y"
	CtrlS     = (tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}).String()           // "ctrl+s"
	CtrlR     = (tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl}).String()           // "ctrl+r"
	CtrlSlash = (tea.KeyPressMsg{Code: '/', Mod: tea.ModCtrl}).String()           // "ctrl+/"
)
