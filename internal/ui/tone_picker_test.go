package ui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/emailwriter/internal/tone"
)

func TestTonePicker_View_ListsCatalog(t *testing.T) {
	p := NewTonePicker("")

	view := stripANSI(p.View())
	for _, opt := range tone.Options() {
		if !strings.Contains(view, opt.Label) {
			t.Errorf("picker should list %q, got:\n%s", opt.Label, view)
		}
	}
}

func TestTonePicker_Preselected(t *testing.T) {
	p := NewTonePicker(tone.Apologetic)

	got, ok := p.Selected()
	if !ok || got != tone.Apologetic {
		t.Errorf("Selected() = %q, %v; want apologetic", got, ok)
	}

	opt, _ := tone.Lookup(tone.Apologetic)
	if !strings.Contains(stripANSI(p.View()), opt.Description) {
		t.Error("picker should describe the highlighted tone")
	}
}

func TestTonePicker_EnterAndEscapeNotConsumed(t *testing.T) {
	p := NewTonePicker(tone.Formal)

	for _, key := range []tea.KeyPressMsg{
		{Code: tea.KeyEnter},
		{Code: tea.KeyEscape},
	} {
		if cmd := p.Update(key); cmd != nil {
			t.Errorf("%s should be left to the caller, got a command", key.String())
		}
	}

	if got, _ := p.Selected(); got != tone.Formal {
		t.Errorf("Selected() = %q after enter/esc, want formal", got)
	}
}
