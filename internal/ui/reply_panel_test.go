package ui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/emailwriter/internal/reply"
)

func newSizedReplyPanel() *ReplyPanel {
	r := NewReplyPanel()
	r.SetSize(60, 20)
	return r
}

func TestReplyPanel_Hidden(t *testing.T) {
	r := newSizedReplyPanel()
	r.SetDraft("should not show")

	view := stripANSI(r.View())
	if !strings.Contains(view, "will appear here") {
		t.Errorf("hidden panel should show a placeholder, got:\n%s", view)
	}
	if strings.Contains(view, "should not show") {
		t.Error("hidden panel must not render the draft")
	}
}

func TestReplyPanel_Counts(t *testing.T) {
	r := newSizedReplyPanel()
	r.SetVisible(true)
	r.SetDraft("Sure! Attaching the report now.")
	r.SetMetrics(reply.Measure("Sure! Attaching the report now."))

	view := stripANSI(r.View())
	if !strings.Contains(view, "31 characters · 5 words") {
		t.Errorf("visible panel should show counts, got:\n%s", view)
	}
}

func TestReplyPanel_CopiedAndFallback(t *testing.T) {
	r := newSizedReplyPanel()
	r.SetVisible(true)
	r.SetDraft("Dear [Recipient],")

	view := stripANSI(r.View())
	if strings.Contains(view, "Copied!") || strings.Contains(view, "fallback") {
		t.Error("indicators should be off by default")
	}

	r.SetCopied(true)
	r.SetFallback(true)
	view = stripANSI(r.View())
	if !strings.Contains(view, "Copied!") {
		t.Error("copied indicator should show")
	}
	if !strings.Contains(view, "fallback template") {
		t.Error("fallback badge should show")
	}
}

func TestReplyPanel_EditsOnlyWhenVisibleAndFocused(t *testing.T) {
	r := newSizedReplyPanel()
	r.SetFocused(true)

	r.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	if r.Value() != "" {
		t.Error("hidden panel should ignore keys")
	}

	r.SetVisible(true)
	r.SetDraft("Thanks")
	r.Update(tea.KeyPressMsg{Code: '!', Text: "!"})
	if r.Value() != "Thanks!" {
		t.Errorf("Value() = %q, want edited draft", r.Value())
	}
}

func TestReplyPanel_CountsComeFromMetrics(t *testing.T) {
	r := newSizedReplyPanel()
	r.SetVisible(true)
	r.SetDraft("a\tb")
	r.SetMetrics(reply.Metrics{Characters: 3, Words: 2})

	view := stripANSI(r.View())
	if !strings.Contains(view, "3 characters · 2 words") {
		t.Errorf("counts should come from SetMetrics, got:\n%s", view)
	}
}
