package app

import (
	"strings"
	"testing"

	"github.com/zhubert/emailwriter/internal/reply"
)

func TestShowNotice(t *testing.T) {
	tests := []struct {
		name   string
		notice reply.Notice
		want   string
	}{
		{"success", reply.NoticeGenerated, "Reply Generated Successfully! · Your professional email reply is ready."},
		{"destructive", reply.NoticeCopyFailed, "Copy Failed · Unable to copy to clipboard."},
		{"title only", reply.Notice{Title: "Saved"}, "Saved"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _, _ := testModelWithSize(t, 160, 40)

			if cmd := m.showNotice(tt.notice); cmd == nil {
				t.Fatal("expected a flash tick command")
			}
			if !m.footer.HasFlash() {
				t.Fatal("expected a flash message")
			}
			if !strings.Contains(m.footer.View(), tt.want) {
				t.Errorf("footer should contain %q, got:\n%s", tt.want, m.footer.View())
			}
		})
	}
}

func TestShowNotice_Zero(t *testing.T) {
	m, _, _ := testModelWithSize(t, 120, 40)

	if cmd := m.showNotice(reply.Notice{}); cmd != nil {
		t.Error("a zero notice should not flash")
	}
	if m.footer.HasFlash() {
		t.Error("a zero notice should not set a flash")
	}
}

func TestNoticeVariant_SelectsFlashStyle(t *testing.T) {
	m, _, _ := testModelWithSize(t, 160, 40)

	m.showNotice(reply.NoticeMissingInformation)
	if !strings.Contains(m.footer.View(), "✕") {
		t.Error("destructive notices should use the error icon")
	}

	m.showNotice(reply.NoticeCopied)
	if !strings.Contains(m.footer.View(), "✓") {
		t.Error("default notices should use the success icon")
	}
}
