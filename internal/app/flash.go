package app

import (
	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/emailwriter/internal/reply"
	"github.com/zhubert/emailwriter/internal/ui"
)

// ShowFlash displays a flash message in the footer and returns a command to start the auto-dismiss timer
func (m *Model) ShowFlash(text string, flashType ui.FlashType) tea.Cmd {
	m.footer.SetFlash(text, flashType)
	return ui.FlashTick()
}

// ShowFlashError displays an error flash message
func (m *Model) ShowFlashError(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashError)
}

// ShowFlashSuccess displays a success flash message
func (m *Model) ShowFlashSuccess(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashSuccess)
}

// showNotice renders a workflow notice as a flash message. Destructive
// notices use the error style.
func (m *Model) showNotice(n reply.Notice) tea.Cmd {
	if n.IsZero() {
		return nil
	}
	if n.Variant == reply.VariantDestructive {
		return m.ShowFlashError(noticeText(n))
	}
	return m.ShowFlashSuccess(noticeText(n))
}

// noticeText joins a notice's title and description for the one-line footer
func noticeText(n reply.Notice) string {
	if n.Description == "" {
		return n.Title
	}
	return n.Title + " · " + n.Description
}
