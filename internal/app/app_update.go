package app

import (
	"context"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/emailwriter/internal/keys"
	"github.com/zhubert/emailwriter/internal/logger"
	"github.com/zhubert/emailwriter/internal/notification"
	"github.com/zhubert/emailwriter/internal/reply"
	"github.com/zhubert/emailwriter/internal/tone"
	"github.com/zhubert/emailwriter/internal/ui"
)

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()

	case tea.KeyPressMsg:
		var model tea.Model
		model, cmd = m.handleKeyPress(msg)
		m = model.(*Model)

	case ReplyGeneratedMsg:
		cmd = m.handleReplyGenerated(msg)

	case CopyExpiredMsg:
		if m.session.ExpireCopy(msg.Token) {
			logger.Debug("App: Copied flag cleared")
		}

	case spinner.TickMsg:
		cmd = m.compose.UpdateSpinner(msg)

	case ui.FlashTickMsg:
		m.footer.ClearIfExpired()
		if m.footer.HasFlash() {
			cmd = ui.FlashTick()
		}

	default:
		// Paste, cursor blink and the like belong to the focused editor
		cmd = m.updateFocusedEditor(msg)
	}

	m.syncState()
	return m, cmd
}

// handleKeyPress routes a key to the tone picker, a shortcut or the
// focused editor, in that order.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.picker != nil {
		return m, m.handleTonePickerKey(msg)
	}

	if s, ok := m.lookupShortcut(key); ok {
		logger.Debug("App: Shortcut %q", key)
		return s.Handler(m)
	}

	return m, m.updateFocusedEditor(msg)
}

// updateFocusedEditor forwards msg to the focused editor and copies its
// text back into the session.
func (m *Model) updateFocusedEditor(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case FocusCompose:
		cmd = m.compose.Update(msg)
		if v := m.compose.Value(); v != m.session.Email() {
			m.session.SetEmail(v)
		}
	case FocusReply:
		// The editor normalizes line endings and tabs, so only a change made
		// by this message counts as an edit of the committed draft.
		before := m.replyPanel.Value()
		cmd = m.replyPanel.Update(msg)
		if v := m.replyPanel.Value(); v != before {
			m.session.EditDraft(v)
		}
	}
	return cmd
}

// openTonePicker shows the tone picker with the current tone preselected
func (m *Model) openTonePicker() {
	m.picker = ui.NewTonePicker(m.session.Tone())
}

// handleTonePickerKey handles a key while the tone picker is open
func (m *Model) handleTonePickerKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case keys.CtrlC:
		m.picker = nil
		m.stopGenerating()
		return tea.Quit

	case keys.Escape:
		m.picker = nil
		return nil

	case keys.Enter:
		t, ok := m.picker.Selected()
		m.picker = nil
		if !ok {
			return nil
		}
		return m.applyTone(t)
	}

	return m.picker.Update(msg)
}

// SelectTone picks t as if it had been chosen in the tone picker
func (m *Model) SelectTone(t tone.Tone) tea.Cmd {
	m.picker = nil
	cmd := m.applyTone(t)
	m.syncState()
	return cmd
}

func (m *Model) applyTone(t tone.Tone) tea.Cmd {
	if err := m.session.SetTone(t); err != nil {
		logger.Warn("App: Rejected tone %q: %v", t, err)
		return m.ShowFlashError(err.Error())
	}
	logger.Debug("App: Tone set to %s", t)
	return nil
}

// startGeneration begins an attempt and returns the command that runs it.
// Missing input shows the validation notice and issues no request.
func (m *Model) startGeneration() tea.Cmd {
	if m.session.Pending() {
		// The generate action is disabled while an attempt is in flight
		return nil
	}

	attempt, err := m.session.Begin()
	if err != nil {
		logger.Debug("App: Generate refused: %v", err)
		return m.showNotice(reply.NoticeMissingInformation)
	}

	return tea.Batch(m.generateCmd(attempt), m.compose.SpinnerTick())
}

// generateCmd runs the attempt off the UI loop and reports back with a
// ReplyGeneratedMsg.
func (m *Model) generateCmd(attempt reply.Attempt) tea.Cmd {
	m.stopGenerating()
	ctx, cancel := context.WithTimeout(context.Background(), m.config.GetRequestTimeout())
	m.cancelGenerate = cancel

	controller := m.controller
	return func() tea.Msg {
		defer cancel()
		return ReplyGeneratedMsg{
			AttemptID: attempt.ID,
			Outcome:   controller.Run(ctx, attempt.Request),
		}
	}
}

// handleReplyGenerated commits a finished attempt. Results of superseded or
// reset attempts are dropped.
func (m *Model) handleReplyGenerated(msg ReplyGeneratedMsg) tea.Cmd {
	notice, ok := m.session.Complete(msg.AttemptID, msg.Outcome)
	if !ok {
		return nil
	}
	m.stopGenerating()

	m.replyPanel.SetDraft(m.session.Draft())
	fellBack := m.session.Status() == reply.StatusFailed

	return tea.Batch(m.showNotice(notice), m.notifyReplyReady(fellBack))
}

// notifyReplyReady sends a desktop notification when enabled in config
func (m *Model) notifyReplyReady(fellBack bool) tea.Cmd {
	if !m.config.GetNotificationsEnabled() {
		return nil
	}
	label := m.session.Tone().Label()
	return func() tea.Msg {
		if err := notification.ReplyReady(label, fellBack); err != nil {
			logger.Warn("App: Notification failed: %v", err)
		}
		return nil
	}
}

// copyDraft copies the draft and schedules the copied flag to clear
func (m *Model) copyDraft() tea.Cmd {
	tok, notice := m.session.Copy(m.clipboard)
	if notice.Variant == reply.VariantDestructive {
		return m.showNotice(notice)
	}

	return tea.Batch(
		m.showNotice(notice),
		tea.Tick(m.copyResetAfter, func(time.Time) tea.Msg {
			return CopyExpiredMsg{Token: tok}
		}),
	)
}

// downloadDraft writes the draft to the download directory
func (m *Model) downloadDraft() tea.Cmd {
	path, notice := m.session.Download(m.exporter)
	logger.Info("App: Download requested, path=%s", path)
	return m.showNotice(notice)
}

// resetSession clears every input and output and drops the in-flight
// attempt, if any.
func (m *Model) resetSession() {
	m.stopGenerating()
	m.session.Reset()
	m.picker = nil
	m.compose.SetValue("")
	m.replyPanel.SetDraft("")
	m.setFocus(FocusCompose)
	logger.Info("App: Session reset")
}
