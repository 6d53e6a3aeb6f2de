// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"strings"
	"sync"

	"github.com/gen2brain/beeep"
	"github.com/zhubert/emailwriter/internal/logger"
)

// AppName is the title used for every notification.
const AppName = "Email Writer"

// NotifyFunc matches beeep.Notify.
type NotifyFunc func(title, message string, icon any) error

var (
	notifierMu sync.Mutex
	notifier   NotifyFunc = beeep.Notify
)

// SetNotifier replaces the function used to deliver notifications.
func SetNotifier(fn NotifyFunc) {
	notifierMu.Lock()
	defer notifierMu.Unlock()
	notifier = fn
}

// ResetNotifier restores beeep as the notification backend.
func ResetNotifier() {
	SetNotifier(beeep.Notify)
}

// Send sends a desktop notification with the given title and message.
// On macOS, it uses terminal-notifier or AppleScript.
// On Linux, it uses D-Bus or notify-send.
// On Windows, it uses the Windows Runtime COM API.
func Send(title, message string) error {
	notifierMu.Lock()
	notify := notifier
	notifierMu.Unlock()

	logger.Debug("Notification: Sending notification - title=%q, message=%q", title, message)
	// Use empty string for icon - beeep handles platform defaults
	err := notify(title, message, "")
	if err != nil {
		logger.Warn("Notification: Failed to send notification: %v", err)
	}
	return err
}

// ReplyReady announces that a draft is waiting in the reply panel.
// fellBack reports that the draft is the fallback template.
func ReplyReady(toneLabel string, fellBack bool) error {
	if fellBack {
		return Send(AppName, "Reply service unavailable, a fallback draft is ready")
	}
	toneLabel = strings.ToLower(strings.TrimSpace(toneLabel))
	if toneLabel == "" {
		return Send(AppName, "Your reply is ready")
	}
	return Send(AppName, "Your "+toneLabel+" reply is ready")
}
