// Package clipboard writes reply text to the system clipboard.
package clipboard

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"golang.design/x/clipboard"

	"github.com/zhubert/emailwriter/internal/errors"
	"github.com/zhubert/emailwriter/internal/logger"
)

var (
	mu          sync.Mutex
	initialized bool

	// changed is closed once another program takes over the clipboard
	changed <-chan struct{}

	// Swappable for tests; the real clipboard needs a display server.
	initFn  = clipboard.Init
	writeFn = func(b []byte) <-chan struct{} { return clipboard.Write(clipboard.FmtText, b) }
)

// Init initializes the clipboard. Must be called before other functions.
// This is safe to call multiple times.
func Init() error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked()
}

func initLocked() error {
	if initialized {
		return nil
	}

	if err := initFn(); err != nil {
		logger.Warn("Clipboard: Failed to initialize: %v", err)
		return fmt.Errorf("failed to initialize clipboard: %w", err)
	}

	initialized = true
	logger.Debug("Clipboard: Initialized successfully")
	return nil
}

// WriteText writes text to the clipboard. A missing or broken clipboard
// backend is reported as a clipboard error, never as a panic.
func WriteText(text string) (err error) {
	mu.Lock()
	defer mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			err = errors.ClipboardUnavailable(fmt.Errorf("clipboard backend panicked: %v", r))
		}
	}()

	if err := initLocked(); err != nil {
		return errors.ClipboardUnavailable(err)
	}

	changed = writeFn([]byte(text))
	logger.Debug("Clipboard: Wrote %d bytes of text", len(text))
	return nil
}

// NeedsOwner reports whether copied text is served by this process, so it
// is lost when the process exits. True on X11 and Wayland.
func NeedsOwner() bool {
	return runtime.GOOS != "darwin" && runtime.GOOS != "windows"
}

// Hold blocks until another program takes over the clipboard, limit elapses
// or ctx is done. It reports whether the clipboard was taken over.
func Hold(ctx context.Context, limit time.Duration) bool {
	mu.Lock()
	ch := changed
	mu.Unlock()

	if ch == nil {
		return false
	}

	timer := time.NewTimer(limit)
	defer timer.Stop()

	select {
	case <-ch:
		logger.Debug("Clipboard: Taken over by another program")
		return true
	case <-timer.C:
		logger.Debug("Clipboard: Stopped holding after %v", limit)
		return false
	case <-ctx.Done():
		return false
	}
}

// System is the platform clipboard as a reply.ClipboardWriter.
type System struct{}

// WriteText implements reply.ClipboardWriter.
func (System) WriteText(text string) error {
	return WriteText(text)
}
