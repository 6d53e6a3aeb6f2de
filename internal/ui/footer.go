package ui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// FlashType selects the icon and color of a flash message
type FlashType int

const (
	FlashError FlashType = iota
	FlashWarning
	FlashInfo
	FlashSuccess
)

// DefaultFlashDuration is how long a flash message stays in the footer
const DefaultFlashDuration = 4 * time.Second

// flashTickInterval is how often expired flashes are checked for
const flashTickInterval = 500 * time.Millisecond

// FlashMessage is a transient notice that replaces the key hints
type FlashMessage struct {
	Text      string
	Type      FlashType
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired reports whether the message has outlived its duration
func (f *FlashMessage) IsExpired() bool {
	return time.Since(f.CreatedAt) > f.Duration
}

// FlashTickMsg asks the app to drop an expired flash message
type FlashTickMsg time.Time

// FlashTick returns a command that fires a FlashTickMsg
func FlashTick() tea.Cmd {
	return tea.Tick(flashTickInterval, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width         int
	replyFocused  bool // Whether the reply editor has focus
	outputVisible bool // Whether a draft is shown
	pending       bool // Whether a generation is in flight
	pickerOpen    bool // Whether the tone picker overlay is shown
	flashMessage  *FlashMessage
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{}
}

// SetContext updates the footer's context for conditional bindings
func (f *Footer) SetContext(replyFocused, outputVisible, pending, pickerOpen bool) {
	f.replyFocused = replyFocused
	f.outputVisible = outputVisible
	f.pending = pending
	f.pickerOpen = pickerOpen
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetFlash shows a flash message for DefaultFlashDuration
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.SetFlashWithDuration(text, flashType, DefaultFlashDuration)
}

// SetFlashWithDuration shows a flash message for the given duration
func (f *Footer) SetFlashWithDuration(text string, flashType FlashType, duration time.Duration) {
	f.flashMessage = &FlashMessage{
		Text:      text,
		Type:      flashType,
		CreatedAt: time.Now(),
		Duration:  duration,
	}
}

// ClearFlash removes the flash message
func (f *Footer) ClearFlash() {
	f.flashMessage = nil
}

// HasFlash reports whether a flash message is shown
func (f *Footer) HasFlash() bool {
	return f.flashMessage != nil
}

// ClearIfExpired drops an expired flash message and reports whether it did
func (f *Footer) ClearIfExpired() bool {
	if f.flashMessage != nil && f.flashMessage.IsExpired() {
		f.flashMessage = nil
		return true
	}
	return false
}

// bindings returns the shortcuts relevant to the current context
func (f *Footer) bindings() []KeyBinding {
	if f.pickerOpen {
		return []KeyBinding{
			{Key: "↑/↓", Desc: "choose"},
			{Key: "enter", Desc: "select"},
			{Key: "esc", Desc: "cancel"},
		}
	}

	var b []KeyBinding
	if f.pending {
		b = append(b, KeyBinding{Key: "…", Desc: "generating"})
	} else {
		b = append(b, KeyBinding{Key: "ctrl+enter/ctrl+g", Desc: "generate"})
	}
	b = append(b, KeyBinding{Key: "ctrl+t", Desc: "tone"})
	if f.outputVisible {
		b = append(b,
			KeyBinding{Key: "tab", Desc: "switch pane"},
			KeyBinding{Key: "ctrl+y", Desc: "copy"},
			KeyBinding{Key: "ctrl+s", Desc: "download"},
		)
	}
	b = append(b,
		KeyBinding{Key: "ctrl+r", Desc: "reset"},
		KeyBinding{Key: "ctrl+c", Desc: "quit"},
	)
	return b
}

// View renders the footer
func (f *Footer) View() string {
	if f.flashMessage != nil {
		return f.renderFlash()
	}

	var parts []string
	for _, b := range f.bindings() {
		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}

	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")
	if f.width > InputPaddingWidth {
		content = ansi.Truncate(content, f.width-InputPaddingWidth, "…")
	}

	return FooterStyle.Width(f.width).Render(content)
}

func (f *Footer) renderFlash() string {
	var icon string
	var color = ColorInfo
	switch f.flashMessage.Type {
	case FlashError:
		icon, color = "✕", ColorError
	case FlashWarning:
		icon, color = "⚠", ColorWarning
	case FlashInfo:
		icon, color = "ℹ", ColorInfo
	case FlashSuccess:
		icon, color = "✓", ColorSuccess
	}

	style := lipgloss.NewStyle().Foreground(color).Bold(true)
	content := style.Render(icon + " " + f.flashMessage.Text)
	if f.width > InputPaddingWidth {
		content = ansi.Truncate(content, f.width-InputPaddingWidth, "…")
	}
	return FooterStyle.Width(f.width).Render(content)
}
