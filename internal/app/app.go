package app

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/emailwriter/internal/clipboard"
	"github.com/zhubert/emailwriter/internal/config"
	"github.com/zhubert/emailwriter/internal/logger"
	"github.com/zhubert/emailwriter/internal/reply"
	"github.com/zhubert/emailwriter/internal/ui"
)

// Focus represents which editor is focused
type Focus int

const (
	FocusCompose Focus = iota
	FocusReply
)

// String returns a human-readable name for the focus
func (f Focus) String() string {
	switch f {
	case FocusCompose:
		return "Compose"
	case FocusReply:
		return "Reply"
	default:
		return "Unknown"
	}
}

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	version string // App version (injected at build time)

	header     *ui.Header
	footer     *ui.Footer
	compose    *ui.Compose
	replyPanel *ui.ReplyPanel
	picker     *ui.TonePicker // nil unless the tone picker is open

	width  int
	height int
	focus  Focus

	// Workflow state; only touched from Update
	session    *reply.Session
	controller *reply.Controller
	clipboard  reply.ClipboardWriter
	exporter   *reply.FileExporter

	// cancelGenerate aborts the in-flight request, nil when idle
	cancelGenerate context.CancelFunc
	copyResetAfter time.Duration
}

// ReplyGeneratedMsg is sent when a generation attempt finishes
type ReplyGeneratedMsg struct {
	AttemptID string
	Outcome   reply.Outcome
}

// CopyExpiredMsg is sent CopyResetAfter a successful copy
type CopyExpiredMsg struct {
	Token reply.CopyToken
}

// New creates a new app model wired to the reply service named by cfg
func New(cfg *config.Config, version string) *Model {
	// Load saved theme from config, or use default
	if savedTheme := cfg.GetTheme(); savedTheme != "" {
		ui.SetThemeByName(savedTheme)
	}

	client := reply.NewClient(reply.ClientConfig{
		BaseURL:   cfg.GetAPIBaseURL(),
		Timeout:   cfg.GetRequestTimeout(),
		UserAgent: "emailwriter/" + version,
	})

	m := &Model{
		config:         cfg,
		version:        version,
		header:         ui.NewHeader(),
		footer:         ui.NewFooter(),
		compose:        ui.NewCompose(),
		replyPanel:     ui.NewReplyPanel(),
		focus:          FocusCompose,
		session:        reply.NewSession(),
		controller:     reply.NewController(client),
		clipboard:      clipboard.System{},
		exporter:       reply.NewFileExporter(cfg.GetDownloadDir()),
		copyResetAfter: reply.CopyResetAfter,
	}

	logger.ComponentLogger("App").Info("Reply service configured", "endpoint", client.Endpoint(), "version", version)

	m.compose.SetFocused(true)
	m.syncState()

	return m
}

// SetGenerator replaces the reply service
func (m *Model) SetGenerator(gen reply.Generator) {
	m.controller = reply.NewController(gen)
}

// SetClipboard replaces the clipboard writer
func (m *Model) SetClipboard(w reply.ClipboardWriter) {
	m.clipboard = w
}

// SetExporter replaces the download target
func (m *Model) SetExporter(x *reply.FileExporter) {
	m.exporter = x
}

// Session exposes the workflow state for inspection
func (m *Model) Session() *reply.Session {
	return m.session
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return nil
}

// canSwitchFocus reports whether the reply editor can take focus
func (m *Model) canSwitchFocus() bool {
	return m.session.OutputVisible()
}

// setFocus moves keyboard focus between the editors
func (m *Model) setFocus(f Focus) {
	if m.focus != f {
		logger.Debug("App: Focus %s -> %s", m.focus, f)
	}
	m.focus = f
	m.compose.SetFocused(f == FocusCompose)
	m.replyPanel.SetFocused(f == FocusReply)
}

// syncState pushes the session state into the UI components. It runs at
// the end of every Update so views never read stale workflow state.
func (m *Model) syncState() {
	label := m.session.Tone().Label()

	status := ""
	if s := m.session.Status(); s != reply.StatusIdle {
		status = s.String()
	}
	m.header.SetTone(label)
	m.header.SetStatus(status)

	m.compose.SetTone(label)
	m.compose.SetSubmitState(reply.CanGenerate(m.session.Email(), m.session.Tone()), m.session.Pending())

	m.replyPanel.SetVisible(m.session.OutputVisible())
	m.replyPanel.SetFallback(m.session.Status() == reply.StatusFailed)
	m.replyPanel.SetCopied(m.session.Copied())
	m.replyPanel.SetMetrics(m.session.DraftMetrics())

	if m.focus == FocusReply && !m.canSwitchFocus() {
		m.setFocus(FocusCompose)
	}

	m.footer.SetContext(m.focus == FocusReply, m.session.OutputVisible(), m.session.Pending(), m.picker != nil)
}

// stopGenerating cancels the in-flight request, if any
func (m *Model) stopGenerating() {
	if m.cancelGenerate != nil {
		m.cancelGenerate()
		m.cancelGenerate = nil
	}
}
