package demo

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/lightningnetwork/lnd/fn/v2"
	"github.com/zhubert/emailwriter/internal/app"
	"github.com/zhubert/emailwriter/internal/config"
	"github.com/zhubert/emailwriter/internal/errors"
	"github.com/zhubert/emailwriter/internal/keys"
	"github.com/zhubert/emailwriter/internal/reply"
)

// Frame represents a captured frame from the demo.
type Frame struct {
	Content    string        // ANSI-encoded terminal content
	Delay      time.Duration // Delay before this frame
	Annotation string        // Optional annotation/caption
	StepIndex  int           // Index of the step that produced this frame
}

// ExecutorConfig configures the demo executor.
type ExecutorConfig struct {
	// CaptureEveryStep captures a frame after every step (default: false)
	CaptureEveryStep bool

	// TypeDelay is the delay between characters when typing (default: 50ms)
	TypeDelay time.Duration

	// KeyDelay is the delay after key presses (default: 100ms)
	KeyDelay time.Duration

	// PendingDelay is how long the loading state is shown (default: 1s)
	PendingDelay time.Duration

	// ReplyTimeout bounds how long a scripted reply may take (default: 5s)
	ReplyTimeout time.Duration

	// DownloadDir receives files downloaded during the demo
	// (default: a directory under os.TempDir)
	DownloadDir string
}

// DefaultExecutorConfig returns the default executor configuration.
func DefaultExecutorConfig() ExecutorConfig {
	return ExecutorConfig{
		CaptureEveryStep: false, // Don't capture every step by default for cleaner demos
		TypeDelay:        50 * time.Millisecond,
		KeyDelay:         100 * time.Millisecond,
		PendingDelay:     time.Second,
		ReplyTimeout:     5 * time.Second,
		DownloadDir:      filepath.Join(os.TempDir(), "emailwriter-demo"),
	}
}

// Executor runs demo scenarios and captures frames.
type Executor struct {
	config    ExecutorConfig
	model     *app.Model
	generator *scriptedGenerator
	clipboard *demoClipboard
	frames    []Frame

	currentAnnotation string
}

// scriptedGenerator answers with whatever the current step scripted.
type scriptedGenerator struct {
	mu    sync.Mutex
	reply string
	err   error
}

func (g *scriptedGenerator) script(text string, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.reply, g.err = text, err
}

func (g *scriptedGenerator) Generate(ctx context.Context, req reply.Request) fn.Result[string] {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.err != nil {
		return fn.Err[string](g.err)
	}
	return fn.Ok(g.reply)
}

// demoClipboard keeps the demo away from the real clipboard.
type demoClipboard struct {
	text string
}

func (c *demoClipboard) WriteText(text string) error {
	c.text = text
	return nil
}

// NewExecutor creates a new demo executor.
func NewExecutor(cfg ExecutorConfig) *Executor {
	return &Executor{
		config:    cfg,
		generator: &scriptedGenerator{},
		clipboard: &demoClipboard{},
		frames:    []Frame{},
	}
}

// Run executes a scenario and returns the captured frames.
func (e *Executor) Run(scenario *Scenario) ([]Frame, error) {
	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	e.setup(scenario)

	// Capture initial frame
	e.captureFrame(0, 500*time.Millisecond)

	// Execute each step
	for i, step := range scenario.Steps {
		if err := e.executeStep(i, step); err != nil {
			return nil, fmt.Errorf("step %d failed: %w", i, err)
		}
	}

	return e.frames, nil
}

// setup initializes the model for the scenario.
func (e *Executor) setup(scenario *Scenario) {
	cfg := &config.Config{}
	cfg.SetDownloadDir(e.config.DownloadDir)

	e.model = app.New(cfg, "demo")
	e.model.SetGenerator(e.generator)
	e.model.SetClipboard(e.clipboard)
	e.model.SetExporter(reply.NewFileExporter(e.config.DownloadDir))

	e.model.Update(tea.WindowSizeMsg{
		Width:  scenario.Width,
		Height: scenario.Height,
	})
}

func (e *Executor) executeStep(index int, step Step) error {
	switch step.Type {
	case StepWait:
		e.captureFrame(index, step.Duration)

	case StepKey:
		e.sendKey(step.Key)
		if e.config.CaptureEveryStep {
			e.captureFrame(index, e.config.KeyDelay)
		}

	case StepTypeText:
		for _, ch := range step.Text {
			e.sendKey(string(ch))
			if e.config.CaptureEveryStep {
				e.captureFrame(index, e.config.TypeDelay)
			}
		}

	case StepPaste:
		e.model.Update(tea.PasteMsg{Content: step.Text})
		e.captureFrame(index, e.config.KeyDelay)

	case StepTone:
		e.sendKey(keys.CtrlT)
		e.captureFrame(index, 600*time.Millisecond)
		e.model.SelectTone(step.Tone)
		e.captureFrame(index, e.config.KeyDelay)

	case StepReply:
		e.generator.script(step.Text, nil)
		return e.generate(index)

	case StepFailure:
		e.generator.script("", errors.TransportFailed("demo", fmt.Errorf("connection refused")))
		return e.generate(index)

	case StepAnnotate:
		e.currentAnnotation = step.Annotation
		// Don't capture, annotation applies to next frame

	case StepCapture:
		e.captureFrame(index, 0)
	}

	return nil
}

// generate presses the generate shortcut and waits for the scripted reply
// to come back through the model.
func (e *Executor) generate(index int) error {
	cmd := e.sendKey(keys.CtrlG)
	if !e.model.Session().Pending() {
		// Missing input: the frame shows the validation notice
		e.captureFrame(index, e.config.KeyDelay)
		return nil
	}

	e.captureFrame(index, e.config.PendingDelay)

	msg, ok := awaitReply(cmd, e.config.ReplyTimeout)
	if !ok {
		return fmt.Errorf("no reply within %v", e.config.ReplyTimeout)
	}
	e.model.Update(msg)

	e.captureFrame(index, 200*time.Millisecond)
	return nil
}

// awaitReply runs cmd, following batches, until it yields a
// ReplyGeneratedMsg. Timer commands left running are abandoned.
func awaitReply(cmd tea.Cmd, timeout time.Duration) (app.ReplyGeneratedMsg, bool) {
	ch := make(chan tea.Msg, 64)
	run := func(c tea.Cmd) {
		if c == nil {
			return
		}
		go func() { ch <- c() }()
	}
	run(cmd)

	deadline := time.After(timeout)
	for {
		select {
		case msg := <-ch:
			if batch, ok := msg.(tea.BatchMsg); ok {
				for _, c := range batch {
					run(c)
				}
				continue
			}
			if reply, ok := msg.(app.ReplyGeneratedMsg); ok {
				return reply, true
			}
		case <-deadline:
			return app.ReplyGeneratedMsg{}, false
		}
	}
}

// captureFrame captures the current view as a frame.
func (e *Executor) captureFrame(stepIndex int, delay time.Duration) {
	content := e.model.RenderToString()

	frame := Frame{
		Content:    content,
		Delay:      delay,
		Annotation: e.currentAnnotation,
		StepIndex:  stepIndex,
	}
	e.frames = append(e.frames, frame)

	// Clear annotation after use
	e.currentAnnotation = ""
}

// sendKey sends a key press to the model.
func (e *Executor) sendKey(key string) tea.Cmd {
	_, cmd := e.model.Update(keyPress(key))
	return cmd
}

func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.Tab:
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case keys.ShiftTab:
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	case keys.Escape, "escape":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "backspace":
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case keys.CtrlEnter:
		return tea.KeyPressMsg{Code: tea.KeyEnter, Mod: tea.ModCtrl}
	case keys.CtrlG:
		return tea.KeyPressMsg{Code: 'g', Mod: tea.ModCtrl}
	case keys.CtrlT:
		return tea.KeyPressMsg{Code: 't', Mod: tea.ModCtrl}
	case keys.CtrlY:
		return tea.KeyPressMsg{Code: 'y', Mod: tea.ModCtrl}
	case keys.CtrlS:
		return tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}
	case keys.CtrlR:
		return tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl}
	case keys.CtrlC:
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	default:
		if len(key) == 1 {
			return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
		}
		return tea.KeyPressMsg{Text: key}
	}
}
