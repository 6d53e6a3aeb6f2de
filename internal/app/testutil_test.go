package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/lightningnetwork/lnd/fn/v2"
	"github.com/zhubert/emailwriter/internal/config"
	"github.com/zhubert/emailwriter/internal/keys"
	"github.com/zhubert/emailwriter/internal/reply"
	"github.com/zhubert/emailwriter/internal/tone"
)

// testConfig creates a minimal config for testing.
func testConfig() *config.Config {
	return &config.Config{
		APIBaseURL:            "http://127.0.0.1:1",
		RequestTimeoutSeconds: 5,
	}
}

// testModel creates a test Model with fakes for every side effect.
func testModel(t *testing.T) (*Model, *fakeGenerator, *fakeClipboard) {
	t.Helper()
	m := New(testConfig(), "0.0.0-test")

	gen := &fakeGenerator{reply: "Thanks, I'll send it Friday."}
	clip := &fakeClipboard{}
	m.SetGenerator(gen)
	m.SetClipboard(clip)
	m.SetExporter(reply.NewFileExporter(t.TempDir()))
	m.copyResetAfter = 10 * time.Millisecond

	return m, gen, clip
}

// testModelWithSize creates a test Model and sets its size.
func testModelWithSize(t *testing.T, width, height int) (*Model, *fakeGenerator, *fakeClipboard) {
	t.Helper()
	m, gen, clip := testModel(t)
	m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return m, gen, clip
}

// keyPress creates a tea.KeyPressMsg for the given key string.
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.Tab:
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case keys.ShiftTab:
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	case keys.Escape:
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case keys.CtrlEnter:
		return tea.KeyPressMsg{Code: tea.KeyEnter, Mod: tea.ModCtrl}
	case keys.CtrlC:
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
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
	default:
		// Regular character - for single characters, set both Code and Text
		if len(key) == 1 {
			return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
		}
		return tea.KeyPressMsg{Text: key}
	}
}

// sendKey sends a key press to the model and returns the resulting command.
func sendKey(m *Model, key string) tea.Cmd {
	_, cmd := m.Update(keyPress(key))
	return cmd
}

// typeText simulates typing a string by sending individual character key presses.
func typeText(m *Model, text string) {
	for _, ch := range text {
		m.Update(keyPress(string(ch)))
	}
}

// readyModel returns a sized model with an email typed and a tone chosen.
func readyModel(t *testing.T) (*Model, *fakeGenerator, *fakeClipboard) {
	t.Helper()
	m, gen, clip := testModelWithSize(t, 120, 40)
	typeText(m, "Can you send the report by Friday?")
	if err := m.session.SetTone(tone.Friendly); err != nil {
		t.Fatalf("SetTone: %v", err)
	}
	m.syncState()
	return m, gen, clip
}

// awaitMsg runs cmd (following batches) until it yields a message of type
// T. Commands that never produce T are left running.
func awaitMsg[T tea.Msg](t *testing.T, cmd tea.Cmd) T {
	t.Helper()

	var zero T
	if cmd == nil {
		t.Fatalf("expected a command producing %T, got nil", zero)
		return zero
	}

	ch := make(chan tea.Msg, 64)
	run := func(c tea.Cmd) {
		if c == nil {
			return
		}
		go func() { ch <- c() }()
	}
	run(cmd)

	timeout := time.After(2 * time.Second)
	for {
		select {
		case msg := <-ch:
			if batch, ok := msg.(tea.BatchMsg); ok {
				for _, c := range batch {
					run(c)
				}
				continue
			}
			if want, ok := msg.(T); ok {
				return want
			}
		case <-timeout:
			t.Fatalf("timed out waiting for %T", zero)
			return zero
		}
	}
}

// generate presses ctrl+g and feeds the resulting ReplyGeneratedMsg back
// into the model.
func generate(t *testing.T, m *Model) ReplyGeneratedMsg {
	t.Helper()
	msg := awaitMsg[ReplyGeneratedMsg](t, sendKey(m, keys.CtrlG))
	m.Update(msg)
	return msg
}

// =============================================================================
// Fakes
// =============================================================================

// fakeGenerator is a reply.Generator returning a canned reply or error.
type fakeGenerator struct {
	mu    sync.Mutex
	reply string
	err   error
	calls []reply.Request
}

func (g *fakeGenerator) Generate(ctx context.Context, req reply.Request) fn.Result[string] {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = append(g.calls, req)
	if g.err != nil {
		return fn.Err[string](g.err)
	}
	return fn.Ok(g.reply)
}

func (g *fakeGenerator) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.calls)
}

// fakeClipboard records what was written.
type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) WriteText(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

var errServiceDown = errors.New("connection refused")
