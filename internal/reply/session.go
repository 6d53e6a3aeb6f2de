package reply

import (
	"time"

	"github.com/google/uuid"
	"github.com/zhubert/emailwriter/internal/errors"
	"github.com/zhubert/emailwriter/internal/logger"
	"github.com/zhubert/emailwriter/internal/tone"
)

// CopyResetAfter is how long the "copied" flag stays set after a copy.
const CopyResetAfter = 2 * time.Second

// Attempt is one started generation.
type Attempt struct {
	ID      string
	Request Request
}

// CopyToken identifies one successful copy. Only the newest token can
// clear the copied flag.
type CopyToken struct {
	seq uint64
}

// ClipboardWriter writes text to the platform clipboard.
type ClipboardWriter interface {
	WriteText(text string) error
}

// Session is the state container for one screen. It is not safe for
// concurrent use; the UI loop owns it and async results come back to that
// loop before they touch the session.
type Session struct {
	email string
	tone  tone.Tone

	outcome       Outcome
	draft         string
	outputVisible bool
	pendingID     string

	copied  bool
	copySeq uint64

	newID func() string
}

// NewSession returns a session in its initial state.
func NewSession() *Session {
	return &Session{newID: uuid.NewString}
}

// Email returns the pasted original email.
func (s *Session) Email() string { return s.email }

// SetEmail replaces the original email.
func (s *Session) SetEmail(email string) { s.email = email }

// Tone returns the selected tone ("" when unselected).
func (s *Session) Tone() tone.Tone { return s.tone }

// SetTone selects a tone. The empty tone clears the selection; anything
// outside the catalog is rejected and leaves the selection unchanged.
func (s *Session) SetTone(t tone.Tone) error {
	if t != "" && !t.Valid() {
		return errors.UnknownTone(string(t))
	}
	s.tone = t
	return nil
}

// CanSubmit reports whether the generate action should be enabled.
func (s *Session) CanSubmit() bool {
	return CanGenerate(s.email, s.tone) && !s.Pending()
}

// Pending reports whether an attempt is in flight.
func (s *Session) Pending() bool { return s.pendingID != "" }

// Status returns the state of the latest attempt.
func (s *Session) Status() Status { return s.outcome.Status }

// Outcome returns the latest committed (or pending) outcome.
func (s *Session) Outcome() Outcome { return s.outcome }

// Draft returns the editable reply text.
func (s *Session) Draft() string { return s.draft }

// EditDraft replaces the draft with user edits. The committed outcome is
// not touched.
func (s *Session) EditDraft(text string) { s.draft = text }

// OutputVisible reports whether the output section is shown.
func (s *Session) OutputVisible() bool { return s.outputVisible }

// Copied reports whether the draft was copied within the last
// CopyResetAfter.
func (s *Session) Copied() bool { return s.copied }

// EmailMetrics measures the original email.
func (s *Session) EmailMetrics() Metrics { return Measure(s.email) }

// DraftMetrics measures the current draft.
func (s *Session) DraftMetrics() Metrics { return Measure(s.draft) }

// Begin validates the inputs and moves to Pending. On a validation error
// nothing changes and no attempt is issued. Beginning while another attempt
// is pending supersedes it; its result will be ignored by Complete.
func (s *Session) Begin() (Attempt, error) {
	req, err := NewRequest(s.email, s.tone)
	if err != nil {
		return Attempt{}, err
	}

	id := s.newID()
	req.ID = id
	if s.pendingID != "" {
		logger.WithAttempt(s.pendingID).Debug("Attempt superseded", "by", id)
	}
	s.pendingID = id
	s.outcome = Outcome{Status: StatusPending}
	logger.WithAttempt(id).Debug("State transition", "to", StatusPending)

	return Attempt{ID: id, Request: req}, nil
}

// Complete commits the outcome of attempt id if it is still the latest
// attempt. It returns the notice to show and whether anything was
// committed. A non-terminal outcome is treated as a failure so the session
// never stays Pending once an attempt has reported back.
func (s *Session) Complete(id string, o Outcome) (Notice, bool) {
	if id == "" || id != s.pendingID {
		logger.WithAttempt(id).Debug("Dropping stale attempt result", "status", o.Status)
		return Notice{}, false
	}
	if !o.Terminal() {
		o = FellBack(errors.E(errors.Op("reply.Complete"), errors.KindUnknown, "attempt reported a non-terminal outcome"))
	}

	s.pendingID = ""
	s.outcome = o
	s.draft = o.Text
	s.outputVisible = true
	logger.WithAttempt(id).Debug("State transition", "to", o.Status)

	return o.Notice(), true
}

// Copy writes the draft to the clipboard. On success the copied flag is set
// and the returned token must be passed to ExpireCopy after CopyResetAfter.
// On failure the flag is left as it was and the zero token is returned.
func (s *Session) Copy(w ClipboardWriter) (CopyToken, Notice) {
	if err := w.WriteText(s.draft); err != nil {
		logger.ComponentLogger("Reply").Warn("Copy failed", "error", err)
		return CopyToken{}, NoticeCopyFailed
	}
	s.copySeq++
	s.copied = true
	return CopyToken{seq: s.copySeq}, NoticeCopied
}

// ExpireCopy clears the copied flag if tok is the newest copy token. It
// reports whether the flag was cleared.
func (s *Session) ExpireCopy(tok CopyToken) bool {
	if tok.seq == 0 || tok.seq != s.copySeq || !s.copied {
		return false
	}
	s.copied = false
	return true
}

// Download saves the draft through the exporter. The notice confirms the
// download was started; write errors are logged, not surfaced.
func (s *Session) Download(x *FileExporter) (string, Notice) {
	path, err := x.Download(s.draft, DefaultFilename)
	if err != nil {
		logger.ComponentLogger("Reply").Warn("Download failed", "path", path, "error", err)
	}
	return path, NoticeDownloadStarted
}

// Reset restores the initial state in a single assignment. Any in-flight
// attempt is forgotten and outstanding copy tokens become stale.
func (s *Session) Reset() {
	*s = Session{
		newID:   s.newID,
		copySeq: s.copySeq,
	}
}
