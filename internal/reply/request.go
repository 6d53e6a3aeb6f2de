package reply

import (
	"strings"

	"github.com/zhubert/emailwriter/internal/errors"
	"github.com/zhubert/emailwriter/internal/tone"
)

// Request is the body sent to the reply service. It is only built through
// NewRequest, so a Request value always carries a non-blank email and a
// catalog tone.
type Request struct {
	OriginalEmail string    `json:"originalEmail"`
	Tone          tone.Tone `json:"tone"`

	// ID identifies the attempt; sent as X-Request-ID, not in the body.
	ID string `json:"-"`
}

// CanGenerate reports whether a generation attempt may start: the email
// must contain something other than whitespace and the tone must be a
// member of the catalog.
func CanGenerate(email string, t tone.Tone) bool {
	return strings.TrimSpace(email) != "" && t.Valid()
}

// Validate is CanGenerate with a KindInvalid error for the failing case.
func Validate(email string, t tone.Tone) error {
	if !CanGenerate(email, t) {
		return errors.MissingInformation()
	}
	return nil
}

// NewRequest validates the inputs and builds the request. The email is sent
// as typed; trimming is only used for the emptiness check.
func NewRequest(email string, t tone.Tone) (Request, error) {
	if err := Validate(email, t); err != nil {
		return Request{}, err
	}
	return Request{OriginalEmail: email, Tone: t}, nil
}
