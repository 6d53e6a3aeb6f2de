package reply

import (
	"context"
	"fmt"

	"github.com/zhubert/emailwriter/internal/errors"
	"github.com/zhubert/emailwriter/internal/logger"
	"github.com/zhubert/emailwriter/internal/tone"
)

// Controller runs generation attempts against a Generator.
type Controller struct {
	gen Generator
}

// NewController creates a controller for the given generator.
func NewController(gen Generator) *Controller {
	return &Controller{gen: gen}
}

// Generate validates the inputs and runs one attempt. The returned error is
// non-nil only for missing input, in which case no request is made.
func (c *Controller) Generate(ctx context.Context, email string, t tone.Tone) (Outcome, error) {
	req, err := NewRequest(email, t)
	if err != nil {
		logger.ComponentLogger("Reply").Warn("Generation refused", "error", err)
		return Outcome{}, err
	}
	return c.Run(ctx, req), nil
}

// Run calls the generator for an already validated request and always
// returns a terminal outcome. Errors and panics from the generator become
// a Failed outcome carrying FallbackReply.
func (c *Controller) Run(ctx context.Context, req Request) (out Outcome) {
	log := logger.WithAttempt(req.ID).With("component", "Reply")
	log.Info("Generating reply", "tone", req.Tone, "email", Preview(req.OriginalEmail, 50))

	defer func() {
		if r := recover(); r != nil {
			out = FellBack(errors.E(errors.Op("reply.Run"), errors.KindUnknown, fmt.Sprintf("generator panicked: %v", r)))
		}
		if out.Status == StatusFailed {
			log.Error("Reply generation failed, using fallback", "kind", errors.GetKind(out.Err), "error", out.Err)
			return
		}
		log.Info("Reply generated", "characters", CharacterCount(out.Text))
	}()

	if c.gen == nil {
		return FellBack(errors.E(errors.Op("reply.Run"), errors.KindConfig, "no reply service configured"))
	}

	text, err := c.gen.Generate(ctx, req).Unpack()
	if err != nil {
		return FellBack(err)
	}
	return Succeeded(text)
}
