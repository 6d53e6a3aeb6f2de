// Package tone defines the closed set of reply tones a user can pick.
package tone

import (
	"strings"

	"github.com/zhubert/emailwriter/internal/errors"
)

// Tone is a categorical style modifier sent to the reply service.
// The zero value means no tone has been selected.
type Tone string

const (
	Professional Tone = "professional"
	Friendly     Tone = "friendly"
	Formal       Tone = "formal"
	Casual       Tone = "casual"
	Apologetic   Tone = "apologetic"
	Enthusiastic Tone = "enthusiastic"
)

// Option is a tone together with its display metadata.
type Option struct {
	Value       Tone
	Label       string
	Description string
}

// catalog is in display order.
var catalog = []Option{
	{Value: Professional, Label: "Professional", Description: "Formal and business-appropriate"},
	{Value: Friendly, Label: "Friendly", Description: "Warm and approachable"},
	{Value: Formal, Label: "Formal", Description: "Very structured and official"},
	{Value: Casual, Label: "Casual", Description: "Relaxed and informal"},
	{Value: Apologetic, Label: "Apologetic", Description: "Expressing regret or sympathy"},
	{Value: Enthusiastic, Label: "Enthusiastic", Description: "Energetic and positive"},
}

// Options returns the catalog in display order. The slice is a copy.
func Options() []Option {
	out := make([]Option, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the catalog entry for t.
func Lookup(t Tone) (Option, bool) {
	for _, opt := range catalog {
		if opt.Value == t {
			return opt, true
		}
	}
	return Option{}, false
}

// Valid reports whether t is a non-empty member of the catalog.
func (t Tone) Valid() bool {
	_, ok := Lookup(t)
	return ok
}

// Label returns the display label, or "" for an unselected or unknown tone.
func (t Tone) Label() string {
	opt, _ := Lookup(t)
	return opt.Label
}

// Parse converts user input (value or label, any case) into a Tone.
// An empty string parses to the unselected tone.
func Parse(s string) (Tone, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	for _, opt := range catalog {
		if strings.EqualFold(s, string(opt.Value)) || strings.EqualFold(s, opt.Label) {
			return opt.Value, nil
		}
	}
	return "", errors.UnknownTone(s)
}

// Values returns the raw tone values, useful for flag help text.
func Values() []string {
	out := make([]string, len(catalog))
	for i, opt := range catalog {
		out[i] = string(opt.Value)
	}
	return out
}
