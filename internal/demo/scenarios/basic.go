// Package scenarios contains built-in demo scenarios for emailwriter.
package scenarios

import (
	"time"

	"github.com/zhubert/emailwriter/internal/demo"
	"github.com/zhubert/emailwriter/internal/keys"
	"github.com/zhubert/emailwriter/internal/tone"
)

const sampleEmail = `Hi Sam,

Could you send me the Q3 report by Friday? The board meeting moved up and
I'd like to review the numbers beforehand.

Thanks,
Dana`

const sampleReply = `Hi Dana,

Absolutely, I'll have the Q3 report in your inbox by Thursday afternoon so
you have time to go through it before the board meeting.

Let me know if you'd like a quick walkthrough of the numbers.

Best,
Sam`

// Overview walks through the whole workflow:
// - Pasting the original email
// - Picking a tone
// - Generating, editing and copying the reply
// - Downloading it and starting over
var Overview = &demo.Scenario{
	Name:        "overview",
	Description: "Paste an email, pick a tone, generate, copy and download",
	Width:       120,
	Height:      40,
	Steps: []demo.Step{
		demo.Annotate("Paste the email you received"),
		demo.Paste(sampleEmail),
		demo.Wait(time.Second),

		demo.Annotate("Choose how the reply should sound"),
		demo.SelectTone(tone.Friendly),
		demo.Wait(500 * time.Millisecond),

		demo.Annotate("ctrl+g asks the reply service for a draft"),
		demo.Reply(sampleReply),
		demo.Wait(2 * time.Second),

		demo.Annotate("The draft is editable"),
		demo.KeyWithDesc(keys.Tab, "Focus the reply"),
		demo.Type(" :)"),
		demo.Wait(time.Second),

		demo.Annotate("Copy it to the clipboard"),
		demo.KeyWithDesc(keys.CtrlY, "Copy"),
		demo.Capture(),
		demo.Wait(time.Second),

		demo.KeyWithDesc(keys.CtrlS, "Download"),
		demo.Capture(),
		demo.Wait(time.Second),

		demo.Annotate("ctrl+r starts over"),
		demo.KeyWithDesc(keys.CtrlR, "Reset"),
		demo.Capture(),
		demo.Wait(time.Second),
	},
}

// Fallback shows what happens when the reply service is unreachable.
var Fallback = &demo.Scenario{
	Name:        "fallback",
	Description: "Reply service down: the fallback template is offered",
	Width:       120,
	Height:      40,
	Steps: []demo.Step{
		demo.Annotate("Generating without a tone is refused"),
		demo.Paste(sampleEmail),
		demo.Reply(sampleReply),
		demo.Wait(time.Second),

		demo.SelectTone(tone.Professional),
		demo.Annotate("The service is down, so a template is offered instead"),
		demo.Failure(),
		demo.Wait(2 * time.Second),
	},
}

// All returns every built-in scenario.
func All() []*demo.Scenario {
	return []*demo.Scenario{
		Overview,
		Fallback,
	}
}

// Get returns the scenario with the given name, or nil.
func Get(name string) *demo.Scenario {
	for _, s := range All() {
		if s.Name == name {
			return s
		}
	}
	return nil
}
