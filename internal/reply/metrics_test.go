package reply

import (
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func TestWordCount(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"   ", 0},
		{"hello", 1},
		{"  hello   world  ", 2},
		{"line one\nline two\tand three", 6},
		{"Dear [Recipient],\n\nThank you.", 4},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := WordCount(tt.text); got != tt.want {
				t.Errorf("WordCount(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestCharacterCount(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"  hello   world  ", 17},
		{"a\nb", 3},
		{"café", 4},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := CharacterCount(tt.text); got != tt.want {
				t.Errorf("CharacterCount(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestWordCount_Property(t *testing.T) {
	word := rapid.StringMatching(`[a-zA-Z0-9,.!?]{1,12}`)
	space := rapid.StringMatching(`[ \t\n]{1,4}`)

	rapid.Check(t, func(t *rapid.T) {
		words := rapid.SliceOfN(word, 0, 20).Draw(t, "words")
		lead := rapid.StringMatching(`[ \t\n]{0,3}`).Draw(t, "lead")
		trail := rapid.StringMatching(`[ \t\n]{0,3}`).Draw(t, "trail")

		var b strings.Builder
		b.WriteString(lead)
		for i, w := range words {
			if i > 0 {
				b.WriteString(space.Draw(t, "sep"))
			}
			b.WriteString(w)
		}
		b.WriteString(trail)

		if got := WordCount(b.String()); got != len(words) {
			t.Fatalf("WordCount(%q) = %d, want %d", b.String(), got, len(words))
		}
	})
}

func TestMeasure(t *testing.T) {
	m := Measure("Sure! Attaching the report now.")
	if m.Characters != 31 || m.Words != 5 {
		t.Errorf("Measure() = %+v, want {31 5}", m)
	}
}

func TestPreview(t *testing.T) {
	tests := []struct {
		name string
		text string
		n    int
		want string
	}{
		{"short", "Hi", 50, "Hi"},
		{"exact", "abcde", 5, "abcde"},
		{"cut", "abcdefgh", 3, "abc..."},
		{"graphemes", "👍🏽👍🏽👍🏽", 2, "👍🏽👍🏽..."},
		{"zero", "abc", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Preview(tt.text, tt.n); got != tt.want {
				t.Errorf("Preview(%q, %d) = %q, want %q", tt.text, tt.n, got, tt.want)
			}
		})
	}
}
