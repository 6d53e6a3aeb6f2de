package reply

import (
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Metrics are the counts shown under an editor.
type Metrics struct {
	Characters int
	Words      int
}

// Measure computes both counts for text.
func Measure(text string) Metrics {
	return Metrics{
		Characters: CharacterCount(text),
		Words:      WordCount(text),
	}
}

// CharacterCount is the number of characters (runes) in text, whitespace
// included.
func CharacterCount(text string) int {
	return utf8.RuneCountInString(text)
}

// WordCount is the number of maximal runs of non-whitespace in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// Preview returns at most n user-perceived characters of text, with "..."
// appended when it was cut. Used to keep emails out of logs and titles.
func Preview(text string, n int) string {
	if n <= 0 {
		return ""
	}
	var b strings.Builder
	g := uniseg.NewGraphemes(text)
	count := 0
	for g.Next() {
		if count == n {
			return b.String() + "..."
		}
		b.WriteString(g.Str())
		count++
	}
	return b.String()
}
