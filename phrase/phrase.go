// Package phrase defines the Phrase value shared by every dictionary
// implementation and by the converter.
package phrase

import "time"

// Phrase is a single dictionary entry: a chunk of text with a usage
// frequency and, for user-dictionary entries, a last-used timestamp.
type Phrase struct {
	Text     string
	Freq     int
	LastUsed time.Time
}

// New constructs a Phrase with no last-used time (system-dictionary
// entries never carry one).
func New(text string, freq int) Phrase {
	return Phrase{Text: text, Freq: freq}
}

// Len reports the phrase's length in runes, the unit the converter scores
// phrases by.
func (p Phrase) Len() int {
	n := 0
	for range p.Text {
		n++
	}
	return n
}

// Less orders phrases by the layered-dictionary tie-break rule used for
// "no sort_id" rows: freq descending, then text descending.
func Less(a, b Phrase) bool {
	if a.Freq != b.Freq {
		return a.Freq > b.Freq
	}
	return a.Text > b.Text
}
