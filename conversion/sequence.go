// Package conversion implements the phrase converter (§4.5): turning a
// committed run of Bopomofo syllables into an ordered, gap-free list of
// phrase intervals by querying a dictionary and solving for the
// highest-scoring cover.
package conversion

import (
	"github.com/mattn/go-runewidth"

	"github.com/chewing-go/chewing/bopomofo"
)

// Interval is a half-open span of syllable positions paired with the
// phrase text chosen to cover it.
type Interval struct {
	Start, End int
	Text       string
}

// Len reports the number of syllable positions the interval spans.
func (iv Interval) Len() int { return iv.End - iv.Start }

// Contains reports whether iv fully contains other, per §3's
// contains(a,b) = a.start<=b.start && a.end>=b.end.
func (iv Interval) Contains(other Interval) bool {
	return iv.Start <= other.Start && iv.End >= other.End
}

// DisplayWidth reports the on-screen column count of the interval's
// text, using East-Asian width rules: Bopomofo and Han text renders
// full-width. A session layer laying out a candidate list uses this to
// size its window.
func (iv Interval) DisplayWidth() int {
	return runewidth.StringWidth(iv.Text)
}

// ChineseSequence is the session's in-progress run of committed
// syllables plus the constraints a conversion must respect.
type ChineseSequence struct {
	Syllables  bopomofo.Sequence
	Selections []Interval // user-fixed spans; Text holds the fixed phrase
	Breaks     []int      // positions no interval may span
}

func (s ChineseSequence) hasBreakInside(i, j int) bool {
	for _, b := range s.Breaks {
		if i < b && b < j {
			return true
		}
	}
	return false
}

// crossesSelectionBoundary reports whether [i,j) straddles a selection
// without fully containing it — such a span could never be completed
// into a cover that satisfies the selection, so it is rejected exactly
// like a span crossing a break.
func (s ChineseSequence) crossesSelectionBoundary(i, j int) bool {
	for _, sel := range s.Selections {
		contains := i <= sel.Start && j >= sel.End
		overlaps := i < sel.End && j > sel.Start
		if overlaps && !contains {
			return true
		}
	}
	return false
}
