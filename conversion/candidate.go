package conversion

import (
	"github.com/chewing-go/chewing/bopomofo"
	"github.com/chewing-go/chewing/dict"
	"github.com/chewing-go/chewing/phrase"
)

// rSingle is the heavy divisor applied to single-character candidates'
// frequency (§4.5.2): it makes a multi-character phrase win over a
// single-character fallback unless the single character's frequency
// vastly outweighs it.
const rSingle = 512

// candidate is the best-scoring phrase found for one [i,j) span, along
// with its contribution to a cover's total score.
type candidate struct {
	phrase phrase.Phrase
	score  float64
}

// findCandidates computes, for every half-open span [i,j) that doesn't
// cross a break and has a dictionary (or fallback) phrase compatible
// with every overlapping selection, the single best-scoring candidate.
// The result is keyed by start position, then by end position.
func findCandidates(d dict.Dictionary, seq ChineseSequence) map[int]map[int]candidate {
	n := len(seq.Syllables)
	out := make(map[int]map[int]candidate)

	for i := 0; i < n; i++ {
		for j := i + 1; j <= n; j++ {
			if seq.hasBreakInside(i, j) || seq.crossesSelectionBoundary(i, j) {
				continue
			}
			p, ok := bestPhraseFor(d, seq, i, j)
			if !ok {
				continue
			}
			if out[i] == nil {
				out[i] = make(map[int]candidate)
			}
			out[i][j] = candidate{phrase: p, score: score(j-i, p.Freq)}
		}
	}
	return out
}

// bestPhraseFor returns the highest-freq phrase for syllables[i:j] that
// is compatible with every selection overlapping the span, falling back
// to a synthesized single-syllable entry when the dictionary has nothing
// for a length-1 span (§4.5.5).
func bestPhraseFor(d dict.Dictionary, seq ChineseSequence, i, j int) (phrase.Phrase, bool) {
	candidates := d.LookupPhrase(seq.Syllables[i:j])
	candidates = filterSelectionCompatible(seq.Selections, i, j, candidates)

	if len(candidates) == 0 {
		if j-i == 1 {
			return fallbackSyllablePhrase(seq.Syllables[i]), true
		}
		return phrase.Phrase{}, false
	}

	best := candidates[0]
	for _, p := range candidates[1:] {
		if p.Freq > best.Freq {
			best = p
		}
	}
	return best, true
}

// filterSelectionCompatible drops phrases whose text disagrees with a
// user selection that lies fully inside [i,j) (§4.5.1 step 3).
func filterSelectionCompatible(selections []Interval, i, j int, candidates []phrase.Phrase) []phrase.Phrase {
	var relevant []Interval
	for _, sel := range selections {
		if i <= sel.Start && j >= sel.End {
			relevant = append(relevant, sel)
		}
	}
	if len(relevant) == 0 {
		return candidates
	}

	out := candidates[:0:0]
	for _, p := range candidates {
		text := []rune(p.Text)
		ok := true
		for _, sel := range relevant {
			lo, hi := sel.Start-i, sel.End-i
			if lo < 0 || hi > len(text) || string(text[lo:hi]) != sel.Text {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, p)
		}
	}
	return out
}

// fallbackSyllablePhrase synthesizes a single-character "phrase" from a
// syllable's own Bopomofo rendering, guaranteeing every position has at
// least a length-1 candidate even when the dictionary lacks an entry.
func fallbackSyllablePhrase(s bopomofo.Syllable) phrase.Phrase {
	return phrase.New(s.String(), 1)
}

// score implements §4.5.2: length(j-i) * max(1, freq/r(len)).
func score(length, freq int) float64 {
	r := 1.0
	if length == 1 {
		r = rSingle
	}
	weighted := float64(freq) / r
	if weighted < 1 {
		weighted = 1
	}
	return float64(length) * weighted
}
