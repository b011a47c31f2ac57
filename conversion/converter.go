package conversion

import (
	"sort"

	"github.com/chewing-go/chewing/dict"
)

// Convert computes the single best-scoring cover of seq (§4.5.3). It is
// equivalent to ConvertNext(d, seq, 0) but takes the cheaper DP path
// instead of enumerating every alternative.
func Convert(d dict.Dictionary, seq ChineseSequence) []Interval {
	n := len(seq.Syllables)
	if n == 0 {
		return nil
	}
	candidates := findCandidates(d, seq)
	return bestCover(n, candidates)
}

// ConvertNext returns the (next mod K)-th complete cover of seq, ordered
// by total score descending (§4.5.4). next=0 is the same cover Convert
// returns.
func ConvertNext(d dict.Dictionary, seq ChineseSequence, next int) []Interval {
	n := len(seq.Syllables)
	if n == 0 {
		return nil
	}
	candidates := findCandidates(d, seq)
	covers := allCovers(n, candidates)
	if len(covers) == 0 {
		return nil
	}
	sortCovers(covers)
	return covers[next%len(covers)].intervals
}

// bestCover runs the best[] DP of §4.5.3 with back-pointers, then
// reconstructs the interval list in increasing start order.
func bestCover(n int, candidates map[int]map[int]candidate) []Interval {
	best := make([]float64, n+1)
	src := make([]int, n+1)
	chosen := make([]candidate, n+1)
	for t := 1; t <= n; t++ {
		best[t] = -1
		src[t] = -1
	}

	for t := 1; t <= n; t++ {
		for s := 0; s < t; s++ {
			c, ok := candidates[s][t]
			if !ok {
				continue
			}
			v := best[s] + c.score
			if v > best[t] {
				best[t] = v
				src[t] = s
				chosen[t] = c
			}
		}
	}

	var out []Interval
	for t := n; t > 0; {
		s := src[t]
		out = append(out, Interval{Start: s, End: t, Text: chosen[t].phrase.Text})
		t = s
	}
	for l, r := 0, len(out)-1; l < r; l, r = l+1, r-1 {
		out[l], out[r] = out[r], out[l]
	}
	return out
}

type cover struct {
	intervals   []Interval
	score       float64
	phraseCount int
}

// allCovers enumerates every complete cover of [0,n) via memoized
// recursion: coversFrom(i) is the set of ways to cover [i,n).
func allCovers(n int, candidates map[int]map[int]candidate) []cover {
	memo := make(map[int][]cover)
	var coversFrom func(i int) []cover
	coversFrom = func(i int) []cover {
		if i == n {
			return []cover{{}}
		}
		if c, ok := memo[i]; ok {
			return c
		}
		var out []cover
		ends := make([]int, 0, len(candidates[i]))
		for j := range candidates[i] {
			ends = append(ends, j)
		}
		sort.Ints(ends)
		for _, j := range ends {
			c := candidates[i][j]
			iv := Interval{Start: i, End: j, Text: c.phrase.Text}
			for _, tail := range coversFrom(j) {
				combined := cover{
					intervals:   append([]Interval{iv}, tail.intervals...),
					score:       c.score + tail.score,
					phraseCount: tail.phraseCount + 1,
				}
				out = append(out, combined)
			}
		}
		memo[i] = out
		return out
	}
	return coversFrom(0)
}

// sortCovers orders covers by total score descending, then by phrase
// count ascending (the supplemented symbol-priority tie-break: fewer
// distinct phrases wins), then by lexicographic interval sequence.
func sortCovers(covers []cover) {
	sort.SliceStable(covers, func(a, b int) bool {
		ca, cb := covers[a], covers[b]
		if ca.score != cb.score {
			return ca.score > cb.score
		}
		if ca.phraseCount != cb.phraseCount {
			return ca.phraseCount < cb.phraseCount
		}
		return lexLess(ca.intervals, cb.intervals)
	})
}

func lexLess(a, b []Interval) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i].Start != b[i].Start {
			return a[i].Start < b[i].Start
		}
		if a[i].End != b[i].End {
			return a[i].End < b[i].End
		}
	}
	return len(a) < len(b)
}
