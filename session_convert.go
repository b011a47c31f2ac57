package chewing

import (
	"github.com/chewing-go/chewing/conversion"
)

// Convert computes the single best-scoring phrase cover of seq (§4.5.3,
// §6.4 convert).
func Convert(d Dictionary, seq ChineseSequence) []Interval {
	return conversion.Convert(d, seq)
}

// ConvertNext returns the (k mod K)-th complete cover of seq, ordered by
// total score descending, where K is the number of distinct covers
// (§4.5.4, §6.4 convert_next). ConvertNext(d, seq, 0) == Convert(d, seq).
func ConvertNext(d Dictionary, seq ChineseSequence, k int) []Interval {
	return conversion.ConvertNext(d, seq, k)
}
