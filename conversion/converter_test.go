package conversion

import (
	"testing"

	"github.com/chewing-go/chewing/bopomofo"
	"github.com/chewing-go/chewing/dict"
	"github.com/chewing-go/chewing/phrase"
	. "github.com/smartystreets/goconvey/convey"
)

func syl(parts ...bopomofo.Symbol) bopomofo.Syllable {
	var s bopomofo.Syllable
	for _, p := range parts {
		s = s.Update(p)
	}
	return s
}

// scenarioDictionary reproduces the §8 worked-example dictionary:
// 國(1) 民(1) 大(1) 會(1) 代(1) 表(1)
// 國民(200) 大會(200) 代表(200) 戴錶(100)
// 心(1) 庫音(300) 新酷音(200)
func scenarioDictionary(t *testing.T) dict.Dictionary {
	guo2 := syl(bopomofo.G, bopomofo.U, bopomofo.O, bopomofo.Tone2)
	min2 := syl(bopomofo.M, bopomofo.I, bopomofo.EN, bopomofo.Tone2)
	da4 := syl(bopomofo.D, bopomofo.A, bopomofo.Tone4)
	hui4 := syl(bopomofo.H, bopomofo.U, bopomofo.EI, bopomofo.Tone4)
	dai4 := syl(bopomofo.D, bopomofo.AI, bopomofo.Tone4)
	biao3 := syl(bopomofo.B, bopomofo.I, bopomofo.AU, bopomofo.Tone3)

	xin1 := syl(bopomofo.X, bopomofo.I, bopomofo.EN)
	ku4 := syl(bopomofo.K, bopomofo.U, bopomofo.Tone4)
	yin1 := syl(bopomofo.I, bopomofo.EN)

	b := dict.NewTrieDictionaryBuilder()
	must := func(err error) {
		if err != nil {
			t.Fatalf("fixture insert: %v", err)
		}
	}
	must(b.Insert(bopomofo.Sequence{guo2}, phrase.New("國", 1)))
	must(b.Insert(bopomofo.Sequence{min2}, phrase.New("民", 1)))
	must(b.Insert(bopomofo.Sequence{da4}, phrase.New("大", 1)))
	must(b.Insert(bopomofo.Sequence{hui4}, phrase.New("會", 1)))
	must(b.Insert(bopomofo.Sequence{dai4}, phrase.New("代", 1)))
	must(b.Insert(bopomofo.Sequence{biao3}, phrase.New("表", 1)))
	must(b.Insert(bopomofo.Sequence{guo2, min2}, phrase.New("國民", 200)))
	must(b.Insert(bopomofo.Sequence{da4, hui4}, phrase.New("大會", 200)))
	must(b.Insert(bopomofo.Sequence{dai4, biao3}, phrase.New("代表", 200)))
	must(b.Insert(bopomofo.Sequence{dai4, biao3}, phrase.New("戴錶", 100)))
	must(b.Insert(bopomofo.Sequence{xin1}, phrase.New("心", 1)))
	must(b.Insert(bopomofo.Sequence{ku4, yin1}, phrase.New("庫音", 300)))
	must(b.Insert(bopomofo.Sequence{xin1, ku4, yin1}, phrase.New("新酷音", 200)))
	return b.Build()
}

func scenarioSyllables() bopomofo.Sequence {
	return bopomofo.Sequence{
		syl(bopomofo.G, bopomofo.U, bopomofo.O, bopomofo.Tone2),
		syl(bopomofo.M, bopomofo.I, bopomofo.EN, bopomofo.Tone2),
		syl(bopomofo.D, bopomofo.A, bopomofo.Tone4),
		syl(bopomofo.H, bopomofo.U, bopomofo.EI, bopomofo.Tone4),
		syl(bopomofo.D, bopomofo.AI, bopomofo.Tone4),
		syl(bopomofo.B, bopomofo.I, bopomofo.AU, bopomofo.Tone3),
	}
}

func texts(intervals []Interval) []string {
	var out []string
	for _, iv := range intervals {
		out = append(out, iv.Text)
	}
	return out
}

func TestConvert(t *testing.T) {
	d := scenarioDictionary(t)

	Convey("An empty sequence converts to an empty cover", t, func() {
		got := Convert(d, ChineseSequence{})
		So(got, ShouldBeEmpty)
	})

	Convey("The simple scenario picks the two-character phrases", t, func() {
		seq := ChineseSequence{Syllables: scenarioSyllables()}
		got := Convert(d, seq)
		So(texts(got), ShouldResemble, []string{"國民", "大會", "代表"})
		So(got[0], ShouldResemble, Interval{Start: 0, End: 2, Text: "國民"})
		So(got[1], ShouldResemble, Interval{Start: 2, End: 4, Text: "大會"})
		So(got[2], ShouldResemble, Interval{Start: 4, End: 6, Text: "代表"})
	})

	Convey("Breaks split the cover at the forbidden positions", t, func() {
		seq := ChineseSequence{Syllables: scenarioSyllables(), Breaks: []int{1, 5}}
		got := Convert(d, seq)
		So(texts(got), ShouldResemble, []string{"國", "民", "大會", "代", "表"})
		for _, b := range seq.Breaks {
			for _, iv := range got {
				So(iv.Start < b && b < iv.End, ShouldBeFalse)
			}
		}
	})

	Convey("A selection matching the dictionary's alternate phrase wins", t, func() {
		seq := ChineseSequence{
			Syllables:  scenarioSyllables(),
			Selections: []Interval{{Start: 4, End: 6, Text: "戴錶"}},
		}
		got := Convert(d, seq)
		So(texts(got), ShouldResemble, []string{"國民", "大會", "戴錶"})
	})

	Convey("A selection covering a substring of a longer phrase is honored", t, func() {
		seq := ChineseSequence{
			Syllables: bopomofo.Sequence{
				syl(bopomofo.X, bopomofo.I, bopomofo.EN),
				syl(bopomofo.K, bopomofo.U, bopomofo.Tone4),
				syl(bopomofo.I, bopomofo.EN),
			},
			Selections: []Interval{{Start: 1, End: 3, Text: "酷音"}},
		}
		got := Convert(d, seq)
		So(texts(got), ShouldResemble, []string{"新酷音"})
	})

	Convey("convert_next cycles through alternatives by descending score", t, func() {
		seq := ChineseSequence{Syllables: scenarioSyllables()}

		want := [][]string{
			{"國民", "大會", "代表"},
			{"國", "民", "大會", "代表"},
			{"國民", "大", "會", "代表"},
			{"國民", "大會", "代", "表"},
			{"國", "民", "大", "會", "代表"},
		}
		for next, w := range want {
			got := ConvertNext(d, seq, next)
			So(texts(got), ShouldResemble, w)
		}

		// convert_next(S, 0) must equal convert(S).
		So(ConvertNext(d, seq, 0), ShouldResemble, Convert(d, seq))

		// Cycling wraps modulo the total number of complete covers.
		all := allCovers(len(seq.Syllables), findCandidates(d, seq))
		k := len(all)
		So(ConvertNext(d, seq, k), ShouldResemble, ConvertNext(d, seq, 0))
		So(ConvertNext(d, seq, k+2), ShouldResemble, ConvertNext(d, seq, 2))
	})
}

func TestIntervalDisplayWidth(t *testing.T) {
	Convey("Han text reports full-width columns", t, func() {
		iv := Interval{Start: 0, End: 2, Text: "國民"}
		So(iv.DisplayWidth(), ShouldEqual, 4)
	})
}
