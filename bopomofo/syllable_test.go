package bopomofo

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSyllableRoundTrip(t *testing.T) {
	Convey("Every Bopomofo combination round-trips through Encode/Decode", t, func() {
		for _, i := range append([]Symbol{{}}, Initials...) {
			for _, m := range append([]Symbol{{}}, Medials...) {
				for _, r := range append([]Symbol{{}}, Rimes...) {
					for _, tn := range append([]Symbol{{}}, Tones...) {
						var s Syllable
						if !i.IsZero() {
							s = s.Update(i)
						}
						if !m.IsZero() {
							s = s.Update(m)
						}
						if !r.IsZero() {
							s = s.Update(r)
						}
						if !tn.IsZero() {
							s = s.Update(tn)
						}
						got, err := Decode(s.Encode())
						So(err, ShouldBeNil)
						So(got, ShouldResemble, s)
					}
				}
			}
		}
	})

	Convey("Every legal 16-bit code round-trips through Decode/Encode", t, func() {
		for iv := 0; iv <= 21; iv++ {
			for mv := 0; mv <= 3; mv++ {
				for rv := 0; rv <= 13; rv++ {
					for tv := 0; tv <= 4; tv++ {
						x := uint16(iv)<<9 | uint16(mv)<<7 | uint16(rv)<<3 | uint16(tv)
						if x == 0 {
							continue // the all-zero code is the empty syllable, handled separately below
						}
						s, err := Decode(x)
						So(err, ShouldBeNil)
						So(s.Encode(), ShouldEqual, x)
					}
				}
			}
		}
	})

	Convey("The empty syllable is distinguishable and round-trips", t, func() {
		var s Syllable
		So(s.IsEmpty(), ShouldBeTrue)
		So(s.Encode(), ShouldEqual, uint16(0))
		got, err := Decode(0)
		So(err, ShouldBeNil)
		So(got.IsEmpty(), ShouldBeTrue)
	})
}

func TestSyllableMutation(t *testing.T) {
	Convey("Update replaces only the matching kind slot", t, func() {
		s := Syllable{}.Update(X).Update(I).Update(EN).Update(Tone1)
		So(s.String(), ShouldEqual, "ㄒㄧㄣ")

		s2 := s.Update(Q)
		So(s2.String(), ShouldEqual, "ㄑㄧㄣ")
	})

	Convey("Pop removes in reverse display order", t, func() {
		s := Syllable{}.Update(X).Update(I).Update(EN).Update(Tone2)
		s, k, ok := s.Pop()
		So(ok, ShouldBeTrue)
		So(k, ShouldEqual, Tone)
		s, k, ok = s.Pop()
		So(ok, ShouldBeTrue)
		So(k, ShouldEqual, Rime)
		s, k, ok = s.Pop()
		So(ok, ShouldBeTrue)
		So(k, ShouldEqual, Medial)
		s, k, ok = s.Pop()
		So(ok, ShouldBeTrue)
		So(k, ShouldEqual, Initial)
		_, _, ok = s.Pop()
		So(ok, ShouldBeFalse)
	})

	Convey("ClearAll resets every slot", t, func() {
		s := Syllable{}.Update(B).Update(U).Update(ANG).Update(Tone4)
		s = s.ClearAll()
		So(s.IsEmpty(), ShouldBeTrue)
	})
}

func TestSequenceBytes(t *testing.T) {
	Convey("Sequence bytes round-trip", t, func() {
		seq := Sequence{
			Syllable{}.Update(G).Update(U).Update(O).Update(Tone2),
			Syllable{}.Update(M).Update(I).Update(EN).Update(Tone2),
		}
		b := seq.EncodeBytes()
		So(len(b), ShouldEqual, 4)
		got, err := DecodeSequenceBytes(b)
		So(err, ShouldBeNil)
		So(got, ShouldResemble, seq)
	})
}

func TestParseSymbol(t *testing.T) {
	Convey("ParseSymbol finds known runes and rejects unknown ones", t, func() {
		s, err := ParseSymbol('ㄅ')
		So(err, ShouldBeNil)
		So(s, ShouldResemble, B)

		_, err = ParseSymbol('x')
		So(err, ShouldNotBeNil)
	})
}
