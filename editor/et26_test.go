package editor

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestEt26Editor(t *testing.T) {
	Convey("A lone p rewrites to the rime OU at commit time", t, func() {
		e := NewEt26()
		b := pressLetters(e, "p")
		So(b, ShouldEqual, Absorb)
		b = pressLetters(e, " ")
		So(b, ShouldEqual, Commit)
		So(e.Read().String(), ShouldEqual, "ㄡ")
	})

	Convey("Pressing p twice reaches initial P plus rime OU", t, func() {
		e := NewEt26()
		pressLetters(e, "p")
		b := pressLetters(e, "p")
		So(b, ShouldEqual, Absorb)
		b = pressLetters(e, " ")
		So(b, ShouldEqual, Commit)
		So(e.Read().String(), ShouldEqual, "ㄆㄡ")
	})

	Convey("A lone g (initial J) retracts to ZH at commit time", t, func() {
		e := NewEt26()
		pressLetters(e, "g")
		b := pressLetters(e, " ")
		So(b, ShouldEqual, Commit)
		So(e.Read().String(), ShouldEqual, "ㄓ")
	})

	Convey("A lone c (initial X) retracts to SH at commit time", t, func() {
		e := NewEt26()
		pressLetters(e, "c")
		b := pressLetters(e, " ")
		So(b, ShouldEqual, Commit)
		So(e.Read().String(), ShouldEqual, "ㄕ")
	})

	Convey("g u k (J + IU medial + tone4) commits to ㄐㄩˋ, not ㄍㄨˋ", t, func() {
		e := NewEt26()
		pressLetters(e, "g")
		pressLetters(e, "u")
		b := pressLetters(e, "k")
		So(b, ShouldEqual, Commit)
		So(e.Read().String(), ShouldEqual, "ㄐㄩˋ")
	})

	Convey("g x k (J + U medial) retracts the initial to ZH, giving ㄓㄨˋ", t, func() {
		e := NewEt26()
		pressLetters(e, "g")
		pressLetters(e, "x")
		b := pressLetters(e, "k")
		So(b, ShouldEqual, Commit)
		So(e.Read().String(), ShouldEqual, "ㄓㄨˋ")
	})

	Convey("v u (G palatalizes to Q before a front medial) gives ㄑㄩ", t, func() {
		e := NewEt26()
		pressLetters(e, "v")
		b := pressLetters(e, "u")
		So(b, ShouldEqual, Absorb)
		So(e.Read().String(), ShouldEqual, "ㄑㄩ")
	})

	Convey("v x (G stays G before ㄨ, which doesn't palatalize) gives ㄍㄨ", t, func() {
		e := NewEt26()
		pressLetters(e, "v")
		b := pressLetters(e, "x")
		So(b, ShouldEqual, Absorb)
		So(e.Read().String(), ShouldEqual, "ㄍㄨ")
	})

	Convey("y (initial CH) combines with a rime directly, unrewritten", t, func() {
		e := NewEt26()
		pressLetters(e, "y")
		b := pressLetters(e, "a")
		So(b, ShouldEqual, Absorb)
		So(e.Read().String(), ShouldEqual, "ㄔㄚ")
	})

	Convey("Space on an empty buffer is a KeyError", t, func() {
		e := NewEt26()
		b := pressLetters(e, " ")
		So(b, ShouldEqual, KeyError)
	})
}
