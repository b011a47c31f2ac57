package keymap

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestIdentity(t *testing.T) {
	Convey("Identity maps every physical keycode to its own row position", t, func() {
		for i, code := range qwertyOrder {
			ev, ok := Identity.Map(code)
			So(ok, ShouldBeTrue)
			So(ev.Index, ShouldEqual, K1+KeyIndex(i))
			So(ev.Code, ShouldEqual, code)
		}
	})

	Convey("Map is total over the 48 defined keycodes and rejects unknown codes", t, func() {
		_, ok := Identity.Map(Keycode(0))
		So(ok, ShouldBeFalse)
	})
}

func TestRemap(t *testing.T) {
	Convey("Dvorak carries the physical key to the QWERTY position with the same index", t, func() {
		ev, ok := Dvorak.Map(KeyA) // Dvorak 'A' sits where QWERTY 'A' sits
		So(ok, ShouldBeTrue)
		qwertyEv, _ := Identity.Map(KeyA)
		So(ev.Index, ShouldEqual, qwertyEv.Index)
		So(ev.Code, ShouldEqual, KeyA) // the physical code reported is what was pressed
	})

	Convey("CarpalX space still maps to the space index", t, func() {
		ev, ok := CarpalX.Map(KeySpace)
		So(ok, ShouldBeTrue)
		want, _ := Identity.Map(KeySpace)
		So(ev.Index, ShouldEqual, want.Index)
	})
}
