package editor

import (
	"testing"

	"github.com/chewing-go/chewing/keymap"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLayout(t *testing.T) {
	Convey("Every named layout constructs a usable editor and keymap", t, func() {
		layouts := []Layout{
			Default, Hsu, Ibm, GinYieh, Et, Et26, Dvorak, DvorakHsu,
			DachenCp26, HanyuPinyinLayout, ThlPinyinLayout, Mps2PinyinLayout, Carpalx,
		}
		for _, l := range layouts {
			e := NewEditor(l)
			So(e, ShouldNotBeNil)
			So(e.IsEmpty(), ShouldBeTrue)
			k := NewKeymap(l)
			So(k, ShouldNotBeNil)
		}
	})

	Convey("DvorakHsu pairs the Hsu editor with the Dvorak keymap", t, func() {
		e := NewEditor(DvorakHsu)
		_, ok := e.(*HsuEditor)
		So(ok, ShouldBeTrue)
		So(NewKeymap(DvorakHsu), ShouldEqual, keymap.Dvorak)
	})
}
