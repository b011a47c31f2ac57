package editor

import (
	"testing"

	"github.com/chewing-go/chewing/keymap"
	. "github.com/smartystreets/goconvey/convey"
)

func pressLetters(t Editor, letters string) Behavior {
	var last Behavior
	for _, r := range letters {
		ev, ok := keymap.Identity.Map(letterKeycode(r))
		if !ok {
			panic("bad test letter")
		}
		last = t.KeyPress(ev)
	}
	return last
}

// letterKeycode maps a mnemonic rune used in tests to its QWERTY physical
// Keycode, mirroring the table editor.letterIndex builds from.
func letterKeycode(r rune) keymap.Keycode {
	switch r {
	case '1':
		return keymap.Key1
	case '2':
		return keymap.Key2
	case '3':
		return keymap.Key3
	case '4':
		return keymap.Key4
	case '5':
		return keymap.Key5
	case '6':
		return keymap.Key6
	case '7':
		return keymap.Key7
	case '8':
		return keymap.Key8
	case '9':
		return keymap.Key9
	case '0':
		return keymap.Key0
	case ' ':
		return keymap.KeySpace
	case '`':
		return keymap.KeyGrave
	}
	codes := map[rune]keymap.Keycode{
		'q': keymap.KeyQ, 'w': keymap.KeyW, 'e': keymap.KeyE, 'r': keymap.KeyR, 't': keymap.KeyT,
		'y': keymap.KeyY, 'u': keymap.KeyU, 'i': keymap.KeyI, 'o': keymap.KeyO, 'p': keymap.KeyP,
		'a': keymap.KeyA, 's': keymap.KeyS, 'd': keymap.KeyD, 'f': keymap.KeyF, 'g': keymap.KeyG,
		'h': keymap.KeyH, 'j': keymap.KeyJ, 'k': keymap.KeyK, 'l': keymap.KeyL,
		'z': keymap.KeyZ, 'x': keymap.KeyX, 'c': keymap.KeyC, 'v': keymap.KeyV, 'b': keymap.KeyB,
		'n': keymap.KeyN, 'm': keymap.KeyM,
	}
	if c, ok := codes[r]; ok {
		return c
	}
	panic("letterKeycode: unmapped test rune")
}

func TestStandardEditor(t *testing.T) {
	Convey("Pressing only space on an empty buffer is a KeyError", t, func() {
		e := NewStandard()
		b := pressLetters(e, " ")
		So(b, ShouldEqual, KeyError)
		So(e.IsEmpty(), ShouldBeTrue)
	})

	Convey("A full key sequence commits a non-empty syllable", t, func() {
		e := NewStandard()
		// G U O + tone2 ("6") -> ㄍㄨㄛˊ
		b := pressLetters(e, "e")
		So(b, ShouldEqual, Absorb)
		b = pressLetters(e, "j")
		So(b, ShouldEqual, Absorb)
		b = pressLetters(e, "i")
		So(b, ShouldEqual, Absorb)
		b = pressLetters(e, "6")
		So(b, ShouldEqual, Commit)
		So(e.Read().String(), ShouldEqual, "ㄍㄨㄛˊ")
	})

	Convey("A non-tone key after a tone drops the tone before writing", t, func() {
		e := NewStandard()
		pressLetters(e, "e6") // G + tone2
		pressLetters(e, "j")  // U: should drop the tone
		So(e.Read().HasToneMark(), ShouldBeFalse)
	})

	Convey("Backtick opens the symbol table without altering the buffer", t, func() {
		e := NewStandard()
		b := pressLetters(e, "`")
		So(b, ShouldEqual, OpenSymbolTable)
		So(e.IsEmpty(), ShouldBeTrue)
	})
}
