package editor

import "github.com/chewing-go/chewing/keymap"

// letterIndex resolves the layout-independent KeyIndex that the QWERTY
// letter/digit/punctuation rune carries under the Identity keymap. Every
// editor table below is keyed by KeyIndex (never by a raw physical
// keycode), matching the design's requirement that editors are
// layout-independent; the QWERTY letters here are purely a mnemonic for
// writing the tables, since that's how every Hsu/ET26/Pinyin reference
// describes its own key assignments.
var letterIndex = buildLetterIndex()

func buildLetterIndex() map[rune]keymap.KeyIndex {
	runes := []rune{
		'1', '2', '3', '4', '5', '6', '7', '8', '9', '0', '-', '=',
		'q', 'w', 'e', 'r', 't', 'y', 'u', 'i', 'o', 'p', '[', ']',
		'a', 's', 'd', 'f', 'g', 'h', 'j', 'k', 'l', ';', '\'', '\\',
		'z', 'x', 'c', 'v', 'b', 'n', 'm', ',', '.', '/', '`', ' ',
	}
	codes := []keymap.Keycode{
		keymap.Key1, keymap.Key2, keymap.Key3, keymap.Key4, keymap.Key5, keymap.Key6,
		keymap.Key7, keymap.Key8, keymap.Key9, keymap.Key0, keymap.KeyMinus, keymap.KeyEqual,
		keymap.KeyQ, keymap.KeyW, keymap.KeyE, keymap.KeyR, keymap.KeyT, keymap.KeyY,
		keymap.KeyU, keymap.KeyI, keymap.KeyO, keymap.KeyP, keymap.KeyBracketLeft, keymap.KeyBracketRight,
		keymap.KeyA, keymap.KeyS, keymap.KeyD, keymap.KeyF, keymap.KeyG, keymap.KeyH,
		keymap.KeyJ, keymap.KeyK, keymap.KeyL, keymap.KeySemicolon, keymap.KeyQuote, keymap.KeyBackslash,
		keymap.KeyZ, keymap.KeyX, keymap.KeyC, keymap.KeyV, keymap.KeyB, keymap.KeyN,
		keymap.KeyM, keymap.KeyComma, keymap.KeyPeriod, keymap.KeySlash, keymap.KeyGrave, keymap.KeySpace,
	}
	m := make(map[rune]keymap.KeyIndex, len(runes))
	for i, r := range runes {
		ev, ok := keymap.Identity.Map(codes[i])
		if !ok {
			panic("editor: incomplete QWERTY mnemonic table")
		}
		m[r] = ev.Index
	}
	return m
}

// idx is shorthand used when building the per-layout tables below, e.g.
// idx('j') is the KeyIndex that the 'j' key carries.
func idx(r rune) keymap.KeyIndex {
	ki, ok := letterIndex[r]
	if !ok {
		panic("editor: unmapped mnemonic letter")
	}
	return ki
}
