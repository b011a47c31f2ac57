package keymap

// remapKeymap carries the user's physical key to the QWERTY position that
// historically carries the same Zhuyin symbol, then delegates to Identity
// for the K-index lookup. This is how DVORAK and CARPALX keyboards type
// the same Bopomofo layouts as QWERTY without the editors knowing anything
// about physical layouts.
type remapKeymap struct {
	toQwerty map[Keycode]Keycode
}

func (m *remapKeymap) Map(code Keycode) (KeyEvent, bool) {
	qwerty, ok := m.toQwerty[code]
	if !ok {
		return KeyEvent{}, false
	}
	ev, ok := Identity.Map(qwerty)
	if !ok {
		return KeyEvent{}, false
	}
	// Report back the physical code the caller actually pressed, not the
	// QWERTY position it was translated from.
	ev.Code = code
	return ev, ok
}

func newRemap(physicalRows [4][]Keycode) Keymap {
	m := &remapKeymap{toQwerty: make(map[Keycode]Keycode, 48)}
	qwertyRows := [4][]Keycode{
		qwertyOrder[0:12],
		qwertyOrder[12:24],
		qwertyOrder[24:36],
		qwertyOrder[36:48],
	}
	for row := range physicalRows {
		for i, physical := range physicalRows[row] {
			// A 0 entry is a key that sits at the same place as on
			// QWERTY (backslash, grave, space), so every one of the 48
			// codes maps.
			if physical == 0 {
				physical = qwertyRows[row][i]
			}
			m.toQwerty[physical] = qwertyRows[row][i]
		}
	}
	m.toQwerty[KeySpace] = KeySpace
	return m
}

// Dvorak is the remapping keymap for a Dvorak Simplified Keyboard: each
// physical Dvorak key maps to the QWERTY position carrying the same
// physical finger placement and thus the same Zhuyin symbol under the
// QWERTY-keyed layouts.
var Dvorak = newRemap([4][]Keycode{
	{Key1, Key2, Key3, Key4, Key5, Key6, Key7, Key8, Key9, Key0, KeyBracketLeft, KeyBracketRight},
	{KeyQuote, KeyComma, KeyPeriod, KeyP, KeyY, KeyF, KeyG, KeyC, KeyR, KeyL, KeySlash, KeyEqual},
	{KeyA, KeyO, KeyE, KeyU, KeyI, KeyD, KeyH, KeyT, KeyN, KeyS, KeyMinus, 0},
	{KeySemicolon, KeyQ, KeyJ, KeyK, KeyX, KeyB, KeyM, KeyW, KeyV, KeyZ, 0, 0},
})

// CarpalX is the remapping keymap for the Carpalx QGMLWB layout.
var CarpalX = newRemap([4][]Keycode{
	{Key1, Key2, Key3, Key4, Key5, Key6, Key7, Key8, Key9, Key0, KeyMinus, KeyEqual},
	{KeyQ, KeyG, KeyM, KeyL, KeyW, KeyB, KeyY, KeyU, KeyV, KeySemicolon, KeyBracketLeft, KeyBracketRight},
	{KeyD, KeyS, KeyT, KeyN, KeyR, KeyI, KeyA, KeyE, KeyO, KeyH, KeyQuote, 0},
	{KeyZ, KeyX, KeyC, KeyF, KeyJ, KeyK, KeyP, KeyComma, KeyPeriod, KeySlash, 0, 0},
})
