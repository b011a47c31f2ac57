// Package keymap maps a physical Latin keycode to a layout-independent key
// identity. It defines two alphabets: the 48 physical keycodes of a
// US/QWERTY keyboard, and the 48 key indices K1..K48 arranged in rows as on
// the Dachen keyboard (§4.1 of the design).
package keymap

import "fmt"

// KeyIndex names one of the 48 physical key positions on the Dachen
// reference keyboard, independent of what physical keycode produced it.
type KeyIndex int

const (
	K1 KeyIndex = iota + 1
	K2
	K3
	K4
	K5
	K6
	K7
	K8
	K9
	K10
	K11
	K12
	K13
	K14
	K15
	K16
	K17
	K18
	K19
	K20
	K21
	K22
	K23
	K24
	K25
	K26
	K27
	K28
	K29
	K30
	K31
	K32
	K33
	K34
	K35
	K36
	K37
	K38
	K39
	K40
	K41
	K42
	K43
	K44
	K45
	K46
	K47
	K48
)

// Keycode is a physical key on a US/QWERTY keyboard: a letter, digit,
// punctuation mark, or space. The zero value is not a valid Keycode.
type Keycode byte

// The 48 physical keycodes, named by the character they carry on a
// QWERTY keyboard. Row order mirrors the Dachen keyboard layout:
// number row, top letter row, home row, bottom row, plus space.
const (
	Key1 Keycode = iota + 1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	Key0
	KeyMinus
	KeyEqual
	KeyQ
	KeyW
	KeyE
	KeyR
	KeyT
	KeyY
	KeyU
	KeyI
	KeyO
	KeyP
	KeyBracketLeft
	KeyBracketRight
	KeyA
	KeyS
	KeyD
	KeyF
	KeyG
	KeyH
	KeyJ
	KeyK
	KeyL
	KeySemicolon
	KeyQuote
	KeyBackslash
	KeyZ
	KeyX
	KeyC
	KeyV
	KeyB
	KeyN
	KeyM
	KeyComma
	KeyPeriod
	KeySlash
	KeyGrave
	KeySpace
)

// KeyEvent is the result of mapping one physical Keycode through a Keymap:
// the code (echoed back) plus the layout-independent index it carries.
type KeyEvent struct {
	Code  Keycode
	Index KeyIndex
}

func (e KeyEvent) String() string {
	return fmt.Sprintf("KeyEvent{Code:%d,Index:K%d}", e.Code, e.Index)
}

// Keymap maps a physical Keycode to a KeyEvent. Implementations are pure
// and total over the 48 defined Keycodes.
type Keymap interface {
	Map(code Keycode) (KeyEvent, bool)
}

// qwertyOrder lists the 48 Keycodes in the same row order as the K1..K48
// indices, so Identity and every Remapping keymap share one table shape.
var qwertyOrder = []Keycode{
	Key1, Key2, Key3, Key4, Key5, Key6, Key7, Key8, Key9, Key0, KeyMinus, KeyEqual,
	KeyQ, KeyW, KeyE, KeyR, KeyT, KeyY, KeyU, KeyI, KeyO, KeyP, KeyBracketLeft, KeyBracketRight,
	KeyA, KeyS, KeyD, KeyF, KeyG, KeyH, KeyJ, KeyK, KeyL, KeySemicolon, KeyQuote, KeyBackslash,
	KeyZ, KeyX, KeyC, KeyV, KeyB, KeyN, KeyM, KeyComma, KeyPeriod, KeySlash, KeyGrave, KeySpace,
}

func init() {
	if len(qwertyOrder) != 48 {
		panic("keymap: qwertyOrder must enumerate all 48 physical keycodes")
	}
}

type identityKeymap struct {
	index map[Keycode]KeyIndex
}

// Identity is the keymap from a physical QWERTY layout to itself: the
// physical key that types 'a' carries whatever Zhuyin symbol K25 is
// configured for.
var Identity Keymap = newIdentity()

func newIdentity() Keymap {
	m := &identityKeymap{index: make(map[Keycode]KeyIndex, 48)}
	for i, code := range qwertyOrder {
		m.index[code] = K1 + KeyIndex(i)
	}
	return m
}

func (m *identityKeymap) Map(code Keycode) (KeyEvent, bool) {
	idx, ok := m.index[code]
	if !ok {
		return KeyEvent{}, false
	}
	return KeyEvent{Code: code, Index: idx}, true
}
