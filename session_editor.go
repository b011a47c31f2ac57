package chewing

import (
	"github.com/chewing-go/chewing/editor"
	"github.com/chewing-go/chewing/keymap"
)

// Layout names one of the thirteen supported keyboard configurations
// (§6.5).
type Layout = editor.Layout

// The full Layout enumeration, re-exported for callers that never need
// to import package editor directly.
const (
	Default           = editor.Default
	Hsu               = editor.Hsu
	Ibm               = editor.Ibm
	GinYieh           = editor.GinYieh
	Et                = editor.Et
	Et26              = editor.Et26
	Dvorak            = editor.Dvorak
	DvorakHsu         = editor.DvorakHsu
	DachenCp26        = editor.DachenCp26
	HanyuPinyinLayout = editor.HanyuPinyinLayout
	ThlPinyinLayout   = editor.ThlPinyinLayout
	Mps2PinyinLayout  = editor.Mps2PinyinLayout
	Carpalx           = editor.Carpalx
)

// SyllableEditor is the per-layout Bopomofo state machine a session
// drives with key events. It is package editor's Editor interface,
// re-exported so a caller of this package never needs a second import.
type SyllableEditor = editor.Editor

// Behavior is the result of one KeyPress call.
type Behavior = editor.Behavior

const (
	Ignore          = editor.Ignore
	Absorb          = editor.Absorb
	Commit          = editor.Commit
	KeyError        = editor.KeyError
	NoWord          = editor.NoWord
	OpenSymbolTable = editor.OpenSymbolTable
)

// KeyEvent is the layout-independent key event a Keymap translates a
// physical key press into before it reaches a SyllableEditor.
type KeyEvent = keymap.KeyEvent

// NewSyllableEditor constructs the syllable editor for layout (§6.4
// new_syllable_editor). It returns only the editor; NewKeymap returns the
// matching physical keymap, which translates physical key presses into
// the KeyEvent values KeyPress expects.
func NewSyllableEditor(layout Layout) SyllableEditor {
	return editor.NewEditor(layout)
}

// NewKeymap returns the physical keymap layout types through, pairing
// with NewSyllableEditor for layouts that remap the physical keyboard
// (Dvorak, Carpalx) rather than just the phonetic assignment.
func NewKeymap(layout Layout) keymap.Keymap {
	return editor.NewKeymap(layout)
}
