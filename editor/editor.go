// Package editor implements the per-layout phonetic state machines: key
// events in, a committed Bopomofo Syllable out. Every layout variant
// (Standard, Hsu, ET26, DachenCP26, and the three Pinyin flavors)
// implements the same Editor contract (§4.2 of the design).
package editor

import (
	"github.com/chewing-go/chewing/bopomofo"
	"github.com/chewing-go/chewing/keymap"
)

// Behavior is the result of one KeyPress call.
type Behavior int

const (
	// Ignore means the key had no effect on the editor (not consumed).
	Ignore Behavior = iota
	// Absorb means the key updated internal state; the caller should
	// keep showing the in-progress syllable.
	Absorb
	// Commit means the syllable is finished. The caller should Read it,
	// append it to its sequence, then Clear the editor.
	Commit
	// KeyError means the key was invalid in the editor's current state.
	KeyError
	// NoWord means a commit was attempted but the resulting syllable is
	// empty; treat this as an error bell.
	NoWord
	// OpenSymbolTable signals that the key (backtick in Standard layout)
	// requests the host session open its symbol palette.
	OpenSymbolTable
)

func (b Behavior) String() string {
	switch b {
	case Ignore:
		return "Ignore"
	case Absorb:
		return "Absorb"
	case Commit:
		return "Commit"
	case KeyError:
		return "KeyError"
	case NoWord:
		return "NoWord"
	case OpenSymbolTable:
		return "OpenSymbolTable"
	default:
		return "Behavior(?)"
	}
}

// Editor is the shared contract every phonetic layout's state machine
// implements.
type Editor interface {
	// KeyPress consumes one layout-independent key event (the output of a
	// keymap.Keymap) and returns the resulting Behavior.
	KeyPress(ev keymap.KeyEvent) Behavior
	// IsEmpty reports whether the in-progress buffer holds nothing.
	IsEmpty() bool
	// Read peeks the in-progress syllable without clearing it.
	Read() bopomofo.Syllable
	// RemoveLast undoes the most recent slot write (display-order pop).
	RemoveLast()
	// Clear empties the buffer.
	Clear()
	// KeySeq returns the in-progress Latin buffer for editors that have
	// one (only the Pinyin variants); other editors return "".
	KeySeq() string
}

// AltSyllable is implemented by editors that can commit with a primary and
// an alternate reading for one keystroke sequence (only the Pinyin
// editors, per §4.2.5: "Both primary and alternate syllables receive the
// tone. The IME session may switch between them when the user cycles
// candidates.").
type AltSyllable interface {
	Alternate() (bopomofo.Syllable, bool)
}
