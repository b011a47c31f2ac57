package editor

import (
	"github.com/chewing-go/chewing/bopomofo"
	"github.com/chewing-go/chewing/keymap"
)

// standardTable is the direct K1..K48 -> Bopomofo mapping for the
// Dachen/Standard layout (§4.2.1): the conventional "new phonetic"
// keyboard printed on Taiwanese keycaps. Non-tone keys write into the
// slot matching their Kind; tone keys (the four marks below plus space)
// are handled separately by StandardEditor.KeyPress.
var standardTable = map[keymap.KeyIndex]bopomofo.Symbol{
	idx('1'): bopomofo.B, idx('2'): bopomofo.D, idx('5'): bopomofo.ZH,
	idx('8'): bopomofo.A, idx('9'): bopomofo.AI, idx('0'): bopomofo.AN,
	idx('-'): bopomofo.ER,

	idx('q'): bopomofo.P, idx('w'): bopomofo.T, idx('e'): bopomofo.G, idx('r'): bopomofo.J,
	idx('t'): bopomofo.CH, idx('y'): bopomofo.Z, idx('u'): bopomofo.I, idx('i'): bopomofo.O,
	idx('o'): bopomofo.EI, idx('p'): bopomofo.EN,

	idx('a'): bopomofo.M, idx('s'): bopomofo.N, idx('d'): bopomofo.K, idx('f'): bopomofo.Q,
	idx('g'): bopomofo.SH, idx('h'): bopomofo.C, idx('j'): bopomofo.U, idx('k'): bopomofo.E,
	idx('l'): bopomofo.AU, idx(';'): bopomofo.ANG,

	idx('z'): bopomofo.F, idx('x'): bopomofo.L, idx('c'): bopomofo.H, idx('v'): bopomofo.X,
	idx('b'): bopomofo.R, idx('n'): bopomofo.S, idx('m'): bopomofo.IU,
	idx(','): bopomofo.EH, idx('.'): bopomofo.OU, idx('/'): bopomofo.ENG,
}

// standardToneTable maps the dedicated tone-mark keys to their tone
// symbol. Space is handled separately as the universal tone1 key.
var standardToneTable = map[keymap.KeyIndex]bopomofo.Symbol{
	idx('3'): bopomofo.Tone3,
	idx('4'): bopomofo.Tone4,
	idx('6'): bopomofo.Tone2,
	idx('7'): bopomofo.Tone5,
}

// StandardEditor implements the Dachen/Standard syllable editor (§4.2.1).
type StandardEditor struct {
	buf bopomofo.Syllable
}

// NewStandard constructs an empty Standard (Dachen) syllable editor.
func NewStandard() *StandardEditor { return &StandardEditor{} }

func (e *StandardEditor) IsEmpty() bool             { return e.buf.IsEmpty() }
func (e *StandardEditor) Read() bopomofo.Syllable   { return e.buf }
func (e *StandardEditor) Clear()                    { e.buf = bopomofo.Syllable{} }
func (e *StandardEditor) KeySeq() string             { return "" }

func (e *StandardEditor) RemoveLast() {
	if next, _, ok := e.buf.Pop(); ok {
		e.buf = next
	}
}

// KeyPress implements Editor. A tone key commits iff some slot is
// non-empty; otherwise it is a KeyError (space alone never writes the
// implicit first tone). Non-tone keys replace the same-kind slot and do
// not drop tone, unless a tone is already set, in which case it is
// dropped before the new slot is written (§4.2.1).
func (e *StandardEditor) KeyPress(ev keymap.KeyEvent) Behavior {
	if ev.Index == idx('`') {
		return OpenSymbolTable
	}

	if ev.Index == idx(' ') {
		return e.commit(bopomofo.Tone1)
	}
	if tone, ok := standardToneTable[ev.Index]; ok {
		return e.commit(tone)
	}

	sym, ok := standardTable[ev.Index]
	if !ok {
		return KeyError
	}
	if e.buf.HasToneMark() {
		e.buf = e.buf.Clear(bopomofo.Tone)
	}
	e.buf = e.buf.Update(sym)
	return Absorb
}

func (e *StandardEditor) commit(tone bopomofo.Symbol) Behavior {
	if e.buf.IsEmpty() {
		return KeyError
	}
	e.buf = e.buf.Update(tone)
	return Commit
}
