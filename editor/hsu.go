package editor

import (
	"github.com/chewing-go/chewing/bopomofo"
	"github.com/chewing-go/chewing/keymap"
)

// hsuAmbiguous describes a key whose meaning depends on whether the buffer
// already has an initial or medial: empty -> write Initial; otherwise ->
// write Rime (§4.2.2).
type hsuAmbiguous struct {
	initial bopomofo.Symbol
	rime    bopomofo.Symbol
}

var hsuAmbiguousTable = map[keymap.KeyIndex]hsuAmbiguous{
	idx('m'): {initial: bopomofo.M, rime: bopomofo.AN},
	idx('n'): {initial: bopomofo.N, rime: bopomofo.EN},
	idx('l'): {initial: bopomofo.L, rime: bopomofo.ER},
	idx('g'): {initial: bopomofo.G, rime: bopomofo.E},
	idx('k'): {initial: bopomofo.K, rime: bopomofo.ANG},
	idx('h'): {initial: bopomofo.H, rime: bopomofo.O},
}

// hsuInitialTable covers the plain (non-ambiguous) initials, including the
// palatal/retroflex keys that are instead disambiguated by
// applyPalatalFuzzy rather than by buffer fullness.
var hsuInitialTable = map[keymap.KeyIndex]bopomofo.Symbol{
	idx('b'): bopomofo.B, idx('p'): bopomofo.P, idx('f'): bopomofo.F,
	idx('d'): bopomofo.D, idx('t'): bopomofo.T, idx('z'): bopomofo.Z,
	idx('r'): bopomofo.R, idx('s'): bopomofo.S,
	idx('j'): bopomofo.J, idx('q'): bopomofo.Q, idx('x'): bopomofo.X,
	idx('c'): bopomofo.SH, // retroflex base; flips to X when followed by I/IU
}

var hsuMedialTable = map[keymap.KeyIndex]bopomofo.Symbol{
	idx('e'): bopomofo.I, idx('u'): bopomofo.U, idx('y'): bopomofo.IU,
}

var hsuRimeTable = map[keymap.KeyIndex]bopomofo.Symbol{
	idx('a'): bopomofo.A, idx('i'): bopomofo.AI, idx('o'): bopomofo.OU,
	idx('v'): bopomofo.EI, idx('w'): bopomofo.AU,
}

// hsuEndKeyTone gives the tone committed by each end key; space commits
// tone1 and is handled separately since it has no base (non-endkey)
// meaning.
var hsuEndKeyTone = map[keymap.KeyIndex]bopomofo.Symbol{
	idx('d'): bopomofo.Tone2,
	idx('f'): bopomofo.Tone3,
	idx('j'): bopomofo.Tone4,
	idx('s'): bopomofo.Tone5,
}

// hsuAloneRimeRewrite is the "if only an initial is present, rewrite it"
// table for the six non-palatal ambiguous initials (§4.2.2). The palatal
// initials (J/Q/X) are instead rewritten by applyPalatalFuzzy, since
// "alone, nothing follows" is the degenerate case of "not followed by
// I/IU".
var hsuAloneRimeRewrite = map[bopomofo.Symbol]bopomofo.Symbol{
	bopomofo.H: bopomofo.O,
	bopomofo.G: bopomofo.E,
	bopomofo.M: bopomofo.AN,
	bopomofo.N: bopomofo.EN,
	bopomofo.K: bopomofo.ANG,
	bopomofo.L: bopomofo.ER,
}

// HsuEditor implements the Hsu syllable editor (§4.2.2).
type HsuEditor struct {
	buf bopomofo.Syllable
}

// NewHsu constructs an empty Hsu syllable editor.
func NewHsu() *HsuEditor { return &HsuEditor{} }

func (e *HsuEditor) IsEmpty() bool           { return e.buf.IsEmpty() }
func (e *HsuEditor) Read() bopomofo.Syllable { return e.buf }
func (e *HsuEditor) Clear()                  { e.buf = bopomofo.Syllable{} }
func (e *HsuEditor) KeySeq() string          { return "" }

func (e *HsuEditor) RemoveLast() {
	if next, _, ok := e.buf.Pop(); ok {
		e.buf = next
	}
}

func isHsuEndKey(ki keymap.KeyIndex) bool {
	_, ok := hsuEndKeyTone[ki]
	return ok || ki == idx('s') || ki == idx(' ')
}

// KeyPress implements Editor.
func (e *HsuEditor) KeyPress(ev keymap.KeyEvent) Behavior {
	ki := ev.Index

	if ki == idx(' ') {
		if e.buf.IsEmpty() {
			return KeyError
		}
		return e.endKey(bopomofo.Tone1)
	}

	if tone, ok := hsuEndKeyTone[ki]; ok && !e.buf.IsEmpty() {
		return e.endKey(tone)
	}

	// Not acting as an end key right now: fall through to the key's base
	// (non-endkey) meaning.
	if amb, ok := hsuAmbiguousTable[ki]; ok {
		_, hasIni := e.buf.Initial()
		_, hasMed := e.buf.Medial()
		if !hasIni && !hasMed {
			e.buf = e.buf.Update(amb.initial)
		} else {
			e.buf = e.buf.Update(amb.rime)
		}
		e.afterWrite()
		return Absorb
	}
	if sym, ok := hsuInitialTable[ki]; ok {
		e.buf = e.buf.Update(sym)
		e.afterWrite()
		return Absorb
	}
	if sym, ok := hsuMedialTable[ki]; ok {
		e.buf = e.buf.Update(sym)
		e.afterWrite()
		return Absorb
	}
	if sym, ok := hsuRimeTable[ki]; ok {
		e.buf = e.buf.Update(sym)
		e.afterWrite()
		return Absorb
	}
	return KeyError
}

// afterWrite applies the fuzzy rules that must hold after every slot
// write: the shared palatal/retroflex fuzzy, and Hsu's own G+I/J+I -> J+IU
// fuzzy.
func (e *HsuEditor) afterWrite() {
	e.buf = applyPalatalFuzzy(e.buf)
	if ini, ok := e.buf.Initial(); ok && (ini == bopomofo.G || ini == bopomofo.J) {
		if med, ok := e.buf.Medial(); ok && med == bopomofo.I {
			e.buf = e.buf.Update(bopomofo.J).Update(bopomofo.IU)
		}
	}
}

// endKey runs the "if only an initial is present, rewrite it" step, then
// commits with the given tone.
func (e *HsuEditor) endKey(tone bopomofo.Symbol) Behavior {
	_, hasMed := e.buf.Medial()
	_, hasRime := e.buf.Rime()
	if ini, hasIni := e.buf.Initial(); hasIni && !hasMed && !hasRime {
		if rewrite, ok := hsuAloneRimeRewrite[ini]; ok {
			e.buf = e.buf.Clear(bopomofo.Initial).Update(rewrite)
		} else {
			e.buf = applyPalatalFuzzy(e.buf)
		}
	}
	e.buf = e.buf.Update(tone)
	if e.buf.IsEmpty() {
		return NoWord
	}
	return Commit
}
