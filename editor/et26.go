package editor

import (
	"github.com/chewing-go/chewing/bopomofo"
	"github.com/chewing-go/chewing/keymap"
)

// et26Ambiguous keys behave like Hsu's: initial when the buffer has
// neither initial nor medial yet, the paired rime otherwise (§4.2.3).
var et26AmbiguousTable = map[keymap.KeyIndex]hsuAmbiguous{
	idx('p'): {initial: bopomofo.P, rime: bopomofo.OU},
	idx('m'): {initial: bopomofo.M, rime: bopomofo.AN},
	idx('n'): {initial: bopomofo.N, rime: bopomofo.EN},
	idx('t'): {initial: bopomofo.T, rime: bopomofo.ANG},
	idx('l'): {initial: bopomofo.L, rime: bopomofo.ENG},
	idx('h'): {initial: bopomofo.H, rime: bopomofo.ER},
	idx('q'): {initial: bopomofo.Z, rime: bopomofo.EI},
	idx('w'): {initial: bopomofo.C, rime: bopomofo.EH},
}

var et26InitialTable = map[keymap.KeyIndex]bopomofo.Symbol{
	idx('b'): bopomofo.B, idx('f'): bopomofo.F, idx('d'): bopomofo.D,
	idx('g'): bopomofo.J, idx('k'): bopomofo.K, idx('j'): bopomofo.R,
	idx('c'): bopomofo.X, idx('s'): bopomofo.S, idx('v'): bopomofo.G,
	idx('y'): bopomofo.CH,
}

var et26MedialTable = map[keymap.KeyIndex]bopomofo.Symbol{
	idx('e'): bopomofo.I, idx('u'): bopomofo.IU, idx('x'): bopomofo.U,
}

var et26RimeTable = map[keymap.KeyIndex]bopomofo.Symbol{
	idx('a'): bopomofo.A, idx('i'): bopomofo.AI, idx('o'): bopomofo.O,
	idx('r'): bopomofo.E, idx('z'): bopomofo.AU,
}

// et26AloneRimeRewrite is the "initial-only buffer rewrites to a rime"
// table evaluated right before commit (§4.2.3): an ambiguous initial
// typed alone, with no medial or rime following, becomes the rime its
// key is paired with instead.
var et26AloneRimeRewrite = map[bopomofo.Symbol]bopomofo.Symbol{
	bopomofo.P: bopomofo.OU,
	bopomofo.M: bopomofo.AN,
	bopomofo.N: bopomofo.EN,
	bopomofo.T: bopomofo.ANG,
	bopomofo.L: bopomofo.ENG,
	bopomofo.H: bopomofo.ER,
	bopomofo.Z: bopomofo.EI,
	bopomofo.C: bopomofo.EH,
}

// et26AloneInitialRewrite is evaluated alongside et26AloneRimeRewrite at
// commit time: an initial typed alone retreats to its retroflex partner,
// staying in the initial slot, rather than moving to the rime slot.
var et26AloneInitialRewrite = map[bopomofo.Symbol]bopomofo.Symbol{
	bopomofo.J: bopomofo.ZH,
	bopomofo.X: bopomofo.SH,
}

var et26EndKeyTone = map[keymap.KeyIndex]bopomofo.Symbol{
	idx('f'): bopomofo.Tone2,
	idx('j'): bopomofo.Tone3,
	idx('k'): bopomofo.Tone4,
	idx('d'): bopomofo.Tone5,
}

// Et26Editor implements the ET26 syllable editor (§4.2.3).
type Et26Editor struct {
	buf bopomofo.Syllable
}

// NewEt26 constructs an empty ET26 syllable editor.
func NewEt26() *Et26Editor { return &Et26Editor{} }

func (e *Et26Editor) IsEmpty() bool           { return e.buf.IsEmpty() }
func (e *Et26Editor) Read() bopomofo.Syllable { return e.buf }
func (e *Et26Editor) Clear()                  { e.buf = bopomofo.Syllable{} }
func (e *Et26Editor) KeySeq() string          { return "" }

func (e *Et26Editor) RemoveLast() {
	if next, _, ok := e.buf.Pop(); ok {
		e.buf = next
	}
}

// et26RetroflexOnJX rewrites a pending J or X initial to its retroflex
// partner ZH/SH, staying in the initial slot. KeyPress calls it before
// writing U or a rime with no medial, since ㄐ and ㄒ only combine with
// the front medials I/IU. A ㄑ initial is left unchanged.
func (e *Et26Editor) et26RetroflexOnJX() {
	ini, ok := e.buf.Initial()
	if !ok {
		return
	}
	if rewrite, ok := et26AloneInitialRewrite[ini]; ok {
		e.buf = e.buf.Update(rewrite)
	}
}

// KeyPress implements Editor.
func (e *Et26Editor) KeyPress(ev keymap.KeyEvent) Behavior {
	ki := ev.Index

	if ki == idx(' ') {
		if e.buf.IsEmpty() {
			return KeyError
		}
		return e.endKey(bopomofo.Tone1)
	}
	if tone, ok := et26EndKeyTone[ki]; ok && !e.buf.IsEmpty() {
		return e.endKey(tone)
	}

	_, hasIni := e.buf.Initial()
	_, hasMed := e.buf.Medial()
	hasInitialOrMedial := hasIni || hasMed

	if amb, ok := et26AmbiguousTable[ki]; ok {
		if !hasInitialOrMedial {
			e.buf = e.buf.Update(amb.initial)
		} else {
			e.buf = e.buf.Update(amb.rime)
		}
		return Absorb
	}
	if sym, ok := et26InitialTable[ki]; ok {
		e.buf = e.buf.Update(sym)
		return Absorb
	}
	if sym, ok := et26MedialTable[ki]; ok {
		if sym == bopomofo.U {
			e.et26RetroflexOnJX()
		} else if ini, ok := e.buf.Initial(); ok && ini == bopomofo.G {
			// A ㄍ initial palatalizes to ㄑ when followed by a front
			// medial (ㄧ or ㄩ), never by ㄨ.
			e.buf = e.buf.Update(bopomofo.Q)
		}
		e.buf = e.buf.Update(sym)
		return Absorb
	}
	if sym, ok := et26RimeTable[ki]; ok {
		if !hasMed {
			e.et26RetroflexOnJX()
		}
		e.buf = e.buf.Update(sym)
		return Absorb
	}
	return KeyError
}

func (e *Et26Editor) endKey(tone bopomofo.Symbol) Behavior {
	_, hasMed := e.buf.Medial()
	_, hasRime := e.buf.Rime()
	if ini, hasIni := e.buf.Initial(); hasIni && !hasMed && !hasRime {
		if rewrite, ok := et26AloneInitialRewrite[ini]; ok {
			e.buf = e.buf.Update(rewrite)
		} else if rewrite, ok := et26AloneRimeRewrite[ini]; ok {
			e.buf = e.buf.Clear(bopomofo.Initial).Update(rewrite)
		}
	}
	e.buf = e.buf.Update(tone)
	if e.buf.IsEmpty() {
		return NoWord
	}
	return Commit
}
