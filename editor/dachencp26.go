package editor

import (
	"github.com/chewing-go/chewing/bopomofo"
	"github.com/chewing-go/chewing/keymap"
)

// defaultOrAlt implements the CP26 two-symbol toggle keys (§4.2.4,
// dc26.rs default_or_alt): the first press writes default; pressing the
// same physical key again while that slot already holds default flips it
// to alt; pressing it while the slot holds anything else resets to
// default.
func defaultOrAlt(current bopomofo.Symbol, hasCurrent bool, deflt, alt bopomofo.Symbol) bopomofo.Symbol {
	if !hasCurrent {
		return deflt
	}
	if current == deflt {
		return alt
	}
	return deflt
}

var cp26EndKeyTone = map[keymap.KeyIndex]bopomofo.Symbol{
	keymap.K17: bopomofo.Tone2,
	keymap.K18: bopomofo.Tone3,
	keymap.K29: bopomofo.Tone4,
	keymap.K20: bopomofo.Tone5,
}

// DachenCp26Editor implements the Dai Chien 26-key (CP26) syllable editor
// (§4.2.4), grounded on the upstream Rust implementation's KeyIndex-keyed
// dispatch table.
type DachenCp26Editor struct {
	buf bopomofo.Syllable
}

// NewDachenCp26 constructs an empty CP26 syllable editor.
func NewDachenCp26() *DachenCp26Editor { return &DachenCp26Editor{} }

func (e *DachenCp26Editor) IsEmpty() bool           { return e.buf.IsEmpty() }
func (e *DachenCp26Editor) Read() bopomofo.Syllable { return e.buf }
func (e *DachenCp26Editor) Clear()                  { e.buf = bopomofo.Syllable{} }
func (e *DachenCp26Editor) KeySeq() string          { return "" }

func (e *DachenCp26Editor) RemoveLast() {
	if next, _, ok := e.buf.Pop(); ok {
		e.buf = next
	}
}

func (e *DachenCp26Editor) hasInitialOrMedial() bool {
	_, hasIni := e.buf.Initial()
	_, hasMed := e.buf.Medial()
	return hasIni || hasMed
}

// KeyPress implements Editor.
func (e *DachenCp26Editor) KeyPress(ev keymap.KeyEvent) Behavior {
	ki := ev.Index

	if ki == keymap.K48 {
		if e.buf.IsEmpty() {
			return KeyError
		}
		e.buf = e.buf.Update(bopomofo.Tone1)
		return Commit
	}
	if tone, ok := cp26EndKeyTone[ki]; ok && !e.buf.IsEmpty() {
		e.buf = e.buf.Update(tone)
		return Commit
	}

	ini, hasIni := e.buf.Initial()
	med, hasMed := e.buf.Medial()
	rim, hasRim := e.buf.Rime()

	var sym bopomofo.Symbol
	switch ki {
	case keymap.K15:
		sym = defaultOrAlt(ini, hasIni, bopomofo.B, bopomofo.P)
	case keymap.K27:
		sym = bopomofo.M
	case keymap.K38:
		sym = bopomofo.F
	case keymap.K16:
		sym = defaultOrAlt(ini, hasIni, bopomofo.D, bopomofo.T)
	case keymap.K28:
		sym = bopomofo.N
	case keymap.K39:
		sym = bopomofo.L
	case keymap.K17:
		sym = bopomofo.G
	case keymap.K29:
		sym = bopomofo.K
	case keymap.K40:
		sym = bopomofo.H
	case keymap.K18:
		sym = bopomofo.J
	case keymap.K30:
		sym = bopomofo.Q
	case keymap.K41:
		sym = bopomofo.X
	case keymap.K19:
		sym = defaultOrAlt(ini, hasIni, bopomofo.ZH, bopomofo.CH)
	case keymap.K31:
		sym = bopomofo.SH
	case keymap.K42:
		if e.hasInitialOrMedial() {
			sym = bopomofo.EH
		} else {
			sym = bopomofo.R
		}
	case keymap.K20:
		sym = bopomofo.Z
	case keymap.K32:
		sym = bopomofo.C
	case keymap.K43:
		if e.hasInitialOrMedial() {
			sym = bopomofo.ENG
		} else {
			sym = bopomofo.S
		}
	case keymap.K21: // the I/A key: cycles medial I and rime A together
		switch {
		case hasMed && med == bopomofo.I && hasRim && rim == bopomofo.A:
			e.buf = e.buf.Clear(bopomofo.Medial).Clear(bopomofo.Rime)
			return Absorb
		case hasRim && rim == bopomofo.A:
			e.buf = e.buf.Update(bopomofo.I)
			return Absorb
		case hasMed && med == bopomofo.I:
			e.buf = e.buf.Clear(bopomofo.Medial).Update(bopomofo.A)
			return Absorb
		case hasMed:
			e.buf = e.buf.Update(bopomofo.A)
			return Absorb
		}
		sym = bopomofo.I
	case keymap.K33:
		sym = bopomofo.U
	case keymap.K44: // the U/OU key: cycles medial IU and rime OU together
		switch {
		case hasMed && med == bopomofo.IU && !hasRim:
			e.buf = e.buf.Clear(bopomofo.Medial).Update(bopomofo.OU)
			return Absorb
		case hasMed && med == bopomofo.IU && hasRim && rim != bopomofo.OU:
			e.buf = e.buf.Clear(bopomofo.Medial).Update(bopomofo.OU)
			return Absorb
		case !hasMed && hasRim && rim == bopomofo.OU:
			e.buf = e.buf.Update(bopomofo.IU).Clear(bopomofo.Rime)
			return Absorb
		case hasMed && med != bopomofo.IU && hasRim && rim == bopomofo.OU:
			e.buf = e.buf.Update(bopomofo.IU).Clear(bopomofo.Rime)
			return Absorb
		case hasMed:
			e.buf = e.buf.Update(bopomofo.OU)
			return Absorb
		}
		sym = bopomofo.IU
	case keymap.K22:
		sym = defaultOrAlt(rim, hasRim, bopomofo.O, bopomofo.AI)
	case keymap.K34:
		sym = bopomofo.E
	case keymap.K23:
		sym = defaultOrAlt(rim, hasRim, bopomofo.EI, bopomofo.AN)
	case keymap.K35:
		sym = defaultOrAlt(rim, hasRim, bopomofo.AU, bopomofo.ANG)
	case keymap.K24:
		sym = defaultOrAlt(rim, hasRim, bopomofo.EN, bopomofo.ER)
	default:
		return KeyError
	}

	e.buf = e.buf.Update(sym)
	return Absorb
}
