package editor

import (
	"strings"

	"github.com/chewing-go/chewing/bopomofo"
	"github.com/chewing-go/chewing/keymap"
)

const maxPinyinLen = 10

// PinyinVariant selects which of the three supported romanizations a
// Pinyin editor tokenizes against (§4.2.5).
type PinyinVariant int

const (
	HanyuPinyin PinyinVariant = iota
	ThlPinyin
	Mps2Pinyin
)

func sym(s bopomofo.Symbol) *bopomofo.Symbol { return &s }

func syl(ini, med, rim *bopomofo.Symbol) bopomofo.Syllable {
	var s bopomofo.Syllable
	if ini != nil {
		s = s.Update(*ini)
	}
	if med != nil {
		s = s.Update(*med)
	}
	if rim != nil {
		s = s.Update(*rim)
	}
	return s
}

type pinyinAmbEntry struct {
	pinyin         string
	primary, alt   bopomofo.Syllable
}

// commonPinyinMapping is shared across all three variants (pinyin.rs
// COMMON_MAPPING), tried after the variant-specific table.
var commonPinyinMapping = []pinyinAmbEntry{
	{"tzu", syl(sym(bopomofo.Z), nil, nil), syl(sym(bopomofo.Z), sym(bopomofo.U), nil)},
	{"ssu", syl(sym(bopomofo.S), nil, nil), syl(sym(bopomofo.S), sym(bopomofo.U), nil)},
	{"szu", syl(sym(bopomofo.S), nil, nil), syl(sym(bopomofo.S), sym(bopomofo.U), nil)},
	{"e", syl(sym(bopomofo.E), nil, nil), syl(sym(bopomofo.EH), nil, nil)},
	{"ch", syl(sym(bopomofo.CH), nil, nil), syl(sym(bopomofo.Q), nil, nil)},
	{"sh", syl(sym(bopomofo.SH), nil, nil), syl(sym(bopomofo.X), nil, nil)},
	{"c", syl(sym(bopomofo.C), nil, nil), syl(sym(bopomofo.Q), nil, nil)},
	{"s", syl(sym(bopomofo.S), nil, nil), syl(sym(bopomofo.X), nil, nil)},
	{"nu", syl(sym(bopomofo.N), sym(bopomofo.U), nil), syl(sym(bopomofo.N), sym(bopomofo.IU), nil)},
	{"lu", syl(sym(bopomofo.L), sym(bopomofo.U), nil), syl(sym(bopomofo.L), sym(bopomofo.IU), nil)},
	{"luan", syl(sym(bopomofo.L), sym(bopomofo.U), sym(bopomofo.AN)), syl(sym(bopomofo.L), sym(bopomofo.IU), sym(bopomofo.AN))},
	{"niu", syl(sym(bopomofo.N), sym(bopomofo.I), sym(bopomofo.OU)), syl(sym(bopomofo.N), sym(bopomofo.IU), nil)},
	{"liu", syl(sym(bopomofo.L), sym(bopomofo.I), sym(bopomofo.OU)), syl(sym(bopomofo.L), sym(bopomofo.IU), nil)},
	{"jiu", syl(sym(bopomofo.J), sym(bopomofo.I), sym(bopomofo.OU)), syl(sym(bopomofo.J), sym(bopomofo.IU), nil)},
	{"chiu", syl(sym(bopomofo.Q), sym(bopomofo.I), sym(bopomofo.OU)), syl(sym(bopomofo.Q), sym(bopomofo.IU), nil)},
	{"shiu", syl(sym(bopomofo.X), sym(bopomofo.I), sym(bopomofo.OU)), syl(sym(bopomofo.X), sym(bopomofo.IU), nil)},
	{"ju", syl(sym(bopomofo.J), sym(bopomofo.IU), nil), syl(sym(bopomofo.ZH), sym(bopomofo.U), nil)},
	{"juan", syl(sym(bopomofo.J), sym(bopomofo.IU), sym(bopomofo.AN)), syl(sym(bopomofo.ZH), sym(bopomofo.U), sym(bopomofo.AN))},
}

var hanyuPinyinMapping = []pinyinAmbEntry{
	{"chi", syl(sym(bopomofo.CH), nil, nil), syl(sym(bopomofo.Q), sym(bopomofo.I), nil)},
	{"shi", syl(sym(bopomofo.SH), nil, nil), syl(sym(bopomofo.X), sym(bopomofo.I), nil)},
	{"ci", syl(sym(bopomofo.C), nil, nil), syl(sym(bopomofo.Q), sym(bopomofo.I), nil)},
	{"si", syl(sym(bopomofo.S), nil, nil), syl(sym(bopomofo.X), sym(bopomofo.I), nil)},
}

var thlPinyinMapping = []pinyinAmbEntry{
	{"chi", syl(sym(bopomofo.Q), sym(bopomofo.I), nil), syl(sym(bopomofo.CH), nil, nil)},
	{"shi", syl(sym(bopomofo.X), sym(bopomofo.I), nil), syl(sym(bopomofo.SH), nil, nil)},
	{"ci", syl(sym(bopomofo.Q), sym(bopomofo.I), nil), syl(sym(bopomofo.C), nil, nil)},
	{"si", syl(sym(bopomofo.X), sym(bopomofo.I), nil), syl(sym(bopomofo.S), nil, nil)},
}

var mps2PinyinMapping = []pinyinAmbEntry{
	{"chi", syl(sym(bopomofo.Q), sym(bopomofo.I), nil), syl(sym(bopomofo.CH), nil, nil)},
	{"shi", syl(sym(bopomofo.X), sym(bopomofo.I), nil), syl(sym(bopomofo.SH), nil, nil)},
	{"ci", syl(sym(bopomofo.Q), sym(bopomofo.I), nil), syl(sym(bopomofo.C), nil, nil)},
	{"si", syl(sym(bopomofo.X), sym(bopomofo.I), nil), syl(sym(bopomofo.S), nil, nil)},
	{"niu", syl(sym(bopomofo.N), sym(bopomofo.IU), nil), syl(sym(bopomofo.N), sym(bopomofo.I), sym(bopomofo.OU))},
	{"liu", syl(sym(bopomofo.L), sym(bopomofo.IU), nil), syl(sym(bopomofo.L), sym(bopomofo.I), sym(bopomofo.OU))},
	{"jiu", syl(sym(bopomofo.J), sym(bopomofo.IU), nil), syl(sym(bopomofo.J), sym(bopomofo.I), sym(bopomofo.OU))},
	{"chiu", syl(sym(bopomofo.Q), sym(bopomofo.IU), nil), syl(sym(bopomofo.Q), sym(bopomofo.I), sym(bopomofo.OU))},
	{"shiu", syl(sym(bopomofo.X), sym(bopomofo.IU), nil), syl(sym(bopomofo.X), sym(bopomofo.I), sym(bopomofo.OU))},
	{"ju", syl(sym(bopomofo.ZH), sym(bopomofo.U), nil), syl(sym(bopomofo.J), sym(bopomofo.IU), nil)},
	{"juan", syl(sym(bopomofo.ZH), sym(bopomofo.U), sym(bopomofo.AN)), syl(sym(bopomofo.J), sym(bopomofo.IU), sym(bopomofo.AN))},
	{"juen", syl(sym(bopomofo.ZH), sym(bopomofo.U), sym(bopomofo.EN)), syl(sym(bopomofo.J), sym(bopomofo.IU), sym(bopomofo.EN))},
	{"tzu", syl(sym(bopomofo.Z), sym(bopomofo.U), nil), syl(sym(bopomofo.Z), nil, nil)},
}

type pinyinInitialEntry struct {
	pinyin  string
	initial bopomofo.Symbol
}

// pinyinInitialTable is ordered so that a key-sequence prefix scan finds
// the longest matching initial first (e.g. "tz"/"ts"/"hs"/"jh"/"zh"/"ch"/
// "sh" all precede their single-letter overlaps); the order is load
// bearing and must not be resorted (pinyin.rs INITIAL_MAPPING).
var pinyinInitialTable = []pinyinInitialEntry{
	{"tz", bopomofo.Z},
	{"b", bopomofo.B},
	{"p", bopomofo.P},
	{"m", bopomofo.M},
	{"f", bopomofo.F},
	{"d", bopomofo.D},
	{"ts", bopomofo.C},
	{"t", bopomofo.T},
	{"n", bopomofo.N},
	{"l", bopomofo.L},
	{"g", bopomofo.G},
	{"k", bopomofo.K},
	{"hs", bopomofo.X},
	{"h", bopomofo.H},
	{"jh", bopomofo.ZH},
	{"j", bopomofo.J},
	{"q", bopomofo.Q},
	{"x", bopomofo.X},
	{"zh", bopomofo.ZH},
	{"ch", bopomofo.CH},
	{"sh", bopomofo.SH},
	{"r", bopomofo.R},
	{"z", bopomofo.Z},
	{"c", bopomofo.C},
	{"s", bopomofo.S},
}

type pinyinFinalEntry struct {
	pinyin string
	medial *bopomofo.Symbol
	rime   *bopomofo.Symbol
}

// pinyinFinalTable is matched by exact equality against the remainder of
// the key sequence after the initial prefix is stripped (pinyin.rs
// FINAL_MAPPING). It has 87 entries; a final not listed here does not
// match. Order does not matter for an exact match
// but is kept identical to the source for easy cross-reference.
var pinyinFinalTable = []pinyinFinalEntry{
	{"uang", sym(bopomofo.U), sym(bopomofo.ANG)},
	{"wang", sym(bopomofo.U), sym(bopomofo.ANG)},
	{"weng", sym(bopomofo.U), sym(bopomofo.ENG)},
	{"wong", sym(bopomofo.U), sym(bopomofo.ENG)},
	{"ying", sym(bopomofo.I), sym(bopomofo.ENG)},
	{"yung", sym(bopomofo.IU), sym(bopomofo.ENG)},
	{"yong", sym(bopomofo.IU), sym(bopomofo.ENG)},
	{"iung", sym(bopomofo.IU), sym(bopomofo.ENG)},
	{"iong", sym(bopomofo.IU), sym(bopomofo.ENG)},
	{"iang", sym(bopomofo.I), sym(bopomofo.ANG)},
	{"yang", sym(bopomofo.I), sym(bopomofo.ANG)},
	{"yuan", sym(bopomofo.IU), sym(bopomofo.AN)},
	{"iuan", sym(bopomofo.IU), sym(bopomofo.AN)},
	{"ing", sym(bopomofo.I), sym(bopomofo.ENG)},
	{"iao", sym(bopomofo.I), sym(bopomofo.AU)},
	{"iau", sym(bopomofo.I), sym(bopomofo.AU)},
	{"yao", sym(bopomofo.I), sym(bopomofo.AU)},
	{"yau", sym(bopomofo.I), sym(bopomofo.AU)},
	{"yun", sym(bopomofo.IU), sym(bopomofo.EN)},
	{"iun", sym(bopomofo.IU), sym(bopomofo.EN)},
	{"vn", sym(bopomofo.IU), sym(bopomofo.EN)},
	{"iou", sym(bopomofo.I), sym(bopomofo.OU)},
	{"iu", sym(bopomofo.I), sym(bopomofo.OU)},
	{"you", sym(bopomofo.I), sym(bopomofo.OU)},
	{"io", sym(bopomofo.I), sym(bopomofo.O)},
	{"yo", sym(bopomofo.I), sym(bopomofo.O)},
	{"ian", sym(bopomofo.I), sym(bopomofo.AN)},
	{"ien", sym(bopomofo.I), sym(bopomofo.AN)},
	{"yan", sym(bopomofo.I), sym(bopomofo.AN)},
	{"yen", sym(bopomofo.I), sym(bopomofo.AN)},
	{"yin", sym(bopomofo.I), sym(bopomofo.EN)},
	{"ang", nil, sym(bopomofo.ANG)},
	{"eng", nil, sym(bopomofo.ENG)},
	{"uei", sym(bopomofo.U), sym(bopomofo.EI)},
	{"ui", sym(bopomofo.U), sym(bopomofo.EI)},
	{"wei", sym(bopomofo.U), sym(bopomofo.EI)},
	{"uen", sym(bopomofo.U), sym(bopomofo.EN)},
	{"yueh", sym(bopomofo.IU), sym(bopomofo.EH)},
	{"yue", sym(bopomofo.IU), sym(bopomofo.EH)},
	{"iue", sym(bopomofo.IU), sym(bopomofo.EH)},
	{"ueh", sym(bopomofo.IU), sym(bopomofo.EH)},
	{"ue", sym(bopomofo.IU), sym(bopomofo.EH)},
	{"ve", sym(bopomofo.IU), sym(bopomofo.EH)},
	{"uai", sym(bopomofo.U), sym(bopomofo.AI)},
	{"wai", sym(bopomofo.U), sym(bopomofo.AI)},
	{"uan", sym(bopomofo.U), sym(bopomofo.AN)},
	{"wan", sym(bopomofo.U), sym(bopomofo.AN)},
	{"un", sym(bopomofo.U), sym(bopomofo.EN)},
	{"wen", sym(bopomofo.U), sym(bopomofo.EN)},
	{"wun", sym(bopomofo.U), sym(bopomofo.EN)},
	{"ung", sym(bopomofo.U), sym(bopomofo.ENG)},
	{"ong", sym(bopomofo.U), sym(bopomofo.ENG)},
	{"van", sym(bopomofo.IU), sym(bopomofo.AN)},
	{"er", nil, sym(bopomofo.ER)},
	{"ai", nil, sym(bopomofo.AI)},
	{"ei", nil, sym(bopomofo.EI)},
	{"ao", nil, sym(bopomofo.AU)},
	{"au", nil, sym(bopomofo.AU)},
	{"ou", nil, sym(bopomofo.OU)},
	{"an", nil, sym(bopomofo.AN)},
	{"en", nil, sym(bopomofo.EN)},
	{"yi", nil, sym(bopomofo.I)},
	{"ia", sym(bopomofo.I), sym(bopomofo.A)},
	{"ya", sym(bopomofo.I), sym(bopomofo.A)},
	{"ieh", sym(bopomofo.I), sym(bopomofo.EH)},
	{"ie", sym(bopomofo.I), sym(bopomofo.EH)},
	{"yeh", sym(bopomofo.I), sym(bopomofo.EH)},
	{"ye", sym(bopomofo.I), sym(bopomofo.EH)},
	{"in", sym(bopomofo.I), sym(bopomofo.EN)},
	{"wu", sym(bopomofo.U), nil},
	{"ua", sym(bopomofo.U), sym(bopomofo.A)},
	{"wa", sym(bopomofo.U), sym(bopomofo.A)},
	{"uo", sym(bopomofo.U), sym(bopomofo.O)},
	{"wo", sym(bopomofo.U), sym(bopomofo.O)},
	{"yu", sym(bopomofo.IU), nil},
	{"ih", nil, nil},
	{"a", nil, sym(bopomofo.A)},
	{"o", nil, sym(bopomofo.O)},
	{"eh", nil, sym(bopomofo.EH)},
	{"e", nil, sym(bopomofo.E)},
	{"v", sym(bopomofo.IU), nil},
	{"i", sym(bopomofo.I), nil},
	{"u", sym(bopomofo.U), nil},
	{"n", nil, sym(bopomofo.EN)},
	{"ng", nil, sym(bopomofo.ENG)},
	{"r", nil, nil},
	{"z", nil, nil},
}

var pinyinLetterCode = map[keymap.Keycode]rune{
	keymap.KeyA: 'a', keymap.KeyB: 'b', keymap.KeyC: 'c', keymap.KeyD: 'd', keymap.KeyE: 'e',
	keymap.KeyF: 'f', keymap.KeyG: 'g', keymap.KeyH: 'h', keymap.KeyI: 'i', keymap.KeyJ: 'j',
	keymap.KeyK: 'k', keymap.KeyL: 'l', keymap.KeyM: 'm', keymap.KeyN: 'n', keymap.KeyO: 'o',
	keymap.KeyP: 'p', keymap.KeyQ: 'q', keymap.KeyR: 'r', keymap.KeyS: 's', keymap.KeyT: 't',
	keymap.KeyU: 'u', keymap.KeyV: 'v', keymap.KeyW: 'w', keymap.KeyX: 'x', keymap.KeyY: 'y',
	keymap.KeyZ: 'z',
}

var pinyinToneCode = map[keymap.Keycode]bopomofo.Symbol{
	keymap.Key1: bopomofo.Tone1,
	keymap.Key2: bopomofo.Tone2,
	keymap.Key3: bopomofo.Tone3,
	keymap.Key4: bopomofo.Tone4,
	keymap.Key5: bopomofo.Tone5,
}

// PinyinEditor implements the Hanyu/THL/MPS2 Pinyin syllable editor
// (§4.2.5): it accumulates a raw Latin key sequence and only resolves it
// to Bopomofo on a tone keystroke.
type PinyinEditor struct {
	variant PinyinVariant
	keySeq  []rune
	primary bopomofo.Syllable
	alt     bopomofo.Syllable
	hasAlt  bool
}

// NewPinyin constructs an empty Pinyin editor for the given variant.
func NewPinyin(v PinyinVariant) *PinyinEditor { return &PinyinEditor{variant: v} }

func (e *PinyinEditor) IsEmpty() bool           { return len(e.keySeq) == 0 && e.primary.IsEmpty() }
func (e *PinyinEditor) Read() bopomofo.Syllable { return e.primary }
func (e *PinyinEditor) KeySeq() string          { return string(e.keySeq) }

func (e *PinyinEditor) Clear() {
	e.keySeq = nil
	e.primary = bopomofo.Syllable{}
	e.alt = bopomofo.Syllable{}
	e.hasAlt = false
}

func (e *PinyinEditor) RemoveLast() {
	if len(e.keySeq) > 0 {
		e.keySeq = e.keySeq[:len(e.keySeq)-1]
		return
	}
	if next, _, ok := e.primary.Pop(); ok {
		e.primary = next
	}
}

// Alternate implements AltSyllable: the ambiguity-table branches of
// KeyPress populate a second reading for the same key sequence (e.g.
// "shi" -> primary SH, alternate X+I on Hanyu).
func (e *PinyinEditor) Alternate() (bopomofo.Syllable, bool) { return e.alt, e.hasAlt }

func (e *PinyinEditor) variantMapping() []pinyinAmbEntry {
	switch e.variant {
	case ThlPinyin:
		return thlPinyinMapping
	case Mps2Pinyin:
		return mps2PinyinMapping
	default:
		return hanyuPinyinMapping
	}
}

// KeyPress implements Editor.
func (e *PinyinEditor) KeyPress(ev keymap.KeyEvent) Behavior {
	tone, isTone := pinyinToneCode[ev.Code]
	if !isTone {
		r, ok := pinyinLetterCode[ev.Code]
		if !ok {
			return KeyError
		}
		if len(e.keySeq) == maxPinyinLen {
			return NoWord
		}
		e.keySeq = append(e.keySeq, r)
		return Absorb
	}

	seq := string(e.keySeq)
	e.keySeq = nil

	for _, entry := range e.variantMapping() {
		if entry.pinyin == seq {
			return e.commit(entry.primary, entry.alt, tone)
		}
	}
	for _, entry := range commonPinyinMapping {
		if entry.pinyin == seq {
			return e.commit(entry.primary, entry.alt, tone)
		}
	}

	var initial *pinyinInitialEntry
	for i := range pinyinInitialTable {
		if strings.HasPrefix(seq, pinyinInitialTable[i].pinyin) {
			initial = &pinyinInitialTable[i]
			break
		}
	}
	finalSeq := seq
	if initial != nil {
		finalSeq = strings.TrimPrefix(seq, initial.pinyin)
	}
	var final *pinyinFinalEntry
	for i := range pinyinFinalTable {
		if pinyinFinalTable[i].pinyin == finalSeq {
			final = &pinyinFinalTable[i]
			break
		}
	}

	if initial == nil && final == nil {
		return Absorb
	}

	var ini, med, rim *bopomofo.Symbol
	if initial != nil {
		ini = &initial.initial
	}
	if final != nil {
		med, rim = final.medial, final.rime
	}

	// Post-rule (a): a bare "i" final after a retroflex/dental sibilant
	// initial drops both medial and rime (e.g. "zhi" -> ZH with no I). The
	// "i" final carries I in the medial slot with no rime.
	if med != nil && *med == bopomofo.I && rim == nil {
		switch {
		case ini != nil && (*ini == bopomofo.ZH || *ini == bopomofo.CH || *ini == bopomofo.SH ||
			*ini == bopomofo.R || *ini == bopomofo.Z || *ini == bopomofo.C || *ini == bopomofo.S):
			med, rim = nil, nil
		}
	}

	// Post-rule (b): J/Q/X + U (+ AN/EN/nothing) -> medial becomes IU.
	if ini != nil && (*ini == bopomofo.J || *ini == bopomofo.Q || *ini == bopomofo.X) {
		if med != nil && *med == bopomofo.U && (rim == nil || *rim == bopomofo.AN || *rim == bopomofo.EN) {
			med = sym(bopomofo.IU)
		}
	}

	// Post-rule (c): a medial of I/IU palatalizes S/SH->X and C/CH->Q;
	// otherwise a bare J initial retroflexes to ZH.
	if med != nil && (*med == bopomofo.I || *med == bopomofo.IU) {
		if ini != nil {
			switch *ini {
			case bopomofo.S, bopomofo.SH:
				ini = sym(bopomofo.X)
			case bopomofo.C, bopomofo.CH:
				ini = sym(bopomofo.Q)
			}
		}
	} else if ini != nil && *ini == bopomofo.J {
		ini = sym(bopomofo.ZH)
	}

	// Post-rule (d): B/P/M/F + U + (ENG|O) drops the medial.
	if ini != nil && (*ini == bopomofo.B || *ini == bopomofo.P || *ini == bopomofo.M || *ini == bopomofo.F) {
		if med != nil && *med == bopomofo.U && rim != nil && (*rim == bopomofo.ENG || *rim == bopomofo.O) {
			med = nil
		}
	}

	result := syl(ini, med, rim)
	return e.commit(result, result, tone)
}

func (e *PinyinEditor) commit(primary, alt bopomofo.Syllable, tone bopomofo.Symbol) Behavior {
	e.primary = primary.Update(tone)
	e.alt = alt.Update(tone)
	e.hasAlt = e.alt != e.primary
	if e.primary.IsEmpty() {
		return NoWord
	}
	return Commit
}
