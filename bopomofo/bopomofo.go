// Package bopomofo implements the Zhuyin/Bopomofo phonetic alphabet and
// the packed Syllable value type shared by every layout's syllable editor
// and by the dictionary layer.
package bopomofo

import "fmt"

// Kind partitions the 42 Bopomofo symbols into four disjoint groups. A
// Syllable holds at most one Symbol per Kind.
type Kind int

const (
	Initial Kind = iota
	Medial
	Rime
	Tone
)

func (k Kind) String() string {
	switch k {
	case Initial:
		return "initial"
	case Medial:
		return "medial"
	case Rime:
		return "rime"
	case Tone:
		return "tone"
	default:
		return "unknown"
	}
}

// Symbol is a single Bopomofo grapheme. The zero value is not a valid
// Symbol; use the named constants below. Ordering within a Kind is fixed
// and user-visible: the 1-based index of a Symbol within its Kind is part
// of the external ABI (the packed 16-bit encoding, see Syllable.Encode).
type Symbol struct {
	kind  Kind
	index int // 0-based index within kind
	glyph string
}

// Kind reports which of the four slots this Symbol occupies.
func (s Symbol) Kind() Kind { return s.kind }

// Index returns the 0-based position of this Symbol within its Kind.
func (s Symbol) Index() int { return s.index }

// String renders the symbol's glyph, e.g. "ㄅ".
func (s Symbol) String() string { return s.glyph }

// IsZero reports whether s has an empty glyph: the absent-symbol sentinel,
// and also Tone1, whose glyph is empty.
func (s Symbol) IsZero() bool { return s.glyph == "" }

func sym(k Kind, i int, glyph string) Symbol {
	return Symbol{kind: k, index: i, glyph: glyph}
}

// Initials, in fixed display/ABI order (21 symbols).
var Initials = []Symbol{
	sym(Initial, 0, "ㄅ"), sym(Initial, 1, "ㄆ"), sym(Initial, 2, "ㄇ"), sym(Initial, 3, "ㄈ"),
	sym(Initial, 4, "ㄉ"), sym(Initial, 5, "ㄊ"), sym(Initial, 6, "ㄋ"), sym(Initial, 7, "ㄌ"),
	sym(Initial, 8, "ㄍ"), sym(Initial, 9, "ㄎ"), sym(Initial, 10, "ㄏ"),
	sym(Initial, 11, "ㄐ"), sym(Initial, 12, "ㄑ"), sym(Initial, 13, "ㄒ"),
	sym(Initial, 14, "ㄓ"), sym(Initial, 15, "ㄔ"), sym(Initial, 16, "ㄕ"), sym(Initial, 17, "ㄖ"),
	sym(Initial, 18, "ㄗ"), sym(Initial, 19, "ㄘ"), sym(Initial, 20, "ㄙ"),
}

// Medials, in fixed order (3 symbols).
var Medials = []Symbol{
	sym(Medial, 0, "ㄧ"), sym(Medial, 1, "ㄨ"), sym(Medial, 2, "ㄩ"),
}

// Rimes, in fixed order (13 symbols).
var Rimes = []Symbol{
	sym(Rime, 0, "ㄚ"), sym(Rime, 1, "ㄛ"), sym(Rime, 2, "ㄜ"), sym(Rime, 3, "ㄝ"),
	sym(Rime, 4, "ㄞ"), sym(Rime, 5, "ㄟ"), sym(Rime, 6, "ㄠ"), sym(Rime, 7, "ㄡ"),
	sym(Rime, 8, "ㄢ"), sym(Rime, 9, "ㄣ"), sym(Rime, 10, "ㄤ"), sym(Rime, 11, "ㄥ"),
	sym(Rime, 12, "ㄦ"),
}

// Tones, in fixed order (5 symbols). Tone 1 is conventionally unmarked.
var Tones = []Symbol{
	sym(Tone, 0, "˙"), // light/neutral tone, encoded value 0 is reserved for "tone1 unmarked"
	sym(Tone, 1, "ˊ"),
	sym(Tone, 2, "ˇ"),
	sym(Tone, 3, "ˋ"),
	sym(Tone, 4, ""), // tone 1: unmarked, renders as empty string
}

// Named convenience symbols used throughout the editors' fix-up tables.
var (
	B, P, M, F     = Initials[0], Initials[1], Initials[2], Initials[3]
	D, T, N, L     = Initials[4], Initials[5], Initials[6], Initials[7]
	G, K, H        = Initials[8], Initials[9], Initials[10]
	J, Q, X        = Initials[11], Initials[12], Initials[13]
	ZH, CH, SH, R  = Initials[14], Initials[15], Initials[16], Initials[17]
	Z, C, S        = Initials[18], Initials[19], Initials[20]
	I, U, IU       = Medials[0], Medials[1], Medials[2]
	A, O, E, EH    = Rimes[0], Rimes[1], Rimes[2], Rimes[3]
	AI, EI, AU, OU = Rimes[4], Rimes[5], Rimes[6], Rimes[7]
	AN, EN, ANG, ENG = Rimes[8], Rimes[9], Rimes[10], Rimes[11]
	ER             = Rimes[12]
	Tone1          = Tones[4]
	Tone2          = Tones[1]
	Tone3          = Tones[2]
	Tone4          = Tones[3]
	Tone5          = Tones[0]
)

// ErrUnknownBopomofo is returned when a character cannot be parsed as a
// Bopomofo symbol.
type ErrUnknownBopomofo struct {
	Rune rune
}

func (e *ErrUnknownBopomofo) Error() string {
	return fmt.Sprintf("bopomofo: unknown symbol %q", e.Rune)
}

// ErrDecodeSyllable is returned when a packed 16-bit value does not name a
// valid Bopomofo symbol in one of its slots.
type ErrDecodeSyllable struct {
	Kind  Kind
	Value int
}

func (e *ErrDecodeSyllable) Error() string {
	return fmt.Sprintf("bopomofo: invalid %s slot value %d", e.Kind, e.Value)
}

var runeIndex map[rune]Symbol

func init() {
	runeIndex = make(map[rune]Symbol)
	for _, group := range [][]Symbol{Initials, Medials, Rimes} {
		for _, s := range group {
			for _, r := range s.glyph {
				runeIndex[r] = s
			}
		}
	}
	// Tones: skip Tone1 (empty glyph, unmarked).
	for _, t := range Tones {
		if t.glyph == "" {
			continue
		}
		for _, r := range t.glyph {
			runeIndex[r] = t
		}
	}
}

// ParseSymbol looks up the Symbol named by a single Bopomofo rune.
func ParseSymbol(r rune) (Symbol, error) {
	if s, ok := runeIndex[r]; ok {
		return s, nil
	}
	return Symbol{}, &ErrUnknownBopomofo{Rune: r}
}
