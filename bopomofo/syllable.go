package bopomofo

import "strings"

// Syllable is a value type holding at most one Bopomofo symbol per Kind.
// The zero value is the empty syllable, which is legal and distinguishable
// from any non-empty syllable.
//
// Syllable must round-trip through the 16-bit packed encoding defined by
// Encode/Decode:
//
//	bits 15..9  initial (0 = none, else 1+index)
//	bits 8..7   medial  (0..3, 0 = none)
//	bits 6..3   rime    (0..13, 0 = none)
//	bits 2..0   tone    (0..4; tone "1" is encoded as 0)
type Syllable struct {
	initial, medial, rime, tone Symbol
}

// IsEmpty reports whether no slot of the syllable is set.
func (s Syllable) IsEmpty() bool {
	return s.initial.IsZero() && s.medial.IsZero() && s.rime.IsZero() && s.tone.IsZero()
}

// Initial returns the initial slot and whether it is set.
func (s Syllable) Initial() (Symbol, bool) { return s.initial, !s.initial.IsZero() }

// Medial returns the medial slot and whether it is set.
func (s Syllable) Medial() (Symbol, bool) { return s.medial, !s.medial.IsZero() }

// Rime returns the rime slot and whether it is set.
func (s Syllable) Rime() (Symbol, bool) { return s.rime, !s.rime.IsZero() }

// Tone returns the tone slot and whether it is set. Tone1 has an empty
// glyph and counts as unset: ok is false both for a slot that was never
// written and for one holding Tone1.
func (s Syllable) Tone() (Symbol, bool) { return s.tone, !s.tone.IsZero() }

// HasToneMark reports whether the tone slot holds a marked tone (Tone2
// through Tone5). Tone1 is unmarked and does not count.
func (s Syllable) HasToneMark() bool { return !s.tone.IsZero() }

// Update replaces the slot matching b.Kind() with b, leaving other slots
// untouched.
func (s Syllable) Update(b Symbol) Syllable {
	switch b.Kind() {
	case Initial:
		s.initial = b
	case Medial:
		s.medial = b
	case Rime:
		s.rime = b
	case Tone:
		s.tone = b
	}
	return s
}

// Clear unsets the slot of the given Kind.
func (s Syllable) Clear(k Kind) Syllable {
	switch k {
	case Initial:
		s.initial = Symbol{}
	case Medial:
		s.medial = Symbol{}
	case Rime:
		s.rime = Symbol{}
	case Tone:
		s.tone = Symbol{}
	}
	return s
}

// ClearAll resets every slot, returning the empty syllable.
func (s Syllable) ClearAll() Syllable { return Syllable{} }

// Pop removes the last slot set in display order (tone, then rime, then
// medial, then initial), and reports which Kind was removed. If the
// syllable is already empty, it returns s unchanged and ok=false.
func (s Syllable) Pop() (Syllable, Kind, bool) {
	switch {
	case !s.tone.IsZero():
		s.tone = Symbol{}
		return s, Tone, true
	case !s.rime.IsZero():
		s.rime = Symbol{}
		return s, Rime, true
	case !s.medial.IsZero():
		s.medial = Symbol{}
		return s, Medial, true
	case !s.initial.IsZero():
		s.initial = Symbol{}
		return s, Initial, true
	default:
		return s, 0, false
	}
}

// String renders the syllable in display order: initial, medial, rime,
// tone.
func (s Syllable) String() string {
	var b strings.Builder
	if v, ok := s.Initial(); ok {
		b.WriteString(v.String())
	}
	if v, ok := s.Medial(); ok {
		b.WriteString(v.String())
	}
	if v, ok := s.Rime(); ok {
		b.WriteString(v.String())
	}
	if v, ok := s.Tone(); ok {
		b.WriteString(v.String())
	}
	return b.String()
}

// Encode packs the syllable into its canonical 16-bit representation,
// little-endian on the wire (see Syllable.Bytes). This is the on-disk key
// encoding used by the user dictionary and the wire format between editor,
// session, and dictionary.
func (s Syllable) Encode() uint16 {
	var v uint16
	if i, ok := s.Initial(); ok {
		v |= uint16(1+i.Index()) << 9
	}
	if m, ok := s.Medial(); ok {
		v |= uint16(1+m.Index()) << 7
	}
	if r, ok := s.Rime(); ok {
		v |= uint16(1+r.Index()) << 3
	}
	if t, ok := s.Tone(); ok {
		// Tone1 (index 4 in Tones, unmarked) encodes as 0; tones 2..5
		// (indices 1..3, 0 in Tones) encode as 1..4 matching their
		// spoken tone number minus 1.
		v |= toneCode(t)
	}
	return v
}

// toneCode maps a tone Symbol to its 3-bit wire code: unmarked tone1 = 0,
// tone2..tone5 = 1..4.
func toneCode(t Symbol) uint16 {
	switch t {
	case Tone1:
		return 0
	case Tone2:
		return 1
	case Tone3:
		return 2
	case Tone4:
		return 3
	case Tone5:
		return 4
	default:
		return 0
	}
}

func toneFromCode(c uint16) Symbol {
	switch c {
	case 0:
		return Tone1
	case 1:
		return Tone2
	case 2:
		return Tone3
	case 3:
		return Tone4
	case 4:
		return Tone5
	default:
		return Symbol{}
	}
}

// Decode unpacks a 16-bit value produced by Encode (or read from disk)
// into a Syllable. It returns ErrDecodeSyllable if any non-zero slot names
// an index outside the valid range for its Kind.
func Decode(v uint16) (Syllable, error) {
	var s Syllable
	if iv := (v >> 9) & 0x7f; iv != 0 {
		idx := int(iv) - 1
		if idx >= len(Initials) {
			return Syllable{}, &ErrDecodeSyllable{Kind: Initial, Value: int(iv)}
		}
		s.initial = Initials[idx]
	}
	if mv := (v >> 7) & 0x3; mv != 0 {
		idx := int(mv) - 1
		if idx >= len(Medials) {
			return Syllable{}, &ErrDecodeSyllable{Kind: Medial, Value: int(mv)}
		}
		s.medial = Medials[idx]
	}
	if rv := (v >> 3) & 0xf; rv != 0 {
		idx := int(rv) - 1
		if idx >= len(Rimes) {
			return Syllable{}, &ErrDecodeSyllable{Kind: Rime, Value: int(rv)}
		}
		s.rime = Rimes[idx]
	}
	tv := v & 0x7
	if tv > 4 {
		return Syllable{}, &ErrDecodeSyllable{Kind: Tone, Value: int(tv)}
	}
	// Tone code 0 is the unmarked first tone; it decodes to an empty tone
	// slot, so a syllable without a tone mark round-trips unchanged.
	if tv != 0 {
		s.tone = toneFromCode(tv)
	}
	return s, nil
}

// Bytes returns the little-endian byte pair used as the on-disk key
// encoding (see §6.1/§6.2 of the design: syllables_bytes is the
// concatenation of each syllable's 16-bit encoding in this order).
func (s Syllable) Bytes() [2]byte {
	v := s.Encode()
	return [2]byte{byte(v), byte(v >> 8)}
}

// DecodeBytes is the inverse of Bytes.
func DecodeBytes(b [2]byte) (Syllable, error) {
	return Decode(uint16(b[0]) | uint16(b[1])<<8)
}

// Sequence is an ordered list of syllables, e.g. the syllables field of a
// ChineseSequence.
type Sequence []Syllable

// EncodeBytes concatenates the little-endian packed encoding of every
// syllable in the sequence, in order: this is the syllables_bytes key used
// by the user dictionary (§4.4.2 / §6.1).
func (seq Sequence) EncodeBytes() []byte {
	out := make([]byte, 0, len(seq)*2)
	for _, s := range seq {
		b := s.Bytes()
		out = append(out, b[0], b[1])
	}
	return out
}

// DecodeSequenceBytes is the inverse of Sequence.EncodeBytes.
func DecodeSequenceBytes(b []byte) (Sequence, error) {
	if len(b)%2 != 0 {
		return nil, &ErrDecodeSyllable{Kind: Initial, Value: len(b)}
	}
	seq := make(Sequence, 0, len(b)/2)
	for i := 0; i < len(b); i += 2 {
		s, err := DecodeBytes([2]byte{b[i], b[i+1]})
		if err != nil {
			return nil, err
		}
		seq = append(seq, s)
	}
	return seq, nil
}

func (seq Sequence) String() string {
	var b strings.Builder
	for i, s := range seq {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s.String())
	}
	return b.String()
}
