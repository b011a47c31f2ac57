package dict

import (
	"github.com/chewing-go/chewing/bopomofo"
	"github.com/chewing-go/chewing/phrase"
)

// LayeredDictionary composes an ordered stack of dictionaries
// `[base, l1, l2, …]` and a set of block lists behind one Dictionary
// view (§4.4.3).
type LayeredDictionary struct {
	layers  []Dictionary
	blocked []BlockList
}

var (
	_ Dictionary = (*LayeredDictionary)(nil)
	_ Mutable    = (*LayeredDictionary)(nil)
)

// NewLayeredDictionary builds a view over layers (lowest priority first)
// filtered by blockLists.
func NewLayeredDictionary(layers []Dictionary, blockLists []BlockList) *LayeredDictionary {
	return &LayeredDictionary{layers: layers, blocked: blockLists}
}

func (d *LayeredDictionary) isBlocked(text string) bool {
	for _, b := range d.blocked {
		if b.IsBlocked(text) {
			return true
		}
	}
	return false
}

// LookupPhrase returns the stable-order union described in §4.4.3: the
// base layer's order is preserved; each upper layer either replaces an
// existing phrase's entry in place (by text) or appends a new one.
func (d *LayeredDictionary) LookupPhrase(syllables bopomofo.Sequence) []phrase.Phrase {
	if len(d.layers) == 0 {
		return nil
	}
	base := d.layers[0].LookupPhrase(syllables)
	phrases := make([]phrase.Phrase, len(base))
	copy(phrases, base)

	for _, layer := range d.layers[1:] {
		for _, p := range layer.LookupPhrase(syllables) {
			replaced := false
			for i := range phrases {
				if phrases[i].Text == p.Text {
					phrases[i] = p
					replaced = true
					break
				}
			}
			if !replaced {
				phrases = append(phrases, p)
			}
		}
	}

	out := phrases[:0]
	for _, p := range phrases {
		if !d.isBlocked(p.Text) {
			out = append(out, p)
		}
	}
	return out
}

// LookupWord is LookupPhrase for a single syllable.
func (d *LayeredDictionary) LookupWord(s bopomofo.Syllable) []phrase.Phrase {
	return d.LookupPhrase(bopomofo.Sequence{s})
}

// Entries enumerates entries from every layer; duplicates across layers
// are not merged, matching the "union of underlying iterators" shape of
// the original's layered enumeration.
func (d *LayeredDictionary) Entries() []Entry {
	var out []Entry
	for _, layer := range d.layers {
		out = append(out, layer.Entries()...)
	}
	return out
}

// About reports fixed metadata identifying this as a composed view; the
// member layers publish their own About() separately.
func (d *LayeredDictionary) About() Info {
	return Info{Name: "Built-in LayeredDictionary"}
}

// Insert, Update, and Remove apply to every layer that implements
// Mutable, in order. The first error aborts the whole mutation (§4.4.3).
func (d *LayeredDictionary) Insert(syllables bopomofo.Sequence, p phrase.Phrase) error {
	for _, layer := range d.layers {
		if m, ok := layer.(Mutable); ok {
			if err := m.Insert(syllables, p); err != nil {
				return err
			}
		}
	}
	return nil
}

func (d *LayeredDictionary) Update(syllables bopomofo.Sequence, p phrase.Phrase, userFreq int, t uint64) error {
	for _, layer := range d.layers {
		if m, ok := layer.(Mutable); ok {
			if err := m.Update(syllables, p, userFreq, t); err != nil {
				return err
			}
		}
	}
	return nil
}

func (d *LayeredDictionary) Remove(syllables bopomofo.Sequence, text string) error {
	for _, layer := range d.layers {
		if m, ok := layer.(Mutable); ok {
			if err := m.Remove(syllables, text); err != nil {
				return err
			}
		}
	}
	return nil
}

// SetBlockList is a BlockList backed by a plain set — the in-memory
// equivalent of the original's HashSet<String> implementation.
type SetBlockList map[string]struct{}

// NewSetBlockList builds a SetBlockList from a list of blocked phrase
// texts.
func NewSetBlockList(texts ...string) SetBlockList {
	s := make(SetBlockList, len(texts))
	for _, t := range texts {
		s[t] = struct{}{}
	}
	return s
}

// IsBlocked reports whether text is in the set.
func (s SetBlockList) IsBlocked(text string) bool {
	_, ok := s[text]
	return ok
}
