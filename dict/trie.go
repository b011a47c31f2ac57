package dict

import (
	"bufio"
	"encoding/gob"
	"errors"
	"io"

	"github.com/chewing-go/chewing/bopomofo"
	"github.com/chewing-go/chewing/phrase"
)

var errEmptySyllables = errors.New("cannot insert a phrase at zero syllables")

// Stats are the structural statistics a TrieDictionaryBuilder must
// publish about the tree it built (§4.4.1).
type Stats struct {
	Nodes        int
	LeafSets     int
	Roots        int
	Phrases      int
	MaxDepth     int
	AvgDepth     float64
	MaxBranching int
	AvgBranching float64
}

type trieNode struct {
	children map[bopomofo.Syllable]*trieNode
	leaf     []phrase.Phrase // non-nil only at a syllable-sequence leaf
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[bopomofo.Syllable]*trieNode)}
}

// TrieDictionary is a read-only, offline-built system dictionary. It
// stores phrases keyed by a syllable sequence in a tree shared across
// common prefixes, the way a multi-syllable phrase table naturally
// compresses: every phrase starting with the same syllables shares the
// path down to where they diverge.
type TrieDictionary struct {
	root    *trieNode
	info    Info
	stats   Stats
	entries []Entry
}

var _ Dictionary = (*TrieDictionary)(nil)

// LookupPhrase returns the phrases stored at syllables, in insertion
// order.
func (t *TrieDictionary) LookupPhrase(syllables bopomofo.Sequence) []phrase.Phrase {
	n := t.root
	for _, s := range syllables {
		child, ok := n.children[s]
		if !ok {
			return nil
		}
		n = child
	}
	if n.leaf == nil {
		return nil
	}
	out := make([]phrase.Phrase, len(n.leaf))
	copy(out, n.leaf)
	return out
}

// LookupWord is LookupPhrase for a single syllable.
func (t *TrieDictionary) LookupWord(s bopomofo.Syllable) []phrase.Phrase {
	return t.LookupPhrase(bopomofo.Sequence{s})
}

// Entries enumerates every (syllables, phrase) pair, in build order.
func (t *TrieDictionary) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// About reports the dictionary's published metadata.
func (t *TrieDictionary) About() Info { return t.info }

// Stats reports the structural statistics the builder computed.
func (t *TrieDictionary) Stats() Stats { return t.stats }

// TrieDictionaryBuilder constructs a TrieDictionary offline, in a single
// pass, then publishes Stats over the finished tree. The TrieDictionary
// that Build returns has no mutation methods (§4.4.1). Build does not
// copy the tree, so a later Insert on the same builder also changes what
// that dictionary returns.
type TrieDictionaryBuilder struct {
	root    *trieNode
	roots   map[bopomofo.Syllable]bool
	entries []Entry
	info    Info
}

// NewTrieDictionaryBuilder starts an empty builder.
func NewTrieDictionaryBuilder() *TrieDictionaryBuilder {
	return &TrieDictionaryBuilder{
		root:  newTrieNode(),
		roots: make(map[bopomofo.Syllable]bool),
	}
}

// SetInfo records the metadata the built dictionary will report from
// About().
func (b *TrieDictionaryBuilder) SetInfo(info Info) *TrieDictionaryBuilder {
	b.info = info
	return b
}

// Insert adds a phrase under syllables. It returns *DuplicatePhraseError
// if the same (syllables, text) pair was already inserted.
func (b *TrieDictionaryBuilder) Insert(syllables bopomofo.Sequence, p phrase.Phrase) error {
	if len(syllables) == 0 {
		return &BuildDictionaryError{Op: "insert", Err: errEmptySyllables}
	}
	b.roots[syllables[0]] = true
	n := b.root
	for _, s := range syllables {
		child, ok := n.children[s]
		if !ok {
			child = newTrieNode()
			n.children[s] = child
		}
		n = child
	}
	for _, existing := range n.leaf {
		if existing.Text == p.Text {
			return &DuplicatePhraseError{Syllables: syllables, Text: p.Text}
		}
	}
	n.leaf = append(n.leaf, p)
	b.entries = append(b.entries, Entry{Syllables: append(bopomofo.Sequence{}, syllables...), Phrase: p})
	return nil
}

// Build finalizes the tree and computes its published Stats.
func (b *TrieDictionaryBuilder) Build() *TrieDictionary {
	stats := Stats{Roots: len(b.roots)}
	var depthSum, branchSum, branchNodes int

	var walk func(n *trieNode, depth int)
	walk = func(n *trieNode, depth int) {
		stats.Nodes++
		if n.leaf != nil {
			stats.LeafSets++
			stats.Phrases += len(n.leaf)
			if depth > stats.MaxDepth {
				stats.MaxDepth = depth
			}
			depthSum += depth
		}
		if len(n.children) > 0 {
			branchNodes++
			if len(n.children) > stats.MaxBranching {
				stats.MaxBranching = len(n.children)
			}
			branchSum += len(n.children)
		}
		for _, child := range n.children {
			walk(child, depth+1)
		}
	}
	walk(b.root, 0)

	if stats.LeafSets > 0 {
		stats.AvgDepth = float64(depthSum) / float64(stats.LeafSets)
	}
	if branchNodes > 0 {
		stats.AvgBranching = float64(branchSum) / float64(branchNodes)
	}

	return &TrieDictionary{
		root:    b.root,
		info:    b.info,
		stats:   stats,
		entries: b.entries,
	}
}

// gobEntry is the on-disk shape of one Entry: syllables packed the same
// way bopomofo.Sequence.EncodeBytes does, so a system dictionary file
// carries no encoding logic of its own beyond the envelope.
type gobEntry struct {
	Syllables []byte
	Text      string
	Freq      int
}

// gobSnapshot is the full contents of a system dictionary file. The
// on-disk layout is an implementation detail of the builder (§4.4.1) —
// this module picks encoding/gob over a bespoke binary format because no
// pack library offers one and the file is only ever read back by this
// same package.
type gobSnapshot struct {
	Info    Info
	Entries []gobEntry
}

// Save writes t as a system dictionary file, readable back with
// LoadTrieDictionary.
func (t *TrieDictionary) Save(w io.Writer) error {
	snap := gobSnapshot{Info: t.info, Entries: make([]gobEntry, len(t.entries))}
	for i, e := range t.entries {
		snap.Entries[i] = gobEntry{
			Syllables: e.Syllables.EncodeBytes(),
			Text:      e.Phrase.Text,
			Freq:      e.Phrase.Freq,
		}
	}
	bw := bufio.NewWriter(w)
	if err := gob.NewEncoder(bw).Encode(snap); err != nil {
		return &BuildDictionaryError{Op: "save", Err: err}
	}
	if err := bw.Flush(); err != nil {
		return &BuildDictionaryError{Op: "save", Err: err}
	}
	return nil
}

// LoadTrieDictionary reads a file written by Save and rebuilds the trie,
// recomputing Stats over the restored tree.
func LoadTrieDictionary(r io.Reader) (*TrieDictionary, error) {
	var snap gobSnapshot
	if err := gob.NewDecoder(bufio.NewReader(r)).Decode(&snap); err != nil {
		return nil, &BuildDictionaryError{Op: "load", Err: err}
	}

	b := NewTrieDictionaryBuilder().SetInfo(snap.Info)
	for _, e := range snap.Entries {
		syllables, err := bopomofo.DecodeSequenceBytes(e.Syllables)
		if err != nil {
			return nil, &BuildDictionaryError{Op: "load", Err: err}
		}
		if err := b.Insert(syllables, phrase.New(e.Text, e.Freq)); err != nil {
			return nil, &BuildDictionaryError{Op: "load", Err: err}
		}
	}
	return b.Build(), nil
}
