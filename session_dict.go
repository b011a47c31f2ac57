package chewing

import (
	"os"

	"github.com/chewing-go/chewing/dict"
	"github.com/chewing-go/chewing/phrase"
)

// Dictionary is the read-only contract every dictionary this package
// opens or composes satisfies.
type Dictionary = dict.Dictionary

// MutableDictionary additionally accepts Insert/Update/Remove. The user
// dictionary and every LayeredDictionary satisfy it; a LayeredDictionary
// passes mutations only to its layers that are themselves mutable.
type MutableDictionary = dict.Mutable

// BlockList reports whether a phrase's text is blocked from appearing in
// layered lookups, regardless of which layer produced it.
type BlockList = dict.BlockList

// Entry is one (syllables, phrase) pair as produced by a Dictionary's
// Entries method.
type Entry = dict.Entry

// DictionaryInfo is the metadata a dictionary publishes about itself.
type DictionaryInfo = dict.Info

// Phrase is a single dictionary entry: text, frequency, and — for user
// dictionary entries — a last-used timestamp.
type Phrase = phrase.Phrase

// Error kinds (§7), defined where they are raised (package dict) and
// re-exported here as the public names a caller matches against with
// errors.As.
type (
	DictionaryUpdateError = dict.DictionaryUpdateError
	DuplicatePhraseError  = dict.DuplicatePhraseError
	BuildDictionaryError  = dict.BuildDictionaryError
	MissingTableError     = dict.MissingTableError
)

// OpenSystemDict opens the read-only binary system dictionary file at
// path (§6.3, §6.4 open_system_dict). The file is the format
// dict.TrieDictionary.Save writes; building one from phrase source data
// is a dict.TrieDictionaryBuilder's job, not this package's.
func OpenSystemDict(path string) (*dict.TrieDictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &dict.BuildDictionaryError{Op: "open system dict", Err: err}
	}
	defer f.Close()
	return dict.LoadTrieDictionary(f)
}

// OpenUserDict opens path as a read-write user dictionary, creating it
// and running any pending migration if it doesn't already exist (§6.2,
// §6.4 open_user_dict).
func OpenUserDict(path string) (*dict.SQLiteUserDictionary, error) {
	return dict.Open(path)
}

// OpenUserDictReadonly opens path without ever writing to or migrating
// it (§6.2, §6.4 open_user_dict_readonly).
func OpenUserDictReadonly(path string) (*dict.SQLiteUserDictionary, error) {
	return dict.OpenReadOnly(path)
}

// Layered composes dicts (lowest priority first) filtered by blockLists
// behind one Dictionary view (§4.4.3, §6.4 layered).
func Layered(dicts []Dictionary, blockLists []BlockList) *dict.LayeredDictionary {
	return dict.NewLayeredDictionary(dicts, blockLists)
}

// NewBlockList builds a BlockList from a list of blocked phrase texts.
func NewBlockList(texts ...string) BlockList {
	return dict.NewSetBlockList(texts...)
}
