// Package chewing is the public entry point wiring the phonetic editors
// (package editor), the dictionary layer (package dict), and the phrase
// converter (package conversion) behind the operations a host session
// calls (§6.4): construct a syllable editor for a layout, feed it key
// events, open system/user dictionaries and compose them into a layered
// view, and convert a committed syllable run into phrase intervals.
//
// Following the teacher's layout, the narrowly-scoped subpackages
// (bopomofo, keymap, editor, dict, conversion, phrase) hold the domain
// types and algorithms; this root package holds the glue types a caller
// actually touches and re-exports their constructors, the way tcell
// keeps Screen, Style, Cell, and Key in one importable root package
// beside its internal terminfo/terminal machinery.
package chewing

import "github.com/chewing-go/chewing/conversion"

// Interval is a half-open span of syllable positions paired with the
// phrase text chosen to cover it. It is the element type Convert and
// ConvertNext return.
type Interval = conversion.Interval

// Selection is a user-fixed Interval: a span the caller has already
// committed to a specific phrase, which a conversion must honor.
type Selection = conversion.Interval

// Break is a syllable position no returned Interval may span.
type Break = int

// ChineseSequence is a committed run of Bopomofo syllables together with
// the Selections and Breaks a conversion must respect.
type ChineseSequence = conversion.ChineseSequence
