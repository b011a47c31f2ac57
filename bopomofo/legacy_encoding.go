package bopomofo

import (
	"golang.org/x/text/encoding"
)

// LegacyBytes renders s through a caller-supplied legacy charset
// encoding, for embedding text — a Syllable's rendered glyphs, a
// dictionary's About() metadata strings — into blobs produced by
// tooling that still speaks a pre-Unicode charset such as Big5. Most
// callers never need this: modern builders and the trie/user
// dictionaries in this module always speak UTF-8.
//
// Unencodable runes fall back to the encoding's native substitution
// behavior; see the golang.org/x/text/encoding documentation for the
// chosen Encoding.
func LegacyBytes(s string, enc encoding.Encoding) ([]byte, error) {
	return enc.NewEncoder().Bytes([]byte(s))
}

// LegacyString decodes b, text in enc's charset, back to a UTF-8 Go
// string — the inverse of LegacyBytes.
func LegacyString(b []byte, enc encoding.Encoding) (string, error) {
	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
