package dict

import (
	"golang.org/x/text/encoding"

	"github.com/chewing-go/chewing/bopomofo"
)

// SetLegacySoftware decodes raw — the Software metadata field as stored
// by a pre-Unicode system dictionary builder, typically Big5 — and
// records it on the dictionary under construction, the way importing an
// old dict.dat's embedded metadata record (§6.3) must.
func (b *TrieDictionaryBuilder) SetLegacySoftware(raw []byte, enc encoding.Encoding) (*TrieDictionaryBuilder, error) {
	s, err := bopomofo.LegacyString(raw, enc)
	if err != nil {
		return nil, &BuildDictionaryError{Op: "decode legacy software", Err: err}
	}
	b.info.Software = s
	return b, nil
}

// LegacySoftwareBytes renders info's Software field through enc, the
// inverse of SetLegacySoftware, for tooling that still reads a system
// dictionary's metadata in a pre-Unicode charset.
func (info Info) LegacySoftwareBytes(enc encoding.Encoding) ([]byte, error) {
	return bopomofo.LegacyBytes(info.Software, enc)
}
