package editor

import "github.com/chewing-go/chewing/bopomofo"

// applyPalatalFuzzy implements the symmetric palatal/retroflex fuzzy rule
// of the Hsu editor (§4.2.2); the ET26 editor uses its own rules in
// et26.go instead. ㄐㄑㄒ followed by a non-I/IU
// medial (or nothing at all) become ㄓㄔㄕ, and ㄓㄔㄕ followed by I/IU
// become ㄐㄑㄒ. It is idempotent and safe to call after every slot
// write.
func applyPalatalFuzzy(s bopomofo.Syllable) bopomofo.Syllable {
	ini, ok := s.Initial()
	if !ok {
		return s
	}
	med, hasMedial := s.Medial()
	followsIU := hasMedial && (med == bopomofo.I || med == bopomofo.IU)

	switch ini {
	case bopomofo.J:
		if !followsIU {
			s = s.Update(bopomofo.ZH)
		}
	case bopomofo.Q:
		if !followsIU {
			s = s.Update(bopomofo.CH)
		}
	case bopomofo.X:
		if !followsIU {
			s = s.Update(bopomofo.SH)
		}
	case bopomofo.ZH:
		if followsIU {
			s = s.Update(bopomofo.J)
		}
	case bopomofo.CH:
		if followsIU {
			s = s.Update(bopomofo.Q)
		}
	case bopomofo.SH:
		if followsIU {
			s = s.Update(bopomofo.X)
		}
	}
	return s
}
