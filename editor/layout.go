package editor

import "github.com/chewing-go/chewing/keymap"

// Layout names one of the thirteen supported keyboard configurations
// (§6.5). It pairs a syllable editor (a Bopomofo state machine) with a
// physical keymap.
type Layout int

const (
	Default Layout = iota
	Hsu
	Ibm
	GinYieh
	Et
	Et26
	Dvorak
	DvorakHsu
	DachenCp26
	HanyuPinyinLayout
	ThlPinyinLayout
	Mps2PinyinLayout
	Carpalx
)

func (l Layout) String() string {
	switch l {
	case Default:
		return "Default"
	case Hsu:
		return "Hsu"
	case Ibm:
		return "Ibm"
	case GinYieh:
		return "GinYieh"
	case Et:
		return "Et"
	case Et26:
		return "Et26"
	case Dvorak:
		return "Dvorak"
	case DvorakHsu:
		return "DvorakHsu"
	case DachenCp26:
		return "DachenCp26"
	case HanyuPinyinLayout:
		return "HanyuPinyin"
	case ThlPinyinLayout:
		return "ThlPinyin"
	case Mps2PinyinLayout:
		return "Mps2Pinyin"
	case Carpalx:
		return "Carpalx"
	default:
		return "Unknown"
	}
}

// NewEditor constructs the syllable editor for a Layout. Ibm and GinYieh
// reuse the Standard state machine: both are historical keycap
// rearrangements of the same Dachen symbol-per-slot assignment, not
// distinct fix-up logic. NewKeymap gives both the Identity keymap, so
// they type exactly like Default. Et is the uncompressed counterpart of
// Et26 and reuses its fix-up rules verbatim.
func NewEditor(l Layout) Editor {
	switch l {
	case Hsu, DvorakHsu:
		return NewHsu()
	case Et26, Et:
		return NewEt26()
	case DachenCp26:
		return NewDachenCp26()
	case HanyuPinyinLayout:
		return NewPinyin(HanyuPinyin)
	case ThlPinyinLayout:
		return NewPinyin(ThlPinyin)
	case Mps2PinyinLayout:
		return NewPinyin(Mps2Pinyin)
	default: // Default, Ibm, GinYieh, Dvorak, Carpalx
		return NewStandard()
	}
}

// NewKeymap returns the physical keymap a Layout types through.
func NewKeymap(l Layout) keymap.Keymap {
	switch l {
	case Dvorak, DvorakHsu:
		return keymap.Dvorak
	case Carpalx:
		return keymap.CarpalX
	default:
		return keymap.Identity
	}
}
