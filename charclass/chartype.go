package charclass

import (
	"unicode"

	"github.com/npillmayer/textbreak/arabic"
)

// CharType is the coarse category of a character. The order is
// significant: types from ArabicAlef on are Arabic sub-types, and types
// between Tab and Control are "empty", i.e. they produce no glyph.
type CharType uint8

// Character types.
const (
	Unknown CharType = iota
	Tab
	Space
	Control
	Combination
	Numeric
	Normal
	ArabicAlef       // Alef letters, ligating with a preceding Lam
	ArabicSpecial    // right-joining letters
	ArabicDistortion // dual-joining letters and Tatweel
	ArabicNormal     // non-joining letters
	ArabicForm       // presentation forms
	Arabic           // other code-points of the Arabic script
)

var typeNames = [...]string{
	"Unknown", "Tab", "Space", "Control", "Combination", "Numeric", "Normal",
	"ArabicAlef", "ArabicSpecial", "ArabicDistortion", "ArabicNormal",
	"ArabicForm", "Arabic",
}

func (t CharType) String() string {
	if int(t) >= len(typeNames) {
		return "CharType(?)"
	}
	return typeNames[t]
}

// Line and paragraph separators.
const (
	LineSeparator      = rune(0x2028)
	ParagraphSeparator = rune(0x2029)
)

// TypeOf classifies a code-point. Invalid code-points are of type Unknown.
func TypeOf(r rune) CharType {
	switch {
	case r < 0 || r > unicode.MaxRune || (r >= 0xD800 && r <= 0xDFFF):
		return Unknown
	case r == '\t':
		return Tab
	case r == LineSeparator || r == ParagraphSeparator || unicode.Is(unicode.Cc, r):
		return Control
	case unicode.Is(unicode.Zs, r):
		return Space
	case unicode.In(r, unicode.Mn, unicode.Me):
		return Combination
	case unicode.Is(unicode.Nd, r):
		return Numeric
	case isArabicBlock(r):
		return arabicType(r)
	case (r >= 0xFB50 && r <= 0xFDFF) || (r >= 0xFE70 && r <= 0xFEFC):
		return ArabicForm
	}
	return Normal
}

func isArabicBlock(r rune) bool {
	return (r >= 0x0600 && r <= 0x06FF) || (r >= 0x0750 && r <= 0x077F) ||
		(r >= 0x08A0 && r <= 0x08FF)
}

func arabicType(r rune) CharType {
	switch arabic.Joining(r) {
	case arabic.RightJoining:
		if arabic.IsAlef(r) {
			return ArabicAlef
		}
		return ArabicSpecial
	case arabic.DualJoining, arabic.JoinCausing:
		return ArabicDistortion
	}
	if unicode.IsLetter(r) {
		return ArabicNormal
	}
	return Arabic
}

// Unified folds all Arabic sub-types onto Arabic. Line breakers use it to
// detect a change of character class.
func Unified(t CharType) CharType {
	if t >= ArabicAlef {
		return Arabic
	}
	return t
}

// IsArabic is true for all Arabic sub-types.
func IsArabic(t CharType) bool {
	return t >= ArabicAlef
}

// IsEmpty is true for types which advance the pen without producing a glyph.
func IsEmpty(t CharType) bool {
	return t >= Tab && t <= Control
}
