package charclass

import "unicode"

// IsIgnorableForWordBreak reports whether a character may stand next to a
// word without separating whitespace, i.e. whether it ends a word on its own.
//
// Latin-1 letters and digits are never ignorable, other Latin-1 characters
// always are. Quotation marks, general punctuation and box drawing
// characters are not ignorable, while Arabic, Cyrillic, CJK punctuation,
// Kana, Hangul and CJK ideographs are: scripts which either do not separate
// words by spaces or are searched character by character.
func IsIgnorableForWordBreak(r rune) bool {
	if r < 0xFF {
		return !(unicode.IsLetter(r) || unicode.IsDigit(r))
	}
	switch {
	case r >= 0x2000 && r <= 0x206F: // general punctuation, includes quotes
		return false
	case r >= 0x2500 && r <= 0x257F: // box drawing
		return false
	}
	for _, rg := range ignorableRanges {
		if r >= rg[0] && r <= rg[1] {
			return true
		}
	}
	return unicode.In(r, unicode.Z, unicode.P)
}

var ignorableRanges = [...][2]rune{
	{0x0400, 0x052F}, // Cyrillic and supplement
	{0x0600, 0x06FF}, // Arabic
	{0x2DE0, 0x2DFF}, // Cyrillic extended-A
	{0x3000, 0x303F}, // CJK symbols and punctuation
	{0x3040, 0x30FF}, // Hiragana, Katakana
	{0x3400, 0x4DBF}, // CJK extension A
	{0x4E00, 0x9FFF}, // CJK unified ideographs
	{0xA640, 0xA69F}, // Cyrillic extended-B
	{0xAC00, 0xD7AF}, // Hangul syllables
	{0xF900, 0xFAFF}, // CJK compatibility ideographs
	{0xFB50, 0xFDFF}, // Arabic presentation forms-A
	{0xFE70, 0xFEFF}, // Arabic presentation forms-B
	{0xFF00, 0xFFEF}, // half- and full-width forms
}
