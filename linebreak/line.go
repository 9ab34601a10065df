package linebreak

import "github.com/npillmayer/textbreak/charclass"

// line is one of the two line slots of a breaker. Characters are stored in
// an arena; pieces refer to them by index.
type line struct {
	chars  []Char
	pieces []BreakPiece
	start  int32 // start position, including the line start offset
	width  int32 // accumulated width of all characters with positive width
	arabic int   // count of Arabic characters
}

func (l *line) end() int32 {
	return l.start + l.width
}

func (l *line) clear() {
	l.chars = l.chars[:0]
	l.pieces = l.pieces[:0]
	l.width = 0
	l.arabic = 0
}

func (l *line) lastChar() *Char {
	if len(l.chars) == 0 {
		return nil
	}
	return &l.chars[len(l.chars)-1]
}

// lastCharAt returns the index-th character from the end of the line.
// Combining marks are skipped if omitMarks is set, or if folded is set and
// they have been folded onto their base character.
func (l *line) lastCharAt(index int, omitMarks, folded bool) *Char {
	if index < 0 || index >= len(l.chars) {
		return nil
	}
	for i := len(l.chars) - 1; i >= 0; i-- {
		c := &l.chars[i]
		if c.Type == charclass.Combination && (omitMarks || (folded && c.Width < 0)) {
			continue
		}
		if index == 0 {
			return c
		}
		index--
	}
	return nil
}

// moveTail moves the characters from pos on to the empty line next.
func (l *line) moveTail(pos int, next *line) {
	next.chars = append(next.chars[:0], l.chars[pos:]...)
	l.chars = l.chars[:pos]
	next.width, next.arabic = 0, 0
	for i := range next.chars {
		c := &next.chars[i]
		if charclass.IsArabic(c.Type) {
			l.arabic--
			next.arabic++
		}
		if c.Width > 0 {
			next.width += c.Width
		}
		c.Status = None
	}
}
