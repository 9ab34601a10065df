package linebreak

import "fmt"

// BreakType is the status of a break. The order is significant: a status
// is never downgraded to a lesser one.
type BreakType uint8

// Break types.
const (
	None      BreakType = iota // no break
	Piece                      // end of a piece within a line
	Line                       // end of a line
	Paragraph                  // end of a paragraph
	Page                       // end of a page
)

func (bt BreakType) String() string {
	switch bt {
	case None:
		return "None"
	case Piece:
		return "Piece"
	case Line:
		return "Line"
	case Paragraph:
		return "Paragraph"
	case Page:
		return "Page"
	}
	return fmt.Sprintf("BreakType(%d)", bt)
}

// Alignment is the horizontal alignment of lines.
type Alignment uint8

// Alignments. Justified lines are stretched to the line width, except for the
// last line of a paragraph; distributed lines are always stretched.
const (
	Left Alignment = iota
	Center
	Right
	Justified
	Distributed
)

var alignmentNames = [...]string{"left", "center", "right", "justified", "distributed"}

func (a Alignment) String() string {
	if int(a) >= len(alignmentNames) {
		return fmt.Sprintf("Alignment(%d)", a)
	}
	return alignmentNames[a]
}

// AlignmentFromString parses an alignment name, case sensitive.
func AlignmentFromString(s string) (Alignment, bool) {
	for i, name := range alignmentNames {
		if name == s {
			return Alignment(i), true
		}
	}
	return Left, false
}

// stretches is true for alignments which distribute space over break
// opportunities.
func (a Alignment) stretches() bool {
	return a >= Justified
}

// LayoutStyle is a set of flags controlling a line breaker.
type LayoutStyle uint8

// Layout styles.
const (
	Pagination LayoutStyle = 1 << iota // RTFBreak: cut lines into pieces of equal style, no bidi
	ExpandTab                          // RTFBreak: tabs advance to the next tab stop
	SingleLine                         // TxtBreak: never break lines
	CombText                           // TxtBreak: every character has the comb width
)

// Fixed point units: widths are measured in 1/20000 pt, font sizes in 1/20 pt.
const (
	conversionFactor = 20000
	fontSizeFactor   = 20
	minimumTabWidth  = 160000
)

func toFixed(v float32) int32 {
	return round(v * conversionFactor)
}

func round(v float32) int32 {
	if v < 0 {
		return int32(v - 0.5)
	}
	return int32(v + 0.5)
}
