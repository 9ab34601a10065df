package charclass

// BreakOpportunity is the kind of line break permitted between two
// adjacent characters.
type BreakOpportunity uint8

// Break opportunities, see the example pair table of UAX#14.
const (
	UnknownBreak       BreakOpportunity = iota // not yet determined
	DirectBreak                                // break permitted
	IndirectBreak                              // break permitted only if spaces intervene
	ComIndirectBreak                           // indirect break before a combining mark
	ComProhibitedBreak                         // prohibited break before a combining mark
	ProhibitedBreak                            // no break permitted
	HangulSpaceBreak                           // break between Hangul syllables and spaces
)

func (bo BreakOpportunity) String() string {
	switch bo {
	case DirectBreak:
		return "_"
	case IndirectBreak:
		return "%"
	case ComIndirectBreak:
		return "#"
	case ComProhibitedBreak:
		return "@"
	case ProhibitedBreak:
		return "^"
	case HangulSpaceBreak:
		return "H"
	}
	return "?"
}

// Rows are the class of the character before the break, columns the class
// of the character after it. The column order is the order of the
// BreakProperty constants up to TB.
//
//	    OP CL CP QU GL NS EX SY IS PR PO NU AL ID IN HY BA BB B2 ZW CM WJ H2 H3 JL JV JT SP TB
var pairRows = [TB + 1]string{
	OP: "^^^^^^^^^^^^^^^^^^^^@^^^^^^^^",
	CL: "_^^%%^^^^%%____%%__^#^_____^^",
	CP: "_^^%%^^^^%%%%__%%__^#^_____^^",
	QU: "^^^%%%^^^%%%%%%%%%%^#^%%%%%^^",
	GL: "%^^%%%^^^%%%%%%%%%%^#^%%%%%^^",
	NS: "_^^%%%^^^______%%__^#^_____^^",
	EX: "_^^%%%^^^______%%__^#^_____^^",
	SY: "_^^%%%^^^__%___%%__^#^_____^^",
	IS: "_^^%%%^^^__%%__%%__^#^_____^^",
	PR: "%^^%%%^^^__%%%_%%__^#^%%%%%^^",
	PO: "%^^%%%^^^__%%__%%__^#^_____^^",
	NU: "%^^%%%^^^%%%%_%%%__^#^_____^^",
	AL: "%^^%%%^^^__%%_%%%__^#^_____^^",
	ID: "_^^%%%^^^_%___%%%__^#^_____^^",
	IN: "_^^%%%^^^_____%%%__^#^_____^^",
	HY: "_^^%_%^^^__%___%%__^#^_____^^",
	BA: "_^^%_%^^^______%%__^#^_____^^",
	BB: "%^^%%%^^^%%%%%%%%%%^#^%%%%%^^",
	B2: "_^^%%%^^^______%%_^^#^_____^^",
	ZW: "___________________^_______^^",
	CM: "%^^%%%^^^__%%_%%%__^#^_____^^",
	WJ: "%^^%%%^^^%%%%%%%%%%^#^%%%%%^^",
	H2: "_^^%%%^^^_%___%%%__^#^___%%^^",
	H3: "_^^%%%^^^_%___%%%__^#^____%^^",
	JL: "_^^%%%^^^_%___%%%__^#^%%%%_^^",
	JV: "_^^%%%^^^_%___%%%__^#^___%%^^",
	JT: "_^^%%%^^^_%___%%%__^#^____%^^",
	SP: "_^^___^^^__________^_^_____^^",
	TB: "_^^___^^^__________^_^_____^^",
}

var pairTable [TB + 1][TB + 1]BreakOpportunity

func init() {
	for row, s := range pairRows {
		for col := range pairTable[row] {
			pairTable[row][col] = opportunityFromSymbol(s[col])
		}
	}
}

func opportunityFromSymbol(b byte) BreakOpportunity {
	switch b {
	case '_':
		return DirectBreak
	case '%':
		return IndirectBreak
	case '#':
		return ComIndirectBreak
	case '@':
		return ComProhibitedBreak
	case '^':
		return ProhibitedBreak
	}
	return UnknownBreak
}

// PairType returns the break opportunity between two adjacent characters
// with line breaking classes cur and next.
// A break before a space or a tab is never permitted. A break after a
// mandatory break character is always permitted, a break before one never.
func PairType(cur, next BreakProperty) BreakOpportunity {
	switch {
	case next >= BK && next <= NL:
		return ProhibitedBreak
	case cur >= BK && cur <= NL:
		return DirectBreak
	case cur > TB || next > TB:
		return UnknownBreak
	}
	return pairTable[cur][next]
}
