package charclass

import (
	"sync"
	"unicode"

	ucd "github.com/benoitkugler/textlayout/unicodedata"
)

// BreakProperty is a UAX#14 line breaking class, after resolution of the
// classes which UAX#14 leaves to the implementation (rule LB1).
// The first classes up to JT index the pair table, SP and TB are handled
// separately, and the mandatory break classes never enter the table.
type BreakProperty uint8

// Line breaking classes.
const (
	OP BreakProperty = iota // open punctuation
	CL                      // close punctuation
	CP                      // close parenthesis
	QU                      // ambiguous quotation
	GL                      // non-breaking ("glue")
	NS                      // non-starters
	EX                      // exclamation/interrogation
	SY                      // symbols allowing break after
	IS                      // infix numeric separator
	PR                      // prefix numeric
	PO                      // postfix numeric
	NU                      // numeric
	AL                      // alphabetic
	ID                      // ideographic
	IN                      // inseparable
	HY                      // hyphen
	BA                      // break after
	BB                      // break before
	B2                      // break opportunity before and after
	ZW                      // zero width space
	CM                      // combining mark
	WJ                      // word joiner
	H2                      // Hangul LV syllable
	H3                      // Hangul LVT syllable
	JL                      // Hangul L jamo
	JV                      // Hangul V jamo
	JT                      // Hangul T jamo
	SP                      // space
	TB                      // tabulator
	BK                      // mandatory break
	CR                      // carriage return
	LF                      // line feed
	NL                      // next line
)

const breakPropertyNames = "OPCLCPQUGLNSEXSYISPRPONUALIDINHYBABBB2ZWCMWJH2H3JLJVJTSPTBBKCRLFNL"

func (bp BreakProperty) String() string {
	if bp > NL {
		return "XX"
	}
	return breakPropertyNames[2*bp : 2*bp+2]
}

// resolved maps the range tables of the Unicode line breaking classes to
// break properties.
var resolved map[*unicode.RangeTable]BreakProperty

var setupOnce sync.Once

func setupBreakProperties() {
	resolved = map[*unicode.RangeTable]BreakProperty{
		ucd.BreakOP: OP, ucd.BreakCL: CL, ucd.BreakCP: CP, ucd.BreakQU: QU,
		ucd.BreakGL: GL, ucd.BreakNS: NS, ucd.BreakEX: EX, ucd.BreakSY: SY,
		ucd.BreakIS: IS, ucd.BreakPR: PR, ucd.BreakPO: PO, ucd.BreakNU: NU,
		ucd.BreakAL: AL, ucd.BreakID: ID, ucd.BreakIN: IN, ucd.BreakHY: HY,
		ucd.BreakBA: BA, ucd.BreakBB: BB, ucd.BreakB2: B2, ucd.BreakZW: ZW,
		ucd.BreakCM: CM, ucd.BreakWJ: WJ, ucd.BreakH2: H2, ucd.BreakH3: H3,
		ucd.BreakJL: JL, ucd.BreakJV: JV, ucd.BreakJT: JT, ucd.BreakSP: SP,
		ucd.BreakBK: BK, ucd.BreakCR: CR, ucd.BreakLF: LF, ucd.BreakNL: NL,
		// resolved by LB1 and by tailoring
		ucd.BreakAI: AL, ucd.BreakSG: AL, ucd.BreakXX: AL, ucd.BreakHL: AL,
		ucd.BreakCB: AL, ucd.BreakRI: AL, ucd.BreakCJ: NS,
		ucd.BreakEB: ID, ucd.BreakEM: ID, ucd.BreakZWJ: CM,
	}
	tracer().Debugf("line breaking classes set up")
}

// BreakPropertyOf returns the line breaking class of a code-point.
// Complex context dependent characters (SA) resolve to CM if they are
// combining marks and to AL otherwise; the horizontal tab gets its own
// class TB.
func BreakPropertyOf(r rune) BreakProperty {
	if r == '\t' {
		return TB
	}
	setupOnce.Do(setupBreakProperties)
	rt := ucd.LookupLineBreakClass(r)
	if rt == ucd.BreakSA {
		if unicode.In(r, unicode.Mn, unicode.Mc) {
			return CM
		}
		return AL
	}
	if bp, ok := resolved[rt]; ok {
		return bp
	}
	return AL
}
