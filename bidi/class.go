package bidi

import (
	"unicode"

	"golang.org/x/text/unicode/bidi"
)

// Class is a bidirectional character class. The order of the classes is
// significant, as the resolver state tables are indexed by it.
type Class int8

// Bidi classes. ON doubles as the "neutral" class of the resolver.
const (
	ON  Class = iota // Other Neutral
	L                // Left-to-Right
	R                // Right-to-Left
	AN               // Arabic Number
	EN               // European Number
	AL               // Arabic Letter
	NSM              // Non-spacing Mark
	CS               // Common Number Separator
	ES               // European Separator
	ET               // European Number Terminator
	BN               // Boundary Neutral
	S                // Segment Separator
	WS               // Whitespace
	B                // Paragraph Separator
	RLO              // Right-to-Left Override
	RLE              // Right-to-Left Embedding
	LRO              // Left-to-Right Override
	LRE              // Left-to-Right Embedding
	PDF              // Pop Directional Format
)

const classnames = "ONLRANENALNSMCSESETBNSWSBRLORLELROLREPDF"

var classindex = [...]uint8{0, 2, 3, 4, 6, 8, 10, 13, 15, 17, 19, 21, 22, 24, 25, 28, 31, 34, 37, 40}

func (c Class) String() string {
	if c < 0 || int(c) >= len(classindex)-1 {
		return "bidi_class(?)"
	}
	return classnames[classindex[c]:classindex[c+1]]
}

// ClassOf returns the bidi class of a code-point. It is a total function:
// code-points without an assigned bidi class, surrogates and invalid runes
// are classified as ON.
func ClassOf(r rune) Class {
	if r < 0 || r > unicode.MaxRune || (r >= 0xd800 && r <= 0xdfff) {
		return ON
	}
	if !unicode.In(r, unicode.L, unicode.M, unicode.N, unicode.P, unicode.S, unicode.Z, unicode.C) {
		return ON // unassigned code-point
	}
	props, size := bidi.LookupRune(r)
	if size == 0 {
		return ON
	}
	return fromXClass(props.Class())
}

func fromXClass(c bidi.Class) Class {
	switch c {
	case bidi.L:
		return L
	case bidi.R:
		return R
	case bidi.EN:
		return EN
	case bidi.ES:
		return ES
	case bidi.ET:
		return ET
	case bidi.AN:
		return AN
	case bidi.CS:
		return CS
	case bidi.B:
		return B
	case bidi.S:
		return S
	case bidi.WS:
		return WS
	case bidi.BN, bidi.Control:
		return BN
	case bidi.NSM:
		return NSM
	case bidi.AL:
		return AL
	case bidi.LRO:
		return LRO
	case bidi.RLO:
		return RLO
	case bidi.LRE:
		return LRE
	case bidi.RLE:
		return RLE
	case bidi.PDF:
		return PDF
	}
	// ON and the isolate controls LRI, RLI, FSI, PDI
	return ON
}

// Direction is the coarse direction of a character or of a segment of text.
type Direction int8

// Coarse directions.
const (
	Neutral  Direction = iota // neutral characters, e.g. spaces and punctuation
	Left                      // strong left-to-right
	Right                     // strong right-to-left
	LeftWeak                  // numbers, separators and marks
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case LeftWeak:
		return "LeftWeak"
	}
	return "Neutral"
}

// DirectionOf maps a bidi class to its coarse direction.
func DirectionOf(c Class) Direction {
	switch c {
	case L:
		return Left
	case R, AL:
		return Right
	case AN, EN, NSM, CS, ES, ET, BN:
		return LeftWeak
	}
	return Neutral
}

// IsOdd is a predicate for right-to-left bidi levels.
func IsOdd(level int) bool {
	return level&1 == 1
}
