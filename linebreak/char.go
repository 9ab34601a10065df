package linebreak

import (
	"fmt"

	"github.com/npillmayer/textbreak/bidi"
	"github.com/npillmayer/textbreak/charclass"
)

// Char is a character appended to a line breaker, together with its
// measurements and the results of break and bidi analysis.
type Char struct {
	Code             rune
	Type             charclass.CharType
	Bidi             bidi.Class
	Break            charclass.BreakProperty
	Width            int32 // advance in 1/20000 pt; negative for marks folded onto their base
	HScale, VScale   int32 // percent
	FontSize         int32 // 1/20 pt
	BidiLevel        int8
	BidiOrder        int // visual position within the line
	BidiPos          int // logical position within the line
	Status           BreakType
	BreakOpportunity charclass.BreakOpportunity
	Identity         uint32
	UserData         interface{}
	shadda           bool // part of a precomposed Shadda form
}

func newChar(r rune, hscale, vscale int32) Char {
	props := charclass.Props(r)
	return Char{
		Code:   r,
		Type:   props.Type,
		Bidi:   props.Bidi,
		Break:  props.Break,
		HScale: hscale,
		VScale: vscale,
	}
}

func (c *Char) String() string {
	return fmt.Sprintf("[%#U %s w=%d lvl=%d %s]", c.Code, c.Type, c.Width, c.BidiLevel, c.Status)
}

func codeOf(c *Char) rune {
	if c == nil {
		return noChar
	}
	return c.Code
}
