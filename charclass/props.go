package charclass

import "github.com/npillmayer/textbreak/bidi"

// Properties bundles the classifications of a code-point which line
// breakers need.
type Properties struct {
	Type  CharType
	Break BreakProperty
	Bidi  bidi.Class
}

// Props returns all classifications of a code-point.
func Props(r rune) Properties {
	return Properties{
		Type:  TypeOf(r),
		Break: BreakPropertyOf(r),
		Bidi:  bidi.ClassOf(r),
	}
}
