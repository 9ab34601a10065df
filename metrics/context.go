package metrics

import (
	jj "github.com/cloudfoundry/jibber_jabber"
	"golang.org/x/text/language"
	"golang.org/x/text/width"
)

// Context represents information about the typesetting environment which
// influences character widths.
//
// From UAX#11:
// The term context as used here includes extra information such as explicit
// markup, knowledge of the source code page, font information, or language and
// script identification
type Context struct {
	ForceEastAsian bool            // force East Asian context
	Script         language.Script // ISO 15924 script identifier
	Locale         string          // ISO 639/3166 locale string
	ambiguousWide  bool
}

// EastAsianContext is a context for East Asian languages.
var EastAsianContext = &Context{
	ForceEastAsian: true,
	Script:         language.MustParseScript("Hant"),
	Locale:         "zh-Hant",
	ambiguousWide:  true,
}

// LatinContext is a context for western languages.
var LatinContext = &Context{
	Script: language.MustParseScript("Latn"),
	Locale: "en-US",
}

// NewContext creates a context for a locale string such as "ja-JP".
// Ambiguous characters are wide for East Asian scripts and languages.
func NewContext(locale string) *Context {
	lang := language.Make(locale)
	script, _ := lang.Script()
	return &Context{
		Script:        script,
		Locale:        locale,
		ambiguousWide: isEastAsian(script, lang),
	}
}

// ContextFromEnvironment creates a context for the locale of the user's
// environment. If no locale can be detected, "en-US" is assumed.
func ContextFromEnvironment() *Context {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		tracer().Errorf(err.Error())
		userLocale = "en-US"
		tracer().Infof("metrics sets default user locale %v", userLocale)
	} else {
		tracer().Infof("metrics detected user locale %v", userLocale)
	}
	return NewContext(userLocale)
}

func isEastAsian(script language.Script, lang language.Tag) bool {
	switch script.String() {
	case
		// East Asian
		"Bopo", "Hanb", "Hani", "Hans",
		"Hant", "Hang", "Hira", "Kana",
		"Jpan", "Kore", "Yiii",
		// South East Asian
		"Mymr", "Khmr", "Laoo", "Thai":
		return true
	}
	_, index, confidence := eaMatch.Match(lang)
	return index > 0 && confidence != language.No
}

var eaMatch = language.NewMatcher([]language.Tag{
	language.English, // fallback
	language.Chinese,
	language.Japanese,
	language.Korean,
	language.Vietnamese,
	language.Thai,
	language.Mongolian,
	language.Burmese,
	language.Khmer,
})

// IsWide reports whether r occupies a full em in this context.
// Wide and fullwidth characters are always wide. Ambiguous characters are
// wide in East Asian contexts.
func (ctx *Context) IsWide(r rune) bool {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return true
	case width.EastAsianAmbiguous:
		return ctx != nil && (ctx.ForceEastAsian || ctx.ambiguousWide)
	}
	if r >= 0x20000 && r <= 0x3FFFD { // planes 2 and 3 default to wide
		return true
	}
	return false
}
