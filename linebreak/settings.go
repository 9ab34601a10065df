package linebreak

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/textbreak"
)

// Configuration keys. Lengths are in pt, scales in percent.
const (
	KeyLineWidth     = "textbreak.linewidth"
	KeyFontSize      = "textbreak.fontsize"
	KeyTabWidth      = "textbreak.tabwidth"
	KeyTolerance     = "textbreak.tolerance"
	KeyAlignment     = "textbreak.alignment"
	KeyCharSpace     = "textbreak.charspace"
	KeyHScale        = "textbreak.hscale"
	KeyVScale        = "textbreak.vscale"
	KeyPagination    = "textbreak.pagination"
	KeyExpandTab     = "textbreak.expandtab"
	KeySingleLine    = "textbreak.singleline"
	KeyCombText      = "textbreak.combtext"
	KeyParaBreakChar = "textbreak.parabreakchar"
)

// Settings is the configurable state of a line breaker.
type Settings struct {
	LineWidth     float32
	FontSize      float32
	TabWidth      float32
	Tolerance     float32
	CharSpace     float32
	HScale        int
	VScale        int
	Alignment     Alignment
	Styles        LayoutStyle
	ParaBreakChar rune
}

// DefaultSettings are the settings of a newly created line breaker.
func DefaultSettings() Settings {
	return Settings{
		LineWidth:     100,
		FontSize:      12,
		TabWidth:      36,
		HScale:        100,
		VScale:        100,
		Alignment:     Left,
		ParaBreakChar: '\n',
	}
}

// Configurable is implemented by RTFBreak and TxtBreak.
type Configurable interface {
	SetLayoutStyles(LayoutStyle)
	SetLineWidth(float32)
	SetFontSize(float32)
	SetTabWidth(float32)
	SetLineBreakTolerance(float32)
	SetCharSpace(float32)
	SetHorizontalScale(int)
	SetVerticalScale(int)
	SetAlignment(Alignment)
	SetParagraphBreakChar(rune)
}

// Apply configures a line breaker.
func (s Settings) Apply(b Configurable) {
	b.SetLayoutStyles(s.Styles)
	b.SetLineWidth(s.LineWidth)
	b.SetFontSize(s.FontSize)
	b.SetTabWidth(s.TabWidth)
	b.SetLineBreakTolerance(s.Tolerance)
	b.SetCharSpace(s.CharSpace)
	b.SetHorizontalScale(s.HScale)
	b.SetVerticalScale(s.VScale)
	b.SetAlignment(s.Alignment)
	b.SetParagraphBreakChar(s.ParaBreakChar)
}

// SettingsFrom reads settings from a configuration, starting from the
// defaults for keys which are not set. Invalid values are replaced by their
// defaults or clamped. In this case the resulting settings are returned
// together with an error of code EINVALID listing the offending keys.
func SettingsFrom(conf schuko.Configuration) (Settings, error) {
	s := DefaultSettings()
	if conf == nil {
		return s, nil
	}
	var invalid []string
	length := func(key string, v *float32, minimum float32) {
		if !conf.IsSet(key) {
			return
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(conf.GetString(key)), 32)
		if err != nil {
			invalid = append(invalid, fmt.Sprintf("%s: not a number", key))
			return
		}
		if float32(f) < minimum {
			invalid = append(invalid, fmt.Sprintf("%s: clamped to %g", key, minimum))
			f = float64(minimum)
		}
		*v = float32(f)
	}
	length(KeyLineWidth, &s.LineWidth, 0)
	length(KeyFontSize, &s.FontSize, 0)
	length(KeyTabWidth, &s.TabWidth, float32(minimumTabWidth)/conversionFactor)
	length(KeyTolerance, &s.Tolerance, 0)
	length(KeyCharSpace, &s.CharSpace, 0)
	scale := func(key string, v *int) {
		if !conf.IsSet(key) {
			return
		}
		n := conf.GetInt(key)
		if n <= 0 || n > 1000 {
			invalid = append(invalid, fmt.Sprintf("%s: %d%% out of range", key, n))
			return
		}
		*v = n
	}
	scale(KeyHScale, &s.HScale)
	scale(KeyVScale, &s.VScale)
	if conf.IsSet(KeyAlignment) {
		name := strings.ToLower(strings.TrimSpace(conf.GetString(KeyAlignment)))
		if a, ok := AlignmentFromString(name); ok {
			s.Alignment = a
		} else {
			invalid = append(invalid, fmt.Sprintf("%s: unknown alignment %q", KeyAlignment, name))
		}
	}
	flags := []struct {
		key   string
		style LayoutStyle
	}{
		{KeyPagination, Pagination},
		{KeyExpandTab, ExpandTab},
		{KeySingleLine, SingleLine},
		{KeyCombText, CombText},
	}
	for _, f := range flags {
		if conf.GetBool(f.key) {
			s.Styles |= f.style
		}
	}
	if conf.IsSet(KeyParaBreakChar) {
		switch strings.ToLower(conf.GetString(KeyParaBreakChar)) {
		case "lf", "\n", `\n`:
			s.ParaBreakChar = '\n'
		case "cr", "\r", `\r`:
			s.ParaBreakChar = '\r'
		default:
			invalid = append(invalid, fmt.Sprintf("%s: must be lf or cr", KeyParaBreakChar))
		}
	}
	if len(invalid) > 0 {
		tracer().Errorf("invalid settings: %v", invalid)
		return s, textbreak.Error(textbreak.EINVALID, "invalid line breaking settings: %s",
			strings.Join(invalid, "; "))
	}
	return s, nil
}
