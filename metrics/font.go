package metrics

import "unicode"

// Font is the capability line breakers need from a font.
type Font interface {
	// CharWidth returns the advance width of r in 1/1000 em.
	// ok is false if the font has no glyph for r.
	CharWidth(r rune) (w int32, ok bool)
	// GlyphIndex returns the glyph for r, or MissingGlyph.
	GlyphIndex(r rune) uint16
	// Ascent is the distance from the baseline to the top, in 1/1000 em.
	Ascent() int32
	// Descent is the distance from the baseline to the bottom, in 1/1000 em.
	// It is negative for glyphs extending below the baseline.
	Descent() int32
}

// MissingGlyph is the glyph index of characters a font does not cover.
const MissingGlyph = uint16(0xFFFF)

// Monospace is a Font where every character is either half an em or a
// full em wide. Combining marks and format characters have zero width,
// control characters have no glyph. Glyph indices are the code-points of
// the Basic Multilingual Plane.
type Monospace struct {
	ctx *Context
}

// NewMonospace creates a monospace font for a context. A nil context
// is interpreted as LatinContext.
func NewMonospace(ctx *Context) *Monospace {
	if ctx == nil {
		ctx = LatinContext
	}
	return &Monospace{ctx: ctx}
}

// CharWidth is part of interface Font.
func (m *Monospace) CharWidth(r rune) (int32, bool) {
	switch {
	case r < 0 || r > unicode.MaxRune:
		return 0, false
	case unicode.Is(unicode.Cc, r):
		return 0, false
	case unicode.In(r, unicode.Mn, unicode.Me, unicode.Cf):
		return 0, true
	case m.ctx.IsWide(r):
		return 1000, true
	}
	return 500, true
}

// GlyphIndex is part of interface Font.
func (m *Monospace) GlyphIndex(r rune) uint16 {
	if _, ok := m.CharWidth(r); !ok || r >= 0xFFFF {
		return MissingGlyph
	}
	return uint16(r)
}

// Ascent is part of interface Font.
func (m *Monospace) Ascent() int32 { return 800 }

// Descent is part of interface Font.
func (m *Monospace) Descent() int32 { return -200 }

var _ Font = &Monospace{}
