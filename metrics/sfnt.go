package metrics

import (
	"sync"

	"github.com/npillmayer/textbreak"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// SFNT is a Font backed by a TrueType or OpenType font.
// It is safe for concurrent use.
type SFNT struct {
	sync.Mutex
	f       *sfnt.Font
	buf     sfnt.Buffer
	ppem    fixed.Int26_6 // units per em, used as pixels per em to get unscaled values
	upem    int32
	ascent  int32
	descent int32
	widths  map[rune]int32 // cache; -1 for missing glyphs
}

// LoadSFNT parses font data, e.g. the contents of a .ttf or .otf file.
func LoadSFNT(data []byte) (*SFNT, error) {
	if len(data) == 0 {
		return nil, textbreak.Error(textbreak.EMISSING, "no font data")
	}
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, textbreak.WrapError(err, textbreak.EINVALID, "cannot parse font")
	}
	s := &SFNT{
		f:      f,
		upem:   int32(f.UnitsPerEm()),
		widths: make(map[rune]int32),
	}
	if s.upem <= 0 {
		return nil, textbreak.Error(textbreak.EINVALID, "font has invalid units per em")
	}
	s.ppem = fixed.I(int(s.upem))
	m, err := f.Metrics(&s.buf, s.ppem, font.HintingNone)
	if err != nil {
		return nil, textbreak.WrapError(err, textbreak.EINVALID, "cannot read font metrics")
	}
	s.ascent = s.perMille(m.Ascent)
	s.descent = -abs(s.perMille(m.Descent))
	tracer().Debugf("loaded font with %d glyphs, %d units/em", f.NumGlyphs(), s.upem)
	return s, nil
}

func (s *SFNT) perMille(v fixed.Int26_6) int32 {
	return int32(int64(v) * 1000 / (int64(s.upem) << 6))
}

func abs(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}

// CharWidth is part of interface Font.
func (s *SFNT) CharWidth(r rune) (int32, bool) {
	s.Lock()
	defer s.Unlock()
	if w, ok := s.widths[r]; ok {
		return max(w, 0), w >= 0
	}
	w := int32(-1)
	if gid, err := s.f.GlyphIndex(&s.buf, r); err == nil && gid != 0 {
		if adv, err := s.f.GlyphAdvance(&s.buf, gid, s.ppem, font.HintingNone); err == nil {
			w = s.perMille(adv)
		}
	}
	s.widths[r] = w
	return max(w, 0), w >= 0
}

// GlyphIndex is part of interface Font.
func (s *SFNT) GlyphIndex(r rune) uint16 {
	s.Lock()
	defer s.Unlock()
	gid, err := s.f.GlyphIndex(&s.buf, r)
	if err != nil || gid == 0 || uint32(gid) >= uint32(MissingGlyph) {
		return MissingGlyph
	}
	return uint16(gid)
}

// Ascent is part of interface Font.
func (s *SFNT) Ascent() int32 { return s.ascent }

// Descent is part of interface Font.
func (s *SFNT) Descent() int32 { return s.descent }

var _ Font = &SFNT{}
