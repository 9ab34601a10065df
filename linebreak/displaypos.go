package linebreak

import (
	"github.com/npillmayer/textbreak/arabic"
	"github.com/npillmayer/textbreak/charclass"
	"github.com/npillmayer/textbreak/metrics"
)

// Point is a position in pt.
type Point struct {
	X, Y float32
}

// Rect is a rectangle in pt, with Y growing downwards.
type Rect struct {
	Left, Top, Width, Height float32
}

// Right is the right edge of r.
func (r Rect) Right() float32 {
	return r.Left + r.Width
}

// GlyphPosition places a single glyph.
type GlyphPosition struct {
	Glyph         uint16
	Origin        Point      // baseline origin
	FontCharWidth int32      // advance of the glyph in 1/1000 em
	GlyphAdjust   bool       // Adjust is in effect
	Adjust        [4]float32 // 2x2 matrix applying the character scales
}

// TextPiece is a run of text to be positioned, usually created from a
// BreakPiece with TextPiece.
type TextPiece struct {
	Text           []rune
	Widths         []int32 // 1/20000 pt, as measured by the line breaker
	Font           metrics.Font
	FontSize       float32 // pt
	HScale, VScale int32   // percent
	BidiLevel      int8
	Rect           Rect
	CombText       bool // TxtBreak: characters are centered in their comb cells
	SkipSpace      bool // do not position empty characters
}

func (tp *TextPiece) rtl() bool {
	return tp.BidiLevel&1 == 1
}

// TextPiece prepares the characters of a finished piece for positioning.
// The piece rectangle starts at the piece's start position and top; its
// height is the font size. It returns nil for stale pieces.
func (b *breaker) TextPiece(p *BreakPiece, top float32) *TextPiece {
	chars := b.PieceChars(p)
	if chars == nil {
		return nil
	}
	tp := &TextPiece{
		Text:      make([]rune, len(chars)),
		Widths:    make([]int32, len(chars)),
		Font:      b.font,
		FontSize:  float32(p.FontSize) / fontSizeFactor,
		HScale:    p.HScale,
		VScale:    p.VScale,
		BidiLevel: p.BidiLevel,
		CombText:  b.is(CombText),
	}
	for i := range chars {
		tp.Text[i] = chars[i].Code
		tp.Widths[i] = chars[i].Width
	}
	tp.Rect = Rect{
		Left:   float32(p.StartPos) / conversionFactor,
		Top:    top,
		Width:  float32(p.Width) / conversionFactor,
		Height: tp.FontSize,
	}
	return tp
}

// glyphOf looks up the glyph of a form, falling back to the glyph of the
// nominal character.
func glyphOf(font metrics.Font, form, code rune) uint16 {
	g := font.GlyphIndex(form)
	if g == metrics.MissingGlyph && form != code {
		g = font.GlyphIndex(code)
	}
	return g
}

func adjust(gp *GlyphPosition, hscale, vscale int32) {
	gp.GlyphAdjust = true
	gp.Adjust = [4]float32{-1, 0, 0, 1}
	if hscale == 100 && vscale == 100 {
		return
	}
	gp.Adjust[0] = gp.Adjust[0] * float32(hscale) / 100
	gp.Adjust[3] = gp.Adjust[3] * float32(vscale) / 100
}

// GetDisplayPos computes the glyph positions of a rich text piece. Arabic
// letters are shaped from their neighbours and characters of right-to-left
// pieces are mirrored. Characters with zero width produce no glyph.
// With useCharCode set, glyphs are the character codes themselves.
func (rb *RTFBreak) GetDisplayPos(tp *TextPiece, useCharCode bool) []GlyphPosition {
	n := len(tp.Text)
	fontSize := round(tp.FontSize * fontSizeFactor)
	if n == 0 || tp.Font == nil || fontSize == 0 {
		return nil
	}
	font := tp.Font
	fAscent := ascentOf(font, tp.FontSize)
	rtl := tp.rtl()
	x := tp.Rect.Left
	if rtl {
		x = tp.Rect.Right()
	}
	y := tp.Rect.Top + fAscent
	vs := float32(tp.VScale)
	positions := make([]GlyphPosition, 0, n)
	prev := noChar
	for i, r := range tp.Text {
		w := tp.Widths[i]
		if w == 0 {
			if charclass.TypeOf(r) == charclass.ArabicAlef {
				prev = noChar
			}
			continue
		}
		ct := charclass.TypeOf(r)
		cw := abs32(w) / fontSize
		if charclass.IsEmpty(ct) {
			// empty characters advance the pen without a glyph
			x = advance(x, tp.FontSize*float32(cw)/1000, rtl)
			continue
		}
		form := r
		if charclass.IsArabic(ct) {
			next := noChar
			if i+1 < n {
				next = tp.Text[i+1]
				if tp.Widths[i+1] < 0 && i+2 < n {
					next = tp.Text[i+2]
				}
			}
			form = arabic.FormChar(r, prev, next)
		} else if rtl {
			form = charclass.Mirror(r)
		}
		gp := GlyphPosition{FontCharWidth: cw}
		if useCharCode {
			gp.Glyph = uint16(r)
		} else {
			gp.Glyph = glyphOf(font, form, r)
		}
		charWidth := tp.FontSize * float32(cw) / 1000
		if rtl && ct != charclass.Combination {
			x -= charWidth
		}
		gp.Origin = Point{X: x, Y: y}
		if !rtl && ct != charclass.Combination {
			x += charWidth
		}
		gp.Origin.Y += fAscent*vs/100 - fAscent
		adjust(&gp, tp.HScale, tp.VScale)
		positions = append(positions, gp)
		if w > 0 {
			prev = r
		}
	}
	return positions
}

// ascentOf is the ascent of font at size pt, relative to the font's
// total height.
func ascentOf(font metrics.Font, size float32) float32 {
	ascent, descent := font.Ascent(), font.Descent()
	if ascent == descent {
		return 0
	}
	return size * float32(ascent) / float32(ascent-descent)
}

func advance(x, w float32, rtl bool) float32 {
	if rtl {
		return x - w
	}
	return x + w
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// GetDisplayPos computes the glyph positions of a plain text piece.
//
// The text is centered vertically in the piece rectangle. A Lam between a
// Lam and a Heh is written with Shadda and superscript Alef, producing three
// glyphs. Pairs of Shadda and a vowel mark produce a single precomposed
// glyph. Digits and the separators '.' and ',' are never mirrored.
func (tb *TxtBreak) GetDisplayPos(tp *TextPiece) []GlyphPosition {
	n := len(tp.Text)
	if n == 0 || tp.Font == nil || tp.FontSize <= 0 {
		return nil
	}
	font := tp.Font
	fontSize := tp.FontSize
	fixedSize := round(fontSize * fontSizeFactor)
	if fixedSize == 0 {
		return nil
	}
	fAscent := ascentOf(font, fontSize)
	rtl := tp.rtl()
	x := tp.Rect.Left
	if rtl {
		x = tp.Rect.Right()
	}
	yBase := tp.Rect.Top + (tp.Rect.Height-fontSize)/2
	y := yBase + fAscent
	positions := make([]GlyphPosition, 0, n)
	prev := noChar
	shadda := false
	for i, r := range tp.Text {
		ct := charclass.TypeOf(r)
		w := tp.Widths[i]
		if ct == charclass.ArabicAlef && w == 0 {
			prev = noChar
			continue
		}
		form := r
		lam := false
		switch {
		case charclass.IsArabic(ct):
			next := noChar
			for j := i + 1; j < n; j++ {
				if charclass.TypeOf(tp.Text[j]) != charclass.Combination {
					next = tp.Text[j]
					break
				}
			}
			form = arabic.FormChar(r, prev, next)
			lam = prev == arabic.Lam && r == arabic.Lam && next == arabic.Heh
		case ct == charclass.Combination:
			if r >= 0x064C && r <= arabic.Shadda {
				if shadda {
					form = noChar
					shadda = false
				} else if i+1 < n {
					if composed, ok := arabic.ShaddaCompose(r, tp.Text[i+1]); ok {
						form = composed
						shadda = true
					}
				}
			} else {
				shadda = false
			}
		case ct == charclass.Numeric || r == '.' || r == ',':
		case rtl:
			form = charclass.Mirror(r)
		}
		if ct != charclass.Combination {
			shadda = false
		}
		empty := charclass.IsEmpty(ct) || form == noChar
		forms := []rune{form}
		if lam {
			forms = append(forms, arabic.Shadda, arabic.SuperscriptAlef)
		}
		for j, f := range forms {
			// the measured width includes scaling, char space and comb width
			cw := abs32(w) / fixedSize
			charWidth := float32(abs32(w)) / conversionFactor
			fct := ct
			if j > 0 { // marks added to the ligature sit on it
				fct = charclass.Combination
				cw, _ = font.CharWidth(f)
				charWidth = fontSize * float32(cw) / 1000
			}
			if empty && tp.SkipSpace {
				if fct != charclass.Combination {
					x = advance(x, charWidth, rtl)
				}
				continue
			}
			gp := GlyphPosition{FontCharWidth: cw}
			if f == noChar {
				gp.Glyph = font.GlyphIndex(f)
			} else {
				gp.Glyph = glyphOf(font, f, r)
			}
			if rtl && fct != charclass.Combination {
				x -= charWidth
			}
			gp.Origin = Point{X: x, Y: y}
			if tp.CombText {
				fw, ok := font.CharWidth(f)
				if !ok {
					fw = cw
				}
				gp.Origin.X += (charWidth - fontSize*float32(fw)/1000) / 2
			}
			if !rtl && fct != charclass.Combination {
				x += charWidth
			}
			if tp.VScale != 100 {
				gp.Origin.Y += fAscent*float32(tp.VScale)/100 - fAscent
			}
			adjust(&gp, tp.HScale, tp.VScale)
			positions = append(positions, gp)
		}
		if w > 0 {
			prev = r
		}
	}
	return positions
}

// GetCharRects computes the bounding rectangle of every character of a plain
// text piece, in logical order. Vertical tabs, form feeds and separators get
// half the font size as width, and so does the line feed unless lines are
// never broken.
func (tb *TxtBreak) GetCharRects(tp *TextPiece) []Rect {
	n := len(tp.Text)
	if n == 0 {
		return nil
	}
	rtl := tp.rtl()
	x := tp.Rect.Left
	if rtl {
		x = tp.Rect.Right()
	}
	rects := make([]Rect, n)
	for i, r := range tp.Text {
		w := float32(tp.Widths[i]) / conversionFactor
		switch r {
		case '\v', '\f', charclass.LineSeparator, charclass.ParagraphSeparator:
			w = tp.FontSize / 2
		case '\n':
			if !tb.singleLine() {
				w = tp.FontSize / 2
			}
		}
		if w < 0 {
			w = 0
		}
		rect := Rect{Top: tp.Rect.Top, Width: w, Height: tp.Rect.Height}
		if rtl {
			x -= w
			rect.Left = x
		} else {
			rect.Left = x
			x += w
		}
		rects[i] = rect
	}
	return rects
}
