package linebreak

import (
	"math"

	"github.com/npillmayer/textbreak/arabic"
	"github.com/npillmayer/textbreak/bidi"
	"github.com/npillmayer/textbreak/charclass"
	"github.com/npillmayer/textbreak/metrics"
)

const noChar = arabic.NoChar

// breaker is the state shared by RTFBreak and TxtBreak: configuration, the
// two line slots and the algorithms common to both.
type breaker struct {
	lines      [2]line
	generation [2]uint64
	cur        int // index of the accumulating line
	ready      int // index of the finished line, or -1

	styles        LayoutStyle
	charType      charclass.CharType // type of the last character appended
	lineStart     int32
	lineWidth     int32 // right boundary
	tolerance     int32
	fontSize      int32
	hscale        int32
	vscale        int32
	tabWidth      int32
	charSpace     int32
	combWidth     int32
	alignment     Alignment
	paraBreakChar rune
	defaultChar   rune
	font          metrics.Font
	identity      uint32
}

func newBreaker(styles LayoutStyle) breaker {
	return breaker{
		ready:         -1,
		styles:        styles,
		lineWidth:     2000000,
		fontSize:      240,
		hscale:        100,
		vscale:        100,
		tabWidth:      720000,
		paraBreakChar: '\n',
		defaultChar:   noChar,
	}
}

func (b *breaker) line() *line {
	return &b.lines[b.cur]
}

func (b *breaker) hasLine() bool {
	return b.ready >= 0
}

func (b *breaker) readyLine() *line {
	return &b.lines[b.ready]
}

func (b *breaker) is(style LayoutStyle) bool {
	return b.styles&style != 0
}

func (b *breaker) exceeds(pos int32) bool {
	return pos > b.lineWidth+b.tolerance
}

// --- Configuration ---------------------------------------------------------

// SetLayoutStyles replaces the layout style flags.
func (b *breaker) SetLayoutStyles(styles LayoutStyle) {
	b.styles = styles
}

// SetFont sets the font used to measure characters. A nil font is ignored.
func (b *breaker) SetFont(font metrics.Font) {
	if font == nil || font == b.font {
		return
	}
	b.setBreakStatus()
	b.font = font
}

// Font returns the current font.
func (b *breaker) Font() metrics.Font {
	return b.font
}

// SetFontSize sets the font size in pt.
func (b *breaker) SetFontSize(size float32) {
	fs := round(size * fontSizeFactor)
	if fs < 0 {
		tracer().Errorf("font size %.2f clamped to 0", size)
		fs = 0
	}
	if fs == b.fontSize {
		return
	}
	b.setBreakStatus()
	b.fontSize = fs
}

// SetHorizontalScale sets the horizontal scale in percent.
func (b *breaker) SetHorizontalScale(scale int) {
	s := clampScale(scale)
	if s == b.hscale {
		return
	}
	b.setBreakStatus()
	b.hscale = s
}

// SetVerticalScale sets the vertical scale in percent.
func (b *breaker) SetVerticalScale(scale int) {
	s := clampScale(scale)
	if s == b.vscale {
		return
	}
	b.setBreakStatus()
	b.vscale = s
}

func clampScale(scale int) int32 {
	if scale < 0 {
		tracer().Errorf("scale %d%% clamped to 0", scale)
		return 0
	}
	if scale > math.MaxInt16 {
		tracer().Errorf("scale %d%% clamped to %d", scale, math.MaxInt16)
		return math.MaxInt16
	}
	return int32(scale)
}

// SetTabWidth sets the distance of equidistant tab stops in pt.
func (b *breaker) SetTabWidth(w float32) {
	tw := toFixed(w)
	if tw < minimumTabWidth {
		tw = minimumTabWidth
	}
	b.tabWidth = tw
}

// SetAlignment sets the horizontal alignment of lines.
func (b *breaker) SetAlignment(a Alignment) {
	if a > Distributed {
		tracer().Errorf("unknown alignment %d, set to left", a)
		a = Left
	}
	b.alignment = a
}

// SetParagraphBreakChar sets the character ending a paragraph, either
// '\n' or '\r'. Other characters are ignored.
func (b *breaker) SetParagraphBreakChar(r rune) {
	if r != '\r' && r != '\n' {
		tracer().Errorf("paragraph break character %#U ignored", r)
		return
	}
	b.paraBreakChar = r
}

// SetLineBreakTolerance sets the amount in pt by which lines may exceed
// the line boundary.
func (b *breaker) SetLineBreakTolerance(tolerance float32) {
	b.tolerance = toFixed(tolerance)
}

// SetCharSpace sets additional space in pt after every character.
func (b *breaker) SetCharSpace(space float32) {
	b.charSpace = toFixed(space)
}

// SetDefaultChar sets a character whose width substitutes the width of
// characters missing from the font. arabic.NoChar disables substitution.
func (b *breaker) SetDefaultChar(r rune) {
	b.defaultChar = r
}

// SetLineBoundary sets the left and right boundary of lines in pt.
// An empty boundary is ignored.
func (b *breaker) SetLineBoundary(start, end float32) {
	if start > end {
		tracer().Errorf("line boundary [%.2f,%.2f] ignored", start, end)
		return
	}
	b.lineStart = toFixed(start)
	b.lineWidth = toFixed(end)
	l := b.line()
	l.start = min(l.start, b.lineWidth)
	l.start = max(l.start, b.lineStart)
}

// SetLineWidth sets the right boundary of lines in pt.
func (b *breaker) SetLineWidth(w float32) {
	lw := toFixed(w)
	if lw < b.lineStart {
		tracer().Errorf("line width %.2f clamped to line start", w)
		lw = b.lineStart
	}
	b.lineWidth = lw
}

// setBreakStatus starts a new style run: characters appended from now on get
// a new identity, and the last character ends a piece.
func (b *breaker) setBreakStatus() {
	b.identity++
	if c := b.line().lastChar(); c != nil && c.Status == None {
		c.Status = Piece
	}
}

// --- Pieces ----------------------------------------------------------------

// CountBreakPieces returns the number of pieces of the finished line.
func (b *breaker) CountBreakPieces() int {
	if !b.hasLine() {
		return 0
	}
	return len(b.readyLine().pieces)
}

// GetBreakPiece returns piece i of the finished line, or nil if i is out of
// range or no line is finished.
func (b *breaker) GetBreakPiece(i int) *BreakPiece {
	if !b.hasLine() {
		return nil
	}
	pieces := b.readyLine().pieces
	if i < 0 || i >= len(pieces) {
		return nil
	}
	return &pieces[i]
}

// ClearBreakPieces releases the finished line. Pieces of it become stale.
func (b *breaker) ClearBreakPieces() {
	if b.hasLine() {
		b.clearSlot(b.ready)
	}
	b.ready = -1
}

// Reset drops all characters and pieces.
func (b *breaker) Reset() {
	b.charType = charclass.Unknown
	b.clearSlot(0)
	b.clearSlot(1)
	b.ready = -1
}

func (b *breaker) clearSlot(slot int) {
	b.lines[slot].clear()
	b.generation[slot]++
}

// PieceChars is part of interface CharSource.
func (b *breaker) PieceChars(p *BreakPiece) []Char {
	if p == nil || p.slot < 0 || p.slot > 1 || p.gen != b.generation[p.slot] {
		tracer().Debugf("stale piece %v", p)
		return nil
	}
	chars := b.lines[p.slot].chars
	if p.StartChar < 0 || p.StartChar+p.CharCount > len(chars) {
		return nil
	}
	return chars[p.StartChar : p.StartChar+p.CharCount]
}

// addPiece appends a piece to line l, which is the line in slot cur.
func (b *breaker) addPiece(l *line, p BreakPiece) {
	p.slot, p.gen = b.cur, b.generation[b.cur]
	l.pieces = append(l.pieces, p)
}

// nextLine switches to the other slot after the current line has been
// finished.
func (b *breaker) nextLine() *line {
	b.ready = b.cur
	return &b.lines[1-b.cur]
}

// --- Measurement -----------------------------------------------------------

// fontWidth returns the width of r in 1/1000 em, substituting the default
// character for missing glyphs.
func (b *breaker) fontWidth(r rune) (int32, bool) {
	if b.font == nil {
		return 0, false
	}
	if w, ok := b.font.CharWidth(r); ok {
		return w, true
	}
	if b.defaultChar != noChar {
		return b.font.CharWidth(b.defaultChar)
	}
	return 0, false
}

// scaled converts a width in 1/1000 em to 1/20000 pt at the current font size
// and horizontal scale. ok is false on overflow.
func (b *breaker) scaled(w int32) (int32, bool) {
	v := int64(w) * int64(b.fontSize) * int64(b.hscale) / 100
	return checked(v)
}

// formWidth is the scaled width of a presentation form, falling back to the
// width of the nominal character.
func (b *breaker) formWidth(form, code rune) int32 {
	if form == noChar {
		return 0
	}
	w, ok := b.fontWidth(form)
	if !ok {
		w, _ = b.fontWidth(code)
	}
	sw, _ := b.scaled(w)
	return sw
}

func checked(v int64) (int32, bool) {
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, false
	}
	return int32(v), true
}

// grow adds w to the width of line l. It returns false if the line width
// would overflow, leaving the line untouched.
func grow(l *line, w int32) bool {
	v, ok := checked(int64(l.width) + int64(w))
	if !ok {
		tracer().Errorf("line width overflow")
		return false
	}
	l.width = v
	return true
}

// --- Break position --------------------------------------------------------

// breakPos finds the position after which line l may be broken, walking
// backwards from the end of the line. endPos is the end position of the
// line on entry and the end position of the shortened line on return.
// With allChars set, the break opportunity before every character is
// recorded. With onlyBrk set, only the recording is done.
//
// A direct break is preferred over an indirect one, and an indirect break
// over the last character fitting the line. Spaces and tabs allow a break
// even after the line boundary.
func (b *breaker) breakPos(chars []Char, allChars, onlyBrk bool, endPos *int32) int {
	n := len(chars) - 1
	if n < 1 {
		return n
	}
	single := b.is(SingleLine)
	brk, brkPos := -1, int32(-1)
	indirect, indirectPos := -1, int32(-1)
	last, lastPos := -1, int32(-1)
	if single || *endPos <= b.lineWidth {
		if !allChars {
			return n
		}
		brk, brkPos = n, *endPos
	}
	c := &chars[n]
	if allChars {
		c.BreakOpportunity = charclass.UnknownBreak
	}
	next := c.Break
	if c.Width > 0 {
		*endPos -= c.Width
	}
	for i := n - 1; i >= 0; i-- {
		c = &chars[i]
		cur := c.Break
		needBreak := cur == charclass.SP || cur == charclass.TB
		bo := charclass.PairType(cur, next)
		if allChars {
			c.BreakOpportunity = bo
		}
		if !onlyBrk {
			if single || *endPos <= b.lineWidth || needBreak {
				if bo == charclass.DirectBreak && brk < 0 {
					brk, brkPos = i, *endPos
					if !allChars {
						return i
					}
				} else if bo == charclass.IndirectBreak && indirect < 0 {
					indirect, indirectPos = i, *endPos
				}
				if last < 0 {
					last, lastPos = i, *endPos
				}
			}
			if c.Width > 0 {
				*endPos -= c.Width
			}
		}
		next = cur
	}
	switch {
	case onlyBrk:
		return 0
	case brk > -1:
		*endPos = brkPos
		return brk
	case indirect > -1:
		*endPos = indirectPos
		return indirect
	case last > -1:
		*endPos = lastPos
		return last
	}
	return 0
}

// splitLine moves the characters after the break position of line l to the
// empty line next.
func (b *breaker) splitLine(l, next *line, allChars bool) {
	if len(l.chars) < 2 {
		return
	}
	endPos := l.end()
	pos := b.breakPos(l.chars, allChars, false, &endPos)
	if pos < 0 {
		pos = 0
	}
	pos++
	if pos >= len(l.chars) {
		next.clear()
		l.chars[pos-1].BreakOpportunity = charclass.UnknownBreak
		return
	}
	l.moveTail(pos, next)
	next.start = l.start
	l.width = endPos - l.start
	l.chars[pos-1].BreakOpportunity = charclass.UnknownBreak
	tracer().Debugf("line split after char #%d, %d chars moved", pos-1, len(next.chars))
}

// --- Bidi ------------------------------------------------------------------

// resolveBidi computes bidi levels and visual order of the characters of
// line l. Trailing control characters are excluded from resolution and stay
// at level 0 in logical order.
func resolveBidi(l *line) {
	count := 0
	for i := range l.chars {
		l.chars[i].BidiPos = i
		if l.chars[i].Type != charclass.Control {
			count = i
		}
	}
	count++
	classes := make([]bidi.Class, count)
	for i := 0; i < count; i++ {
		classes[i] = l.chars[i].Bidi
	}
	levels, order := bidi.ResolveLine(classes)
	if count == 1 {
		levels[0] = 1 // the line contains Arabic
	}
	for i := range l.chars {
		c := &l.chars[i]
		if i < count {
			c.BidiLevel, c.BidiOrder = levels[i], order[i]
		} else {
			c.BidiLevel, c.BidiOrder = 0, i
		}
	}
}

// layoutPieces sorts the pieces of line l by visual position and assigns
// start positions left to right, starting at start.
func layoutPieces(l *line, tpos []tpo, start int32) {
	sortByPosition(tpos)
	for _, t := range tpos {
		p := &l.pieces[t.index]
		p.StartPos = start
		start += p.Width
	}
}

func sortByPosition(tpos []tpo) {
	// insertion sort: lines have few pieces, and equal positions keep their order
	for i := 1; i < len(tpos); i++ {
		for j := i; j > 0 && tpos[j].pos < tpos[j-1].pos; j-- {
			tpos[j], tpos[j-1] = tpos[j-1], tpos[j]
		}
	}
}

// --- Alignment -------------------------------------------------------------

// align positions the pieces of line l according to the alignment.
// tpos holds the pieces in visual order.
func (b *breaker) align(l *line, tpos []tpo, allChars bool, status BreakType) {
	netWidth := l.width
	gaps := 0
	found := false
	for k := len(tpos) - 1; k >= 0; k-- {
		p := &l.pieces[tpos[k].index]
		if !found {
			netWidth = p.EndPos()
		}
		rtl := p.IsRTL()
		j, step := p.CharCount-1, -1
		if rtl {
			j, step = 0, 1
		}
		for ; j >= 0 && j < p.CharCount; j += step {
			c := &l.chars[p.StartChar+j]
			if c.BreakOpportunity == charclass.DirectBreak {
				gaps++
			}
			if found && allChars {
				continue
			}
			if c.Type == charclass.Space || c.Type == charclass.Control {
				if !found && allChars && c.Width > 0 {
					netWidth -= c.Width
				}
			} else {
				found = true
				if !allChars {
					break
				}
			}
		}
		if !allChars && found {
			break
		}
	}
	offset := b.lineWidth - netWidth
	if gaps > 0 && (b.alignment == Distributed || (b.alignment == Justified && status != Paragraph)) {
		b.justify(l, tpos, offset, gaps)
		return
	}
	if b.alignment == Right || b.alignment == Center {
		if b.alignment == Center {
			offset /= 2
		}
		if offset > 0 {
			for i := range l.pieces {
				l.pieces[i].StartPos += offset
			}
		}
	}
}

// justify distributes offset over the characters followed by a direct break
// opportunity, left to right. Each gap gets offset/gaps of the remaining
// offset, so the last gap absorbs the rounding remainder.
func (b *breaker) justify(l *line, tpos []tpo, offset int32, gaps int) {
	start := int32(-1)
	for _, t := range tpos {
		p := &l.pieces[t.index]
		if start < 0 {
			start = p.StartPos
		} else {
			p.StartPos = start
		}
		for j := 0; j < p.CharCount && gaps > 0; j++ {
			c := &l.chars[p.StartChar+j]
			if c.BreakOpportunity != charclass.DirectBreak || c.Width < 0 {
				continue
			}
			k := offset / int32(gaps)
			c.Width += k
			p.Width += k
			offset -= k
			gaps--
		}
		start += p.Width
	}
}
