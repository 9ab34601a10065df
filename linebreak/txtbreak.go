package linebreak

import (
	"github.com/npillmayer/textbreak/arabic"
	"github.com/npillmayer/textbreak/charclass"
)

// TxtBreak is a line breaker for plain text fields.
//
// With layout style SingleLine, lines are never broken and control
// characters are ordinary characters. With layout style CombText, every
// character advances by the comb width, regardless of the font.
// Tabs never advance the pen.
type TxtBreak struct {
	breaker
}

// NewTxtBreak creates a plain text line breaker.
func NewTxtBreak(styles LayoutStyle) *TxtBreak {
	return &TxtBreak{breaker: newBreaker(styles)}
}

// SetCombWidth sets the advance of every character in comb text mode, in pt.
func (tb *TxtBreak) SetCombWidth(w float32) {
	tb.combWidth = toFixed(w)
}

func (tb *TxtBreak) singleLine() bool {
	return tb.is(SingleLine)
}

func (tb *TxtBreak) combText() bool {
	return tb.is(CombText)
}

// AppendChar appends a character to the current line. It returns the status
// of a break caused by the character, or None.
func (tb *TxtBreak) AppendChar(r rune) BreakType {
	l := tb.line()
	c := newChar(r, tb.hscale, tb.vscale)
	c.FontSize = tb.fontSize
	l.chars = append(l.chars, c)
	ct := c.Type

	ret1 := None
	if ct != charclass.Combination &&
		charclass.Unified(tb.charType) != charclass.Unified(ct) &&
		tb.charType != charclass.Unknown &&
		!tb.singleLine() &&
		tb.exceeds(l.end()) &&
		(tb.charType != charclass.Space || ct != charclass.Control) {
		ret1 = tb.EndBreak(Line)
	}
	l = tb.line()
	ret2 := None
	if r == tb.paraBreakChar {
		ret2 = Paragraph
		tb.EndBreak(Paragraph)
		return max(ret1, ret2)
	}
	cur := l.lastChar()
	if cur == nil { // the character ended the finished line
		if ct == charclass.Control {
			ret2 = tb.appendControl(&c)
		}
		return max(ret1, ret2)
	}
	switch {
	case ct == charclass.Tab:
		tb.charType = charclass.Tab
	case ct == charclass.Control:
		ret2 = tb.appendControl(cur)
	case ct == charclass.Combination:
		tb.appendCombination(l, cur)
	case charclass.IsArabic(ct):
		ret2 = tb.appendArabic(l, cur)
	default:
		ret2 = tb.appendOthers(l, cur)
	}
	return max(ret1, ret2)
}

func (tb *TxtBreak) appendControl(c *Char) BreakType {
	tb.charType = charclass.Control
	if tb.singleLine() {
		return None
	}
	status := controlBreak(c.Code, tb.paraBreakChar)
	if status == None {
		return None
	}
	return tb.EndBreak(status)
}

// appendCombination measures a combining mark. Marks never count for the line
// width. Shadda and a following or preceding vowel mark compose into a
// single precomposed form, measured at the second mark.
func (tb *TxtBreak) appendCombination(l *line, c *Char) {
	w := tb.combWidth
	if !tb.combText() {
		code := c.Code
		if prev := l.lastCharAt(1, false, false); prev != nil && !prev.shadda {
			if composed, ok := arabic.ShaddaCompose(prev.Code, c.Code); ok {
				code = composed
				c.shadda, prev.shadda = true, true
				prev.Width = 0
			}
		}
		fw, _ := tb.fontWidth(code)
		w, _ = tb.scaled(fw)
	}
	c.Width = -w
}

// appendArabic measures an Arabic character, re-measuring the preceding
// joining letter as its contextual form depends on c.
func (tb *TxtBreak) appendArabic(l *line, c *Char) BreakType {
	var last *Char
	alef := false
	if !tb.combText() && tb.charType >= charclass.ArabicAlef && tb.charType <= charclass.ArabicDistortion {
		if last = l.lastCharAt(1, true, false); last != nil {
			if last.Width > 0 {
				l.width -= last.Width
			}
			prev := l.lastCharAt(2, true, false)
			form := arabic.FormChar(last.Code, codeOf(prev), c.Code)
			alef = form == noChar && last.Type == charclass.ArabicAlef
			last.Width = tb.formWidth(form, last.Code)
			if !grow(l, last.Width) {
				last.Width = 0
			}
		}
	}
	tb.charType = c.Type
	prevCode := codeOf(last)
	if alef {
		prevCode = noChar
	}
	form := arabic.FormChar(c.Code, prevCode, noChar)
	var w int32
	if tb.combText() {
		w = tb.combWidth
	} else {
		w = tb.formWidth(form, c.Code)
	}
	if !grow(l, w) {
		w = 0
	}
	c.Width = w
	l.arabic++
	if !tb.singleLine() && tb.exceeds(l.end()) {
		return tb.EndBreak(Line)
	}
	return None
}

func (tb *TxtBreak) appendOthers(l *line, c *Char) BreakType {
	tb.charType = c.Type
	var w int32
	ok := true
	if tb.combText() {
		w = tb.combWidth
	} else if tb.font != nil {
		fw, _ := tb.fontWidth(c.Code)
		w, ok = tb.scaled(fw)
	}
	if ok {
		w, ok = checked(int64(w) + int64(tb.charSpace))
	}
	if !ok || !grow(l, w) {
		c.Width = 0
		return None
	}
	c.Width = w
	if !tb.singleLine() && c.Type != charclass.Space && tb.exceeds(l.end()) {
		return tb.EndBreak(Line)
	}
	return None
}

// EndBreak finishes the current piece or line with the given status.
// See RTFBreak.EndBreak.
func (tb *TxtBreak) EndBreak(status BreakType) BreakType {
	if status == None {
		return None
	}
	l := tb.line()
	if n := len(l.pieces); n > 0 {
		return upgrade(&l.pieces[n-1], status)
	}
	if tb.hasLine() {
		ready := tb.readyLine()
		if len(ready.pieces) == 0 {
			return None
		}
		return upgrade(&ready.pieces[len(ready.pieces)-1], status)
	}
	c := l.lastChar()
	if c == nil {
		return None
	}
	c.Status = status
	if status == Piece {
		return status
	}
	next := tb.nextLine()
	allChars := tb.alignment.stretches()
	tb.endBreakSplitLine(l, next, allChars)
	tpos := tb.endBreakBidiLine(l, status)
	if tb.alignment != Left {
		tb.align(l, tpos, allChars, status)
	}
	tracer().Debugf("line finished with %d pieces, status %s", len(l.pieces), status)
	tb.cur = 1 - tb.cur
	next.start = tb.lineStart
	if c := next.lastCharAt(0, false, false); c != nil {
		tb.charType = c.Type
	} else {
		tb.charType = charclass.Unknown
	}
	return status
}

func (tb *TxtBreak) endBreakSplitLine(l, next *line, allChars bool) {
	done := false
	if !tb.singleLine() && tb.exceeds(l.end()) {
		switch l.lastChar().Type {
		case charclass.Tab, charclass.Control, charclass.Space:
		default:
			tb.splitLine(l, next, allChars)
			done = true
		}
	}
	if allChars && !done {
		endPos := l.end()
		tb.breakPos(l.chars, allChars, true, &endPos)
	}
}

// endBreakBidiLine cuts line l into pieces. A line without Arabic characters
// is a single piece. Otherwise pieces end at changes of the bidi level and at
// characters with a break status, and are laid out in visual order.
func (tb *TxtBreak) endBreakBidiLine(l *line, status BreakType) []tpo {
	if l.arabic == 0 {
		p := newPiece(l, 0)
		p.Status = status
		p.StartPos = l.start
		p.Width = l.width
		p.CharCount = len(l.chars)
		tb.addPiece(l, p)
		return []tpo{{index: 0, pos: 0}}
	}
	resolveBidi(l)
	var tpos []tpo
	for i := 0; i < len(l.chars); {
		first := &l.chars[i]
		p := newPiece(l, i)
		p.BidiLevel = first.BidiLevel
		p.BidiPos = first.BidiOrder
		for i < len(l.chars) {
			c := &l.chars[i]
			if c.BidiLevel != first.BidiLevel {
				break
			}
			if c.Width > 0 {
				p.Width += c.Width
			}
			i++
			if c.Status != None {
				p.Status = c.Status
				break
			}
		}
		p.CharCount = i - p.StartChar
		tpos = append(tpos, tpo{index: len(l.pieces), pos: p.BidiPos})
		tb.addPiece(l, p)
	}
	l.pieces[len(l.pieces)-1].Status = status
	if len(tpos) > 1 {
		layoutPieces(l, tpos, l.start)
	} else {
		l.pieces[0].StartPos = l.start
	}
	return tpos
}
