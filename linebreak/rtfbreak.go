package linebreak

import (
	"github.com/npillmayer/textbreak/arabic"
	"github.com/npillmayer/textbreak/charclass"
)

// RTFBreak is a line breaker for rich text.
//
// Every character carries the identity of the style run it belongs to and
// the user data set at the time it was appended. Changing the font, font
// size, scales or user data starts a new style run, and pieces never span
// style runs. With layout style Pagination, lines are cut into style runs
// only, without bidi reordering and alignment.
type RTFBreak struct {
	breaker
	userData interface{}
	tabs     tabStops
}

// NewRTFBreak creates a rich text line breaker.
func NewRTFBreak(styles LayoutStyle) *RTFBreak {
	rb := &RTFBreak{
		breaker: newBreaker(styles),
		tabs:    newTabStops(),
	}
	rb.setBreakStatus()
	return rb
}

func (rb *RTFBreak) paginating() bool {
	return rb.is(Pagination)
}

// SetLineStartPos sets the start position of the current line in pt,
// clamped to the line boundary.
func (rb *RTFBreak) SetLineStartPos(pos float32) {
	p := toFixed(pos)
	p = min(p, rb.lineWidth)
	p = max(p, rb.lineStart)
	rb.line().start = p
}

// AddPositionedTab adds a tab stop at pos pt, relative to the line start.
func (rb *RTFBreak) AddPositionedTab(pos float32) {
	rb.tabs.add(min(toFixed(pos)+rb.lineStart, rb.lineWidth))
	tracer().Debugf("%d positioned tab stops", rb.tabs.size())
}

// ClearPositionedTabs removes all tab stops.
func (rb *RTFBreak) ClearPositionedTabs() {
	rb.tabs.clear()
}

// SetUserData sets the data attached to characters appended from now on.
// Pieces carry the user data of their first character.
func (rb *RTFBreak) SetUserData(data interface{}) {
	if rb.userData == data {
		return
	}
	rb.setBreakStatus()
	rb.userData = data
}

// AppendChar appends a character to the current line. It returns the status
// of a break caused by the character, or None.
func (rb *RTFBreak) AppendChar(r rune) BreakType {
	l := rb.line()
	c := newChar(r, rb.hscale, rb.vscale)
	c.FontSize = rb.fontSize
	c.Identity = rb.identity
	c.UserData = rb.userData
	l.chars = append(l.chars, c)
	ct := c.Type

	ret1 := None
	if ct != charclass.Combination &&
		charclass.Unified(rb.charType) != charclass.Unified(ct) &&
		rb.charType != charclass.Unknown &&
		rb.exceeds(l.end()) &&
		(rb.charType != charclass.Space || ct != charclass.Control) {
		ret1 = rb.EndBreak(Line)
	}
	l = rb.line()
	ret2 := None
	cur := l.lastChar()
	if cur == nil { // the character ended the finished line
		if ct == charclass.Control {
			ret2 = rb.appendControl(&c)
		}
		return max(ret1, ret2)
	}

	switch {
	case ct == charclass.Tab:
		rb.appendTab(l, cur)
	case ct == charclass.Control:
		ret2 = rb.appendControl(cur)
	case ct == charclass.Combination:
		rb.appendCombination(l, cur)
	case charclass.IsArabic(ct):
		ret2 = rb.appendArabic(l, cur)
	default:
		ret2 = rb.appendOthers(l, cur)
	}
	rb.charType = ct
	return max(ret1, ret2)
}

func (rb *RTFBreak) appendTab(l *line, c *Char) {
	if !rb.is(ExpandTab) {
		return
	}
	pos := l.end()
	if target, ok := rb.tabs.after(pos); ok {
		c.Width = target - pos
	} else {
		c.Width = (l.width/rb.tabWidth+1)*rb.tabWidth - l.width
	}
	if !grow(l, c.Width) {
		c.Width = 0
	}
}

func (rb *RTFBreak) appendControl(c *Char) BreakType {
	status := controlBreak(c.Code, rb.paraBreakChar)
	if status == None {
		return None
	}
	return rb.EndBreak(status)
}

// controlBreak returns the kind of break a control character forces.
func controlBreak(r, paraBreakChar rune) BreakType {
	switch r {
	case '\v', charclass.LineSeparator:
		return Line
	case '\f':
		return Page
	case charclass.ParagraphSeparator:
		return Paragraph
	}
	if r == paraBreakChar {
		return Paragraph
	}
	return None
}

// appendCombination measures a combining mark. A mark following a base
// character is folded onto it and gets a negative width, which does not
// count for the line width.
func (rb *RTFBreak) appendCombination(l *line, c *Char) {
	fw, _ := rb.fontWidth(c.Code)
	w, _ := rb.scaled(fw)
	if prev := l.lastCharAt(1, false, true); prev != nil && prev.Type > charclass.Combination {
		w = -w
	} else {
		rb.charType = charclass.Combination
	}
	c.Width = w
	if w > 0 && !grow(l, w) {
		c.Width = 0
	}
}

// appendArabic measures an Arabic character. The width of the preceding
// joining letter is re-measured, as its contextual form depends on c.
func (rb *RTFBreak) appendArabic(l *line, c *Char) BreakType {
	l.arabic++
	var last *Char
	alef := false
	if rb.charType >= charclass.ArabicAlef && rb.charType <= charclass.ArabicDistortion {
		if last = l.lastCharAt(1, false, true); last != nil {
			l.width -= last.Width
			prev := l.lastCharAt(2, false, true)
			form := arabic.FormChar(last.Code, codeOf(prev), c.Code)
			alef = form == noChar && last.Type == charclass.ArabicAlef
			last.Width = rb.formWidth(form, last.Code)
			if !grow(l, last.Width) {
				return None
			}
		}
	}
	prevCode := codeOf(last)
	if alef {
		prevCode = noChar
	}
	form := arabic.FormChar(c.Code, prevCode, noChar)
	c.Width = rb.formWidth(form, c.Code)
	if !grow(l, c.Width) {
		c.Width = 0
		return None
	}
	if rb.exceeds(l.end()) {
		return rb.EndBreak(Line)
	}
	return None
}

func (rb *RTFBreak) appendOthers(l *line, c *Char) BreakType {
	fw, _ := rb.fontWidth(c.Code)
	w, ok := rb.scaled(fw)
	if ok {
		w, ok = checked(int64(w) + int64(rb.charSpace))
	}
	if !ok || !grow(l, w) {
		c.Width = 0
		return None
	}
	c.Width = w
	if c.Type != charclass.Space && rb.exceeds(l.end()) {
		return rb.EndBreak(Line)
	}
	return None
}

// EndBreak finishes the current piece or line with the given status.
//
// If a finished line is still waiting to be retrieved, only the status of its
// last piece is upgraded. Otherwise a line status finishes the current
// line: it is split at the last break opportunity if it overflows, cut into
// pieces, reordered and aligned. The returned status is the status of the
// last piece, which is never downgraded.
func (rb *RTFBreak) EndBreak(status BreakType) BreakType {
	if status == None {
		return None
	}
	rb.identity++
	l := rb.line()
	if n := len(l.pieces); n > 0 {
		return upgrade(&l.pieces[n-1], status)
	}
	if rb.hasLine() {
		ready := rb.readyLine()
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
	next := rb.nextLine()
	allChars := rb.alignment.stretches()
	if !rb.endBreakSplitLine(l, next, allChars) {
		tpos := rb.endBreakBidiLine(l, status)
		if !rb.paginating() && rb.alignment != Left {
			rb.align(l, tpos, allChars, status)
		}
	}
	tracer().Debugf("line finished with %d pieces, status %s", len(l.pieces), status)
	rb.cur = 1 - rb.cur
	next.start = rb.lineStart
	if c := next.lastCharAt(0, false, true); c != nil {
		rb.charType = c.Type
	} else {
		rb.charType = charclass.Unknown
	}
	return status
}

// upgrade raises the status of a piece to status, never lowering it, and
// returns the resulting status.
func upgrade(p *BreakPiece, status BreakType) BreakType {
	if status > p.Status {
		p.Status = status
	}
	return p.Status
}

// endBreakSplitLine splits an overflowing line. With pagination, it also cuts
// the line into pieces of uniform style and reports true.
func (rb *RTFBreak) endBreakSplitLine(l, next *line, allChars bool) bool {
	done := false
	if rb.exceeds(l.end()) {
		switch l.lastChar().Type {
		case charclass.Tab, charclass.Control, charclass.Space:
		default:
			rb.splitLine(l, next, !rb.paginating() && allChars)
			done = true
		}
	}
	if !rb.paginating() {
		if allChars && !done {
			endPos := l.end()
			rb.breakPos(l.chars, allChars, true, &endPos)
		}
		return false
	}
	start := l.start
	for i := 0; i < len(l.chars); {
		p := newPiece(l, i)
		p.StartPos = start
		p.Status = l.chars[i].Status
		identity := l.chars[i].Identity
		for i < len(l.chars) {
			c := &l.chars[i]
			if c.Identity != identity {
				break
			}
			p.Width += c.Width
			i++
			if c.Status != None {
				p.Status = c.Status
				break
			}
		}
		p.CharCount = i - p.StartChar
		start += p.Width
		rb.addPiece(l, p)
	}
	return true
}

// endBreakBidiLine cuts line l into pieces of uniform bidi level and style
// and lays them out in visual order.
func (rb *RTFBreak) endBreakBidiLine(l *line, status BreakType) []tpo {
	if !rb.paginating() && l.arabic > 0 {
		resolveBidi(l)
	} else {
		for i := range l.chars {
			c := &l.chars[i]
			c.BidiLevel, c.BidiPos, c.BidiOrder = 0, 0, 0
		}
	}
	var tpos []tpo
	for i := 0; i < len(l.chars); {
		first := &l.chars[i]
		p := newPiece(l, i)
		p.BidiLevel = first.BidiLevel
		p.BidiPos = first.BidiOrder
		if first.Width > 0 {
			p.Width = first.Width
		}
		for i++; i < len(l.chars); i++ {
			c := &l.chars[i]
			if c.BidiLevel != first.BidiLevel || c.Identity != first.Identity {
				break
			}
			if c.Width > 0 {
				p.Width += c.Width
			}
		}
		p.CharCount = i - p.StartChar
		if i == len(l.chars) {
			p.Status = status
		}
		tpos = append(tpos, tpo{index: len(l.pieces), pos: p.BidiPos})
		rb.addPiece(l, p)
	}
	layoutPieces(l, tpos, l.start)
	return tpos
}
