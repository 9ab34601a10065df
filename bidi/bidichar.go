package bidi

import (
	"fmt"
	"strings"
)

// Segment is a run of characters sharing the same coarse direction.
// Start and Count are measured in runes.
type Segment struct {
	Start     int
	Count     int
	Direction Direction
}

func (seg Segment) String() string {
	return fmt.Sprintf("(%d,%d,%s)", seg.Start, seg.Count, seg.Direction)
}

// BidiChar collects characters one at a time and splits them into
// segments of equal coarse direction. The zero value is ready to use.
//
// Clients call AppendChar for every rune and EndChar after the last one.
// Whenever one of them returns true, the segment just closed is
// available with Segment().
type BidiChar struct {
	current Segment
	last    Segment
}

// AppendChar adds a rune to the current segment. If the rune's direction
// differs from the current segment's direction, the current segment is
// closed first and AppendChar returns true.
func (bc *BidiChar) AppendChar(r rune) bool {
	dir := DirectionOf(ClassOf(r))
	changed := dir != bc.current.Direction
	if changed {
		bc.startNewSegment(dir)
	}
	bc.current.Count++
	return changed
}

// EndChar closes the open segment. It returns true if the closed segment
// is non-empty.
func (bc *BidiChar) EndChar() bool {
	bc.startNewSegment(Neutral)
	return bc.last.Count > 0
}

// Segment returns the segment most recently closed.
func (bc *BidiChar) Segment() Segment {
	return bc.last
}

func (bc *BidiChar) startNewSegment(dir Direction) {
	bc.last = bc.current
	bc.current.Start += bc.current.Count
	bc.current.Count = 0
	bc.current.Direction = dir
}

// --- Bidi strings ----------------------------------------------------------

// BidiString is a string split up into directional segments.
type BidiString struct {
	str     []rune
	order   []Segment
	overall Direction
}

// NewBidiString segments a string. If the string contains at least as many
// right-to-left segments as left-to-right ones (and at least one of them),
// its overall direction is Right and the segments are stored in
// right-to-left order.
func NewBidiString(s string) *BidiString {
	bs := &BidiString{
		str:     []rune(s),
		overall: Left,
	}
	var bc BidiChar
	for _, r := range bs.str {
		if bc.AppendChar(r) {
			bs.order = append(bs.order, bc.Segment())
		}
	}
	if bc.EndChar() {
		bs.order = append(bs.order, bc.Segment())
	}
	l2r, r2l := 0, 0
	for _, seg := range bs.order {
		switch seg.Direction {
		case Left:
			l2r++
		case Right:
			r2l++
		}
	}
	tracer().Debugf("bidi string of %d runes: %d l2r / %d r2l segments", len(bs.str), l2r, r2l)
	if r2l > 0 && r2l >= l2r {
		bs.SetOverallDirectionRight()
	}
	return bs
}

// OverallDirection returns either Left or Right.
func (bs *BidiString) OverallDirection() Direction {
	return bs.overall
}

// SetOverallDirectionRight flips the order of the segments, if the string
// is not already right-to-left. Calling it more than once has no further
// effect.
func (bs *BidiString) SetOverallDirectionRight() {
	if bs.overall == Right {
		return
	}
	for i, j := 0, len(bs.order)-1; i < j; i, j = i+1, j-1 {
		bs.order[i], bs.order[j] = bs.order[j], bs.order[i]
	}
	bs.overall = Right
}

// Segments returns the segments of the string. The slice is owned by bs
// and must not be modified.
func (bs *BidiString) Segments() []Segment {
	return bs.order
}

// Len returns the number of runes of the string.
func (bs *BidiString) Len() int {
	return len(bs.str)
}

// CharAt returns the rune at position i, or 0 if i is out of range.
func (bs *BidiString) CharAt(i int) rune {
	if i < 0 || i >= len(bs.str) {
		return 0
	}
	return bs.str[i]
}

// SegmentText returns the runes of a segment as a string.
func (bs *BidiString) SegmentText(seg Segment) string {
	if seg.Start < 0 || seg.Count <= 0 || seg.Start+seg.Count > len(bs.str) {
		return ""
	}
	return string(bs.str[seg.Start : seg.Start+seg.Count])
}

func (bs *BidiString) String() string {
	var b strings.Builder
	for _, seg := range bs.order {
		b.WriteString(seg.String())
	}
	return b.String()
}
