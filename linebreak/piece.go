package linebreak

import "fmt"

// BreakPiece is a run of characters of a finished line with uniform bidi level
// and style. Pieces do not hold characters, use Chars to borrow them from the
// breaker which produced the piece.
type BreakPiece struct {
	Status         BreakType
	StartPos       int32 // 1/20000 pt
	Width          int32 // 1/20000 pt
	StartChar      int
	CharCount      int
	BidiLevel      int8
	BidiPos        int // visual position of the first character
	FontSize       int32
	HScale, VScale int32
	UserData       interface{}
	slot           int
	gen            uint64
}

// EndPos is the position after the last character of the piece.
func (p *BreakPiece) EndPos() int32 {
	return p.StartPos + p.Width
}

// IsRTL is true for pieces of odd bidi level.
func (p *BreakPiece) IsRTL() bool {
	return p.BidiLevel&1 == 1
}

func (p *BreakPiece) String() string {
	return fmt.Sprintf("piece[%d+%d @%d w=%d lvl=%d %s]", p.StartChar, p.CharCount,
		p.StartPos, p.Width, p.BidiLevel, p.Status)
}

// CharSource is implemented by the line breakers. Pieces borrow their
// characters from it.
type CharSource interface {
	PieceChars(p *BreakPiece) []Char
}

// Chars returns the characters of a piece. The slice is owned by src and is
// valid until the pieces of its line are cleared; after that, Chars returns nil.
func (p *BreakPiece) Chars(src CharSource) []Char {
	return src.PieceChars(p)
}

// Text returns the text of the piece, or "" if the piece is stale.
func (p *BreakPiece) Text(src CharSource) string {
	chars := src.PieceChars(p)
	rs := make([]rune, len(chars))
	for i := range chars {
		rs[i] = chars[i].Code
	}
	return string(rs)
}

// newPiece starts a piece at character i of line l.
func newPiece(l *line, i int) BreakPiece {
	c := &l.chars[i]
	return BreakPiece{
		Status:    Piece,
		StartChar: i,
		FontSize:  c.FontSize,
		HScale:    c.HScale,
		VScale:    c.VScale,
		UserData:  c.UserData,
	}
}

// tpo pairs a piece index with its visual position.
type tpo struct {
	index int
	pos   int
}
