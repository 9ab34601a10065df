package textfind

import (
	"strings"
	"unicode"

	"github.com/npillmayer/textbreak"
	"github.com/npillmayer/textbreak/charclass"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Options control matching.
type Options struct {
	MatchCase      bool // compare without case folding
	MatchWholeWord bool // matches must not be part of a longer word
	Consecutive    bool // the next search starts right after the start of a match
}

// Finder iterates over the matches of a pattern in a text.
type Finder struct {
	text   []rune
	folded []rune // text after case folding
	index  []int  // position in folded → position in text
	words  [][]rune
	opts   Options
	pos    int // position in folded where FindNext starts
	limit  int // position in folded before which FindPrev searches
	start  int // current match in text, or -1
	end    int
}

// New creates a Finder for pattern in text. Searching starts at rune
// position start; a negative start searches from the beginning for
// FindNext and from the end for FindPrev.
// An error of code EINVALID is returned if the pattern contains no words.
func New(text, pattern string, opts Options, start int) (*Finder, error) {
	pattern = norm.NFC.String(pattern)
	f := &Finder{
		text:  []rune(text),
		opts:  opts,
		start: -1,
		end:   -1,
	}
	caser := cases.Fold()
	fold := func(s string) string {
		if opts.MatchCase {
			return s
		}
		return caser.String(s)
	}
	for _, w := range strings.FieldsFunc(pattern, unicode.IsSpace) {
		f.words = append(f.words, []rune(fold(w)))
	}
	if len(f.words) == 0 {
		return nil, textbreak.Error(textbreak.EINVALID, "empty search pattern")
	}
	f.folded = make([]rune, 0, len(f.text))
	f.index = make([]int, 0, len(f.text))
	for i, r := range f.text {
		for _, fr := range fold(string(r)) {
			f.folded = append(f.folded, fr)
			f.index = append(f.index, i)
		}
	}
	f.pos, f.limit = 0, len(f.folded)
	if start >= 0 {
		f.pos = f.foldedPos(start)
		f.limit = f.pos
	}
	tracer().Debugf("find %d word(s) in text of length %d from %d", len(f.words), len(f.text), f.pos)
	return f, nil
}

// foldedPos is the first position in folded at or after text position i.
func (f *Finder) foldedPos(i int) int {
	for k, t := range f.index {
		if t >= i {
			return k
		}
	}
	return len(f.folded)
}

// Start is the position of the first character of the current match,
// or -1 if there is none.
func (f *Finder) Start() int {
	return f.start
}

// End is the position of the last character of the current match,
// or -1 if there is none.
func (f *Finder) End() int {
	return f.end
}

// Match returns the text of the current match.
func (f *Finder) Match() string {
	if f.start < 0 {
		return ""
	}
	return string(f.text[f.start : f.end+1])
}

// FindNext moves to the next match. It returns false if there is none,
// leaving the position unchanged.
func (f *Finder) FindNext() bool {
	for i := f.pos; i < len(f.folded); i++ {
		if e, ok := f.matchAt(i); ok {
			f.accept(i, e)
			return true
		}
	}
	return false
}

// FindPrev moves to the previous match, i.e. the last match starting
// before the current one. It returns false if there is none.
func (f *Finder) FindPrev() bool {
	for i := f.limit - 1; i >= 0; i-- {
		if e, ok := f.matchAt(i); ok {
			f.accept(i, e)
			return true
		}
	}
	return false
}

func (f *Finder) accept(i, e int) {
	f.start, f.end = f.index[i], f.index[e]
	f.limit = i
	if f.opts.Consecutive {
		f.pos = i + 1
	} else {
		f.pos = e + 1
	}
	tracer().Debugf("match at [%d,%d]", f.start, f.end)
}

// matchAt checks for a match starting at position i of folded and returns
// the position of its last character.
func (f *Finder) matchAt(i int) (int, bool) {
	if i > 0 && f.index[i-1] == f.index[i] {
		return 0, false // inside the folding of a single character
	}
	k := i
	for n, w := range f.words {
		if n > 0 {
			gap := k
			for k < len(f.folded) && unicode.IsSpace(f.folded[k]) {
				k++
			}
			if k == gap {
				return 0, false
			}
		}
		if k+len(w) > len(f.folded) {
			return 0, false
		}
		for j, r := range w {
			if f.folded[k+j] != r {
				return 0, false
			}
		}
		k += len(w)
	}
	e := k - 1
	if k < len(f.folded) && f.index[k] == f.index[e] {
		return 0, false
	}
	if f.opts.MatchWholeWord && !f.isWholeWord(f.index[i], f.index[e]) {
		return 0, false
	}
	return e, true
}

// isWholeWord checks that text[start:end+1] is neither preceded nor followed
// by a character continuing a word. A single character beyond Latin-1 is
// always a word.
func (f *Finder) isWholeWord(start, end int) bool {
	if start == end && f.text[start] > 0xFF {
		return true
	}
	if start > 0 && !charclass.IsIgnorableForWordBreak(f.text[start-1]) {
		return false
	}
	if end+1 < len(f.text) && !charclass.IsIgnorableForWordBreak(f.text[end+1]) {
		return false
	}
	return true
}
