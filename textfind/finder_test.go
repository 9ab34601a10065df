package textfind

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/textbreak"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collect returns the [start,end] pairs of all matches found by FindNext.
func collect(f *Finder) [][2]int {
	var m [][2]int
	for f.FindNext() {
		m = append(m, [2]int{f.Start(), f.End()})
	}
	return m
}

func TestWholeWord(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textbreak.textfind")
	defer teardown()
	//
	f, err := New("ab cd", "cd", Options{MatchWholeWord: true}, 0)
	require.NoError(t, err)
	require.True(t, f.FindNext())
	assert.Equal(t, 3, f.Start())
	assert.Equal(t, 4, f.End())
	assert.Equal(t, "cd", f.Match())
	assert.False(t, f.FindNext())
	//
	f, _ = New("abcd cde", "cd", Options{MatchWholeWord: true}, 0)
	assert.False(t, f.FindNext())
	f, _ = New("abcd cde", "cd", Options{}, 0)
	assert.Equal(t, [][2]int{{2, 3}, {5, 6}}, collect(f))
	f, _ = New("(cd), 12cd", "cd", Options{MatchWholeWord: true}, 0)
	assert.Equal(t, [][2]int{{1, 2}}, collect(f))
}

func TestMatchCase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textbreak.textfind")
	defer teardown()
	//
	text := "Hello hello HELLO"
	f, _ := New(text, "hello", Options{}, -1)
	assert.Equal(t, [][2]int{{0, 4}, {6, 10}, {12, 16}}, collect(f))
	f, _ = New(text, "hello", Options{MatchCase: true}, -1)
	assert.Equal(t, [][2]int{{6, 10}}, collect(f))
}

func TestCaseFoldingChangesLength(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textbreak.textfind")
	defer teardown()
	//
	f, _ := New("STRASSE straße", "Strasse", Options{}, 0)
	assert.Equal(t, [][2]int{{0, 6}, {8, 13}}, collect(f))
	f, _ = New("straße", "s", Options{}, 0)
	assert.Equal(t, [][2]int{{0, 0}}, collect(f), "must not match inside the folding of ß")
}

func TestFindPrev(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textbreak.textfind")
	defer teardown()
	//
	f, _ := New("ab ab ab", "ab", Options{}, -1)
	for f.FindNext() {
	}
	assert.Equal(t, 6, f.Start())
	require.True(t, f.FindPrev())
	assert.Equal(t, 3, f.Start())
	require.True(t, f.FindPrev())
	assert.Equal(t, 0, f.Start())
	assert.False(t, f.FindPrev())
	require.True(t, f.FindNext())
	assert.Equal(t, 3, f.Start())
	//
	f, _ = New("ab ab ab", "ab", Options{}, -1)
	require.True(t, f.FindPrev(), "without a start position, search backwards from the end")
	assert.Equal(t, 6, f.Start())
}

func TestStartPosition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textbreak.textfind")
	defer teardown()
	//
	f, _ := New("ab ab", "ab", Options{}, 1)
	require.True(t, f.FindNext())
	assert.Equal(t, 3, f.Start())
	f, _ = New("ab ab", "ab", Options{}, 1)
	require.True(t, f.FindPrev())
	assert.Equal(t, 0, f.Start())
}

func TestConsecutive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textbreak.textfind")
	defer teardown()
	//
	f, _ := New("aaa", "aa", Options{}, 0)
	assert.Equal(t, [][2]int{{0, 1}}, collect(f))
	f, _ = New("aaa", "aa", Options{Consecutive: true}, 0)
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}}, collect(f))
}

func TestMultipleWords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textbreak.textfind")
	defer teardown()
	//
	f, _ := New("foo   bar baz", "foo bar", Options{}, 0)
	assert.Equal(t, [][2]int{{0, 8}}, collect(f))
	f, _ = New("foobar", "foo bar", Options{}, 0)
	assert.Empty(t, collect(f))
}

func TestInvalidPattern(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textbreak.textfind")
	defer teardown()
	//
	for _, p := range []string{"", "  \t "} {
		f, err := New("some text", p, Options{}, 0)
		assert.Nil(t, f)
		assert.Equal(t, textbreak.EINVALID, textbreak.Code(err))
	}
}

func TestNonLatinWord(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textbreak.textfind")
	defer teardown()
	//
	f, _ := New("日本語", "本", Options{MatchWholeWord: true}, 0)
	assert.Equal(t, [][2]int{{1, 1}}, collect(f))
}
