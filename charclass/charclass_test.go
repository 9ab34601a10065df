package charclass

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/textbreak/bidi"
	"github.com/npillmayer/textbreak/internal/testdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeOf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textbreak.charclass")
	defer teardown()
	//
	tests := []struct {
		r    rune
		want CharType
	}{
		{'a', Normal},
		{' ', Space},
		{0x00A0, Space},
		{'\t', Tab},
		{'\n', Control},
		{LineSeparator, Control},
		{ParagraphSeparator, Control},
		{0x0301, Combination},
		{0x064E, Combination}, // Fatha
		{'5', Numeric},
		{0x0627, ArabicAlef},
		{0x0628, ArabicDistortion},
		{0x0640, ArabicDistortion},
		{0x0631, ArabicSpecial},
		{0x0621, ArabicNormal},
		{0x060C, Arabic},
		{0xFEFB, ArabicForm},
		{-1, Unknown},
		{0xD800, Unknown},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, TypeOf(tc.r), "type of %#U", tc.r)
	}
}

func TestUnifiedType(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textbreak.charclass")
	defer teardown()
	//
	for ct := ArabicAlef; ct <= Arabic; ct++ {
		assert.Equal(t, Arabic, Unified(ct), ct.String())
		assert.True(t, IsArabic(ct))
	}
	for ct := Unknown; ct < ArabicAlef; ct++ {
		assert.Equal(t, ct, Unified(ct), ct.String())
		assert.False(t, IsArabic(ct))
	}
	assert.True(t, IsEmpty(Tab))
	assert.True(t, IsEmpty(Control))
	assert.False(t, IsEmpty(Combination))
}

func breakPropertyNamed(name string) (BreakProperty, bool) {
	for bp := OP; bp <= NL; bp++ {
		if bp.String() == name {
			return bp, true
		}
	}
	return 0, false
}

func TestBreakPropertyOf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textbreak.charclass")
	defer teardown()
	//
	tf, err := testdata.Open("breakclasses.txt")
	require.NoError(t, err)
	defer tf.Close()
	n := 0
	for tf.Scan() {
		rs, err := testdata.Runes(tf.Field(0))
		require.NoError(t, err, "line %d", tf.Line())
		want, ok := breakPropertyNamed(tf.Field(1))
		require.True(t, ok, "line %d: unknown class %q", tf.Line(), tf.Field(1))
		assert.Equal(t, want, BreakPropertyOf(rs[0]), "break property of %#U (%s)", rs[0], tf.Comment())
		n++
	}
	require.NoError(t, tf.Err())
	assert.Greater(t, n, 10)
}

func TestBreakPairs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textbreak.charclass")
	defer teardown()
	//
	tf, err := testdata.Open("breakpairs.txt")
	require.NoError(t, err)
	defer tf.Close()
	for tf.Scan() {
		rs, err := testdata.Runes(tf.Field(0))
		require.NoError(t, err, "line %d", tf.Line())
		require.Len(t, rs, 2, "line %d", tf.Line())
		bo := PairType(BreakPropertyOf(rs[0]), BreakPropertyOf(rs[1]))
		assert.Equal(t, tf.Field(1), bo.String(), "break between %#U and %#U (%s)", rs[0], rs[1], tf.Comment())
	}
	require.NoError(t, tf.Err())
}

func TestPairTableCrossProduct(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textbreak.charclass")
	defer teardown()
	//
	for cur := OP; cur <= NL; cur++ {
		for next := OP; next <= NL; next++ {
			bo := PairType(cur, next)
			assert.NotEqual(t, UnknownBreak, bo, "pair (%s,%s)", cur, next)
			if cur <= TB && (next == SP || next == TB) {
				assert.Equal(t, ProhibitedBreak, bo, "pair (%s,%s)", cur, next)
			}
			if next >= BK {
				assert.Equal(t, ProhibitedBreak, bo, "pair (%s,%s)", cur, next)
			}
		}
	}
	assert.Equal(t, ProhibitedBreak, PairType(SP, SP))
	assert.Equal(t, DirectBreak, PairType(SP, AL))
	assert.Equal(t, IndirectBreak, PairType(AL, AL))
	assert.Equal(t, DirectBreak, PairType(ID, ID))
	assert.Equal(t, ProhibitedBreak, PairType(OP, AL))
	assert.Equal(t, ComProhibitedBreak, PairType(OP, CM))
	assert.Equal(t, ComIndirectBreak, PairType(AL, CM))
	assert.Equal(t, DirectBreak, PairType(BK, AL))
	assert.Equal(t, UnknownBreak, PairType(NL+1, AL))
}

func TestMirror(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textbreak.charclass")
	defer teardown()
	//
	assert.Equal(t, ')', Mirror('('))
	assert.Equal(t, '(', Mirror(')'))
	assert.Equal(t, '>', Mirror('<'))
	assert.Equal(t, ']', Mirror('['))
	assert.Equal(t, 'a', Mirror('a'))
}

func TestIgnorableForWordBreak(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textbreak.charclass")
	defer teardown()
	//
	for _, r := range []rune{' ', ',', '.', '-', 0x0628, 0x0431, 0x3002, 0x4E2D, 0x3042, 0xAC00, 0xFEFB} {
		assert.True(t, IsIgnorableForWordBreak(r), "%#U", r)
	}
	for _, r := range []rune{'a', 'Z', '7', 0x00E9, 0x201C, 0x2014, 0x2502, 0x0100} {
		assert.False(t, IsIgnorableForWordBreak(r), "%#U", r)
	}
}

func TestProps(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textbreak.charclass")
	defer teardown()
	//
	p := Props(0x05D0)
	assert.Equal(t, Normal, p.Type)
	assert.Equal(t, AL, p.Break)
	assert.Equal(t, bidi.R, p.Bidi)
	p = Props(' ')
	assert.Equal(t, Space, p.Type)
	assert.Equal(t, SP, p.Break)
	assert.Equal(t, bidi.WS, p.Bidi)
}
