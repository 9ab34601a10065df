package metrics

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/textbreak"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestContextWidths(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textbreak.metrics")
	defer teardown()
	//
	chars := [...]rune{
		'A',    // LATIN CAPITAL LETTER A           => Na
		0x05BD, // HEBREW POINT METEG               => N
		0x2223, // DIVIDES                          => A
		0x3008, // LEFT ANGLE BRACKET               => W
		0xFF41, // FULLWIDTH LATIN SMALL LETTER A   => F
	}
	latin := [...]bool{false, false, false, true, true}
	eastAsian := [...]bool{false, false, true, true, true}
	for i, r := range chars {
		assert.Equal(t, latin[i], LatinContext.IsWide(r), "latin width of %#U", r)
		assert.Equal(t, eastAsian[i], EastAsianContext.IsWide(r), "east asian width of %#U", r)
	}
}

func TestNewContext(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textbreak.metrics")
	defer teardown()
	//
	assert.True(t, NewContext("ja-JP").IsWide(0x2223))
	assert.True(t, NewContext("zh-TW").IsWide(0x2223))
	assert.False(t, NewContext("en-US").IsWide(0x2223))
	assert.False(t, NewContext("de-DE").IsWide(0x2223))
}

func TestEnvLocale(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textbreak.metrics")
	defer teardown()
	//
	ctx := ContextFromEnvironment()
	require.NotNil(t, ctx)
	assert.NotEmpty(t, ctx.Locale)
	t.Logf("user environment has locale '%s'", ctx.Locale)
}

func TestMonospace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textbreak.metrics")
	defer teardown()
	//
	m := NewMonospace(nil)
	w, ok := m.CharWidth('a')
	assert.True(t, ok)
	assert.Equal(t, int32(500), w)
	w, ok = m.CharWidth('世')
	assert.True(t, ok)
	assert.Equal(t, int32(1000), w)
	w, ok = m.CharWidth(0x0301)
	assert.True(t, ok)
	assert.Equal(t, int32(0), w)
	_, ok = m.CharWidth('\n')
	assert.False(t, ok)
	assert.Equal(t, uint16('a'), m.GlyphIndex('a'))
	assert.Equal(t, MissingGlyph, m.GlyphIndex('\n'))
	assert.Equal(t, MissingGlyph, m.GlyphIndex(0x1F600))
	assert.Equal(t, int32(1000), m.Ascent()-m.Descent())
}

func TestSFNT(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textbreak.metrics")
	defer teardown()
	//
	f, err := LoadSFNT(goregular.TTF)
	require.NoError(t, err)
	w, ok := f.CharWidth('m')
	assert.True(t, ok)
	assert.Greater(t, w, int32(0))
	assert.Less(t, w, int32(2000))
	wi, _ := f.CharWidth('i')
	assert.Less(t, wi, w, "'i' should be narrower than 'm'")
	assert.NotEqual(t, MissingGlyph, f.GlyphIndex('m'))
	_, ok = f.CharWidth('世') // Go fonts have no CJK
	assert.False(t, ok)
	assert.Equal(t, MissingGlyph, f.GlyphIndex('世'))
	assert.Greater(t, f.Ascent(), int32(0))
	assert.Less(t, f.Descent(), int32(0))
}

func TestLoadSFNTErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textbreak.metrics")
	defer teardown()
	//
	_, err := LoadSFNT(nil)
	assert.Equal(t, textbreak.EMISSING, textbreak.Code(err))
	_, err = LoadSFNT([]byte("not a font"))
	assert.Equal(t, textbreak.EINVALID, textbreak.Code(err))
}
