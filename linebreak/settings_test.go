package linebreak

import (
	"testing"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/textbreak"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsFromConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textbreak.linebreak")
	defer teardown()
	//
	conf := testconfig.Conf{
		KeyLineWidth:     "200",
		KeyFontSize:      10.5,
		KeyAlignment:     "Right",
		KeyHScale:        150,
		KeyExpandTab:     true,
		KeySingleLine:    "false",
		KeyParaBreakChar: "cr",
	}
	s, err := SettingsFrom(conf)
	require.NoError(t, err)
	assert.Equal(t, float32(200), s.LineWidth)
	assert.Equal(t, float32(10.5), s.FontSize)
	assert.Equal(t, Right, s.Alignment)
	assert.Equal(t, 150, s.HScale)
	assert.Equal(t, 100, s.VScale)
	assert.Equal(t, ExpandTab, s.Styles)
	assert.Equal(t, '\r', s.ParaBreakChar)
	//
	rb := NewRTFBreak(0)
	s.Apply(rb)
	assert.Equal(t, int32(4000000), rb.lineWidth)
	assert.Equal(t, int32(210), rb.fontSize)
	assert.Equal(t, int32(150), rb.hscale)
	assert.Equal(t, Right, rb.alignment)
	assert.True(t, rb.is(ExpandTab))
	assert.Equal(t, '\r', rb.paraBreakChar)
}

func TestSettingsDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textbreak.linebreak")
	defer teardown()
	//
	s, err := SettingsFrom(testconfig.Conf{})
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
	tb := NewTxtBreak(0)
	s.Apply(tb)
	fresh := NewTxtBreak(0)
	assert.Equal(t, fresh.lineWidth, tb.lineWidth)
	assert.Equal(t, fresh.fontSize, tb.fontSize)
	assert.Equal(t, fresh.tabWidth, tb.tabWidth)
}

func TestSettingsInvalid(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textbreak.linebreak")
	defer teardown()
	//
	conf := testconfig.Conf{
		KeyFontSize:      "-3",
		KeyTabWidth:      "1",
		KeyAlignment:     "sideways",
		KeyVScale:        0,
		KeyLineWidth:     "wide",
		KeyParaBreakChar: "x",
	}
	s, err := SettingsFrom(conf)
	require.Error(t, err)
	assert.Equal(t, textbreak.EINVALID, textbreak.Code(err))
	assert.Equal(t, float32(0), s.FontSize)
	assert.Equal(t, float32(8), s.TabWidth)
	assert.Equal(t, Left, s.Alignment)
	assert.Equal(t, 100, s.VScale)
	assert.Equal(t, float32(100), s.LineWidth)
	assert.Equal(t, '\n', s.ParaBreakChar)
	assert.Contains(t, textbreak.UserMessage(err), KeyAlignment)
}
