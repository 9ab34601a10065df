package bidi

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestClassOf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textbreak.bidi")
	defer teardown()
	//
	tests := []struct {
		r   rune
		cls Class
	}{
		{'A', L},
		{'1', EN},
		{' ', WS},
		{'\t', S},
		{'\n', B},
		{'!', ON},
		{'+', ES},
		{',', CS},
		{'$', ET},
		{0x05D0, R},  // HEBREW LETTER ALEF
		{0x0627, AL}, // ARABIC LETTER ALEF
		{0x0661, AN}, // ARABIC-INDIC DIGIT ONE
		{0x0300, NSM},
		{0x200B, BN},
		{0x202E, RLO},
		{0x2066, ON}, // LRI
		{0x0378, ON}, // unassigned
		{0xD800, ON}, // surrogate
		{-1, ON},
	}
	for _, test := range tests {
		assert.Equal(t, test.cls, ClassOf(test.r), "class of %#U", test.r)
	}
}

func TestDirectionOf(t *testing.T) {
	assert.Equal(t, Left, DirectionOf(L))
	assert.Equal(t, Right, DirectionOf(R))
	assert.Equal(t, Right, DirectionOf(AL))
	assert.Equal(t, LeftWeak, DirectionOf(EN))
	assert.Equal(t, LeftWeak, DirectionOf(NSM))
	assert.Equal(t, Neutral, DirectionOf(WS))
	assert.Equal(t, Neutral, DirectionOf(PDF))
	assert.Equal(t, "Right", Right.String())
	assert.Equal(t, "NSM", NSM.String())
	assert.Equal(t, "PDF", PDF.String())
}

func TestBidiCharSegments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textbreak.bidi")
	defer teardown()
	//
	var bc BidiChar
	assert.True(t, bc.AppendChar('A'))
	assert.Equal(t, Segment{0, 0, Neutral}, bc.Segment())
	assert.False(t, bc.AppendChar('B'))
	assert.True(t, bc.AppendChar(0x05D0))
	assert.Equal(t, Segment{0, 2, Left}, bc.Segment())
	assert.True(t, bc.EndChar())
	assert.Equal(t, Segment{2, 1, Right}, bc.Segment())
	assert.False(t, bc.EndChar())
}

func TestBidiStringLeftNeutralLeftRight(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textbreak.bidi")
	defer teardown()
	//
	bs := NewBidiString("A Aא")
	assert.Equal(t, Left, bs.OverallDirection())
	expected := []Segment{
		{0, 0, Neutral},
		{0, 1, Left},
		{1, 1, Neutral},
		{2, 1, Left},
		{3, 1, Right},
	}
	assert.Equal(t, expected, bs.Segments())
	assert.Equal(t, "(0,0,Neutral)(0,1,Left)(1,1,Neutral)(2,1,Left)(3,1,Right)", bs.String())
}

func TestBidiStringRightWins(t *testing.T) {
	bs := NewBidiString("Aאב")
	assert.Equal(t, Right, bs.OverallDirection())
	segs := bs.Segments()
	assert.Equal(t, Segment{1, 2, Right}, segs[0])
	assert.Equal(t, "אב", bs.SegmentText(segs[0]))
	bs.SetOverallDirectionRight()
	assert.Equal(t, Segment{1, 2, Right}, bs.Segments()[0], "must be idempotent")
}

func TestBidiStringCoversInput(t *testing.T) {
	inputs := []string{
		"",
		"hello world",
		"abc אבג 123!",
		"العربية (1,5)",
	}
	for _, input := range inputs {
		bs := NewBidiString(input)
		total := 0
		for _, seg := range bs.Segments() {
			total += seg.Count
		}
		assert.Equal(t, bs.Len(), total, "segments of %q must cover the input", input)
		again := NewBidiString(input)
		assert.Equal(t, bs.Segments(), again.Segments(), "segmentation must be deterministic")
	}
}

func TestCharAt(t *testing.T) {
	bs := NewBidiString("ab")
	assert.Equal(t, 'b', bs.CharAt(1))
	assert.Equal(t, rune(0), bs.CharAt(2))
	assert.Equal(t, rune(0), bs.CharAt(-1))
}
