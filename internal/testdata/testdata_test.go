package testdata

import (
	"testing"

	"github.com/npillmayer/textbreak"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanFile(t *testing.T) {
	tf, err := Open("bidilines.txt")
	require.NoError(t, err)
	defer tf.Close()
	require.True(t, tf.Scan(), "expected at least one data line")
	assert.Equal(t, "0061 0062 0063", tf.Field(0))
	assert.Equal(t, "0 0 0", tf.Field(1))
	assert.Equal(t, "abc", tf.Comment())
	assert.Equal(t, "", tf.Field(3))
	assert.Greater(t, tf.Line(), 1, "comment lines are counted")
}

func TestHashInField(t *testing.T) {
	tf, err := Open("breakpairs.txt")
	require.NoError(t, err)
	defer tf.Close()
	found := false
	for tf.Scan() {
		if tf.Comment() == "AL CM" {
			found = true
			assert.Equal(t, "0061 0301", tf.Field(0))
			assert.Equal(t, "#", tf.Field(1))
		}
	}
	require.NoError(t, tf.Err())
	assert.True(t, found, "expected a line for the pair AL CM")
}

func TestMissingFile(t *testing.T) {
	_, err := Open("no-such-file.txt")
	assert.Equal(t, textbreak.EMISSING, textbreak.Code(err))
}

func TestRunes(t *testing.T) {
	rs, err := Runes(" 0061 05D0  1F600 ")
	require.NoError(t, err)
	assert.Equal(t, []rune{'a', 0x05D0, 0x1F600}, rs)
	_, err = Runes("00G1")
	assert.Equal(t, textbreak.EINVALID, textbreak.Code(err))
	ns, err := Ints("4 3 2")
	require.NoError(t, err)
	assert.Equal(t, []int{4, 3, 2}, ns)
}
