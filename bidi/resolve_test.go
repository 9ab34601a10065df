package bidi

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/textbreak/internal/testdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTrivialLines(t *testing.T) {
	levels, order := ResolveLine(nil)
	assert.Empty(t, levels)
	assert.Empty(t, order)
	levels, order = ResolveLine([]Class{R})
	assert.Equal(t, []int8{1}, levels)
	assert.Equal(t, []int{0}, order)
	levels, _ = ResolveLine([]Class{AL})
	assert.Equal(t, []int8{1}, levels)
	levels, _ = ResolveLine([]Class{EN})
	assert.Equal(t, []int8{0}, levels)
}

func TestResolveLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textbreak.bidi")
	defer teardown()
	//
	tf, err := testdata.Open("bidilines.txt")
	require.NoError(t, err)
	defer tf.Close()
	for tf.Scan() {
		rs, err := testdata.Runes(tf.Field(0))
		require.NoError(t, err, "line %d", tf.Line())
		lv, err := testdata.Ints(tf.Field(1))
		require.NoError(t, err, "line %d", tf.Line())
		order, err := testdata.Ints(tf.Field(2))
		require.NoError(t, err, "line %d", tf.Line())
		want := make([]int8, len(lv))
		for i, l := range lv {
			want[i] = int8(l)
		}
		levels, o := ResolveString(string(rs))
		assert.Equal(t, want, levels, "levels of %s", tf.Comment())
		assert.Equal(t, order, o, "order of %s", tf.Comment())
	}
	require.NoError(t, tf.Err())
}

func TestResolveOrderIsPermutation(t *testing.T) {
	inputs := []string{
		"The title is مفتاح معايير in Arabic.",
		"א 1.5 ב, x+y ג!",
		"ال ١٢ abc ​‮xyz",
	}
	for _, input := range inputs {
		levels, order := ResolveString(input)
		assert.Equal(t, len([]rune(input)), len(levels))
		seen := make([]bool, len(order))
		for _, v := range order {
			if assert.True(t, v >= 0 && v < len(order)) {
				assert.False(t, seen[v], "position %d used twice for %q", v, input)
				seen[v] = true
			}
		}
		l2, o2 := ResolveString(input)
		assert.Equal(t, levels, l2)
		assert.Equal(t, order, o2)
	}
}
