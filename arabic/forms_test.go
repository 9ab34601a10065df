package arabic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	alef = rune(0x0627)
	beh  = rune(0x0628)
	reh  = rune(0x0631)
	meem = rune(0x0645)
)

func TestJoiningTypes(t *testing.T) {
	assert.Equal(t, DualJoining, Joining(beh))
	assert.Equal(t, RightJoining, Joining(alef))
	assert.Equal(t, RightJoining, Joining(reh))
	assert.Equal(t, NonJoining, Joining(0x0621))
	assert.Equal(t, JoinCausing, Joining(Tatweel))
	assert.Equal(t, Transparent, Joining(Shadda))
	assert.Equal(t, NonJoining, Joining('a'))
	assert.Equal(t, "D", DualJoining.String())
}

func TestContextualForms(t *testing.T) {
	tests := []struct {
		cur, prev, next rune
		form            rune
	}{
		{beh, NoChar, NoChar, 0xFE8F}, // isolated
		{beh, NoChar, meem, 0xFE91},   // initial
		{beh, meem, meem, 0xFE92},     // medial
		{beh, meem, NoChar, 0xFE90},   // final
		{beh, reh, meem, 0xFE91},      // Reh does not join to the left
		{beh, alef, NoChar, 0xFE8F},   // neither does Alef
		{reh, beh, NoChar, 0xFEAE},    // final of right-joining letter
		{reh, NoChar, beh, 0xFEAD},    // no initial form for right-joining letters
		{'x', beh, beh, 'x'},          // pass-through
		{0x0621, beh, beh, 0x0621},    // Hamza does not join
		{Tatweel, beh, beh, Tatweel},
	}
	for _, test := range tests {
		assert.Equal(t, test.form, FormChar(test.cur, test.prev, test.next),
			"form of %#U between %#U and %#U", test.cur, test.prev, test.next)
	}
}

func TestLamAlef(t *testing.T) {
	assert.True(t, IsLamAlef(Lam, alef))
	assert.False(t, IsLamAlef(alef, Lam))
	// Lam takes the ligature form, Alef is consumed
	assert.Equal(t, rune(0xFEFB), FormChar(Lam, NoChar, alef))
	assert.Equal(t, rune(0xFEFC), FormChar(Lam, beh, alef))
	assert.Equal(t, rune(0xFEFB), FormChar(Lam, reh, alef))
	assert.Equal(t, NoChar, FormChar(alef, Lam, NoChar))
	assert.Equal(t, rune(0xFEF5), FormChar(Lam, NoChar, 0x0622))
}

func TestShadda(t *testing.T) {
	form, ok := ShaddaForm(0x064C)
	assert.True(t, ok)
	assert.Equal(t, rune(0xFC5E), form)
	form, ok = ShaddaForm(0x0650)
	assert.True(t, ok)
	assert.Equal(t, rune(0xFC62), form)
	_, ok = ShaddaForm(0x0651)
	assert.False(t, ok)
	form, ok = ShaddaCompose(Shadda, 0x064E)
	assert.True(t, ok)
	assert.Equal(t, rune(0xFC60), form)
	form, ok = ShaddaCompose(0x064F, Shadda)
	assert.True(t, ok)
	assert.Equal(t, rune(0xFC61), form)
	_, ok = ShaddaCompose(beh, Shadda)
	assert.False(t, ok)
}

func TestForms(t *testing.T) {
	iso, fin, ini, med, ok := Forms(0x0644)
	assert.True(t, ok)
	assert.Equal(t, []rune{0xFEDD, 0xFEDE, 0xFEDF, 0xFEE0}, []rune{iso, fin, ini, med})
	_, _, _, _, ok = Forms('A')
	assert.False(t, ok)
}
