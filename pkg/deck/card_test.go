package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCard_String(t *testing.T) {
	assert.Equal(t, "3광", CardFromString("3b").String())
	assert.Equal(t, "8열", CardFromString("8a").String())
	assert.Equal(t, "9띠", CardFromString("9r").String())
	assert.Equal(t, "10피", CardFromString("10j").String())
}

func TestParseCard(t *testing.T) {
	a := assert.New(t)

	card, err := ParseCard("8B")
	a.NoError(err)
	a.Equal(&Card{Month: 8, Type: Bright, Name: "갈대광", Value: 20}, card)

	card, err = ParseCard("11j3")
	a.NoError(err)
	a.Equal("오동쌍피", card.Name)

	card, err = ParseCard("11j")
	a.NoError(err)
	a.Equal("오동", card.Name)

	_, err = ParseCard("2b")
	a.EqualError(err, "there is no card 2b")

	_, err = ParseCard("13j")
	a.EqualError(err, "could not parse card: 13j")

	_, err = ParseCard("1j3")
	a.EqualError(err, "there is no card 1j3")
}

func TestCardFromString(t *testing.T) {
	a := assert.New(t)

	a.Nil(CardFromString(""))
	a.Panics(func() {
		CardFromString("0b")
	})

	cards := CardsFromString("1b,3r,8a,12j")
	a.Len(cards, 4)
	a.Equal("1b,3r,8a,12j", CardsToString(cards))
	a.Equal([]*Card{}, CardsFromString(""))
	a.Equal("", CardToString(nil))
}

func TestCard_Equal(t *testing.T) {
	a := assert.New(t)

	a.True(CardFromString("1j").Equal(CardFromString("1j")))
	a.False(CardFromString("1j").Equal(CardFromString("1r")))
	a.False(CardFromString("11j").Equal(CardFromString("11j3")))
	a.True(CardFromString("3b").IsBright())
	a.False(CardFromString("3r").IsBright())
}
