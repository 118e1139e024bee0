package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDeck(t *testing.T) {
	deck := New()

	assert.Equal(t, 48, deck.CardsLeft())
	assert.Equal(t, Standard48, deck.Variant())

	assert.Equal(t, Card{Month: 1, Type: Bright, Name: "송학", Value: 20}, *deck.Cards[0])
	assert.Equal(t, Card{Month: 12, Type: Junk, Name: "비", Value: 2}, *deck.Cards[47])

	unshuffled := deck.HashCode()

	deck.Shuffle(1)
	assert.Equal(t, 48, deck.CardsLeft())
	assert.Equal(t, int64(1), deck.GetSeed())
	shuffled := deck.HashCode()
	assert.NotEqual(t, unshuffled, shuffled)

	other := New()
	other.Shuffle(1)
	assert.Equal(t, shuffled, other.HashCode(), "same seed, same order")

	deck.Shuffle(2)
	assert.NotEqual(t, shuffled, deck.HashCode())
}

func TestNewSimplified(t *testing.T) {
	a := assert.New(t)

	deck := NewSimplified()
	a.Equal(40, deck.CardsLeft())
	a.Equal(Simplified40, deck.Variant())
	a.Equal(10, deck.Cards[39].Month)

	deck.Shuffle(7)
	a.Equal(40, deck.CardsLeft())
	for _, card := range deck.Cards {
		a.LessOrEqual(card.Month, 10)
	}
}

func TestDeck_CardComposition(t *testing.T) {
	a := assert.New(t)

	counts := make(map[Type]int)
	perMonth := make(map[int]int)
	for _, card := range New().Cards {
		counts[card.Type]++
		perMonth[card.Month]++
	}

	a.Equal(5, counts[Bright])
	a.Equal(9, counts[Animal])
	a.Equal(10, counts[Ribbon])
	a.Equal(24, counts[Junk])

	for month := 1; month <= 12; month++ {
		a.Equal(4, perMonth[month], "month %d", month)
	}

	brights := make([]int, 0)
	for _, card := range New().Cards {
		if card.IsBright() {
			brights = append(brights, card.Month)
		}
	}
	a.Equal([]int{1, 3, 8, 11, 12}, brights)
}

func TestDeck_ShuffleIsPermutation(t *testing.T) {
	type key struct {
		month int
		t     Type
		name  string
	}

	for _, variant := range []Variant{Standard48, Simplified40} {
		t.Run(string(variant), func(t *testing.T) {
			a := assert.New(t)

			reference := make(map[key]int)
			for _, card := range NewVariant(variant).Cards {
				reference[key{card.Month, card.Type, card.Name}]++
			}

			d := NewVariant(variant)
			for _, seed := range []int64{1, 2, 42, 1234567, 987654321} {
				d.Shuffle(seed)
				a.Equal(variant.Size(), d.CardsLeft())

				got := make(map[key]int)
				pointers := make(map[*Card]bool)
				for _, card := range d.Cards {
					got[key{card.Month, card.Type, card.Name}]++
					pointers[card] = true
				}

				a.Equal(reference, got, "seed %d", seed)
				a.Len(pointers, variant.Size(), "seed %d", seed)
			}
		})
	}
}

func TestDeck_Draw(t *testing.T) {
	deck := New()

	assert.True(t, deck.CanDraw(48))
	assert.False(t, deck.CanDraw(49))

	for i := 0; i < 48; i++ {
		card, err := deck.Draw()
		assert.NotNil(t, card)
		assert.NoError(t, err)
	}

	card, err := deck.Draw()
	assert.Nil(t, card)
	assert.Equal(t, ErrEndOfDeck, err)
	assert.Equal(t, 0, deck.CardsLeft())

	// shuffling rebuilds the full deck
	deck.Shuffle(3)
	assert.Equal(t, 48, deck.CardsLeft())
}

func TestDeck_ShufflePanicsOnNegativeSeed(t *testing.T) {
	assert.PanicsWithValue(t, "seed cannot be < 0", func() {
		New().Shuffle(-1)
	})
}

func TestVariantFromString(t *testing.T) {
	tests := []struct {
		in      string
		want    Variant
		wantErr string
	}{
		{"", Standard48, ""},
		{"standard48", Standard48, ""},
		{"simplified40", Simplified40, ""},
		{"tarot", "", "unknown deck variant: tarot"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, err := VariantFromString(tt.in)
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, v)
			assert.Equal(t, v.Size(), NewVariant(v).CardsLeft())
		})
	}
}
