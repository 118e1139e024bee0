package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"
	"fmt"
	"seotda-server/internal/rng"
	"time"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// Variant is the composition of the deck
type Variant string

// deck variants
const (
	// Standard48 is the full hwatu deck: 12 months of four cards
	Standard48 Variant = "standard48"
	// Simplified40 drops November and December
	Simplified40 Variant = "simplified40"
)

// VariantFromString returns a Variant from a string
func VariantFromString(s string) (Variant, error) {
	switch v := Variant(s); v {
	case Standard48, Simplified40:
		return v, nil
	case "":
		return Standard48, nil
	}

	return "", fmt.Errorf("unknown deck variant: %s", s)
}

// Size returns how many cards a fresh deck of this variant holds
func (v Variant) Size() int {
	if v == Simplified40 {
		return 40
	}

	return 48
}

// Deck represents a hwatu deck
type Deck struct {
	Cards   []*Card `json:"cards"`
	variant Variant
	seed    int64
	rng     *rng.Seeded
}

// New returns a new standard 48 card deck.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	return newDeck(Standard48)
}

// NewSimplified returns a new 40 card deck (months 1-10)
func NewSimplified() *Deck {
	return newDeck(Simplified40)
}

// NewVariant returns an unshuffled deck of the given variant
func NewVariant(v Variant) *Deck {
	return newDeck(v)
}

func newDeck(v Variant) *Deck {
	d := &Deck{
		variant: v,
		seed:    -1,
	}

	d.buildDeck()
	return d
}

// SetSeed will set the seed
// This should only be used by tests. Setting the seed is normally handled when you call Shuffle()
func (d *Deck) SetSeed(seed int64) {
	d.seed = seed
	d.rng = rng.NewSeeded(seed)
}

// Variant returns the deck variant
func (d *Deck) Variant() Variant {
	return d.variant
}

func (d *Deck) buildDeck() {
	cards := standardCards()
	if d.variant == Simplified40 {
		cards = cards[:40]
	}

	d.Cards = cards
}

// Shuffle will shuffle the deck of cards
// The deck is always rebuilt from the full reference set first, so a partially drawn deck is restored.
// If seed is 0, the current time is used.
func (d *Deck) Shuffle(seed int64) {
	if seed < 0 {
		panic("seed cannot be < 0")
	}

	d.buildDeck()

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	d.SetSeed(seed)

	for j := len(d.Cards) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// GetSeed returns the seed used to shuffle the deck
func (d *Deck) GetSeed() int64 {
	return d.seed
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String() + card.Name))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned along with a nil card.
func (d *Deck) Draw() (*Card, error) {
	if len(d.Cards) <= 0 {
		return nil, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}

type cardSpec struct {
	t     Type
	name  string
	value int
}

var months = [12][4]cardSpec{
	{{Bright, "송학", 20}, {Ribbon, "적단", 5}, {Junk, "소나무", 1}, {Junk, "소나무", 1}},
	{{Animal, "매조", 10}, {Ribbon, "적단", 5}, {Junk, "매화", 2}, {Junk, "매화", 2}},
	{{Bright, "벚꽃", 20}, {Ribbon, "적단", 5}, {Junk, "벚꽃", 3}, {Junk, "벚꽃", 3}},
	{{Animal, "두견", 10}, {Ribbon, "흑단", 5}, {Junk, "등나무", 4}, {Junk, "등나무", 4}},
	{{Animal, "다리", 10}, {Ribbon, "흑단", 5}, {Junk, "창포", 5}, {Junk, "창포", 5}},
	{{Animal, "나비", 10}, {Ribbon, "청단", 5}, {Junk, "모란", 6}, {Junk, "모란", 6}},
	{{Animal, "멧돼지", 10}, {Ribbon, "흑단", 5}, {Junk, "싸리", 7}, {Junk, "싸리", 7}},
	{{Bright, "갈대광", 20}, {Animal, "기러기", 10}, {Junk, "갈대", 8}, {Junk, "갈대", 8}},
	{{Animal, "술잔", 10}, {Ribbon, "청단", 5}, {Junk, "국화", 9}, {Junk, "국화", 9}},
	{{Animal, "사슴", 10}, {Ribbon, "청단", 5}, {Junk, "단풍", 10}, {Junk, "단풍", 10}},
	{{Bright, "오동광", 20}, {Junk, "오동", 1}, {Junk, "오동", 1}, {Junk, "오동쌍피", 1}},
	{{Bright, "우광", 20}, {Animal, "제비", 10}, {Ribbon, "흑단", 5}, {Junk, "비", 2}},
}

// standardCards returns a freshly allocated, ordered 48 card set
func standardCards() []*Card {
	cards := make([]*Card, 0, 48)
	for i, month := range months {
		for _, spec := range month {
			cards = append(cards, &Card{
				Month: i + 1,
				Type:  spec.t,
				Name:  spec.name,
				Value: spec.value,
			})
		}
	}

	return cards
}
