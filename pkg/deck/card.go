package deck

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Type is the picture type of a hwatu card
type Type string

// card type constants
const (
	Bright Type = "bright"
	Animal Type = "animal"
	Ribbon Type = "ribbon"
	Junk   Type = "junk"
)

// Card is an individual hwatu card
type Card struct {
	Month int    `json:"month"`
	Type  Type   `json:"type"`
	Name  string `json:"name"`
	Value int    `json:"value"`
}

func (c *Card) String() string {
	var t string
	switch c.Type {
	case Bright:
		t = "광"
	case Animal:
		t = "열"
	case Ribbon:
		t = "띠"
	case Junk:
		t = "피"
	default:
		panic("unknown card type")
	}

	return fmt.Sprintf("%d%s", c.Month, t)
}

// Equal returns true if the cards are the same physical card
func (c *Card) Equal(card *Card) bool {
	return c.Month == card.Month && c.Type == card.Type && c.Name == card.Name
}

// IsBright returns true for the bright (gwang) cards
func (c *Card) IsBright() bool {
	return c.Type == Bright
}

var cardRx = regexp.MustCompile(`(?i)^([1-9]|1[0-2])([barj])([1-3])?\z`)

// ParseCard returns a Card from the string.
// The string must be in the format of <month><type>[n] where month >= 1 and <= 12 and type in [barj].
// The optional n selects the nth card of that type in the month, which is only useful for junk cards.
func ParseCard(s string) (*Card, error) {
	match := cardRx.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil {
		return nil, fmt.Errorf("could not parse card: %s", s)
	}

	month, _ := strconv.Atoi(match[1])

	var t Type
	switch strings.ToLower(match[2]) {
	case "b":
		t = Bright
	case "a":
		t = Animal
	case "r":
		t = Ribbon
	case "j":
		t = Junk
	}

	nth := 1
	if match[3] != "" {
		nth, _ = strconv.Atoi(match[3])
	}

	for _, card := range standardCards() {
		if card.Month != month || card.Type != t {
			continue
		}

		nth--
		if nth == 0 {
			return card, nil
		}
	}

	return nil, fmt.Errorf("there is no card %s", s)
}

// CardFromString is like ParseCard, but panics on an invalid card
func CardFromString(s string) *Card {
	if s == "" {
		return nil
	}

	card, err := ParseCard(s)
	if err != nil {
		panic(err.Error())
	}

	return card
}

// CardsFromString will returns a slice of cards
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardToString converts a card (March bright) to a string (3b)
func CardToString(card *Card) string {
	if card == nil {
		return ""
	}

	var t string
	switch card.Type {
	case Bright:
		t = "b"
	case Animal:
		t = "a"
	case Ribbon:
		t = "r"
	case Junk:
		t = "j"
	}

	return fmt.Sprintf("%d%s", card.Month, t)
}

// CardsToString will convert a slice of cards to a string in the format of 3b,8a,...
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
