package seotda

import (
	"testing"

	"seotda-server/pkg/deck"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		hand  string
		kind  Kind
		rank  int
		label string
	}{
		{"3b,8j", KindSpecial, 1000, "38광땡"},
		{"8b,3r", KindSpecial, 1000, "38광땡"},
		{"1b,3j", KindSpecial, 999, "13광땡"},
		{"3b,1r", KindSpecial, 999, "13광땡"},
		{"1b,8b", KindSpecial, 998, "18광땡"},
		{"1r,3j", KindSpecial, 900, "일삼"},
		{"8a,1j", KindSpecial, 899, "일팔"},
		{"3r,8a", KindSpecial, 898, "삼팔"},
		{"10a,10r", KindPair, 800, "10땡"},
		{"9a,9j", KindPair, 790, "9땡"},
		{"6a,6r", KindPair, 760, "6땡"},
		{"1j,1r", KindPair, 710, "1땡"},
		{"11b,11j", KindPair, 705, "11땡"},
		{"12a,12r", KindPair, 700, "12땡"},
		{"5a,4a", KindSum, 690, "9끗"},
		{"4a,7r", KindSum, 610, "1끗"},
		{"2a,8j", KindSum, 600, "망통"},
		{"11b,12b", KindSum, 630, "3끗"},
		{"1j,2a", KindSum, 630, "3끗"},
	}

	for _, tt := range tests {
		t.Run(tt.hand, func(t *testing.T) {
			result, err := Evaluate(deck.CardsFromString(tt.hand))
			assert.NoError(t, err)
			assert.Equal(t, HandResult{Kind: tt.kind, Rank: tt.rank, Label: tt.label}, result)
		})
	}
}

func TestEvaluate_InvalidHand(t *testing.T) {
	a := assert.New(t)

	_, err := Evaluate(deck.CardsFromString("3b"))
	a.Equal(ErrInvalidHand, err)

	_, err = Evaluate(deck.CardsFromString("3b,8b,1b"))
	a.Equal(ErrInvalidHand, err)

	_, err = Evaluate(nil)
	a.Equal(ErrInvalidHand, err)

	_, err = Evaluate([]*deck.Card{deck.CardFromString("3b"), nil})
	a.Equal(ErrInvalidHand, err)
}

func TestEvaluator_BonusRules(t *testing.T) {
	e := NewEvaluator(BonusRules())

	tests := []struct {
		hand  string
		rank  int
		label string
	}{
		{"3b,8j", 1000, "38광땡"},
		{"1j,2a", 850, "알리"},
		{"4a,1b", 849, "독사"},
		{"1r,9a", 848, "구삥"},
		{"10j,1j", 847, "장삥"},
		{"4r,10a", 846, "장사"},
		{"6j,4j", 845, "세륙"},
		{"10a,10r", 800, "10땡"},
		{"5a,4a", 690, "9끗"},
	}

	for _, tt := range tests {
		t.Run(tt.hand, func(t *testing.T) {
			result, err := e.Evaluate(deck.CardsFromString(tt.hand))
			assert.NoError(t, err)
			assert.Equal(t, tt.rank, result.Rank)
			assert.Equal(t, tt.label, result.Label)
		})
	}
}

func TestEvaluator_NoMatchingRule(t *testing.T) {
	e := NewEvaluator(pairRules())
	_, err := e.Evaluate(deck.CardsFromString("1b,2a"))
	assert.Equal(t, ErrNoMatchingRule, err)
}

func TestEvaluate_GlobalOrdering(t *testing.T) {
	for _, name := range []RuleSetName{RuleSetStandard, RuleSetBonus} {
		t.Run(string(name), func(t *testing.T) {
			a := assert.New(t)

			rules, err := RuleSetFromName(name)
			a.NoError(err)
			e := NewEvaluator(rules)

			lowest := map[Kind]int{}
			highest := map[Kind]int{}

			cards := deck.New().Cards
			for i := 0; i < len(cards); i++ {
				for j := i + 1; j < len(cards); j++ {
					result, err := e.Evaluate([]*deck.Card{cards[i], cards[j]})
					if !a.NoError(err) {
						return
					}

					// evaluation does not depend on card order
					swapped, _ := e.Evaluate([]*deck.Card{cards[j], cards[i]})
					a.Equal(result, swapped)

					if low, ok := lowest[result.Kind]; !ok || result.Rank < low {
						lowest[result.Kind] = result.Rank
					}
					if result.Rank > highest[result.Kind] {
						highest[result.Kind] = result.Rank
					}
				}
			}

			a.Greater(lowest[KindSpecial], highest[KindPair])
			a.Greater(lowest[KindPair], highest[KindSum])
			a.Equal(1000, highest[KindSpecial])
			a.Equal(600, lowest[KindSum])
		})
	}
}

func TestCompare(t *testing.T) {
	a := assert.New(t)

	pair, _ := Evaluate(deck.CardsFromString("5a,5r"))
	nine, _ := Evaluate(deck.CardsFromString("5a,4a"))
	otherNine, _ := Evaluate(deck.CardsFromString("2a,7r"))

	a.Equal(1, Compare(pair, nine))
	a.Equal(-1, Compare(nine, pair))
	a.Equal(0, Compare(nine, otherNine))
}

func TestWinners(t *testing.T) {
	a := assert.New(t)

	a.Equal([]int{}, Winners(nil))
	a.Equal([]int{1}, Winners([]HandResult{{Rank: 600}, {Rank: 800}, {Rank: 700}}))
	a.Equal([]int{0, 2}, Winners([]HandResult{{Rank: 690}, {Rank: 600}, {Rank: 690}}))
}

func TestRuleSetFromName(t *testing.T) {
	a := assert.New(t)

	rules, err := RuleSetFromName("")
	a.NoError(err)
	a.Len(rules, len(StandardRules()))

	rules, err = RuleSetFromName(RuleSetBonus)
	a.NoError(err)
	a.Len(rules, len(StandardRules())+6)

	_, err = RuleSetFromName("house")
	a.EqualError(err, "unknown rule set: house")
}
