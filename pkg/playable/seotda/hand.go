package seotda

import (
	"seotda-server/pkg/deck"
)

// Kind is the category of a two-card hand
type Kind string

// hand kinds, from strongest to weakest
const (
	KindSpecial Kind = "special"
	KindPair    Kind = "pair"
	KindSum     Kind = "sum"
)

// HandResult is the classification of a two-card hand
// Two results with the same Rank are equally strong
type HandResult struct {
	Kind  Kind   `json:"kind"`
	Rank  int    `json:"rank"`
	Label string `json:"label"`
}

// Evaluator classifies hands against an ordered rule set
type Evaluator struct {
	rules RuleSet
}

// NewEvaluator returns an evaluator for the rule set
func NewEvaluator(rules RuleSet) *Evaluator {
	return &Evaluator{rules: rules}
}

var standardEvaluator = NewEvaluator(StandardRules())

// Evaluate classifies a hand using the standard rules
func Evaluate(hand []*deck.Card) (HandResult, error) {
	return standardEvaluator.Evaluate(hand)
}

// Evaluate classifies the hand. The first rule that matches wins
func (e *Evaluator) Evaluate(hand []*deck.Card) (HandResult, error) {
	if len(hand) != 2 || hand[0] == nil || hand[1] == nil {
		return HandResult{}, ErrInvalidHand
	}

	for _, rule := range e.rules {
		if rule.Match(hand[0], hand[1]) {
			return HandResult{
				Kind:  rule.Kind,
				Rank:  rule.Rank,
				Label: rule.Label,
			}, nil
		}
	}

	return HandResult{}, ErrNoMatchingRule
}

// Compare returns 1 if a wins, -1 if b wins, 0 for a draw
func Compare(a, b HandResult) int {
	if a.Rank > b.Rank {
		return 1
	}

	if a.Rank < b.Rank {
		return -1
	}

	return 0
}

// Winners returns the indexes of every result tied at the highest rank
func Winners(results []HandResult) []int {
	winners := make([]int, 0, 1)
	best := 0

	for i, result := range results {
		if len(winners) == 0 || result.Rank > best {
			best = result.Rank
			winners = []int{i}
		} else if result.Rank == best {
			winners = append(winners, i)
		}
	}

	return winners
}
