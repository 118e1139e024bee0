package seotda

import (
	"fmt"
	"seotda-server/pkg/deck"
)

// Rule classifies the hands it matches
type Rule struct {
	Match func(a, b *deck.Card) bool
	Kind  Kind
	Rank  int
	Label string
}

// RuleSet is an ordered list of rules, the first match wins
type RuleSet []Rule

// RuleSetName identifies a rule set in options and payloads
type RuleSetName string

// rule set names
const (
	RuleSetStandard RuleSetName = "standard"
	RuleSetBonus    RuleSetName = "bonus"
)

// RuleSetFromName returns the rule set for the name
func RuleSetFromName(name RuleSetName) (RuleSet, error) {
	switch name {
	case RuleSetStandard, "":
		return StandardRules(), nil
	case RuleSetBonus:
		return BonusRules(), nil
	}

	return nil, fmt.Errorf("unknown rule set: %s", name)
}

// StandardRules returns the bright specials, pairs, and sums
func StandardRules() RuleSet {
	rules := brightRules()
	rules = append(rules, pairRules()...)
	return append(rules, sumRules()...)
}

// BonusRules returns the standard rules with the named month combinations ranked above every pair
func BonusRules() RuleSet {
	rules := brightRules()
	rules = append(rules, bonusRules()...)
	rules = append(rules, pairRules()...)
	return append(rules, sumRules()...)
}

func brightRules() RuleSet {
	return RuleSet{
		{Match: monthsWithBright(3, 8), Kind: KindSpecial, Rank: 1000, Label: "38광땡"},
		{Match: monthsWithBright(1, 3), Kind: KindSpecial, Rank: 999, Label: "13광땡"},
		{Match: monthsWithBright(1, 8), Kind: KindSpecial, Rank: 998, Label: "18광땡"},
		// the same months without a bright card
		{Match: months(1, 3), Kind: KindSpecial, Rank: 900, Label: "일삼"},
		{Match: months(1, 8), Kind: KindSpecial, Rank: 899, Label: "일팔"},
		{Match: months(3, 8), Kind: KindSpecial, Rank: 898, Label: "삼팔"},
	}
}

func bonusRules() RuleSet {
	return RuleSet{
		{Match: months(1, 2), Kind: KindSpecial, Rank: 850, Label: "알리"},
		{Match: months(1, 4), Kind: KindSpecial, Rank: 849, Label: "독사"},
		{Match: months(1, 9), Kind: KindSpecial, Rank: 848, Label: "구삥"},
		{Match: months(1, 10), Kind: KindSpecial, Rank: 847, Label: "장삥"},
		{Match: months(4, 10), Kind: KindSpecial, Rank: 846, Label: "장사"},
		{Match: months(4, 6), Kind: KindSpecial, Rank: 845, Label: "세륙"},
	}
}

// pairRanks must keep month 10 on top; 11 and 12 only exist in the 48 card deck
var pairRanks = []struct {
	month int
	rank  int
}{
	{10, 800},
	{9, 790},
	{8, 780},
	{7, 770},
	{6, 760},
	{5, 750},
	{4, 740},
	{3, 730},
	{2, 720},
	{1, 710},
	{11, 705},
	{12, 700},
}

func pairRules() RuleSet {
	rules := make(RuleSet, len(pairRanks))
	for i, pr := range pairRanks {
		rules[i] = Rule{
			Match: months(pr.month, pr.month),
			Kind:  KindPair,
			Rank:  pr.rank,
			Label: fmt.Sprintf("%d땡", pr.month),
		}
	}

	return rules
}

func sumRules() RuleSet {
	rules := make(RuleSet, 0, 10)
	for n := 9; n >= 0; n-- {
		label := fmt.Sprintf("%d끗", n)
		if n == 0 {
			label = "망통"
		}

		rules = append(rules, Rule{
			Match: sumIs(n),
			Kind:  KindSum,
			Rank:  600 + 10*n,
			Label: label,
		})
	}

	return rules
}

func months(x, y int) func(a, b *deck.Card) bool {
	return func(a, b *deck.Card) bool {
		return (a.Month == x && b.Month == y) || (a.Month == y && b.Month == x)
	}
}

func monthsWithBright(x, y int) func(a, b *deck.Card) bool {
	match := months(x, y)
	return func(a, b *deck.Card) bool {
		return match(a, b) && (a.IsBright() || b.IsBright())
	}
}

func sumIs(n int) func(a, b *deck.Card) bool {
	return func(a, b *deck.Card) bool {
		return (a.Month+b.Month)%10 == n
	}
}
