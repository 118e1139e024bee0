package seotda

import (
	"context"
	"testing"

	"seotda-server/pkg/deck"

	"github.com/stretchr/testify/assert"
)

func TestHandFrequencies(t *testing.T) {
	a := assert.New(t)

	frequencies, total, err := HandFrequencies(context.Background(), NewEvaluator(StandardRules()), deck.New().Cards, 4)
	a.NoError(err)
	a.Equal(48*47/2, total)

	counts := make(map[string]int)
	sum := 0
	for i, f := range frequencies {
		counts[f.Label] = f.Count
		sum += f.Count
		if i > 0 {
			a.Greater(frequencies[i-1].Rank, f.Rank, "sorted from strongest to weakest")
		}
	}

	a.Equal(total, sum)
	a.Equal(1, counts["38광땡"])
	a.Equal(1, counts["13광땡"])
	a.Equal(1, counts["18광땡"])
	a.Equal(6, counts["10땡"])
	a.Equal(6, counts["12땡"])
	a.Equal("38광땡", frequencies[0].Label)
}

func TestHandFrequencies_SingleWorker(t *testing.T) {
	cards := deck.NewSimplified().Cards

	multi, total, err := HandFrequencies(context.Background(), NewEvaluator(BonusRules()), cards, 3)
	assert.NoError(t, err)
	assert.Equal(t, 40*39/2, total)

	single, _, err := HandFrequencies(context.Background(), NewEvaluator(BonusRules()), cards, 0)
	assert.NoError(t, err)
	assert.ElementsMatch(t, multi, single)
}

func TestHandFrequencies_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := HandFrequencies(ctx, NewEvaluator(StandardRules()), deck.New().Cards, 2)
	assert.Equal(t, context.Canceled, err)
}
