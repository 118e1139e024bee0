package seotda

import (
	"context"
	"sort"

	"seotda-server/pkg/deck"

	"golang.org/x/sync/errgroup"
)

// Frequency is how many two-card combinations of a deck share a label
type Frequency struct {
	Label string `json:"label"`
	Rank  int    `json:"rank"`
	Count int    `json:"count"`
}

// HandFrequencies evaluates every two-card combination of the cards
// The result is sorted from the strongest label to the weakest
func HandFrequencies(ctx context.Context, e *Evaluator, cards []*deck.Card, workers int) ([]Frequency, int, error) {
	if workers < 1 {
		workers = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	results := make([]map[string]Frequency, workers)

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			counts := make(map[string]Frequency)

			// worker w takes every workers-th first card
			for i := w; i < len(cards); i += workers {
				if err := ctx.Err(); err != nil {
					return err
				}

				for j := i + 1; j < len(cards); j++ {
					result, err := e.Evaluate([]*deck.Card{cards[i], cards[j]})
					if err != nil {
						return err
					}

					f := counts[result.Label]
					f.Label = result.Label
					f.Rank = result.Rank
					f.Count++
					counts[result.Label] = f
				}
			}

			results[w] = counts
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	merged := make(map[string]Frequency)
	total := 0
	for _, counts := range results {
		for label, f := range counts {
			m := merged[label]
			m.Label = f.Label
			m.Rank = f.Rank
			m.Count += f.Count
			merged[label] = m
			total += f.Count
		}
	}

	frequencies := make([]Frequency, 0, len(merged))
	for _, f := range merged {
		frequencies = append(frequencies, f)
	}

	sort.Slice(frequencies, func(i, j int) bool {
		return frequencies[i].Rank > frequencies[j].Rank
	})

	return frequencies, total, nil
}
