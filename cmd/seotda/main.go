package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"
	"text/tabwriter"

	"seotda-server/pkg/deck"
	"seotda-server/pkg/playable/seotda"

	"github.com/alecthomas/kong"
)

// CLI is the seotda command line
type CLI struct {
	Rules string `short:"r" default:"standard" enum:"standard,bonus" help:"Rule set to rank hands with"`

	Eval EvalCmd `cmd:"" help:"Classify two-card hands, e.g. 'seotda eval 3b,8j 10a,10r'"`
	Odds OddsCmd `cmd:"" help:"Count how often every hand occurs in a deck"`
}

// EvalCmd classifies hands
type EvalCmd struct {
	Hands []string `arg:"" help:"Hands as comma separated cards (<month><b|a|r|j>[n])"`
}

// Run prints the classification of every hand, and the winner if there is more than one
func (e *EvalCmd) Run(cli *CLI) error {
	evaluator, err := evaluatorFor(cli.Rules)
	if err != nil {
		return err
	}

	results := make([]seotda.HandResult, len(e.Hands))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for i, s := range e.Hands {
		cards, err := parseHand(s)
		if err != nil {
			return fmt.Errorf("hand %d: %w", i+1, err)
		}

		result, err := evaluator.Evaluate(cards)
		if err != nil {
			return fmt.Errorf("hand %d: %w", i+1, err)
		}

		results[i] = result
		fmt.Fprintf(w, "%s\t%s %s\t%s\t%d\n", s, cards[0], cards[1], result.Label, result.Rank)
	}

	if err := w.Flush(); err != nil {
		return err
	}

	if len(results) > 1 {
		winners := seotda.Winners(results)
		if len(winners) > 1 {
			fmt.Println("draw")
		} else {
			fmt.Printf("winner: %s\n", e.Hands[winners[0]])
		}
	}

	return nil
}

// OddsCmd enumerates a deck
type OddsCmd struct {
	Variant string `short:"v" default:"standard48" enum:"standard48,simplified40" help:"Deck to enumerate"`
	Workers int    `short:"w" help:"Number of workers (defaults to the number of CPUs)"`
}

// Run prints the frequency of every hand label
func (o *OddsCmd) Run(cli *CLI) error {
	evaluator, err := evaluatorFor(cli.Rules)
	if err != nil {
		return err
	}

	variant, err := deck.VariantFromString(o.Variant)
	if err != nil {
		return err
	}

	workers := o.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	frequencies, total, err := seotda.HandFrequencies(context.Background(), evaluator, deck.NewVariant(variant).Cards, workers)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "hand\tcount\tprobability\t\n")
	for _, f := range frequencies {
		fmt.Fprintf(w, "%s\t%d\t%.2f%%\t\n", f.Label, f.Count, float64(f.Count)*100/float64(total))
	}
	fmt.Fprintf(w, "total\t%d\t\t\n", total)

	return w.Flush()
}

func evaluatorFor(rules string) (*seotda.Evaluator, error) {
	set, err := seotda.RuleSetFromName(seotda.RuleSetName(rules))
	if err != nil {
		return nil, err
	}

	return seotda.NewEvaluator(set), nil
}

func parseHand(s string) ([]*deck.Card, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("a hand has two cards, got %d", len(parts))
	}

	cards := make([]*deck.Card, len(parts))
	for i, part := range parts {
		card, err := deck.ParseCard(part)
		if err != nil {
			return nil, err
		}

		cards[i] = card
	}

	return cards, nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("seotda"),
		kong.Description("Seotda hand evaluation tools"),
		kong.UsageOnError(),
	)

	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}
