package seotda

import (
	"errors"
	"seotda-server/pkg/deck"
	"time"
)

// Options are options for creating a new seotda game
type Options struct {
	// StartingChips is the stack every player buys in with
	StartingChips int
	// Ante is collected from every player at the start of a round. Default: 0
	Ante int
	// MinimumHalf is the smallest increment a half bet adds. Default: 0
	MinimumHalf int
	Variant     deck.Variant
	Rules       RuleSetName
	// TurnTimeout folds a player who has not acted in time. Zero disables it
	TurnTimeout time.Duration
	// RevealDelay is how long the hands stay face down after betting closes
	RevealDelay time.Duration
	// NextRoundDelay is how long the settled round is shown before the next deal
	NextRoundDelay time.Duration
	// Seed is only used by tests. Zero means every round is shuffled with a random seed
	Seed int64
}

// DefaultOptions returns the default options for a seotda game
func DefaultOptions() Options {
	return Options{
		StartingChips:  10000,
		Ante:           0,
		MinimumHalf:    0,
		Variant:        deck.Standard48,
		Rules:          RuleSetStandard,
		TurnTimeout:    0,
		RevealDelay:    time.Second * 2,
		NextRoundDelay: time.Second * 5,
	}
}

// Validate returns an error if the options cannot be used for a game
func (o Options) Validate() error {
	if o.StartingChips <= 0 {
		return errors.New("starting chips must be greater than zero")
	}

	if o.Ante < 0 {
		return errors.New("ante cannot be negative")
	}

	if o.Ante >= o.StartingChips {
		return errors.New("ante must be less than the starting chips")
	}

	if o.MinimumHalf < 0 {
		return errors.New("minimum half cannot be negative")
	}

	if o.TurnTimeout < 0 || o.RevealDelay < 0 || o.NextRoundDelay < 0 {
		return errors.New("delays cannot be negative")
	}

	if _, err := deck.VariantFromString(string(o.Variant)); err != nil {
		return err
	}

	if _, err := RuleSetFromName(o.Rules); err != nil {
		return err
	}

	return nil
}
