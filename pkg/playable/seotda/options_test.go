package seotda

import (
	"testing"
	"time"

	"seotda-server/pkg/deck"

	"github.com/stretchr/testify/assert"
)

func TestDefaultOptions(t *testing.T) {
	a := assert.New(t)
	opts := DefaultOptions()
	a.NoError(opts.Validate())
	a.Equal(10000, opts.StartingChips)
	a.Equal(deck.Standard48, opts.Variant)
	a.Equal(RuleSetStandard, opts.Rules)
	a.Equal(time.Second*2, opts.RevealDelay)
	a.Equal(time.Second*5, opts.NextRoundDelay)
}

func TestOptions_Validate(t *testing.T) {
	a := assert.New(t)

	opts := DefaultOptions()
	opts.Variant = ""
	opts.Rules = ""
	a.NoError(opts.Validate(), "empty names fall back to the defaults")

	opts = DefaultOptions()
	opts.MinimumHalf = -5
	a.EqualError(opts.Validate(), "minimum half cannot be negative")

	opts = DefaultOptions()
	opts.Ante = 9999
	opts.Variant = deck.Simplified40
	opts.Rules = RuleSetBonus
	a.NoError(opts.Validate())

	opts.RevealDelay = -time.Millisecond
	a.EqualError(opts.Validate(), "delays cannot be negative")
}
