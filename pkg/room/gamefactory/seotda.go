package gamefactory

import (
	"time"

	"seotda-server/pkg/deck"
	"seotda-server/pkg/playable"
	"seotda-server/pkg/playable/seotda"

	"github.com/sirupsen/logrus"
)

type seotdaFactory struct {
	defaults seotda.Options
}

func (s seotdaFactory) Details(additionalData playable.AdditionalData) (string, int, error) {
	opts := s.getOptions(additionalData)
	if err := opts.Validate(); err != nil {
		return "", 0, err
	}

	return seotda.NameFromOptions(opts), opts.Ante, nil
}

func (s seotdaFactory) CreateGame(logger logrus.FieldLogger, playerIDs []int64, additionalData playable.AdditionalData) (playable.Playable, error) {
	game, err := seotda.NewGame(logger, playerIDs, s.getOptions(additionalData))
	if err != nil {
		return nil, err
	}

	if err := game.Deal(); err != nil {
		return nil, err
	}

	return game, nil
}

func (s seotdaFactory) PlayerLimits() (int, int) {
	return seotda.MinPlayers, seotda.MaxPlayers
}

func (s seotdaFactory) getOptions(additionalData playable.AdditionalData) seotda.Options {
	opts := s.defaults

	if chips, ok := additionalData.GetInt("startingChips"); ok && chips > 0 {
		opts.StartingChips = chips
	}

	// a zero ante is a valid choice, unlike the starting chips
	if ante, ok := additionalData.GetInt("ante"); ok {
		opts.Ante = ante
	}

	if minimumHalf, ok := additionalData.GetInt("minimumHalf"); ok {
		opts.MinimumHalf = minimumHalf
	}

	if variant, ok := additionalData.GetString("variant"); ok {
		opts.Variant = deck.Variant(variant)
	}

	if rules, ok := additionalData.GetString("rules"); ok {
		opts.Rules = seotda.RuleSetName(rules)
	}

	if seconds, ok := additionalData.GetInt("turnTimeout"); ok {
		opts.TurnTimeout = time.Duration(seconds) * time.Second
	}

	return opts
}
