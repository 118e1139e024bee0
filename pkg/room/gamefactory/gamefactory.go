package gamefactory

import (
	"fmt"

	"seotda-server/pkg/playable"
	"seotda-server/pkg/playable/seotda"

	"github.com/sirupsen/logrus"
)

// DefaultGame is used when a createGame message has no subject
const DefaultGame = "seotda"

// GameFactory is a factory for creating games that implement the Playable interface
type GameFactory interface {
	CreateGame(logger logrus.FieldLogger, playerIDs []int64, additionalData playable.AdditionalData) (playable.Playable, error)
	Details(additionalData playable.AdditionalData) (name string, ante int, err error)
	// PlayerLimits returns how many players can be seated
	PlayerLimits() (min, max int)
}

// Registry holds the game factories by name
type Registry map[string]GameFactory

// NewRegistry returns every available factory
// defaults are used for any option a client leaves out
func NewRegistry(defaults seotda.Options) Registry {
	return Registry{
		"seotda": seotdaFactory{defaults: defaults},
	}
}

// Get returns a factory by the given name
func (r Registry) Get(name string) (GameFactory, error) {
	if name == "" {
		name = DefaultGame
	}

	factory, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("no factory with name: %s", name)
	}

	return factory, nil
}
