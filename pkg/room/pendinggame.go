package room

import (
	"time"

	"seotda-server/pkg/playable"
	"seotda-server/pkg/room/gamefactory"

	"github.com/coder/quartz"
)

// pendingGame is a game that was created, but not dealt yet
type pendingGame struct {
	Name     string    `json:"name"`
	Ante     int       `json:"ante"`
	Start    time.Time `json:"start"`
	PlayerID int64     `json:"playerId"`
	factory  gamefactory.GameFactory
	message  *playable.PayloadIn
	timer    *quartz.Timer
}

func newPendingGame(clock quartz.Clock, factories gamefactory.Registry, c *Client, msg *playable.PayloadIn, delay time.Duration) (*pendingGame, error) {
	factory, err := factories.Get(msg.Subject)
	if err != nil {
		return nil, err
	}

	name, ante, err := factory.Details(msg.AdditionalData)
	if err != nil {
		return nil, err
	}

	return &pendingGame{
		factory:  factory,
		message:  msg,
		Name:     name,
		Ante:     ante,
		Start:    clock.Now().Add(delay),
		PlayerID: c.PlayerID,
		timer:    clock.NewTimer(delay, "pendingGame"),
	}, nil
}

// stop cancels the countdown
func (p *pendingGame) stop() {
	p.timer.Stop()
}
