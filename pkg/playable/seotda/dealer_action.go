package seotda

import "time"

// dealerAction is an action that "dealer" would take, such as progressing the game
type dealerAction int

const (
	dealerActionShowdown dealerAction = iota
	dealerActionNextRound
	dealerActionEndGame
)

type pendingDealerAction struct {
	Action       dealerAction
	ExecuteAfter time.Time
}

func (g *Game) schedule(action dealerAction, delay time.Duration) {
	g.pendingDealerAction = &pendingDealerAction{
		Action:       action,
		ExecuteAfter: g.clock.Now().Add(delay),
	}
}
