package seotda

import (
	"seotda-server/pkg/deck"
	"seotda-server/pkg/playable"
	"time"
)

// GameState is the overall game state
// This is safe for all players to see
type GameState struct {
	Participants []*GameStateParticipant `json:"participants"`
	Round        int                     `json:"round"`
	Phase        string                  `json:"phase"`
	Pot          int                     `json:"pot"`
	CurrentBet   int                     `json:"currentBet"`
	Ante         int                     `json:"ante"`
	Rules        RuleSetName             `json:"rules"`
	Variant      deck.Variant            `json:"variant"`
	IsGameOver   bool                    `json:"isGameOver"`

	InTurnPlayerID  int64      `json:"inTurnPlayerId,omitempty"`
	LastAggressorID int64      `json:"lastAggressorId,omitempty"`
	TurnDeadline    *time.Time `json:"turnDeadline,omitempty"`
	// Settlement is only populated after the round is settled
	Settlement *Settlement `json:"settlement,omitempty"`
}

// GameStateParticipant is the state of an individual participant
type GameStateParticipant struct {
	PlayerID    int64 `json:"playerId"`
	Chips       int   `json:"chips"`
	CurrentBet  int   `json:"currentBet"`
	Folded      bool  `json:"folded"`
	AllIn       bool  `json:"allIn"`
	CardsInHand int   `json:"cardsInHand"`
	// Hand is only shown once the hands are revealed
	Hand       []*deck.Card `json:"hand,omitempty"`
	HandResult *HandResult  `json:"handResult,omitempty"`
}

// Response is the response format for this game
type Response struct {
	GameState        *GameState   `json:"gameState"`
	Chips            int          `json:"chips"`
	Hand             []*deck.Card `json:"hand"`
	HandResult       *HandResult  `json:"handResult,omitempty"`
	ToCall           int          `json:"toCall"`
	HalfAmount       int          `json:"halfAmount"`
	AvailableActions []Action     `json:"availableActions"`
}

func (g *Game) getGameState() *GameState {
	participants := make([]*GameStateParticipant, len(g.participants))
	for i, p := range g.participants {
		gsp := &GameStateParticipant{
			PlayerID:    p.PlayerID,
			Chips:       p.chips,
			CurrentBet:  p.currentBet,
			Folded:      p.folded,
			AllIn:       g.round != nil && p.IsAllIn(),
			CardsInHand: len(p.hand),
		}

		if g.isRevealed(p) {
			gsp.Hand = p.Hand()
			if result, err := g.evaluator.Evaluate(p.hand); err == nil {
				gsp.HandResult = &result
			}
		}

		participants[i] = gsp
	}

	state := &GameState{
		Participants: participants,
		Round:        g.roundNumber,
		Phase:        "waiting",
		Ante:         g.options.Ante,
		Rules:        g.options.Rules,
		Variant:      g.options.Variant,
		IsGameOver:   g.done,
	}

	if g.round == nil {
		return state
	}

	state.Phase = g.round.Phase().String()
	state.Pot = g.round.Pot()
	state.CurrentBet = g.round.CurrentBet()
	state.Settlement = g.round.Settlement()

	if p := g.round.InTurn(); p != nil {
		state.InTurnPlayerID = p.PlayerID
	}

	if p := g.round.LastAggressor(); p != nil {
		state.LastAggressorID = p.PlayerID
	}

	if !g.turnDeadline.IsZero() {
		deadline := g.turnDeadline
		state.TurnDeadline = &deadline
	}

	return state
}

// isRevealed returns true if everyone may see the participant's hand
func (g *Game) isRevealed(p *Participant) bool {
	if g.round == nil || p.folded {
		return false
	}

	switch g.round.Phase() {
	case PhaseReveal:
		return true
	case PhaseSettled:
		return !g.round.Settlement().FoldOut
	}

	return false
}

// GetPlayerState returns the state for the given player
func (g *Game) GetPlayerState(playerID int64) (*playable.Response, error) {
	response := &Response{
		GameState:        g.getGameState(),
		Hand:             []*deck.Card{},
		AvailableActions: []Action{},
	}

	// viewers who are not playing only get the table state
	if p, ok := g.idToParticipant[playerID]; ok {
		response.Chips = p.chips
		response.Hand = p.Hand()

		if result, err := g.evaluator.Evaluate(p.hand); err == nil {
			response.HandResult = &result
		}

		if g.round != nil {
			response.AvailableActions = g.round.AvailableActions(p)
			if g.round.Phase() == PhaseBetting {
				response.ToCall = g.round.ToCall(p)
				response.HalfAmount = g.round.ToCall(p) + g.round.HalfIncrement()
			}
		}
	}

	return &playable.Response{
		Type:  playable.TypeGameState,
		Value: g.Name(),
		Data:  response,
	}, nil
}
