package seotda

import (
	"errors"
	"fmt"
)

// ErrInvalidHand is returned when a hand does not hold exactly two cards
var ErrInvalidHand = errors.New("a hand must have exactly two cards")

// ErrNoMatchingRule is returned when a rule set cannot classify a hand
var ErrNoMatchingRule = errors.New("no rule matches the hand")

// ErrNotYourTurn is returned when a player acts out of turn, or after folding
var ErrNotYourTurn = errors.New("it is not your turn")

// ErrInvalidPhase is returned when an operation is not allowed in the current phase
var ErrInvalidPhase = errors.New("action is not allowed in the current phase")

// ErrInsufficientChips is returned when a player cannot cover the chips an action requires
var ErrInsufficientChips = errors.New("you do not have enough chips")

// ErrUnknownPlayer is returned when a player is not in the round
var ErrUnknownPlayer = errors.New("player is not in the round")

// ErrInvalidAmount is returned when a raise is not greater than zero
var ErrInvalidAmount = errors.New("amount must be greater than zero")

// ErrNoOpponentToRaise is returned when a bet would go over the call and no opponent has chips left to match it
var ErrNoOpponentToRaise = errors.New("nobody can match a raise, you can only call or fold")

// ErrNotEnoughCards is returned when the deck cannot deal two cards to every player
var ErrNotEnoughCards = errors.New("not enough cards in the deck")

// ErrGameIsOver is returned when an action is attempted on an ended game
var ErrGameIsOver = errors.New("game is over")

// PlayerCountError is an error on the number of players in the game
type PlayerCountError struct {
	Min int
	Max int
	Got int
}

func (p PlayerCountError) Error() string {
	if p.Min == p.Max {
		return fmt.Sprintf("expected %d players, got %d", p.Min, p.Got)
	}

	return fmt.Sprintf("expected %d–%d players, got %d", p.Min, p.Max, p.Got)
}
