package seotda

import "seotda-server/pkg/deck"

// Participant is an individual in the seotda game
// Chips carry over between rounds, everything else is reset by a new round
type Participant struct {
	PlayerID int64

	chips      int
	currentBet int
	folded     bool
	hand       []*deck.Card

	// acted is true if the participant acted since the last raise
	acted  bool
	result *HandResult
}

// NewParticipant returns a new participant
func NewParticipant(playerID int64, chips int) *Participant {
	return &Participant{
		PlayerID: playerID,
		chips:    chips,
		hand:     make([]*deck.Card, 0, 2),
	}
}

// Chips returns the participant's chip stack
func (p *Participant) Chips() int {
	return p.chips
}

// CurrentBet returns how much the participant put into the pot this round
func (p *Participant) CurrentBet() int {
	return p.currentBet
}

// Folded returns true if the participant folded this round
func (p *Participant) Folded() bool {
	return p.folded
}

// IsAllIn returns true if the participant is still in the round without any chips
func (p *Participant) IsAllIn() bool {
	return !p.folded && p.chips == 0
}

// Hand returns a shallow copy of the participant's hand
func (p *Participant) Hand() []*deck.Card {
	return append([]*deck.Card{}, p.hand...)
}

func (p *Participant) addCard(card *deck.Card) {
	p.hand = append(p.hand, card)
}

func (p *Participant) pay(amount int) {
	p.chips -= amount
	p.currentBet += amount
}

func (p *Participant) reset() {
	p.currentBet = 0
	p.folded = false
	p.acted = false
	p.hand = make([]*deck.Card, 0, 2)
	p.result = nil
}

// canAct returns true if the participant still has decisions to make
func (p *Participant) canAct() bool {
	return !p.folded && p.chips > 0
}
