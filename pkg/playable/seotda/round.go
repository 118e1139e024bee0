package seotda

import (
	"fmt"
	"seotda-server/pkg/deck"
)

// Phase represents the current phase of a round
type Phase int

const (
	// PhaseDealing is when cards are being dealt
	PhaseDealing Phase = iota
	// PhaseBetting is when players act in turn
	PhaseBetting
	// PhaseReveal is when betting closed with two or more players left
	PhaseReveal
	// PhaseSettled is when the pot has been paid out
	PhaseSettled
)

func (p Phase) String() string {
	switch p {
	case PhaseDealing:
		return "dealing"
	case PhaseBetting:
		return "betting"
	case PhaseReveal:
		return "reveal"
	case PhaseSettled:
		return "settled"
	}

	return "unknown"
}

// player limits for a single round
const (
	MinPlayers = 2
	MaxPlayers = 2
)

// RoundConfig is how a round is started
type RoundConfig struct {
	// Opener is the index of the participant who acts first
	Opener      int
	Ante        int
	MinimumHalf int
	Seed        int64
}

// RoundUpdate describes the outcome of a single action
type RoundUpdate struct {
	PlayerID   int64  `json:"playerId"`
	Action     Action `json:"action"`
	Paid       int    `json:"paid"`
	CurrentBet int    `json:"currentBet"`
	Pot        int    `json:"pot"`
	Phase      Phase  `json:"-"`
	// NextPlayerID is zero once betting closed
	NextPlayerID int64 `json:"nextPlayerId"`
	// Settlement is set when the action ended the round with a fold-out
	Settlement *Settlement `json:"settlement,omitempty"`
}

// Settlement is how the pot was paid out
type Settlement struct {
	Pot       int                  `json:"pot"`
	WinnerIDs []int64              `json:"winnerIds"`
	Payouts   map[int64]int        `json:"payouts"`
	Hands     map[int64]HandResult `json:"hands,omitempty"`
	FoldOut   bool                 `json:"foldOut"`
}

// Round is a single hand of seotda: one deal, one betting round, and a showdown
type Round struct {
	participants    []*Participant
	idToParticipant map[int64]*Participant
	evaluator       *Evaluator

	opener      int
	minimumHalf int

	pot           int
	currentBet    int
	phase         Phase
	turnIndex     int
	lastAggressor *Participant

	settlement *Settlement
}

// NewRound resets the participants, shuffles the deck, deals two cards to everyone, and opens the betting
// Nothing is changed if an error is returned
func NewRound(participants []*Participant, d *deck.Deck, evaluator *Evaluator, cfg RoundConfig) (*Round, error) {
	if len(participants) < MinPlayers || len(participants) > MaxPlayers {
		return nil, PlayerCountError{
			Min: MinPlayers,
			Max: MaxPlayers,
			Got: len(participants),
		}
	}

	if cfg.Opener < 0 || cfg.Opener >= len(participants) {
		return nil, fmt.Errorf("opener %d is out of range", cfg.Opener)
	}

	if d.Variant().Size() < len(participants)*2 {
		return nil, ErrNotEnoughCards
	}

	for _, p := range participants {
		if p.chips < cfg.Ante {
			return nil, ErrInsufficientChips
		}
	}

	r := &Round{
		participants:    participants,
		idToParticipant: make(map[int64]*Participant),
		evaluator:       evaluator,
		opener:          cfg.Opener,
		minimumHalf:     cfg.MinimumHalf,
		phase:           PhaseDealing,
	}

	for _, p := range participants {
		p.reset()
		r.idToParticipant[p.PlayerID] = p
	}

	d.Shuffle(cfg.Seed)
	for i := 0; i < 2; i++ {
		for _, p := range r.inTurnOrder() {
			card, err := d.Draw()
			if err != nil {
				return nil, err
			}

			p.addCard(card)
		}
	}

	if cfg.Ante > 0 {
		for _, p := range participants {
			p.chips -= cfg.Ante
			r.pot += cfg.Ante
		}
	}

	r.phase = PhaseBetting
	r.turnIndex = cfg.Opener

	if r.isClosed() {
		r.phase = PhaseReveal
	} else if !r.participants[r.turnIndex].canAct() {
		r.advanceTurn()
	}

	return r, nil
}

// Phase returns the phase of the round
func (r *Round) Phase() Phase {
	return r.phase
}

// Pot returns the amount in the pot
// After settlement, this is the amount that was paid out
func (r *Round) Pot() int {
	return r.pot
}

// CurrentBet returns the table's standing bet
func (r *Round) CurrentBet() int {
	return r.currentBet
}

// Settlement returns the payout, or nil if the round is not settled
func (r *Round) Settlement() *Settlement {
	return r.settlement
}

// Opener returns the participant who acted first
func (r *Round) Opener() *Participant {
	return r.participants[r.opener]
}

// LastAggressor returns the participant who last raised, or nil
func (r *Round) LastAggressor() *Participant {
	return r.lastAggressor
}

// InTurn returns the participant who must act, or nil if betting is not open
func (r *Round) InTurn() *Participant {
	if r.phase != PhaseBetting {
		return nil
	}

	p := r.participants[r.turnIndex]
	if p.folded {
		panic(fmt.Sprintf("turn is held by folded participant %d", p.PlayerID))
	}

	return p
}

// ToCall returns how many chips the participant needs to match the table bet
func (r *Round) ToCall(p *Participant) int {
	return r.currentBet - p.currentBet
}

// HalfIncrement returns how much a half bet adds on top of the call
func (r *Round) HalfIncrement() int {
	inc := r.pot / 2
	if inc < r.minimumHalf {
		inc = r.minimumHalf
	}

	return inc
}

// AvailableActions returns the actions the participant can take right now
func (r *Round) AvailableActions(p *Participant) []Action {
	if r.phase != PhaseBetting || r.InTurn() != p {
		return []Action{}
	}

	toCall := r.ToCall(p)
	actions := make([]Action, 0, 5)
	if p.chips >= toCall {
		actions = append(actions, Call)
	}

	// nobody could match a raise
	if !r.opponentCanAct(p) {
		if p.chips < toCall {
			actions = append(actions, AllIn)
		}

		return append(actions, Fold)
	}

	if p.chips > toCall {
		actions = append(actions, Raise)
	}

	if inc := r.HalfIncrement(); inc > 0 && p.chips-toCall >= inc {
		actions = append(actions, Half)
	}

	return append(actions, AllIn, Fold)
}

// opponentCanAct returns true if another participant can still put chips in
func (r *Round) opponentCanAct(p *Participant) bool {
	for _, other := range r.participants {
		if other != p && other.canAct() {
			return true
		}
	}

	return false
}

// SubmitAction applies an action for the participant in turn
// Nothing is changed if an error is returned
func (r *Round) SubmitAction(playerID int64, action Action, amount int) (*RoundUpdate, error) {
	if r.phase != PhaseBetting {
		return nil, ErrInvalidPhase
	}

	p, ok := r.idToParticipant[playerID]
	if !ok {
		return nil, ErrUnknownPlayer
	}

	if p.folded || r.InTurn() != p {
		return nil, ErrNotYourTurn
	}

	paid, err := r.amountFor(p, action, amount)
	if err != nil {
		return nil, err
	}

	p.pay(paid)
	r.pot += paid
	p.acted = true

	if action == Fold {
		p.folded = true
	}

	if p.currentBet > r.currentBet {
		r.currentBet = p.currentBet
		r.lastAggressor = p
		for _, other := range r.participants {
			if other != p {
				other.acted = false
			}
		}
	}

	update := &RoundUpdate{
		PlayerID: playerID,
		Action:   action,
		Paid:     paid,
	}

	if remaining := r.remaining(); len(remaining) == 1 {
		r.phase = PhaseReveal
		update.Settlement = r.settle(remaining, nil, true)
	} else if r.isClosed() {
		r.phase = PhaseReveal
	} else {
		r.advanceTurn()
		update.NextPlayerID = r.InTurn().PlayerID
	}

	update.CurrentBet = r.currentBet
	update.Pot = r.pot
	update.Phase = r.phase

	return update, nil
}

func (r *Round) amountFor(p *Participant, action Action, amount int) (int, error) {
	toCall := r.ToCall(p)

	switch action {
	case Call:
		if p.chips < toCall {
			return 0, ErrInsufficientChips
		}

		return toCall, nil
	case Raise, Half:
		if action == Half {
			amount = r.HalfIncrement()
		}

		if amount <= 0 {
			return 0, ErrInvalidAmount
		}

		// compared without adding so a huge amount cannot overflow
		if p.chips < toCall || amount > p.chips-toCall {
			return 0, ErrInsufficientChips
		}

		if !r.opponentCanAct(p) {
			return 0, ErrNoOpponentToRaise
		}

		return toCall + amount, nil
	case AllIn:
		if p.chips > toCall && !r.opponentCanAct(p) {
			return 0, ErrNoOpponentToRaise
		}

		return p.chips, nil
	case Fold:
		return 0, nil
	}

	return 0, fmt.Errorf("unknown action: %s", action)
}

// ResolveShowdown evaluates the remaining hands and pays the pot to the best hand
// Tied hands split the pot, any remainder goes to the first winner in turn order
func (r *Round) ResolveShowdown() (*Settlement, error) {
	if r.phase != PhaseReveal {
		return nil, ErrInvalidPhase
	}

	remaining := r.remaining()
	results := make([]HandResult, len(remaining))
	for i, p := range remaining {
		result, err := r.evaluator.Evaluate(p.hand)
		if err != nil {
			return nil, err
		}

		results[i] = result
	}

	hands := make(map[int64]HandResult)
	for i, p := range remaining {
		result := results[i]
		p.result = &result
		hands[p.PlayerID] = result
	}

	idx := Winners(results)
	winners := make([]*Participant, len(idx))
	for i, j := range idx {
		winners[i] = remaining[j]
	}

	return r.settle(winners, hands, false), nil
}

// settle expects the winners in turn order
func (r *Round) settle(winners []*Participant, hands map[int64]HandResult, foldOut bool) *Settlement {
	share := r.pot / len(winners)
	remainder := r.pot % len(winners)

	s := &Settlement{
		Pot:       r.pot,
		WinnerIDs: make([]int64, len(winners)),
		Payouts:   make(map[int64]int),
		Hands:     hands,
		FoldOut:   foldOut,
	}

	for i, w := range winners {
		payout := share
		if i == 0 {
			payout += remainder
		}

		w.chips += payout
		s.WinnerIDs[i] = w.PlayerID
		s.Payouts[w.PlayerID] = payout
	}

	r.settlement = s
	r.phase = PhaseSettled
	return s
}

// isClosed returns true if nobody still has to act
func (r *Round) isClosed() bool {
	for _, p := range r.participants {
		if p.folded || p.chips == 0 {
			continue
		}

		if !p.acted || p.currentBet != r.currentBet {
			return false
		}
	}

	return true
}

func (r *Round) advanceTurn() {
	n := len(r.participants)
	for i := 1; i <= n; i++ {
		idx := (r.turnIndex + i) % n
		if r.participants[idx].canAct() {
			r.turnIndex = idx
			return
		}
	}

	panic("betting is open, but no participant can act")
}

// inTurnOrder returns the participants starting with the opener
func (r *Round) inTurnOrder() []*Participant {
	n := len(r.participants)
	ordered := make([]*Participant, n)
	for i := 0; i < n; i++ {
		ordered[i] = r.participants[(r.opener+i)%n]
	}

	return ordered
}

// remaining returns the participants who did not fold, in turn order
func (r *Round) remaining() []*Participant {
	remaining := make([]*Participant, 0, len(r.participants))
	for _, p := range r.inTurnOrder() {
		if !p.folded {
			remaining = append(remaining, p)
		}
	}

	return remaining
}
