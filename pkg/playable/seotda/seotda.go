package seotda

import (
	"errors"
	"fmt"
	"seotda-server/internal/rng"
	"seotda-server/pkg/deck"
	"seotda-server/pkg/playable"
	"time"

	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RoundResult is the record of a finished round
type RoundResult struct {
	Round      int              `json:"round"`
	Hands      map[int64]string `json:"hands"`
	Settlement *Settlement      `json:"settlement"`
}

// Game is a multi-round game of seotda
// A Game is not safe for concurrent use, the room dealer serializes every call
type Game struct {
	options         Options
	evaluator       *Evaluator
	deck            *deck.Deck
	participants    []*Participant
	idToParticipant map[int64]*Participant

	round       *Round
	roundNumber int
	history     []*RoundResult

	rng          rng.Generator
	clock        quartz.Clock
	turnDeadline time.Time

	done bool

	logger  logrus.FieldLogger
	logChan chan []*playable.LogMessage

	pendingDealerAction *pendingDealerAction
}

// NewGame returns a new seotda game
// Call Deal() to start the first round
func NewGame(logger logrus.FieldLogger, playerIDs []int64, opts Options) (*Game, error) {
	if len(playerIDs) < MinPlayers || len(playerIDs) > MaxPlayers {
		return nil, PlayerCountError{
			Min: MinPlayers,
			Max: MaxPlayers,
			Got: len(playerIDs),
		}
	}

	if err := opts.Validate(); err != nil {
		return nil, err
	}

	rules, _ := RuleSetFromName(opts.Rules)
	variant, _ := deck.VariantFromString(string(opts.Variant))

	participants := make([]*Participant, len(playerIDs))
	idToParticipant := make(map[int64]*Participant)

	for i, pid := range playerIDs {
		if _, ok := idToParticipant[pid]; ok {
			return nil, fmt.Errorf("player %d is seated twice", pid)
		}

		p := NewParticipant(pid, opts.StartingChips)
		participants[i] = p
		idToParticipant[pid] = p
	}

	g := &Game{
		options:         opts,
		evaluator:       NewEvaluator(rules),
		deck:            deck.NewVariant(variant),
		participants:    participants,
		idToParticipant: idToParticipant,
		rng:             rng.Crypto{},
		clock:           quartz.NewReal(),
		logger:          logger,
		logChan:         make(chan []*playable.LogMessage, 256),
	}

	g.sendLogMessages(newLogMessage(0, "New game of %s started with ${%d} each", NameFromOptions(opts), opts.StartingChips))

	return g, nil
}

// Name returns "seotda"
func (g *Game) Name() string {
	return "seotda"
}

// LogChan returns a channel for sending log messages
func (g *Game) LogChan() <-chan []*playable.LogMessage {
	return g.logChan
}

// Interval determines how often Tick() should be called
func (g *Game) Interval() time.Duration {
	return time.Second
}

// Deal starts the first round
func (g *Game) Deal() error {
	if g.round != nil {
		return ErrInvalidPhase
	}

	return g.nextRound()
}

// Round returns the current round, or nil before the first deal
func (g *Game) Round() *Round {
	return g.round
}

// Tick will check the state of the game and possibly move the state along
func (g *Game) Tick() (bool, error) {
	if g.done {
		return false, nil
	}

	now := g.clock.Now()

	if pending := g.pendingDealerAction; pending != nil {
		if now.Before(pending.ExecuteAfter) {
			return false, nil
		}

		// clear before executing so actions can schedule new ones
		g.pendingDealerAction = nil

		switch pending.Action {
		case dealerActionShowdown:
			if err := g.showdown(); err != nil {
				return false, err
			}
		case dealerActionNextRound:
			if err := g.nextRound(); err != nil {
				g.logger.WithError(err).Error("could not go to the next round")
				return false, err
			}
		case dealerActionEndGame:
			g.done = true
			g.sendLogMessages(newLogMessage(0, "The game ends"))
		default:
			panic(fmt.Sprintf("unknown dealer action: %d", pending.Action))
		}

		return true, nil
	}

	if g.round == nil || g.round.Phase() != PhaseBetting || g.turnDeadline.IsZero() || now.Before(g.turnDeadline) {
		return false, nil
	}

	p := g.round.InTurn()
	update, err := g.round.SubmitAction(p.PlayerID, Fold, 0)
	if err != nil {
		return false, err
	}

	g.sendLogMessages(newLogMessage(p.PlayerID, "{} ran out of time and folded"))
	g.afterUpdate(update)

	return true, nil
}

// Action performs an action
func (g *Game) Action(playerID int64, message *playable.PayloadIn) (playerResponse *playable.Response, updateState bool, err error) {
	if g.done {
		return nil, false, ErrGameIsOver
	}

	if _, ok := g.idToParticipant[playerID]; !ok {
		return nil, false, ErrUnknownPlayer
	}

	switch message.Type {
	case "bet":
		action, err := ActionFromString(message.Action)
		if err != nil {
			return nil, false, err
		}

		if err := g.bet(playerID, action, message.Amount); err != nil {
			return nil, false, err
		}

		return playable.OK(), true, nil
	case "nextRound":
		if g.pendingDealerAction != nil && g.pendingDealerAction.Action == dealerActionNextRound {
			g.pendingDealerAction = nil
		}

		if err := g.nextRound(); err != nil {
			return nil, false, err
		}

		return playable.OK(), true, nil
	default:
		return nil, false, fmt.Errorf("unknown message type: %s", message.Type)
	}
}

func (g *Game) bet(playerID int64, action Action, amount int) error {
	if g.round == nil {
		return ErrInvalidPhase
	}

	update, err := g.round.SubmitAction(playerID, action, amount)
	if err != nil {
		return err
	}

	g.sendLogMessages(newLogMessage(playerID, "{} %s", action.LogMessage(update.Paid, update.CurrentBet)))
	g.afterUpdate(update)

	return nil
}

func (g *Game) afterUpdate(update *RoundUpdate) {
	switch update.Phase {
	case PhaseBetting:
		g.startTurnClock()
	case PhaseReveal:
		g.turnDeadline = time.Time{}
		g.schedule(dealerActionShowdown, g.options.RevealDelay)
	case PhaseSettled:
		g.turnDeadline = time.Time{}
		g.finishRound()
	}
}

func (g *Game) startTurnClock() {
	if g.options.TurnTimeout <= 0 {
		g.turnDeadline = time.Time{}
		return
	}

	g.turnDeadline = g.clock.Now().Add(g.options.TurnTimeout)
}

func (g *Game) showdown() error {
	settlement, err := g.round.ResolveShowdown()
	if err != nil {
		return err
	}

	messages := make([]*playable.LogMessage, 0, len(settlement.Hands))
	for _, p := range g.round.remaining() {
		result := settlement.Hands[p.PlayerID]
		msg := newLogMessage(p.PlayerID, "{} shows %s", result.Label)
		msg.Cards = p.Hand()
		messages = append(messages, msg)
	}

	g.sendLogMessages(messages...)
	g.finishRound()

	return nil
}

// finishRound must be called once the round is settled
func (g *Game) finishRound() {
	s := g.round.Settlement()

	hands := make(map[int64]string)
	for _, p := range g.participants {
		hands[p.PlayerID] = deck.CardsToString(p.hand)
	}

	g.history = append(g.history, &RoundResult{
		Round:      g.roundNumber,
		Hands:      hands,
		Settlement: s,
	})

	if len(s.WinnerIDs) == 1 {
		g.sendLogMessages(newLogMessage(s.WinnerIDs[0], "{} wins ${%d}", s.Pot))
	} else {
		g.sendLogMessages(newLogMessageWithPlayers(s.WinnerIDs, "{} split the pot of ${%d}", s.Pot))
	}

	if g.playersWhoCanContinue() < MinPlayers {
		g.schedule(dealerActionEndGame, g.options.NextRoundDelay)
		return
	}

	g.schedule(dealerActionNextRound, g.options.NextRoundDelay)
}

func (g *Game) playersWhoCanContinue() int {
	count := 0
	for _, p := range g.participants {
		if p.chips > 0 && p.chips >= g.options.Ante {
			count++
		}
	}

	return count
}

// nextRound deals a new round. The opener alternates every round
func (g *Game) nextRound() error {
	if g.done {
		return ErrGameIsOver
	}

	if g.round != nil && g.round.Phase() != PhaseSettled {
		return ErrInvalidPhase
	}

	if g.playersWhoCanContinue() < MinPlayers {
		return errors.New("not enough players have chips to continue")
	}

	round, err := NewRound(g.participants, g.deck, g.evaluator, RoundConfig{
		Opener:      g.roundNumber % len(g.participants),
		Ante:        g.options.Ante,
		MinimumHalf: g.options.MinimumHalf,
		Seed:        g.nextSeed(),
	})
	if err != nil {
		return err
	}

	g.round = round
	g.roundNumber++

	messages := []*playable.LogMessage{newLogMessage(0, "Round %d: cards dealt", g.roundNumber)}
	if g.options.Ante > 0 {
		messages = append(messages, newLogMessage(0, "Everyone paid the ${%d} ante", g.options.Ante))
	}
	g.sendLogMessages(messages...)

	if round.Phase() == PhaseReveal {
		g.turnDeadline = time.Time{}
		g.schedule(dealerActionShowdown, g.options.RevealDelay)
		return nil
	}

	g.startTurnClock()
	return nil
}

func (g *Game) nextSeed() int64 {
	if g.options.Seed > 0 {
		return g.options.Seed + int64(g.roundNumber)
	}

	return rng.NextSeed(g.rng)
}

// GetEndOfGameDetails returns details at the end of the game
func (g *Game) GetEndOfGameDetails() (gameOverDetails *playable.GameOverDetails, isGameOver bool) {
	if !g.done {
		return nil, false
	}

	adjustments := make(map[int64]int)
	for _, p := range g.participants {
		adjustments[p.PlayerID] = p.chips - g.options.StartingChips
	}

	return &playable.GameOverDetails{
		BalanceAdjustments: adjustments,
		Log:                g.history,
	}, true
}

func (g *Game) sendLogMessages(msg ...*playable.LogMessage) {
	if g.logChan == nil {
		return
	}

	select {
	case g.logChan <- msg:
	default:
		g.logger.Warn("log channel is full, dropping messages")
	}
}

func newLogMessage(playerID int64, format string, a ...interface{}) *playable.LogMessage {
	var playerIDs []int64
	if playerID > 0 {
		playerIDs = []int64{playerID}
	}

	return newLogMessageWithPlayers(playerIDs, format, a...)
}

func newLogMessageWithPlayers(playerIDs []int64, format string, a ...interface{}) *playable.LogMessage {
	return &playable.LogMessage{
		UUID:      uuid.New().String(),
		PlayerIDs: playerIDs,
		Message:   fmt.Sprintf(format, a...),
		Time:      time.Now(),
	}
}

// NameFromOptions returns the name of the game based on options
func NameFromOptions(opts Options) string {
	name := "Seotda"
	if opts.Variant == deck.Simplified40 {
		name += " (40 cards)"
	}

	if opts.Rules == RuleSetBonus {
		name += " with bonus combinations"
	}

	return name
}
