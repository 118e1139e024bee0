package room

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"seotda-server/pkg/playable"
	"seotda-server/pkg/room/gamefactory"

	"github.com/coder/quartz"
	"github.com/sanity-io/litter"
	"github.com/sirupsen/logrus"
)

const (
	defaultTickInterval = time.Second
	recordGameTimeout   = time.Second * 5
)

var (
	errGameInProgress = errors.New("a game is already in progress")
	errNoGame         = errors.New("there is no game in progress")
	errNotSeated      = errors.New("only seated players can do that")
)

type state int

const (
	stateClientEvent state = iota
	stateGameEvent
)

// Dealer is responsible for controlling the game in a single room
type Dealer struct {
	roomID  string
	pitBoss *PitBoss
	clock   quartz.Clock
	logger  logrus.FieldLogger

	clients []*Client
	names   map[int64]string
	lock    sync.RWMutex

	// everything below is only touched from the run loop
	game          playable.Playable
	seated        []int64
	pendingGame   *pendingGame
	logMessages   []*playable.LogMessage
	gamesFinished int
	ticker        *quartz.Ticker

	execInRunLoop chan func()
	stateChanged  chan state
	close         chan bool
	closeOnce     sync.Once
}

// NewDealer creates a new dealer object
// This is called from a blocking state, so it needs to return quickly
func NewDealer(pitBoss *PitBoss, roomID string) *Dealer {
	return &Dealer{
		roomID:        roomID,
		pitBoss:       pitBoss,
		clock:         pitBoss.clock,
		logger:        logrus.WithField("roomId", roomID),
		names:         make(map[int64]string),
		execInRunLoop: make(chan func(), 256),
		stateChanged:  make(chan state, 256),
		close:         make(chan bool),
	}
}

// Clients will return a slice of connected (at the time) clients
func (d *Dealer) Clients() []*Client {
	d.lock.RLock()
	defer d.lock.RUnlock()

	clients := make([]*Client, len(d.clients))
	copy(clients, d.clients)
	return clients
}

// StartShift starts the run loop
func (d *Dealer) StartShift() {
	d.ticker = d.clock.NewTicker(defaultTickInterval, "dealer")
	go d.runLoop()
}

func (d *Dealer) runLoop() {
	d.logger.Debug("creating dealer run loop")
	defer d.ticker.Stop()

	for {
		select {
		case s := <-d.stateChanged:
			switch s {
			case stateClientEvent:
				d.sendClientState()
			case stateGameEvent:
				d.sendGameData()
			}
		case fn := <-d.execInRunLoop:
			fn()
		case <-d.ticker.C:
			d.tick()
		case <-d.pendingGameC():
			d.startPendingGame()
		case msgs := <-d.gameLogChan():
			d.addLogMessages(msgs)
		case <-d.close:
			if d.pendingGame != nil {
				d.pendingGame.stop()
			}

			d.logger.Debug("terminating dealer run loop")
			return
		}
	}
}

// AddClient adds a client
// This method must return quickly
func (d *Dealer) AddClient(client *Client) {
	d.lock.Lock()
	client.dealer = d
	d.clients = append(d.clients, client)
	d.names[client.PlayerID] = client.Name
	d.lock.Unlock()

	d.stateChanged <- stateClientEvent
	d.execInRunLoop <- func() {
		d.sendRecentLogs(client)

		if d.game == nil {
			return
		}

		gs, err := d.game.GetPlayerState(client.PlayerID)
		if err != nil {
			d.logger.WithError(err).Error("could not get player state")
			return
		}

		client.Send(gs)
	}
}

// RemoveClient removes a client
// This method must return quickly
func (d *Dealer) RemoveClient(client *Client) (lastClient bool) {
	d.lock.Lock()
	for i, c := range d.clients {
		if c == client {
			d.clients = append(d.clients[:i], d.clients[i+1:]...)
			break
		}
	}
	nClients := len(d.clients)
	d.lock.Unlock()

	if nClients > 0 {
		d.stateChanged <- stateClientEvent
		return false
	}

	return true
}

// EndShift is called when the dealer is no longer needed
func (d *Dealer) EndShift() {
	d.closeOnce.Do(func() {
		close(d.close)
	})
}

// Details returns the room details
// nil is returned if the dealer is no longer working
func (d *Dealer) Details() *Details {
	result := make(chan *Details, 1)

	select {
	case d.execInRunLoop <- func() { result <- d.details() }:
	case <-d.close:
		return nil
	}

	select {
	case details := <-result:
		return details
	case <-d.close:
		return nil
	}
}

// ReceivedMessage is called when a client sends a message to the server
func (d *Dealer) ReceivedMessage(c *Client, msg *playable.PayloadIn) {
	if logrus.IsLevelEnabled(logrus.TraceLevel) {
		d.logger.WithField("client", c.String()).Trace("received message: " + litter.Sdump(msg))
	}

	switch msg.Type {
	case "createGame":
		d.execInRunLoop <- func() {
			d.createGame(c, msg)
		}
	case "terminateGame":
		d.execInRunLoop <- func() {
			d.terminateGame(c, msg)
		}
	default:
		d.execInRunLoop <- func() {
			d.gameAction(c, msg)
		}
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) createGame(c *Client, msg *playable.PayloadIn) {
	if d.game != nil || d.pendingGame != nil {
		c.Send(newErrorResponse(msg.Context, errGameInProgress))
		return
	}

	pg, err := newPendingGame(d.clock, d.pitBoss.factories, c, msg, d.pitBoss.startGameDelay)
	if err != nil {
		c.Send(newErrorResponse(msg.Context, err))
		return
	}

	seated := d.seatedPlayerIDs(pg.factory)
	if !containsID(seated, c.PlayerID) {
		pg.stop()
		c.Send(newErrorResponse(msg.Context, errNotSeated))
		return
	}

	if min, _ := pg.factory.PlayerLimits(); len(seated) < min {
		pg.stop()
		c.Send(newErrorResponse(msg.Context, fmt.Errorf("at least %d players are needed to start", min)))
		return
	}

	d.pendingGame = pg
	c.Send(playable.OK(msg.Context))
	d.addLogMessages(playable.SimpleLogMessageSlice(c.PlayerID, "{} started a game of %s", pg.Name))
	d.sendClientState()
}

// NOTE: must only be called from the run loop
func (d *Dealer) startPendingGame() {
	pg := d.pendingGame
	d.pendingGame = nil

	playerIDs := d.seatedPlayerIDs(pg.factory)
	game, err := pg.factory.CreateGame(d.logger, playerIDs, pg.message.AdditionalData)
	if err != nil {
		d.logger.WithError(err).Error("could not create game")
		d.addLogMessages(playable.SimpleLogMessageSlice(0, "The game could not start: %s", err.Error()))
		d.sendClientState()
		return
	}

	d.logger.WithField("game", game.Name()).WithField("players", playerIDs).Info("game started")
	d.game = game
	d.seated = playerIDs

	if t, ok := game.(playable.Tickable); ok {
		d.ticker.Reset(t.Interval(), "dealer")
	}

	d.sendClientState()
	d.sendGameData()
}

// NOTE: must only be called from the run loop
func (d *Dealer) terminateGame(c *Client, msg *playable.PayloadIn) {
	if d.game == nil && d.pendingGame == nil {
		c.Send(newErrorResponse(msg.Context, errNoGame))
		return
	}

	if !containsID(d.seatedForDisplay(), c.PlayerID) {
		c.Send(newErrorResponse(msg.Context, errNotSeated))
		return
	}

	if d.pendingGame != nil {
		d.pendingGame.stop()
		d.pendingGame = nil
	} else {
		d.drainLogs()
		d.game = nil
		d.seated = nil
	}

	c.Send(playable.OK(msg.Context))
	d.addLogMessages(playable.SimpleLogMessageSlice(c.PlayerID, "{} ended the game"))
	d.sendGameEnded(nil)
	d.sendClientState()
}

// NOTE: must only be called from the run loop
func (d *Dealer) gameAction(c *Client, msg *playable.PayloadIn) {
	if d.game == nil {
		c.Send(newErrorResponse(msg.Context, errNoGame))
		return
	}

	res, updateState, err := d.game.Action(c.PlayerID, msg)
	if err != nil {
		d.logger.WithError(err).WithField("client", c.String()).Info("could not perform action")
		c.Send(newErrorResponse(msg.Context, err))
		return
	}

	if res != nil {
		res.Context = msg.Context
		c.Send(res)
	}

	if updateState {
		d.sendGameData()
	}

	d.checkGameOver()
}

// NOTE: must only be called from the run loop
func (d *Dealer) tick() {
	t, ok := d.game.(playable.Tickable)
	if !ok {
		return
	}

	changed, err := t.Tick()
	if err != nil {
		d.logger.WithError(err).Error("could not tick the game")
		return
	}

	if changed {
		d.sendGameData()
		d.checkGameOver()
	}
}

// checkGameOver records a finished game and clears the table
// NOTE: must only be called from the run loop
func (d *Dealer) checkGameOver() {
	details, isOver := d.game.GetEndOfGameDetails()
	if !isOver {
		return
	}

	game := d.game
	d.drainLogs()
	d.game = nil
	d.seated = nil
	d.gamesFinished++

	if logrus.IsLevelEnabled(logrus.TraceLevel) {
		d.logger.Trace("game over: " + litter.Sdump(details.BalanceAdjustments))
	}

	if recorder := d.pitBoss.recorder; recorder != nil {
		ctx, cancel := context.WithTimeout(context.Background(), recordGameTimeout)
		defer cancel()

		if err := recorder.RecordGame(ctx, d.roomID, game.Name(), details.Log, details.BalanceAdjustments); err != nil {
			d.logger.WithError(err).Error("could not save game")
		}
	}

	d.sendGameEnded(details)
	d.sendClientState()
}

// drainLogs moves any log messages still queued by the game to the history
func (d *Dealer) drainLogs() {
	for {
		select {
		case msgs := <-d.game.LogChan():
			d.addLogMessages(msgs)
		default:
			return
		}
	}
}

func (d *Dealer) pendingGameC() <-chan time.Time {
	if d.pendingGame == nil {
		return nil
	}

	return d.pendingGame.timer.C
}

func (d *Dealer) gameLogChan() <-chan []*playable.LogMessage {
	if d.game == nil {
		return nil
	}

	return d.game.LogChan()
}

// seatedPlayerIDs returns the players who would be dealt in, in the order they joined
func (d *Dealer) seatedPlayerIDs(factory gamefactory.GameFactory) []int64 {
	_, max := factory.PlayerLimits()

	ids := make([]int64, 0, max)
	for _, c := range d.Clients() {
		if len(ids) == max {
			break
		}

		if !containsID(ids, c.PlayerID) {
			ids = append(ids, c.PlayerID)
		}
	}

	return ids
}

// seatedForDisplay returns the players in the game, or who would be dealt in the default game
func (d *Dealer) seatedForDisplay() []int64 {
	if d.game != nil {
		return d.seated
	}

	if d.pendingGame != nil {
		return d.seatedPlayerIDs(d.pendingGame.factory)
	}

	factory, err := d.pitBoss.factories.Get(gamefactory.DefaultGame)
	if err != nil {
		return nil
	}

	return d.seatedPlayerIDs(factory)
}

// NOTE: must only be called from the run loop
func (d *Dealer) details() *Details {
	seated := d.seatedForDisplay()
	connected := make(map[int64]bool)

	d.lock.RLock()
	defer d.lock.RUnlock()

	players := make([]*clientStatePlayer, 0, len(d.clients))
	for _, c := range d.clients {
		if connected[c.PlayerID] {
			continue
		}

		connected[c.PlayerID] = true
		players = append(players, &clientStatePlayer{
			PlayerID:    c.PlayerID,
			Name:        c.Name,
			IsConnected: true,
			IsSeated:    containsID(seated, c.PlayerID),
		})
	}

	for _, id := range seated {
		if connected[id] {
			continue
		}

		players = append(players, &clientStatePlayer{
			PlayerID: id,
			Name:     d.names[id],
			IsSeated: true,
		})
	}

	details := &Details{
		RoomID:        d.roomID,
		Players:       players,
		PendingGame:   d.pendingGame,
		GamesFinished: d.gamesFinished,
	}

	if d.game != nil {
		details.GameName = d.game.Name()
	}

	return details
}

// NOTE: must only be called from the run loop
func (d *Dealer) sendClientState() {
	res := &playable.Response{
		Type: playable.TypeClientState,
		Data: d.details(),
	}

	for _, client := range d.Clients() {
		client.Send(res)
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) sendGameData() {
	if d.game == nil {
		d.logger.Error("game state changed, but there's no active game")
		return
	}

	for _, client := range d.Clients() {
		data, err := d.game.GetPlayerState(client.PlayerID)
		if err != nil {
			d.logger.WithError(err).Error("could not get player state")
			continue
		}

		client.Send(data)
	}
}

type gameEnded struct {
	BalanceAdjustments map[int64]int `json:"balanceAdjustments,omitempty"`
}

// NOTE: must only be called from the run loop
func (d *Dealer) sendGameEnded(details *playable.GameOverDetails) {
	var data gameEnded
	if details != nil {
		data.BalanceAdjustments = details.BalanceAdjustments
	}

	for _, client := range d.Clients() {
		client.Send(&playable.Response{
			Type: playable.TypeGameEnded,
			Data: data,
		})
	}
}

func containsID(ids []int64, id int64) bool {
	for _, i := range ids {
		if i == id {
			return true
		}
	}

	return false
}
