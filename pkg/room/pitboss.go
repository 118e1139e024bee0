package room

import (
	"context"
	"sync"
	"time"

	"seotda-server/pkg/model"
	"seotda-server/pkg/room/gamefactory"

	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"
)

// PitBoss is responsible for dispatching players to rooms
type PitBoss struct {
	dealers    map[string]*Dealer
	lock       sync.RWMutex
	connect    chan *Client
	disconnect chan *Client

	factories      gamefactory.Registry
	recorder       model.Recorder
	startGameDelay time.Duration
	clock          quartz.Clock
}

// NewPitBoss returns a new dispatch object
// startGameDelay is how long a created game waits before the first deal
func NewPitBoss(factories gamefactory.Registry, recorder model.Recorder, startGameDelay time.Duration) *PitBoss {
	return &PitBoss{
		dealers:        make(map[string]*Dealer),
		connect:        make(chan *Client, 256),
		disconnect:     make(chan *Client, 256),
		factories:      factories,
		recorder:       recorder,
		startGameDelay: startGameDelay,
		clock:          quartz.NewReal(),
	}
}

// StartShift starts the PitBoss run loop
// Every dealer is sent home when ctx is done
func (p *PitBoss) StartShift(ctx context.Context) {
	go p.runLoop(ctx)
}

func (p *PitBoss) runLoop(ctx context.Context) {
	for {
		select {
		case client := <-p.connect:
			logrus.WithField("client", client.String()).Debug("client connected")

			p.lock.Lock()
			dealer, found := p.dealers[client.roomID]
			if !found {
				dealer = NewDealer(p, client.roomID)
				dealer.StartShift()
				p.dealers[client.roomID] = dealer
			}
			p.lock.Unlock()

			dealer.AddClient(client)
		case client := <-p.disconnect:
			logrus.WithField("client", client.String()).Debug("client disconnected")

			p.lock.Lock()
			dealer, found := p.dealers[client.roomID]
			if !found {
				p.lock.Unlock()
				logrus.WithField("roomId", client.roomID).WithField("type", "exception").Error("room not found")
				continue
			}

			if dealer.RemoveClient(client) {
				dealer.EndShift()
				delete(p.dealers, client.roomID)
			}
			p.lock.Unlock()
		case <-ctx.Done():
			p.lock.Lock()
			for id, dealer := range p.dealers {
				dealer.EndShift()
				delete(p.dealers, id)
			}
			p.lock.Unlock()

			logrus.Info("pit boss ended the shift")
			return
		}
	}
}

// ClientConnected is called when a client connects to the server
func (p *PitBoss) ClientConnected(client *Client) {
	p.connect <- client
}

// ClientDisconnected is called when a client disconnects from the server
func (p *PitBoss) ClientDisconnected(client *Client) {
	p.disconnect <- client
}

// Room returns the details of an open room
// false is returned if nobody is in the room
func (p *PitBoss) Room(roomID string) (*Details, bool) {
	p.lock.RLock()
	dealer, found := p.dealers[roomID]
	p.lock.RUnlock()

	if !found {
		return nil, false
	}

	details := dealer.Details()
	return details, details != nil
}

// RoomCount returns how many rooms are open
func (p *PitBoss) RoomCount() int {
	p.lock.RLock()
	defer p.lock.RUnlock()

	return len(p.dealers)
}
