package room

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPitBoss_Rooms(t *testing.T) {
	a := assert.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pb := newTestPitBoss(nil)
	pb.StartShift(ctx)

	_, found := pb.Room("abc")
	a.False(found)

	c1 := NewClient(nil, 1, "one", "abc")
	c2 := NewClient(nil, 2, "two", "abc")
	pb.ClientConnected(c1)
	pb.ClientConnected(c2)

	a.Eventually(func() bool {
		details, found := pb.Room("abc")
		return found && len(details.Players) == 2
	}, time.Second, time.Millisecond*10)

	details, _ := pb.Room("abc")
	a.Equal("abc", details.RoomID)
	a.Equal("one", details.Players[0].Name)
	a.True(details.Players[0].IsConnected)
	a.Equal(1, pb.RoomCount())

	pb.ClientDisconnected(c1)
	a.Eventually(func() bool {
		details, found := pb.Room("abc")
		return found && len(details.Players) == 1
	}, time.Second, time.Millisecond*10)

	pb.ClientDisconnected(c2)
	a.Eventually(func() bool {
		_, found := pb.Room("abc")
		return !found
	}, time.Second, time.Millisecond*10)
	a.Equal(0, pb.RoomCount())
}

func TestPitBoss_EndOfShift(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	pb := newTestPitBoss(nil)
	pb.StartShift(ctx)

	pb.ClientConnected(NewClient(nil, 1, "one", "abc"))
	assert.Eventually(t, func() bool {
		_, found := pb.Room("abc")
		return found
	}, time.Second, time.Millisecond*10)

	cancel()
	assert.Eventually(t, func() bool {
		_, found := pb.Room("abc")
		return !found
	}, time.Second, time.Millisecond*10)
}

func TestClient_Send(t *testing.T) {
	a := assert.New(t)
	c := NewClient(nil, 7, "seven", "abc")
	a.Equal("7(seven):abc", c.String())
	a.Equal("abc", c.RoomID())

	for i := 0; i < 256; i++ {
		a.True(c.Send(i))
	}

	a.False(c.Send("overflow"), "a full buffer drops the message")
	a.Equal(0, <-c.SendChan())
}
