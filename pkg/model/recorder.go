package model

import (
	"context"
	"sync"
	"time"
)

// Recorder persists finished games
type Recorder interface {
	RecordGame(ctx context.Context, roomID, gameType string, data interface{}, balanceAdjustments map[int64]int) error
}

// PostgresRecorder writes games to the `games` and `game_results` tables
type PostgresRecorder struct{}

// RecordGame writes the finished game and its results in a single transaction
func (PostgresRecorder) RecordGame(ctx context.Context, roomID, gameType string, data interface{}, balanceAdjustments map[int64]int) error {
	_, err := RecordGame(ctx, roomID, gameType, data, balanceAdjustments)
	return err
}

// RecordedGame is a game kept by the MemoryRecorder
type RecordedGame struct {
	RoomID             string
	GameType           string
	Data               interface{}
	BalanceAdjustments map[int64]int
	Ended              time.Time
}

// MemoryRecorder keeps finished games in memory
// It is used when no database is configured, and in tests
type MemoryRecorder struct {
	lock  sync.Mutex
	games []*RecordedGame
}

// NewMemoryRecorder returns an empty MemoryRecorder
func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{}
}

// RecordGame stores the game
func (m *MemoryRecorder) RecordGame(ctx context.Context, roomID, gameType string, data interface{}, balanceAdjustments map[int64]int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	adjustments := make(map[int64]int, len(balanceAdjustments))
	for id, change := range balanceAdjustments {
		adjustments[id] = change
	}

	m.lock.Lock()
	defer m.lock.Unlock()

	m.games = append(m.games, &RecordedGame{
		RoomID:             roomID,
		GameType:           gameType,
		Data:               data,
		BalanceAdjustments: adjustments,
		Ended:              time.Now(),
	})

	return nil
}

// Games returns the recorded games, oldest first
func (m *MemoryRecorder) Games() []*RecordedGame {
	m.lock.Lock()
	defer m.lock.Unlock()

	games := make([]*RecordedGame, len(m.games))
	copy(games, m.games)
	return games
}
