package room

import (
	"seotda-server/pkg/playable"
)

// clientStatePlayer is a player in the room
type clientStatePlayer struct {
	PlayerID    int64  `json:"playerId"`
	Name        string `json:"name"`
	IsConnected bool   `json:"isConnected"`
	IsSeated    bool   `json:"isSeated"`
}

// Details is the room as seen by anyone, connected or not
type Details struct {
	RoomID       string               `json:"roomId"`
	Players      []*clientStatePlayer `json:"players"`
	GameName     string               `json:"gameName,omitempty"`
	PendingGame  *pendingGame         `json:"pendingGame,omitempty"`
	GamesFinished int                 `json:"gamesFinished"`
}

func newErrorResponse(ctx string, err error) *playable.Response {
	return playable.ErrorResponse(ctx, err)
}
