package model

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"seotda-server/pkg/db"

	"github.com/sirupsen/logrus"
)

// Game is a record in the `games` table
type Game struct {
	ID       int64
	RoomID   string
	GameType string
	data     interface{}
	Created  time.Time
	Ended    time.Time
}

const gamesColumns = `id, room_id, game_type, data, created, ended`

// CreateGame inserts a new game record for the room
func CreateGame(ctx context.Context, roomID, gameType string) (*Game, error) {
	const query = `
INSERT INTO games (room_id, game_type)
VALUES ($1, $2)
RETURNING ` + gamesColumns

	row := db.Instance().QueryRowContext(ctx, query, roomID, gameType)
	return gameByRow(row)
}

// GameByID returns a game object by its ID
func GameByID(ctx context.Context, id int64) (*Game, error) {
	const query = `
SELECT ` + gamesColumns + `
FROM games
WHERE id = $1`

	row := db.Instance().QueryRowContext(ctx, query, id)
	return gameByRow(row)
}

func gameByRow(row db.Scanner) (*Game, error) {
	var g Game
	var data []byte
	var ended sql.NullTime

	if err := row.Scan(&g.ID, &g.RoomID, &g.GameType, &data, &g.Created, &ended); err != nil {
		return nil, err
	}

	if data != nil {
		if err := json.Unmarshal(data, &g.data); err != nil {
			return nil, err
		}
	}

	g.Ended = ended.Time

	return &g, nil
}

// Data returns the decoded game log, or nil if the game has not ended
func (g *Game) Data() interface{} {
	return g.data
}

// RecordGame inserts a finished game and every player's chip adjustment in one transaction
// Nothing is written if an error is returned
func RecordGame(ctx context.Context, roomID, gameType string, data interface{}, balanceAdjustments map[int64]int) (*Game, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	const query = `
INSERT INTO games (room_id, game_type, data, ended)
VALUES ($1, $2, $3, NOW() AT TIME ZONE 'UTC')
RETURNING ` + gamesColumns

	var g *Game
	err = withTx(ctx, func(tx *sql.Tx) error {
		var err error
		if g, err = gameByRow(tx.QueryRowContext(ctx, query, roomID, gameType, b)); err != nil {
			return err
		}

		return insertResults(ctx, tx, g.ID, balanceAdjustments)
	})
	if err != nil {
		return nil, err
	}

	return g, nil
}

// EndGame will end the game, store the log, and record every player's chip adjustment
func (g *Game) EndGame(ctx context.Context, data interface{}, balanceAdjustments map[int64]int) error {
	if !g.Ended.IsZero() {
		return ErrGameAlreadyEnded
	}

	b, err := json.Marshal(data)
	if err != nil {
		return err
	}

	const query = `
UPDATE games
SET data = $1, ended = NOW() AT TIME ZONE 'UTC'
WHERE id = $2
RETURNING ended`

	var ended time.Time
	err = withTx(ctx, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, query, b, g.ID).Scan(&ended); err != nil {
			return err
		}

		return insertResults(ctx, tx, g.ID, balanceAdjustments)
	})
	if err != nil {
		return err
	}

	g.data = data
	g.Ended = ended
	return nil
}

func insertResults(ctx context.Context, tx *sql.Tx, gameID int64, balanceAdjustments map[int64]int) error {
	stmt, err := tx.PrepareContext(ctx, "INSERT INTO game_results (game_id, player_id, adjustment) VALUES ($1, $2, $3)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for playerID, change := range balanceAdjustments {
		if _, err := stmt.ExecContext(ctx, gameID, playerID, change); err != nil {
			if isDuplicateKey(err) {
				return ErrDuplicateKey
			}

			return err
		}
	}

	return nil
}

// withTx commits if fn succeeds and rolls back otherwise
func withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.Instance().BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			logrus.WithError(rbErr).Error("could not rollback transaction")
		}

		return err
	}

	return tx.Commit()
}

// GamesInRoom returns every game played in the room, oldest first
func GamesInRoom(ctx context.Context, roomID string) ([]*Game, error) {
	const query = `
SELECT ` + gamesColumns + `
FROM games
WHERE room_id = $1
ORDER BY id`

	rows, err := db.Instance().QueryContext(ctx, query, roomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	games := make([]*Game, 0)
	for rows.Next() {
		g, err := gameByRow(rows)
		if err != nil {
			return nil, err
		}

		games = append(games, g)
	}

	return games, rows.Err()
}

// Results returns the chip adjustment of every player in the game
func (g *Game) Results(ctx context.Context) (map[int64]int, error) {
	const query = `
SELECT player_id, adjustment
FROM game_results
WHERE game_id = $1`

	rows, err := db.Instance().QueryContext(ctx, query, g.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make(map[int64]int)
	for rows.Next() {
		var playerID int64
		var adjustment int
		if err := rows.Scan(&playerID, &adjustment); err != nil {
			return nil, err
		}

		results[playerID] = adjustment
	}

	return results, rows.Err()
}

// Delete removes the game and its results
func (g *Game) Delete(ctx context.Context) error {
	_, err := db.Instance().ExecContext(ctx, "DELETE FROM games WHERE id = $1", g.ID)
	return err
}
