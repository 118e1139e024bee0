package model

import (
	"errors"

	"github.com/lib/pq"
)

const pqDuplicateKeyErrorCode pq.ErrorCode = "23505"

// ErrDuplicateKey happens if a result is written twice for the same player
var ErrDuplicateKey = errors.New("duplicate key constraint violation")

// ErrGameAlreadyEnded happens if EndGame is called on a finished game
var ErrGameAlreadyEnded = UserError("game has already ended")

// UserError is an error that is safe to return in a response
type UserError string

func (u UserError) Error() string {
	return string(u)
}

func isDuplicateKey(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqDuplicateKeyErrorCode
}
