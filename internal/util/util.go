package util

import (
	"strings"

	"github.com/google/uuid"
)

// NewRoomID returns a random room identifier that is short enough to share
func NewRoomID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
}
