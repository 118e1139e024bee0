package util

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetRandomName(t *testing.T) {
	random = rand.New(rand.NewSource(0)) // nolint:gosec
	first := GetRandomName()
	random = rand.New(rand.NewSource(0)) // nolint:gosec
	assert.Equal(t, first, GetRandomName(), "the name only depends on the source")

	parts := strings.SplitN(first, " ", 2)
	assert.Contains(t, adjectives, parts[0])
	assert.Contains(t, emblems, parts[1])
}

func TestNewRoomID(t *testing.T) {
	a := assert.New(t)
	id := NewRoomID()
	a.Len(id, 12)
	a.NotContains(id, "-")
	a.NotEqual(id, NewRoomID())
}
