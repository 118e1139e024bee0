package util

import (
	"fmt"
	"math/rand"
	"time"
)

var adjectives = []string{
	"Lucky", "Quiet", "Bold", "Sly", "Patient", "Reckless", "Calm", "Hungry", "Sleepy", "Clever", "Grumpy",
	"Red", "Blue", "Golden", "Silver", "Misty", "Midnight", "Early", "Wandering", "Humble", "Grand",
}

// one for every month of the deck
var emblems = []string{
	"Crane", "Nightingale", "Cherry", "Cuckoo", "Iris", "Butterfly", "Boar", "Goose", "Sake Cup", "Deer",
	"Phoenix", "Swallow",
}

var random = rand.New(rand.NewSource(time.Now().UnixNano())) // nolint:gosec

// GetRandomName returns a guest name by combining an adjective with a card emblem
func GetRandomName() string {
	return fmt.Sprintf("%s %s", adjectives[random.Intn(len(adjectives))], emblems[random.Intn(len(emblems))])
}
