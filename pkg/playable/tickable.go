package playable

import "time"

// Tickable is a game whose state moves along on its own, i.e., delayed reveals and turn timeouts
type Tickable interface {
	// Interval is how long the dealer waits between each tick
	Interval() time.Duration

	// Tick will be called periodically from the dealer's run loop
	// Return true if the dealer should send updated state to the clients
	Tick() (bool, error)
}
