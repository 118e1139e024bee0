package room

import (
	"seotda-server/pkg/playable"
)

const logMessageLimit = 25

// addLogMessages adds the messages to the recent history and sends them to every client
// Note: this must only be called from within the run loop
func (d *Dealer) addLogMessages(messages []*playable.LogMessage) {
	m := append(d.logMessages, messages...)
	count := len(m)
	if count > logMessageLimit {
		m = m[count-logMessageLimit:]
	}

	d.logMessages = m

	for _, client := range d.Clients() {
		client.Send(&playable.Response{
			Type: playable.TypeLogs,
			Data: messages,
		})
	}
}

// sendRecentLogs catches a newly connected client up on the recent history
func (d *Dealer) sendRecentLogs(client *Client) {
	if len(d.logMessages) == 0 {
		return
	}

	logs := make([]*playable.LogMessage, len(d.logMessages))
	copy(logs, d.logMessages)

	client.Send(&playable.Response{
		Type: playable.TypeLogs,
		Data: logs,
	})
}
