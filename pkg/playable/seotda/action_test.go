package seotda

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActionFromString(t *testing.T) {
	tests := []struct {
		in   string
		want Action
	}{
		{"call", Call},
		{"raise", Raise},
		{"half", Half},
		{"all-in", AllIn},
		{"allin", AllIn},
		{"all_in", AllIn},
		{"fold", Fold},
		{"die", Fold},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			a, err := ActionFromString(tt.in)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, a)
			assert.True(t, a.IsValid())
		})
	}

	a, err := ActionFromString("check")
	assert.EqualError(t, err, "unknown action for identifier: check")
	assert.Equal(t, Action(""), a)
	assert.False(t, Action("check").IsValid())
}

func TestAction_MarshalJSON(t *testing.T) {
	b, err := json.Marshal([]Action{AllIn, Half})
	assert.NoError(t, err)
	assert.Equal(t, `[{"id":"all-in","name":"All-In"},{"id":"half","name":"Half"}]`, string(b))
}

func TestAction_LogMessage(t *testing.T) {
	a := assert.New(t)
	a.Equal("checked", Call.LogMessage(0, 0))
	a.Equal("called ${250}", Call.LogMessage(250, 500))
	a.Equal("raised to ${500}", Raise.LogMessage(500, 500))
	a.Equal("raised to ${750}", Half.LogMessage(750, 750))
	a.Equal("went all-in with ${1200}", AllIn.LogMessage(1200, 1200))
	a.Equal("folded", Fold.LogMessage(0, 500))
}

func TestAction_UnmarshalJSON(t *testing.T) {
	a := assert.New(t)

	var actions []Action
	a.NoError(json.Unmarshal([]byte(`[{"id":"all-in","name":"All-In"},"die","half"]`), &actions))
	a.Equal([]Action{AllIn, Fold, Half}, actions)

	var action Action
	a.EqualError(json.Unmarshal([]byte(`"check"`), &action), "unknown action for identifier: check")
}
