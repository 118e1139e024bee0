package seotda

import (
	"encoding/json"
	"fmt"
)

// Action is a betting action
type Action string

// action constants
const (
	Call  Action = "call"
	Raise Action = "raise"
	Half  Action = "half"
	AllIn Action = "all-in"
	Fold  Action = "fold"
)

var allowedActions = map[Action]bool{
	Call:  true,
	Raise: true,
	Half:  true,
	AllIn: true,
	Fold:  true,
}

// aliases used by the older clients
var actionAliases = map[string]Action{
	"die":    Fold,
	"allin":  AllIn,
	"all_in": AllIn,
}

// ActionFromString returns an action for the given string
func ActionFromString(s string) (Action, error) {
	if _, ok := allowedActions[Action(s)]; ok {
		return Action(s), nil
	}

	if a, ok := actionAliases[s]; ok {
		return a, nil
	}

	return "", fmt.Errorf("unknown action for identifier: %s", s)
}

func (a Action) String() string {
	switch a {
	case Call:
		return "Call"
	case Raise:
		return "Raise"
	case Half:
		return "Half"
	case AllIn:
		return "All-In"
	case Fold:
		return "Fold"
	}

	panic("unknown action")
}

// MarshalJSON encodes the action into JSON
func (a Action) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}{
		ID:   string(a),
		Name: a.String(),
	})
}

// UnmarshalJSON accepts either the identifier or the encoded object
func (a *Action) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		var obj struct {
			ID string `json:"id"`
		}

		if err := json.Unmarshal(b, &obj); err != nil {
			return err
		}

		s = obj.ID
	}

	action, err := ActionFromString(s)
	if err != nil {
		return err
	}

	*a = action
	return nil
}

// IsValid returns true if the action is permitted
func (a Action) IsValid() bool {
	_, ok := allowedActions[a]
	return ok
}

// LogMessage returns a message formatted for the log
func (a Action) LogMessage(paid, raisedTo int) string {
	switch a {
	case Call:
		if paid == 0 {
			return "checked"
		}

		return fmt.Sprintf("called ${%d}", paid)
	case Raise, Half:
		return fmt.Sprintf("raised to ${%d}", raisedTo)
	case AllIn:
		return fmt.Sprintf("went all-in with ${%d}", paid)
	case Fold:
		return "folded"
	}

	return ""
}
