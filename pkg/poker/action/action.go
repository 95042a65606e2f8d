// Package action defines the actions a player can take during a betting round.
package action

import (
	"encoding/json"
	"fmt"
)

// Type represents the kind of action a player can take
type Type string

// action type constants
const (
	Fold  Type = "fold"
	Check Type = "check"
	Call  Type = "call"
	Bet   Type = "bet"
	Raise Type = "raise"
	AllIn Type = "all-in"
)

var allowedTypes = map[Type]bool{
	Fold:  true,
	Check: true,
	Call:  true,
	Bet:   true,
	Raise: true,
	AllIn: true,
}

// TypeFromString returns an action type for the given string
func TypeFromString(s string) (Type, error) {
	if _, ok := allowedTypes[Type(s)]; ok {
		return Type(s), nil
	}

	return "", fmt.Errorf("unknown action for identifier: %s", s)
}

func (t Type) String() string {
	switch t {
	case Fold:
		return "Fold"
	case Check:
		return "Check"
	case Call:
		return "Call"
	case Bet:
		return "Bet"
	case Raise:
		return "Raise"
	case AllIn:
		return "All-In"
	}

	panic("unknown action")
}

// IsValid returns true if the action type is permitted
func (t Type) IsValid() bool {
	_, ok := allowedTypes[t]
	return ok
}

// IsAggressive returns true if the action can raise the bet level
func (t Type) IsAggressive() bool {
	return t == Bet || t == Raise
}

// MarshalJSON encodes the action type into JSON
func (t Type) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}{
		ID:   string(t),
		Name: t.String(),
	})
}
