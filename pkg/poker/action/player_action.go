package action

import (
	"fmt"

	"holdem-engine/pkg/chip"
)

// Action is a single action submitted by a player. Use the per-type
// constructors so a fold or check can never carry an amount.
type Action struct {
	PlayerID int64       `json:"playerId"`
	Type     Type        `json:"type"`
	Amount   chip.Amount `json:"amount,omitempty"`

	// AllIn is set during validation when the action commits the player's
	// entire remaining stack
	AllIn bool `json:"allIn,omitempty"`
}

// NewFold returns a fold action
func NewFold(playerID int64) Action {
	return Action{PlayerID: playerID, Type: Fold}
}

// NewCheck returns a check action
func NewCheck(playerID int64) Action {
	return Action{PlayerID: playerID, Type: Check}
}

// NewCall returns a call action. The amount is resolved from round state
// during validation, never supplied by the caller.
func NewCall(playerID int64) Action {
	return Action{PlayerID: playerID, Type: Call}
}

// NewBet returns a bet to the given total amount
func NewBet(playerID int64, amount chip.Amount) Action {
	return Action{PlayerID: playerID, Type: Bet, Amount: amount}
}

// NewRaise returns a raise to the given total amount
func NewRaise(playerID int64, amount chip.Amount) Action {
	return Action{PlayerID: playerID, Type: Raise, Amount: amount}
}

// NewAllIn returns an action committing the player's entire remaining stack.
// Validation reclassifies it as the underlying bet, raise, or call.
func NewAllIn(playerID int64) Action {
	return Action{PlayerID: playerID, Type: AllIn}
}

// LogMessage returns a message formatted for the game log
func (a Action) LogMessage() string {
	suffix := ""
	if a.AllIn {
		suffix = " and is all-in"
	}

	switch a.Type {
	case Fold:
		return "folded"
	case Check:
		return "checked"
	case Call:
		return fmt.Sprintf("called ${%d}%s", a.Amount, suffix)
	case Bet:
		return fmt.Sprintf("bet ${%d}%s", a.Amount, suffix)
	case Raise:
		return fmt.Sprintf("raised to ${%d}%s", a.Amount, suffix)
	case AllIn:
		return fmt.Sprintf("went all-in for ${%d}", a.Amount)
	}

	return ""
}
