// Package pokererr provides the structured error values shared by the table
// and its collaborators. Callers branch on the code, never on message text.
package pokererr

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Code identifies the kind of failure
type Code string

// Code constants
const (
	InvalidAction      Code = "invalid_action"
	InsufficientStack  Code = "insufficient_stack"
	InvalidState       Code = "invalid_state"
	PlayerNotFound     Code = "player_not_found"
	NotPlayerTurn      Code = "not_player_turn"
	InvalidBetAmount   Code = "invalid_bet_amount"
	InvalidRaiseAmount Code = "invalid_raise_amount"
	TableFull          Code = "table_full"
	TableEmpty         Code = "table_empty"
	SeatOccupied       Code = "seat_occupied"
	InvalidSeat        Code = "invalid_seat"
	GameAlreadyStarted Code = "game_already_started"
	GameNotStarted     Code = "game_not_started"
	InvalidCard        Code = "invalid_card"
	NotEnoughPlayers   Code = "not_enough_players"
	InternalError      Code = "internal_error"
)

var validCodes = map[Code]bool{
	InvalidAction:      true,
	InsufficientStack:  true,
	InvalidState:       true,
	PlayerNotFound:     true,
	NotPlayerTurn:      true,
	InvalidBetAmount:   true,
	InvalidRaiseAmount: true,
	TableFull:          true,
	TableEmpty:         true,
	SeatOccupied:       true,
	InvalidSeat:        true,
	GameAlreadyStarted: true,
	GameNotStarted:     true,
	InvalidCard:        true,
	NotEnoughPlayers:   true,
	InternalError:      true,
}

// IsValid returns true if the code is part of the closed set
func (c Code) IsValid() bool {
	return validCodes[c]
}

// Error is a failure value with a stable code, a human-readable message, and
// optional details for the caller
type Error struct {
	Code    Code
	Message string
	Details map[string]interface{}
}

// New returns an error with the given code and formatted message
func New(code Code, format string, a ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, a...),
	}
}

// WithDetails attaches details to the error and returns it
func (e *Error) WithDetails(details map[string]interface{}) *Error {
	e.Details = details
	return e
}

func (e *Error) Error() string {
	return e.Message
}

// Is allows errors.Is matching on the code
func (e *Error) Is(target error) bool {
	var pe *Error
	if errors.As(target, &pe) {
		return pe.Code == e.Code
	}

	return false
}

// CodeOf returns the code carried by err, or InternalError if err is not a
// pokererr value
func CodeOf(err error) Code {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Code
	}

	return InternalError
}

type errorJSON struct {
	Code    Code                   `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// MarshalJSON encodes the error into JSON
func (e *Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(errorJSON{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}
