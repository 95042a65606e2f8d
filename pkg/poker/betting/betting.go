// Package betting implements the betting engine for a single No-Limit Texas
// Hold'em street: action legality, validation, and the betting-round state
// machine with side-pot accounting.
//
// The engine is purely functional at its boundary. Apply returns a new Round
// value and never mutates its receiver, so a rejected action always leaves
// the caller's state untouched.
package betting

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"holdem-engine/pkg/chip"
	"holdem-engine/pkg/poker/pokererr"
)

// Seat is the caller-supplied starting state for one player. Stack is the
// player's remaining stack after posting; Posted is any blind or ante
// already committed to this street.
type Seat struct {
	PlayerID int64
	Stack    chip.Amount
	Posted   chip.Amount
}

// Config configures a betting round. The action order is caller-supplied:
// seats must be passed in table order and FirstToAct indexes into them
// (left of the big blind pre-flop, left of the button post-flop).
type Config struct {
	// BigBlind sets the minimum bet and the fallback minimum raise increment
	BigBlind chip.Amount

	// MinBet overrides the minimum opening bet. Zero means BigBlind.
	MinBet chip.Amount

	// FirstToAct is the index into the seat list of the player who acts first
	FirstToAct int

	// Pots carries finalized pots from earlier streets
	Pots Pots

	// Logger receives per-action debug logging. Nil means the standard logger.
	Logger logrus.FieldLogger
}

// StartBettingRound starts a street with the given seats. Blinds and antes
// must already be posted by the caller; the bet level starts at the highest
// posted amount.
func StartBettingRound(seats []Seat, config Config) (*Round, error) {
	if len(seats) < 2 {
		return nil, pokererr.New(pokererr.NotEnoughPlayers, "a betting round requires at least two players")
	}

	if config.BigBlind.IsZero() || config.BigBlind.IsNegative() {
		return nil, pokererr.New(pokererr.InvalidState, "big blind must be greater than zero")
	}

	if config.FirstToAct < 0 || config.FirstToAct >= len(seats) {
		return nil, pokererr.New(pokererr.InvalidSeat, "first-to-act index %d is out of range", config.FirstToAct)
	}

	minBet := config.MinBet
	if minBet.IsZero() {
		minBet = config.BigBlind
	}

	logger := config.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	r := &Round{
		id:        uuid.New().String(),
		players:   make([]*PlayerState, len(seats)),
		index:     make(map[int64]int, len(seats)),
		toAct:     -1,
		bigBlind:  config.BigBlind,
		minBet:    minBet,
		lastRaise: config.BigBlind,
		carryPots: config.Pots,
		logger:    logger,
	}

	for i, seat := range seats {
		if seat.Stack.IsNegative() || seat.Posted.IsNegative() {
			return nil, pokererr.New(pokererr.InvalidState, "player %d has a negative stack or posted amount", seat.PlayerID)
		}

		if seat.Stack.IsZero() && seat.Posted.IsZero() {
			return nil, pokererr.New(pokererr.InvalidState, "player %d has no chips in play", seat.PlayerID)
		}

		if _, ok := r.index[seat.PlayerID]; ok {
			return nil, pokererr.New(pokererr.SeatOccupied, "player %d is seated more than once", seat.PlayerID)
		}

		ps := &PlayerState{
			PlayerID:  seat.PlayerID,
			Stack:     seat.Stack,
			Committed: seat.Posted,
		}

		// posting the blind may have put the player all-in
		if ps.Stack.IsZero() {
			ps.IsAllIn = true
		} else {
			ps.needsToAct = true
		}

		r.betLevel = chip.Max(r.betLevel, ps.Committed)
		r.players[i] = ps
		r.index[ps.PlayerID] = i
	}

	r.advanceFrom(config.FirstToAct - 1)

	logger.WithFields(logrus.Fields{
		"round":    r.id,
		"players":  len(seats),
		"betLevel": r.betLevel,
	}).Debug("betting round started")

	return r, nil
}
