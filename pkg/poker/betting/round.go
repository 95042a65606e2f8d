package betting

import (
	"github.com/sirupsen/logrus"

	"holdem-engine/pkg/chip"
)

// Round is the state of one street's betting. Values are immutable through
// the public API: Apply returns a new Round and leaves the receiver alone.
type Round struct {
	id      string
	players []*PlayerState
	index   map[int64]int

	// toAct is the index of the player making a decision, or -1 when the
	// round is complete
	toAct int

	// betLevel is the highest amount any player has committed this street
	betLevel chip.Amount

	// lastRaise is the size of the last full raise, used to compute the
	// minimum legal raise. Starts at the big blind.
	lastRaise chip.Amount

	bigBlind chip.Amount
	minBet   chip.Amount

	carryPots Pots
	pots      Pots
	complete  bool

	logger logrus.FieldLogger
}

// ID returns the round's unique identifier, suitable for audit logging
func (r *Round) ID() string {
	return r.id
}

// IsComplete returns true when no further action is possible: either at most
// one non-folded player remains, or every live player has matched the bet
// level or is all-in
func (r *Round) IsComplete() bool {
	return r.complete
}

// Pots returns the finalized pots. Before the round completes this is the
// carried pots plus a single aggregate pot of the street's contributions;
// side pots are only partitioned once the round is complete.
func (r *Round) Pots() Pots {
	if r.complete {
		return r.pots.clone()
	}

	pots := r.carryPots.clone()
	street := chip.Amount(0)
	for _, p := range r.players {
		street += p.Committed
	}

	if !street.IsZero() {
		pots = append(pots, &Pot{
			Amount:   street,
			Eligible: r.livePlayerIDs(),
		})
	}

	return pots
}

func (r *Round) player(playerID int64) *PlayerState {
	i, ok := r.index[playerID]
	if !ok {
		return nil
	}

	return r.players[i]
}

// inTurnPlayer returns the player making a decision, or nil if the round
// is complete
func (r *Round) inTurnPlayer() *PlayerState {
	if r.toAct < 0 {
		return nil
	}

	return r.players[r.toAct]
}

func (r *Round) liveCount() int {
	count := 0
	for _, p := range r.players {
		if !p.HasFolded {
			count++
		}
	}

	return count
}

func (r *Round) livePlayerIDs() []int64 {
	ids := make([]int64, 0, len(r.players))
	for _, p := range r.players {
		if !p.HasFolded {
			ids = append(ids, p.PlayerID)
		}
	}

	return ids
}

// advanceFrom moves the action to the next player after index from, in table
// order, who still needs to act. If no player remains, the round completes
// and side pots are finalized.
func (r *Round) advanceFrom(from int) {
	n := len(r.players)
	for i := 1; i <= n; i++ {
		index := ((from+i)%n + n) % n
		p := r.players[index]
		if p.canAct() && p.needsToAct {
			r.toAct = index
			return
		}
	}

	r.finish()
}

// finish transitions the round to complete and partitions the street's
// contributions into pots from the full commitment ledger
func (r *Round) finish() {
	r.toAct = -1
	r.complete = true
	for _, p := range r.players {
		p.needsToAct = false
	}

	r.pots = r.finalizePots()
}

func (r *Round) clone() *Round {
	players := make([]*PlayerState, len(r.players))
	for i, p := range r.players {
		players[i] = p.clone()
	}

	index := make(map[int64]int, len(r.index))
	for id, i := range r.index {
		index[id] = i
	}

	tmp := *r
	tmp.players = players
	tmp.index = index
	tmp.carryPots = r.carryPots.clone()
	tmp.pots = r.pots.clone()

	return &tmp
}
