package betting

import (
	"encoding/json"
	"sort"

	"holdem-engine/pkg/chip"
)

// Pot is a main or side pot. Eligible lists the players who can win it; a
// player all-in below another player's commitment is excluded from the side
// pot built from the excess.
type Pot struct {
	Amount   chip.Amount
	Eligible []int64
}

type potJSON struct {
	Amount   chip.Amount `json:"amount"`
	Eligible []int64     `json:"eligible"`
}

// MarshalJSON provides custom marshalling
func (p Pot) MarshalJSON() ([]byte, error) {
	return json.Marshal(potJSON{
		Amount:   p.Amount,
		Eligible: p.Eligible,
	})
}

func (p *Pot) clone() *Pot {
	eligible := make([]int64, len(p.Eligible))
	copy(eligible, p.Eligible)

	return &Pot{
		Amount:   p.Amount,
		Eligible: eligible,
	}
}

// Pots is an ordered collection of pots, main pot first
type Pots []*Pot

// Total returns the combined total of all pots
func (p Pots) Total() chip.Amount {
	total := chip.Amount(0)
	for _, pot := range p {
		total += pot.Amount
	}

	return total
}

func (p Pots) clone() Pots {
	if p == nil {
		return nil
	}

	pots := make(Pots, len(p))
	for i, pot := range p {
		pots[i] = pot.clone()
	}

	return pots
}

// finalizePots partitions the street's contributions by all-in commitment
// levels. It runs once, when the round completes, so late folds and all-ins
// cannot invalidate earlier partitions. Folded players' chips stay in the
// pots they contributed to, but folded players are never eligible.
func (r *Round) finalizePots() Pots {
	pots := r.carryPots.clone()

	// every distinct live commitment level caps a pot; in ordinary play
	// the non-all-in players share a single top level, and each shorter
	// all-in adds a boundary below it
	levelSet := make(map[chip.Amount]bool)
	for _, p := range r.players {
		if p.HasFolded || p.Committed.IsZero() {
			continue
		}

		levelSet[p.Committed] = true
	}

	if len(levelSet) == 0 {
		return pots
	}

	levels := make([]chip.Amount, 0, len(levelSet))
	for level := range levelSet {
		levels = append(levels, level)
	}
	sort.Slice(levels, func(i, j int) bool { return levels[i] < levels[j] })

	prev := chip.Amount(0)
	for _, level := range levels {
		amount := chip.Amount(0)
		for _, p := range r.players {
			contribution := chip.Min(p.Committed, level)
			if contribution.GreaterThan(prev) {
				amount += contribution - prev
			}
		}

		eligible := make([]int64, 0, len(r.players))
		for _, p := range r.players {
			if !p.HasFolded && !p.Committed.LessThan(level) {
				eligible = append(eligible, p.PlayerID)
			}
		}

		pots = append(pots, &Pot{
			Amount:   amount,
			Eligible: eligible,
		})
		prev = level
	}

	return pots
}
