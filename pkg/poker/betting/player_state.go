package betting

import "holdem-engine/pkg/chip"

// PlayerState tracks one player's progress through the street
type PlayerState struct {
	PlayerID  int64
	Stack     chip.Amount
	Committed chip.Amount
	HasFolded bool
	IsAllIn   bool

	// needsToAct is true until the player has acted since the last change
	// to the bet level
	needsToAct bool
}

// canAct returns true if the player can check, call, bet, raise, or fold
func (p *PlayerState) canAct() bool {
	return !p.HasFolded && !p.IsAllIn
}

func (p *PlayerState) clone() *PlayerState {
	tmp := *p
	return &tmp
}

// commit moves amount from the player's stack to their committed total.
// A player whose stack hits zero is all-in and removed from the acting set.
func (p *PlayerState) commit(amount chip.Amount) error {
	stack, err := p.Stack.Sub(amount)
	if err != nil {
		return err
	}

	committed, err := p.Committed.Add(amount)
	if err != nil {
		return err
	}

	p.Stack = stack
	p.Committed = committed

	if p.Stack.IsZero() {
		p.IsAllIn = true
		p.needsToAct = false
	}

	return nil
}
