package betting

import (
	"holdem-engine/pkg/chip"
	"holdem-engine/pkg/poker/action"
	"holdem-engine/pkg/poker/pokererr"
)

// Option is an available action with its legal amount bounds. Min and Max
// are zero for actions that carry no amount. For a bet or raise they are the
// total commitment level the player may move to; for a call they are the
// additional chips required.
type Option struct {
	Type action.Type `json:"type"`
	Min  chip.Amount `json:"min,omitempty"`
	Max  chip.Amount `json:"max,omitempty"`
}

// AvailableActions returns the set of actions the player could legally take
// on their turn. The result is computed as if it were the player's turn, so
// a UI can show upcoming options; turn order is only enforced by
// ValidateAction. A folded or all-in player has no available actions.
func (r *Round) AvailableActions(playerID int64) ([]Option, error) {
	p := r.player(playerID)
	if p == nil {
		return nil, pokererr.New(pokererr.PlayerNotFound, "no player with id %d", playerID)
	}

	options := make([]Option, 0, 5)
	if r.complete || !p.canAct() {
		return options, nil
	}

	toCall := r.betLevel - p.Committed
	maxTotal := p.Committed + p.Stack

	if toCall.IsZero() {
		options = append(options, Option{Type: action.Check})
	} else {
		options = append(options, Option{
			Type: action.Call,
			Min:  chip.Min(toCall, p.Stack),
			Max:  chip.Min(toCall, p.Stack),
		})
	}

	if r.betLevel.IsZero() {
		options = append(options, Option{
			Type: action.Bet,
			Min:  chip.Min(r.minBet, p.Stack),
			Max:  p.Stack,
		})
	} else if maxTotal.GreaterThan(r.betLevel) {
		options = append(options, Option{
			Type: action.Raise,
			Min:  chip.Min(r.betLevel+r.lastRaise, maxTotal),
			Max:  maxTotal,
		})
	}

	options = append(options, Option{
		Type: action.AllIn,
		Min:  p.Stack,
		Max:  p.Stack,
	})

	return append(options, Option{Type: action.Fold}), nil
}

// ValidateAction validates a proposed action against the round state and
// returns the normalized action: a call's amount is resolved to the exact
// chips needed, and any action committing the player's entire stack is
// flagged all-in. The round is never mutated.
func (r *Round) ValidateAction(act action.Action) (action.Action, error) {
	p := r.player(act.PlayerID)
	if p == nil {
		return action.Action{}, pokererr.New(pokererr.PlayerNotFound, "no player with id %d", act.PlayerID)
	}

	if r.complete {
		return action.Action{}, pokererr.New(pokererr.InvalidAction, "the betting round is over")
	}

	inTurn := r.inTurnPlayer()
	if inTurn.PlayerID != act.PlayerID {
		return action.Action{}, pokererr.New(pokererr.NotPlayerTurn, "it is not your turn")
	}

	if !act.Type.IsValid() {
		return action.Action{}, pokererr.New(pokererr.InvalidAction, "unknown action")
	}

	toCall := r.betLevel - p.Committed
	maxTotal := p.Committed + p.Stack

	switch act.Type {
	case action.Fold:
		return action.NewFold(p.PlayerID), nil

	case action.Check:
		if !toCall.IsZero() {
			return action.Action{}, pokererr.New(pokererr.InvalidAction, "you cannot check with an active bet")
		}

		return action.NewCheck(p.PlayerID), nil

	case action.Call:
		if toCall.IsZero() {
			return action.Action{}, pokererr.New(pokererr.InvalidAction, "you cannot call without an active bet")
		}

		return r.normalizeCall(p), nil

	case action.Bet:
		return r.validateBet(p, act.Amount)

	case action.Raise:
		return r.validateRaise(p, act.Amount)

	case action.AllIn:
		// reclassify as the underlying bet, raise, or call
		if r.betLevel.IsZero() {
			return r.validateBet(p, p.Stack)
		}

		if maxTotal.GreaterThan(r.betLevel) {
			return r.validateRaise(p, maxTotal)
		}

		return r.normalizeCall(p), nil
	}

	return action.Action{}, pokererr.New(pokererr.InvalidAction, "unknown action")
}

// normalizeCall resolves a call to the exact chips needed, clipped to the
// player's stack and reclassified as all-in if it exhausts it
func (r *Round) normalizeCall(p *PlayerState) action.Action {
	amount := chip.Min(r.betLevel-p.Committed, p.Stack)

	act := action.NewCall(p.PlayerID)
	act.Amount = amount
	act.AllIn = amount == p.Stack

	return act
}

// validateBet checks an opening bet. The amount is the total commitment
// level; a bet below the minimum is legal only if it is the player's entire
// stack.
func (r *Round) validateBet(p *PlayerState, amount chip.Amount) (action.Action, error) {
	if !r.betLevel.IsZero() {
		return action.Action{}, pokererr.New(pokererr.InvalidAction, "there is already a bet; raise instead")
	}

	if amount.GreaterThan(p.Stack) {
		return action.Action{}, pokererr.New(pokererr.InsufficientStack, "bet of ${%d} exceeds your stack of ${%d}", amount, p.Stack)
	}

	if amount.IsZero() || amount.IsNegative() {
		return action.Action{}, pokererr.New(pokererr.InvalidBetAmount, "bet must be greater than zero")
	}

	if amount.LessThan(r.minBet) && amount != p.Stack {
		return action.Action{}, pokererr.New(pokererr.InvalidBetAmount, "bet must be at least ${%d}", r.minBet)
	}

	act := action.NewBet(p.PlayerID, amount)
	act.AllIn = amount == p.Stack

	return act, nil
}

// validateRaise checks a raise to the given total commitment level. The
// minimum legal raise is the bet level plus the last full raise; raising
// less is legal only when it puts the player all-in.
func (r *Round) validateRaise(p *PlayerState, amount chip.Amount) (action.Action, error) {
	if r.betLevel.IsZero() {
		return action.Action{}, pokererr.New(pokererr.InvalidAction, "there is no bet to raise; bet instead")
	}

	maxTotal := p.Committed + p.Stack
	if amount.GreaterThan(maxTotal) {
		return action.Action{}, pokererr.New(pokererr.InsufficientStack, "raise to ${%d} exceeds your ${%d} in play", amount, maxTotal)
	}

	if !amount.GreaterThan(r.betLevel) {
		return action.Action{}, pokererr.New(pokererr.InvalidRaiseAmount, "raise of ${%d} must be greater than the current bet of ${%d}", amount, r.betLevel)
	}

	if amount.LessThan(r.betLevel+r.lastRaise) && amount != maxTotal {
		return action.Action{}, pokererr.New(pokererr.InvalidRaiseAmount, "raise must be to at least ${%d}", r.betLevel+r.lastRaise)
	}

	act := action.NewRaise(p.PlayerID, amount)
	act.AllIn = amount == maxTotal

	return act, nil
}
