package betting

import (
	"github.com/sirupsen/logrus"

	"holdem-engine/pkg/chip"
	"holdem-engine/pkg/poker/action"
	"holdem-engine/pkg/poker/pokererr"
)

// Apply validates act against the round, applies it, and returns the
// resulting round. The receiver is never mutated; a rejected action returns
// an error and the caller's state remains usable as-is.
func (r *Round) Apply(act action.Action) (*Round, error) {
	normalized, err := r.ValidateAction(act)
	if err != nil {
		return nil, err
	}

	next := r.clone()
	if err := next.apply(normalized); err != nil {
		return nil, err
	}

	next.logger.WithFields(logrus.Fields{
		"round":    next.id,
		"player":   normalized.PlayerID,
		"action":   string(normalized.Type),
		"betLevel": next.betLevel,
	}).Debugf("player %s", normalized.LogMessage())

	return next, nil
}

func (r *Round) apply(act action.Action) error {
	actorIndex := r.toAct
	p := r.players[actorIndex]

	switch act.Type {
	case action.Fold:
		p.HasFolded = true
		p.needsToAct = false

	case action.Check:
		p.needsToAct = false

	case action.Call:
		if err := p.commit(act.Amount); err != nil {
			return pokererr.New(pokererr.InternalError, "%s", err)
		}

		p.needsToAct = false

	case action.Bet, action.Raise:
		if err := r.applyBetOrRaise(p, act.Amount); err != nil {
			return err
		}

	default:
		return pokererr.New(pokererr.InvalidAction, "cannot apply action %s", act.Type)
	}

	if r.liveCount() <= 1 {
		// hand decided without further betting
		r.finish()
		return nil
	}

	r.advanceFrom(actorIndex)
	return nil
}

// applyBetOrRaise moves the actor to the new total commitment level. A full
// raise (increment of at least the last full raise) reopens the action for
// every other live player; a short all-in raise increases the bet level
// without reopening players who already acted.
func (r *Round) applyBetOrRaise(p *PlayerState, newLevel chip.Amount) error {
	raised := newLevel - r.betLevel

	if err := p.commit(newLevel - p.Committed); err != nil {
		return pokererr.New(pokererr.InternalError, "%s", err)
	}
	p.needsToAct = false

	if !raised.LessThan(r.lastRaise) {
		r.lastRaise = raised
		for _, other := range r.players {
			if other != p && other.canAct() {
				other.needsToAct = true
			}
		}
	}

	r.betLevel = newLevel
	return nil
}
