package betting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"holdem-engine/pkg/chip"
	"holdem-engine/pkg/poker/action"
	"holdem-engine/pkg/poker/pokererr"
)

func optionTypes(options []Option) []action.Type {
	types := make([]action.Type, len(options))
	for i, opt := range options {
		types[i] = opt.Type
	}

	return types
}

func findOption(t *testing.T, options []Option, at action.Type) Option {
	t.Helper()

	for _, opt := range options {
		if opt.Type == at {
			return opt
		}
	}

	t.Fatalf("option %s not found", at)
	return Option{}
}

func TestAvailableActions_unknownPlayer(t *testing.T) {
	round := preflopRound(t)

	_, err := round.AvailableActions(99)
	assert.Equal(t, pokererr.PlayerNotFound, pokererr.CodeOf(err))
}

func TestAvailableActions_noBet(t *testing.T) {
	a := assert.New(t)
	round := startRound(t, 0, 20, seat(1, 1000, 0), seat(2, 1000, 0))

	options, err := round.AvailableActions(1)
	a.NoError(err)
	a.Equal([]action.Type{action.Check, action.Bet, action.AllIn, action.Fold}, optionTypes(options))

	bet := findOption(t, options, action.Bet)
	a.Equal(chip.Amount(20), bet.Min)
	a.Equal(chip.Amount(1000), bet.Max)
}

func TestAvailableActions_facingBet(t *testing.T) {
	a := assert.New(t)
	round := preflopRound(t)

	options, err := round.AvailableActions(3)
	a.NoError(err)
	a.Equal([]action.Type{action.Call, action.Raise, action.AllIn, action.Fold}, optionTypes(options))

	call := findOption(t, options, action.Call)
	a.Equal(chip.Amount(20), call.Min)
	a.Equal(chip.Amount(20), call.Max)

	raise := findOption(t, options, action.Raise)
	a.Equal(chip.Amount(40), raise.Min, "bet level plus the big blind")
	a.Equal(chip.Amount(1000), raise.Max)
}

func TestAvailableActions_matchedBet(t *testing.T) {
	a := assert.New(t)
	round := preflopRound(t)

	// the big blind already matches the level: check or raise
	options, err := round.AvailableActions(2)
	a.NoError(err)
	a.Equal([]action.Type{action.Check, action.Raise, action.AllIn, action.Fold}, optionTypes(options))
}

func TestAvailableActions_degenerateCall(t *testing.T) {
	a := assert.New(t)
	round := startRound(t, 0, 20, seat(1, 1000, 0), seat(2, 15, 0), seat(3, 1000, 0))
	round = applyOK(t, round, action.NewBet(1, 50))

	// player 2 cannot cover the bet: the only call is an all-in for 15
	options, err := round.AvailableActions(2)
	a.NoError(err)
	a.Equal([]action.Type{action.Call, action.AllIn, action.Fold}, optionTypes(options))

	call := findOption(t, options, action.Call)
	a.Equal(chip.Amount(15), call.Min)
	a.Equal(chip.Amount(15), call.Max)
}

func TestAvailableActions_foldedAndAllIn(t *testing.T) {
	a := assert.New(t)
	round := startRound(t, 0, 20, seat(1, 1000, 0), seat(2, 50, 0), seat(3, 1000, 0))

	round = applyOK(t, round, action.NewBet(1, 100))
	round = applyOK(t, round, action.NewAllIn(2))
	round = applyOK(t, round, action.NewFold(3))

	options, err := round.AvailableActions(2)
	a.NoError(err)
	a.Empty(options, "an all-in player has no actions")

	options, err = round.AvailableActions(3)
	a.NoError(err)
	a.Empty(options, "a folded player has no actions")
}

// legality is reported for any player so a UI can show upcoming options;
// only ValidateAction enforces the turn
func TestAvailableActions_outOfTurn(t *testing.T) {
	a := assert.New(t)
	round := preflopRound(t)

	options, err := round.AvailableActions(1)
	a.NoError(err)
	a.NotEmpty(options)

	_, err = round.ValidateAction(action.NewFold(1))
	a.Equal(pokererr.NotPlayerTurn, pokererr.CodeOf(err))
}

func TestValidateAction_allInReclassification(t *testing.T) {
	a := assert.New(t)

	// no bet: an all-in is an opening bet
	round := startRound(t, 0, 20, seat(1, 1000, 0), seat(2, 1000, 0))
	normalized, err := round.ValidateAction(action.NewAllIn(1))
	a.NoError(err)
	a.Equal(action.Bet, normalized.Type)
	a.Equal(chip.Amount(1000), normalized.Amount)
	a.True(normalized.AllIn)

	// above the bet level: an all-in is a raise
	round = applyOK(t, round, action.NewBet(1, 100))
	normalized, err = round.ValidateAction(action.NewAllIn(2))
	a.NoError(err)
	a.Equal(action.Raise, normalized.Type)
	a.Equal(chip.Amount(1000), normalized.Amount)

	// unable to cover the bet: an all-in is a call
	round = startRound(t, 0, 20, seat(1, 1000, 0), seat(2, 60, 0))
	round = applyOK(t, round, action.NewBet(1, 100))
	normalized, err = round.ValidateAction(action.NewAllIn(2))
	a.NoError(err)
	a.Equal(action.Call, normalized.Type)
	a.Equal(chip.Amount(60), normalized.Amount)
	a.True(normalized.AllIn)
}

func TestValidateAction_ignoresAmountOnFoldAndCheck(t *testing.T) {
	a := assert.New(t)
	round := startRound(t, 0, 20, seat(1, 1000, 0), seat(2, 1000, 0))

	normalized, err := round.ValidateAction(action.Action{PlayerID: 1, Type: action.Check, Amount: 500})
	a.NoError(err)
	a.True(normalized.Amount.IsZero())

	normalized, err = round.ValidateAction(action.Action{PlayerID: 1, Type: action.Fold, Amount: 500})
	a.NoError(err)
	a.True(normalized.Amount.IsZero())
}

func TestValidateAction_unknownType(t *testing.T) {
	round := startRound(t, 0, 20, seat(1, 1000, 0), seat(2, 1000, 0))

	_, err := round.ValidateAction(action.Action{PlayerID: 1, Type: action.Type("discard")})
	assert.Equal(t, pokererr.InvalidAction, pokererr.CodeOf(err))
}
