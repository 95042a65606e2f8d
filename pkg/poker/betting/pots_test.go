package betting

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"holdem-engine/pkg/chip"
	"holdem-engine/pkg/poker/action"
)

func TestPots_Total(t *testing.T) {
	a := assert.New(t)

	a.Equal(chip.Amount(0), Pots{}.Total())

	pots := Pots{
		{Amount: 100, Eligible: []int64{1, 2}},
		{Amount: 50, Eligible: []int64{1}},
	}
	a.Equal(chip.Amount(150), pots.Total())
}

func TestPots_clone(t *testing.T) {
	a := assert.New(t)

	pots := Pots{{Amount: 100, Eligible: []int64{1, 2}}}
	cloned := pots.clone()
	cloned[0].Amount = 0
	cloned[0].Eligible[0] = 99

	a.Equal(chip.Amount(100), pots[0].Amount)
	a.Equal(int64(1), pots[0].Eligible[0])

	a.Nil(Pots(nil).clone())
}

func TestPot_MarshalJSON(t *testing.T) {
	a := assert.New(t)

	data, err := json.Marshal(Pot{Amount: 75, Eligible: []int64{2, 4}})
	a.NoError(err)
	a.JSONEq(`{"amount":75,"eligible":[2,4]}`, string(data))
}

// layered all-ins build one pot per commitment level, mirroring a classic
// multi-way all-in hand
func TestFinalizePots_layeredAllIns(t *testing.T) {
	a := assert.New(t)

	round := startRound(t, 0, 5,
		seat(1, 5, 0),
		seat(2, 15, 0),
		seat(3, 10, 0),
		seat(4, 20, 0),
	)

	round = applyOK(t, round, action.NewAllIn(1)) // bet 5
	round = applyOK(t, round, action.NewRaise(2, 10))
	round = applyOK(t, round, action.NewAllIn(3)) // call 10
	round = applyOK(t, round, action.NewRaise(4, 15))
	round = applyOK(t, round, action.NewAllIn(2)) // call to 15

	a.True(round.IsComplete())

	pots := round.Pots()
	a.Equal(3, len(pots))

	a.Equal(chip.Amount(20), pots[0].Amount)
	a.Equal([]int64{1, 2, 3, 4}, pots[0].Eligible)

	a.Equal(chip.Amount(15), pots[1].Amount)
	a.Equal([]int64{2, 3, 4}, pots[1].Eligible)

	a.Equal(chip.Amount(10), pots[2].Amount)
	a.Equal([]int64{2, 4}, pots[2].Eligible)
}

// a folded player's chips stay in the pot, but the player is never eligible
func TestFinalizePots_foldedContribution(t *testing.T) {
	a := assert.New(t)

	round := startRound(t, 0, 20, seat(1, 1000, 0), seat(2, 1000, 0), seat(3, 1000, 0))

	round = applyOK(t, round, action.NewBet(1, 100))
	round = applyOK(t, round, action.NewRaise(2, 300))
	round = applyOK(t, round, action.NewFold(3))
	round = applyOK(t, round, action.NewCall(1))

	a.True(round.IsComplete())

	pots := round.Pots()
	a.Equal(1, len(pots))
	a.Equal(chip.Amount(600), pots[0].Amount)
	a.Equal([]int64{1, 2}, pots[0].Eligible)
}

// side pots are only partitioned when the round completes; before that the
// snapshot reports a single aggregate pot
func TestPots_finalizedAtCompletionOnly(t *testing.T) {
	a := assert.New(t)

	round := startRound(t, 0, 20, seat(1, 1000, 0), seat(2, 40, 0), seat(3, 1000, 0))

	round = applyOK(t, round, action.NewBet(1, 100))
	round = applyOK(t, round, action.NewAllIn(2))

	pots := round.Pots()
	a.Equal(1, len(pots), "no side pots before completion")
	a.Equal(chip.Amount(140), pots[0].Amount)

	round = applyOK(t, round, action.NewCall(3))
	a.True(round.IsComplete())

	pots = round.Pots()
	a.Equal(2, len(pots))
	a.Equal(chip.Amount(120), pots[0].Amount)
	a.Equal([]int64{1, 2, 3}, pots[0].Eligible)
	a.Equal(chip.Amount(120), pots[1].Amount)
	a.Equal([]int64{1, 3}, pots[1].Eligible)
}
