package betting

import "holdem-engine/pkg/chip"

// Info is a read-only projection of the round for UIs and driving logic
type Info struct {
	RoundID  string      `json:"roundId"`
	Complete bool        `json:"complete"`
	BetLevel chip.Amount `json:"betLevel"`

	// MinRaise is the minimum legal raise increment above the bet level
	MinRaise chip.Amount `json:"minRaise"`

	PotTotal chip.Amount `json:"potTotal"`
	Pots     Pots        `json:"pots"`

	// CurrentTurn is the player to act, or zero when the round is complete
	CurrentTurn int64 `json:"currentTurn"`

	Players []PlayerInfo `json:"players"`
}

// PlayerInfo is a per-player view within an Info snapshot
type PlayerInfo struct {
	PlayerID  int64       `json:"playerId"`
	Stack     chip.Amount `json:"stack"`
	Committed chip.Amount `json:"committed"`
	Folded    bool        `json:"folded"`
	AllIn     bool        `json:"allIn"`
	ToAct     bool        `json:"toAct"`
}

// Info returns a snapshot of the round. Repeated calls without an
// intervening Apply return identical values and never mutate state.
func (r *Round) Info() *Info {
	players := make([]PlayerInfo, len(r.players))
	var currentTurn int64
	for i, p := range r.players {
		players[i] = PlayerInfo{
			PlayerID:  p.PlayerID,
			Stack:     p.Stack,
			Committed: p.Committed,
			Folded:    p.HasFolded,
			AllIn:     p.IsAllIn,
			ToAct:     i == r.toAct,
		}

		if i == r.toAct {
			currentTurn = p.PlayerID
		}
	}

	pots := r.Pots()

	return &Info{
		RoundID:     r.id,
		Complete:    r.complete,
		BetLevel:    r.betLevel,
		MinRaise:    r.lastRaise,
		PotTotal:    pots.Total(),
		Pots:        pots,
		CurrentTurn: currentTurn,
		Players:     players,
	}
}
