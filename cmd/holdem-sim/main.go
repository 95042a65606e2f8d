// Command holdem-sim drives the betting engine through a simulated hand,
// playing randomly chosen legal actions and verifying chip conservation
// after every transition. It demonstrates the host responsibilities the
// engine leaves to its caller: seat ordering, blind posting, and serialized
// action submission.
package main

import (
	"flag"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"holdem-engine/internal/config"
	"holdem-engine/internal/rng"
	"holdem-engine/pkg/chip"
	"holdem-engine/pkg/poker/action"
	"holdem-engine/pkg/poker/betting"
)

var players = flag.Int("players", 4, "number of players at the table")
var hands = flag.Int("hands", 1, "number of hands to simulate")

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()

	var gen rng.Generator = rng.Crypto{}
	if cfg.Seed != 0 {
		gen = rng.NewSeeded(cfg.Seed)
	}

	if *players < 2 {
		logrus.Fatal("need at least two players")
	}

	for hand := 0; hand < *hands; hand++ {
		simulateHand(cfg, gen, hand)
	}
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}

func simulateHand(cfg config.Config, gen rng.Generator, hand int) {
	logger := logrus.WithField("hand", hand)

	stacks := make(map[int64]chip.Amount, *players)
	order := make([]int64, *players)
	for i := range order {
		id := int64(i + 1)
		order[i] = id
		stacks[id] = chip.Amount(cfg.StartingStack)
	}

	bankroll := chip.Amount(cfg.StartingStack) * chip.Amount(*players)

	var pots betting.Pots
	for street := 0; street < 4; street++ {
		seats := make([]betting.Seat, 0, len(order))
		for _, id := range order {
			if stacks[id].IsZero() {
				continue
			}

			seat := betting.Seat{PlayerID: id, Stack: stacks[id]}
			if street == 0 {
				// blinds from the first two live seats
				if len(seats) == 0 {
					seat.Posted = chip.Min(chip.Amount(cfg.SmallBlind), seat.Stack)
				} else if len(seats) == 1 {
					seat.Posted = chip.Min(chip.Amount(cfg.BigBlind), seat.Stack)
				}
				seat.Stack -= seat.Posted
			}

			seats = append(seats, seat)
		}

		if len(seats) < 2 {
			break
		}

		firstToAct := 0
		if street == 0 && len(seats) > 2 {
			firstToAct = 2 // left of the big blind
		}

		round, err := betting.StartBettingRound(seats, betting.Config{
			BigBlind:   chip.Amount(cfg.BigBlind),
			FirstToAct: firstToAct,
			Pots:       pots,
			Logger:     logger,
		})
		if err != nil {
			logger.WithError(err).Fatal("could not start betting round")
		}

		round = playRound(logger.WithField("street", street), round, gen)

		info := round.Info()
		for _, p := range info.Players {
			stacks[p.PlayerID] = p.Stack
		}
		pots = info.Pots

		total := pots.Total()
		for _, stack := range stacks {
			total += stack
		}
		if total != bankroll {
			logger.WithFields(logrus.Fields{
				"street":   street,
				"expected": bankroll,
				"actual":   total,
			}).Fatal("chip conservation violated")
		}

		// folded players keep their stacks but leave the hand; all-in
		// players stay eligible and are skipped next street by their
		// zero stack
		order = filterLive(order, info)

		if len(order) < 2 {
			break
		}
	}

	logger.WithField("pot", pots.Total()).Info("hand complete; pots ready for showdown")
	for _, pot := range pots {
		logger.WithFields(logrus.Fields{
			"amount":   pot.Amount,
			"eligible": pot.Eligible,
		}).Info("pot")
	}
}

// playRound submits random legal actions until the round completes
func playRound(logger logrus.FieldLogger, round *betting.Round, gen rng.Generator) *betting.Round {
	for !round.IsComplete() {
		info := round.Info()
		act, err := randomAction(round, info.CurrentTurn, gen)
		if err != nil {
			logger.WithError(err).Fatal("could not pick an action")
		}

		next, err := round.Apply(act)
		if err != nil {
			logger.WithError(err).WithField("action", act.Type).Fatal("engine rejected a generated action")
		}

		round = next
	}

	return round
}

func randomAction(round *betting.Round, playerID int64, gen rng.Generator) (action.Action, error) {
	options, err := round.AvailableActions(playerID)
	if err != nil {
		return action.Action{}, err
	}

	i, err := gen.Intn(len(options))
	if err != nil {
		return action.Action{}, err
	}

	opt := options[i]
	switch opt.Type {
	case action.Fold:
		return action.NewFold(playerID), nil
	case action.Check:
		return action.NewCheck(playerID), nil
	case action.Call:
		return action.NewCall(playerID), nil
	case action.AllIn:
		return action.NewAllIn(playerID), nil
	case action.Bet, action.Raise:
		span := int(opt.Max - opt.Min)
		offset := 0
		if span > 0 {
			offset, err = gen.Intn(span + 1)
			if err != nil {
				return action.Action{}, err
			}
		}

		amount := opt.Min + chip.Amount(offset)
		if opt.Type == action.Bet {
			return action.NewBet(playerID, amount), nil
		}

		return action.NewRaise(playerID, amount), nil
	}

	return action.Action{}, nil
}

func filterLive(order []int64, info *betting.Info) []int64 {
	live := make([]int64, 0, len(order))
	for _, p := range info.Players {
		if !p.Folded {
			live = append(live, p.PlayerID)
		}
	}

	return live
}
