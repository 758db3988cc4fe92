package provider

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/cardroom/holdemgen/internal/game"
)

// Personality chooses actions by weighting the legal options with the
// profile's traits: raising is preferred over calling over checking over
// folding, perceived hand strength shifts the weights, and the bluff
// tendency occasionally inflates a weak hand. Preflop folds are suppressed
// so hands tend to reach a board.
type Personality struct {
	profile Profile
	rng     *rand.Rand
}

// NewPersonality builds a provider for a named profile.
func NewPersonality(name string, rng *rand.Rand) (*Personality, error) {
	profile, ok := Profiles[name]
	if !ok {
		return nil, fmt.Errorf("provider: unknown personality %q", name)
	}
	return &Personality{profile: profile, rng: rng}, nil
}

func (p *Personality) Decide(_ context.Context, sg game.SubGame) (game.Action, error) {
	legal := append([]game.ActionKind(nil), sg.Legal...)

	// Perception of hand strength, not a real equity calculation. The
	// draw comes from the seat's own RNG stream so it is reproducible.
	strength := p.rng.Float64()

	if sg.Street == game.Preflop {
		if strength < 0.4 {
			strength = 0.4
		}
		if len(legal) > 1 {
			legal = removeKind(legal, game.Fold)
		}
	}

	if p.rng.Float64() < p.profile.Traits["bluff_tendency"] {
		strength = min(1.0, strength+0.3)
	}

	weights := make([]float64, len(legal))
	for i, kind := range legal {
		switch kind {
		case game.Raise, game.Bet:
			weights[i] = 3.0
		case game.Call:
			weights[i] = 2.0
		case game.Check:
			weights[i] = 1.5
		default:
			weights[i] = 1.0
		}
		if strength > 0.7 && (kind == game.Raise || kind == game.Bet) {
			weights[i] *= 2.0
		}
		if strength < 0.3 && (kind == game.Check || kind == game.Fold) {
			weights[i] *= 1.5
		}
	}

	kind := legal[weightedIndex(p.rng, weights)]
	act := game.Action{Kind: kind}
	if kind == game.Raise || kind == game.Bet {
		act.Amount = p.raiseTo(sg)
	}
	return act, nil
}

// raiseTo sizes a raise between the minimum and a pot-sized raise, scaled
// by aggression. The hand clamps anything over the stack to an all-in.
func (p *Personality) raiseTo(sg game.SubGame) int {
	to := sg.MinRaiseTo
	extra := int(p.profile.Traits["aggression"] * float64(sg.Pot) * p.rng.Float64())
	return to + extra
}

func removeKind(kinds []game.ActionKind, kind game.ActionKind) []game.ActionKind {
	out := kinds[:0]
	for _, k := range kinds {
		if k != kind {
			out = append(out, k)
		}
	}
	return out
}

func weightedIndex(rng *rand.Rand, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	x := rng.Float64() * total
	for i, w := range weights {
		x -= w
		if x < 0 {
			return i
		}
	}
	return len(weights) - 1
}

// Random picks uniformly among the legal actions, raising the minimum.
type Random struct {
	rng *rand.Rand
}

func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

func (r *Random) Decide(_ context.Context, sg game.SubGame) (game.Action, error) {
	kind := sg.Legal[r.rng.IntN(len(sg.Legal))]
	act := game.Action{Kind: kind}
	if kind == game.Raise || kind == game.Bet {
		act.Amount = sg.MinRaiseTo
	}
	return act, nil
}

// Caller always calls, checking when there is nothing to call. Useful as a
// baseline opponent and in tests.
type Caller struct{}

func (Caller) Decide(_ context.Context, sg game.SubGame) (game.Action, error) {
	if sg.ToCall > 0 {
		return game.Action{Kind: game.Call}, nil
	}
	return game.Action{Kind: game.Check}, nil
}

// Scripted replays a fixed action sequence, then calls/checks once the
// script runs out. Test use.
type Scripted struct {
	actions []game.Action
	next    int
}

func NewScripted(actions ...game.Action) *Scripted {
	return &Scripted{actions: actions}
}

func (s *Scripted) Decide(_ context.Context, sg game.SubGame) (game.Action, error) {
	if s.next < len(s.actions) {
		act := s.actions[s.next]
		s.next++
		return act, nil
	}
	if sg.ToCall > 0 {
		return game.Action{Kind: game.Call}, nil
	}
	return game.Action{Kind: game.Check}, nil
}
