package provider

import (
	"context"
	"testing"

	"github.com/cardroom/holdemgen/internal/game"
	"github.com/cardroom/holdemgen/internal/randutil"
)

func facingBet() game.SubGame {
	return game.SubGame{
		Street:     game.Flop,
		ToCall:     20,
		MinRaiseTo: 40,
		Stack:      200,
		Pot:        60,
		Legal:      []game.ActionKind{game.Fold, game.Call, game.Raise},
	}
}

func unopened() game.SubGame {
	return game.SubGame{
		Street:     game.Flop,
		MinRaiseTo: 10,
		Stack:      200,
		Pot:        20,
		Legal:      []game.ActionKind{game.Check, game.Raise},
	}
}

func legalIn(sg game.SubGame, kind game.ActionKind) bool {
	for _, k := range sg.Legal {
		if k == kind {
			return true
		}
	}
	return false
}

func TestPersonalityPicksOnlyLegalActions(t *testing.T) {
	t.Parallel()

	for _, name := range ProfileNames() {
		p, err := NewPersonality(name, randutil.New(1))
		if err != nil {
			t.Fatalf("NewPersonality(%s): %v", name, err)
		}
		for i := 0; i < 200; i++ {
			for _, sg := range []game.SubGame{facingBet(), unopened()} {
				act, err := p.Decide(context.Background(), sg)
				if err != nil {
					t.Fatalf("%s: Decide: %v", name, err)
				}
				if !legalIn(sg, act.Kind) {
					t.Fatalf("%s chose illegal %s from %v", name, act.Kind, sg.Legal)
				}
				if act.Kind == game.Raise && act.Amount < sg.MinRaiseTo {
					t.Fatalf("%s raised to %d, below minimum %d", name, act.Amount, sg.MinRaiseTo)
				}
			}
		}
	}
}

func TestPersonalityAvoidsPreflopFolds(t *testing.T) {
	t.Parallel()

	p, err := NewPersonality("rock", randutil.New(7))
	if err != nil {
		t.Fatal(err)
	}
	sg := facingBet()
	sg.Street = game.Preflop

	for i := 0; i < 500; i++ {
		act, err := p.Decide(context.Background(), sg)
		if err != nil {
			t.Fatal(err)
		}
		if act.Kind == game.Fold {
			t.Fatal("preflop fold should be suppressed while other actions are legal")
		}
	}
}

func TestPersonalityIsDeterministicPerRNG(t *testing.T) {
	t.Parallel()

	run := func() []game.Action {
		p, err := NewPersonality("maniac", randutil.Derive(42, randutil.ForSeat(randutil.StreamActions, 0)))
		if err != nil {
			t.Fatal(err)
		}
		var actions []game.Action
		for i := 0; i < 50; i++ {
			act, _ := p.Decide(context.Background(), facingBet())
			actions = append(actions, act)
		}
		return actions
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("decision %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestUnknownPersonality(t *testing.T) {
	t.Parallel()

	if _, err := NewPersonality("hero", randutil.New(1)); err == nil {
		t.Error("expected error for unknown personality")
	}
	if _, err := NewPersonalityChat("hero", randutil.New(1)); err == nil {
		t.Error("expected error for unknown personality")
	}
}

func TestCallerCallsAndChecks(t *testing.T) {
	t.Parallel()

	act, err := Caller{}.Decide(context.Background(), facingBet())
	if err != nil || act.Kind != game.Call {
		t.Errorf("facing a bet: got %+v, %v", act, err)
	}
	act, err = Caller{}.Decide(context.Background(), unopened())
	if err != nil || act.Kind != game.Check {
		t.Errorf("unopened: got %+v, %v", act, err)
	}
}

func TestScriptedReplaysThenCalls(t *testing.T) {
	t.Parallel()

	s := NewScripted(
		game.Action{Kind: game.Raise, Amount: 40},
		game.Action{Kind: game.Fold},
	)
	act, _ := s.Decide(context.Background(), facingBet())
	if act.Kind != game.Raise || act.Amount != 40 {
		t.Errorf("first scripted action = %+v", act)
	}
	act, _ = s.Decide(context.Background(), facingBet())
	if act.Kind != game.Fold {
		t.Errorf("second scripted action = %+v", act)
	}
	act, _ = s.Decide(context.Background(), facingBet())
	if act.Kind != game.Call {
		t.Errorf("exhausted script facing a bet = %+v", act)
	}
}

func TestRandomStaysLegal(t *testing.T) {
	t.Parallel()

	r := NewRandom(randutil.New(5))
	for i := 0; i < 200; i++ {
		sg := facingBet()
		act, err := r.Decide(context.Background(), sg)
		if err != nil {
			t.Fatal(err)
		}
		if !legalIn(sg, act.Kind) {
			t.Fatalf("illegal action %s", act.Kind)
		}
	}
}
