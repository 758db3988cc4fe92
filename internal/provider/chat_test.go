package provider

import (
	"context"
	"testing"

	"github.com/cardroom/holdemgen/internal/game"
	"github.com/cardroom/holdemgen/internal/randutil"
)

func TestPersonalityChatSpeaksFromPhrasePool(t *testing.T) {
	t.Parallel()

	c, err := NewPersonalityChat("loose_passive", randutil.New(3))
	if err != nil {
		t.Fatal(err)
	}
	pool := make(map[string]bool)
	for _, phrase := range Profiles["loose_passive"].Phrases {
		pool[phrase] = true
	}

	prompt := game.ChatPrompt{
		SubGame: game.SubGame{SeatID: "P1", Street: game.Flop},
		Action:  game.Action{Kind: game.Call},
	}

	spoke := 0
	for i := 0; i < 200; i++ {
		line, err := c.Comment(context.Background(), prompt)
		if err != nil {
			t.Fatal(err)
		}
		if line == "" {
			continue
		}
		spoke++
		if !pool[line] {
			t.Fatalf("line %q is not in the profile's phrase pool", line)
		}
	}
	// Chattiness 0.75 over 200 prompts: silence throughout would mean the
	// probability gate is broken.
	if spoke == 0 {
		t.Error("a chatty profile never spoke")
	}
	if spoke == 200 {
		t.Error("a chatty profile never stayed quiet")
	}
}

func TestSilentNeverSpeaks(t *testing.T) {
	t.Parallel()

	line, err := Silent{}.Comment(context.Background(), game.ChatPrompt{})
	if err != nil || line != "" {
		t.Errorf("Silent = %q, %v", line, err)
	}
}
