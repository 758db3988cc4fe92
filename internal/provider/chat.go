package provider

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/cardroom/holdemgen/internal/game"
)

// PersonalityChat speaks a line from the profile's phrase pool with the
// profile's chattiness probability, biased toward phrases that mention the
// action just taken.
type PersonalityChat struct {
	profile Profile
	rng     *rand.Rand
}

// NewPersonalityChat builds a chat provider for a named profile.
func NewPersonalityChat(name string, rng *rand.Rand) (*PersonalityChat, error) {
	profile, ok := Profiles[name]
	if !ok {
		return nil, fmt.Errorf("provider: unknown personality %q", name)
	}
	return &PersonalityChat{profile: profile, rng: rng}, nil
}

func (c *PersonalityChat) Comment(_ context.Context, p game.ChatPrompt) (string, error) {
	if c.rng.Float64() >= c.profile.Chattiness {
		return "", nil
	}
	if len(c.profile.Phrases) == 0 {
		return "", nil
	}

	// Prefer a phrase that mentions the committed action, when one exists.
	actionName := p.Action.Kind.String()
	var matching []string
	for _, phrase := range c.profile.Phrases {
		if game.ActionFromMessage(phrase) == actionName {
			matching = append(matching, phrase)
		}
	}
	if len(matching) > 0 && c.rng.Float64() < 0.5 {
		return matching[c.rng.IntN(len(matching))], nil
	}
	return c.profile.Phrases[c.rng.IntN(len(c.profile.Phrases))], nil
}

// Silent never comments.
type Silent struct{}

func (Silent) Comment(context.Context, game.ChatPrompt) (string, error) {
	return "", nil
}
