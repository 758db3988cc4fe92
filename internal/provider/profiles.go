// Package provider implements the decision and table-talk providers the
// hand orchestrator calls at each decision point. All implementations are
// deterministic given their RNG, which the batch runner derives from the
// hand seed.
package provider

import "sort"

// Profile is a fixed opponent personality. Traits are on a 0.0-1.0 scale
// and drive action weighting; the phrase pool and chattiness drive table
// talk.
type Profile struct {
	Name       string
	Traits     map[string]float64
	PlayStyle  string
	Vocabulary []string
	Phrases    []string
	Chattiness float64
}

// Profiles is the built-in personality catalog.
var Profiles = map[string]Profile{
	"tight_aggressive": {
		Name: "tight_aggressive",
		Traits: map[string]float64{
			"aggression":     0.75,
			"bluff_tendency": 0.30,
			"risk_tolerance": 0.40,
			"adaptability":   0.65,
			"tilt_prone":     0.25,
			"patience":       0.80,
		},
		PlayStyle:  "Plays few hands but bets aggressively with strong holdings.",
		Vocabulary: []string{"calculated", "value", "position", "edge"},
		Phrases: []string{
			"I'll raise here, the odds are in my favor.",
			"Folding is often the best play.",
			"I only play premium hands in early position.",
		},
		Chattiness: 0.25,
	},
	"loose_passive": {
		Name: "loose_passive",
		Traits: map[string]float64{
			"aggression":     0.25,
			"bluff_tendency": 0.20,
			"risk_tolerance": 0.65,
			"adaptability":   0.30,
			"tilt_prone":     0.40,
			"patience":       0.20,
		},
		PlayStyle:  "Plays many hands but rarely raises, preferring to call.",
		Vocabulary: []string{"call", "see", "lucky", "fun"},
		Phrases: []string{
			"I'll call and see what happens.",
			"Poker should be fun, I'm here to play hands!",
			"Maybe I'll get lucky on the river.",
		},
		Chattiness: 0.75,
	},
	"maniac": {
		Name: "maniac",
		Traits: map[string]float64{
			"aggression":     0.90,
			"bluff_tendency": 0.75,
			"risk_tolerance": 0.85,
			"adaptability":   0.40,
			"tilt_prone":     0.70,
			"patience":       0.15,
		},
		PlayStyle:  "Extremely aggressive player who raises frequently and bluffs often.",
		Vocabulary: []string{"raise", "pressure", "aggressive", "action"},
		Phrases: []string{
			"I'm raising again, can't help myself!",
			"Fold or call all-in, those are your options.",
			"I love putting people to the test.",
		},
		Chattiness: 0.75,
	},
	"rock": {
		Name: "rock",
		Traits: map[string]float64{
			"aggression":     0.20,
			"bluff_tendency": 0.10,
			"risk_tolerance": 0.15,
			"adaptability":   0.25,
			"tilt_prone":     0.15,
			"patience":       0.90,
		},
		PlayStyle:  "Extremely tight player who only plays premium hands.",
		Vocabulary: []string{"careful", "fold", "premium", "wait"},
		Phrases: []string{
			"I'll fold this time.",
			"I only play premium hands.",
			"Patience is key in poker.",
		},
		Chattiness: 0.1,
	},
	"tricky": {
		Name: "tricky",
		Traits: map[string]float64{
			"aggression":     0.55,
			"bluff_tendency": 0.70,
			"risk_tolerance": 0.60,
			"adaptability":   0.80,
			"tilt_prone":     0.30,
			"patience":       0.50,
		},
		PlayStyle:  "Unpredictable player who mixes up their play.",
		Vocabulary: []string{"interesting", "perhaps", "tricky", "balance"},
		Phrases: []string{
			"That's an interesting spot, I'll try something different.",
			"You never know what I have.",
			"Sometimes the unconventional play is best.",
		},
		Chattiness: 0.5,
	},
	"calling_station": {
		Name: "calling_station",
		Traits: map[string]float64{
			"aggression":     0.15,
			"bluff_tendency": 0.10,
			"risk_tolerance": 0.70,
			"adaptability":   0.20,
			"tilt_prone":     0.50,
			"patience":       0.30,
		},
		PlayStyle:  "Calls excessively and rarely folds once invested in a hand.",
		Vocabulary: []string{"call", "curious", "see", "showdown"},
		Phrases: []string{
			"I'll call, I want to see what you have.",
			"I've come this far, might as well call.",
			"I never fold once I'm in a hand.",
		},
		Chattiness: 0.5,
	},
}

// ProfileNames returns the catalog names in stable sorted order, used for
// deterministic round-robin seat assignment.
func ProfileNames() []string {
	names := make([]string, 0, len(Profiles))
	for name := range Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
