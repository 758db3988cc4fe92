package game

import "strings"

// Sentiment vocabulary for chat lines, matched downstream by the indexing
// pipeline. Labeling is keyword-based: the category with the most keyword
// hits wins, with no hits mapping to neutral.
var sentimentKeywords = map[string][]string{
	"confident":  {"confident", "strong", "value", "edge", "calculated", "odds", "premium"},
	"aggressive": {"raise", "bet", "pressure", "aggressive", "action", "attack"},
	"cautious":   {"careful", "fold", "wait", "patient", "risk"},
	"friendly":   {"fun", "nice", "good", "luck", "enjoy", "interesting"},
}

// Ties between categories resolve in this order so labeling is
// deterministic.
var sentimentOrder = []string{"confident", "aggressive", "cautious", "friendly"}

// LabelSentiment classifies a chat message into one of the sentiment
// categories, or "neutral" when nothing matches.
func LabelSentiment(message string) string {
	message = strings.ToLower(message)

	best := "neutral"
	bestCount := 0
	for _, sentiment := range sentimentOrder {
		count := 0
		for _, kw := range sentimentKeywords[sentiment] {
			if strings.Contains(message, kw) {
				count++
			}
		}
		if count > bestCount {
			best = sentiment
			bestCount = count
		}
	}
	return best
}

// ActionFromMessage extracts the first poker action a chat message mentions,
// or "" when it mentions none. Order matters: "raise" before "bet" keeps
// phrases like "raise your bet" attributed to the raise.
func ActionFromMessage(message string) string {
	message = strings.ToLower(message)
	for _, action := range []string{"fold", "check", "call", "raise", "bet"} {
		if strings.Contains(message, action) {
			return action
		}
	}
	return ""
}
