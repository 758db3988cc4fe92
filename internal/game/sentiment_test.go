package game

import "testing"

func TestLabelSentiment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		message string
		want    string
	}{
		{"I'll raise here, the odds are in my favor.", "confident"},
		{"I'm raising again, can't help myself!", "aggressive"},
		{"I'll fold this time.", "cautious"},
		{"Poker should be fun, I'm here to play hands!", "friendly"},
		{"Hmm.", "neutral"},
		{"", "neutral"},
		{"CALCULATED VALUE", "confident"},
	}
	for _, tt := range tests {
		if got := LabelSentiment(tt.message); got != tt.want {
			t.Errorf("LabelSentiment(%q) = %q, want %q", tt.message, got, tt.want)
		}
	}
}

func TestActionFromMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		message string
		want    string
	}{
		{"I'll call and see what happens.", "call"},
		{"Time to raise the stakes", "raise"},
		{"I never fold once I'm in a hand.", "fold"},
		{"Nice weather today", ""},
		{"Checking my options", "check"},
	}
	for _, tt := range tests {
		if got := ActionFromMessage(tt.message); got != tt.want {
			t.Errorf("ActionFromMessage(%q) = %q, want %q", tt.message, got, tt.want)
		}
	}
}
