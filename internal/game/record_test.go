package game

import (
	"testing"

	"github.com/cardroom/holdemgen/internal/poker"
)

func TestPositionName(t *testing.T) {
	t.Parallel()

	// Six-handed with the button at seat 2.
	tests := []struct {
		index int
		want  string
	}{
		{2, "button"},
		{3, "small_blind"},
		{4, "big_blind"},
		{5, "middle"},
		{0, "middle"},
		{1, "late"},
	}
	for _, tt := range tests {
		if got := positionName(tt.index, 2, 6); got != tt.want {
			t.Errorf("positionName(%d) = %q, want %q", tt.index, got, tt.want)
		}
	}

	// Heads-up the button posts the small blind but reads as the button.
	if got := positionName(0, 0, 2); got != "button" {
		t.Errorf("heads-up button = %q", got)
	}
	if got := positionName(1, 0, 2); got != "small_blind" {
		t.Errorf("heads-up non-button = %q", got)
	}
}

func TestDescribeAction(t *testing.T) {
	t.Parallel()

	board, err := poker.ParseCards("Ah Kd 2c")
	if err != nil {
		t.Fatal(err)
	}

	got := describeAction("P1", Action{Kind: Raise, Amount: 40}, "button", Flop, board)
	want := "P1 raised to 40 in button position during flop with board Ah Kd 2c"
	if got != want {
		t.Errorf("describeAction = %q, want %q", got, want)
	}

	got = describeAction("P0", Action{Kind: Fold}, "big_blind", Preflop, nil)
	want = "P0 folded in big_blind position during preflop"
	if got != want {
		t.Errorf("describeAction = %q, want %q", got, want)
	}

	got = describeAction("P2", Action{Kind: Call, Amount: 20}, "early", Turn, board)
	want = "P2 called 20 in early position during turn with board Ah Kd 2c"
	if got != want {
		t.Errorf("describeAction = %q, want %q", got, want)
	}
}
