package game

import (
	"context"

	"github.com/cardroom/holdemgen/internal/poker"
)

// OpponentView is the publicly visible state of one other seat.
type OpponentView struct {
	ID        string
	Stack     int
	StreetBet int
	TotalBet  int
	Status    string
}

// SubGame is the snapshot handed to a decision provider at one decision
// point: the public table state plus the acting seat's private hole cards.
// It is a value copy; providers cannot reach back into the hand.
type SubGame struct {
	GameID     string
	Street     Street
	Board      []poker.Card
	SeatID     string
	HoleCards  []poker.Card
	Stack      int
	StreetBet  int
	TotalBet   int
	ToCall     int
	MinRaiseTo int // smallest legal raise-to total
	Pot        int
	Opponents  []OpponentView
	Legal      []ActionKind
}

// ChatPrompt is handed to a chat provider after an action has been
// committed.
type ChatPrompt struct {
	SubGame SubGame
	Action  Action
}

// ActionProvider decides one action per decision point. Implementations may
// be rule-based, randomized or model-backed; the hand validates and clamps
// whatever comes back, so providers cannot corrupt the betting state.
type ActionProvider interface {
	Decide(ctx context.Context, sg SubGame) (Action, error)
}

// ChatProvider produces an optional table-talk line for a committed action.
// Returning an empty string means no comment.
type ChatProvider interface {
	Comment(ctx context.Context, p ChatPrompt) (string, error)
}
