// Package game implements a single Texas Hold'em hand: seats, betting
// rounds, pot accounting and the orchestrator that drives one hand from
// blinds to resolution while emitting a reproducible record.
package game

import (
	"fmt"

	"github.com/cardroom/holdemgen/internal/poker"
)

// SeatStatus tracks what a seat can still do in the current hand.
type SeatStatus uint8

const (
	StatusActive SeatStatus = iota
	StatusFolded
	StatusAllIn
	StatusSittingOut
)

func (s SeatStatus) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusFolded:
		return "folded"
	case StatusAllIn:
		return "all-in"
	case StatusSittingOut:
		return "sitting-out"
	default:
		return "unknown"
	}
}

// Seat is one player position in a hand. The hand owns it exclusively for
// the hand's duration; Stack may be carried across hands by the caller.
type Seat struct {
	ID            string // stable identity, "P0", "P1", ...
	Personality   string
	StartingStack int
	Stack         int
	StreetBet     int // committed this street
	TotalBet      int // committed this hand
	HoleCards     []poker.Card
	Status        SeatStatus
}

// NewSeat returns a seat with the conventional positional ID.
func NewSeat(index, stack int) *Seat {
	return &Seat{
		ID:            fmt.Sprintf("P%d", index),
		StartingStack: stack,
		Stack:         stack,
		Status:        StatusActive,
	}
}

// CanAct reports whether the seat still has a decision to make.
func (s *Seat) CanAct() bool {
	return s.Status == StatusActive && s.Stack > 0
}

// InHand reports whether the seat can still win a pot.
func (s *Seat) InHand() bool {
	return s.Status == StatusActive || s.Status == StatusAllIn
}

// ResetForHand clears per-hand state while keeping the stack.
func (s *Seat) ResetForHand() {
	s.StartingStack = s.Stack
	s.StreetBet = 0
	s.TotalBet = 0
	s.HoleCards = nil
	if s.Status != StatusSittingOut {
		s.Status = StatusActive
	}
}
