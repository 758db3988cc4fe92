package game

// Street is one of the betting phases of a hand.
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
	Showdown
)

func (s Street) String() string {
	return [...]string{"preflop", "flop", "turn", "river", "showdown"}[s]
}

// ActionKind is the type of a player decision. Bet is accepted from
// providers as a synonym for opening the betting and normalizes to Raise.
type ActionKind int

const (
	Fold ActionKind = iota
	Check
	Call
	Bet
	Raise
)

func (k ActionKind) String() string {
	return [...]string{"fold", "check", "call", "bet", "raise"}[k]
}

// Action is one seat's decision. Amount is the chips added for Call and the
// raise-to total for Bet/Raise; zero otherwise.
type Action struct {
	Kind   ActionKind
	Amount int
}

// Round holds the betting state for the current street.
type Round struct {
	Street     Street
	CurrentBet int // highest StreetBet to match
	MinRaise   int // minimum raise increment, resets to the big blind per street
	LastRaiser int // seat index of the last aggressor, -1 if none
	BBActed    bool
	Acted      []bool
	bigBlind   int
}

// NewRound starts the preflop betting state.
func NewRound(numSeats, bigBlind int) *Round {
	return &Round{
		Street:     Preflop,
		MinRaise:   bigBlind,
		LastRaiser: -1,
		Acted:      make([]bool, numSeats),
		bigBlind:   bigBlind,
	}
}

// AdvanceStreet moves to the next street and resets per-street betting state.
// BBActed is kept since the big blind option only matters preflop.
func (r *Round) AdvanceStreet() {
	if r.Street >= Showdown {
		return
	}
	r.Street++
	r.CurrentBet = 0
	r.MinRaise = r.bigBlind
	r.LastRaiser = -1
	r.Acted = make([]bool, len(r.Acted))
}

// MarkActed records that a seat has acted since the last raise.
func (r *Round) MarkActed(index int) {
	if index >= 0 && index < len(r.Acted) {
		r.Acted[index] = true
	}
}

// NoteRaise updates betting state after a raise to the given total. Everyone
// else must act again.
func (r *Round) NoteRaise(index, raiseTo int) {
	r.MinRaise = raiseTo - r.CurrentBet
	r.CurrentBet = raiseTo
	r.LastRaiser = index
	for i := range r.Acted {
		r.Acted[i] = false
	}
	r.Acted[index] = true
}

// LegalKinds returns the action kinds the seat may take right now. Check and
// Fold are mutually exclusive depending on whether a bet is outstanding.
func (r *Round) LegalKinds(seat *Seat) []ActionKind {
	toCall := r.CurrentBet - seat.StreetBet
	if toCall > 0 {
		kinds := []ActionKind{Fold, Call}
		if seat.Stack > toCall {
			kinds = append(kinds, Raise)
		}
		return kinds
	}
	kinds := []ActionKind{Check}
	if seat.Stack > 0 {
		kinds = append(kinds, Raise)
	}
	return kinds
}

// Clamp maps any requested action to the nearest legal one, deterministically,
// and fills in a concrete amount. The rules:
//
//   - fold with no bet outstanding becomes check
//   - check facing a bet becomes fold
//   - call with no bet outstanding becomes check; otherwise the call is
//     capped at the seat's stack (a short call is an all-in)
//   - bet is treated as raise; a raise-to above the stack is capped to an
//     all-in; a raise below the minimum that is not an all-in becomes a call
//
// Reproducibility depends on this mapping never consulting anything but the
// seat and the current betting state.
func (r *Round) Clamp(seat *Seat, req Action) Action {
	toCall := r.CurrentBet - seat.StreetBet
	if toCall < 0 {
		toCall = 0
	}
	call := func() Action {
		if toCall == 0 {
			return Action{Kind: Check}
		}
		return Action{Kind: Call, Amount: min(toCall, seat.Stack)}
	}

	switch req.Kind {
	case Fold:
		if toCall == 0 {
			return Action{Kind: Check}
		}
		return Action{Kind: Fold}
	case Check:
		if toCall > 0 {
			return Action{Kind: Fold}
		}
		return Action{Kind: Check}
	case Call:
		return call()
	case Bet, Raise:
		maxTo := seat.StreetBet + seat.Stack
		to := req.Amount
		if to > maxTo {
			to = maxTo
		}
		if to <= r.CurrentBet {
			// Cannot exceed the current bet even all-in.
			return call()
		}
		if to < r.CurrentBet+r.MinRaise && to < maxTo {
			// Below the minimum raise and not a shove.
			return call()
		}
		return Action{Kind: Raise, Amount: to}
	default:
		return call()
	}
}

// Complete reports whether betting is closed for this street: every seat
// that can still act has acted since the last raise and matched the current
// bet, with the big blind getting the preflop option on an unraised pot.
func (r *Round) Complete(seats []*Seat, button int) bool {
	canAct := 0
	for _, s := range seats {
		if s.CanAct() {
			canAct++
		}
	}
	if canAct == 0 {
		return true
	}

	for i, s := range seats {
		if !s.CanAct() {
			continue
		}
		if s.StreetBet != r.CurrentBet || !r.Acted[i] {
			return false
		}
	}

	if r.Street == Preflop && r.LastRaiser == -1 {
		bb := bigBlindIndex(len(seats), button)
		if seats[bb].CanAct() && !r.BBActed {
			return false
		}
	}
	return true
}

// bigBlindIndex returns the big blind seat for a button position. Heads-up
// the button posts the small blind and the other seat the big blind.
func bigBlindIndex(numSeats, button int) int {
	if numSeats == 2 {
		return (button + 1) % numSeats
	}
	return (button + 2) % numSeats
}

func smallBlindIndex(numSeats, button int) int {
	if numSeats == 2 {
		return button
	}
	return (button + 1) % numSeats
}
