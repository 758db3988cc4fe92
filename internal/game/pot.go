package game

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInsufficientStack is returned when a commit exceeds the seat's stack.
// Callers must cap calls and raises to the stack before committing.
var ErrInsufficientStack = errors.New("game: insufficient stack")

// Pot is a main or side pot. Eligible holds the seat indexes that may win
// it; Cap is the per-seat contribution level it covers up to.
type Pot struct {
	Amount   int
	Cap      int
	Eligible []int
}

// PotAward reports how one pot was paid out.
type PotAward struct {
	Amount  int
	Winners []string
}

// Ledger tracks every seat's cumulative contribution for one hand and
// derives the pot partition from it on demand. Because pots are computed
// from contributions rather than accumulated separately, the sum of pot
// amounts always equals the sum of contributions.
type Ledger struct {
	contributions []int
}

// NewLedger creates an empty ledger for numSeats seats.
func NewLedger(numSeats int) *Ledger {
	return &Ledger{contributions: make([]int, numSeats)}
}

// Commit moves amount chips from the seat's stack into the pot.
func (l *Ledger) Commit(index int, seat *Seat, amount int) error {
	if amount < 0 {
		return fmt.Errorf("game: negative commit %d for %s", amount, seat.ID)
	}
	if amount > seat.Stack {
		return fmt.Errorf("%w: %s has %d, tried to commit %d", ErrInsufficientStack, seat.ID, seat.Stack, amount)
	}
	seat.Stack -= amount
	seat.StreetBet += amount
	seat.TotalBet += amount
	l.contributions[index] += amount
	return nil
}

// Contribution returns one seat's total for the hand.
func (l *Ledger) Contribution(index int) int {
	return l.contributions[index]
}

// Total returns the sum of all contributions, i.e. the total pot.
func (l *Ledger) Total() int {
	total := 0
	for _, c := range l.contributions {
		total += c
	}
	return total
}

// Pots partitions the contributions into a main pot and side pots. Each
// distinct all-in contribution level becomes a cap; the slice between two
// caps collects every seat's chips in that band, with eligibility limited
// to in-hand seats whose total contribution reaches the cap. Folded chips
// stay in whichever pots their level reaches but folded seats are never
// eligible. A band above every caller's level, an uncalled bet, forms a pot
// only its bettor is eligible for, which returns those chips at resolution.
func (l *Ledger) Pots(seats []*Seat) []Pot {
	maxContrib := 0
	for _, c := range l.contributions {
		if c > maxContrib {
			maxContrib = c
		}
	}
	if maxContrib == 0 {
		return nil
	}

	capSet := make(map[int]bool)
	for i, s := range seats {
		if s.Status == StatusAllIn && l.contributions[i] > 0 {
			capSet[l.contributions[i]] = true
		}
	}
	caps := make([]int, 0, len(capSet)+1)
	for c := range capSet {
		caps = append(caps, c)
	}
	sort.Ints(caps)
	if len(caps) == 0 || caps[len(caps)-1] < maxContrib {
		caps = append(caps, maxContrib)
	}

	var pots []Pot
	prev := 0
	for _, level := range caps {
		amount := 0
		for _, c := range l.contributions {
			amount += min(c, level) - min(c, prev)
		}
		if amount == 0 {
			prev = level
			continue
		}

		var eligible []int
		for i, s := range seats {
			if s.InHand() && l.contributions[i] >= level {
				eligible = append(eligible, i)
			}
		}
		if len(eligible) == 0 {
			// Every seat at this level folded out; the chips belong to
			// the pot below.
			if len(pots) > 0 {
				pots[len(pots)-1].Amount += amount
				pots[len(pots)-1].Cap = level
			}
			prev = level
			continue
		}

		pots = append(pots, Pot{Amount: amount, Cap: level, Eligible: eligible})
		prev = level
	}
	return pots
}

// Distribute pays each pot to its winners and returns the per-pot awards.
// winnersOf picks the winning seat indexes among a pot's eligible seats. A
// split that doesn't divide evenly gives the odd chips, one each, to the
// winners closest clockwise from the button.
func (l *Ledger) Distribute(seats []*Seat, pots []Pot, button int, winnersOf func(eligible []int) []int) []PotAward {
	awards := make([]PotAward, 0, len(pots))
	for _, pot := range pots {
		winners := winnersOf(pot.Eligible)
		if len(winners) == 0 {
			winners = pot.Eligible[:1]
		}
		winners = sortClockwiseFromButton(winners, button, len(seats))

		share := pot.Amount / len(winners)
		remainder := pot.Amount % len(winners)

		award := PotAward{Amount: pot.Amount}
		for i, idx := range winners {
			paid := share
			if i < remainder {
				paid++
			}
			seats[idx].Stack += paid
			award.Winners = append(award.Winners, seats[idx].ID)
		}
		awards = append(awards, award)
	}
	return awards
}

// sortClockwiseFromButton orders seat indexes by distance clockwise from
// the seat left of the button.
func sortClockwiseFromButton(indexes []int, button, numSeats int) []int {
	sorted := make([]int, len(indexes))
	copy(sorted, indexes)
	dist := func(i int) int { return (i - button - 1 + numSeats) % numSeats }
	sort.Slice(sorted, func(a, b int) bool { return dist(sorted[a]) < dist(sorted[b]) })
	return sorted
}
