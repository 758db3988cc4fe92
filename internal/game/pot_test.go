package game

import (
	"errors"
	"testing"
)

func commitOrFail(t *testing.T, l *Ledger, idx int, seat *Seat, amount int) {
	t.Helper()
	if err := l.Commit(idx, seat, amount); err != nil {
		t.Fatalf("Commit(%s, %d): %v", seat.ID, amount, err)
	}
}

func potSum(pots []Pot) int {
	total := 0
	for _, p := range pots {
		total += p.Amount
	}
	return total
}

func TestCommitRejectsOverdraw(t *testing.T) {
	t.Parallel()

	l := NewLedger(2)
	seat := NewSeat(0, 50)
	if err := l.Commit(0, seat, 60); !errors.Is(err, ErrInsufficientStack) {
		t.Fatalf("expected ErrInsufficientStack, got %v", err)
	}
	// A failed commit must not move chips.
	if seat.Stack != 50 || seat.TotalBet != 0 || l.Total() != 0 {
		t.Errorf("failed commit mutated state: stack=%d totalBet=%d ledger=%d", seat.Stack, seat.TotalBet, l.Total())
	}
}

func TestPotConservationAtEveryCommit(t *testing.T) {
	t.Parallel()

	seats := []*Seat{NewSeat(0, 200), NewSeat(1, 120), NewSeat(2, 80)}
	l := NewLedger(3)

	commits := []struct {
		idx    int
		amount int
	}{
		{0, 5}, {1, 10}, {2, 30}, {0, 25}, {1, 20},
		{2, 50}, {0, 50}, {1, 30},
	}
	for _, c := range commits {
		commitOrFail(t, l, c.idx, seats[c.idx], c.amount)
		if seats[c.idx].Stack == 0 {
			seats[c.idx].Status = StatusAllIn
		}
		if got := potSum(l.Pots(seats)); got != l.Total() {
			t.Fatalf("after commit %+v: pot sum %d != contributions %d", c, got, l.Total())
		}
	}
}

func TestSidePotsThreeWayAllIn(t *testing.T) {
	t.Parallel()

	// Stacks 100, 50 and 200 all commit in full. The 50-cap main pot takes
	// 50 from each; the 100-cap side pot takes the next 50 from the two
	// bigger stacks; the top 100 is an uncalled bet only the deep stack can
	// win, i.e. its refund.
	seats := []*Seat{NewSeat(0, 100), NewSeat(1, 50), NewSeat(2, 200)}
	l := NewLedger(3)
	for i, s := range seats {
		commitOrFail(t, l, i, s, s.Stack)
		s.Status = StatusAllIn
	}

	pots := l.Pots(seats)
	if len(pots) != 3 {
		t.Fatalf("got %d pots, want 3: %+v", len(pots), pots)
	}

	want := []struct {
		amount   int
		eligible []int
	}{
		{150, []int{0, 1, 2}},
		{100, []int{0, 2}},
		{100, []int{2}},
	}
	for i, w := range want {
		if pots[i].Amount != w.amount {
			t.Errorf("pot %d amount = %d, want %d", i, pots[i].Amount, w.amount)
		}
		if len(pots[i].Eligible) != len(w.eligible) {
			t.Errorf("pot %d eligible = %v, want %v", i, pots[i].Eligible, w.eligible)
			continue
		}
		for j, idx := range w.eligible {
			if pots[i].Eligible[j] != idx {
				t.Errorf("pot %d eligible = %v, want %v", i, pots[i].Eligible, w.eligible)
				break
			}
		}
	}

	if potSum(pots) != 350 {
		t.Errorf("pots sum to %d, want 350", potSum(pots))
	}
}

func TestFoldedChipsStayInPotButNotEligible(t *testing.T) {
	t.Parallel()

	seats := []*Seat{NewSeat(0, 100), NewSeat(1, 100), NewSeat(2, 100)}
	l := NewLedger(3)
	commitOrFail(t, l, 0, seats[0], 40)
	commitOrFail(t, l, 1, seats[1], 40)
	commitOrFail(t, l, 2, seats[2], 20)
	seats[2].Status = StatusFolded

	pots := l.Pots(seats)
	if len(pots) != 1 {
		t.Fatalf("got %d pots, want 1: %+v", len(pots), pots)
	}
	if pots[0].Amount != 100 {
		t.Errorf("pot amount = %d, want 100 including folded chips", pots[0].Amount)
	}
	for _, idx := range pots[0].Eligible {
		if idx == 2 {
			t.Error("folded seat must not be eligible")
		}
	}
}

func TestDistributeSplitsWithOddChipsClockwiseFromButton(t *testing.T) {
	t.Parallel()

	seats := []*Seat{NewSeat(0, 0), NewSeat(1, 0), NewSeat(2, 0)}
	pots := []Pot{{Amount: 101, Eligible: []int{0, 1, 2}}}
	l := NewLedger(3)

	// Tie between seats 0 and 2 with the button at 1: seat 2 is closest
	// clockwise from the button and takes the odd chip.
	awards := l.Distribute(seats, pots, 1, func([]int) []int { return []int{0, 2} })

	if len(awards) != 1 || awards[0].Amount != 101 {
		t.Fatalf("awards = %+v", awards)
	}
	if seats[2].Stack != 51 || seats[0].Stack != 50 {
		t.Errorf("stacks after split = %d/%d, want seat 2 to get the odd chip (51/50)",
			seats[0].Stack, seats[2].Stack)
	}
	if seats[1].Stack != 0 {
		t.Errorf("non-winner received chips: %d", seats[1].Stack)
	}
}

func TestDistributeConservesChips(t *testing.T) {
	t.Parallel()

	seats := []*Seat{NewSeat(0, 100), NewSeat(1, 50), NewSeat(2, 200)}
	l := NewLedger(3)
	for i, s := range seats {
		commitOrFail(t, l, i, s, s.Stack)
		s.Status = StatusAllIn
	}

	before := 0
	for _, s := range seats {
		before += s.Stack
	}
	total := l.Total()

	l.Distribute(seats, l.Pots(seats), 0, func(eligible []int) []int { return eligible[:1] })

	after := 0
	for _, s := range seats {
		after += s.Stack
	}
	if after != before+total {
		t.Errorf("chips after distribution = %d, want %d", after, before+total)
	}
}
