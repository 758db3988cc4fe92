package poker

import (
	"fmt"
	"sort"
)

// Category enumerates poker hand categories ordered from weakest to strongest.
type Category uint8

const (
	HighCard Category = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns a human-readable category description.
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// HandRank is the totally ordered strength of a 5-card hand: a category plus
// the tiebreak ranks that matter within it, most significant first. Unused
// positions are zero. Two HandRanks are equal exactly when category and the
// full tiebreak sequence match, which is the split-pot condition.
type HandRank struct {
	Category  Category
	Tiebreaks [5]Rank
}

// Compare returns -1, 0 or 1 as h sorts below, equal to or above o.
func (h HandRank) Compare(o HandRank) int {
	if h.Category != o.Category {
		if h.Category < o.Category {
			return -1
		}
		return 1
	}
	for i := range h.Tiebreaks {
		if h.Tiebreaks[i] != o.Tiebreaks[i] {
			if h.Tiebreaks[i] < o.Tiebreaks[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Less reports whether h is strictly weaker than o.
func (h HandRank) Less(o HandRank) bool {
	return h.Compare(o) < 0
}

// String returns the category description, e.g. "Full House".
func (h HandRank) String() string {
	return h.Category.String()
}

// Evaluate returns the best 5-card HandRank that can be made from 5 to 7
// cards. For 6 or 7 cards every C(n,5) subset is evaluated and the maximum
// returned. Pure function, safe for concurrent use.
func Evaluate(cards []Card) (HandRank, error) {
	switch len(cards) {
	case 5:
		var five [5]Card
		copy(five[:], cards)
		return evaluate5(five), nil
	case 6:
		// Choosing 5 of 6 is excluding one index.
		var best HandRank
		var five [5]Card
		for skip := 0; skip < len(cards); skip++ {
			k := 0
			for i, c := range cards {
				if i == skip {
					continue
				}
				five[k] = c
				k++
			}
			if r := evaluate5(five); skip == 0 || best.Less(r) {
				best = r
			}
		}
		return best, nil
	case 7:
		// Choosing 5 of 7 is excluding two indices: all C(7,5)=21 subsets.
		var best HandRank
		first := true
		var five [5]Card
		for skipA := 0; skipA < len(cards)-1; skipA++ {
			for skipB := skipA + 1; skipB < len(cards); skipB++ {
				k := 0
				for i, c := range cards {
					if i == skipA || i == skipB {
						continue
					}
					five[k] = c
					k++
				}
				if r := evaluate5(five); first || best.Less(r) {
					best = r
					first = false
				}
			}
		}
		return best, nil
	default:
		return HandRank{}, fmt.Errorf("poker: evaluate needs 5-7 cards, got %d", len(cards))
	}
}

// evaluate5 ranks exactly five cards.
func evaluate5(cards [5]Card) HandRank {
	var counts [15]int
	flush := true
	for i, c := range cards {
		counts[c.Rank]++
		if i > 0 && c.Suit != cards[0].Suit {
			flush = false
		}
	}

	// Ranks present, ordered by count then rank, both descending. This puts
	// the ranks that matter for tiebreaks first within every category.
	groups := make([]Rank, 0, 5)
	for r := Two; r <= Ace; r++ {
		if counts[r] > 0 {
			groups = append(groups, r)
		}
	}
	sort.Slice(groups, func(i, j int) bool {
		if counts[groups[i]] != counts[groups[j]] {
			return counts[groups[i]] > counts[groups[j]]
		}
		return groups[i] > groups[j]
	})

	straightHigh := straightHighRank(counts)

	switch {
	case flush && straightHigh != 0:
		return HandRank{Category: StraightFlush, Tiebreaks: [5]Rank{straightHigh}}
	case counts[groups[0]] == 4:
		return HandRank{Category: FourOfAKind, Tiebreaks: [5]Rank{groups[0], groups[1]}}
	case counts[groups[0]] == 3 && counts[groups[1]] == 2:
		return HandRank{Category: FullHouse, Tiebreaks: [5]Rank{groups[0], groups[1]}}
	case flush:
		return HandRank{Category: Flush, Tiebreaks: tiebreaksFrom(groups)}
	case straightHigh != 0:
		return HandRank{Category: Straight, Tiebreaks: [5]Rank{straightHigh}}
	case counts[groups[0]] == 3:
		return HandRank{Category: ThreeOfAKind, Tiebreaks: [5]Rank{groups[0], groups[1], groups[2]}}
	case counts[groups[0]] == 2 && counts[groups[1]] == 2:
		return HandRank{Category: TwoPair, Tiebreaks: [5]Rank{groups[0], groups[1], groups[2]}}
	case counts[groups[0]] == 2:
		return HandRank{Category: Pair, Tiebreaks: [5]Rank{groups[0], groups[1], groups[2], groups[3]}}
	default:
		return HandRank{Category: HighCard, Tiebreaks: tiebreaksFrom(groups)}
	}
}

// straightHighRank returns the high card of a straight formed by the rank
// counts, or 0 if there is none. The wheel (A-2-3-4-5) counts as a straight
// with high card Five, ranking below the 6-high straight.
func straightHighRank(counts [15]int) Rank {
	for high := Ace; high >= Six; high-- {
		run := true
		for r := high - 4; r <= high; r++ {
			if counts[r] == 0 {
				run = false
				break
			}
		}
		if run {
			return high
		}
	}
	if counts[Ace] > 0 && counts[Two] > 0 && counts[Three] > 0 && counts[Four] > 0 && counts[Five] > 0 {
		return Five
	}
	return 0
}

func tiebreaksFrom(groups []Rank) [5]Rank {
	var t [5]Rank
	copy(t[:], groups)
	return t
}
