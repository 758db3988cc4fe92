package poker

import (
	"errors"

	"github.com/cardroom/holdemgen/internal/randutil"
)

// ErrExhaustedDeck is returned when a deal asks for more cards than remain.
// A legal 2-10 player hand never deals more than 25 cards, so hitting this
// indicates a configuration error.
var ErrExhaustedDeck = errors.New("poker: deck exhausted")

// Deck is a standard 52-card deck, shuffled once at construction. The order
// is a pure function of the seed, which is the reproducibility contract the
// dataset generation depends on.
type Deck struct {
	cards [52]Card
	next  int
}

// NewDeck creates a deck shuffled deterministically from seed.
func NewDeck(seed int64) *Deck {
	d := &Deck{}

	i := 0
	for suit := Clubs; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards[i] = NewCard(rank, suit)
			i++
		}
	}

	// Fisher-Yates over the canonical order.
	rng := randutil.Derive(seed, randutil.StreamDeck)
	for i := len(d.cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}

	return d
}

// Deal removes and returns the next n cards.
func (d *Deck) Deal(n int) ([]Card, error) {
	if d.next+n > len(d.cards) {
		return nil, ErrExhaustedDeck
	}
	cards := make([]Card, n)
	copy(cards, d.cards[d.next:d.next+n])
	d.next += n
	return cards, nil
}

// DealOne removes and returns the next card.
func (d *Deck) DealOne() (Card, error) {
	cards, err := d.Deal(1)
	if err != nil {
		return Card{}, err
	}
	return cards[0], nil
}

// CardsRemaining returns the number of undealt cards.
func (d *Deck) CardsRemaining() int {
	return len(d.cards) - d.next
}
