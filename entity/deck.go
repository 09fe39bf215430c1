package entity

import (
	"math/rand"
)

const DeckSize = 52

// Deck is a depletable run of cards. It is built once per game and
// never replenished; the dealer loop checks Remaining before drawing.
type Deck struct {
	cards []Card
}

func NewDeck() *Deck {
	cards := make([]Card, 0, DeckSize)
	for _, s := range Suits {
		for _, r := range Ranks {
			cards = append(cards, NewCard(s, r))
		}
	}
	return &Deck{cards: cards}
}

// NewStackedDeck builds a deck that yields the given cards in the
// order given. Used to rig deals in tests.
func NewStackedDeck(cards ...Card) *Deck {
	d := &Deck{cards: make([]Card, len(cards))}
	for i, c := range cards {
		d.cards[len(cards)-1-i] = c
	}
	return d
}

func (d *Deck) Shuffle() {
	for i := 1; i < len(d.cards); i++ {
		r := rand.Intn(i + 1)
		if i != r {
			d.cards[r], d.cards[i] = d.cards[i], d.cards[r]
		}
	}
}

// Draw removes and returns the top card. The second value is false
// when the deck is exhausted.
func (d *Deck) Draw() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	c := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return c, true
}

func (d *Deck) Remaining() int {
	return len(d.cards)
}
