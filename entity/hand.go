package entity

// Hand is the ordered run of cards held by the player or the dealer.
// It only ever grows.
type Hand []Card

func (h *Hand) Add(cards ...Card) {
	*h = append(*h, cards...)
}

// Score returns the best attainable total for the hand. Every ace is
// counted as 11 first, then reduced to 1 one at a time while the total
// is over 21. The result may still exceed 21 once no high aces remain.
func (h Hand) Score() int {
	score := 0
	aces := 0
	for _, c := range h {
		if c.Rank == RankAce {
			aces++
		}
		score += c.Rank.Point()
	}
	for score > BustScore && aces > 0 {
		score -= 10
		aces--
	}
	return score
}

// Upcard scores only the first card, hiding the hole card from the
// dealer's visible total while the round is open.
func (h Hand) Upcard() int {
	if len(h) == 0 {
		return 0
	}
	return Hand{h[0]}.Score()
}
