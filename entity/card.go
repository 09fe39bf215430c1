package entity

type Suit string

const (
	SuitHearts   Suit = "hearts"
	SuitDiamonds Suit = "diamonds"
	SuitClubs    Suit = "clubs"
	SuitSpades   Suit = "spades"
)

type Rank string

const (
	RankAce   Rank = "A"
	Rank2     Rank = "2"
	Rank3     Rank = "3"
	Rank4     Rank = "4"
	Rank5     Rank = "5"
	Rank6     Rank = "6"
	Rank7     Rank = "7"
	Rank8     Rank = "8"
	Rank9     Rank = "9"
	Rank10    Rank = "10"
	RankJack  Rank = "J"
	RankQueen Rank = "Q"
	RankKing  Rank = "K"
)

var Suits = []Suit{SuitHearts, SuitDiamonds, SuitClubs, SuitSpades}

var Ranks = []Rank{
	RankAce, Rank2, Rank3, Rank4, Rank5, Rank6, Rank7,
	Rank8, Rank9, Rank10, RankJack, RankQueen, RankKing,
}

// Card is an immutable value; field names are part of the wire contract.
type Card struct {
	Suit    Suit   `json:"suit"`
	Rank    Rank   `json:"rank"`
	Value   int    `json:"value"`
	Display string `json:"display"`
}

func NewCard(suit Suit, rank Rank) Card {
	return Card{
		Suit:    suit,
		Rank:    rank,
		Value:   rank.Point(),
		Display: string(rank),
	}
}

// Point returns the card value used for scoring. An ace counts as 11
// until the hand total forces it down to 1.
func (r Rank) Point() int {
	switch r {
	case RankAce:
		return 11
	case Rank10, RankJack, RankQueen, RankKing:
		return 10
	case Rank2:
		return 2
	case Rank3:
		return 3
	case Rank4:
		return 4
	case Rank5:
		return 5
	case Rank6:
		return 6
	case Rank7:
		return 7
	case Rank8:
		return 8
	case Rank9:
		return 9
	default:
		return 0
	}
}
