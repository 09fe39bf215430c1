package entity

import (
	"time"
)

// GameState is the aggregate root for one game. The JSON field names
// are contractual. The remaining deck is deliberately not part of the
// serialized state; the engine owns it.
type GameState struct {
	ID          string     `json:"id"`
	PlayerCards Hand       `json:"player_cards"`
	DealerCards Hand       `json:"dealer_cards"`
	PlayerScore int        `json:"player_score"`
	DealerScore int        `json:"dealer_score"`
	GameStatus  GameStatus `json:"game_status"`
	BetAmount   float64    `json:"bet_amount"`
	Balance     float64    `json:"balance"`
	CreatedAt   time.Time  `json:"created_at"`
}

func NewGameState(id string, createdAt time.Time) *GameState {
	return &GameState{
		ID:          id,
		PlayerCards: make(Hand, 0, InitialHandSize),
		DealerCards: make(Hand, 0, InitialHandSize),
		GameStatus:  StatusWaiting,
		Balance:     StartingBalance,
		CreatedAt:   createdAt,
	}
}

// Clone returns a copy safe to serialize while the live instance keeps
// being mutated through the session lock.
func (s *GameState) Clone() *GameState {
	c := *s
	c.PlayerCards = append(Hand(nil), s.PlayerCards...)
	c.DealerCards = append(Hand(nil), s.DealerCards...)
	return &c
}
