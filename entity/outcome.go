package entity

type GameStatus string

const (
	StatusWaiting    GameStatus = "waiting"
	StatusPlaying    GameStatus = "playing"
	StatusPlayerWin  GameStatus = "player_win"
	StatusDealerWin  GameStatus = "dealer_win"
	StatusPush       GameStatus = "push"
	StatusPlayerBust GameStatus = "player_bust"
	StatusDealerBust GameStatus = "dealer_bust"
)

// Finished reports whether the status is terminal for the round.
func (s GameStatus) Finished() bool {
	switch s {
	case StatusPlayerWin, StatusDealerWin, StatusPush, StatusPlayerBust, StatusDealerBust:
		return true
	}
	return false
}

// Resolve compares two finished hands. The dealer-bust case never
// reaches here; the engine short-circuits it before resolving.
func Resolve(playerScore, dealerScore int) GameStatus {
	switch {
	case playerScore > BustScore:
		return StatusDealerWin
	case dealerScore > BustScore:
		return StatusPlayerWin
	case playerScore > dealerScore:
		return StatusPlayerWin
	case dealerScore > playerScore:
		return StatusDealerWin
	default:
		return StatusPush
	}
}
