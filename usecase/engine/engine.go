package engine

import (
	"errors"

	"github.com/coder/quartz"
	"github.com/nk-nigeria/blackjack-solo/entity"
	"github.com/qmuntal/stateless"
)

const (
	ActionHit   = "hit"
	ActionStand = "stand"
)

var (
	ErrInsufficientBalance = errors.New("insufficient balance")

	// Strict-rules errors. The legacy rules never return these; the
	// inputs are accepted or ignored instead.
	ErrUnknownAction = errors.New("unknown action")
	ErrInvalidBet    = errors.New("invalid bet amount")
	ErrRoundClosed   = errors.New("round already resolved")
)

// Engine drives a single game: it owns the state, the remaining deck
// and the status machine. It is not safe for concurrent use; the
// session layer serializes access per game identifier.
type Engine struct {
	state   *entity.GameState
	deck    *entity.Deck
	machine *stateless.StateMachine
	clock   quartz.Clock
	strict  bool
}

type Option func(*Engine)

// WithDeck replaces the shuffled deck, rigging the deal.
func WithDeck(d *entity.Deck) Option {
	return func(e *Engine) { e.deck = d }
}

func WithClock(c quartz.Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithStrictRules rejects unknown actions, non-positive bets and play
// on a resolved round, and zeroes the bet after resolution. The
// default keeps the legacy-compatible permissive behavior.
func WithStrictRules() Option {
	return func(e *Engine) { e.strict = true }
}

// NewGame builds and shuffles a deck, deals two cards each to the
// player and the dealer, and opens the round. The dealer score covers
// only the upcard until the player stands.
func NewGame(opts ...Option) *Engine {
	e := &Engine{
		clock:   quartz.NewReal(),
		machine: newStatusMachine(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.deck == nil {
		e.deck = entity.NewDeck()
		e.deck.Shuffle()
	}

	s := entity.NewGameState(entity.NewGameID(), e.clock.Now())
	e.state = s

	e.drawTo(&s.PlayerCards, entity.InitialHandSize)
	e.drawTo(&s.DealerCards, entity.InitialHandSize)
	s.PlayerScore = s.PlayerCards.Score()
	s.DealerScore = s.DealerCards.Upcard()
	e.fire(triggerDeal)
	return e
}

// State returns the live game state. Callers that serialize it while
// the game may still be mutated should Clone first.
func (e *Engine) State() *entity.GameState {
	return e.state
}

// PlaceBet deducts the amount from the balance and records it as the
// round's wager. Nothing is mutated on failure. The legacy rules do
// not validate the amount's sign or the round's status.
func (e *Engine) PlaceBet(amount float64) error {
	s := e.state
	if e.strict {
		if amount <= 0 {
			return ErrInvalidBet
		}
		if s.GameStatus != entity.StatusPlaying {
			return ErrRoundClosed
		}
	}
	if amount > s.Balance {
		return ErrInsufficientBalance
	}
	s.Balance -= amount
	s.BetAmount = amount
	return nil
}

// Action applies a player action. Unknown actions are a silent no-op
// under the legacy rules.
func (e *Engine) Action(action string) error {
	if e.strict && e.state.GameStatus.Finished() {
		return ErrRoundClosed
	}
	switch action {
	case ActionHit:
		e.hit()
	case ActionStand:
		e.stand()
	default:
		if e.strict {
			return ErrUnknownAction
		}
	}
	return nil
}

func (e *Engine) hit() {
	s := e.state
	c, ok := e.deck.Draw()
	if !ok {
		return
	}
	s.PlayerCards.Add(c)
	s.PlayerScore = s.PlayerCards.Score()
	if s.PlayerScore > entity.BustScore {
		e.fire(triggerPlayerBust)
	}
}

func (e *Engine) stand() {
	s := e.state
	score := s.DealerCards.Score()
	for score < entity.DealerStandScore {
		c, ok := e.deck.Draw()
		if !ok {
			break
		}
		s.DealerCards.Add(c)
		score = s.DealerCards.Score()
	}
	s.DealerScore = score

	if score > entity.BustScore {
		e.fire(triggerDealerBust)
		s.Balance += s.BetAmount * 2
	} else {
		outcome := entity.Resolve(s.PlayerScore, score)
		e.fire(triggerFor(outcome))
		switch outcome {
		case entity.StatusPlayerWin:
			s.Balance += s.BetAmount * 2
		case entity.StatusPush:
			s.Balance += s.BetAmount
		}
	}
	if e.strict {
		s.BetAmount = 0
	}
}

func (e *Engine) fire(trigger stateless.Trigger) {
	if err := e.machine.Fire(trigger); err != nil {
		return
	}
	e.state.GameStatus = e.machine.MustState().(entity.GameStatus)
}

func (e *Engine) drawTo(h *entity.Hand, n int) {
	for i := 0; i < n; i++ {
		c, ok := e.deck.Draw()
		if !ok {
			return
		}
		h.Add(c)
	}
}
