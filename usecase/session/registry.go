// Package session maps game identifiers to live game instances. The
// registry is the only owner of that mapping; every mutating call goes
// through the session's per-game lock.
package session

import (
	"errors"
	"sync"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/nk-nigeria/blackjack-solo/entity"
	"github.com/nk-nigeria/blackjack-solo/usecase/engine"
)

var ErrNotFound = errors.New("game not found")

// Store is the swap point for a persistent or distributed backing
// store. The in-memory Registry is the only implementation here.
type Store interface {
	Create() *Session
	Get(id string) (*Session, error)
	Delete(id string)
	Len() int
}

// Session wraps one engine behind an exclusive lock so two concurrent
// actions on the same game cannot interleave their draws.
type Session struct {
	mu     sync.Mutex
	engine *engine.Engine
}

func (s *Session) ID() string {
	return s.State().ID
}

// State returns a snapshot safe to serialize.
func (s *Session) State() *entity.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.State().Clone()
}

func (s *Session) PlaceBet(amount float64) (*entity.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.engine.PlaceBet(amount)
	return s.engine.State().Clone(), err
}

func (s *Session) Action(action string) (*entity.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.engine.Action(action)
	return s.engine.State().Clone(), err
}

var _ Store = (*Registry)(nil)

// Registry is the process-wide in-memory store. Retention is
// unbounded: games live until Delete or process exit.
type Registry struct {
	mu       sync.RWMutex
	sessions *linkedhashmap.Map
	opts     []engine.Option
}

// NewRegistry builds a registry; opts are applied to every game it
// creates.
func NewRegistry(opts ...engine.Option) *Registry {
	return &Registry{
		sessions: linkedhashmap.New(),
		opts:     opts,
	}
}

func (r *Registry) Create() *Session {
	s := &Session{engine: engine.NewGame(r.opts...)}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions.Put(s.engine.State().ID, s)
	return s
}

func (r *Registry) Get(id string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, found := r.sessions.Get(id)
	if !found {
		return nil, ErrNotFound
	}
	return v.(*Session), nil
}

func (r *Registry) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions.Remove(id)
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sessions.Size()
}
