package session

import (
	"sync"
	"testing"

	"github.com/nk-nigeria/blackjack-solo/usecase/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryCreateAndGet(t *testing.T) {
	r := NewRegistry()
	s := r.Create()

	got, err := r.Get(s.ID())
	require.NoError(t, err)
	assert.Same(t, s, got, "registry must hold exactly one live instance per game")
	assert.Equal(t, 1, r.Len())
}

func TestRegistryGetUnknown(t *testing.T) {
	r := NewRegistry()
	_, err := r.Get("no-such-game")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRegistryDelete(t *testing.T) {
	r := NewRegistry()
	s := r.Create()
	r.Delete(s.ID())

	_, err := r.Get(s.ID())
	require.ErrorIs(t, err, ErrNotFound)
	assert.Zero(t, r.Len())
}

func TestSessionMutationIsShared(t *testing.T) {
	r := NewRegistry()
	s := r.Create()

	_, err := s.PlaceBet(100)
	require.NoError(t, err)

	got, err := r.Get(s.ID())
	require.NoError(t, err)
	assert.Equal(t, 900.0, got.State().Balance)
}

func TestSessionStateSnapshots(t *testing.T) {
	r := NewRegistry()
	s := r.Create()

	a := s.State()
	b := s.State()
	assert.Equal(t, a, b, "reads without intervening mutation must match")
	assert.NotSame(t, a, b, "snapshots are copies, not the live state")
}

func TestRegistryAppliesEngineOptions(t *testing.T) {
	r := NewRegistry(engine.WithStrictRules())
	s := r.Create()

	_, err := s.Action("double")
	require.ErrorIs(t, err, engine.ErrUnknownAction)
}

func TestConcurrentHitsDoNotLoseCards(t *testing.T) {
	r := NewRegistry()
	s := r.Create()

	const hits = 10
	var wg sync.WaitGroup
	wg.Add(hits)
	for i := 0; i < hits; i++ {
		go func() {
			defer wg.Done()
			_, _ = s.Action(engine.ActionHit)
		}()
	}
	wg.Wait()

	state := s.State()
	total := len(state.PlayerCards) + len(state.DealerCards)
	assert.Equal(t, 4+hits, total, "every concurrent hit must land exactly one card")
	assert.Equal(t, state.PlayerCards.Score(), state.PlayerScore)
}
