package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type memMatch struct {
	mu      sync.RWMutex
	matches map[string]entity.Match
}

// NewInMemoryMatchRepository - keeps matches in process memory, for single-instance runs and tests.
func NewInMemoryMatchRepository() MatchRepository {
	return &memMatch{
		matches: make(map[string]entity.Match),
	}
}

func (that *memMatch) CreateOrUpdate(_ context.Context, match *entity.Match) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.matches[match.ID] = *match

	return nil
}

func (that *memMatch) GetByID(_ context.Context, id string) (*entity.Match, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	match, ok := that.matches[id]
	if !ok {
		return nil, ErrMatchNotFound
	}

	return &match, nil
}

func (that *memMatch) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.matches[id]; !ok {
		return ErrMatchNotFound
	}

	delete(that.matches, id)

	return nil
}
