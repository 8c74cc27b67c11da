package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/mcoot/playerroster/internal/model"
	"github.com/mcoot/playerroster/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Players are copied on the way in and out so callers never alias stored state.
type Storage struct {
	mu sync.RWMutex

	players map[model.PlayerID]*model.Player
	lastID  model.PlayerID
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players: make(map[model.PlayerID]*model.Player),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) FindAll(ctx context.Context) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*model.Player, 0, len(s.players))
	for _, p := range s.players {
		result = append(result, p.Clone())
	}
	slices.SortFunc(result, func(a, b *model.Player) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return result, nil
}

func (s *Storage) FindByID(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return player.Clone(), nil
}

func (s *Storage) Save(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if player.ID == 0 {
		s.lastID++
		player.ID = s.lastID
	} else if player.ID > s.lastID {
		s.lastID = player.ID
	}
	s.players[player.ID] = player.Clone()
	return nil
}

func (s *Storage) Delete(ctx context.Context, id model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.players[id]; !ok {
		return model.ErrPlayerNotFound
	}
	delete(s.players, id)
	return nil
}
