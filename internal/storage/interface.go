package storage

import (
	"context"

	"github.com/mcoot/playerroster/internal/model"
)

// Storage defines the interface for player persistence
type Storage interface {
	// FindAll returns every stored player. Order is backend defined.
	FindAll(ctx context.Context) ([]*model.Player, error)
	// FindByID returns model.ErrPlayerNotFound when no player has id
	FindByID(ctx context.Context, id model.PlayerID) (*model.Player, error)
	// Save inserts the player when its ID is zero, assigning the new ID,
	// and overwrites the stored player otherwise
	Save(ctx context.Context, player *model.Player) error
	// Delete removes the player; model.ErrPlayerNotFound if absent
	Delete(ctx context.Context, id model.PlayerID) error
}
