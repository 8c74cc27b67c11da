// Package players is the facade the HTTP layer talks to: it runs the
// query engines over storage and applies validation and leveling on writes.
package players

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/mcoot/playerroster/internal/metrics"
	"github.com/mcoot/playerroster/internal/model"
	"github.com/mcoot/playerroster/internal/services/leveling"
	"github.com/mcoot/playerroster/internal/services/query"
	"github.com/mcoot/playerroster/internal/services/validation"
	"github.com/mcoot/playerroster/internal/storage"
)

// ListQuery combines the filter, ordering and paging of a list request.
// A nil Order keeps storage order; nil paging fields use the query defaults.
type ListQuery struct {
	Criteria   query.Criteria
	Order      *model.Order
	PageNumber *int
	PageSize   *int
}

// Service provides player operations
type Service struct {
	storage storage.Storage
	logger  *zap.Logger
}

// New creates a new player service
func New(storage storage.Storage, logger *zap.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// List returns one page of the players matching the query
func (s *Service) List(ctx context.Context, q ListQuery) ([]*model.Player, error) {
	all, err := s.storage.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := query.Sort(query.Filter(all, q.Criteria), q.Order)
	page, err := query.Page(matched, q.PageNumber, q.PageSize)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("listed players",
		zap.Int("matched", len(matched)),
		zap.Int("returned", len(page)),
	)
	return page, nil
}

// Count returns how many players match the criteria, ignoring paging
func (s *Service) Count(ctx context.Context, c query.Criteria) (int, error) {
	all, err := s.storage.FindAll(ctx)
	if err != nil {
		return 0, err
	}
	return len(query.Filter(all, c)), nil
}

// Get retrieves a player by ID
func (s *Service) Get(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	return s.storage.FindByID(ctx, id)
}

// Create validates the input and stores a new player
func (s *Service) Create(ctx context.Context, in model.PlayerInput) (*model.Player, error) {
	if err := validation.Validate(&in); err != nil {
		s.rejected("create", err)
		return nil, err
	}

	player := &model.Player{
		Name:       *in.Name,
		Title:      *in.Title,
		Race:       *in.Race,
		Profession: *in.Profession,
		Birthday:   in.Birthday.UTC(),
		Experience: *in.Experience,
	}
	if in.Banned != nil {
		player.Banned = *in.Banned
	}
	player.Level, player.UntilNextLevel = leveling.Apply(player.Experience)

	if err := s.storage.Save(ctx, player); err != nil {
		return nil, err
	}

	metrics.PlayersCreatedTotal.Inc()
	s.logger.Info("player created",
		zap.Int64("player_id", int64(player.ID)),
		zap.String("name", player.Name),
	)
	return player, nil
}

// Update applies a partial update to an existing player.
// Nothing is stored unless every supplied field passes.
func (s *Service) Update(ctx context.Context, id model.PlayerID, patch model.PlayerInput) (*model.Player, error) {
	player, err := s.storage.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.IsEmpty() {
		return player, nil
	}

	if err := ApplyPatch(player, patch); err != nil {
		s.rejected("update", err)
		return nil, err
	}

	if err := s.storage.Save(ctx, player); err != nil {
		return nil, err
	}

	metrics.PlayersUpdatedTotal.Inc()
	s.logger.Info("player updated", zap.Int64("player_id", int64(id)))
	return player, nil
}

// Delete removes a player and returns what was stored
func (s *Service) Delete(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	player, err := s.storage.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.storage.Delete(ctx, id); err != nil {
		return nil, err
	}

	metrics.PlayersDeletedTotal.Inc()
	s.logger.Info("player deleted", zap.Int64("player_id", int64(id)))
	return player, nil
}

func (s *Service) rejected(operation string, err error) {
	metrics.ValidationFailuresTotal.WithLabelValues(operation).Inc()

	var fieldErr *validation.FieldError
	if errors.As(err, &fieldErr) {
		s.logger.Info("player rejected",
			zap.String("operation", operation),
			zap.String("field", fieldErr.Field),
			zap.String("reason", fieldErr.Reason),
		)
	}
}
