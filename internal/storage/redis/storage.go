package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/mcoot/playerroster/internal/model"
	"github.com/mcoot/playerroster/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
}

// raiseSequence moves the id sequence up to ARGV[1] so INCR never hands out an id already in use
var raiseSequence = redis.NewScript(`
local current = tonumber(redis.call('GET', KEYS[1]) or '0')
local id = tonumber(ARGV[1])
if id > current then
	redis.call('SET', KEYS[1], ARGV[1])
end
return 0
`)

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return &Storage{client: client}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client) *Storage {
	return &Storage{client: client}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) FindAll(ctx context.Context) ([]*model.Player, error) {
	keys, err := s.client.ZRange(ctx, playersIndexKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	if len(keys) == 0 {
		return []*model.Player{}, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	players := make([]*model.Player, 0, len(values))
	for i, val := range values {
		str, ok := val.(string)
		if !ok {
			continue // Index entry without a document
		}
		var player model.Player
		if err := json.Unmarshal([]byte(str), &player); err != nil {
			return nil, fmt.Errorf("decode %s: %w", keys[i], err)
		}
		players = append(players, &player)
	}

	return players, nil
}

func (s *Storage) FindByID(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	data, err := s.client.Get(ctx, playerKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	var player model.Player
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *Storage) Save(ctx context.Context, player *model.Player) error {
	assigned := player.ID == 0
	if assigned {
		id, err := s.client.Incr(ctx, playerSequenceKey()).Result()
		if err != nil {
			return fmt.Errorf("assign player id: %w", err)
		}
		player.ID = model.PlayerID(id)
	}

	data, err := json.Marshal(player)
	if err != nil {
		return err
	}

	key := playerKey(player.ID)

	// Document and index are written together
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.ZAdd(ctx, playersIndexKey(), redis.Z{Score: float64(player.ID), Member: key})
	if !assigned {
		raiseSequence.Eval(ctx, pipe, []string{playerSequenceKey()}, int64(player.ID))
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) Delete(ctx context.Context, id model.PlayerID) error {
	key := playerKey(id)

	pipe := s.client.TxPipeline()
	deleted := pipe.Del(ctx, key)
	pipe.ZRem(ctx, playersIndexKey(), key)
	if _, err := pipe.Exec(ctx); err != nil {
		return err
	}

	if deleted.Val() == 0 {
		return model.ErrPlayerNotFound
	}
	return nil
}
