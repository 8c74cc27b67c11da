package redis

import (
	"fmt"

	"github.com/mcoot/playerroster/internal/model"
)

// Key prefix for all roster data
const keyPrefix = "roster"

// playerKey returns the Redis key holding a player document
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%d", keyPrefix, id)
}

// playersIndexKey returns the sorted set of player keys, scored by id
func playersIndexKey() string {
	return fmt.Sprintf("%s:idx:players", keyPrefix)
}

// playerSequenceKey returns the counter used to assign player ids
func playerSequenceKey() string {
	return fmt.Sprintf("%s:seq:player", keyPrefix)
}
