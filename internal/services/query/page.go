package query

import (
	"fmt"

	"github.com/mcoot/playerroster/internal/model"
)

const (
	DefaultPageNumber = 0
	DefaultPageSize   = 3
)

// Page returns the pageNumber-th window of pageSize players.
// Nil arguments fall back to the defaults. A page that starts at or beyond
// the end of the slice is empty rather than an error.
func Page(players []*model.Player, pageNumber, pageSize *int) ([]*model.Player, error) {
	page := DefaultPageNumber
	if pageNumber != nil {
		page = *pageNumber
	}
	size := DefaultPageSize
	if pageSize != nil {
		size = *pageSize
	}
	if page < 0 {
		return nil, fmt.Errorf("%w: page number %d is negative", model.ErrInvalidPage, page)
	}
	if size < 0 {
		return nil, fmt.Errorf("%w: page size %d is negative", model.ErrInvalidPage, size)
	}

	// page > len/size also keeps page*size from overflowing
	if size == 0 || page > len(players)/size {
		return []*model.Player{}, nil
	}
	from := page * size
	if from == len(players) {
		return []*model.Player{}, nil
	}
	to := min(from+size, len(players))
	return players[from:to], nil
}
