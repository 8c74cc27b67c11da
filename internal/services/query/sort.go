package query

import (
	"cmp"
	"slices"
	"strings"

	"github.com/mcoot/playerroster/internal/model"
)

// Sort orders players ascending by the given key, in place.
// A nil order leaves the slice untouched. Ties keep their input order.
func Sort(players []*model.Player, order *model.Order) []*model.Player {
	if order == nil {
		return players
	}
	slices.SortStableFunc(players, comparator(*order))
	return players
}

func comparator(order model.Order) func(a, b *model.Player) int {
	switch order {
	case model.OrderID:
		return func(a, b *model.Player) int { return cmp.Compare(a.ID, b.ID) }
	case model.OrderName:
		return func(a, b *model.Player) int { return strings.Compare(a.Name, b.Name) }
	case model.OrderExperience:
		return func(a, b *model.Player) int { return cmp.Compare(a.Experience, b.Experience) }
	case model.OrderBirthday:
		return func(a, b *model.Player) int { return a.Birthday.Compare(b.Birthday) }
	case model.OrderLevel:
		return func(a, b *model.Player) int { return cmp.Compare(a.Level, b.Level) }
	default:
		return func(a, b *model.Player) int { return 0 }
	}
}
