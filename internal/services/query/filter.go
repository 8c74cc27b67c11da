// Package query implements the in-memory filter, sort and page steps
// applied to a snapshot of the roster.
package query

import (
	"strings"
	"time"

	"github.com/mcoot/playerroster/internal/model"
)

// Criteria narrows the roster. Nil fields are ignored.
type Criteria struct {
	Name          *string // substring, case-sensitive
	Title         *string // substring, case-sensitive
	Race          *model.Race
	Profession    *model.Profession
	After         *time.Time // birthday strictly after
	Before        *time.Time // birthday strictly before
	Banned        *bool
	MinExperience *int // inclusive
	MaxExperience *int // inclusive
	MinLevel      *int // inclusive
	MaxLevel      *int // inclusive
}

// Matches reports whether p passes every supplied criterion
func (c Criteria) Matches(p *model.Player) bool {
	if c.Name != nil && !strings.Contains(p.Name, *c.Name) {
		return false
	}
	if c.Title != nil && !strings.Contains(p.Title, *c.Title) {
		return false
	}
	if c.Race != nil && p.Race != *c.Race {
		return false
	}
	if c.Profession != nil && p.Profession != *c.Profession {
		return false
	}
	if c.After != nil && !p.Birthday.After(*c.After) {
		return false
	}
	if c.Before != nil && !p.Birthday.Before(*c.Before) {
		return false
	}
	if c.MinExperience != nil && p.Experience < *c.MinExperience {
		return false
	}
	if c.MaxExperience != nil && p.Experience > *c.MaxExperience {
		return false
	}
	if c.MinLevel != nil && p.Level < *c.MinLevel {
		return false
	}
	if c.MaxLevel != nil && p.Level > *c.MaxLevel {
		return false
	}
	if c.Banned != nil && p.Banned != *c.Banned {
		return false
	}
	return true
}

// Filter returns the players matching c, keeping their input order
func Filter(players []*model.Player, c Criteria) []*model.Player {
	result := make([]*model.Player, 0, len(players))
	for _, p := range players {
		if c.Matches(p) {
			result = append(result, p)
		}
	}
	return result
}
