package request

import (
	"time"

	"github.com/mcoot/playerroster/internal/model"
)

// PlayerRequest is the request body for creating or updating a player.
// Absent fields stay nil; birthday is epoch milliseconds.
type PlayerRequest struct {
	Name       *string           `json:"name"`
	Title      *string           `json:"title"`
	Race       *model.Race       `json:"race"`
	Profession *model.Profession `json:"profession"`
	Birthday   *int64            `json:"birthday"`
	Banned     *bool             `json:"banned"`
	Experience *int              `json:"experience"`
}

// ToInput converts the request into service input
func (r PlayerRequest) ToInput() model.PlayerInput {
	in := model.PlayerInput{
		Name:       r.Name,
		Title:      r.Title,
		Race:       r.Race,
		Profession: r.Profession,
		Banned:     r.Banned,
		Experience: r.Experience,
	}
	if r.Birthday != nil {
		birthday := time.UnixMilli(*r.Birthday).UTC()
		in.Birthday = &birthday
	}
	return in
}
