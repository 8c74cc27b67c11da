package model

import "time"

// PlayerID uniquely identifies a player. Zero means "not yet stored".
type PlayerID int64

// Player is a character in the roster
type Player struct {
	ID             PlayerID
	Name           string
	Title          string
	Race           Race
	Profession     Profession
	Birthday       time.Time
	Banned         bool
	Experience     int
	Level          int // derived from Experience
	UntilNextLevel int // derived from Experience and Level
}

// Clone returns a copy of the player that shares no state with p
func (p *Player) Clone() *Player {
	c := *p
	return &c
}

// PlayerInput carries optional player fields.
// It is the candidate on create and the patch on update; nil means "not supplied".
type PlayerInput struct {
	Name       *string
	Title      *string
	Race       *Race
	Profession *Profession
	Birthday   *time.Time
	Banned     *bool
	Experience *int
}

// IsEmpty reports whether no field is supplied
func (in *PlayerInput) IsEmpty() bool {
	return in.Name == nil && in.Title == nil && in.Race == nil && in.Profession == nil &&
		in.Birthday == nil && in.Banned == nil && in.Experience == nil
}
