// Package validation holds the player field rules applied on create and update.
package validation

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/mcoot/playerroster/internal/model"
)

const (
	MaxNameLength  = 12
	MaxTitleLength = 30
	MaxExperience  = 10_000_000
)

var (
	// BirthdayAfter is the exclusive lower bound: the day before 1 January 2000
	BirthdayAfter = time.Date(1999, time.December, 31, 0, 0, 0, 0, time.UTC)
	// BirthdayBefore is the exclusive upper bound: 31 December 3000
	BirthdayBefore = time.Date(3000, time.December, 31, 0, 0, 0, 0, time.UTC)
)

// FieldError reports the field that failed validation.
// It matches model.ErrInvalidPlayer with errors.Is.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error {
	return model.ErrInvalidPlayer
}

func fieldError(field, reason string) error {
	return &FieldError{Field: field, Reason: reason}
}

// IsValid reports whether in can be created as a new player
func IsValid(in *model.PlayerInput) bool {
	return Validate(in) == nil
}

// Validate checks a create candidate and returns the first failing field
func Validate(in *model.PlayerInput) error {
	if in == nil {
		return fieldError("player", "is required")
	}
	if in.Race == nil {
		return fieldError("race", "is required")
	}
	if in.Profession == nil {
		return fieldError("profession", "is required")
	}
	if in.Name == nil {
		return fieldError("name", "is required")
	}
	if err := CheckName(*in.Name); err != nil {
		return err
	}
	if in.Title == nil {
		return fieldError("title", "is required")
	}
	if err := CheckTitle(*in.Title); err != nil {
		return err
	}
	if in.Experience == nil {
		return fieldError("experience", "is required")
	}
	if *in.Experience < 0 || *in.Experience > MaxExperience {
		return fieldError("experience", fmt.Sprintf("must be between 0 and %d", MaxExperience))
	}
	if in.Birthday == nil {
		return fieldError("birthday", "is required")
	}
	return CheckBirthday(*in.Birthday)
}

// CheckName enforces the name length limit
func CheckName(name string) error {
	if utf8.RuneCountInString(name) > MaxNameLength {
		return fieldError("name", fmt.Sprintf("must be at most %d characters", MaxNameLength))
	}
	return nil
}

// CheckTitle enforces the title length limit
func CheckTitle(title string) error {
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return fieldError("title", fmt.Sprintf("must be at most %d characters", MaxTitleLength))
	}
	return nil
}

// CheckUpdateExperience is the experience rule for updates.
// Unlike creation, zero is rejected here.
func CheckUpdateExperience(exp int) error {
	if exp <= 0 || exp > MaxExperience {
		return fieldError("experience", fmt.Sprintf("must be between 1 and %d", MaxExperience))
	}
	return nil
}

// CheckBirthday requires the birthday to lie strictly inside the allowed window
func CheckBirthday(birthday time.Time) error {
	if !birthday.After(BirthdayAfter) || !birthday.Before(BirthdayBefore) {
		return fieldError("birthday", "must be between years 2000 and 3000")
	}
	return nil
}
