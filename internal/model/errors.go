package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")
	ErrInvalidPlayer  = errors.New("invalid player")

	// Query errors
	ErrInvalidPage = errors.New("invalid page request")
	ErrInvalidEnum = errors.New("invalid enum value")
)
