package domain

import "errors"

var (
	ErrUnknownKey         = errors.New("unknown key code")
	ErrBodyFull           = errors.New("body is at capacity")
	ErrEmptyBody          = errors.New("body needs at least one segment")
	ErrReentrant          = errors.New("re-entrant call into game")
	ErrNotInitialized     = errors.New("game not initialized")
	ErrAlreadyInitialized = errors.New("game already initialized")
	ErrInvalidConfig      = errors.New("invalid game config")
)
