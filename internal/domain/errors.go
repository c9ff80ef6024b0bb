package domain

import "errors"

var (
	ErrArenaNotFound   = errors.New("arena not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrItemNotFound    = errors.New("item not found")
)

var (
	ErrArenaNotAvailable = errors.New("arena is not available")
)

var (
	ErrValidation = errors.New("validation error")
	ErrTimeout    = errors.New("operation timed out")
)
