package events

import "errors"

var (
	ErrInvalidCategory    = errors.New("invalid event category")
	ErrInvalidGuestCount  = errors.New("guest count must be greater than zero")
	ErrCapacityExceeded   = errors.New("guest count exceeds venue capacity")
	ErrVenueRequired      = errors.New("venue is required")
	ErrTierNotAllowed     = errors.New("tier not allowed for this category")
	ErrBeverageNotOffered = errors.New("beverage not offered for this event")
	ErrInvalidQuantity    = errors.New("quantity must not be negative")
	ErrFoodSelection      = errors.New("invalid food selection")
)
