package venues

import "errors"

var (
	ErrVenueNotFound     = errors.New("venue not found")
	ErrInvalidCapacity   = errors.New("capacity must be greater than zero")
	ErrInvalidRentPrice  = errors.New("rent price must not be negative")
	ErrDateAlreadyBooked = errors.New("date already booked for venue")
	ErrDuplicateVenue    = errors.New("duplicate venue code")
)
