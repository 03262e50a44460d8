package bookings

import "errors"

var (
	ErrInvalidDate = errors.New("invalid event date")
	ErrInvalidTier = errors.New("invalid tier")
)
