package registry

import "errors"

var (
	ErrNotPriced    = errors.New("event total has not been computed")
	ErrUnknownVenue = errors.New("record references an unknown venue")
)
