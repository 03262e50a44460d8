package events

import (
	"fmt"
	"time"

	"eventrental/internal/pricing"
	"eventrental/internal/venues"
)

// New builds the variant for category. The requested tier is ignored by the
// categories that fix their own tier (BirthdayParty, FreeParty).
func New(category Category, date time.Time, guests int, venue *venues.Venue, tier pricing.Tier) (Quote, error) {
	switch category {
	case CategoryWedding:
		return NewWedding(date, guests, venue, tier)
	case CategoryBirthdayParty:
		return NewBirthdayParty(date, guests, venue)
	case CategoryCorporateParty:
		return NewCorporateParty(date, guests, venue, tier)
	case CategoryGraduation:
		return NewGraduation(date, guests, venue, tier)
	case CategoryFreeParty:
		return NewFreeParty(date, guests, venue)
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, category)
}

// Services lists the optional services q supports.
func Services(q Quote) []Service {
	var out []Service
	if _, ok := q.(TableService); ok {
		out = append(out, ServiceTable)
	}
	if _, ok := q.(DecorationService); ok {
		out = append(out, ServiceDecoration)
	}
	if _, ok := q.(CakeService); ok {
		out = append(out, ServiceCake)
	}
	if _, ok := q.(MusicService); ok {
		out = append(out, ServiceMusic)
	}
	return out
}
