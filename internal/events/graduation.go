package events

import (
	"fmt"
	"time"

	"eventrental/internal/pricing"
	"eventrental/internal/venues"
)

// Graduation supports table, decoration and music. Cake is not offered.
type Graduation struct {
	tieredServices
}

func NewGraduation(date time.Time, guests int, venue *venues.Venue, tier pricing.Tier) (*Graduation, error) {
	if !isPaidTier(tier) {
		return nil, fmt.Errorf("%w: %s %s", ErrTierNotAllowed, CategoryGraduation, tier)
	}
	e, err := newEvent(date, guests, venue, tier, CategoryGraduation)
	if err != nil {
		return nil, err
	}
	return &Graduation{tieredServices{e}}, nil
}

func (g *Graduation) Breakdown() Breakdown {
	return Breakdown{
		Rent: g.RentPrice(),
		Services: []ServiceCharge{
			{Service: ServiceTable, Amount: g.TableCost()},
			{Service: ServiceDecoration, Amount: g.DecorationCost()},
			{Service: ServiceMusic, Amount: g.MusicCost()},
		},
		Food:      g.FoodPrice(),
		Beverages: g.BeveragePrice(),
	}
}

func (g *Graduation) ComputeTotal() float64 {
	return g.finalize(g.Breakdown())
}
