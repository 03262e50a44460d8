package events

import (
	"time"

	"eventrental/internal/pricing"
	"eventrental/internal/venues"
)

// FreeParty is an unstructured event: rent, a flat food baseline and
// beverages. It has no tier (Null) and no optional services.
type FreeParty struct {
	Event
}

func NewFreeParty(date time.Time, guests int, venue *venues.Venue) (*FreeParty, error) {
	e, err := newEvent(date, guests, venue, pricing.TierNull, CategoryFreeParty)
	if err != nil {
		return nil, err
	}
	return &FreeParty{e}, nil
}

// FoodPrice charges the Standard per-guest food rate even though the party
// has no tier.
func (f *FreeParty) FoodPrice() float64 {
	return f.tieredFoodPrice(pricing.TierStandard)
}

func (f *FreeParty) Breakdown() Breakdown {
	return Breakdown{
		Rent:      f.RentPrice(),
		Food:      f.FoodPrice(),
		Beverages: f.BeveragePrice(),
	}
}

func (f *FreeParty) ComputeTotal() float64 {
	return f.finalize(f.Breakdown())
}
