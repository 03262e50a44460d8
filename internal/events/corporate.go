package events

import (
	"fmt"
	"time"

	"eventrental/internal/pricing"
	"eventrental/internal/venues"
)

// CorporateParty only adds music, always charged at the Standard rate, to the
// rent, food and beverages.
type CorporateParty struct {
	Event
}

func NewCorporateParty(date time.Time, guests int, venue *venues.Venue, tier pricing.Tier) (*CorporateParty, error) {
	if !isPaidTier(tier) {
		return nil, fmt.Errorf("%w: %s %s", ErrTierNotAllowed, CategoryCorporateParty, tier)
	}
	e, err := newEvent(date, guests, venue, tier, CategoryCorporateParty)
	if err != nil {
		return nil, err
	}
	return &CorporateParty{e}, nil
}

func (c *CorporateParty) MusicCost() float64 {
	return pricing.MusicCost(c.guestCount, pricing.TierStandard)
}

func (c *CorporateParty) FoodPrice() float64 {
	return c.tieredFoodPrice(c.tier)
}

func (c *CorporateParty) Breakdown() Breakdown {
	return Breakdown{
		Rent: c.RentPrice(),
		Services: []ServiceCharge{
			{Service: ServiceMusic, Amount: c.MusicCost()},
		},
		Food:      c.FoodPrice(),
		Beverages: c.BeveragePrice(),
	}
}

func (c *CorporateParty) ComputeTotal() float64 {
	return c.finalize(c.Breakdown())
}
