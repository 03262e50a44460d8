package events

import (
	"time"

	"eventrental/internal/pricing"
	"eventrental/internal/venues"
)

// BirthdayParty supports every optional service but is always priced at the
// Standard tier, so Luxo/Premier menu items are never offered to it.
type BirthdayParty struct {
	tieredServices
}

func NewBirthdayParty(date time.Time, guests int, venue *venues.Venue) (*BirthdayParty, error) {
	e, err := newEvent(date, guests, venue, pricing.TierStandard, CategoryBirthdayParty)
	if err != nil {
		return nil, err
	}
	return &BirthdayParty{tieredServices{e}}, nil
}

func (b *BirthdayParty) CakeCost() float64 {
	return pricing.CakeCost(b.guestCount, b.tier)
}

func (b *BirthdayParty) Breakdown() Breakdown {
	return Breakdown{
		Rent: b.RentPrice(),
		Services: []ServiceCharge{
			{Service: ServiceTable, Amount: b.TableCost()},
			{Service: ServiceDecoration, Amount: b.DecorationCost()},
			{Service: ServiceCake, Amount: b.CakeCost()},
			{Service: ServiceMusic, Amount: b.MusicCost()},
		},
		Food:      b.FoodPrice(),
		Beverages: b.BeveragePrice(),
	}
}

func (b *BirthdayParty) ComputeTotal() float64 {
	return b.finalize(b.Breakdown())
}
