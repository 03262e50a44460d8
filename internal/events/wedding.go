package events

import (
	"fmt"
	"time"

	"eventrental/internal/pricing"
	"eventrental/internal/venues"
)

// Wedding supports every optional service.
type Wedding struct {
	tieredServices
}

func NewWedding(date time.Time, guests int, venue *venues.Venue, tier pricing.Tier) (*Wedding, error) {
	if !isPaidTier(tier) {
		return nil, fmt.Errorf("%w: %s %s", ErrTierNotAllowed, CategoryWedding, tier)
	}
	e, err := newEvent(date, guests, venue, tier, CategoryWedding)
	if err != nil {
		return nil, err
	}
	return &Wedding{tieredServices{e}}, nil
}

func (w *Wedding) CakeCost() float64 {
	return pricing.CakeCost(w.guestCount, w.tier)
}

func (w *Wedding) Breakdown() Breakdown {
	return Breakdown{
		Rent: w.RentPrice(),
		Services: []ServiceCharge{
			{Service: ServiceTable, Amount: w.TableCost()},
			{Service: ServiceDecoration, Amount: w.DecorationCost()},
			{Service: ServiceCake, Amount: w.CakeCost()},
			{Service: ServiceMusic, Amount: w.MusicCost()},
		},
		Food:      w.FoodPrice(),
		Beverages: w.BeveragePrice(),
	}
}

// ComputeTotal prices the wedding and stores the result on the event.
func (w *Wedding) ComputeTotal() float64 {
	return w.finalize(w.Breakdown())
}
