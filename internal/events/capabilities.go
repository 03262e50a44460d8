package events

import "eventrental/internal/pricing"

// Quote is implemented by every event variant: it can be priced and it
// exposes the shared event record.
type Quote interface {
	Base() *Event
	FoodPrice() float64
	BeveragePrice() float64
	Breakdown() Breakdown
	ComputeTotal() float64
}

// The optional services. A variant implements only the ones its category
// supports, so asking an unsupported category for a service does not compile.
type (
	TableService interface {
		TableCost() float64
	}

	DecorationService interface {
		DecorationCost() float64
	}

	CakeService interface {
		CakeCost() float64
	}

	MusicService interface {
		MusicCost() float64
	}
)

// Compile-time capability matrix.
var (
	_ TableService      = (*Wedding)(nil)
	_ DecorationService = (*Wedding)(nil)
	_ CakeService       = (*Wedding)(nil)
	_ MusicService      = (*Wedding)(nil)

	_ TableService      = (*BirthdayParty)(nil)
	_ DecorationService = (*BirthdayParty)(nil)
	_ CakeService       = (*BirthdayParty)(nil)
	_ MusicService      = (*BirthdayParty)(nil)

	_ MusicService = (*CorporateParty)(nil)

	_ TableService      = (*Graduation)(nil)
	_ DecorationService = (*Graduation)(nil)
	_ MusicService      = (*Graduation)(nil)

	_ Quote = (*Wedding)(nil)
	_ Quote = (*BirthdayParty)(nil)
	_ Quote = (*CorporateParty)(nil)
	_ Quote = (*Graduation)(nil)
	_ Quote = (*FreeParty)(nil)
)

// tieredServices groups the service costs that follow the event tier. It is
// embedded by the variants that support all of table, decoration and music.
type tieredServices struct {
	Event
}

func (s *tieredServices) TableCost() float64 {
	return pricing.TableCost(s.guestCount, s.tier)
}

func (s *tieredServices) DecorationCost() float64 {
	return pricing.DecorationCost(s.guestCount, s.tier)
}

func (s *tieredServices) MusicCost() float64 {
	return pricing.MusicCost(s.guestCount, s.tier)
}

func (s *tieredServices) FoodPrice() float64 {
	return s.tieredFoodPrice(s.tier)
}

// isPaidTier reports whether t is a tier a client can pick for categories with optional services.
func isPaidTier(t pricing.Tier) bool {
	return t == pricing.TierStandard || t == pricing.TierLuxo || t == pricing.TierPremier
}
