package events

import (
	"fmt"
	"time"

	"eventrental/internal/pricing"
	"eventrental/internal/venues"

	"github.com/google/uuid"
)

// Beverage is a priced drink. Quantity stays zero until the client picks it.
type Beverage struct {
	Name      string       `json:"name"`
	UnitPrice float64      `json:"unit_price"`
	Tier      pricing.Tier `json:"tier"`
	Quantity  int          `json:"quantity"`
}

// Subtotal returns UnitPrice x Quantity.
func (b Beverage) Subtotal() float64 {
	return b.UnitPrice * float64(b.Quantity)
}

type FoodItem struct {
	Name string       `json:"name"`
	Tier pricing.Tier `json:"tier"`
}

// Event holds the data shared by every category. The venue is a shared
// reference owned by the catalog. The total price is only set by an explicit
// ComputeTotal call on the concrete variant.
type Event struct {
	id         uuid.UUID
	date       time.Time
	guestCount int
	venue      *venues.Venue
	tier       pricing.Tier
	category   Category
	foods      []FoodItem
	beverages  []Beverage
	totalPrice float64
	priced     bool
}

func newEvent(date time.Time, guests int, venue *venues.Venue, tier pricing.Tier, category Category) (Event, error) {
	if venue == nil {
		return Event{}, ErrVenueRequired
	}
	if guests <= 0 {
		return Event{}, ErrInvalidGuestCount
	}
	if guests > venue.Capacity() {
		return Event{}, fmt.Errorf("%w: %d guests, venue %s holds %d", ErrCapacityExceeded, guests, venue.Code(), venue.Capacity())
	}

	return Event{
		id:         uuid.New(),
		date:       venues.DateOf(date),
		guestCount: guests,
		venue:      venue,
		tier:       tier,
		category:   category,
	}, nil
}

// Restore rebuilds a finalized event read back from the record store.
func Restore(id uuid.UUID, date time.Time, guests int, venue *venues.Venue, tier pricing.Tier, category Category, total float64) (*Event, error) {
	if !category.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}
	if !tier.IsEventTier() {
		return nil, fmt.Errorf("%w: %q", ErrTierNotAllowed, tier)
	}
	if fixed, ok := category.FixedTier(); ok && tier != fixed {
		return nil, fmt.Errorf("%w: %s events are always %s, got %s", ErrTierNotAllowed, category, fixed, tier)
	}

	e, err := newEvent(date, guests, venue, tier, category)
	if err != nil {
		return nil, err
	}
	if id != uuid.Nil {
		e.id = id
	}
	e.totalPrice = total
	e.priced = true
	return &e, nil
}

// Base returns the shared event record. Variants embed Event, so this is how
// the registry reaches the common fields behind a Quote.
func (e *Event) Base() *Event {
	return e
}

func (e *Event) ID() uuid.UUID {
	return e.id
}

func (e *Event) Date() time.Time {
	return e.date
}

func (e *Event) GuestCount() int {
	return e.guestCount
}

func (e *Event) Venue() *venues.Venue {
	return e.venue
}

func (e *Event) Tier() pricing.Tier {
	return e.tier
}

func (e *Event) Category() Category {
	return e.category
}

// TotalPrice is the amount fixed by the last ComputeTotal call.
func (e *Event) TotalPrice() float64 {
	return e.totalPrice
}

// Priced reports whether ComputeTotal has been called.
func (e *Event) Priced() bool {
	return e.priced
}

// Foods returns a copy of the chosen food items.
func (e *Event) Foods() []FoodItem {
	out := make([]FoodItem, len(e.foods))
	copy(out, e.foods)
	return out
}

// Beverages returns a copy of the beverages offered to this event.
func (e *Event) Beverages() []Beverage {
	out := make([]Beverage, len(e.beverages))
	copy(out, e.beverages)
	return out
}

// RentPrice is the current rent of the event's venue.
func (e *Event) RentPrice() float64 {
	return e.venue.RentPrice()
}

// OfferBeverages replaces the selectable beverage list with the menu items the
// event's own tier allows. Quantities start at zero.
func (e *Event) OfferBeverages(menu []Beverage) {
	offered := make([]Beverage, 0, len(menu))
	for _, b := range menu {
		if !e.tier.Allows(b.Tier) {
			continue
		}
		b.Quantity = 0
		offered = append(offered, b)
	}
	e.beverages = offered
}

// SetBeverageQuantity sets how many units of an offered beverage the client wants.
func (e *Event) SetBeverageQuantity(name string, quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("%w: %s=%d", ErrInvalidQuantity, name, quantity)
	}
	for i := range e.beverages {
		if e.beverages[i].Name == name {
			e.beverages[i].Quantity = quantity
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrBeverageNotOffered, name)
}

// BeveragePrice sums the chosen beverages the event tier allows.
func (e *Event) BeveragePrice() float64 {
	var total float64
	for _, b := range e.beverages {
		if b.Quantity <= 0 || !e.tier.Allows(b.Tier) {
			continue
		}
		total += b.Subtotal()
	}
	return total
}

// ChooseFood records the food items of the event. Tiers with an allowance
// require exactly that many items, and every item must be offered to the tier.
func (e *Event) ChooseFood(items []FoodItem) error {
	if n, ok := pricing.FoodAllowance(e.tier); ok && len(items) != n {
		return fmt.Errorf("%w: %s events take exactly %d items, got %d", ErrFoodSelection, e.tier, n, len(items))
	}
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if !e.tier.Allows(item.Tier) {
			return fmt.Errorf("%w: %s is not offered to %s events", ErrFoodSelection, item.Name, e.tier)
		}
		if seen[item.Name] {
			return fmt.Errorf("%w: %s chosen more than once", ErrFoodSelection, item.Name)
		}
		seen[item.Name] = true
	}

	e.foods = make([]FoodItem, len(items))
	copy(e.foods, items)
	return nil
}

func (e *Event) tieredFoodPrice(tier pricing.Tier) float64 {
	return float64(e.guestCount) * pricing.FoodRate(tier)
}

func (e *Event) finalize(b Breakdown) float64 {
	e.totalPrice = b.Total()
	e.priced = true
	return e.totalPrice
}
