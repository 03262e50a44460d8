package venues

import (
	"fmt"
	"time"
)

// Catalog owns the set of bookable venues and is the only place where their
// booked dates and rent prices change. The venue list itself is fixed once the
// catalog is built.
type Catalog struct {
	venues []*Venue
	byCode map[string]*Venue
}

// NewCatalog builds a catalog keeping the given order for tie-breaks.
func NewCatalog(venues ...*Venue) (*Catalog, error) {
	c := &Catalog{
		venues: make([]*Venue, 0, len(venues)),
		byCode: make(map[string]*Venue, len(venues)),
	}
	for _, v := range venues {
		if v == nil {
			continue
		}
		if _, exists := c.byCode[v.code]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateVenue, v.code)
		}
		c.venues = append(c.venues, v)
		c.byCode[v.code] = v
	}
	return c, nil
}

// DefaultCatalog returns the company's standard set of venues A to H.
func DefaultCatalog() *Catalog {
	specs := []struct {
		code     string
		capacity int
		rent     float64
	}{
		{"A", 100, 10000},
		{"B", 100, 10000},
		{"C", 100, 10000},
		{"D", 100, 10000},
		{"E", 200, 17000},
		{"F", 200, 17000},
		{"G", 300, 25000},
		{"H", 500, 35000},
	}

	list := make([]*Venue, 0, len(specs))
	for _, s := range specs {
		v, err := NewVenue(s.code, s.capacity, s.rent)
		if err != nil {
			panic(err)
		}
		list = append(list, v)
	}

	c, err := NewCatalog(list...)
	if err != nil {
		panic(err)
	}
	return c
}

// Venues returns the venues in catalog order.
func (c *Catalog) Venues() []*Venue {
	out := make([]*Venue, len(c.venues))
	copy(out, c.venues)
	return out
}

// Get looks a venue up by its code.
func (c *Catalog) Get(code string) (*Venue, bool) {
	v, ok := c.byCode[code]
	return v, ok
}

// MaxCapacity returns the largest capacity in the catalog.
func (c *Catalog) MaxCapacity() int {
	largest := 0
	for _, v := range c.venues {
		if v.capacity > largest {
			largest = v.capacity
		}
	}
	return largest
}

// SelectBest returns the smallest venue that still fits guests. Ties are
// broken by the lower rent and then by catalog order. Booked dates are not
// considered: a venue is only unselectable when it is too small.
func (c *Catalog) SelectBest(guests int) (*Venue, bool) {
	if guests <= 0 {
		return nil, false
	}

	var best *Venue
	for _, v := range c.venues {
		if !v.Fits(guests) {
			continue
		}
		if best == nil ||
			v.capacity < best.capacity ||
			(v.capacity == best.capacity && v.RentPrice() < best.RentPrice()) {
			best = v
		}
	}
	return best, best != nil
}

// Book commits date for v. A venue can be booked at most once per day.
func (c *Catalog) Book(v *Venue, date time.Time) error {
	if err := c.owns(v); err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	key := dateKey(date)
	if _, booked := v.bookedDates[key]; booked {
		return fmt.Errorf("%w: %s on %s", ErrDateAlreadyBooked, v.code, key)
	}
	v.bookedDates[key] = struct{}{}
	return nil
}

// Restore marks date as booked without failing when it already is. It is used
// when the in-memory state is rebuilt from the record store.
func (c *Catalog) Restore(v *Venue, date time.Time) error {
	if err := c.owns(v); err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	v.bookedDates[dateKey(date)] = struct{}{}
	return nil
}

// ClearBookings forgets every booked date of every venue.
func (c *Catalog) ClearBookings() {
	for _, v := range c.venues {
		v.mu.Lock()
		v.bookedDates = make(map[string]struct{})
		v.mu.Unlock()
	}
}

// SetRentPrice changes the rent of the venue identified by code.
func (c *Catalog) SetRentPrice(code string, price float64) (*Venue, error) {
	if price < 0 {
		return nil, ErrInvalidRentPrice
	}

	v, ok := c.byCode[code]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrVenueNotFound, code)
	}

	v.mu.Lock()
	v.rentPrice = price
	v.mu.Unlock()

	return v, nil
}

func (c *Catalog) owns(v *Venue) error {
	if v == nil {
		return ErrVenueNotFound
	}
	if registered, ok := c.byCode[v.code]; !ok || registered != v {
		return fmt.Errorf("%w: %s", ErrVenueNotFound, v.code)
	}
	return nil
}
