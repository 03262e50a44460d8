package venues

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// Venue is a bookable space. Code and capacity never change after creation;
// the rent price can be adjusted by an operator and the booked dates grow as
// events are committed through the Catalog.
type Venue struct {
	mu          sync.RWMutex
	code        string
	capacity    int
	rentPrice   float64
	bookedDates map[string]struct{}
}

// NewVenue creates a venue with no booked dates.
func NewVenue(code string, capacity int, rentPrice float64) (*Venue, error) {
	if code == "" {
		return nil, fmt.Errorf("venue code is required")
	}
	if capacity <= 0 {
		return nil, fmt.Errorf("venue %s: %w", code, ErrInvalidCapacity)
	}
	if rentPrice < 0 {
		return nil, fmt.Errorf("venue %s: %w", code, ErrInvalidRentPrice)
	}

	return &Venue{
		code:        code,
		capacity:    capacity,
		rentPrice:   rentPrice,
		bookedDates: make(map[string]struct{}),
	}, nil
}

func (v *Venue) Code() string {
	return v.code
}

func (v *Venue) Capacity() int {
	return v.capacity
}

func (v *Venue) RentPrice() float64 {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.rentPrice
}

// Fits reports whether the venue can host the given number of guests.
func (v *Venue) Fits(guests int) bool {
	return guests > 0 && guests <= v.capacity
}

// IsBooked reports whether the venue already has an event on the day of t.
func (v *Venue) IsBooked(t time.Time) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	_, ok := v.bookedDates[dateKey(t)]
	return ok
}

// BookedDates returns the committed dates in ascending order.
func (v *Venue) BookedDates() []time.Time {
	v.mu.RLock()
	defer v.mu.RUnlock()

	dates := make([]time.Time, 0, len(v.bookedDates))
	for key := range v.bookedDates {
		d, err := time.Parse(DateLayout, key)
		if err != nil {
			continue
		}
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

func (v *Venue) String() string {
	return fmt.Sprintf("%s (capacity %d, rent %.2f)", v.code, v.capacity, v.RentPrice())
}
