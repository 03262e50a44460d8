package scheduling

import (
	"errors"
	"fmt"
	"time"

	"eventrental/internal/clock"
	"eventrental/internal/venues"
)

// LeadTimeDays is how far ahead of today the earliest bookable date is.
const LeadTimeDays = 30

// ErrLeadTime is returned for a date closer than LeadTimeDays to today.
var ErrLeadTime = errors.New("event date is less than 30 days away")

// Proposal pairs the venue chosen for a guest count with the first date it
// can host the event.
type Proposal struct {
	Venue *venues.Venue
	Date  time.Time
}

// Scheduler proposes venues and dates. It never changes booking state.
type Scheduler struct {
	catalog *venues.Catalog
	clock   clock.Clock
}

func NewScheduler(catalog *venues.Catalog, clk clock.Clock) *Scheduler {
	if clk == nil {
		clk = clock.NewSystem()
	}
	return &Scheduler{
		catalog: catalog,
		clock:   clk,
	}
}

// SelectBestVenue returns the cheapest venue that fits guests.
func (s *Scheduler) SelectBestVenue(guests int) (*venues.Venue, bool) {
	return s.catalog.SelectBest(guests)
}

// NextAvailableDate returns the first Friday or Saturday, at least
// LeadTimeDays after today, that v has not booked yet.
func (s *Scheduler) NextAvailableDate(v *venues.Venue) time.Time {
	d := s.EarliestDate()
	for !IsEventDay(d) || v.IsBooked(d) {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// EarliestDate is the first day an event may be booked on.
func (s *Scheduler) EarliestDate() time.Time {
	return clock.Today(s.clock).AddDate(0, 0, LeadTimeDays)
}

// CheckLeadTime rejects dates earlier than EarliestDate.
func (s *Scheduler) CheckLeadTime(date time.Time) error {
	earliest := s.EarliestDate()
	if venues.DateOf(date).Before(earliest) {
		return fmt.Errorf("%w: %s, earliest is %s", ErrLeadTime,
			venues.DateOf(date).Format(venues.DateLayout), earliest.Format(venues.DateLayout))
	}
	return nil
}

// Propose selects the venue for guests and its next available date.
func (s *Scheduler) Propose(guests int) (Proposal, bool) {
	v, ok := s.SelectBestVenue(guests)
	if !ok {
		return Proposal{}, false
	}
	return Proposal{Venue: v, Date: s.NextAvailableDate(v)}, true
}

// IsEventDay reports whether events are held on the weekday of t.
func IsEventDay(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Friday || wd == time.Saturday
}
