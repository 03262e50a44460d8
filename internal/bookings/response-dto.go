package bookings

import (
	"eventrental/internal/events"
	"eventrental/internal/registry"
	"eventrental/internal/venues"
)

type QuoteResponse struct {
	ID        string            `json:"id"`
	Category  string            `json:"category"`
	Tier      string            `json:"tier"`
	VenueCode string            `json:"venue_code"`
	Date      string            `json:"date"`
	Weekday   string            `json:"weekday"`
	Guests    int               `json:"guests"`
	Services  []events.Service  `json:"services"`
	Breakdown events.Breakdown  `json:"breakdown"`
	Foods     []events.FoodItem `json:"foods"`
	Beverages []events.Beverage `json:"beverages"`
	Total     float64           `json:"total"`
	Summary   string            `json:"summary"`
}

type BookingResponse struct {
	QuoteResponse
	CalendarLine string `json:"calendar_line"`
}

type CalendarEntry struct {
	ID        string  `json:"id"`
	Category  string  `json:"category"`
	Tier      string  `json:"tier"`
	VenueCode string  `json:"venue_code"`
	Date      string  `json:"date"`
	Guests    int     `json:"guests"`
	Total     float64 `json:"total"`
	Line      string  `json:"line"`
}

type CalendarResponse struct {
	Count  int             `json:"count"`
	Events []CalendarEntry `json:"events"`
}

func toQuoteResponse(q events.Quote) *QuoteResponse {
	e := q.Base()

	chosen := make([]events.Beverage, 0)
	for _, b := range e.Beverages() {
		if b.Quantity > 0 {
			chosen = append(chosen, b)
		}
	}

	return &QuoteResponse{
		ID:        e.ID().String(),
		Category:  e.Category().String(),
		Tier:      e.Tier().String(),
		VenueCode: e.Venue().Code(),
		Date:      e.Date().Format(venues.DateLayout),
		Weekday:   e.Date().Weekday().String(),
		Guests:    e.GuestCount(),
		Services:  events.Services(q),
		Breakdown: q.Breakdown(),
		Foods:     e.Foods(),
		Beverages: chosen,
		Total:     e.TotalPrice(),
		Summary:   events.Summary(q),
	}
}

func toCalendarEntry(e *events.Event) CalendarEntry {
	return CalendarEntry{
		ID:        e.ID().String(),
		Category:  e.Category().String(),
		Tier:      e.Tier().String(),
		VenueCode: e.Venue().Code(),
		Date:      e.Date().Format(venues.DateLayout),
		Guests:    e.GuestCount(),
		Total:     e.TotalPrice(),
		Line:      registry.CalendarLine(e),
	}
}
