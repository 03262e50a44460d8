package venues

import "time"

type VenueResponse struct {
	Code        string   `json:"code"`
	Capacity    int      `json:"capacity"`
	RentPrice   float64  `json:"rent_price"`
	BookedDates []string `json:"booked_dates"`
}

type SuggestionResponse struct {
	Guests        int           `json:"guests"`
	Venue         VenueResponse `json:"venue"`
	SuggestedDate string        `json:"suggested_date"`
	Weekday       string        `json:"weekday"`
}

func ToVenueResponse(v *Venue) VenueResponse {
	booked := v.BookedDates()
	dates := make([]string, 0, len(booked))
	for _, d := range booked {
		dates = append(dates, d.Format(DateLayout))
	}

	return VenueResponse{
		Code:        v.Code(),
		Capacity:    v.Capacity(),
		RentPrice:   v.RentPrice(),
		BookedDates: dates,
	}
}

func toSuggestionResponse(guests int, v *Venue, date time.Time) *SuggestionResponse {
	return &SuggestionResponse{
		Guests:        guests,
		Venue:         ToVenueResponse(v),
		SuggestedDate: date.Format(DateLayout),
		Weekday:       date.Weekday().String(),
	}
}
