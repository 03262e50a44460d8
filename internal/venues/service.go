package venues

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"
)

// ErrNoVenueFits is returned by the service layer when no venue in the
// catalog is large enough for the requested guest count.
var ErrNoVenueFits = errors.New("no venue fits the requested guest count")

// Scheduler proposes a venue and a date for a booking.
type Scheduler interface {
	SelectBestVenue(guests int) (*Venue, bool)
	NextAvailableDate(v *Venue) time.Time
}

// RentAdjuster applies operator rent changes.
type RentAdjuster interface {
	SetVenueRent(code string, price float64) (*Venue, error)
}

type Service interface {
	ListVenues(ctx context.Context) []VenueResponse
	GetVenue(ctx context.Context, code string) (*VenueResponse, error)
	Suggest(ctx context.Context, guests int) (*SuggestionResponse, error)
	UpdateRent(ctx context.Context, code string, req UpdateRentRequest) (*VenueResponse, error)
}

type service struct {
	catalog   *Catalog
	scheduler Scheduler
	adjuster  RentAdjuster
}

func NewService(catalog *Catalog, scheduler Scheduler, adjuster RentAdjuster) Service {
	return &service{
		catalog:   catalog,
		scheduler: scheduler,
		adjuster:  adjuster,
	}
}

func (s *service) ListVenues(ctx context.Context) []VenueResponse {
	list := s.catalog.Venues()
	out := make([]VenueResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToVenueResponse(v))
	}
	return out
}

func (s *service) GetVenue(ctx context.Context, code string) (*VenueResponse, error) {
	v, ok := s.catalog.Get(code)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrVenueNotFound, code)
	}
	resp := ToVenueResponse(v)
	return &resp, nil
}

func (s *service) Suggest(ctx context.Context, guests int) (*SuggestionResponse, error) {
	v, ok := s.scheduler.SelectBestVenue(guests)
	if !ok {
		return nil, fmt.Errorf("%w: %d guests (largest venue holds %d)", ErrNoVenueFits, guests, s.catalog.MaxCapacity())
	}

	date := s.scheduler.NextAvailableDate(v)
	return toSuggestionResponse(guests, v, date), nil
}

func (s *service) UpdateRent(ctx context.Context, code string, req UpdateRentRequest) (*VenueResponse, error) {
	if req.RentPrice == nil {
		return nil, ErrInvalidRentPrice
	}

	v, err := s.adjuster.SetVenueRent(code, *req.RentPrice)
	if err != nil {
		return nil, fmt.Errorf("failed to update rent: %w", err)
	}

	log.Printf("Rent for venue %s set to %.2f", v.Code(), v.RentPrice())
	resp := ToVenueResponse(v)
	return &resp, nil
}
