package bookings

import (
	"context"
	"fmt"
	"log"
	"time"

	"eventrental/internal/events"
	"eventrental/internal/pricing"
	"eventrental/internal/shared/constants"
	"eventrental/internal/shared/utils/input"
	"eventrental/internal/venues"
	"eventrental/pkg/cache"
	"eventrental/pkg/logger"
)

// Registry is what the booking flow needs from the company registry.
type Registry interface {
	Catalog() *venues.Catalog
	SelectBestVenue(guests int) (*venues.Venue, bool)
	NextAvailableDate(v *venues.Venue) time.Time
	CheckLeadTime(date time.Time) error
	AddEventAndPersist(ctx context.Context, q events.Quote, path string) error
	Events() []*events.Event
}

type Service interface {
	Quote(ctx context.Context, req QuoteRequest) (*QuoteResponse, error)
	Book(ctx context.Context, req QuoteRequest) (*BookingResponse, error)
	Calendar(ctx context.Context) (*CalendarResponse, error)
	BeverageMenu(ctx context.Context, query BeverageMenuQuery) ([]events.Beverage, error)
}

type service struct {
	registry     Registry
	cacheService cache.Service
	storePath    string
	calendarTTL  time.Duration
	log          *logger.Logger
}

// NewService creates the booking service. cacheService may be nil when Redis
// is disabled.
func NewService(registry Registry, cacheService cache.Service, storePath string, calendarTTL time.Duration) Service {
	if calendarTTL <= 0 {
		calendarTTL = constants.TTL_CALENDAR
	}
	return &service{
		registry:     registry,
		cacheService: cacheService,
		storePath:    storePath,
		calendarTTL:  calendarTTL,
		log:          logger.GetDefault(),
	}
}

func (s *service) Quote(ctx context.Context, req QuoteRequest) (*QuoteResponse, error) {
	q, err := s.build(req)
	if err != nil {
		return nil, err
	}
	return toQuoteResponse(q), nil
}

func (s *service) Book(ctx context.Context, req QuoteRequest) (*BookingResponse, error) {
	q, err := s.build(req)
	if err != nil {
		return nil, err
	}

	if err := s.registry.AddEventAndPersist(ctx, q, s.storePath); err != nil {
		return nil, fmt.Errorf("failed to book event: %w", err)
	}
	invalidateCalendarCache(ctx, s.cacheService)

	log.Printf("Booked %s at venue %s on %s", q.Base().Category(), q.Base().Venue().Code(), q.Base().Date().Format(venues.DateLayout))
	return &BookingResponse{
		QuoteResponse: *toQuoteResponse(q),
		CalendarLine:  toCalendarEntry(q.Base()).Line,
	}, nil
}

func (s *service) Calendar(ctx context.Context) (*CalendarResponse, error) {
	if cached, ok := getCachedCalendar(ctx, s.cacheService); ok {
		return cached, nil
	}

	list := s.registry.Events()
	calendar := &CalendarResponse{
		Count:  len(list),
		Events: make([]CalendarEntry, 0, len(list)),
	}
	for _, e := range list {
		calendar.Events = append(calendar.Events, toCalendarEntry(e))
	}

	setCachedCalendar(ctx, s.cacheService, calendar, s.calendarTTL)
	return calendar, nil
}

func (s *service) BeverageMenu(ctx context.Context, query BeverageMenuQuery) ([]events.Beverage, error) {
	tier := pricing.TierGeneral
	if query.Tier != "" {
		t, err := pricing.ParseTier(query.Tier)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidTier, err)
		}
		tier = t
	}

	if query.Category != "" {
		category, err := events.ParseCategory(query.Category)
		if err != nil {
			return nil, err
		}
		if fixed, ok := category.FixedTier(); ok {
			tier = fixed
		}
	}

	quantity := 0
	if query.Quantity != "" {
		q, err := input.ParseQuantity(query.Quantity)
		if err != nil {
			return nil, err
		}
		quantity = q
	}

	menu := events.DefaultBeverageMenu()
	if tier != pricing.TierGeneral {
		menu = events.BeveragesFor(menu, tier)
	}
	for i := range menu {
		menu[i].Quantity = quantity
	}
	return menu, nil
}

// build turns a request into a priced quote. It never books anything.
func (s *service) build(req QuoteRequest) (events.Quote, error) {
	category, err := events.ParseCategory(req.Category)
	if err != nil {
		return nil, err
	}

	tier, err := s.resolveTier(category, req.Tier)
	if err != nil {
		return nil, err
	}

	venue, err := s.resolveVenue(req.VenueCode, req.Guests)
	if err != nil {
		return nil, err
	}

	date, err := s.resolveDate(req.Date, venue)
	if err != nil {
		return nil, err
	}

	q, err := events.New(category, date, req.Guests, venue, tier)
	if err != nil {
		return nil, err
	}

	e := q.Base()
	e.OfferBeverages(events.DefaultBeverageMenu())
	for _, order := range req.Beverages {
		if err := e.SetBeverageQuantity(order.Name, order.Quantity); err != nil {
			return nil, err
		}
	}

	if len(req.Foods) > 0 {
		items, err := events.FindFood(events.DefaultFoodMenu(), req.Foods...)
		if err != nil {
			return nil, err
		}
		if err := e.ChooseFood(items); err != nil {
			return nil, err
		}
	}

	total := q.ComputeTotal()
	s.log.LogQuoteComputed(context.Background(), category.String(), e.Tier().String(), venue.Code(), req.Guests, total)
	return q, nil
}

func (s *service) resolveTier(category events.Category, raw string) (pricing.Tier, error) {
	if fixed, ok := category.FixedTier(); ok {
		return fixed, nil
	}
	if raw == "" {
		return "", fmt.Errorf("%w: %s requires a tier", ErrInvalidTier, category)
	}
	tier, err := pricing.ParseTier(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidTier, err)
	}
	return tier, nil
}

func (s *service) resolveVenue(code string, guests int) (*venues.Venue, error) {
	if code != "" {
		v, ok := s.registry.Catalog().Get(code)
		if !ok {
			return nil, fmt.Errorf("%w: %s", venues.ErrVenueNotFound, code)
		}
		return v, nil
	}

	v, ok := s.registry.SelectBestVenue(guests)
	if !ok {
		return nil, fmt.Errorf("%w: %d guests", venues.ErrNoVenueFits, guests)
	}
	return v, nil
}

func (s *service) resolveDate(raw string, v *venues.Venue) (time.Time, error) {
	if raw == "" {
		return s.registry.NextAvailableDate(v), nil
	}
	date, err := time.Parse(venues.DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	if err := s.registry.CheckLeadTime(date); err != nil {
		return time.Time{}, err
	}
	return date, nil
}
