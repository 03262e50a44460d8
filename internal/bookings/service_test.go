package bookings

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"eventrental/internal/clock"
	"eventrental/internal/events"
	"eventrental/internal/pricing"
	"eventrental/internal/registry"
	"eventrental/internal/scheduling"
	"eventrental/internal/shared/constants"
	"eventrental/internal/shared/utils/input"
	"eventrental/internal/store"
	"eventrental/internal/venues"
	"eventrental/pkg/cache"
	"eventrental/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCache is a mock implementation of cache.Service
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string, dest interface{}) error {
	args := m.Called(ctx, key, dest)
	return args.Error(0)
}

func (m *MockCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

func (m *MockCache) DeletePattern(ctx context.Context, pattern string) error {
	args := m.Called(ctx, pattern)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

var _ cache.Service = (*MockCache)(nil)

func newTestRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	catalog := venues.DefaultCatalog()
	scheduler := scheduling.NewScheduler(catalog, clock.NewFixed(time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)))
	return registry.New(catalog, scheduler, store.NewFileStore(),
		registry.WithOutput(&bytes.Buffer{}),
		registry.WithLogger(logger.Discard()),
	)
}

func newTestService(t *testing.T, cacheService cache.Service) (Service, *registry.Registry, string) {
	t.Helper()
	reg := newTestRegistry(t)
	path := filepath.Join(t.TempDir(), "eventos.txt")
	return NewService(reg, cacheService, path, time.Minute), reg, path
}

func TestQuote_WeddingLuxo(t *testing.T) {
	svc, reg, _ := newTestService(t, nil)

	quote, err := svc.Quote(context.Background(), QuoteRequest{
		Category:  "Wedding",
		Tier:      "Luxo",
		Guests:    200,
		VenueCode: "F",
		Date:      "2026-05-08",
		Beverages: []BeverageOrder{
			{Name: "Suco Natural", Quantity: 10},
			{Name: "Espumante Nac.", Quantity: 5},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 65070.0, quote.Total)
	assert.Equal(t, "F", quote.VenueCode)
	assert.Equal(t, "2026-05-08", quote.Date)
	assert.Equal(t, []events.Service{events.ServiceTable, events.ServiceDecoration, events.ServiceCake, events.ServiceMusic}, quote.Services)
	assert.Len(t, quote.Beverages, 2)
	assert.Contains(t, quote.Summary, "Valor total:65070.00")

	assert.Empty(t, reg.Events())
	f, _ := reg.Catalog().Get("F")
	assert.Empty(t, f.BookedDates())
}

func TestQuote_AutoVenueAndDate(t *testing.T) {
	svc, _, _ := newTestService(t, nil)

	quote, err := svc.Quote(context.Background(), QuoteRequest{
		Category: "CorporateParty",
		Tier:     "Standard",
		Guests:   100,
		Beverages: []BeverageOrder{
			{Name: "Água com gás", Quantity: 20},
			{Name: "Refrigerante", Quantity: 15},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "A", quote.VenueCode)
	// 2026-01-05 + 30 days is Wednesday 2026-02-04
	assert.Equal(t, "2026-02-06", quote.Date)
	assert.Equal(t, "Friday", quote.Weekday)
	assert.Equal(t, 16220.0, quote.Total)
	assert.Equal(t, []events.Service{events.ServiceMusic}, quote.Services)
}

func TestQuote_FixedTierCategories(t *testing.T) {
	svc, _, _ := newTestService(t, nil)

	quote, err := svc.Quote(context.Background(), QuoteRequest{Category: "BirthdayParty", Tier: "Premier", Guests: 50})
	require.NoError(t, err)
	assert.Equal(t, string(pricing.TierStandard), quote.Tier)

	quote, err = svc.Quote(context.Background(), QuoteRequest{Category: "FreeParty", Guests: 50})
	require.NoError(t, err)
	assert.Equal(t, string(pricing.TierNull), quote.Tier)
	assert.Equal(t, 2000.0, quote.Breakdown.Food)
	assert.Empty(t, quote.Services)
}

func TestQuote_Errors(t *testing.T) {
	svc, _, _ := newTestService(t, nil)
	ctx := context.Background()

	tests := []struct {
		name string
		req  QuoteRequest
		err  error
	}{
		{"unknown category", QuoteRequest{Category: "Baptism", Tier: "Standard", Guests: 10}, events.ErrInvalidCategory},
		{"missing tier", QuoteRequest{Category: "Wedding", Guests: 10}, ErrInvalidTier},
		{"unknown tier", QuoteRequest{Category: "Wedding", Tier: "Ouro", Guests: 10}, ErrInvalidTier},
		{"menu tier", QuoteRequest{Category: "Wedding", Tier: "General", Guests: 10}, events.ErrTierNotAllowed},
		{"unknown venue", QuoteRequest{Category: "Wedding", Tier: "Luxo", Guests: 10, VenueCode: "Z"}, venues.ErrVenueNotFound},
		{"venue too small", QuoteRequest{Category: "Wedding", Tier: "Luxo", Guests: 150, VenueCode: "A"}, events.ErrCapacityExceeded},
		{"no venue fits", QuoteRequest{Category: "Wedding", Tier: "Luxo", Guests: 501}, venues.ErrNoVenueFits},
		{"bad date", QuoteRequest{Category: "Wedding", Tier: "Luxo", Guests: 10, Date: "08/05/2026"}, ErrInvalidDate},
		{"beverage above tier", QuoteRequest{Category: "Wedding", Tier: "Standard", Guests: 10, Beverages: []BeverageOrder{{Name: "Whisky", Quantity: 1}}}, events.ErrBeverageNotOffered},
		{"wrong food count", QuoteRequest{Category: "Wedding", Tier: "Standard", Guests: 10, Foods: []string{"Coxinha"}}, events.ErrFoodSelection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Quote(ctx, tt.req)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestBook_PersistsAndInvalidatesCache(t *testing.T) {
	mockCache := new(MockCache)
	mockCache.On("DeletePattern", mock.Anything, constants.PATTERN_INVALIDATE_CALENDAR).Return(nil)

	svc, reg, path := newTestService(t, mockCache)

	req := QuoteRequest{
		Category:  "Wedding",
		Tier:      "Premier",
		Guests:    400,
		VenueCode: "H",
		Date:      "2026-06-05",
		Foods:     []string{"Canapé de salmão", "Tartar de atum", "Mini burger", "Camarão empanado", "Mini quiche", "Pão de queijo"},
	}

	booking, err := svc.Book(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 159000.0, booking.Total)
	assert.Len(t, booking.Foods, 6)
	assert.Equal(t, "Tipo do evento: Premier - Data do evento: 05/06/2026 - Nome do espaço: H - Valor Festa: 159000.00 - Quantidade Convidados: 400 - Categoria Evento: Wedding", booking.CalendarLine)

	require.Len(t, reg.Events(), 1)
	records, errs := store.NewFileStore().Load(path)
	assert.Empty(t, errs)
	assert.Len(t, records, 1)

	_, err = svc.Book(context.Background(), req)
	assert.ErrorIs(t, err, venues.ErrDateAlreadyBooked)
	assert.Len(t, reg.Events(), 1)

	mockCache.AssertNumberOfCalls(t, "DeletePattern", 1)
}

func TestCalendar_CacheMissThenSet(t *testing.T) {
	mockCache := new(MockCache)
	mockCache.On("DeletePattern", mock.Anything, mock.Anything).Return(nil)
	mockCache.On("Get", mock.Anything, constants.CACHE_KEY_CALENDAR, mock.Anything).Return(cache.ErrCacheMiss)
	mockCache.On("Set", mock.Anything, constants.CACHE_KEY_CALENDAR, mock.Anything, time.Minute).Return(nil)

	svc, _, _ := newTestService(t, mockCache)

	_, err := svc.Book(context.Background(), QuoteRequest{Category: "BirthdayParty", Guests: 70, VenueCode: "A", Date: "2026-02-14"})
	require.NoError(t, err)

	calendar, err := svc.Calendar(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, calendar.Count)
	assert.Equal(t, "A", calendar.Events[0].VenueCode)
	assert.Contains(t, calendar.Events[0].Line, "Categoria Evento: BirthdayParty")

	mockCache.AssertCalled(t, "Set", mock.Anything, constants.CACHE_KEY_CALENDAR, mock.Anything, time.Minute)
}

func TestCalendar_CacheHit(t *testing.T) {
	cached := CalendarResponse{Count: 1, Events: []CalendarEntry{{VenueCode: "G", Line: "cached"}}}

	mockCache := new(MockCache)
	mockCache.On("Get", mock.Anything, constants.CACHE_KEY_CALENDAR, mock.Anything).
		Run(func(args mock.Arguments) {
			dest := args.Get(2).(*CalendarResponse)
			*dest = cached
		}).
		Return(nil)

	svc, _, _ := newTestService(t, mockCache)

	calendar, err := svc.Calendar(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cached, *calendar)
	mockCache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBeverageMenu(t *testing.T) {
	svc, _, _ := newTestService(t, nil)
	ctx := context.Background()

	all, err := svc.BeverageMenu(ctx, BeverageMenuQuery{})
	require.NoError(t, err)
	assert.Len(t, all, len(events.DefaultBeverageMenu()))

	birthday, err := svc.BeverageMenu(ctx, BeverageMenuQuery{Category: "BirthdayParty", Tier: "Premier"})
	require.NoError(t, err)
	for _, b := range birthday {
		assert.True(t, pricing.TierStandard.Allows(b.Tier), b.Name)
	}

	_, err = svc.BeverageMenu(ctx, BeverageMenuQuery{Tier: "Ouro"})
	assert.ErrorIs(t, err, ErrInvalidTier)

	_, err = svc.BeverageMenu(ctx, BeverageMenuQuery{Category: "Baptism"})
	assert.ErrorIs(t, err, events.ErrInvalidCategory)
}

func TestBeverageMenu_Quantity(t *testing.T) {
	svc, _, _ := newTestService(t, nil)
	ctx := context.Background()

	menu, err := svc.BeverageMenu(ctx, BeverageMenuQuery{Quantity: " 15 "})
	require.NoError(t, err)
	require.NotEmpty(t, menu)
	for _, b := range menu {
		assert.Equal(t, 15, b.Quantity, b.Name)
		assert.Equal(t, b.UnitPrice*15, b.Subtotal(), b.Name)
	}

	menu, err = svc.BeverageMenu(ctx, BeverageMenuQuery{})
	require.NoError(t, err)
	for _, b := range menu {
		assert.Zero(t, b.Quantity, b.Name)
	}

	for _, raw := range []string{"abc", "-10"} {
		_, err = svc.BeverageMenu(ctx, BeverageMenuQuery{Quantity: raw})
		assert.ErrorIs(t, err, input.ErrInvalidInput, raw)
	}
}

func TestBook_RejectsDatesInsideLeadTime(t *testing.T) {
	svc, reg, path := newTestService(t, nil)
	ctx := context.Background()

	for _, date := range []string{"2026-01-06", "2020-01-01", "2026-02-03"} {
		t.Run(date, func(t *testing.T) {
			req := QuoteRequest{Category: "Wedding", Tier: "Standard", Guests: 50, Date: date}

			_, err := svc.Quote(ctx, req)
			assert.ErrorIs(t, err, scheduling.ErrLeadTime)

			_, err = svc.Book(ctx, req)
			assert.ErrorIs(t, err, scheduling.ErrLeadTime)
		})
	}

	assert.Empty(t, reg.Events())
	assert.NoFileExists(t, path)

	booking, err := svc.Book(ctx, QuoteRequest{Category: "Wedding", Tier: "Standard", Guests: 50, Date: "2026-02-04"})
	require.NoError(t, err)
	assert.Equal(t, "2026-02-04", booking.Date)
}
