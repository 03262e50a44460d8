package venues

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectBest(t *testing.T) {
	catalog := DefaultCatalog()

	tests := []struct {
		name   string
		guests int
		want   string
		found  bool
	}{
		{"small party picks first 100-seat venue", 80, "A", true},
		{"exactly at capacity", 100, "A", true},
		{"one over the small venues", 101, "E", true},
		{"mid size", 250, "G", true},
		{"large party picks H", 420, "H", true},
		{"too many guests", 501, "", false},
		{"zero guests", 0, "", false},
		{"negative guests", -5, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := catalog.SelectBest(tt.guests)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				require.NotNil(t, v)
				assert.Equal(t, tt.want, v.Code())
			} else {
				assert.Nil(t, v)
			}
		})
	}
}

func TestSelectBest_IgnoresBookings(t *testing.T) {
	catalog := DefaultCatalog()
	a, _ := catalog.Get("A")

	day := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 10; i++ {
		require.NoError(t, catalog.Book(a, day.AddDate(0, 0, i)))
	}

	v, ok := catalog.SelectBest(90)
	require.True(t, ok)
	assert.Equal(t, "A", v.Code())
}

func TestSelectBest_TieBreaksOnRent(t *testing.T) {
	catalog := DefaultCatalog()
	_, err := catalog.SetRentPrice("A", 12000)
	require.NoError(t, err)
	_, err = catalog.SetRentPrice("C", 9000)
	require.NoError(t, err)

	v, ok := catalog.SelectBest(50)
	require.True(t, ok)
	assert.Equal(t, "C", v.Code())
}

func TestBook(t *testing.T) {
	catalog := DefaultCatalog()
	b, _ := catalog.Get("B")
	day := time.Date(2026, 6, 5, 15, 30, 0, 0, time.UTC)

	require.NoError(t, catalog.Book(b, day))
	assert.True(t, b.IsBooked(time.Date(2026, 6, 5, 0, 0, 0, 0, time.UTC)))

	err := catalog.Book(b, day.Add(2*time.Hour))
	assert.ErrorIs(t, err, ErrDateAlreadyBooked)

	require.NoError(t, catalog.Restore(b, day))
	assert.Len(t, b.BookedDates(), 1)

	stranger, err := NewVenue("B", 100, 10000)
	require.NoError(t, err)
	assert.ErrorIs(t, catalog.Book(stranger, day), ErrVenueNotFound)
	assert.ErrorIs(t, catalog.Book(nil, day), ErrVenueNotFound)

	catalog.ClearBookings()
	assert.Empty(t, b.BookedDates())
}

func TestBook_Concurrent(t *testing.T) {
	catalog := DefaultCatalog()
	d, _ := catalog.Get("D")
	day := time.Date(2026, 7, 3, 0, 0, 0, 0, time.UTC)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := catalog.Book(d, day); err == nil {
				mu.Lock()
				success++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, success)
}

func TestBookedDates_Sorted(t *testing.T) {
	catalog := DefaultCatalog()
	e, _ := catalog.Get("E")

	later := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	earlier := time.Date(2026, 8, 14, 0, 0, 0, 0, time.UTC)
	require.NoError(t, catalog.Book(e, later))
	require.NoError(t, catalog.Book(e, earlier))

	assert.Equal(t, []time.Time{earlier, later}, e.BookedDates())
}

func TestSetRentPrice(t *testing.T) {
	catalog := DefaultCatalog()

	v, err := catalog.SetRentPrice("G", 27500)
	require.NoError(t, err)
	assert.Equal(t, 27500.0, v.RentPrice())

	_, err = catalog.SetRentPrice("Z", 1)
	assert.ErrorIs(t, err, ErrVenueNotFound)

	_, err = catalog.SetRentPrice("G", -1)
	assert.ErrorIs(t, err, ErrInvalidRentPrice)
}

func TestNewCatalog_Duplicate(t *testing.T) {
	a1, _ := NewVenue("A", 100, 1)
	a2, _ := NewVenue("A", 50, 1)

	_, err := NewCatalog(a1, a2)
	assert.ErrorIs(t, err, ErrDuplicateVenue)
}

func TestNewVenue_Validation(t *testing.T) {
	_, err := NewVenue("X", 0, 10)
	assert.ErrorIs(t, err, ErrInvalidCapacity)

	_, err = NewVenue("X", 10, -10)
	assert.ErrorIs(t, err, ErrInvalidRentPrice)

	_, err = NewVenue("", 10, 10)
	assert.Error(t, err)
}

func TestMaxCapacity(t *testing.T) {
	assert.Equal(t, 500, DefaultCatalog().MaxCapacity())
}
