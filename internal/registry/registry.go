package registry

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"eventrental/internal/events"
	"eventrental/internal/notifications"
	"eventrental/internal/pricing"
	"eventrental/internal/scheduling"
	"eventrental/internal/store"
	"eventrental/internal/venues"
	"eventrental/pkg/logger"
)

const calendarDateLayout = "02/01/2006"

// Registry is the company: the venue catalog plus every finalized event,
// mirrored from the record store.
type Registry struct {
	mu        sync.RWMutex
	catalog   *venues.Catalog
	scheduler *scheduling.Scheduler
	store     store.Store
	events    []*events.Event

	out      io.Writer
	log      *logger.Logger
	notifier notifications.Notifier
}

func New(catalog *venues.Catalog, scheduler *scheduling.Scheduler, st store.Store, opts ...Option) *Registry {
	r := &Registry{
		catalog:   catalog,
		scheduler: scheduler,
		store:     st,
		out:       os.Stdout,
		log:       logger.GetDefault(),
		notifier:  notifications.NoopNotifier{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Registry) Catalog() *venues.Catalog {
	return r.catalog
}

func (r *Registry) SelectBestVenue(guests int) (*venues.Venue, bool) {
	return r.scheduler.SelectBestVenue(guests)
}

func (r *Registry) NextAvailableDate(v *venues.Venue) time.Time {
	return r.scheduler.NextAvailableDate(v)
}

// CheckLeadTime rejects dates closer than the scheduler's lead time.
func (r *Registry) CheckLeadTime(date time.Time) error {
	return r.scheduler.CheckLeadTime(date)
}

// CommitBooking marks date as taken for v.
func (r *Registry) CommitBooking(v *venues.Venue, date time.Time) error {
	return r.catalog.Book(v, date)
}

// AddEventAndPersist appends a priced event to the record file at path, then
// commits its date on the venue and mirrors it in memory. Nothing changes in
// memory when the append fails.
func (r *Registry) AddEventAndPersist(ctx context.Context, q events.Quote, path string) error {
	e := q.Base()
	if !e.Priced() {
		return ErrNotPriced
	}
	if err := r.CheckLeadTime(e.Date()); err != nil {
		return err
	}

	r.mu.Lock()

	v := e.Venue()
	if registered, ok := r.catalog.Get(v.Code()); !ok || registered != v {
		r.mu.Unlock()
		return fmt.Errorf("%w: %s", venues.ErrVenueNotFound, v.Code())
	}
	if v.IsBooked(e.Date()) {
		r.mu.Unlock()
		return fmt.Errorf("%w: %s on %s", venues.ErrDateAlreadyBooked, v.Code(), e.Date().Format(venues.DateLayout))
	}

	if err := r.store.Append(path, toRecord(e)); err != nil {
		r.mu.Unlock()
		return fmt.Errorf("failed to persist event: %w", err)
	}
	if err := r.CommitBooking(v, e.Date()); err != nil {
		r.mu.Unlock()
		return fmt.Errorf("failed to commit booking: %w", err)
	}
	r.events = append(r.events, e)

	r.mu.Unlock()

	r.log.LogBookingPersisted(ctx, e.ID().String(), v.Code(), e.Date(), e.TotalPrice())

	if err := r.notifier.NotifyBookingConfirmed(ctx, e); err != nil {
		r.log.WithFields(map[string]interface{}{
			"event_id": e.ID().String(),
			"venue":    v.Code(),
		}).ErrorWithContext(ctx, "Failed to publish booking notification", err, nil)
	}
	return nil
}

// LoadAllEvents reads every event stored at path. Records that cannot be
// read are reported on the output stream and skipped. It never fails and
// does not change the registry.
func (r *Registry) LoadAllEvents(path string) []*events.Event {
	records, errs := r.store.Load(path)
	for _, err := range errs {
		r.reportLoadError(path, err)
	}

	loaded := make([]*events.Event, 0, len(records))
	for _, rec := range records {
		e, err := r.toEvent(rec)
		if err != nil {
			r.reportLoadError(path, fmt.Errorf("%w: %s: %v", store.ErrCorruptRecord, store.Encode(rec), err))
			continue
		}
		loaded = append(loaded, e)
	}
	return loaded
}

// Reload replaces the in-memory events with the content of path and
// rebuilds the booked dates of every venue from them.
func (r *Registry) Reload(path string) []*events.Event {
	loaded := r.LoadAllEvents(path)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.catalog.ClearBookings()
	for _, e := range loaded {
		if err := r.catalog.Restore(e.Venue(), e.Date()); err != nil {
			r.reportLoadError(path, err)
		}
	}
	r.events = loaded

	out := make([]*events.Event, len(loaded))
	copy(out, loaded)
	return out
}

// Events returns the in-memory events in load/append order.
func (r *Registry) Events() []*events.Event {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*events.Event, len(r.events))
	copy(out, r.events)
	return out
}

// RenderCalendar lists every event, one per line, in load order.
func (r *Registry) RenderCalendar() string {
	var sb strings.Builder
	for _, e := range r.Events() {
		sb.WriteString(CalendarLine(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (r *Registry) WriteCalendar(w io.Writer) error {
	_, err := io.WriteString(w, r.RenderCalendar())
	return err
}

// CalendarLine renders one event of the calendar.
func CalendarLine(e *events.Event) string {
	return fmt.Sprintf("Tipo do evento: %s - Data do evento: %s - Nome do espaço: %s - Valor Festa: %.2f - Quantidade Convidados: %d - Categoria Evento: %s",
		e.Tier(), e.Date().Format(calendarDateLayout), e.Venue().Code(), e.TotalPrice(), e.GuestCount(), e.Category())
}

// SetVenueRent adjusts the rent of a venue. Events already priced keep
// their total; new quotes use the new rent.
func (r *Registry) SetVenueRent(code string, price float64) (*venues.Venue, error) {
	v, err := r.catalog.SetRentPrice(code, price)
	if err != nil {
		return nil, err
	}
	r.log.LogRentChanged(context.Background(), v.Code(), price)
	return v, nil
}

func (r *Registry) reportLoadError(path string, err error) {
	fmt.Fprintf(r.out, "Erro ao ler arquivo: %v\n", err)
	r.log.LogCorruptRecord(context.Background(), path, err)
}

func toRecord(e *events.Event) store.Record {
	return store.Record{
		GuestCount:    e.GuestCount(),
		VenueCode:     e.Venue().Code(),
		VenueCapacity: e.Venue().Capacity(),
		TotalPrice:    e.TotalPrice(),
		Date:          e.Date(),
		Category:      e.Category().String(),
		Tier:          e.Tier().String(),
		ID:            e.ID(),
	}
}

func (r *Registry) toEvent(rec store.Record) (*events.Event, error) {
	v, ok := r.catalog.Get(rec.VenueCode)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownVenue, rec.VenueCode)
	}
	if v.Capacity() != rec.VenueCapacity {
		return nil, fmt.Errorf("venue %s holds %d guests, record says %d", v.Code(), v.Capacity(), rec.VenueCapacity)
	}

	category, err := events.ParseCategory(rec.Category)
	if err != nil {
		return nil, err
	}
	tier, err := pricing.ParseTier(rec.Tier)
	if err != nil {
		return nil, err
	}

	return events.Restore(rec.ID, rec.Date, rec.GuestCount, v, tier, category, rec.TotalPrice)
}
