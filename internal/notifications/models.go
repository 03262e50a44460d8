package notifications

import (
	"encoding/json"
	"time"

	"eventrental/internal/events"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationTypeBookingConfirmed NotificationType = "BOOKING_CONFIRMED"
)

// BookingNotification is published once a finalized event has been persisted.
type BookingNotification struct {
	ID         uuid.UUID        `json:"id"`
	Type       NotificationType `json:"type"`
	EventID    uuid.UUID        `json:"event_id"`
	Category   string           `json:"category"`
	Tier       string           `json:"tier"`
	VenueCode  string           `json:"venue_code"`
	EventDate  string           `json:"event_date"`
	GuestCount int              `json:"guest_count"`
	TotalPrice float64          `json:"total_price"`
	CreatedAt  time.Time        `json:"created_at"`
}

func NewBookingConfirmed(e *events.Event) *BookingNotification {
	return &BookingNotification{
		ID:         uuid.New(),
		Type:       NotificationTypeBookingConfirmed,
		EventID:    e.ID(),
		Category:   e.Category().String(),
		Tier:       e.Tier().String(),
		VenueCode:  e.Venue().Code(),
		EventDate:  e.Date().Format("2006-01-02"),
		GuestCount: e.GuestCount(),
		TotalPrice: e.TotalPrice(),
		CreatedAt:  time.Now(),
	}
}

// GetPartitionKey keeps every notification of a venue on the same partition.
func (n *BookingNotification) GetPartitionKey() string {
	return n.VenueCode
}

func (n *BookingNotification) ToJSON() ([]byte, error) {
	return json.Marshal(n)
}
