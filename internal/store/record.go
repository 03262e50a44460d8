package store

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	fieldSeparator = "|"
	fieldCount     = 8

	// DateLayout is the date format of the record file.
	DateLayout = "2006-01-02"
)

// Record is one finalized event as stored on disk:
// guestCount|venueCode|venueCapacity|totalPrice|date|category|tier|id
type Record struct {
	GuestCount    int
	VenueCode     string
	VenueCapacity int
	TotalPrice    float64
	Date          time.Time
	Category      string
	Tier          string
	ID            uuid.UUID
}

// Encode renders r as a single line without the trailing newline.
func Encode(r Record) string {
	fields := []string{
		strconv.Itoa(r.GuestCount),
		r.VenueCode,
		strconv.Itoa(r.VenueCapacity),
		strconv.FormatFloat(r.TotalPrice, 'f', 2, 64),
		r.Date.Format(DateLayout),
		r.Category,
		r.Tier,
		r.ID.String(),
	}
	return strings.Join(fields, fieldSeparator)
}

// Decode parses one line of the record file.
func Decode(line string) (Record, error) {
	fields := strings.Split(strings.TrimRight(line, "\r\n"), fieldSeparator)
	if len(fields) != fieldCount {
		return Record{}, fmt.Errorf("expected %d fields, got %d", fieldCount, len(fields))
	}
	for i, f := range fields {
		if strings.TrimSpace(f) == "" {
			return Record{}, fmt.Errorf("field %d is empty", i+1)
		}
	}

	guests, err := strconv.Atoi(fields[0])
	if err != nil || guests <= 0 {
		return Record{}, fmt.Errorf("invalid guest count %q", fields[0])
	}

	capacity, err := strconv.Atoi(fields[2])
	if err != nil || capacity <= 0 {
		return Record{}, fmt.Errorf("invalid venue capacity %q", fields[2])
	}

	total, err := strconv.ParseFloat(fields[3], 64)
	if err != nil || total < 0 {
		return Record{}, fmt.Errorf("invalid total price %q", fields[3])
	}

	date, err := time.Parse(DateLayout, fields[4])
	if err != nil {
		return Record{}, fmt.Errorf("invalid date %q", fields[4])
	}

	id, err := uuid.Parse(fields[7])
	if err != nil {
		return Record{}, fmt.Errorf("invalid id %q", fields[7])
	}

	return Record{
		GuestCount:    guests,
		VenueCode:     fields[1],
		VenueCapacity: capacity,
		TotalPrice:    total,
		Date:          date,
		Category:      fields[5],
		Tier:          fields[6],
		ID:            id,
	}, nil
}
