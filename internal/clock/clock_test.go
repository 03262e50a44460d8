package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToday(t *testing.T) {
	sp := time.FixedZone("BRT", -3*60*60)

	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{"midday utc", time.Date(2026, 1, 5, 12, 30, 0, 0, time.UTC), time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)},
		{"late evening local rolls to next utc day", time.Date(2026, 1, 5, 22, 0, 0, 0, sp), time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC)},
		{"already midnight", time.Date(2026, 2, 6, 0, 0, 0, 0, time.UTC), time.Date(2026, 2, 6, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Today(NewFixed(tt.now)))
		})
	}
}

func TestSystemClockIsUTC(t *testing.T) {
	assert.Equal(t, time.UTC, NewSystem().Now().Location())
}
