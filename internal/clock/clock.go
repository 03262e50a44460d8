package clock

import "time"

// Clock is the source of "now" for scheduling. Everything downstream works
// in UTC calendar days.
type Clock interface {
	Now() time.Time
}

// Today returns midnight UTC of the current day of c.
func Today(c Clock) time.Time {
	y, m, d := c.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type systemClock struct{}

func NewSystem() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// fixedClock is frozen at one instant; tests and replays pin dates with it.
type fixedClock time.Time

func NewFixed(t time.Time) Clock {
	return fixedClock(t.UTC())
}

func (f fixedClock) Now() time.Time {
	return time.Time(f)
}
