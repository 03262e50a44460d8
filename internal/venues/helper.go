package venues

import "time"

// DateLayout is the day-granular layout used for booked dates.
const DateLayout = "2006-01-02"

// DateOf truncates t to midnight UTC of the same calendar day.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dateKey(t time.Time) string {
	return DateOf(t).Format(DateLayout)
}
