package domain

import "time"

// DateLayout is the format dates are rendered in.
const DateLayout = "2006-01-02"

// DateOf truncates t to midnight of its own wall-clock date. The result is in
// UTC so dates compare and hash consistently regardless of t's location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole calendar days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(DateOf(b).Sub(DateOf(a)).Hours() / 24)
}
