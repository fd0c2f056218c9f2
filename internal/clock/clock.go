package clock

import "time"

//go:generate mockgen -source=clock.go -destination=mock_clock.go -package=clock

// Clock abstracts the time source so closing and payment rules are deterministic in tests
type Clock interface {
	Now() time.Time
	Today() time.Time
}

// SystemClock reads the current time from the operating system
type SystemClock struct{}

// Now returns the current time
func (SystemClock) Now() time.Time { return time.Now() }

// Today returns the current date at midnight in the local time zone
func (SystemClock) Today() time.Time { return StartOfDay(time.Now()) }

// Fixed is a Clock frozen at a single instant
type Fixed struct {
	At time.Time
}

// Now returns the frozen instant
func (f Fixed) Now() time.Time { return f.At }

// Today returns the frozen instant's date at midnight in its location
func (f Fixed) Today() time.Time { return StartOfDay(f.At) }

// StartOfDay truncates t to midnight in its own location
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
