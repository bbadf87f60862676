package clock

import (
	"sync"
	"time"
)

// Clock supplies the current instant. Calendar dates are derived from it with
// DateOf in the instant's location.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock and derives calendar dates in Location.
type System struct {
	Location *time.Location
}

func NewSystem(loc *time.Location) *System {
	if loc == nil {
		loc = time.UTC
	}
	return &System{Location: loc}
}

func (c *System) Now() time.Time {
	return time.Now().In(c.Location)
}

// DateOf drops the time of day, keeping the date as seen in t's location.
// The result is midnight UTC so dates compare and subtract cleanly.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the absolute number of calendar days between a and b.
func DaysBetween(a, b time.Time) int {
	diff := DateOf(b).Sub(DateOf(a))
	if diff < 0 {
		diff = -diff
	}
	return int(diff.Hours() / 24)
}

// Fixed is a settable clock for tests and tooling.
type Fixed struct {
	mu  sync.Mutex
	now time.Time
}

func NewFixed(now time.Time) *Fixed {
	return &Fixed{now: now}
}

func (c *Fixed) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *Fixed) Set(now time.Time) {
	c.mu.Lock()
	c.now = now
	c.mu.Unlock()
}

// AddDays moves the clock forward by n calendar days.
func (c *Fixed) AddDays(n int) {
	c.mu.Lock()
	c.now = c.now.AddDate(0, 0, n)
	c.mu.Unlock()
}
