// internal/domain/cycle/date.go
package cycle

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the token format used for storage and user input.
const DateLayout = "2006-01-02"

// DisplayLayout renders a date for people, e.g. "Mon Jan 29 2024".
const DisplayLayout = "Mon Jan 02 2006"

var ErrInvalidDate = fmt.Errorf("invalid calendar date")

// Date is a calendar date with no time of day. It is stored as midnight UTC so
// that day arithmetic never crosses a DST boundary.
type Date struct {
	t time.Time
}

// NewDate builds a Date from its calendar parts.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf takes the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate accepts a YYYY-MM-DD token. RFC 3339 timestamps are also accepted
// and reduced to their calendar date part.
func ParseDate(raw string) (Date, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(DateLayout, raw); err == nil {
		return DateOf(t), nil
	}
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return DateOf(t), nil
	}
	return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
}

func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// DaysUntil returns the whole number of days from d to other (negative if other is earlier).
func (d Date) DaysUntil(other Date) int {
	// Both are UTC midnight, so the second difference is an exact multiple of a day.
	return int((other.t.Unix() - d.t.Unix()) / 86400)
}

func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) Equal(other Date) bool  { return d.t.Equal(other.t) }
func (d Date) IsZero() bool           { return d.t.IsZero() }

// String returns the storage token.
func (d Date) String() string {
	return d.t.Format(DateLayout)
}

// Display returns the human-readable form.
func (d Date) Display() string {
	return d.t.Format(DisplayLayout)
}
