package calendar

import (
	"fmt"
	"time"
)

// ActusDateTime is an immutable civil date-time at second resolution. It is
// hashable and totally ordered (comparable via ==, Before, After) and never
// carries a monotonic reading, matching time.Time values produced by
// time.Date or time.Parse.
type ActusDateTime struct {
	t time.Time
}

// NewActusDateTime truncates to second resolution and validates that
// year/month/day form a real Gregorian date (time.Date never fails to
// normalize, so validity is checked by round-tripping the components).
func NewActusDateTime(year int, month time.Month, day, hour, min, sec int) (ActusDateTime, error) {
	t := time.Date(year, month, day, hour, min, sec, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return ActusDateTime{}, fmt.Errorf("calendar: invalid date %04d-%02d-%02d", year, month, day)
	}
	return ActusDateTime{t: t}, nil
}

// FromTime wraps an existing time.Time, truncating to second resolution.
func FromTime(t time.Time) ActusDateTime {
	return ActusDateTime{t: t.Truncate(time.Second)}
}

// Time returns the underlying time.Time.
func (d ActusDateTime) Time() time.Time { return d.t }

func (d ActusDateTime) Before(o ActusDateTime) bool { return d.t.Before(o.t) }
func (d ActusDateTime) After(o ActusDateTime) bool  { return d.t.After(o.t) }
func (d ActusDateTime) Equal(o ActusDateTime) bool  { return d.t.Equal(o.t) }

// Compare returns -1, 0, or 1 per the usual ordering convention.
func (d ActusDateTime) Compare(o ActusDateTime) int {
	switch {
	case d.t.Before(o.t):
		return -1
	case d.t.After(o.t):
		return 1
	default:
		return 0
	}
}

// AddDays returns a new ActusDateTime shifted by n calendar days.
func (d ActusDateTime) AddDays(n int) ActusDateTime {
	return ActusDateTime{t: d.t.AddDate(0, 0, n)}
}

// AddMonths shifts by n months, clamping to the end of the target month
// when d's day does not exist in that month (EDATE-style, avoiding Go's
// silent day-overflow into the following month).
func (d ActusDateTime) AddMonths(n int) ActusDateTime {
	return ActusDateTime{t: AddMonth(d.t, n)}
}

func (d ActusDateTime) String() string {
	return d.t.Format("2006-01-02T15:04:05Z07:00")
}

// MarshalJSON encodes as an RFC3339 civil timestamp.
func (d ActusDateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.t.Format(time.RFC3339) + `"`), nil
}

// UnmarshalJSON decodes an RFC3339 or date-only (YYYY-MM-DD) timestamp.
func (d *ActusDateTime) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		d.t = t.Truncate(time.Second)
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return fmt.Errorf("calendar: invalid ActusDateTime %q: %w", s, err)
	}
	d.t = t
	return nil
}

// AddMonth behaves like Excel's EDATE, avoiding Go's month normalization
// surprises: Jan 31 + 1M must yield Feb 28 (or 29), not Mar 3.
func AddMonth(t time.Time, months int) time.Time {
	firstOfTarget := time.Date(t.Year(), t.Month(), 1, t.Hour(), t.Minute(), t.Second(), 0, t.Location()).AddDate(0, months, 0)
	naive := t.AddDate(0, months, 0)
	if naive.Month() == firstOfTarget.Month() {
		return naive
	}
	d := naive
	for d.Month() != firstOfTarget.Month() {
		d = d.AddDate(0, 0, -1)
	}
	return d
}
