// Package cycle parses and expands the ACTUS cycle-string grammar
// ("nU[+-]") used to describe the recurrence of an event family — interest,
// rate-reset, principal-redemption, fee, scaling, calculation-base — from
// an anchor date.
package cycle

import (
	"fmt"
	"strconv"
	"time"

	"github.com/meenmo/actuskit/calendar"
)

// Unit is the cycle's time unit.
type Unit byte

const (
	Day     Unit = 'D'
	Week    Unit = 'W'
	Month   Unit = 'M'
	Quarter Unit = 'Q'
	Half    Unit = 'H'
	Year    Unit = 'Y'
)

// Stub indicates whether a short stub is expected at the end (+) or
// beginning (-) of the schedule; NoStub means no stub preference is encoded
// in the cycle string itself.
type Stub byte

const (
	NoStub    Stub = 0
	StubEnd   Stub = '+'
	StubBegin Stub = '-'
)

// Cycle is a parsed cycle string: n occurrences of Unit, with an optional
// stub polarity.
type Cycle struct {
	N    int
	Unit Unit
	Stub Stub
}

// InvalidCycle is returned by Parse for any string not matching
// [0-9]+[DWMQHY][+-]?.
type InvalidCycle struct {
	Input string
}

func (e *InvalidCycle) Error() string {
	return fmt.Sprintf("cycle: invalid cycle string %q", e.Input)
}

// Parse parses a cycle string of the form "nU[+-]".
func Parse(s string) (Cycle, error) {
	if len(s) < 2 {
		return Cycle{}, &InvalidCycle{Input: s}
	}

	stub := NoStub
	body := s
	last := s[len(s)-1]
	if last == '+' || last == '-' {
		stub = Stub(last)
		body = s[:len(s)-1]
	}
	if len(body) < 2 {
		return Cycle{}, &InvalidCycle{Input: s}
	}

	unitByte := body[len(body)-1]
	numPart := body[:len(body)-1]
	switch Unit(unitByte) {
	case Day, Week, Month, Quarter, Half, Year:
	default:
		return Cycle{}, &InvalidCycle{Input: s}
	}

	n, err := strconv.Atoi(numPart)
	if err != nil || n <= 0 {
		return Cycle{}, &InvalidCycle{Input: s}
	}

	return Cycle{N: n, Unit: Unit(unitByte), Stub: stub}, nil
}

// String renders the canonical form of the cycle, inverse of Parse for any
// value Parse would accept.
func (c Cycle) String() string {
	s := fmt.Sprintf("%d%c", c.N, c.Unit)
	if c.Stub != NoStub {
		s += string(rune(c.Stub))
	}
	return s
}

// period returns the calendar step (years, months, days) corresponding to
// one occurrence of c's unit.
func (c Cycle) period() (years, months, days int) {
	switch c.Unit {
	case Day:
		return 0, 0, c.N
	case Week:
		return 0, 0, 7 * c.N
	case Month:
		return 0, c.N, 0
	case Quarter:
		return 0, 3 * c.N, 0
	case Half:
		return 0, 6 * c.N, 0
	case Year:
		return c.N, 0, 0
	default:
		return 0, 0, 0
	}
}

func (c Cycle) isMonthBased() bool {
	switch c.Unit {
	case Month, Quarter, Half, Year:
		return true
	default:
		return false
	}
}

// step advances anchor by k whole periods of c, computed directly from the
// anchor (anchor + k*period) rather than by repeatedly incrementing the
// previous date, to avoid day-of-month capping drift: Jan 30 + 2M must
// yield Mar 30, not Jan 30 -> Feb 28 -> Mar 28.
func (c Cycle) step(anchor time.Time, k int, eom bool) time.Time {
	years, months, days := c.period()
	next := anchor.AddDate(years*k, months*k, days*k)
	if eom && c.isMonthBased() && calendar.IsLastDayOfMonth(anchor) {
		// Clamp within the target month itself: AddDate may already have
		// overflowed into the following month (Jan 31 + 1M = Mar 3).
		firstOfTarget := time.Date(anchor.Year()+years*k, anchor.Month()+time.Month(months*k), 1, anchor.Hour(), anchor.Minute(), anchor.Second(), 0, anchor.Location())
		next = lastCalendarDayOfMonth(firstOfTarget)
	}
	return next
}

func lastCalendarDayOfMonth(t time.Time) time.Time {
	firstOfNext := time.Date(t.Year(), t.Month()+1, 1, t.Hour(), t.Minute(), t.Second(), 0, t.Location())
	return firstOfNext.AddDate(0, 0, -1)
}

// Expand computes the date sequence anchor, anchor+1*period, ... up to end.
// end is included iff it equals anchor+k*period for some integer k >= 0;
// otherwise the last generated date strictly before end is kept and end
// itself is appended as a final stub date. The cycle's Stub field is not
// consulted: the stub always falls at the end of the sequence, whatever
// polarity the cycle string declares. eom applies
// end-of-month clamping only for month-based units, and only when anchor
// itself falls on its month's last calendar day.
func Expand(anchor, end time.Time, c Cycle, eom bool) ([]time.Time, error) {
	if c.N <= 0 {
		return nil, fmt.Errorf("cycle: non-positive cycle count")
	}
	if !end.After(anchor) {
		return []time.Time{anchor}, nil
	}

	dates := []time.Time{anchor}
	k := 1
	for {
		next := c.step(anchor, k, eom)
		if next.After(end) {
			break
		}
		dates = append(dates, next)
		if next.Equal(end) {
			return dates, nil
		}
		k++
		if k > 100000 {
			return nil, fmt.Errorf("cycle: expansion did not terminate before reaching %s", end.Format("2006-01-02"))
		}
	}

	// end falls strictly between the last generated date and the next
	// periodic one: append it as a stub.
	dates = append(dates, end)
	return dates, nil
}
