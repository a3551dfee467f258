// Package daycount implements the ACTUS day-count year-fraction
// conventions, generalizing the teacher's ACT/360-only YearFraction into
// the full set the contract registry needs.
package daycount

import (
	"time"

	"github.com/meenmo/actuskit/calendar"
)

// Convention enumerates the supported day-count conventions.
type Convention string

const (
	ActAct  Convention = "A/A"
	Act360  Convention = "A/360"
	Act365  Convention = "A/365"
	E30_360 Convention = "30E/360"
	US30360 Convention = "30/360"
	B252    Convention = "B/252"
)

// YearFraction computes the year fraction between start and end under conv.
// The result is non-negative when end is not before start and zero iff
// start == end; swapping start and end negates it. For B/252, cal
// selects the business-day calendar used to count business days.
func YearFraction(start, end time.Time, conv Convention, cal calendar.CalendarID) float64 {
	if start.Equal(end) {
		return 0
	}
	switch conv {
	case Act360:
		return days(start, end) / 360.0
	case Act365:
		return days(start, end) / 365.0
	case ActAct:
		return actActFraction(start, end)
	case E30_360:
		return thirty360Fraction(start, end, true)
	case US30360:
		return thirty360Fraction(start, end, false)
	case B252:
		return businessDays252Fraction(start, end, cal)
	default:
		return days(start, end) / 365.0
	}
}

func days(start, end time.Time) float64 {
	return end.Sub(start).Hours() / 24
}

// actActFraction sums the day fraction contributed by each calendar year
// the interval crosses, so that a period split across a leap-year boundary
// is counted against each year's true length.
func actActFraction(start, end time.Time) float64 {
	neg := false
	if end.Before(start) {
		start, end = end, start
		neg = true
	}
	if start.Year() == end.Year() {
		f := days(start, end) / yearLength(start.Year())
		if neg {
			return -f
		}
		return f
	}

	total := 0.0
	yearEnd := time.Date(start.Year()+1, 1, 1, 0, 0, 0, 0, time.UTC)
	total += days(start, yearEnd) / yearLength(start.Year())

	for y := start.Year() + 1; y < end.Year(); y++ {
		total += 1.0
	}

	yearStart := time.Date(end.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	total += days(yearStart, end) / yearLength(end.Year())

	if neg {
		return -total
	}
	return total
}

func yearLength(year int) float64 {
	if isLeap(year) {
		return 366
	}
	return 365
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// thirty360Fraction implements 30E/360 (european=true) and 30/360 (US bond
// basis, european=false). Both bump d1 from 31 to 30; 30E/360 also bumps d2
// from 31 to 30 unconditionally, while the US variant only bumps d2 from 31
// to 30 when d1 (after its own capping) is already >= 30.
func thirty360Fraction(start, end time.Time, european bool) float64 {
	neg := false
	if end.Before(start) {
		start, end = end, start
		neg = true
	}
	y1, m1, d1 := start.Date()
	y2, m2, d2 := end.Date()

	dd1, dd2 := d1, d2
	if european {
		if dd1 == 31 {
			dd1 = 30
		}
		if dd2 == 31 {
			dd2 = 30
		}
	} else {
		if dd1 == 31 {
			dd1 = 30
		}
		if dd2 == 31 && dd1 >= 30 {
			dd2 = 30
		}
	}

	f := (360.0*float64(y2-y1) + 30.0*float64(int(m2)-int(m1)) + float64(dd2-dd1)) / 360.0
	if neg {
		return -f
	}
	return f
}

func businessDays252Fraction(start, end time.Time, cal calendar.CalendarID) float64 {
	neg := false
	if end.Before(start) {
		start, end = end, start
		neg = true
	}
	count := 0
	for d := start.AddDate(0, 0, 1); !d.After(end); d = d.AddDate(0, 0, 1) {
		if calendar.IsBusinessDay(cal, d) {
			count++
		}
	}
	f := float64(count) / 252.0
	if neg {
		return -f
	}
	return f
}
