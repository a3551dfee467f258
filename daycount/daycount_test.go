package daycount_test

import (
	"math"
	"testing"
	"time"

	"github.com/meenmo/actuskit/calendar"
	"github.com/meenmo/actuskit/daycount"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestYearFractionZeroOnEqualDates(t *testing.T) {
	t.Parallel()
	d := date(2024, time.March, 15)
	for _, conv := range []daycount.Convention{daycount.Act360, daycount.Act365, daycount.ActAct, daycount.E30_360, daycount.US30360} {
		if y := daycount.YearFraction(d, d, conv, calendar.NoHolidays); y != 0 {
			t.Errorf("%s: YearFraction(d,d) = %v, want 0", conv, y)
		}
	}
}

func TestYearFractionAdditive(t *testing.T) {
	t.Parallel()
	a := date(2024, time.January, 1)
	b := date(2024, time.June, 15)
	c := date(2024, time.December, 31)

	for _, conv := range []daycount.Convention{daycount.Act360, daycount.Act365} {
		ab := daycount.YearFraction(a, b, conv, calendar.NoHolidays)
		bc := daycount.YearFraction(b, c, conv, calendar.NoHolidays)
		ac := daycount.YearFraction(a, c, conv, calendar.NoHolidays)
		if math.Abs((ab+bc)-ac) > 1e-12 {
			t.Errorf("%s: Y(a,b)+Y(b,c) = %v, Y(a,c) = %v", conv, ab+bc, ac)
		}
	}
}

func TestYearFraction360(t *testing.T) {
	t.Parallel()
	start := date(2024, time.January, 1)
	end := date(2024, time.July, 1)
	got := daycount.YearFraction(start, end, daycount.Act360, calendar.NoHolidays)
	want := 182.0 / 360.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Act360 = %v, want %v", got, want)
	}
}

func TestThirty360USBondBasis(t *testing.T) {
	t.Parallel()
	// Jan 31 -> Feb 28: d1 bumped 31->30, d2 (28) stays since d1 >= 30
	// only bumps d2 when d2 is 31.
	start := date(2024, time.January, 31)
	end := date(2024, time.February, 28)
	got := daycount.YearFraction(start, end, daycount.US30360, calendar.NoHolidays)
	want := (30.0*(float64(end.Month())-float64(start.Month())) + float64(28-30)) / 360.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("US30360 = %v, want %v", got, want)
	}
}

func TestYearFractionNegativeInterval(t *testing.T) {
	t.Parallel()
	a := date(2024, time.January, 1)
	b := date(2024, time.July, 1)
	fwd := daycount.YearFraction(a, b, daycount.Act365, calendar.NoHolidays)
	bwd := daycount.YearFraction(b, a, daycount.Act365, calendar.NoHolidays)
	if math.Abs(fwd+bwd) > 1e-12 {
		t.Errorf("Y(a,b) = %v, Y(b,a) = %v; expected exact negation", fwd, bwd)
	}
}

func TestActActLeapYearBoundary(t *testing.T) {
	t.Parallel()
	// 2024 is a leap year (366 days); crossing into 2025 (365 days)
	// should weight each side by its own year length.
	start := date(2024, time.December, 1)
	end := date(2025, time.January, 31)
	got := daycount.YearFraction(start, end, daycount.ActAct, calendar.NoHolidays)
	if got <= 0 || got > 1 {
		t.Errorf("ActAct across year boundary out of range: %v", got)
	}
}
