// Package variants implements the per-(contract type, event kind) payoff
// (POF) and state-transition (STF) functions of spec.md §4.5, one file per
// ACTUS contract type, sharing the helpers in this file.
package variants

import (
	"math"
	"time"

	"github.com/meenmo/actuskit/calendar"
	"github.com/meenmo/actuskit/contract"
	"github.com/meenmo/actuskit/cycle"
	"github.com/meenmo/actuskit/daycount"
	"github.com/meenmo/actuskit/observer"
)

// expandFamily expands one recurring event family (anchor + cycle string)
// up to end, business-day adjusts each date, and drops any date equal to
// one of excludeRaw (compared before adjustment) — used to keep the
// anchor's own occurrence and the maturity date from duplicating the
// single-fire IED/MD events every variant schedules separately.
func expandFamily(kind contract.Kind, anchor time.Time, cyc string, end time.Time, eom bool, conv calendar.Convention, cal calendar.CalendarID, excludeRaw ...time.Time) ([]contract.Event, error) {
	if cyc == "" || anchor.IsZero() || end.IsZero() {
		return nil, nil
	}
	c, err := cycle.Parse(cyc)
	if err != nil {
		return nil, contract.NewScheduleError("", err.Error())
	}
	dates, err := cycle.Expand(anchor, end, c, eom)
	if err != nil {
		return nil, contract.NewScheduleError("", err.Error())
	}

	events := make([]contract.Event, 0, len(dates))
	for _, d := range dates {
		excluded := false
		for _, ex := range excludeRaw {
			if d.Equal(ex) {
				excluded = true
				break
			}
		}
		if excluded {
			continue
		}
		shifted, calc := calendar.Adjust(cal, d, conv)
		events = append(events, contract.Event{EventTime: shifted, CalculationTime: calc, Kind: kind})
	}
	return events, nil
}

// singleEvent builds a one-off, business-day-adjusted event at t, or
// returns nil if t is zero.
func singleEvent(kind contract.Kind, t time.Time, conv calendar.Convention, cal calendar.CalendarID) *contract.Event {
	if t.IsZero() {
		return nil
	}
	shifted, calc := calendar.Adjust(cal, t, conv)
	return &contract.Event{EventTime: shifted, CalculationTime: calc, Kind: kind}
}

// calendarAdjust is a thin wrapper so callers outside this file can
// business-day adjust a raw schedule date against a contract's own
// convention/calendar without importing the calendar package directly.
func calendarAdjust(attrs contract.Attributes, t time.Time) (shifted, calc time.Time) {
	return calendar.Adjust(attrs.Calendar, t, attrs.BusinessDayConvention)
}

// R returns the role sign for attrs.
func R(attrs contract.Attributes) float64 { return attrs.Sign() }

// Y is the year-fraction helper all POF/STF formulas use, bound to the
// contract's active day-count convention and calendar (the latter only
// matters for B/252).
func Y(attrs contract.Attributes, start, end time.Time) float64 {
	return daycount.YearFraction(start, end, attrs.DayCountConvention, attrs.Calendar)
}

// Clamp bounds v to [lo, hi]; hasLo and hasHi select which bounds apply,
// and an unselected side is left unbounded. Callers pass a zero RRLC/RRLF
// as unselected — ACTUS leaves RRLC/RRLF optional, and a zero value is not
// a meaningful cap/floor for a nominal interest rate.
func Clamp(v, lo, hi float64, hasLo, hasHi bool) float64 {
	if hasLo && v < lo {
		v = lo
	}
	if hasHi && v > hi {
		v = hi
	}
	return v
}

// AccrueSingleLeg implements the generic between-event accrual rule of
// spec.md §4.5: Ipac += Nt * Ipnr * Y(sd, to). It is the Entry.Accrue for
// every single-leg interest-bearing variant (PAM, LAM, LAX, NAM, ANN, CLM,
// UMP). Accruing to a time at or before the current status date is a
// no-op — the engine calls Accrue once per event, possibly with
// coincident timestamps.
func AccrueSingleLeg(state contract.State, attrs contract.Attributes, to time.Time) contract.State {
	if !to.After(state.StatusDate) {
		return state
	}
	y := Y(attrs, state.StatusDate, to)
	s := state.Clone()
	s.AccruedInterest += s.Notional * s.NominalRate * y
	s.StatusDate = to
	return s
}

// NoAccrual is the Entry.Accrue for variants without an interest-bearing
// notional (CSH, STK, COM, FXOUT, OPTNS, FUTUR, CEG, CEC): it only advances
// the status date.
func NoAccrual(state contract.State, _ contract.Attributes, to time.Time) contract.State {
	if !to.After(state.StatusDate) {
		return state
	}
	s := state.Clone()
	s.StatusDate = to
	return s
}

// penaltyPayoff implements POF_PY's three penalty types (§4.5): A (absolute
// PYRT), N (Y*Nt*PYRT), I (rate-differential, falling back to N when no
// rate observer is available).
func penaltyPayoff(attrs contract.Attributes, state contract.State, t time.Time, mo observer.Market) float64 {
	y := Y(attrs, state.StatusDate, t)
	switch attrs.PenaltyType {
	case contract.PenaltyAbsolute:
		return R(attrs) * attrs.PrepaymentPenaltyRate
	case contract.PenaltyRateDifferential:
		if attrs.RateResetMarketObjectCode == "" {
			return R(attrs) * y * state.Notional * attrs.PrepaymentPenaltyRate
		}
		marketRate := mo.Get(attrs.RateResetMarketObjectCode, t)
		diff := attrs.NominalInterestRate - marketRate
		if diff < 0 {
			diff = 0
		}
		return R(attrs) * y * state.Notional * diff
	default: // N
		return R(attrs) * y * state.Notional * attrs.PrepaymentPenaltyRate
	}
}

// feePayoff implements POF_FP (§4.5): FEB=A -> FER; FEB=N -> Y*Nt*FER + Feac.
func feePayoff(attrs contract.Attributes, state contract.State, t time.Time) float64 {
	if attrs.FeeBasis == contract.FeeBasisAbsolute {
		return R(attrs) * attrs.FeeRate
	}
	y := Y(attrs, state.StatusDate, t)
	return R(attrs)*y*state.Notional*attrs.FeeRate + state.AccruedFees
}

// capNonNegativeNotional caps a principal redemption so Nt never crosses
// zero: the final redemption is capped at the remaining notional.
func capNonNegativeNotional(nt, redemption float64) (newNt, actual float64) {
	if math.Abs(redemption) >= math.Abs(nt) {
		return 0, nt
	}
	return nt - redemption, redemption
}

// applyScaling observes the scaling index via SCMO and applies attrs'
// ScalingEffect selector to Nsc/Isc (STF_SC, §4.5).
func applyScaling(state contract.State, attrs contract.Attributes, t time.Time, mo observer.Market) contract.State {
	s := state.Clone()
	if attrs.ScalingIndexMarketObjectCode == "" {
		return s
	}
	index := mo.Get(attrs.ScalingIndexMarketObjectCode, t)
	scale := index - attrs.ScalingIndexBaseline
	switch attrs.ScalingEffect {
	case contract.ScalingInterestOnly:
		s.InterestScaling = 1 + scale
	case contract.ScalingNotionalOnly:
		s.NotionalScaling = 1 + scale
	case contract.ScalingInterestNotional:
		s.InterestScaling = 1 + scale
		s.NotionalScaling = 1 + scale
	default:
	}
	return s
}

// cycleExpandSafe expands attrs' principal-redemption cycle between from
// and maturity, returning the occurrence dates (unadjusted) used to count
// remaining periods for annuity recalculation.
func cycleExpandSafe(from, maturity time.Time, attrs contract.Attributes) ([]time.Time, error) {
	c, err := attrs.CyclePrincipalRedemption.Parsed()
	if err != nil {
		return nil, err
	}
	if c.N == 0 {
		return nil, nil
	}
	return cycle.Expand(from, maturity, c, attrs.EndOfMonthConvention)
}

// resetRate implements STF_RR's clamp(rate*RRMLT+RRSP, RRLF, RRLC).
func resetRate(observed float64, attrs contract.Attributes) float64 {
	rate := observed*attrs.RateMultiplier + attrs.RateSpread
	return Clamp(rate, attrs.LifeFloor, attrs.LifeCap, attrs.LifeFloor != 0, attrs.LifeCap != 0)
}
