package variants

import (
	"time"

	"github.com/meenmo/actuskit/contract"
	"github.com/meenmo/actuskit/observer"
	"github.com/meenmo/actuskit/schedule"
)

func init() {
	register(contract.STK, Entry{
		Schedule:   stkSchedule,
		Initialize: cshInitialize,
		POF:        stkPOF,
		STF:        stkSTF,
		Accrue:     NoAccrual,
	})
}

// stkSchedule extends CSH's AD-only tracking with a recurring DV family
// (CycleDividend), each DV's amount observed from the market at payment
// time rather than fixed at schedule-build time.
func stkSchedule(attrs contract.Attributes, beh observer.Behavioral) ([]contract.Event, error) {
	var events []contract.Event
	if e := singleEvent(contract.KindAD, attrs.StatusDate, attrs.BusinessDayConvention, attrs.Calendar); e != nil {
		events = append(events, *e)
	}
	if attrs.CycleDividend.Cycle != "" {
		end := attrs.EffectiveMaturity()
		if end.IsZero() {
			end = attrs.HorizonDate
		}
		anchor := attrs.CycleDividend.Anchor
		if anchor.IsZero() {
			anchor = attrs.StatusDate
		}
		dv, err := expandFamily(contract.KindDV, anchor, attrs.CycleDividend.Cycle, end, attrs.EndOfMonthConvention, attrs.BusinessDayConvention, attrs.Calendar)
		if err != nil {
			return nil, err
		}
		events = append(events, dv...)
	}
	if beh != nil {
		events = schedule.MergeCallouts(events, beh.Callouts())
	}
	return schedule.Finalize(events), nil
}

func stkPOF(kind contract.Kind, state contract.State, attrs contract.Attributes, t time.Time, mo observer.Market, co observer.Child) (float64, error) {
	if kind == contract.KindDV {
		return R(attrs) * mo.Get(attrs.MarketObjectCodeUnderlying, t), nil
	}
	return 0, nil
}

func stkSTF(kind contract.Kind, state contract.State, attrs contract.Attributes, t time.Time, payoff float64, mo observer.Market, co observer.Child) (contract.State, error) {
	s := state.Clone()
	s.StatusDate = t
	return s, nil
}
