package variants

import (
	"time"

	"github.com/meenmo/actuskit/contract"
	"github.com/meenmo/actuskit/observer"
	"github.com/meenmo/actuskit/schedule"
)

func init() {
	register(contract.UMP, Entry{
		Schedule:   umpSchedule,
		Initialize: pamInitialize,
		POF:        pamPOF,
		STF:        umpSTF,
		Accrue:     AccrueSingleLeg,
	})
}

// umpSchedule has no maturity-driven families of its own: IED, a recurring
// IP cycle if one is configured, and whatever PR (deposit/withdrawal)
// callouts the behavioral observer injects, up to the horizon date.
func umpSchedule(attrs contract.Attributes, beh observer.Behavioral) ([]contract.Event, error) {
	end := attrs.EffectiveMaturity()
	if end.IsZero() {
		return nil, contract.NewScheduleError(attrs.ContractID, "UMP requires maturity_date or horizon_date")
	}

	var events []contract.Event
	if e := singleEvent(contract.KindIED, attrs.InitialExchangeDate, attrs.BusinessDayConvention, attrs.Calendar); e != nil {
		events = append(events, *e)
	}
	if attrs.CycleInterest.Cycle != "" {
		anchor := attrs.CycleInterest.Anchor
		if anchor.IsZero() {
			anchor = attrs.InitialExchangeDate
		}
		ipFamily, err := expandFamily(contract.KindIP, anchor, attrs.CycleInterest.Cycle, end, attrs.EndOfMonthConvention, attrs.BusinessDayConvention, attrs.Calendar, attrs.InitialExchangeDate, end)
		if err != nil {
			return nil, err
		}
		events = append(events, ipFamily...)
	}
	if e := singleEvent(contract.KindMD, end, attrs.BusinessDayConvention, attrs.Calendar); e != nil {
		events = append(events, *e)
	}

	if beh != nil {
		events = schedule.MergeCallouts(events, beh.Callouts())
	}
	return schedule.Finalize(events), nil
}

func umpSTF(kind contract.Kind, state contract.State, attrs contract.Attributes, t time.Time, payoff float64, mo observer.Market, co observer.Child) (contract.State, error) {
	if kind != contract.KindPR {
		return pamSTF(kind, state, attrs, t, payoff, mo, co)
	}
	s := state.Clone()
	s.Notional += payoff
	s.StatusDate = t
	return s, nil
}
