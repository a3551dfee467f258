package variants

import (
	"time"

	"github.com/meenmo/actuskit/contract"
	"github.com/meenmo/actuskit/observer"
	"github.com/meenmo/actuskit/schedule"
)

func init() {
	register(contract.CLM, Entry{
		Schedule:   clmSchedule,
		Initialize: pamInitialize,
		POF:        clmPOF,
		STF:        clmSTF,
		Accrue:     AccrueSingleLeg,
	})
}

// clmSchedule builds an open-ended call-money schedule: IED, recurring IP,
// and an XD event whenever the behavioral observer calls out an exercise.
// Until an exercise callout arrives, the contract has no MD — Simulate
// truncates the lifecycle at the horizon date instead. When an exercise
// callout does arrive, its settlement lands xDayNotice days later and
// retimes IP/MD onto that settlement date.
func clmSchedule(attrs contract.Attributes, beh observer.Behavioral) ([]contract.Event, error) {
	end := attrs.HorizonDate
	if end.IsZero() {
		return nil, contract.NewScheduleError(attrs.ContractID, "CLM requires horizon_date absent an exercise callout")
	}

	var exercised time.Time
	if beh != nil {
		for _, c := range beh.Callouts() {
			if contract.Kind(c.Kind) == contract.KindXD {
				exercised = c.Time
				break
			}
		}
	}
	settlement := end
	if !exercised.IsZero() {
		settlement = exercised.AddDate(0, 0, attrs.XDayNotice)
	}

	var events []contract.Event
	if e := singleEvent(contract.KindIED, attrs.InitialExchangeDate, attrs.BusinessDayConvention, attrs.Calendar); e != nil {
		events = append(events, *e)
	}

	ipAnchor := attrs.CycleInterest.Anchor
	if ipAnchor.IsZero() {
		ipAnchor = attrs.InitialExchangeDate
	}
	ipFamily, err := expandFamily(contract.KindIP, ipAnchor, attrs.CycleInterest.Cycle, settlement, attrs.EndOfMonthConvention, attrs.BusinessDayConvention, attrs.Calendar, attrs.InitialExchangeDate, settlement)
	if err != nil {
		return nil, err
	}
	events = append(events, ipFamily...)

	if !exercised.IsZero() {
		if e := singleEvent(contract.KindXD, exercised, attrs.BusinessDayConvention, attrs.Calendar); e != nil {
			events = append(events, *e)
		}
		if e := singleEvent(contract.KindMD, settlement, attrs.BusinessDayConvention, attrs.Calendar); e != nil {
			events = append(events, *e)
		}
	}

	if beh != nil {
		events = schedule.MergeCallouts(events, filterNonXD(beh.Callouts()))
	}
	return schedule.Finalize(events), nil
}

func filterNonXD(callouts []observer.Callout) []observer.Callout {
	out := make([]observer.Callout, 0, len(callouts))
	for _, c := range callouts {
		if contract.Kind(c.Kind) != contract.KindXD {
			out = append(out, c)
		}
	}
	return out
}

func clmPOF(kind contract.Kind, state contract.State, attrs contract.Attributes, t time.Time, mo observer.Market, co observer.Child) (float64, error) {
	if kind == contract.KindXD {
		return 0, nil
	}
	return pamPOF(kind, state, attrs, t, mo, co)
}

func clmSTF(kind contract.Kind, state contract.State, attrs contract.Attributes, t time.Time, payoff float64, mo observer.Market, co observer.Child) (contract.State, error) {
	if kind == contract.KindXD {
		s := state.Clone()
		s.ExerciseDate = t
		s.StatusDate = t
		return s, nil
	}
	return pamSTF(kind, state, attrs, t, payoff, mo, co)
}
