package variants

import (
	"time"

	"github.com/meenmo/actuskit/contract"
	"github.com/meenmo/actuskit/observer"
	"github.com/meenmo/actuskit/schedule"
)

func init() {
	register(contract.FUTUR, Entry{
		Schedule:   futurSchedule,
		Initialize: futurInitialize,
		POF:        futurPOF,
		STF:        futurSTF,
		Accrue:     NoAccrual,
	})
}

// futurSchedule marks to market on CycleFee (repurposed here as the
// mark-to-market cadence since FUTUR has no fee of its own) up to
// maturity, then settles with a single STD.
func futurSchedule(attrs contract.Attributes, beh observer.Behavioral) ([]contract.Event, error) {
	if attrs.MaturityDate.IsZero() {
		return nil, contract.NewScheduleError(attrs.ContractID, "FUTUR requires maturity_date")
	}
	cyc := attrs.CycleFee.Cycle
	if cyc == "" {
		cyc = "1D"
	}
	anchor := attrs.CycleFee.Anchor
	if anchor.IsZero() {
		anchor = attrs.StatusDate
	}
	mtm, err := expandFamily(contract.KindSTD, anchor, cyc, attrs.MaturityDate, attrs.EndOfMonthConvention, attrs.BusinessDayConvention, attrs.Calendar, attrs.MaturityDate)
	if err != nil {
		return nil, err
	}
	events := mtm
	if e := singleEvent(contract.KindSTD, attrs.MaturityDate, attrs.BusinessDayConvention, attrs.Calendar); e != nil {
		events = append(events, *e)
	}
	if beh != nil {
		events = schedule.MergeCallouts(events, beh.Callouts())
	}
	return schedule.Finalize(events), nil
}

func futurInitialize(attrs contract.Attributes) (contract.State, error) {
	s := contract.NewState()
	s.StatusDate = attrs.StatusDate
	s.MaturityDate = attrs.MaturityDate
	s.Custom["lastPrice"] = attrs.FuturesPrice
	return s, nil
}

// futurPOF reports the change in observed price against the last
// mark-to-market, not the raw price itself — a futures contract's
// periodic settlement pays the variation margin.
func futurPOF(kind contract.Kind, state contract.State, attrs contract.Attributes, t time.Time, mo observer.Market, co observer.Child) (float64, error) {
	if kind != contract.KindSTD {
		return 0, nil
	}
	price := mo.Get(attrs.MarketObjectCodeUnderlying, t)
	return R(attrs) * (price - state.Custom["lastPrice"]), nil
}

func futurSTF(kind contract.Kind, state contract.State, attrs contract.Attributes, t time.Time, payoff float64, mo observer.Market, co observer.Child) (contract.State, error) {
	s := state.Clone()
	if kind == contract.KindSTD {
		s.Custom["lastPrice"] = mo.Get(attrs.MarketObjectCodeUnderlying, t)
		s.StatusDate = t
	}
	return s, nil
}
