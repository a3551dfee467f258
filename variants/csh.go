package variants

import (
	"time"

	"github.com/meenmo/actuskit/contract"
	"github.com/meenmo/actuskit/observer"
	"github.com/meenmo/actuskit/schedule"
)

func init() {
	register(contract.CSH, Entry{
		Schedule:   cshSchedule,
		Initialize: cshInitialize,
		POF:        cshPOF,
		STF:        cshSTF,
		Accrue:     NoAccrual,
	})
}

// cshSchedule is minimal: a single AD at status_date tracking the opening
// position, plus a single-fire transfer event when TransferDate is set.
func cshSchedule(attrs contract.Attributes, beh observer.Behavioral) ([]contract.Event, error) {
	var events []contract.Event
	if e := singleEvent(contract.KindAD, attrs.StatusDate, attrs.BusinessDayConvention, attrs.Calendar); e != nil {
		events = append(events, *e)
	}
	if e := singleEvent(contract.KindSTD, attrs.TransferDate, attrs.BusinessDayConvention, attrs.Calendar); e != nil {
		events = append(events, *e)
	}
	if beh != nil {
		events = schedule.MergeCallouts(events, beh.Callouts())
	}
	return schedule.Finalize(events), nil
}

func cshInitialize(attrs contract.Attributes) (contract.State, error) {
	s := contract.NewState()
	s.Notional = R(attrs) * attrs.NotionalPrincipal
	s.StatusDate = attrs.StatusDate
	return s, nil
}

func cshPOF(kind contract.Kind, state contract.State, attrs contract.Attributes, t time.Time, mo observer.Market, co observer.Child) (float64, error) {
	if kind == contract.KindSTD {
		return R(attrs) * attrs.TransferAmount, nil
	}
	return 0, nil
}

func cshSTF(kind contract.Kind, state contract.State, attrs contract.Attributes, t time.Time, payoff float64, mo observer.Market, co observer.Child) (contract.State, error) {
	s := state.Clone()
	if kind == contract.KindSTD {
		s.Notional += R(attrs) * attrs.TransferAmount
	}
	s.StatusDate = t
	return s, nil
}
