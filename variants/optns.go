package variants

import (
	"math"
	"time"

	"github.com/meenmo/actuskit/contract"
	"github.com/meenmo/actuskit/observer"
	"github.com/meenmo/actuskit/schedule"
)

func init() {
	register(contract.OPTNS, Entry{
		Schedule:   optnsSchedule,
		Initialize: fxoutInitialize,
		POF:        optnsPOF,
		STF:        optnsSTF,
		Accrue:     NoAccrual,
	})
}

// optnsSchedule generates XD events per option_exercise_type: European
// fires once at maturity; American fires monthly from status_date to
// maturity; Bermudan fires once at option_exercise_end_date.
func optnsSchedule(attrs contract.Attributes, beh observer.Behavioral) ([]contract.Event, error) {
	if attrs.MaturityDate.IsZero() {
		return nil, contract.NewScheduleError(attrs.ContractID, "OPTNS requires maturity_date")
	}

	var events []contract.Event
	switch attrs.OptionExerciseType {
	case contract.American:
		am, err := expandFamily(contract.KindXD, attrs.StatusDate, "1M", attrs.MaturityDate, attrs.EndOfMonthConvention, attrs.BusinessDayConvention, attrs.Calendar)
		if err != nil {
			return nil, err
		}
		events = append(events, am...)
	case contract.Bermudan:
		end := attrs.OptionExerciseEndDate
		if end.IsZero() {
			end = attrs.MaturityDate
		}
		if e := singleEvent(contract.KindXD, end, attrs.BusinessDayConvention, attrs.Calendar); e != nil {
			events = append(events, *e)
		}
	default: // European
		if e := singleEvent(contract.KindXD, attrs.MaturityDate, attrs.BusinessDayConvention, attrs.Calendar); e != nil {
			events = append(events, *e)
		}
	}

	if beh != nil {
		events = schedule.MergeCallouts(events, beh.Callouts())
	}
	return schedule.Finalize(events), nil
}

// optnsPOF is POF_XD: R(role) * max(0, sign*(S_t - K)), sign=+1 for a
// call, -1 for a put, S_t observed from market_object_code_underlying.
func optnsPOF(kind contract.Kind, state contract.State, attrs contract.Attributes, t time.Time, mo observer.Market, co observer.Child) (float64, error) {
	if kind != contract.KindXD {
		return 0, nil
	}
	sign := 1.0
	if attrs.OptionType == contract.Put {
		sign = -1.0
	}
	spot := mo.Get(attrs.MarketObjectCodeUnderlying, t)
	return R(attrs) * math.Max(0, sign*(spot-attrs.OptionStrike1)), nil
}

func optnsSTF(kind contract.Kind, state contract.State, attrs contract.Attributes, t time.Time, payoff float64, mo observer.Market, co observer.Child) (contract.State, error) {
	s := state.Clone()
	if kind == contract.KindXD {
		s.ExerciseDate = t
		s.ExerciseAmount = payoff
		s.StatusDate = t
	}
	return s, nil
}
