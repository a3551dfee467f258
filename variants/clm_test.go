package variants_test

import (
	"testing"
	"time"

	"github.com/meenmo/actuskit/calendar"
	"github.com/meenmo/actuskit/contract"
	"github.com/meenmo/actuskit/daycount"
	"github.com/meenmo/actuskit/observer"
	"github.com/meenmo/actuskit/variants"
)

func baseCLM() contract.Attributes {
	return contract.Attributes{
		ContractID:            "CLM1",
		ContractType:          contract.CLM,
		ContractRole:          contract.RoleRPA,
		Currency:              "USD",
		StatusDate:            date(2024, time.January, 1),
		InitialExchangeDate:   date(2024, time.January, 1),
		HorizonDate:           date(2025, time.January, 1),
		NotionalPrincipal:     1000,
		NominalInterestRate:   0.05,
		CycleInterest:         contract.Cyc{Cycle: "3M"},
		XDayNotice:            2,
		DayCountConvention:    daycount.Act365,
		BusinessDayConvention: calendar.SCF,
		Calendar:              calendar.NoHolidays,
	}
}

func TestCLMScheduleTruncatesAtHorizonWithoutExercise(t *testing.T) {
	t.Parallel()
	attrs := baseCLM()
	entry, err := variants.Lookup(contract.CLM)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	events, err := entry.Schedule(attrs, nil)
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	for _, e := range events {
		if e.Kind == contract.KindMD {
			t.Fatalf("an un-exercised CLM must have no MD event: %v", e)
		}
		if e.EventTime.After(attrs.HorizonDate) {
			t.Fatalf("event %v at %v falls after horizon_date %v", e.Kind, e.EventTime, attrs.HorizonDate)
		}
	}
}

func TestCLMScheduleRetimesSettlementOnExerciseCallout(t *testing.T) {
	t.Parallel()
	attrs := baseCLM()
	exercised := date(2024, time.June, 1)
	beh := observer.Scripted{
		CalloutList: []observer.Callout{
			{Time: exercised, Kind: "XD"},
		},
	}
	entry, _ := variants.Lookup(contract.CLM)
	events, err := entry.Schedule(attrs, beh)
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}

	want := exercised.AddDate(0, 0, attrs.XDayNotice)
	// 2024-06-01 is a Saturday: under SCF the XD event rolls to Monday.
	wantXD, _ := calendar.Adjust(attrs.Calendar, exercised, attrs.BusinessDayConvention)
	var sawXD, sawMD bool
	for _, e := range events {
		if e.Kind == contract.KindXD {
			sawXD = true
			if !e.EventTime.Equal(wantXD) {
				t.Fatalf("XD event_time = %v, want the business-day-adjusted exercise date %v", e.EventTime, wantXD)
			}
		}
		if e.Kind == contract.KindMD {
			sawMD = true
			if !e.EventTime.Equal(want) {
				t.Fatalf("MD event_time = %v, want exercise + xDayNotice = %v", e.EventTime, want)
			}
		}
	}
	if !sawXD || !sawMD {
		t.Fatalf("an exercised CLM must schedule both XD and MD: sawXD=%v sawMD=%v", sawXD, sawMD)
	}
}

func TestCLMPOFXDCarriesNoPayoff(t *testing.T) {
	t.Parallel()
	attrs := baseCLM()
	entry, _ := variants.Lookup(contract.CLM)
	state := contract.State{StatusDate: date(2024, time.January, 1)}

	payoff, err := entry.POF(contract.KindXD, state, attrs, date(2024, time.June, 1), nil, nil)
	if err != nil {
		t.Fatalf("POF(XD): %v", err)
	}
	if payoff != 0 {
		t.Fatalf("POF(XD) = %v, want 0", payoff)
	}
}
