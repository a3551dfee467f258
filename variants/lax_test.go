package variants_test

import (
	"testing"
	"time"

	"github.com/meenmo/actuskit/calendar"
	"github.com/meenmo/actuskit/contract"
	"github.com/meenmo/actuskit/daycount"
	"github.com/meenmo/actuskit/variants"
)

func baseLAX() contract.Attributes {
	return contract.Attributes{
		ContractID:            "LAX1",
		ContractType:          contract.LAX,
		ContractRole:          contract.RoleRPA,
		Currency:              "USD",
		StatusDate:            date(2024, time.January, 1),
		InitialExchangeDate:   date(2024, time.January, 1),
		MaturityDate:          date(2025, time.January, 1),
		NotionalPrincipal:     1000,
		NominalInterestRate:   0.05,
		DayCountConvention:    daycount.Act365,
		BusinessDayConvention: calendar.SCF,
		Calendar:              calendar.NoHolidays,
		PrincipalRedemptionSchedule: []contract.PRPoint{
			{Date: date(2024, time.July, 1), Amount: 300},
		},
	}
}

func TestLAXScheduleBuildsOnePREventPerScheduleEntry(t *testing.T) {
	t.Parallel()
	attrs := baseLAX()
	entry, err := variants.Lookup(contract.LAX)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	events, err := entry.Schedule(attrs, nil)
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	var prCount int
	for _, e := range events {
		if e.Kind == contract.KindPR {
			prCount++
		}
	}
	if prCount != 1 {
		t.Fatalf("PR event count = %d, want 1 (one per principal_redemption_schedule entry, excluding maturity)", prCount)
	}
}

func TestLAXScheduleDropsEntryCoincidentWithMaturity(t *testing.T) {
	t.Parallel()
	attrs := baseLAX()
	attrs.PrincipalRedemptionSchedule = []contract.PRPoint{
		{Date: attrs.MaturityDate, Amount: 1000},
	}
	entry, _ := variants.Lookup(contract.LAX)
	events, err := entry.Schedule(attrs, nil)
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	for _, e := range events {
		if e.Kind == contract.KindPR {
			t.Fatalf("a schedule entry coincident with maturity must not produce its own PR event")
		}
	}
}

func TestLAXPOFReadsAmountFromScheduleNotState(t *testing.T) {
	t.Parallel()
	attrs := baseLAX()
	entry, _ := variants.Lookup(contract.LAX)
	state := contract.State{Notional: 1000, StatusDate: date(2024, time.January, 1)}

	payoff, err := entry.POF(contract.KindPR, state, attrs, date(2024, time.July, 1), nil, nil)
	if err != nil {
		t.Fatalf("POF(PR): %v", err)
	}
	if payoff != 300 {
		t.Fatalf("POF(PR) = %v, want 300 (the scheduled amount)", payoff)
	}
}

func TestLAXSTFCapsRedemptionAtRemainingNotional(t *testing.T) {
	t.Parallel()
	attrs := baseLAX()
	attrs.PrincipalRedemptionSchedule = []contract.PRPoint{
		{Date: date(2024, time.July, 1), Amount: 5000},
	}
	entry, _ := variants.Lookup(contract.LAX)
	state := contract.State{Notional: 1000, StatusDate: date(2024, time.January, 1)}

	post, err := entry.STF(contract.KindPR, state, attrs, date(2024, time.July, 1), 5000, nil, nil)
	if err != nil {
		t.Fatalf("STF(PR): %v", err)
	}
	if post.Notional != 0 {
		t.Fatalf("Notional after an overshooting redemption = %v, want 0", post.Notional)
	}
}
