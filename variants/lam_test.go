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

func baseLAM() contract.Attributes {
	return contract.Attributes{
		ContractID:                     "LAM1",
		ContractType:                   contract.LAM,
		ContractRole:                   contract.RoleRPA,
		Currency:                       "USD",
		StatusDate:                     date(2024, time.January, 1),
		InitialExchangeDate:            date(2024, time.January, 1),
		MaturityDate:                   date(2025, time.January, 1),
		NotionalPrincipal:              1200,
		NominalInterestRate:            0.06,
		NextPrincipalRedemptionPayment: 100,
		CycleInterest:                  contract.Cyc{Cycle: "3M"},
		CyclePrincipalRedemption:       contract.Cyc{Cycle: "3M"},
		DayCountConvention:             daycount.Act365,
		BusinessDayConvention:          calendar.SCF,
		Calendar:                       calendar.NoHolidays,
	}
}

func TestLAMInitializeSetsNextPrincipalPayment(t *testing.T) {
	t.Parallel()
	attrs := baseLAM()
	entry, err := variants.Lookup(contract.LAM)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	state, err := entry.Initialize(attrs)
	if err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if state.NextPrincipalPayment != 100 {
		t.Fatalf("NextPrincipalPayment = %v, want 100", state.NextPrincipalPayment)
	}
}

func TestLAMPRPaysFixedInstallment(t *testing.T) {
	t.Parallel()
	attrs := baseLAM()
	entry, _ := variants.Lookup(contract.LAM)
	state, _ := entry.Initialize(attrs)

	payoff, err := entry.POF(contract.KindPR, state, attrs, date(2024, time.April, 1), observer.Constant{}, nil)
	if err != nil {
		t.Fatalf("POF(PR): %v", err)
	}
	if payoff != 100 {
		t.Fatalf("POF(PR) = %v, want the fixed installment 100", payoff)
	}

	post, err := entry.STF(contract.KindPR, state, attrs, date(2024, time.April, 1), payoff, observer.Constant{}, nil)
	if err != nil {
		t.Fatalf("STF(PR): %v", err)
	}
	if post.Notional != 1100 {
		t.Fatalf("Notional after PR = %v, want 1200-100=1100", post.Notional)
	}
}

func TestLAMPRNeverCrossesZero(t *testing.T) {
	t.Parallel()
	attrs := baseLAM()
	attrs.NotionalPrincipal = 50
	attrs.NextPrincipalRedemptionPayment = 100
	entry, _ := variants.Lookup(contract.LAM)
	state, _ := entry.Initialize(attrs)

	post, err := entry.STF(contract.KindPR, state, attrs, date(2024, time.April, 1), 100, observer.Constant{}, nil)
	if err != nil {
		t.Fatalf("STF(PR): %v", err)
	}
	if post.Notional != 0 {
		t.Fatalf("Notional after an over-sized PR = %v, want capped at 0", post.Notional)
	}
}
