package variants_test

import (
	"testing"
	"time"

	"github.com/meenmo/actuskit/calendar"
	"github.com/meenmo/actuskit/contract"
	"github.com/meenmo/actuskit/daycount"
	"github.com/meenmo/actuskit/variants"
)

func baseUMP() contract.Attributes {
	return contract.Attributes{
		ContractID:            "UMP1",
		ContractType:          contract.UMP,
		ContractRole:          contract.RoleRPA,
		Currency:              "USD",
		StatusDate:            date(2024, time.January, 1),
		InitialExchangeDate:   date(2024, time.January, 1),
		HorizonDate:           date(2025, time.January, 1),
		NotionalPrincipal:     1000,
		NominalInterestRate:   0.05,
		CycleInterest:         contract.Cyc{Cycle: "6M"},
		DayCountConvention:    daycount.Act365,
		BusinessDayConvention: calendar.SCF,
		Calendar:              calendar.NoHolidays,
	}
}

func TestUMPScheduleRequiresMaturityOrHorizon(t *testing.T) {
	t.Parallel()
	attrs := baseUMP()
	attrs.HorizonDate = time.Time{}
	entry, err := variants.Lookup(contract.UMP)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if _, err := entry.Schedule(attrs, nil); err == nil {
		t.Fatalf("Schedule with no maturity_date or horizon_date: expected an error")
	}
}

func TestUMPSTFPRDepositsAddToNotional(t *testing.T) {
	t.Parallel()
	attrs := baseUMP()
	entry, _ := variants.Lookup(contract.UMP)
	state := contract.State{Notional: 1000, StatusDate: date(2024, time.January, 1)}

	post, err := entry.STF(contract.KindPR, state, attrs, date(2024, time.March, 1), 250, nil, nil)
	if err != nil {
		t.Fatalf("STF(PR): %v", err)
	}
	if post.Notional != 1250 {
		t.Fatalf("Notional after a 250 deposit = %v, want 1250", post.Notional)
	}
}

func TestUMPSTFPRWithdrawalSubtractsFromNotional(t *testing.T) {
	t.Parallel()
	attrs := baseUMP()
	entry, _ := variants.Lookup(contract.UMP)
	state := contract.State{Notional: 1000, StatusDate: date(2024, time.January, 1)}

	post, err := entry.STF(contract.KindPR, state, attrs, date(2024, time.March, 1), -400, nil, nil)
	if err != nil {
		t.Fatalf("STF(PR): %v", err)
	}
	if post.Notional != 600 {
		t.Fatalf("Notional after a -400 withdrawal = %v, want 600", post.Notional)
	}
}
