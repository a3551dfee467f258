package variants_test

import (
	"testing"
	"time"

	"github.com/meenmo/actuskit/contract"
	"github.com/meenmo/actuskit/observer"
	"github.com/meenmo/actuskit/variants"
)

func TestSTKScheduleExpandsDividendCycleToMaturity(t *testing.T) {
	t.Parallel()
	attrs := contract.Attributes{
		ContractID:        "STK1",
		ContractType:      contract.STK,
		ContractRole:      contract.RoleRPA,
		Currency:          "USD",
		StatusDate:        date(2024, time.January, 1),
		MaturityDate:      date(2025, time.January, 1),
		CycleDividend:     contract.Cyc{Cycle: "6M"},
		NotionalPrincipal: 10,
	}
	entry, err := variants.Lookup(contract.STK)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	events, err := entry.Schedule(attrs, nil)
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	var dvCount int
	for _, e := range events {
		if e.Kind == contract.KindDV {
			dvCount++
		}
	}
	if dvCount == 0 {
		t.Fatalf("expected at least one DV event from a 6M dividend cycle over a one-year horizon")
	}
}

func TestSTKPOFDVObservesDividendFromMarket(t *testing.T) {
	t.Parallel()
	attrs := contract.Attributes{
		ContractID:                 "STK1",
		ContractType:               contract.STK,
		ContractRole:               contract.RoleRPA,
		Currency:                   "USD",
		MarketObjectCodeUnderlying: "ACME-DIV",
	}
	entry, _ := variants.Lookup(contract.STK)
	market := observer.Dict{"ACME-DIV": 2.5}
	payoff, err := entry.POF(contract.KindDV, contract.State{}, attrs, date(2024, time.July, 1), market, nil)
	if err != nil {
		t.Fatalf("POF(DV): %v", err)
	}
	if payoff != 2.5 {
		t.Fatalf("POF(DV) = %v, want 2.5 (observed dividend)", payoff)
	}
}
