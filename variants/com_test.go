package variants_test

import (
	"testing"
	"time"

	"github.com/meenmo/actuskit/contract"
	"github.com/meenmo/actuskit/variants"
)

func TestCOMPOFNeverGeneratesACashPayoffOnItsOwn(t *testing.T) {
	t.Parallel()
	attrs := contract.Attributes{
		ContractID:        "COM1",
		ContractType:      contract.COM,
		ContractRole:      contract.RoleRPA,
		Currency:          "USD",
		NotionalPrincipal: 100,
	}
	entry, err := variants.Lookup(contract.COM)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	payoff, err := entry.POF(contract.KindSTD, contract.State{}, attrs, date(2024, time.January, 1), nil, nil)
	if err != nil {
		t.Fatalf("POF(STD): %v", err)
	}
	if payoff != 0 {
		t.Fatalf("POF(STD) = %v, want 0 (COM only produces a payoff via a behavioral trade callout)", payoff)
	}
}

func TestCOMInitializeTracksQuantityAsNotional(t *testing.T) {
	t.Parallel()
	attrs := contract.Attributes{
		ContractID:        "COM1",
		ContractType:      contract.COM,
		ContractRole:      contract.RoleRPA,
		Currency:          "USD",
		StatusDate:        date(2024, time.January, 1),
		NotionalPrincipal: 100,
	}
	entry, _ := variants.Lookup(contract.COM)
	state, err := entry.Initialize(attrs)
	if err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if state.Notional != 100 {
		t.Fatalf("Notional = %v, want 100 (held quantity, not a currency amount)", state.Notional)
	}
}
