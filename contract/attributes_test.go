package contract_test

import (
	"testing"
	"time"

	"github.com/meenmo/actuskit/contract"
)

func TestSignByRole(t *testing.T) {
	t.Parallel()
	cases := []struct {
		role contract.Role
		want float64
	}{
		{contract.RoleRPA, 1},
		{contract.RoleRFL, 1},
		{contract.RoleBUY, 1},
		{contract.RoleGUA, 1},
		{contract.RoleCOL, 1},
		{contract.RoleRPL, -1},
		{contract.RoleRF, -1},
		{contract.RoleSEL, -1},
		{contract.RoleOBL, -1},
	}
	for _, c := range cases {
		a := contract.Attributes{ContractRole: c.role}
		if got := a.Sign(); got != c.want {
			t.Errorf("Sign(%s) = %v, want %v", c.role, got, c.want)
		}
	}
}

func TestValidateRequiresMandatoryFields(t *testing.T) {
	t.Parallel()
	base := contract.Attributes{
		ContractID:   "C1",
		ContractType: contract.PAM,
		StatusDate:   time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		Currency:     "USD",
		ContractRole: contract.RoleRPA,
	}
	if err := base.Validate(); err != nil {
		t.Fatalf("Validate() on a complete record: unexpected error %v", err)
	}

	missing := base
	missing.ContractID = ""
	if err := missing.Validate(); err == nil {
		t.Errorf("missing contract_id: expected error")
	}

	missing = base
	missing.ContractType = ""
	if err := missing.Validate(); err == nil {
		t.Errorf("missing contract_type: expected error")
	}

	missing = base
	missing.StatusDate = time.Time{}
	if err := missing.Validate(); err == nil {
		t.Errorf("missing status_date: expected error")
	}

	missing = base
	missing.Currency = ""
	if err := missing.Validate(); err == nil {
		t.Errorf("missing currency: expected error")
	}

	missing = base
	missing.ContractRole = contract.Role("NOPE")
	if err := missing.Validate(); err == nil {
		t.Errorf("unknown contract_role: expected error")
	}
}

func TestEffectiveMaturityFallsBackToHorizon(t *testing.T) {
	t.Parallel()
	horizon := time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)
	a := contract.Attributes{HorizonDate: horizon}
	if got := a.EffectiveMaturity(); !got.Equal(horizon) {
		t.Fatalf("EffectiveMaturity() = %s, want horizon_date %s", got, horizon)
	}

	maturity := time.Date(2028, time.January, 1, 0, 0, 0, 0, time.UTC)
	a.MaturityDate = maturity
	if got := a.EffectiveMaturity(); !got.Equal(maturity) {
		t.Fatalf("EffectiveMaturity() = %s, want maturity_date %s", got, maturity)
	}
}

func TestCycParsedEmptyIsZeroValueNoError(t *testing.T) {
	t.Parallel()
	c := contract.Cyc{}
	got, err := c.Parsed()
	if err != nil {
		t.Fatalf("Parsed() on empty cycle string: unexpected error %v", err)
	}
	if got.N != 0 {
		t.Fatalf("Parsed() on empty cycle string = %+v, want zero value", got)
	}
}
