// Package actusjson implements the ACTUS JSON cross-validation format
// (§6): a camelCase "terms" map that round-trips into contract.Attributes,
// a "dataObserved" market time-series block, and a "results" reference
// event list compared against the engine's own simulation with tolerance.
//
// This format is test-harness I/O only, never the engine's own wire
// format — Attributes is built and consumed directly by Go callers in the
// common case.
package actusjson

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/meenmo/actuskit/calendar"
	"github.com/meenmo/actuskit/contract"
	"github.com/meenmo/actuskit/daycount"
)

// TestCase is one ACTUS JSON test-vector record.
type TestCase struct {
	Identifier   string                       `json:"identifier"`
	Terms        map[string]string             `json:"terms"`
	DataObserved map[string]ObservedSeries    `json:"dataObserved"`
	Results      []ReferenceEvent              `json:"results"`
}

// ObservedSeries is one marketObjectCode's observed data points.
type ObservedSeries struct {
	Data []ObservedPoint `json:"data"`
}

// ObservedPoint is a single {time, value} sample.
type ObservedPoint struct {
	Time  string `json:"time"`
	Value string `json:"value"`
}

// ReferenceEvent is one row of the "results" reference event list.
type ReferenceEvent struct {
	Time                string `json:"time"`
	Type                string `json:"type"`
	Payoff              string `json:"payoff"`
	NotionalPrincipal   string `json:"notionalPrincipal"`
	NominalInterestRate string `json:"nominalInterestRate"`
	AccruedInterest     string `json:"accruedInterest"`
}

// Decode parses raw ACTUS JSON test-case bytes using goccy/go-json, the
// faster drop-in codec the pack standardizes on for the JSON interchange
// boundary.
func Decode(raw []byte) (TestCase, error) {
	var tc TestCase
	if err := json.Unmarshal(raw, &tc); err != nil {
		return TestCase{}, fmt.Errorf("actusjson: decode: %w", err)
	}
	return tc, nil
}

// ToAttributes converts terms into an Attributes value. Unrecognized keys
// are kept in RawTerms rather than rejected, since the cross-validation
// suite's term sets vary by contract type and this engine only needs to
// interpret the subset it actually simulates.
func ToAttributes(terms map[string]string) (contract.Attributes, error) {
	attrs := contract.Attributes{RawTerms: map[string]string{}}
	for k, v := range terms {
		if err := assign(&attrs, k, v); err != nil {
			return attrs, fmt.Errorf("actusjson: term %q: %w", k, err)
		}
	}
	return attrs, nil
}

func assign(attrs *contract.Attributes, key, value string) error {
	switch key {
	case "contractID":
		attrs.ContractID = value
	case "contractType":
		attrs.ContractType = contract.Type(value)
	case "contractRole":
		attrs.ContractRole = contract.Role(value)
	case "statusDate":
		t, err := parseTime(value)
		if err != nil {
			return err
		}
		attrs.StatusDate = t
	case "currency":
		attrs.Currency = value
	case "currency2":
		attrs.Currency2 = value
	case "initialExchangeDate":
		t, err := parseTime(value)
		if err != nil {
			return err
		}
		attrs.InitialExchangeDate = t
	case "maturityDate":
		t, err := parseTime(value)
		if err != nil {
			return err
		}
		attrs.MaturityDate = t
	case "purchaseDate":
		t, err := parseTime(value)
		if err != nil {
			return err
		}
		attrs.PurchaseDate = t
	case "terminationDate":
		t, err := parseTime(value)
		if err != nil {
			return err
		}
		attrs.TerminationDate = t
	case "notionalPrincipal":
		f, err := parseDecimal(value)
		if err != nil {
			return err
		}
		attrs.NotionalPrincipal = f
	case "nominalInterestRate":
		f, err := parseDecimal(value)
		if err != nil {
			return err
		}
		attrs.NominalInterestRate = f
	case "notionalPrincipal2":
		f, err := parseDecimal(value)
		if err != nil {
			return err
		}
		attrs.NotionalPrincipal2 = f
	case "nominalInterestRate2":
		f, err := parseDecimal(value)
		if err != nil {
			return err
		}
		attrs.NominalInterestRate2 = f
	case "nextPrincipalRedemptionPayment":
		f, err := parseDecimal(value)
		if err != nil {
			return err
		}
		attrs.NextPrincipalRedemptionPayment = f
	case "rateSpread":
		f, err := parseDecimal(value)
		if err != nil {
			return err
		}
		attrs.RateSpread = f
	case "rateMultiplier":
		f, err := parseDecimal(value)
		if err != nil {
			return err
		}
		attrs.RateMultiplier = f
	case "lifeCap":
		f, err := parseDecimal(value)
		if err != nil {
			return err
		}
		attrs.LifeCap = f
	case "lifeFloor":
		f, err := parseDecimal(value)
		if err != nil {
			return err
		}
		attrs.LifeFloor = f
	case "feeRate":
		f, err := parseDecimal(value)
		if err != nil {
			return err
		}
		attrs.FeeRate = f
	case "dayCountConvention":
		attrs.DayCountConvention = daycount.Convention(value)
	case "businessDayConvention":
		attrs.BusinessDayConvention = calendar.Convention(value)
	case "endOfMonthConvention":
		attrs.EndOfMonthConvention = value == "true" || value == "EOM"
	case "calendar":
		attrs.Calendar = calendar.CalendarID(value)
	case "rateResetMarketObjectCode":
		attrs.RateResetMarketObjectCode = value
	case "scalingIndexMarketObjectCode":
		attrs.ScalingIndexMarketObjectCode = value
	case "marketObjectCodeOfUnderlying":
		attrs.MarketObjectCodeUnderlying = value
	case "feeBasis":
		attrs.FeeBasis = contract.FeeBasis(value)
	case "penaltyType":
		attrs.PenaltyType = contract.PenaltyType(value)
	case "scalingEffect":
		attrs.ScalingEffect = contract.ScalingEffect(value)
	case "cycleAnchorDateOfInterestPayment":
		t, err := parseTime(value)
		if err != nil {
			return err
		}
		attrs.CycleInterest.Anchor = t
	case "cycleOfInterestPayment":
		attrs.CycleInterest.Cycle = value
	case "cycleAnchorDateOfRateReset":
		t, err := parseTime(value)
		if err != nil {
			return err
		}
		attrs.CycleRateReset.Anchor = t
	case "cycleOfRateReset":
		attrs.CycleRateReset.Cycle = value
	case "cycleAnchorDateOfPrincipalRedemption":
		t, err := parseTime(value)
		if err != nil {
			return err
		}
		attrs.CyclePrincipalRedemption.Anchor = t
	case "cycleOfPrincipalRedemption":
		attrs.CyclePrincipalRedemption.Cycle = value
	case "cycleAnchorDateOfFee":
		t, err := parseTime(value)
		if err != nil {
			return err
		}
		attrs.CycleFee.Anchor = t
	case "cycleOfFee":
		attrs.CycleFee.Cycle = value
	default:
		attrs.RawTerms[key] = value
	}
	return nil
}

func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// parseDecimal parses s via shopspring/decimal to preserve the exact
// decimal representation ACTUS JSON terms carry, converting to float64
// only at the end of the boundary — the engine's internal numeric domain
// is IEEE-754 float64 throughout (§9), never decimal.
func parseDecimal(s string) (float64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	f, _ := d.Float64()
	return f, nil
}
