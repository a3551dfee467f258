package contract

import (
	"time"

	"github.com/meenmo/actuskit/calendar"
	"github.com/meenmo/actuskit/cycle"
	"github.com/meenmo/actuskit/daycount"
)

// Type is an ACTUS contract type code.
type Type string

const (
	PAM    Type = "PAM"
	LAM    Type = "LAM"
	LAX    Type = "LAX"
	NAM    Type = "NAM"
	ANN    Type = "ANN"
	CLM    Type = "CLM"
	UMP    Type = "UMP"
	CSH    Type = "CSH"
	STK    Type = "STK"
	COM    Type = "COM"
	FXOUT  Type = "FXOUT"
	OPTNS  Type = "OPTNS"
	FUTUR  Type = "FUTUR"
	SWPPV  Type = "SWPPV"
	SWAPS  Type = "SWAPS"
	CAPFL  Type = "CAPFL"
	CEG    Type = "CEG"
	CEC    Type = "CEC"
)

// FeeBasis selects how periodic fees accrue.
type FeeBasis string

const (
	FeeBasisAbsolute FeeBasis = "A" // fixed amount per period
	FeeBasisNotional FeeBasis = "N" // rate applied to notional
)

// PenaltyType selects the prepayment-penalty formula (POF_PY).
type PenaltyType string

const (
	PenaltyAbsolute       PenaltyType = "A"
	PenaltyNotional       PenaltyType = "N"
	PenaltyRateDifferential PenaltyType = "I"
)

// ScalingEffect selects which state cells an SC event rescales.
type ScalingEffect string

const (
	ScalingNone            ScalingEffect = "000"
	ScalingInterestOnly    ScalingEffect = "I00"
	ScalingNotionalOnly    ScalingEffect = "0N0"
	ScalingInterestNotional ScalingEffect = "IN0"
)

// OptionType distinguishes call vs put for OPTNS.
type OptionType string

const (
	Call OptionType = "C"
	Put  OptionType = "P"
)

// OptionExerciseType selects the exercise schedule generated for OPTNS.
type OptionExerciseType string

const (
	European OptionExerciseType = "E"
	American OptionExerciseType = "A"
	Bermudan OptionExerciseType = "B"
)

// DeliverySettlement selects gross (physical/per-leg) vs net settlement
// for FXOUT and SWPPV/SWAPS.
type DeliverySettlement string

const (
	Gross DeliverySettlement = "D" // deliver both legs
	Net   DeliverySettlement = "S" // settle the net difference
)

// CreditEventType enumerates the observable credit events CEG/CEC react to.
type CreditEventType string

const (
	CreditDelayed    CreditEventType = "DL"
	CreditDelinquent CreditEventType = "DQ"
	CreditDefault    CreditEventType = "DF"
)

// GuaranteeExtent selects the exposure measure a CEG settlement covers.
type GuaranteeExtent string

const (
	ExtentNotional              GuaranteeExtent = "NO"
	ExtentNotionalAccrued       GuaranteeExtent = "NI"
	ExtentNotionalAccruedMarket GuaranteeExtent = "NIM"
)

// Cyc is a {anchor, cycle string} pair describing one event family's
// recurrence, parsed lazily by the schedule generator via Cyc.Parsed().
type Cyc struct {
	Anchor time.Time
	Cycle  string // e.g. "6M", "1Y-"; empty means "no recurrence"
}

// Parsed parses Cycle, returning cycle.Cycle{} (zero) and no error when the
// string is empty.
func (c Cyc) Parsed() (cycle.Cycle, error) {
	if c.Cycle == "" {
		return cycle.Cycle{}, nil
	}
	return cycle.Parse(c.Cycle)
}

// PRPoint is one entry of LAX's explicit principal-redemption schedule.
type PRPoint struct {
	Date   time.Time
	Amount float64
}

// Attributes is the immutable ContractAttributes record. Only mandatory
// fields (ContractID, ContractType, ContractRole, StatusDate, Currency) are
// required by all variants; the rest are optional and a given variant
// reads only the subset relevant to it.
type Attributes struct {
	// Identification
	ContractID   string
	ContractType Type
	ContractRole Role
	StatusDate   time.Time
	Currency     string
	Currency2    string // second leg currency for FXOUT/SWPPV/SWAPS

	// Calendar anchors
	InitialExchangeDate time.Time
	MaturityDate        time.Time
	PurchaseDate        time.Time
	TerminationDate     time.Time
	AmortizationDate    time.Time
	HorizonDate         time.Time // fallback terminal date for open-ended variants

	// Schedule descriptors, one per event family
	CycleInterest         Cyc
	CycleRateReset         Cyc
	CyclePrincipalRedemption Cyc
	CycleFee               Cyc
	CycleScalingIndex      Cyc
	CycleInterestCalcBase  Cyc
	CycleDividend          Cyc

	// Numerics
	NotionalPrincipal              float64
	NominalInterestRate             float64
	NotionalPrincipal2               float64 // secondary notional (FXOUT, SWPPV/SWAPS second leg)
	NominalInterestRate2              float64
	NextPrincipalRedemptionPayment   float64
	RateSpread                       float64 // RRSP
	RateMultiplier                   float64 // RRMLT
	LifeCap                          float64 // RRLC
	LifeFloor                        float64 // RRLF
	RateResetNextFixing              float64 // RRNXT, for RRF
	FeeRate                          float64 // FER
	FeeAccrued                       float64 // Feac override at IED
	AccruedInterestAtIED             float64 // Ipac override at IED
	InterestCalcBaseAtIED            float64
	ScalingIndexBaseline             float64
	PrepaymentPenaltyRate            float64 // PYRT
	PurchasePrice                    float64 // PPRD
	TerminationPrice                 float64 // PTD
	XDayNotice                       int     // CLM settlement notice period, in days
	PriceAtPurchase                  float64
	TransferDate                     time.Time // CSH scheduled transfer
	TransferAmount                   float64

	// Conventions
	DayCountConvention      daycount.Convention
	BusinessDayConvention   calendar.Convention
	EndOfMonthConvention    bool
	Calendar                calendar.CalendarID

	// Market-object identifiers observed by POFs/STFs
	RateResetMarketObjectCode    string // RRMO
	ScalingIndexMarketObjectCode string // SCMO
	MarketObjectCodeUnderlying   string // OPTNS/FUTUR/CAPFL underlier price/rate

	// Behavior selectors
	FeeBasis      FeeBasis
	PenaltyType   PenaltyType
	ScalingEffect ScalingEffect

	// Derivative-specific
	OptionType            OptionType
	OptionExerciseType     OptionExerciseType
	OptionStrike1          float64
	OptionStrike2          float64
	OptionExerciseEndDate  time.Time
	FuturesPrice           float64
	DeliverySettlement     DeliverySettlement
	Coverage               float64 // CEG/CEC coverage ratio
	CreditEventTypeCovered []CreditEventType
	CreditEnhancementGuaranteeExtent GuaranteeExtent
	SettlementPeriodDays   int

	// LAX's explicit redemption schedule
	PrincipalRedemptionSchedule []PRPoint

	// ContractStructure links children of a composite (SWAPS/CAPFL/CEG/CEC)
	// by role name (e.g. "FirstLeg"/"SecondLeg", "Covered"/"Covering") to
	// the referenced child contract's id.
	ContractStructure map[string]string

	// RawTerms preserves any ACTUS JSON term this struct does not model,
	// so a terms -> Attributes -> terms round trip never silently drops
	// fields the engine does not interpret.
	RawTerms map[string]string
}

// Sign returns R(role) for this contract.
func (a Attributes) Sign() float64 { return a.ContractRole.Sign() }

// Validate performs the factory-stage InvalidAttributes checks common to
// all variants: mandatory fields present and contract_role a known code
// (contract_type is only checked for presence here). Variant-specific
// validation (e.g. LAX requiring a non-empty PrincipalRedemptionSchedule)
// happens in the variant's Initializer.
func (a Attributes) Validate() error {
	if a.ContractID == "" {
		return NewAttributesError(a.ContractID, "contract_id is required")
	}
	if a.ContractType == "" {
		return NewAttributesError(a.ContractID, "contract_type is required")
	}
	if a.StatusDate.IsZero() {
		return NewAttributesError(a.ContractID, "status_date is required")
	}
	if a.Currency == "" {
		return NewAttributesError(a.ContractID, "currency is required")
	}
	switch a.ContractRole {
	case RoleRPA, RoleRFL, RoleBUY, RoleGUA, RoleCOL, RoleRPL, RoleRF, RoleSEL, RoleOBL:
	default:
		return NewAttributesError(a.ContractID, "unknown contract_role: "+string(a.ContractRole))
	}
	return nil
}

// EffectiveMaturity returns MaturityDate if set, else HorizonDate — the
// §4.4 fallback terminal date for open-ended contracts (UMP, STK, CLM).
func (a Attributes) EffectiveMaturity() time.Time {
	if !a.MaturityDate.IsZero() {
		return a.MaturityDate
	}
	return a.HorizonDate
}
