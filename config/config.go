// Package config holds named numeric solver tolerances for an iterative
// ANN annuity-payment solver. No package in this module reads them:
// variants/ann.go computes the annuity payment in closed form. Mirrors the
// teacher's swap/config.Config shape: named tolerances instead of magic
// numbers.
package config

// Config holds iterative-solver parameters for the ANN annuity-payment
// recompute. They are stored and returned by SetConfig/GetConfig only;
// variants/ann.go's levelPayment does not consult them.
type Config struct {
	// AnnuitySolverTolerance is the residual tolerance for the Newton
	// iteration that solves for the level annuity payment.
	AnnuitySolverTolerance float64

	// MaxAnnuitySolverIterations caps the Newton iteration.
	MaxAnnuitySolverIterations int

	// AnnuitySolverDamping limits the Newton step size to prevent
	// overshooting near-zero derivatives.
	AnnuitySolverDamping float64
}

// DefaultConfig provides production-ready default values.
var DefaultConfig = Config{
	AnnuitySolverTolerance:     1e-10,
	MaxAnnuitySolverIterations: 50,
	AnnuitySolverDamping:       0.5,
}

var cfg = DefaultConfig

// SetConfig replaces the active configuration.
func SetConfig(c Config) { cfg = c }

// GetConfig returns the active configuration.
func GetConfig() Config { return cfg }
