package observer

import (
	"sort"
	"time"

	"gonum.org/v1/gonum/interp"

	"github.com/meenmo/actuskit/cycle"
)

// Curve is keyed by tenor (e.g. "3M", "1Y", "10Y") with linear
// interpolation between the two bracketing tenors and flat extrapolation
// outside the quoted range. The x-axis is expressed in year fractions from
// the curve's AsOf date; interpolation itself is delegated to
// gonum.org/v1/gonum/interp's piecewise-linear predictor rather than a
// hand-rolled bracket search.
type Curve struct {
	AsOf   time.Time
	Quotes map[string]float64

	xs   []float64
	ys   []float64
	pred interp.FittablePredictor
	tMin float64
	tMax float64
}

// NewCurve builds a Curve from tenor-keyed quotes, fitting the piecewise
// linear predictor once up front.
func NewCurve(asOf time.Time, quotes map[string]float64) *Curve {
	c := &Curve{AsOf: asOf, Quotes: quotes}
	type point struct {
		t float64
		v float64
	}
	pts := make([]point, 0, len(quotes))
	for tenor, v := range quotes {
		y := tenorYears(tenor)
		pts = append(pts, point{t: y, v: v})
	}
	sort.Slice(pts, func(i, j int) bool { return pts[i].t < pts[j].t })

	c.xs = make([]float64, len(pts))
	c.ys = make([]float64, len(pts))
	for i, p := range pts {
		c.xs[i] = p.t
		c.ys[i] = p.v
	}
	if len(c.xs) > 0 {
		c.tMin, c.tMax = c.xs[0], c.xs[len(c.xs)-1]
	}
	if len(c.xs) >= 2 {
		pl := &interp.PiecewiseLinear{}
		if err := pl.Fit(c.xs, c.ys); err == nil {
			c.pred = pl
		}
	}
	return c
}

// tenorYears converts a tenor string ("1W","3M","10Y","ON") to a year
// fraction, reusing the cycle grammar's unit vocabulary.
func tenorYears(tenor string) float64 {
	if tenor == "ON" || tenor == "O/N" {
		return 1.0 / 365.0
	}
	c, err := cycle.Parse(tenor)
	if err != nil {
		return 0
	}
	switch c.Unit {
	case cycle.Day:
		return float64(c.N) / 365.0
	case cycle.Week:
		return float64(c.N) * 7.0 / 365.0
	case cycle.Month:
		return float64(c.N) / 12.0
	case cycle.Quarter:
		return float64(c.N) * 3.0 / 12.0
	case cycle.Half:
		return float64(c.N) * 6.0 / 12.0
	case cycle.Year:
		return float64(c.N)
	default:
		return 0
	}
}

func (c *Curve) Get(_ string, t time.Time) float64 {
	v, _ := c.Lookup("", t)
	return v
}

func (c *Curve) Lookup(_ string, t time.Time) (float64, bool) {
	if len(c.xs) == 0 {
		return 0, false
	}
	if len(c.xs) == 1 {
		return c.ys[0], true
	}
	x := t.Sub(c.AsOf).Hours() / 24 / 365
	switch {
	case x <= c.tMin:
		return c.ys[0], true
	case x >= c.tMax:
		return c.ys[len(c.ys)-1], true
	case c.pred != nil:
		return c.pred.Predict(x), true
	default:
		return c.ys[len(c.ys)-1], true
	}
}
