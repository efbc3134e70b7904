package factorgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/trueskill/gaussian"
	"github.com/katalvlaran/trueskill/normal"
)

// Truncate applies the non-Gaussian outcome correction to a team-diff
// variable: the belief is conditioned on the observed win or draw and
// replaced by the moment-matched Gaussian. The outcome tag selects the
// win or draw pair of correction functions.
type Truncate struct {
	id      int
	v       *Variable
	outcome Outcome
	margin  float64
	norm    normal.Backend
}

// Up performs the truncation update and returns the belief movement.
// Returns ErrPrecision when the correction is numerically unreliable;
// the variable is left with its pre-call belief in that case.
func (f *Truncate) Up() (float64, error) {
	div := f.v.val.Div(f.v.message(f.id))
	sqrtPi := math.Sqrt(div.Pi)
	diff := div.Tau / sqrtPi
	margin := f.margin * sqrtPi

	var v, w float64
	var err error
	switch f.outcome {
	case Draw:
		v = vDraw(diff, margin, f.norm)
		w, err = wDraw(diff, margin, f.norm)
	default:
		v = vWin(diff, margin, f.norm)
		w, err = wWin(diff, margin, f.norm)
	}
	if err != nil {
		return 0, err
	}

	denom := 1 - w
	pi := div.Pi / denom
	tau := (div.Tau + sqrtPi*v) / denom

	return f.v.UpdateValue(f.id, gaussian.FromPrecision(pi, tau)), nil
}

// vWin is the win-case additive correction: pdf(x)/cdf(x) at
// x = diff - margin, falling back to -x when the CDF underflows.
func vWin(diff, margin float64, n normal.Backend) float64 {
	x := diff - margin
	denom := n.CDF(x)
	if denom == 0 {
		return -x
	}

	return n.PDF(x) / denom
}

// wWin is the win-case multiplicative correction v·(v+x). A value
// outside (0,1) means the backend lost the tail entirely.
func wWin(diff, margin float64, n normal.Backend) (float64, error) {
	x := diff - margin
	v := vWin(diff, margin, n)
	w := v * (v + x)
	if w <= 0 || w >= 1 {
		return 0, fmt.Errorf("win correction w=%g for diff=%g margin=%g: %w", w, diff, margin, ErrPrecision)
	}

	return w, nil
}

// vDraw is the draw-case additive correction, odd in diff.
func vDraw(diff, margin float64, n normal.Backend) float64 {
	absDiff := math.Abs(diff)
	a, b := margin-absDiff, -margin-absDiff
	sign := 1.0
	if diff < 0 {
		sign = -1
	}
	denom := n.CDF(a) - n.CDF(b)
	if denom == 0 {
		return a * sign
	}

	return (n.PDF(b) - n.PDF(a)) / denom * sign
}

// wDraw is the draw-case multiplicative correction. An underflowed
// denominator has no usable fallback and fails with ErrPrecision.
func wDraw(diff, margin float64, n normal.Backend) (float64, error) {
	absDiff := math.Abs(diff)
	a, b := margin-absDiff, -margin-absDiff
	denom := n.CDF(a) - n.CDF(b)
	if denom == 0 {
		return 0, fmt.Errorf("draw correction denominator underflow for diff=%g margin=%g: %w", diff, margin, ErrPrecision)
	}
	v := vDraw(absDiff, margin, n)

	return v*v + (a*n.PDF(a)-b*n.PDF(b))/denom, nil
}
