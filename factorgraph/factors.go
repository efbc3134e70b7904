package factorgraph

import (
	"math"

	"github.com/katalvlaran/trueskill/gaussian"
)

// Prior injects a known Gaussian belief into its variable.
type Prior struct {
	id      int
	v       *Variable
	mu      float64
	sigma   float64
	dynamic float64
}

// Down sets the variable to N(mu, sqrt(sigma²+dynamic²)). The dynamic
// term widens the prior so skill may drift between matches; 0 disables
// drift entirely.
func (f *Prior) Down() float64 {
	variance := f.sigma*f.sigma + f.dynamic*f.dynamic
	pi := 1 / variance

	return f.v.UpdateValue(f.id, gaussian.FromPrecision(pi, pi*f.mu))
}

// Likelihood models value ~ N(mean, variance): the noise channel
// between a skill variable and its per-match performance realization.
type Likelihood struct {
	id       int
	mean     *Variable
	value    *Variable
	variance float64
}

// Down projects the mean's belief (minus this factor's own prior
// contribution) through the noise channel into the value variable.
func (f *Likelihood) Down() float64 {
	msg := f.mean.val.Div(f.mean.message(f.id))
	pi := 1 / f.variance
	a := pi / (pi + f.mean.val.Pi)

	return f.value.UpdateMessage(f.id, gaussian.FromPrecision(a*msg.Pi, a*msg.Tau))
}

// Up is the symmetric projection from value back into mean.
func (f *Likelihood) Up() float64 {
	msg := f.value.val.Div(f.value.message(f.id))
	a := 1 / (1 + f.variance*msg.Pi)

	return f.mean.UpdateMessage(f.id, gaussian.FromPrecision(a*msg.Pi, a*msg.Tau))
}

// Sum models sum = Σ coeff_i · term_i, the team-performance aggregation
// and team-difference factor.
type Sum struct {
	id     int
	sum    *Variable
	terms  []*Variable
	coeffs []float64
}

// Down recomputes the sum variable's message from every term.
func (f *Sum) Down() float64 {
	return f.combine(f.sum, f.terms, f.coeffs)
}

// Up re-solves the combination for term index, substituting the sum
// variable into that slot with coefficient 1/coeff and rescaling the
// remaining coefficients by -c_j/coeff. A zero coefficient contributes
// zero, guarding the division.
func (f *Sum) Up(index int) float64 {
	coeff := f.coeffs[index]
	coeffs := make([]float64, len(f.coeffs))
	for i, c := range f.coeffs {
		switch {
		case coeff == 0:
			coeffs[i] = 0
		case i == index:
			coeffs[i] = 1 / coeff
		default:
			coeffs[i] = -c / coeff
		}
	}
	vals := make([]*Variable, len(f.terms))
	copy(vals, f.terms)
	vals[index] = f.sum

	return f.combine(f.terms[index], vals, coeffs)
}

// combine applies the general weighted-combination rule and sends the
// result to target. The aggregate precision collapses to 0 (improper)
// as soon as any term quotient has zero precision or a coefficient is
// non-finite.
func (f *Sum) combine(target *Variable, vals []*Variable, coeffs []float64) float64 {
	piInv := 0.0
	mu := 0.0
	for i, v := range vals {
		div := v.val.Div(v.message(f.id))
		mu += coeffs[i] * div.Mu()
		if math.IsInf(piInv, 1) {
			continue
		}
		if div.Pi == 0 || math.IsInf(coeffs[i], 0) {
			piInv = math.Inf(1)
			continue
		}
		piInv += coeffs[i] * coeffs[i] / div.Pi
	}
	pi := 1 / piInv // 0 when piInv overflowed to +Inf

	return target.UpdateMessage(f.id, gaussian.FromPrecision(pi, pi*mu))
}
