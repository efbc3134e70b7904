// Package gaussian implements one-dimensional Gaussian distributions in
// canonical (natural) form.
//
// A Gaussian is stored as the pair (Pi, Tau) where Pi is the precision
// (1/sigma²) and Tau is the precision-adjusted mean (Pi·mu). In this
// form the product and quotient of two densities are O(1) component-wise
// additions, which is what makes Gaussian message passing cheap:
//
//	multiply: (pi₁+pi₂, tau₁+tau₂)
//	divide:   (pi₁-pi₂, tau₁-tau₂)
//
// The zero value (Pi=0, Tau=0) is the improper, uninformative
// distribution: Mu reports 0 and Sigma reports +Inf. It is a valid
// message ("no information yet") and the identity element of Mul.
package gaussian

import (
	"errors"
	"fmt"
	"math"
)

// ErrNonPositiveSigma is returned by New when sigma is zero or negative.
// A Gaussian belief must have strictly positive variance.
var ErrNonPositiveSigma = errors.New("gaussian: sigma must be greater than 0")

// Gaussian is a 1-D normal distribution in canonical parameters.
// The zero value is the improper (uninformative) distribution.
type Gaussian struct {
	// Pi is the precision, 1/sigma².
	Pi float64
	// Tau is the precision-adjusted mean, Pi*mu.
	Tau float64
}

// New builds a Gaussian from mean and standard deviation.
// Returns ErrNonPositiveSigma when sigma <= 0.
func New(mu, sigma float64) (Gaussian, error) {
	if sigma <= 0 {
		return Gaussian{}, ErrNonPositiveSigma
	}
	pi := 1 / (sigma * sigma)

	return Gaussian{Pi: pi, Tau: pi * mu}, nil
}

// FromPrecision builds a Gaussian directly from canonical parameters.
// No validation is performed; pi=0 denotes the improper distribution.
func FromPrecision(pi, tau float64) Gaussian {
	return Gaussian{Pi: pi, Tau: tau}
}

// Mu returns the mean, defined as 0 for the improper distribution.
func (g Gaussian) Mu() float64 {
	if g.Pi == 0 {
		return 0
	}

	return g.Tau / g.Pi
}

// Sigma returns the standard deviation, +Inf for the improper
// distribution.
func (g Gaussian) Sigma() float64 {
	if g.Pi == 0 {
		return math.Inf(1)
	}

	return math.Sqrt(1 / g.Pi)
}

// Mul returns the normalized product of two Gaussian densities
// (belief combination / message fusion).
func (g Gaussian) Mul(o Gaussian) Gaussian {
	return Gaussian{Pi: g.Pi + o.Pi, Tau: g.Tau + o.Tau}
}

// Div returns the quotient of two Gaussian densities, used to remove a
// previously incorporated message from a belief.
func (g Gaussian) Div(o Gaussian) Gaussian {
	return Gaussian{Pi: g.Pi - o.Pi, Tau: g.Tau - o.Tau}
}

// Less orders Gaussians by mean only. Callers must not assume any
// ordering on sigma; equality remains field equality on (Pi, Tau).
func (g Gaussian) Less(o Gaussian) bool {
	return g.Mu() < o.Mu()
}

// String renders the distribution in moment form for diagnostics.
func (g Gaussian) String() string {
	return fmt.Sprintf("N(mu=%.3f, sigma=%.3f)", g.Mu(), g.Sigma())
}
