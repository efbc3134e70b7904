// Package normal provides the standard-normal statistics backend used by
// the rating engine.
//
// The engine needs exactly three pure functions of the standard normal
// distribution: the CDF, the PDF and the quantile function (inverse CDF).
// They are bundled behind the Backend interface so that callers can
// substitute a higher-precision implementation when the default one
// underflows on extreme inputs (ratings separated by thousands of
// standard deviations); see the ErrPrecision contract in the factorgraph
// package.
//
// Erfc is the default backend: a complementary-error-function polynomial
// approximation with a Newton-polished inverse. Its absolute error is
// below 1.2e-7 over the real line, which is sufficient for the message
// passing schedule to converge on realistic ratings.
package normal

import "math"

// Backend bundles the three standard-normal functions the rating engine
// depends on. Implementations must be pure and safe for concurrent use.
type Backend interface {
	// CDF is the cumulative distribution function of N(0,1).
	CDF(x float64) float64
	// PDF is the probability density function of N(0,1).
	PDF(x float64) float64
	// Quantile is the inverse CDF of N(0,1), defined on (0,1).
	Quantile(p float64) float64
}

// invSqrt2Pi is 1/sqrt(2*pi), the N(0,1) density normalization constant.
var invSqrt2Pi = 1 / math.Sqrt(2*math.Pi)

// Erfc is the default Backend, built on a polynomial approximation of
// the complementary error function.
type Erfc struct{}

var _ Backend = Erfc{}

// CDF returns P(X <= x) for X ~ N(0,1).
func (Erfc) CDF(x float64) float64 {
	return 0.5 * erfc(-x/math.Sqrt2)
}

// PDF returns the N(0,1) density at x.
func (Erfc) PDF(x float64) float64 {
	return invSqrt2Pi * math.Exp(-x*x/2)
}

// Quantile returns the x with CDF(x) = p. Out-of-domain p saturates to
// the approximation's clamp values rather than returning NaN.
func (Erfc) Quantile(p float64) float64 {
	return -math.Sqrt2 * erfcinv(2*p)
}

// erfc approximates the complementary error function with a rational
// Chebyshev fit (Numerical Recipes form). Max absolute error ~1.2e-7.
func erfc(x float64) float64 {
	z := math.Abs(x)
	t := 1 / (1 + z/2)
	r := t * math.Exp(-z*z-1.26551223+t*(1.00002368+t*(0.37409196+
		t*(0.09678418+t*(-0.18628806+t*(0.27886807+t*(-1.13520398+
		t*(1.48851587+t*(-0.82215223+t*0.17087277)))))))))
	if x < 0 {
		return 2 - r
	}

	return r
}

// erfcinv inverts erfc with a rational initial guess followed by two
// Newton steps. Arguments outside (0,2) clamp to ±100, far past any
// representable probability.
func erfcinv(y float64) float64 {
	if y >= 2 {
		return -100
	}
	if y <= 0 {
		return 100
	}
	lower := y < 1
	if !lower {
		y = 2 - y
	}
	t := math.Sqrt(-2 * math.Log(y/2))
	x := -0.70711 * ((2.30753+t*0.27061)/(1+t*(0.99229+t*0.04481)) - t)
	// two Newton polish steps against erfc itself
	for i := 0; i < 2; i++ {
		err := erfc(x) - y
		x += err / (1.12837916709551257*math.Exp(-x*x) - x*err)
	}
	if lower {
		return x
	}

	return -x
}
