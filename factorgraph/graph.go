package factorgraph

import (
	"errors"

	"github.com/katalvlaran/trueskill/gaussian"
	"github.com/katalvlaran/trueskill/normal"
)

// ErrPrecision is returned when a Truncate update produces a correction
// factor outside (0,1) or a draw-case denominator underflows to zero.
// It means the statistics backend lacks precision for the given inputs
// (e.g. ratings separated by thousands of sigma); the remedy is a
// higher-precision normal.Backend, not a retry.
var ErrPrecision = errors.New("factorgraph: insufficient backend precision")

// Outcome tags a Truncate factor with the observed result for its
// adjacent team pair.
type Outcome int

const (
	// Win means the earlier-ranked team beat the later one.
	Win Outcome = iota
	// Draw means the two adjacent teams tied.
	Draw
)

// Graph is the per-call arena. It hands out Variables and factors with
// dense factor IDs, seeding the zero (uninformative) message on every
// edge at construction. A Graph must not be shared across rating calls.
type Graph struct {
	factors int
}

// New returns an empty arena.
func New() *Graph {
	return &Graph{}
}

// Variable allocates a fresh belief node with no connections.
func (g *Graph) Variable() *Variable {
	return &Variable{messages: make(map[int]gaussian.Gaussian)}
}

// attach reserves the next factor ID and seeds the zero message on each
// connected variable.
func (g *Graph) attach(vars ...*Variable) int {
	id := g.factors
	g.factors++
	for _, v := range vars {
		v.messages[id] = gaussian.Gaussian{}
	}

	return id
}

// Prior connects a prior factor injecting N(mu, sigma) inflated by the
// dynamic factor.
func (g *Graph) Prior(v *Variable, mu, sigma, dynamic float64) *Prior {
	return &Prior{id: g.attach(v), v: v, mu: mu, sigma: sigma, dynamic: dynamic}
}

// Likelihood connects mean and value through additive noise of the
// given variance.
func (g *Graph) Likelihood(mean, value *Variable, variance float64) *Likelihood {
	return &Likelihood{id: g.attach(mean, value), mean: mean, value: value, variance: variance}
}

// Sum connects sum to the weighted combination of terms. The coeffs
// slice must parallel terms; both are captured, not copied.
func (g *Graph) Sum(sum *Variable, terms []*Variable, coeffs []float64) *Sum {
	all := make([]*Variable, 0, len(terms)+1)
	all = append(all, sum)
	all = append(all, terms...)

	return &Sum{id: g.attach(all...), sum: sum, terms: terms, coeffs: coeffs}
}

// Truncate connects the outcome-correction factor for one team-diff
// variable.
func (g *Graph) Truncate(v *Variable, outcome Outcome, drawMargin float64, backend normal.Backend) *Truncate {
	return &Truncate{id: g.attach(v), v: v, outcome: outcome, margin: drawMargin, norm: backend}
}
