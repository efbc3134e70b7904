package factorgraph_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/trueskill/factorgraph"
	"github.com/katalvlaran/trueskill/gaussian"
	"github.com/katalvlaran/trueskill/normal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPriorDown verifies the dynamic factor inflates the prior variance.
func TestPriorDown(t *testing.T) {
	g := factorgraph.New()
	v := g.Variable()
	f := g.Prior(v, 25, 25.0/3, 25.0/300)

	delta := f.Down()
	assert.Greater(t, delta, 0.0, "first down moves the improper belief")

	want := math.Sqrt(math.Pow(25.0/3, 2) + math.Pow(25.0/300, 2))
	assert.InDelta(t, 25.0, v.Value().Mu(), 1e-9, "prior mean is injected unchanged")
	assert.InDelta(t, want, v.Value().Sigma(), 1e-9, "prior sigma is inflated by the dynamic factor")
}

// TestPriorDown_NoDrift verifies dynamic=0 leaves the prior untouched.
func TestPriorDown_NoDrift(t *testing.T) {
	g := factorgraph.New()
	v := g.Variable()
	g.Prior(v, 10, 2, 0).Down()

	assert.InDelta(t, 2.0, v.Value().Sigma(), 1e-12, "zero dynamic factor disables drift")
}

// TestLikelihoodDown verifies the noise channel widens the projected
// belief: value variance = mean variance + channel variance.
func TestLikelihoodDown(t *testing.T) {
	g := factorgraph.New()
	mean := g.Variable()
	value := g.Variable()
	beta := 25.0 / 6

	g.Prior(mean, 25, 25.0/3, 0).Down()
	g.Likelihood(mean, value, beta*beta).Down()

	wantVar := math.Pow(25.0/3, 2) + beta*beta
	assert.InDelta(t, 25.0, value.Value().Mu(), 1e-9, "mean passes through the channel")
	assert.InDelta(t, math.Sqrt(wantVar), value.Value().Sigma(), 1e-9, "variances add through the channel")
}

// TestLikelihoodUp verifies the reverse projection narrows the skill
// belief when the performance is informative.
func TestLikelihoodUp(t *testing.T) {
	g := factorgraph.New()
	mean := g.Variable()
	value := g.Variable()

	g.Prior(mean, 25, 8, 0).Down()
	like := g.Likelihood(mean, value, 16)
	like.Down()

	// independent evidence on the performance variable
	obs, err := gaussian.New(30, 2)
	require.NoError(t, err)
	value.UpdateMessage(99, obs)

	like.Up()
	assert.Greater(t, mean.Value().Mu(), 25.0, "strong performance pulls skill up")
	assert.Less(t, mean.Value().Sigma(), 8.0, "evidence tightens the skill belief")
}

// TestSumDown verifies the weighted-combination rule on two terms.
func TestSumDown(t *testing.T) {
	g := factorgraph.New()
	a, b, sum := g.Variable(), g.Variable(), g.Variable()

	g.Prior(a, 20, 1, 0).Down()
	g.Prior(b, 30, 2, 0).Down()
	g.Sum(sum, []*factorgraph.Variable{a, b}, []float64{1, 1}).Down()

	assert.InDelta(t, 50.0, sum.Value().Mu(), 1e-9, "means add")
	assert.InDelta(t, math.Sqrt(1+4), sum.Value().Sigma(), 1e-9, "variances add")
}

// TestSumDown_Weighted verifies coefficients scale mean and variance.
func TestSumDown_Weighted(t *testing.T) {
	g := factorgraph.New()
	a, b, sum := g.Variable(), g.Variable(), g.Variable()

	g.Prior(a, 10, 1, 0).Down()
	g.Prior(b, 20, 1, 0).Down()
	g.Sum(sum, []*factorgraph.Variable{a, b}, []float64{1, -1}).Down()

	assert.InDelta(t, -10.0, sum.Value().Mu(), 1e-9, "difference of means")
	assert.InDelta(t, math.Sqrt(2), sum.Value().Sigma(), 1e-9, "coeff² scales the variances")
}

// TestSumDown_ImproperTerm verifies a zero-precision term collapses the
// aggregate to the improper distribution instead of dividing by zero.
func TestSumDown_ImproperTerm(t *testing.T) {
	g := factorgraph.New()
	a, b, sum := g.Variable(), g.Variable(), g.Variable()

	g.Prior(a, 20, 1, 0).Down()
	// b never receives a prior: its belief stays improper
	g.Sum(sum, []*factorgraph.Variable{a, b}, []float64{1, 1}).Down()

	assert.Zero(t, sum.Value().Pi, "improper term collapses the sum precision")
	assert.Zero(t, sum.Value().Tau, "tau stays finite (0) in the collapse")
}

// TestSumUp solves the combination for a term given the sum.
func TestSumUp(t *testing.T) {
	g := factorgraph.New()
	a, b, sum := g.Variable(), g.Variable(), g.Variable()

	g.Prior(a, 20, 1, 0).Down()
	g.Prior(b, 30, 2, 0).Down()
	f := g.Sum(sum, []*factorgraph.Variable{a, b}, []float64{1, 1})
	f.Down()

	// clamp the sum with tight independent evidence, then solve for b
	obs, err := gaussian.New(55, 0.1)
	require.NoError(t, err)
	sum.UpdateMessage(99, obs)

	f.Up(1)
	assert.Greater(t, b.Value().Mu(), 30.0, "solved term absorbs the surplus")
}

// TestTruncateWin moves the diff belief above the margin.
func TestTruncateWin(t *testing.T) {
	g := factorgraph.New()
	v := g.Variable()
	g.Prior(v, 0, 2, 0).Down()

	f := g.Truncate(v, factorgraph.Win, 0.74, normal.Erfc{})
	delta, err := f.Up()
	require.NoError(t, err, "moderate inputs must not lose precision")

	assert.Greater(t, delta, 0.0, "truncation moves the belief")
	assert.Greater(t, v.Value().Mu(), 0.0, "a win pushes the diff mean positive")
	assert.Less(t, v.Value().Sigma(), 2.0, "conditioning reduces uncertainty")
}

// TestTruncateDraw pulls the diff mean toward zero.
func TestTruncateDraw(t *testing.T) {
	g := factorgraph.New()
	v := g.Variable()
	g.Prior(v, 2, 1, 0).Down()

	f := g.Truncate(v, factorgraph.Draw, 0.74, normal.Erfc{})
	_, err := f.Up()
	require.NoError(t, err)

	assert.Less(t, v.Value().Mu(), 2.0, "a draw pulls the diff toward the margin window")
}

// TestTruncateWin_Precision verifies the ErrPrecision contract on an
// input far beyond the default backend's tail resolution.
func TestTruncateWin_Precision(t *testing.T) {
	g := factorgraph.New()
	v := g.Variable()
	g.Prior(v, -120, 1, 0).Down()

	f := g.Truncate(v, factorgraph.Win, 0.1, normal.Erfc{})
	_, err := f.Up()
	assert.ErrorIs(t, err, factorgraph.ErrPrecision, "underflowed tail must be reported, not silently NaN")
}

// TestDelta covers the convergence metric including the infinite guard.
func TestDelta(t *testing.T) {
	a, err := gaussian.New(25, 8)
	require.NoError(t, err)

	assert.Zero(t, factorgraph.Delta(a, a), "identical beliefs have zero distance")

	b, err := gaussian.New(25, 4)
	require.NoError(t, err)
	assert.InDelta(t, math.Max(math.Abs(a.Tau-b.Tau), math.Sqrt(math.Abs(a.Pi-b.Pi))),
		factorgraph.Delta(a, b), 1e-12, "metric is max(|dTau|, sqrt(|dPi|))")

	inf := gaussian.FromPrecision(math.Inf(1), 0)
	assert.Zero(t, factorgraph.Delta(a, inf), "infinite precision gap is defined as 0")
}
