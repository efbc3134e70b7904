package trueskill_test

import (
	"testing"

	"github.com/katalvlaran/trueskill"
	"github.com/katalvlaran/trueskill/normal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultEnv(t *testing.T) {
	e := trueskill.DefaultEnv()

	assert.Equal(t, 25.0, e.Mu)
	assert.InDelta(t, 25.0/3, e.Sigma, 1e-12)
	assert.InDelta(t, 25.0/6, e.Beta, 1e-12)
	assert.InDelta(t, 25.0/300, e.Tau, 1e-12)
	assert.Equal(t, 0.10, e.DrawProbability)
	assert.Equal(t, trueskill.Rating{Mu: 25, Sigma: 25.0 / 3}, e.NewRating())
}

func TestNewRating(t *testing.T) {
	got, err := trueskill.NewRating(30, 2)
	require.NoError(t, err)
	assert.Equal(t, trueskill.Rating{Mu: 30, Sigma: 2}, got)

	_, err = trueskill.NewRating(30, 0)
	assert.ErrorIs(t, err, trueskill.ErrInvalidParameter, "sigma must be positive")

	_, err = trueskill.NewRating(30, -1)
	assert.ErrorIs(t, err, trueskill.ErrInvalidParameter)
}

func TestRatingString(t *testing.T) {
	assert.Equal(t, "trueskill.Rating(mu=25.000, sigma=8.333)", r(25, 25.0/3).String())
}

// TestExpose verifies a fresh rating exposes exactly 0 under its own
// environment, whatever the parameterization.
func TestExpose(t *testing.T) {
	e := trueskill.DefaultEnv()
	assert.Zero(t, e.Expose(e.NewRating()))

	e.Mu, e.Sigma = 1000, 200
	assert.Zero(t, e.Expose(e.NewRating()))

	// exposure is conservative: high uncertainty drags it down
	vague := e.Expose(trueskill.Rating{Mu: 1000, Sigma: 400})
	assert.Less(t, vague, 0.0)
}

func TestSetupGlobal(t *testing.T) {
	orig := trueskill.Global()
	defer trueskill.Setup(orig)

	custom := trueskill.DefaultEnv()
	custom.DrawProbability = 0.25
	returned := trueskill.Setup(custom)

	assert.Equal(t, custom, returned, "Setup echoes the installed env")
	assert.Equal(t, 0.25, trueskill.Global().DrawProbability)
	assert.Equal(t, trueskill.Rating{Mu: 25, Sigma: 25.0 / 3}, trueskill.NewDefaultRating())

	// mutating the local copy must not leak into the snapshot
	custom.DrawProbability = 0.99
	assert.Equal(t, 0.25, trueskill.Global().DrawProbability)
}

// TestDrawMargin checks the margin against the reference value for the
// default 10% draw chance and that the probability mapping inverts it.
func TestDrawMargin(t *testing.T) {
	b := normal.Erfc{}
	beta := trueskill.DefaultBeta

	margin := trueskill.DrawMargin(0.10, beta, 2, b)
	assert.InDelta(t, 0.740, margin, 0.001, "default 1v1 draw margin")

	for _, p := range []float64{0.05, 0.10, 0.25, 0.5} {
		m := trueskill.DrawMargin(p, beta, 4, b)
		back := trueskill.DrawProbabilityFor(m, beta, 4, b)
		assert.InDelta(t, p, back, 1e-6, "round trip at p=%g", p)
	}
}

// TestDynamicDraw verifies the per-pair override: a constant dynamic
// function must reproduce the equivalent static environment, and the
// callback receives team-performance estimates.
func TestDynamicDraw(t *testing.T) {
	static := trueskill.DefaultEnv()
	static.DrawProbability = 0.25

	dynamic := trueskill.DefaultEnv()
	dynamic.DrawProbability = 0.10 // superseded by the callback
	var seenA, seenB trueskill.Rating
	dynamic.DynamicDraw = func(a, b trueskill.Rating, _ trueskill.Env) float64 {
		seenA, seenB = a, b

		return 0.25
	}

	wantA, wantB, err := static.Rate1Vs1(r(28, 6), r(23, 5), false)
	require.NoError(t, err)
	gotA, gotB, err := dynamic.Rate1Vs1(r(28, 6), r(23, 5), false)
	require.NoError(t, err)

	assert.Equal(t, wantA, gotA, "constant dynamic draw equals the static env")
	assert.Equal(t, wantB, gotB)
	assert.InDelta(t, 28, seenA.Mu, 1e-9, "callback sees the first team's performance mean")
	assert.InDelta(t, 23, seenB.Mu, 1e-9)
	assert.Greater(t, seenA.Sigma, 6.0, "performance estimate carries drift and noise on top of skill")
}

func TestDynamicDraw_OutOfRange(t *testing.T) {
	e := trueskill.DefaultEnv()
	e.DynamicDraw = func(_, _ trueskill.Rating, _ trueskill.Env) float64 { return 1.5 }

	_, _, err := e.Rate1Vs1(e.NewRating(), e.NewRating(), false)
	assert.ErrorIs(t, err, trueskill.ErrInvalidParameter)
}
