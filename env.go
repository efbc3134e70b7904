package trueskill

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/katalvlaran/trueskill/normal"
)

// Default model constants, the conventional TrueSkill parameterization.
const (
	// DefaultMu is the prior skill mean.
	DefaultMu = 25.0
	// DefaultSigma is the prior skill deviation, Mu/3.
	DefaultSigma = DefaultMu / 3
	// DefaultBeta is the performance noise deviation, Sigma/2. One Beta
	// of skill difference gives the stronger player ~76% win chance.
	DefaultBeta = DefaultSigma / 2
	// DefaultTau is the per-match skill drift, Sigma/100.
	DefaultTau = DefaultSigma / 100
	// DefaultDrawProbability is the prior chance of a draw between two
	// adjacent teams.
	DefaultDrawProbability = 0.10

	// defaultMinDelta is the convergence threshold of the message-passing
	// schedule when RateOptions leaves MinDelta unset.
	defaultMinDelta = 0.0001

	// maxRounds bounds the sweep schedule; exhausting it is not an error,
	// the last belief is simply taken as converged.
	maxRounds = 10
)

// DynamicDrawFunc overrides the environment's static draw probability
// per adjacent team pair. It receives the two current team-performance
// estimates (as Ratings) and the environment, and must return a value
// in [0,1).
type DynamicDrawFunc func(a, b Rating, e Env) float64

// Env carries every model constant of one rating environment. The zero
// value is not usable; start from DefaultEnv and adjust fields. Env
// values are cheap to copy and safe for concurrent use as long as each
// goroutine works on its own copy or nobody mutates a shared one.
type Env struct {
	// Mu is the mean of new ratings.
	Mu float64
	// Sigma is the deviation of new ratings.
	Sigma float64
	// Beta is the deviation of the performance noise around skill.
	Beta float64
	// Tau is the additive skill drift applied before every match.
	Tau float64
	// DrawProbability is the prior chance that two adjacent teams tie.
	DrawProbability float64
	// DynamicDraw, when non-nil, supersedes DrawProbability for each
	// adjacent team pair. It is consulted once per pair, after the
	// team-performance beliefs have been formed.
	DynamicDraw DynamicDrawFunc
	// Backend supplies the standard-normal CDF/PDF/Quantile. Nil means
	// normal.Erfc{}.
	Backend normal.Backend
}

// DefaultEnv returns the conventional environment: Mu=25, Sigma=Mu/3,
// Beta=Sigma/2, Tau=Sigma/100, DrawProbability=0.10, Erfc backend.
func DefaultEnv() Env {
	return Env{
		Mu:              DefaultMu,
		Sigma:           DefaultSigma,
		Beta:            DefaultBeta,
		Tau:             DefaultTau,
		DrawProbability: DefaultDrawProbability,
		Backend:         normal.Erfc{},
	}
}

// NewRating returns the environment's prior rating N(Mu, Sigma²).
func (e Env) NewRating() Rating {
	return Rating{Mu: e.Mu, Sigma: e.Sigma}
}

// Expose maps a rating to a single conservative number such that a
// fresh rating exposes 0: Mu - (env.Mu/env.Sigma)·Sigma. Suitable for
// leaderboards; higher is better.
func (e Env) Expose(r Rating) float64 {
	return r.Mu - e.Mu/e.Sigma*r.Sigma
}

// backend returns the configured statistics backend or the default.
func (e Env) backend() normal.Backend {
	if e.Backend == nil {
		return normal.Erfc{}
	}

	return e.Backend
}

// check rejects environments whose constants are outside the model
// domain. It runs at the top of every rating operation.
func (e Env) check() error {
	if e.Sigma <= 0 {
		return fmt.Errorf("env sigma %g must be > 0: %w", e.Sigma, ErrInvalidParameter)
	}
	if e.Beta == 0 || math.IsNaN(e.Beta) {
		return fmt.Errorf("env beta %g must be non-zero: %w", e.Beta, ErrInvalidParameter)
	}
	if e.Tau < 0 || math.IsNaN(e.Tau) {
		return fmt.Errorf("env tau %g must be >= 0: %w", e.Tau, ErrInvalidParameter)
	}
	if e.DrawProbability < 0 || e.DrawProbability >= 1 || math.IsNaN(e.DrawProbability) {
		return fmt.Errorf("draw probability %g must be in [0,1): %w", e.DrawProbability, ErrInvalidParameter)
	}

	return nil
}

// drawProbabilityFor resolves the draw probability for one adjacent
// team pair, consulting DynamicDraw when configured.
func (e Env) drawProbabilityFor(a, b Rating) (float64, error) {
	if e.DynamicDraw == nil {
		return e.DrawProbability, nil
	}
	p := e.DynamicDraw(a, b, e)
	if p < 0 || p >= 1 || math.IsNaN(p) {
		return 0, fmt.Errorf("dynamic draw probability %g must be in [0,1): %w", p, ErrInvalidParameter)
	}

	return p, nil
}

// DrawMargin converts a draw probability into the performance margin
// within which an adjacent pair of the given combined player count is
// scored as a draw.
func DrawMargin(p, beta float64, size int, b normal.Backend) float64 {
	return b.Quantile((p+1)/2) * math.Sqrt(float64(size)) * beta
}

// DrawProbabilityFor is the inverse of DrawMargin: the draw probability
// implied by a performance margin.
func DrawProbabilityFor(margin, beta float64, size int, b normal.Backend) float64 {
	return 2*b.CDF(margin/(math.Sqrt(float64(size))*beta)) - 1
}

// global holds the immutable snapshot read by the package-level
// functions. Setup replaces the whole pointer; the Env behind it is
// never mutated in place.
var global atomic.Pointer[Env]

func init() {
	e := DefaultEnv()
	global.Store(&e)
}

// Setup installs env as the global default and returns it. Concurrent
// readers keep the snapshot they already loaded.
func Setup(env Env) Env {
	global.Store(&env)

	return env
}

// Global returns a copy of the current global environment.
func Global() Env {
	return *global.Load()
}

// Expose applies Env.Expose under the global environment.
func Expose(r Rating) float64 {
	return Global().Expose(r)
}
