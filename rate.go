package trueskill

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/trueskill/factorgraph"
)

// Rate computes post-match ratings for one match between the given
// groups. ranks holds one rank per group, lower is better, equal means
// a draw; nil means positional ranks 0..len(groups)-1. opts may be nil.
//
// The returned slice is shaped like groups and in the same order; the
// inputs are never modified. On any error the result is nil, there are
// no partial updates.
func (e Env) Rate(groups [][]Rating, ranks []int, opts *RateOptions) ([][]Rating, error) {
	if err := e.check(); err != nil {
		return nil, err
	}
	if err := validateGroups(groups); err != nil {
		return nil, err
	}
	ranks, err := resolveRanks(groups, ranks)
	if err != nil {
		return nil, err
	}
	minDelta := opts.minDelta()
	if minDelta <= 0 {
		return nil, fmt.Errorf("min delta %g must be > 0: %w", minDelta, ErrInvalidParameter)
	}
	weights, err := resolveWeights(groups, opts, minDelta)
	if err != nil {
		return nil, err
	}

	// The graph layers assume groups ordered best to worst; sort stably
	// by rank and remember where every group came from.
	order := make([]int, len(groups))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return ranks[order[a]] < ranks[order[b]] })

	m := matchGraph{
		env:     e,
		groups:  make([][]Rating, len(groups)),
		ranks:   make([]int, len(groups)),
		weights: make([][]float64, len(groups)),
	}
	for i, src := range order {
		m.groups[i] = groups[src]
		m.ranks[i] = ranks[src]
		m.weights[i] = weights[src]
	}

	if err = m.build(); err != nil {
		return nil, err
	}
	if err = m.run(minDelta); err != nil {
		return nil, err
	}

	rated := m.extract()
	out := make([][]Rating, len(groups))
	for i, src := range order {
		out[src] = rated[i]
	}

	return out, nil
}

// Rate1Vs1 rates a head-to-head match between a and b. Unless drawn, a
// is the winner.
func (e Env) Rate1Vs1(a, b Rating, drawn bool) (Rating, Rating, error) {
	ranks := []int{0, 1}
	if drawn {
		ranks = []int{0, 0}
	}
	rated, err := e.Rate([][]Rating{{a}, {b}}, ranks, nil)
	if err != nil {
		return Rating{}, Rating{}, err
	}

	return rated[0][0], rated[1][0], nil
}

// Rate applies Env.Rate under the global environment.
func Rate(groups [][]Rating, ranks []int, opts *RateOptions) ([][]Rating, error) {
	return Global().Rate(groups, ranks, opts)
}

// Rate1Vs1 applies Env.Rate1Vs1 under the global environment.
func Rate1Vs1(a, b Rating, drawn bool) (Rating, Rating, error) {
	return Global().Rate1Vs1(a, b, drawn)
}

// matchGraph holds the per-call factor graph of one Rate invocation:
// the five layers over rank-sorted groups plus the factor lists the
// schedule sweeps over. Discarded when Rate returns.
type matchGraph struct {
	env     Env
	groups  [][]Rating
	ranks   []int
	weights [][]float64

	g          *factorgraph.Graph
	ratingVars [][]*factorgraph.Variable
	teamVars   []*factorgraph.Variable
	diffVars   []*factorgraph.Variable

	priors []*factorgraph.Prior
	perfs  []*factorgraph.Likelihood
	teams  []*factorgraph.Sum
	diffs  []*factorgraph.Sum
	truncs []*factorgraph.Truncate
}

// build wires the five layers. The prior, performance and team layers
// are passed down immediately so the team-performance estimates are
// proper before draw margins (possibly dynamic) are resolved for the
// truncation layer.
func (m *matchGraph) build() error {
	m.g = factorgraph.New()
	beta2 := m.env.Beta * m.env.Beta

	m.ratingVars = make([][]*factorgraph.Variable, len(m.groups))
	m.teamVars = make([]*factorgraph.Variable, len(m.groups))
	for i, group := range m.groups {
		m.ratingVars[i] = make([]*factorgraph.Variable, len(group))
		perf := make([]*factorgraph.Variable, len(group))
		for j, r := range group {
			m.ratingVars[i][j] = m.g.Variable()
			perf[j] = m.g.Variable()
			m.priors = append(m.priors, m.g.Prior(m.ratingVars[i][j], r.Mu, r.Sigma, m.env.Tau))
			m.perfs = append(m.perfs, m.g.Likelihood(m.ratingVars[i][j], perf[j], beta2))
		}
		m.teamVars[i] = m.g.Variable()
		m.teams = append(m.teams, m.g.Sum(m.teamVars[i], perf, m.weights[i]))
	}

	for _, f := range m.priors {
		f.Down()
	}
	for _, f := range m.perfs {
		f.Down()
	}
	for _, f := range m.teams {
		f.Down()
	}

	backend := m.env.backend()
	for i := 0; i+1 < len(m.groups); i++ {
		dv := m.g.Variable()
		m.diffVars = append(m.diffVars, dv)
		m.diffs = append(m.diffs, m.g.Sum(dv,
			[]*factorgraph.Variable{m.teamVars[i], m.teamVars[i+1]}, []float64{1, -1}))

		p, err := m.env.drawProbabilityFor(ratingOf(m.teamVars[i]), ratingOf(m.teamVars[i+1]))
		if err != nil {
			return err
		}
		size := len(m.groups[i]) + len(m.groups[i+1])
		margin := DrawMargin(p, m.env.Beta, size, backend)
		outcome := factorgraph.Win
		if m.ranks[i] == m.ranks[i+1] {
			outcome = factorgraph.Draw
		}
		m.truncs = append(m.truncs, m.g.Truncate(dv, outcome, margin, backend))
	}

	return nil
}

// run executes the iterative schedule over the diff/truncation layers
// and then propagates the converged beliefs back down to the rating
// layer. Exhausting the round budget is not an error.
func (m *matchGraph) run(minDelta float64) error {
	n := len(m.diffs)
	for round := 0; round < maxRounds; round++ {
		var delta float64
		var err error
		if n == 1 {
			// two teams: one diff, no inner dependencies
			m.diffs[0].Down()
			if delta, err = m.truncs[0].Up(); err != nil {
				return err
			}
		} else if delta, err = m.sweep(); err != nil {
			return err
		}
		if delta <= minDelta {
			break
		}
	}

	// push the converged diff beliefs out of both ends of the chain
	m.diffs[0].Up(0)
	m.diffs[n-1].Up(1)

	for i, f := range m.teams {
		for j := range m.groups[i] {
			f.Up(j)
		}
	}
	for _, f := range m.perfs {
		f.Up()
	}

	return nil
}

// sweep runs one left-to-right then right-to-left pass over a diff
// chain of length >= 2 and reports the largest belief movement.
func (m *matchGraph) sweep() (float64, error) {
	var delta float64
	n := len(m.diffs)
	for z := 0; z < n-1; z++ {
		m.diffs[z].Down()
		d, err := m.truncs[z].Up()
		if err != nil {
			return 0, err
		}
		if d > delta {
			delta = d
		}
		m.diffs[z].Up(1)
	}
	for z := n - 1; z > 0; z-- {
		m.diffs[z].Down()
		d, err := m.truncs[z].Up()
		if err != nil {
			return 0, err
		}
		if d > delta {
			delta = d
		}
		m.diffs[z].Up(0)
	}

	return delta, nil
}

// extract reads the posterior rating layer, shaped like the sorted
// groups.
func (m *matchGraph) extract() [][]Rating {
	out := make([][]Rating, len(m.ratingVars))
	for i, vars := range m.ratingVars {
		out[i] = make([]Rating, len(vars))
		for j, v := range vars {
			out[i][j] = ratingOf(v)
		}
	}

	return out
}

// ratingOf converts a variable's current belief into a Rating.
func ratingOf(v *factorgraph.Variable) Rating {
	g := v.Value()

	return Rating{Mu: g.Mu(), Sigma: g.Sigma()}
}
