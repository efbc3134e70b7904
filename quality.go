package trueskill

import (
	"fmt"
	"math"

	"github.com/katalvlaran/trueskill/matrix"
)

// Quality estimates the draw probability of a hypothetical match
// between the given groups, a number in (0,1]; higher means a more
// even, competitive match. weights mirrors the groups shape for
// partial play and may be nil for full participation.
//
// Quality is closed-form over the joint skill Gaussian and does not run
// the factor graph.
func (e Env) Quality(groups [][]Rating, weights [][]float64) (float64, error) {
	if err := e.check(); err != nil {
		return 0, err
	}
	if err := validateGroups(groups); err != nil {
		return 0, err
	}
	weights, err := validateQualityWeights(groups, weights)
	if err != nil {
		return 0, err
	}

	var (
		flatR []Rating
		flatW []float64
		ends  []int // cumulative player count per team
	)
	total := 0
	for i, g := range groups {
		total += len(g)
		ends = append(ends, total)
		flatR = append(flatR, g...)
		flatW = append(flatW, weights[i]...)
	}
	n := len(flatR)

	mus := make([]float64, n)
	for i, fr := range flatR {
		mus[i] = fr.Mu
	}
	mean, err := matrix.Column(mus)
	if err != nil {
		return 0, fmt.Errorf("quality mean vector: %w", err)
	}
	variance, err := matrix.Generate(n, n, func(r, c int) float64 {
		if r != c {
			return 0
		}

		return flatR[r].Sigma * flatR[r].Sigma
	})
	if err != nil {
		return 0, fmt.Errorf("quality variance matrix: %w", err)
	}

	// one row per adjacent team pair: +w over the earlier team's
	// players, -w over the later team's
	entries := make(map[matrix.Index]float64)
	for t := 0; t+1 < len(groups); t++ {
		start := 0
		if t > 0 {
			start = ends[t-1]
		}
		for x := start; x < ends[t]; x++ {
			entries[matrix.Index{Row: t, Col: x}] = flatW[x]
		}
		for x := ends[t]; x < ends[t+1]; x++ {
			entries[matrix.Index{Row: t, Col: x}] = -flatW[x]
		}
	}
	rotated, err := matrix.FromEntries(len(groups)-1, n, entries)
	if err != nil {
		return 0, fmt.Errorf("quality assignment matrix: %w", err)
	}

	return e.qualityForm(mean, variance, rotated)
}

// qualityForm evaluates the quality quadratic form
// exp(det(-0.5·start·middle⁻¹·end)) · sqrt(det(ata)/det(middle)) over
// the flattened mean vector, variance diagonal and rotated assignment
// matrix.
func (e Env) qualityForm(mean, variance, rotated *matrix.Dense) (float64, error) {
	a := rotated.Transpose()

	ra, err := rotated.Mul(a)
	if err != nil {
		return 0, fmt.Errorf("quality form: %w", err)
	}
	ata := ra.Scale(e.Beta * e.Beta)

	rv, err := rotated.Mul(variance)
	if err != nil {
		return 0, fmt.Errorf("quality form: %w", err)
	}
	atsa, err := rv.Mul(a)
	if err != nil {
		return 0, fmt.Errorf("quality form: %w", err)
	}

	start, err := mean.Transpose().Mul(a)
	if err != nil {
		return 0, fmt.Errorf("quality form: %w", err)
	}
	middle, err := ata.Add(atsa)
	if err != nil {
		return 0, fmt.Errorf("quality form: %w", err)
	}
	end, err := rotated.Mul(mean)
	if err != nil {
		return 0, fmt.Errorf("quality form: %w", err)
	}

	inv, err := middle.Inverse()
	if err != nil {
		return 0, fmt.Errorf("quality form: %w", err)
	}
	sm, err := start.Mul(inv)
	if err != nil {
		return 0, fmt.Errorf("quality form: %w", err)
	}
	sme, err := sm.Mul(end)
	if err != nil {
		return 0, fmt.Errorf("quality form: %w", err)
	}
	eArg, err := sme.Scale(-0.5).Determinant()
	if err != nil {
		return 0, fmt.Errorf("quality form: %w", err)
	}

	num, err := ata.Determinant()
	if err != nil {
		return 0, fmt.Errorf("quality form: %w", err)
	}
	den, err := middle.Determinant()
	if err != nil {
		return 0, fmt.Errorf("quality form: %w", err)
	}

	return math.Exp(eArg) * math.Sqrt(num/den), nil
}

// Quality1Vs1 scores a hypothetical head-to-head match.
func (e Env) Quality1Vs1(a, b Rating) (float64, error) {
	return e.Quality([][]Rating{{a}, {b}}, nil)
}

// Quality applies Env.Quality under the global environment.
func Quality(groups [][]Rating, weights [][]float64) (float64, error) {
	return Global().Quality(groups, weights)
}

// Quality1Vs1 applies Env.Quality1Vs1 under the global environment.
func Quality1Vs1(a, b Rating) (float64, error) {
	return Global().Quality1Vs1(a, b)
}
