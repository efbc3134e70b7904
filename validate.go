// Package trueskill - input validation shared by Rate and Quality.
//
// Deterministic, side-effect free checks; no panics on user input, only
// the sentinel errors from errors.go. O(total players) time.
package trueskill

import "fmt"

// validateGroups verifies the structural shape common to rating and
// quality calls: at least two groups, no empty group, every rating with
// a positive sigma.
func validateGroups(groups [][]Rating) error {
	if len(groups) < 2 {
		return fmt.Errorf("need at least 2 rating groups, got %d: %w", len(groups), ErrValidation)
	}
	for i, g := range groups {
		if len(g) == 0 {
			return fmt.Errorf("rating group %d is empty: %w", i, ErrValidation)
		}
		for j, r := range g {
			if r.Sigma <= 0 {
				return fmt.Errorf("rating (%d,%d) sigma %g must be > 0: %w", i, j, r.Sigma, ErrInvalidParameter)
			}
		}
	}

	return nil
}

// resolveRanks returns the effective ranks slice: the given one after a
// length check, or the positional default 0..len(groups)-1.
func resolveRanks(groups [][]Rating, ranks []int) ([]int, error) {
	if ranks == nil {
		ranks = make([]int, len(groups))
		for i := range ranks {
			ranks[i] = i
		}

		return ranks, nil
	}
	if len(ranks) != len(groups) {
		return nil, fmt.Errorf("got %d ranks for %d groups: %w", len(ranks), len(groups), ErrValidation)
	}

	return ranks, nil
}

// resolveWeights materializes the per-player participation weights from
// opts, shaped like groups, clamped below by minDelta so that a fully
// absent player still leaves a well-defined (untouched) posterior.
func resolveWeights(groups [][]Rating, opts *RateOptions, minDelta float64) ([][]float64, error) {
	out := make([][]float64, len(groups))
	for i, g := range groups {
		out[i] = make([]float64, len(g))
		for j := range out[i] {
			out[i][j] = 1
		}
	}

	if opts != nil && opts.Weights != nil {
		if len(opts.Weights) != len(groups) {
			return nil, fmt.Errorf("got %d weight groups for %d rating groups: %w", len(opts.Weights), len(groups), ErrValidation)
		}
		for i, ws := range opts.Weights {
			if len(ws) != len(groups[i]) {
				return nil, fmt.Errorf("got %d weights for %d players in group %d: %w", len(ws), len(groups[i]), i, ErrValidation)
			}
			copy(out[i], ws)
		}
	} else if opts != nil && opts.WeightMap != nil {
		for k, w := range opts.WeightMap {
			if k.Group < 0 || k.Group >= len(groups) || k.Player < 0 || k.Player >= len(groups[k.Group]) {
				return nil, fmt.Errorf("weight key (%d,%d) outside the groups: %w", k.Group, k.Player, ErrValidation)
			}
			out[k.Group][k.Player] = w
		}
	}

	for i := range out {
		for j, w := range out[i] {
			if w < minDelta {
				out[i][j] = minDelta
			}
		}
	}

	return out, nil
}

// validateQualityWeights checks the optional explicit weight shape for
// Quality and fills ones when weights is nil.
func validateQualityWeights(groups [][]Rating, weights [][]float64) ([][]float64, error) {
	if weights == nil {
		weights = make([][]float64, len(groups))
		for i, g := range groups {
			weights[i] = make([]float64, len(g))
			for j := range weights[i] {
				weights[i][j] = 1
			}
		}

		return weights, nil
	}
	if len(weights) != len(groups) {
		return nil, fmt.Errorf("got %d weight groups for %d rating groups: %w", len(weights), len(groups), ErrValidation)
	}
	for i, ws := range weights {
		if len(ws) != len(groups[i]) {
			return nil, fmt.Errorf("got %d weights for %d players in group %d: %w", len(ws), len(groups[i]), i, ErrValidation)
		}
	}

	return weights, nil
}
