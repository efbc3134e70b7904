package trueskill

import (
	"errors"

	"github.com/katalvlaran/trueskill/factorgraph"
)

var (
	// ErrValidation is returned when the structure of a rating call is
	// unusable: fewer than two groups, an empty group, or rank/weight
	// shapes that do not match the groups.
	ErrValidation = errors.New("trueskill: invalid rating groups")

	// ErrInvalidParameter is returned when a numeric parameter is outside
	// its domain: a non-positive rating sigma, a zero Beta, a draw
	// probability outside [0,1) or a non-positive MinDelta.
	ErrInvalidParameter = errors.New("trueskill: parameter out of domain")

	// ErrPrecision re-exports the factor-graph sentinel: the statistics
	// backend lost the distribution tail for the given inputs. Use a
	// higher-precision normal.Backend instead of retrying.
	ErrPrecision = factorgraph.ErrPrecision
)
