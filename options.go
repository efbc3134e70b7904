package trueskill

// WeightKey addresses one player inside the groups slice for sparse
// partial-play weights: Group indexes the group, Player indexes the
// player within it.
type WeightKey struct {
	Group  int
	Player int
}

// RateOptions tunes one Rate call. The zero value (and a nil pointer)
// means full participation for every player and the default convergence
// threshold.
type RateOptions struct {
	// Weights gives each player's participation in [0,1], shaped exactly
	// like the groups slice. Mutually exclusive with WeightMap; when both
	// are set, Weights wins.
	Weights [][]float64

	// WeightMap is the sparse alternative to Weights: listed players get
	// the given weight, everyone else gets 1.
	WeightMap map[WeightKey]float64

	// MinDelta is the convergence threshold of the message-passing
	// schedule. Zero means the default 0.0001; a negative value is
	// rejected with ErrInvalidParameter.
	MinDelta float64
}

// minDelta resolves the effective convergence threshold. The unset zero
// value maps to the default; anything else is returned as-is and
// validated by the caller.
func (o *RateOptions) minDelta() float64 {
	if o == nil || o.MinDelta == 0 {
		return defaultMinDelta
	}

	return o.MinDelta
}
