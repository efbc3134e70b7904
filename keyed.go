package trueskill

import (
	"cmp"
	"slices"
)

// RateKeyed rates groups given as key-to-Rating maps, for callers who
// track players by identifier rather than position. Keys are flattened
// in sorted order, rated through Env.Rate, and zipped back, so two
// calls with the same maps are deterministic. Positional fields in opts
// (Weights, WeightMap) address players by their sorted-key position;
// for keyed weights build the maps in sorted-key order.
func RateKeyed[K cmp.Ordered](e Env, groups []map[K]Rating, ranks []int, opts *RateOptions) ([]map[K]Rating, error) {
	keys := make([][]K, len(groups))
	plain := make([][]Rating, len(groups))
	for i, g := range groups {
		keys[i] = sortedKeys(g)
		plain[i] = make([]Rating, len(keys[i]))
		for j, k := range keys[i] {
			plain[i][j] = g[k]
		}
	}

	rated, err := e.Rate(plain, ranks, opts)
	if err != nil {
		return nil, err
	}

	out := make([]map[K]Rating, len(groups))
	for i, ks := range keys {
		out[i] = make(map[K]Rating, len(ks))
		for j, k := range ks {
			out[i][k] = rated[i][j]
		}
	}

	return out, nil
}

// QualityKeyed scores a hypothetical match over keyed groups. weights
// maps player keys to participation; nil maps and missing keys mean 1.
func QualityKeyed[K cmp.Ordered](e Env, groups []map[K]Rating, weights []map[K]float64) (float64, error) {
	plain := make([][]Rating, len(groups))
	var plainW [][]float64
	if weights != nil {
		plainW = make([][]float64, len(groups))
	}
	for i, g := range groups {
		ks := sortedKeys(g)
		plain[i] = make([]Rating, len(ks))
		if weights != nil {
			plainW[i] = make([]float64, len(ks))
		}
		for j, k := range ks {
			plain[i][j] = g[k]
			if weights != nil {
				w := 1.0
				if i < len(weights) && weights[i] != nil {
					if ww, ok := weights[i][k]; ok {
						w = ww
					}
				}
				plainW[i][j] = w
			}
		}
	}

	return e.Quality(plain, plainW)
}

// sortedKeys returns the map's keys in ascending order.
func sortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	ks := make([]K, 0, len(m))
	for k := range m {
		ks = append(ks, k)
	}
	slices.Sort(ks)

	return ks
}
