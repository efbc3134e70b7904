// Package trueskill implements the TrueSkill Bayesian skill-rating
// model: given one match between any number of teams, it turns the
// pre-match ratings and the observed ranking into post-match ratings,
// and it can score how competitive a hypothetical match would be.
//
// Each player carries a Rating, a Gaussian belief N(Mu, Sigma²) over
// their true skill. Rating updates condition that belief on the match
// outcome through a fixed five-layer factor graph (skill, performance,
// team performance, adjacent-team difference, outcome truncation) and
// run Gaussian message passing to convergence.
//
// # Quick start
//
//	alice := trueskill.NewDefaultRating()
//	bob := trueskill.NewDefaultRating()
//
//	alice, bob, err := trueskill.Rate1Vs1(alice, bob, false) // alice won
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Team matches go through Rate: one rank per group, lower rank is
// better, equal ranks mean a draw:
//
//	teams := [][]trueskill.Rating{{p1, p2}, {p3, p4}}
//	rated, err := trueskill.Rate(teams, []int{0, 1}, nil)
//
// # Environments
//
// All model constants live in an Env value (Mu, Sigma, Beta, Tau,
// DrawProbability, statistics backend). DefaultEnv returns the
// conventional 25/8.33 parameterization. The package-level functions
// read an immutable global snapshot installed with Setup; for isolated
// or concurrent configurations call the Env methods directly:
//
//	env := trueskill.DefaultEnv()
//	env.DrawProbability = 0.25
//	rated, err := env.Rate(teams, ranks, nil)
//
// # Errors
//
// Structural problems with the input (too few groups, an empty group,
// mismatched rank or weight shapes) return ErrValidation. Out-of-domain
// parameters (non-positive sigma, Beta of zero, MinDelta <= 0) return
// ErrInvalidParameter. ErrPrecision reports that the statistics backend
// underflowed for extremely separated ratings; the remedy is a
// higher-precision normal.Backend on the Env, not a retry. All three
// are sentinels matched with errors.Is.
//
// Rate never returns partial results: on any error the input ratings
// are unchanged and the returned groups are nil.
package trueskill
