// Package factorgraph implements the Gaussian sum-product primitives of
// the rating engine: belief Variables and the four factor kinds wired
// into the fixed five-layer match topology.
//
// A Variable owns its current Gaussian belief plus, for every connected
// factor, the last message that factor sent it. Dividing the belief by a
// stored message yields "what everyone else says", which is the quantity
// every update rule below consumes.
//
// Factor kinds and their update rules (all closed-form on canonical
// Gaussians):
//
//   - Prior      injects a known N(mu, sqrt(sigma²+dynamic²)) belief;
//     the dynamic term inflates uncertainty to allow skill drift.
//   - Likelihood relates two variables through additive Gaussian noise
//     (value ~ N(mean, variance)); Down and Up are the two projection
//     directions through the noise channel.
//   - Sum        relates a sum variable to a weighted combination of
//     term variables; Up re-solves the combination for one term.
//   - Truncate   performs the only non-Gaussian step: it moment-matches
//     the belief
//     against the observed win or draw outcome. It can fail with
//     ErrPrecision when the statistics backend underflows.
//
// All Variables and factors for one rating computation are allocated
// through a single Graph arena and discarded afterwards; nothing in this
// package carries cross-call state.
package factorgraph
