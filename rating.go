package trueskill

import "fmt"

// Rating is one player's skill belief N(Mu, Sigma²). It is an immutable
// value: rating operations return new Ratings and never modify their
// inputs.
type Rating struct {
	// Mu is the mean of the belief, the current skill estimate.
	Mu float64
	// Sigma is the standard deviation, the remaining uncertainty.
	Sigma float64
}

// NewRating builds a validated rating. Sigma must be strictly positive;
// a non-positive value returns ErrInvalidParameter.
func NewRating(mu, sigma float64) (Rating, error) {
	if sigma <= 0 {
		return Rating{}, fmt.Errorf("sigma %g must be > 0: %w", sigma, ErrInvalidParameter)
	}

	return Rating{Mu: mu, Sigma: sigma}, nil
}

// NewDefaultRating returns the prior rating of the global environment.
func NewDefaultRating() Rating {
	return Global().NewRating()
}

// String renders the rating as trueskill.Rating(mu=..., sigma=...).
func (r Rating) String() string {
	return fmt.Sprintf("trueskill.Rating(mu=%.3f, sigma=%.3f)", r.Mu, r.Sigma)
}
