package factorgraph

import (
	"math"

	"github.com/katalvlaran/trueskill/gaussian"
)

// Variable is a mutable Gaussian belief node. messages holds, per
// connected factor ID, the last message that factor sent this variable;
// belief/message quotients reconstruct every other factor's combined
// opinion without storing the full neighborhood.
type Variable struct {
	val      gaussian.Gaussian
	messages map[int]gaussian.Gaussian
}

// Value returns the current belief.
func (v *Variable) Value() gaussian.Gaussian {
	return v.val
}

// Delta is the convergence metric between two beliefs:
// max(|Δtau|, sqrt(|Δpi|)), defined as 0 when |Δpi| is infinite to
// guard the degenerate-precision case.
func Delta(a, b gaussian.Gaussian) float64 {
	piDelta := math.Abs(a.Pi - b.Pi)
	if math.IsInf(piDelta, 1) {
		return 0
	}

	return math.Max(math.Abs(a.Tau-b.Tau), math.Sqrt(piDelta))
}

// set replaces the belief and reports how far it moved.
func (v *Variable) set(val gaussian.Gaussian) float64 {
	delta := Delta(v.val, val)
	v.val = val

	return delta
}

// message returns the last message stored for the given factor ID.
func (v *Variable) message(id int) gaussian.Gaussian {
	return v.messages[id]
}

// UpdateMessage replaces the stored message from factor id, folds the
// replacement into the belief (divide out the old, multiply in the
// new) and returns the belief movement.
func (v *Variable) UpdateMessage(id int, msg gaussian.Gaussian) float64 {
	old := v.messages[id]
	v.messages[id] = msg

	return v.set(v.val.Div(old).Mul(msg))
}

// UpdateValue overwrites the belief directly with val, stores the
// message from factor id implied by that assignment and returns the
// belief movement.
func (v *Variable) UpdateValue(id int, val gaussian.Gaussian) float64 {
	old := v.messages[id]
	v.messages[id] = val.Mul(old).Div(v.val)

	return v.set(val)
}
