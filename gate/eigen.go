package gate

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/qrane-team/qrane-engine/linalg"
	"gonum.org/v1/gonum/mat"
)

// EigenComponent is one term of a gate's eigen decomposition: an orthogonal
// projector weighted by exp(i*pi*exponent*HalfTurnIndex) when the gate's
// matrix is reconstructed.
type EigenComponent struct {
	HalfTurnIndex float64
	Projector     *mat.CDense
}

// EigenGate is a gate defined by a fixed eigen decomposition and a real
// exponent. The projectors of the decomposition must be idempotent,
// mutually orthogonal and jointly sum to the identity; that invariant is
// what makes the reconstructed matrix unitary for every real exponent.
type EigenGate interface {
	Gate
	Exponent() Exponent
	// CanonicalPeriod returns the exponent period after which the gate's
	// action repeats. ok is false for aperiodic gates.
	CanonicalPeriod() (period float64, ok bool)
	EigenComponents() []EigenComponent
}

// eigenMatrix reconstructs U = sum exp(i*pi*exponent*index) * projector.
func eigenMatrix(g EigenGate, dim int) (*mat.CDense, error) {
	v, ok := g.Exponent().Value()
	if !ok {
		return nil, fmt.Errorf("gate %s has symbolic exponent %s", g, g.Exponent())
	}
	m := linalg.Zero(dim)
	for _, c := range g.EigenComponents() {
		phase := cmplx.Exp(complex(0, math.Pi*v*c.HalfTurnIndex))
		linalg.AddScaled(m, phase, c.Projector)
	}
	return m, nil
}

// powExponent recombines a stored exponent with a power through the gate's
// period. Concrete exponents are multiplied and canonicalized; symbolic
// exponents defer the product.
func powExponent(e Exponent, power float64, period float64, periodic bool) Exponent {
	e = e.times(power)
	if periodic {
		e = e.canonicalize(period)
	}
	return e
}

// exponentSuffix renders the "**e" tail of a gate's String form, empty when
// the exponent is exactly one.
func exponentSuffix(e Exponent) string {
	if v, ok := e.Value(); ok && v == 1 {
		return ""
	}
	return fmt.Sprintf("**%s", e)
}
