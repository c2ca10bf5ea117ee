package gate

import (
	"fmt"
	"math"
	"strconv"
)

// Exponent is the half-turn parameter of a gate. It is either a concrete
// real number or an unresolved symbolic parameter carried as a name with a
// deferred multiplier. Raising a symbolic exponent to a power never
// evaluates; it only scales the multiplier.
type Exponent struct {
	sym   string
	coeff float64
	val   float64
}

// HalfTurns returns a concrete exponent.
func HalfTurns(v float64) Exponent {
	return Exponent{val: v}
}

// Param returns a symbolic exponent for an unresolved parameter.
func Param(name string) Exponent {
	return Exponent{sym: name, coeff: 1}
}

// Symbolic reports whether the exponent is an unresolved parameter.
func (e Exponent) Symbolic() bool {
	return e.sym != ""
}

// Value returns the concrete half-turn count. ok is false for symbolic
// exponents.
func (e Exponent) Value() (v float64, ok bool) {
	if e.Symbolic() {
		return 0, false
	}
	return e.val, true
}

// ParamName returns the parameter name of a symbolic exponent, or "".
func (e Exponent) ParamName() string {
	return e.sym
}

// Resolve substitutes a value for the symbolic parameter and returns the
// resulting concrete exponent.
func (e Exponent) Resolve(value float64) Exponent {
	if !e.Symbolic() {
		return e
	}
	return Exponent{val: e.coeff * value}
}

// times scales the exponent by power. Concrete exponents multiply in place;
// symbolic exponents keep the product in the deferred multiplier.
func (e Exponent) times(power float64) Exponent {
	if e.Symbolic() {
		return Exponent{sym: e.sym, coeff: e.coeff * power}
	}
	return Exponent{val: e.val * power}
}

// canonicalize maps a concrete exponent into the half-open interval
// (-period/2, period/2]. Gate equality and hashing rely on every concrete
// gate value being canonicalized at construction, so equal gates compare
// equal with plain ==. Symbolic exponents pass through untouched.
func (e Exponent) canonicalize(period float64) Exponent {
	if e.Symbolic() {
		return e
	}
	v := math.Mod(e.val, period)
	if v <= -period/2 {
		v += period
	} else if v > period/2 {
		v -= period
	}
	if v == 0 {
		v = 0 // normalize -0
	}
	return Exponent{val: v}
}

func (e Exponent) String() string {
	if !e.Symbolic() {
		return formatHalfTurns(e.val)
	}
	if e.coeff == 1 {
		return e.sym
	}
	return fmt.Sprintf("%s*%s", e.sym, formatHalfTurns(e.coeff))
}

// Format renders the exponent with at most the given number of significant
// digits, for diagram annotations.
func (e Exponent) Format(precision int) string {
	if !e.Symbolic() {
		return strconv.FormatFloat(e.val, 'g', precision, 64)
	}
	return e.String()
}

func formatHalfTurns(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
