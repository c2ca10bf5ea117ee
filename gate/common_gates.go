package gate

import (
	"math"

	"github.com/qrane-team/qrane-engine/linalg"
	"gonum.org/v1/gonum/mat"
)

// Gates commonly used in the literature. Each is an immutable value whose
// concrete exponent is canonicalized into (-1, 1] at construction, so plain
// == (and map-key hashing) agrees with equality up to the canonical period.

const eigenGatePeriod = 2

// RotXGate is a fixed rotation around the X axis of the Bloch sphere.
type RotXGate struct {
	exponent Exponent
}

// RotXPow returns an X rotation by the given half-turn exponent.
func RotXPow(halfTurns Exponent) RotXGate {
	return RotXGate{exponent: halfTurns.canonicalize(eigenGatePeriod)}
}

func (g RotXGate) QubitCount() int                       { return 1 }
func (g RotXGate) Exponent() Exponent                    { return g.exponent }
func (g RotXGate) CanonicalPeriod() (float64, bool)      { return eigenGatePeriod, true }
func (g RotXGate) RaiseToPower(power float64) RotXGate {
	return RotXGate{exponent: powExponent(g.exponent, power, eigenGatePeriod, true)}
}

func (g RotXGate) EigenComponents() []EigenComponent {
	return []EigenComponent{
		{0, linalg.Square(2, []complex128{0.5, 0.5, 0.5, 0.5})},
		{1, linalg.Square(2, []complex128{0.5, -0.5, -0.5, 0.5})},
	}
}

func (g RotXGate) Matrix() (*mat.CDense, error) { return eigenMatrix(g, 2) }

func (g RotXGate) WireSymbols(args DiagramArgs) []string { return []string{"X"} }
func (g RotXGate) DiagramExponent(args DiagramArgs) string {
	return g.exponent.Format(args.Precision)
}

func (g RotXGate) String() string { return "X" + exponentSuffix(g.exponent) }

// RotYGate is a fixed rotation around the Y axis of the Bloch sphere.
type RotYGate struct {
	exponent Exponent
}

// RotYPow returns a Y rotation by the given half-turn exponent.
func RotYPow(halfTurns Exponent) RotYGate {
	return RotYGate{exponent: halfTurns.canonicalize(eigenGatePeriod)}
}

func (g RotYGate) QubitCount() int                  { return 1 }
func (g RotYGate) Exponent() Exponent               { return g.exponent }
func (g RotYGate) CanonicalPeriod() (float64, bool) { return eigenGatePeriod, true }
func (g RotYGate) RaiseToPower(power float64) RotYGate {
	return RotYGate{exponent: powExponent(g.exponent, power, eigenGatePeriod, true)}
}

func (g RotYGate) EigenComponents() []EigenComponent {
	return []EigenComponent{
		{0, linalg.Square(2, []complex128{0.5, -0.5i, 0.5i, 0.5})},
		{1, linalg.Square(2, []complex128{0.5, 0.5i, -0.5i, 0.5})},
	}
}

func (g RotYGate) Matrix() (*mat.CDense, error) { return eigenMatrix(g, 2) }

func (g RotYGate) WireSymbols(args DiagramArgs) []string { return []string{"Y"} }
func (g RotYGate) DiagramExponent(args DiagramArgs) string {
	return g.exponent.Format(args.Precision)
}

func (g RotYGate) String() string { return "Y" + exponentSuffix(g.exponent) }

// RotZGate is a fixed rotation around the Z axis of the Bloch sphere.
type RotZGate struct {
	exponent Exponent
}

// RotZPow returns a Z rotation by the given half-turn exponent.
func RotZPow(halfTurns Exponent) RotZGate {
	return RotZGate{exponent: halfTurns.canonicalize(eigenGatePeriod)}
}

func (g RotZGate) QubitCount() int                  { return 1 }
func (g RotZGate) Exponent() Exponent               { return g.exponent }
func (g RotZGate) CanonicalPeriod() (float64, bool) { return eigenGatePeriod, true }
func (g RotZGate) RaiseToPower(power float64) RotZGate {
	return RotZGate{exponent: powExponent(g.exponent, power, eigenGatePeriod, true)}
}

func (g RotZGate) EigenComponents() []EigenComponent {
	return []EigenComponent{
		{0, linalg.Diag(1, 0)},
		{1, linalg.Diag(0, 1)},
	}
}

func (g RotZGate) Matrix() (*mat.CDense, error) { return eigenMatrix(g, 2) }

// WireSymbols substitutes the conventional S and T symbols for the quarter
// and eighth turns.
func (g RotZGate) WireSymbols(args DiagramArgs) []string {
	if v, ok := g.exponent.Value(); ok {
		switch math.Abs(v) {
		case 0.5:
			return []string{"S"}
		case 0.25:
			return []string{"T"}
		}
	}
	return []string{"Z"}
}

// DiagramExponent collapses to +-1 for the S and T special cases, since the
// wire symbol already carries the magnitude.
func (g RotZGate) DiagramExponent(args DiagramArgs) string {
	if v, ok := g.exponent.Value(); ok {
		switch math.Abs(v) {
		case 0.5, 0.25:
			if v > 0 {
				return "1"
			}
			return "-1"
		}
	}
	return g.exponent.Format(args.Precision)
}

func (g RotZGate) String() string {
	if v, ok := g.exponent.Value(); ok {
		switch v {
		case 1:
			return "Z"
		case 0.5:
			return "S"
		case 0.25:
			return "T"
		}
	}
	return "Z" + exponentSuffix(g.exponent)
}

// Rot11Gate phases the |11> state of two adjacent qubits by a fixed amount.
// At exponent 1 it is the controlled-Z gate.
type Rot11Gate struct {
	exponent Exponent
}

// Rot11Pow returns a |11>-phasing gate with the given half-turn exponent.
func Rot11Pow(halfTurns Exponent) Rot11Gate {
	return Rot11Gate{exponent: halfTurns.canonicalize(eigenGatePeriod)}
}

func (g Rot11Gate) QubitCount() int                  { return 2 }
func (g Rot11Gate) Exponent() Exponent               { return g.exponent }
func (g Rot11Gate) CanonicalPeriod() (float64, bool) { return eigenGatePeriod, true }
func (g Rot11Gate) RaiseToPower(power float64) Rot11Gate {
	return Rot11Gate{exponent: powExponent(g.exponent, power, eigenGatePeriod, true)}
}

func (g Rot11Gate) EigenComponents() []EigenComponent {
	return []EigenComponent{
		{0, linalg.Diag(1, 1, 1, 0)},
		{1, linalg.Diag(0, 0, 0, 1)},
	}
}

func (g Rot11Gate) Matrix() (*mat.CDense, error) { return eigenMatrix(g, 4) }

func (g Rot11Gate) QubitsInterchangeable() bool { return true }

func (g Rot11Gate) WireSymbols(args DiagramArgs) []string { return []string{"@", "Z"} }
func (g Rot11Gate) DiagramExponent(args DiagramArgs) string {
	return g.exponent.Format(args.Precision)
}

func (g Rot11Gate) String() string { return "CZ" + exponentSuffix(g.exponent) }

// CNotGate toggles the second qubit when the first qubit is on.
type CNotGate struct {
	exponent Exponent
}

// CNotPow returns a controlled-NOT with the given half-turn exponent.
func CNotPow(halfTurns Exponent) CNotGate {
	return CNotGate{exponent: halfTurns.canonicalize(eigenGatePeriod)}
}

func (g CNotGate) QubitCount() int                  { return 2 }
func (g CNotGate) Exponent() Exponent               { return g.exponent }
func (g CNotGate) CanonicalPeriod() (float64, bool) { return eigenGatePeriod, true }
func (g CNotGate) RaiseToPower(power float64) CNotGate {
	return CNotGate{exponent: powExponent(g.exponent, power, eigenGatePeriod, true)}
}

func (g CNotGate) EigenComponents() []EigenComponent {
	return []EigenComponent{
		{0, linalg.Square(4, []complex128{
			1, 0, 0, 0,
			0, 1, 0, 0,
			0, 0, 0.5, 0.5,
			0, 0, 0.5, 0.5,
		})},
		{1, linalg.Square(4, []complex128{
			0, 0, 0, 0,
			0, 0, 0, 0,
			0, 0, 0.5, -0.5,
			0, 0, -0.5, 0.5,
		})},
	}
}

func (g CNotGate) Matrix() (*mat.CDense, error) { return eigenMatrix(g, 4) }

// DefaultDecompose conjugates a |11>-phasing gate by Y rotations on the
// target, turning the phase into a bit flip.
func (g CNotGate) DefaultDecompose(qubits []Qubit) []Operation {
	c, t := qubits[0], qubits[1]
	return []Operation{
		mustOp(RotYPow(HalfTurns(-0.5)), t),
		mustOp(Rot11Pow(g.exponent), c, t),
		mustOp(RotYPow(HalfTurns(0.5)), t),
	}
}

func (g CNotGate) WireSymbols(args DiagramArgs) []string { return []string{"@", "X"} }
func (g CNotGate) DiagramExponent(args DiagramArgs) string {
	return g.exponent.Format(args.Precision)
}

func (g CNotGate) String() string { return "CNOT" + exponentSuffix(g.exponent) }

// HGate is a 180 degree rotation around the X+Z axis of the Bloch sphere.
type HGate struct{}

func (HGate) QubitCount() int   { return 1 }
func (HGate) SelfInverse() bool { return true }

func (HGate) Matrix() (*mat.CDense, error) {
	s := complex(math.Sqrt(0.5), 0)
	return linalg.Square(2, []complex128{s, s, s, -s}), nil
}

func (HGate) DefaultDecompose(qubits []Qubit) []Operation {
	q := qubits[0]
	return []Operation{
		mustOp(RotYPow(HalfTurns(0.5)), q),
		mustOp(RotXPow(HalfTurns(1)), q),
	}
}

func (HGate) WireSymbols(args DiagramArgs) []string   { return []string{"H"} }
func (HGate) DiagramExponent(args DiagramArgs) string { return "1" }

func (HGate) String() string { return "H" }

// SwapGate exchanges two qubits' states.
type SwapGate struct{}

func (SwapGate) QubitCount() int             { return 2 }
func (SwapGate) SelfInverse() bool           { return true }
func (SwapGate) QubitsInterchangeable() bool { return true }

func (SwapGate) Matrix() (*mat.CDense, error) {
	return linalg.Square(4, []complex128{
		1, 0, 0, 0,
		0, 0, 1, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
	}), nil
}

func (SwapGate) DefaultDecompose(qubits []Qubit) []Operation {
	a, b := qubits[0], qubits[1]
	return []Operation{
		mustOp(CNOT, a, b),
		mustOp(CNOT, b, a),
		mustOp(CNOT, a, b),
	}
}

func (SwapGate) WireSymbols(args DiagramArgs) []string {
	if !args.UseUnicode {
		return []string{"swap", "swap"}
	}
	return []string{"×", "×"}
}
func (SwapGate) DiagramExponent(args DiagramArgs) string { return "1" }

func (SwapGate) String() string { return "SWAP" }

var (
	X    = RotXPow(HalfTurns(1)) // Pauli X gate.
	Y    = RotYPow(HalfTurns(1)) // Pauli Y gate.
	Z    = RotZPow(HalfTurns(1)) // Pauli Z gate.
	CZ   = Rot11Pow(HalfTurns(1)) // Negates the amplitude of the |11> state.
	CNOT = CNotPow(HalfTurns(1)) // Controlled Not gate.
	H    = HGate{}               // Hadamard gate.
	SWAP = SwapGate{}            // Exchanges two qubits' states.

	S = RotZPow(HalfTurns(0.5))  // Quarter turn around Z.
	T = RotZPow(HalfTurns(0.25)) // Eighth turn around Z.
)
