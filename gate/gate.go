// Package gate implements the eigen-decomposed gate algebra: parametrized
// quantum gates represented as weighted sums of orthogonal projectors, with
// exponentiation, canonicalization of periodic exponents and decomposition
// into primitive gate sequences.
//
// Gates are immutable value objects. Capabilities beyond the base Gate
// contract (known matrix, default decomposition, self-inverse,
// interchangeable qubits, text-diagram rendering) are optional interfaces
// discovered by type assertion.
package gate

import "gonum.org/v1/gonum/mat"

// Gate is a unitary (or measurement) operation on a fixed number of qubits.
type Gate interface {
	// QubitCount is the number of qubits the gate acts on. A negative
	// count means the gate accepts any number of qubits.
	QubitCount() int
	String() string
}

// KnownMatrix is implemented by gates that can produce their unitary matrix.
// Matrix fails for gates whose exponent is still symbolic.
type KnownMatrix interface {
	Gate
	Matrix() (*mat.CDense, error)
}

// Composite is implemented by gates that expand into a fixed sequence of
// simpler gates reproducing their action exactly (up to global phase). The
// sequence is used by backends without native support for the gate.
type Composite interface {
	Gate
	DefaultDecompose(qubits []Qubit) []Operation
}

// SelfInverse marks gates that are their own inverse.
type SelfInverse interface {
	Gate
	SelfInverse() bool
}

// InterchangeableQubits marks gates whose action is symmetric under any
// permutation of their qubits.
type InterchangeableQubits interface {
	Gate
	QubitsInterchangeable() bool
}

// ArgsValidator is implemented by gates with qubit-list constraints beyond
// the plain count check.
type ArgsValidator interface {
	ValidateArgs(qubits []Qubit) error
}

// DiagramArgs carries the rendering context handed to TextDiagrammable
// gates.
type DiagramArgs struct {
	// QubitCount is the number of wires the symbols are requested for.
	// Negative means the gate's own count.
	QubitCount int
	UseUnicode bool
	Precision  int
}

// DefaultDiagramArgs returns the rendering context used when a diagram
// consumer has no preferences of its own.
func DefaultDiagramArgs() DiagramArgs {
	return DiagramArgs{QubitCount: -1, UseUnicode: true, Precision: 3}
}

// TextDiagrammable is implemented by gates that can render themselves in a
// text wire diagram.
type TextDiagrammable interface {
	Gate
	// WireSymbols returns one symbol per wire the gate occupies.
	WireSymbols(args DiagramArgs) []string
	// DiagramExponent returns the exponent annotation; "1" means no
	// annotation is drawn.
	DiagramExponent(args DiagramArgs) string
}
