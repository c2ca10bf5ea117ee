// Package sim is the dense statevector backend: it reconstructs circuit
// unitaries from gate matrices and samples measurement outcomes into counts
// keyed by measurement keys.
package sim

import (
	"fmt"

	"github.com/qrane-team/qrane-engine/circuit"
	"github.com/qrane-team/qrane-engine/gate"
	"gonum.org/v1/gonum/mat"
)

// maxQubits caps dense simulation; a 2^n statevector gets out of hand fast.
const maxQubits = 24

// State is a dense statevector over n qubits. Basis index bits are ordered
// with the first qubit as the most significant bit, matching the gate
// matrices' qubit ordering.
type State struct {
	amps []complex128
	n    int
}

// NewState returns the |0...0> state over numQubits qubits.
func NewState(numQubits int) (*State, error) {
	if numQubits < 1 || numQubits > maxQubits {
		return nil, fmt.Errorf("qubit count %d outside [1, %d]", numQubits, maxQubits)
	}
	amps := make([]complex128, 1<<numQubits)
	amps[0] = 1
	return &State{amps: amps, n: numQubits}, nil
}

// NumQubits returns the number of qubits of the state.
func (s *State) NumQubits() int { return s.n }

// Amplitudes returns the raw amplitude slice, basis-index ordered.
func (s *State) Amplitudes() []complex128 { return s.amps }

// ApplyMatrix applies a 2^k x 2^k matrix to the k target qubit positions,
// in the matrix's qubit order.
func (s *State) ApplyMatrix(m *mat.CDense, targets []int) error {
	k := len(targets)
	d := 1 << k
	r, c := m.Dims()
	if r != d || c != d {
		return fmt.Errorf("matrix is %dx%d, want %dx%d for %d targets", r, c, d, d, k)
	}
	masks := make([]int, k)
	allMask := 0
	for i, t := range targets {
		if t < 0 || t >= s.n {
			return fmt.Errorf("target %d outside [0, %d)", t, s.n)
		}
		masks[i] = 1 << (s.n - 1 - t)
		if allMask&masks[i] != 0 {
			return fmt.Errorf("duplicate target %d", t)
		}
		allMask |= masks[i]
	}

	idx := make([]int, d)
	in := make([]complex128, d)
	out := make([]complex128, d)
	for base := 0; base < len(s.amps); base++ {
		if base&allMask != 0 {
			continue
		}
		for j := 0; j < d; j++ {
			b := base
			for i := 0; i < k; i++ {
				if (j>>(k-1-i))&1 == 1 {
					b |= masks[i]
				}
			}
			idx[j] = b
			in[j] = s.amps[b]
		}
		for row := 0; row < d; row++ {
			var sum complex128
			for col := 0; col < d; col++ {
				sum += m.At(row, col) * in[col]
			}
			out[row] = sum
		}
		for row := 0; row < d; row++ {
			s.amps[idx[row]] = out[row]
		}
	}
	return nil
}

// applyOperation applies one unitary operation given the qubit positions of
// the enclosing register.
func (s *State) applyOperation(op gate.Operation, pos map[string]int) error {
	km, ok := op.Gate.(gate.KnownMatrix)
	if !ok {
		return fmt.Errorf("gate %s has no matrix", op.Gate)
	}
	m, err := km.Matrix()
	if err != nil {
		return err
	}
	targets := make([]int, len(op.Qubits))
	for i, q := range op.Qubits {
		p, ok := pos[q.String()]
		if !ok {
			return fmt.Errorf("qubit %s is not part of the register", q)
		}
		targets[i] = p
	}
	return s.ApplyMatrix(m, targets)
}

// OpsUnitary composes the unitary of an operation sequence over an explicit
// qubit register, column by column. Measurement gates are rejected.
func OpsUnitary(ops []gate.Operation, qubits []gate.Qubit) (*mat.CDense, error) {
	n := len(qubits)
	if n < 1 || n > maxQubits {
		return nil, fmt.Errorf("qubit count %d outside [1, %d]", n, maxQubits)
	}
	pos := qubitPositions(qubits)
	dim := 1 << n
	u := mat.NewCDense(dim, dim, nil)
	for col := 0; col < dim; col++ {
		s := &State{amps: make([]complex128, dim), n: n}
		s.amps[col] = 1
		for _, op := range ops {
			if _, isM := op.Gate.(gate.MeasurementGate); isM {
				return nil, fmt.Errorf("operation %s is not unitary", op)
			}
			if err := s.applyOperation(op, pos); err != nil {
				return nil, err
			}
		}
		for row := 0; row < dim; row++ {
			u.Set(row, col, s.amps[row])
		}
	}
	return u, nil
}

// CircuitUnitary composes the unitary of a whole circuit over its own
// qubits.
func CircuitUnitary(c *circuit.Circuit) (*mat.CDense, error) {
	return OpsUnitary(c.Operations(), c.Qubits())
}

func qubitPositions(qubits []gate.Qubit) map[string]int {
	pos := make(map[string]int, len(qubits))
	for i, q := range qubits {
		pos[q.String()] = i
	}
	return pos
}
