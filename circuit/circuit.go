// Package circuit provides the ordered container for gate operations and a
// text wire-diagram renderer over the gates' diagram metadata.
package circuit

import (
	"github.com/qrane-team/qrane-engine/gate"
	"go.uber.org/multierr"
)

// Circuit is an ordered sequence of gate operations. Operations are applied
// left to right.
type Circuit struct {
	ops []gate.Operation
}

// New returns a circuit over the given operations.
func New(ops ...gate.Operation) *Circuit {
	c := &Circuit{}
	c.Append(ops...)
	return c
}

// Append adds operations to the end of the circuit.
func (c *Circuit) Append(ops ...gate.Operation) {
	c.ops = append(c.ops, ops...)
}

// Operations returns the operations in application order.
func (c *Circuit) Operations() []gate.Operation {
	return c.ops
}

// Qubits returns the distinct qubits touched by the circuit in
// deterministic order.
func (c *Circuit) Qubits() []gate.Qubit {
	seen := make(map[string]struct{})
	var qs []gate.Qubit
	for _, op := range c.ops {
		for _, q := range op.Qubits {
			if _, ok := seen[q.String()]; ok {
				continue
			}
			seen[q.String()] = struct{}{}
			qs = append(qs, q)
		}
	}
	gate.SortQubits(qs)
	return qs
}

// NumQubits returns the number of distinct qubits in the circuit.
func (c *Circuit) NumQubits() int {
	return len(c.Qubits())
}

// Validate re-checks every operation against its gate's contract and
// returns all violations at once.
func (c *Circuit) Validate() error {
	var err error
	for _, op := range c.ops {
		if _, opErr := gate.NewOperation(op.Gate, op.Qubits...); opErr != nil {
			err = multierr.Append(err, opErr)
		}
	}
	return err
}
