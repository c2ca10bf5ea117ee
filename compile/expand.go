// Package compile rewrites circuits for execution backends: composite gates
// are expanded through their default decompositions until every operation is
// in the backend's supported gate set.
package compile

import (
	"fmt"

	"github.com/qrane-team/qrane-engine/circuit"
	"github.com/qrane-team/qrane-engine/gate"
)

// maxExpandDepth bounds the recursion through nested decompositions.
const maxExpandDepth = 32

// GateSet reports whether a backend supports a gate natively.
type GateSet func(g gate.Gate) bool

// PrimitiveGateSet matches the hardware-primitive gates: single-qubit
// rotations, the |11>-phasing gate and measurements.
func PrimitiveGateSet(g gate.Gate) bool {
	switch g.(type) {
	case gate.RotXGate, gate.RotYGate, gate.RotZGate, gate.Rot11Gate, gate.MeasurementGate:
		return true
	default:
		return false
	}
}

// Expand returns a circuit equivalent to c (up to global phase) containing
// only gates accepted by the target set. Gates outside the set must expose a
// default decomposition.
func Expand(c *circuit.Circuit, target GateSet) (*circuit.Circuit, error) {
	out := circuit.New()
	for _, op := range c.Operations() {
		ops, err := expandOp(op, target, 0)
		if err != nil {
			return nil, err
		}
		out.Append(ops...)
	}
	return out, nil
}

func expandOp(op gate.Operation, target GateSet, depth int) ([]gate.Operation, error) {
	if target(op.Gate) {
		return []gate.Operation{op}, nil
	}
	if depth >= maxExpandDepth {
		return nil, fmt.Errorf("decomposition of %s exceeds depth %d", op.Gate, maxExpandDepth)
	}
	composite, ok := op.Gate.(gate.Composite)
	if !ok {
		return nil, fmt.Errorf("gate %s is outside the target set and has no decomposition", op.Gate)
	}
	var out []gate.Operation
	for _, sub := range composite.DefaultDecompose(op.Qubits) {
		ops, err := expandOp(sub, target, depth+1)
		if err != nil {
			return nil, err
		}
		out = append(out, ops...)
	}
	return out, nil
}
