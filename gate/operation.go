package gate

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// Operation is a gate applied to specific qubits.
type Operation struct {
	Gate   Gate
	Qubits []Qubit
}

// NewOperation applies a gate to qubits, validating the qubit count and any
// gate-specific constraints immediately. Misuse is a contract violation
// surfaced at construction, not at use.
func NewOperation(g Gate, qubits ...Qubit) (Operation, error) {
	var err error
	if n := g.QubitCount(); n >= 0 && n != len(qubits) {
		err = multierr.Append(err, fmt.Errorf(
			"gate %s acts on %d qubits, got %d", g, n, len(qubits)))
	}
	if len(qubits) == 0 {
		err = multierr.Append(err, fmt.Errorf("gate %s applied to no qubits", g))
	}
	seen := make(map[string]struct{}, len(qubits))
	for _, q := range qubits {
		if _, dup := seen[q.String()]; dup {
			err = multierr.Append(err, fmt.Errorf(
				"gate %s applied to duplicate qubit %s", g, q))
		}
		seen[q.String()] = struct{}{}
	}
	if v, ok := g.(ArgsValidator); ok {
		err = multierr.Append(err, v.ValidateArgs(qubits))
	}
	if err != nil {
		return Operation{}, err
	}
	return Operation{Gate: g, Qubits: qubits}, nil
}

// mustOp builds operations for gate-internal decompositions, which are
// correct by construction.
func mustOp(g Gate, qubits ...Qubit) Operation {
	op, err := NewOperation(g, qubits...)
	if err != nil {
		panic(err)
	}
	return op
}

func (o Operation) String() string {
	names := make([]string, len(o.Qubits))
	for i, q := range o.Qubits {
		names[i] = q.String()
	}
	return fmt.Sprintf("%s(%s)", o.Gate, strings.Join(names, ", "))
}
