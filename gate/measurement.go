package gate

import (
	"fmt"
	"strings"
)

// MeasurementGate indicates that qubits should be measured, plus a key to
// identify the results. An optional invert mask flips the corresponding
// measured bits.
type MeasurementGate struct {
	Key        string
	InvertMask []bool
}

// QubitCount is negative: a single measurement gate may cover any number of
// qubits.
func (m MeasurementGate) QubitCount() int { return -1 }

// ValidateArgs fails when the invert mask is longer than the measured qubit
// list.
func (m MeasurementGate) ValidateArgs(qubits []Qubit) error {
	if m.InvertMask != nil && len(m.InvertMask) > len(qubits) {
		return fmt.Errorf("len(invert_mask)=%d > len(qubits)=%d",
			len(m.InvertMask), len(qubits))
	}
	return nil
}

// OnEach returns one operation per target, each measuring that single qubit
// under this gate's key and mask.
func (m MeasurementGate) OnEach(targets ...Qubit) ([]Operation, error) {
	ops := make([]Operation, 0, len(targets))
	for _, t := range targets {
		op, err := NewOperation(m, t)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// Equal compares structurally over (key, invert mask).
func (m MeasurementGate) Equal(o MeasurementGate) bool {
	if m.Key != o.Key || len(m.InvertMask) != len(o.InvertMask) {
		return false
	}
	for i, b := range m.InvertMask {
		if o.InvertMask[i] != b {
			return false
		}
	}
	return true
}

func (m MeasurementGate) WireSymbols(args DiagramArgs) []string {
	n := args.QubitCount
	if n < 1 {
		n = 1
	}
	symbols := make([]string, n)
	for i := range symbols {
		symbols[i] = "M"
	}
	return symbols
}

func (m MeasurementGate) DiagramExponent(args DiagramArgs) string { return "1" }

func (m MeasurementGate) String() string {
	return fmt.Sprintf("MeasurementGate(%q, %v)", m.Key, m.InvertMask)
}

// MeasureOption configures Measure.
type MeasureOption func(*MeasurementGate)

// WithKey sets the measurement result key.
func WithKey(key string) MeasureOption {
	return func(m *MeasurementGate) { m.Key = key }
}

// WithInvertMask flips the measured bit of each qubit whose mask entry is
// true.
func WithInvertMask(mask ...bool) MeasureOption {
	return func(m *MeasurementGate) { m.InvertMask = mask }
}

// Measure returns a single measurement covering all the given qubits. When
// no key is supplied the key is the comma-joined String forms of the qubits;
// downstream result lookups depend on that exact derivation.
func Measure(qubits []Qubit, opts ...MeasureOption) (Operation, error) {
	m := MeasurementGate{}
	for _, opt := range opts {
		opt(&m)
	}
	if m.Key == "" {
		names := make([]string, len(qubits))
		for i, q := range qubits {
			names[i] = q.String()
		}
		m.Key = strings.Join(names, ",")
	}
	return NewOperation(m, qubits...)
}

// MeasureEach returns one independently keyed measurement per qubit. keyFunc
// derives each key; nil means the qubit's String form.
func MeasureEach(qubits []Qubit, keyFunc func(Qubit) string) ([]Operation, error) {
	if keyFunc == nil {
		keyFunc = func(q Qubit) string { return q.String() }
	}
	ops := make([]Operation, 0, len(qubits))
	for _, q := range qubits {
		op, err := NewOperation(MeasurementGate{Key: keyFunc(q)}, q)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}
