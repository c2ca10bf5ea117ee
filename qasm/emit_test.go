//go:build unit
// +build unit

package qasm

import (
	"testing"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/qrane-team/qrane-engine/circuit"
	"github.com/qrane-team/qrane-engine/gate"
	"github.com/stretchr/testify/assert"
)

func TestEmitBellPair(t *testing.T) {
	q0 := gate.LineQubit(0)
	q1 := gate.LineQubit(1)
	h, err := gate.NewOperation(gate.H, q0)
	assert.Nil(t, err)
	cnot, err := gate.NewOperation(gate.CNOT, q0, q1)
	assert.Nil(t, err)
	m, err := gate.Measure([]gate.Qubit{q0, q1})
	assert.Nil(t, err)

	got, err := Emit(circuit.New(h, cnot, m))
	assert.Nil(t, err)
	assert.Equal(t, heredoc.Doc(`
		OPENQASM 3;
		qubit[2] q;
		bit[2] c;

		h q[0];
		cx q[0], q[1];

		c[0] = measure q[0];
		c[1] = measure q[1];
	`), got)
}

func TestEmitRotationGates(t *testing.T) {
	q0 := gate.LineQubit(0)
	tests := []struct {
		name string
		gate gate.Gate
		want string
	}{
		{"x", gate.X, "x q[0];"},
		{"rx", gate.X.RaiseToPower(0.5), "rx(pi*0.5) q[0];"},
		{"y", gate.Y, "y q[0];"},
		{"z", gate.Z, "z q[0];"},
		{"s", gate.S, "s q[0];"},
		{"sdg", gate.S.RaiseToPower(-1), "sdg q[0];"},
		{"t", gate.T, "t q[0];"},
		{"tdg", gate.T.RaiseToPower(-1), "tdg q[0];"},
		{"rz", gate.Z.RaiseToPower(0.75), "rz(pi*0.75) q[0];"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, err := gate.NewOperation(tt.gate, q0)
			assert.Nil(t, err)
			got, err := Emit(circuit.New(op))
			assert.Nil(t, err)
			assert.Contains(t, got, tt.want)
		})
	}
}

func TestEmitTwoQubitGates(t *testing.T) {
	q0 := gate.LineQubit(0)
	q1 := gate.LineQubit(1)

	cz, err := gate.NewOperation(gate.CZ, q0, q1)
	assert.Nil(t, err)
	swap, err := gate.NewOperation(gate.SWAP, q0, q1)
	assert.Nil(t, err)
	cp, err := gate.NewOperation(gate.CZ.RaiseToPower(0.5), q0, q1)
	assert.Nil(t, err)

	got, err := Emit(circuit.New(cz, swap, cp))
	assert.Nil(t, err)
	assert.Contains(t, got, "cz q[0], q[1];")
	assert.Contains(t, got, "swap q[0], q[1];")
	assert.Contains(t, got, "cp(pi*0.5) q[0], q[1];")
}

func TestEmitInvertMask(t *testing.T) {
	q0 := gate.LineQubit(0)
	q1 := gate.LineQubit(1)
	m, err := gate.Measure([]gate.Qubit{q0, q1}, gate.WithInvertMask(true, false))
	assert.Nil(t, err)

	got, err := Emit(circuit.New(m))
	assert.Nil(t, err)
	assert.Equal(t, heredoc.Doc(`
		OPENQASM 3;
		qubit[2] q;
		bit[2] c;

		x q[0];
		c[0] = measure q[0];
		c[1] = measure q[1];
	`), got)
}

func TestEmitRejectsSymbolic(t *testing.T) {
	q0 := gate.LineQubit(0)
	op, err := gate.NewOperation(gate.RotXPow(gate.Param("t")), q0)
	assert.Nil(t, err)

	_, err = Emit(circuit.New(op))
	assert.Error(t, err)
}

func TestEmitRejectsFractionalCNot(t *testing.T) {
	q0 := gate.LineQubit(0)
	q1 := gate.LineQubit(1)
	op, err := gate.NewOperation(gate.CNOT.RaiseToPower(0.5), q0, q1)
	assert.Nil(t, err)

	_, err = Emit(circuit.New(op))
	assert.Error(t, err)
}

func TestEmitEmptyCircuit(t *testing.T) {
	_, err := Emit(circuit.New())
	assert.Error(t, err)
}
