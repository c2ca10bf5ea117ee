//go:build unit
// +build unit

package circuit

import (
	"testing"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/qrane-team/qrane-engine/gate"
	"github.com/stretchr/testify/assert"
)

func bellPair(t *testing.T) *Circuit {
	t.Helper()
	q0 := gate.LineQubit(0)
	q1 := gate.LineQubit(1)

	h, err := gate.NewOperation(gate.H, q0)
	assert.Nil(t, err)
	cnot, err := gate.NewOperation(gate.CNOT, q0, q1)
	assert.Nil(t, err)
	m, err := gate.Measure([]gate.Qubit{q0, q1})
	assert.Nil(t, err)

	return New(h, cnot, m)
}

func TestQubits(t *testing.T) {
	c := bellPair(t)
	assert.Equal(t, []gate.Qubit{gate.LineQubit(0), gate.LineQubit(1)}, c.Qubits())
	assert.Equal(t, 2, c.NumQubits())
}

func TestValidate(t *testing.T) {
	c := bellPair(t)
	assert.Nil(t, c.Validate())

	bad := New(gate.Operation{Gate: gate.CNOT, Qubits: []gate.Qubit{gate.LineQubit(0)}})
	assert.Error(t, bad.Validate())
}

func TestDiagramBellPair(t *testing.T) {
	c := bellPair(t)
	want := heredoc.Doc(`
		q0: ───H───@───M───
		q1: ───────X───M───
	`)
	assert.Equal(t, want, c.Diagram(gate.DefaultDiagramArgs()))
}

func TestDiagramExponentAnnotation(t *testing.T) {
	q0 := gate.LineQubit(0)
	op, err := gate.NewOperation(gate.X.RaiseToPower(0.75), q0)
	assert.Nil(t, err)
	c := New(op)

	want := heredoc.Doc(`
		q0: ───X^0.75───
	`)
	assert.Equal(t, want, c.Diagram(gate.DefaultDiagramArgs()))
}

func TestDiagramSpecialSymbols(t *testing.T) {
	q0 := gate.LineQubit(0)
	s, err := gate.NewOperation(gate.S, q0)
	assert.Nil(t, err)
	tt, err := gate.NewOperation(gate.T, q0)
	assert.Nil(t, err)
	c := New(s, tt)

	want := heredoc.Doc(`
		q0: ───S───T───
	`)
	assert.Equal(t, want, c.Diagram(gate.DefaultDiagramArgs()))
}

func TestDiagramASCII(t *testing.T) {
	q0 := gate.LineQubit(0)
	q1 := gate.LineQubit(1)
	op, err := gate.NewOperation(gate.SWAP, q0, q1)
	assert.Nil(t, err)
	c := New(op)

	args := gate.DefaultDiagramArgs()
	args.UseUnicode = false
	want := heredoc.Doc(`
		q0: ---swap---
		q1: ---swap---
	`)
	assert.Equal(t, want, c.Diagram(args))
}
