// Package qasm emits OpenQASM 3 programs from circuits. Gates outside the
// OpenQASM vocabulary must be expanded first (see the compile package).
package qasm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/qrane-team/qrane-engine/circuit"
	"github.com/qrane-team/qrane-engine/gate"
)

// Emit renders the circuit as an OpenQASM 3 program. Qubits map to q[i] in
// the circuit's deterministic qubit order; measured bits map to c[k] in
// measurement order.
func Emit(c *circuit.Circuit) (string, error) {
	qubits := c.Qubits()
	if len(qubits) == 0 {
		return "", fmt.Errorf("cannot emit an empty circuit")
	}
	index := make(map[string]int, len(qubits))
	for i, q := range qubits {
		index[q.String()] = i
	}

	var unitary []string
	var measure []string
	bit := 0
	for _, op := range c.Operations() {
		if m, ok := op.Gate.(gate.MeasurementGate); ok {
			for i, q := range op.Qubits {
				if i < len(m.InvertMask) && m.InvertMask[i] {
					measure = append(measure, fmt.Sprintf("x q[%d];", index[q.String()]))
				}
				measure = append(measure, fmt.Sprintf("c[%d] = measure q[%d];", bit, index[q.String()]))
				bit++
			}
			continue
		}
		stmt, err := gateStatement(op, index)
		if err != nil {
			return "", err
		}
		unitary = append(unitary, stmt)
	}

	var b strings.Builder
	b.WriteString("OPENQASM 3;\n")
	fmt.Fprintf(&b, "qubit[%d] q;\n", len(qubits))
	if bit > 0 {
		fmt.Fprintf(&b, "bit[%d] c;\n", bit)
	}
	if len(unitary) > 0 {
		b.WriteString("\n")
		b.WriteString(strings.Join(unitary, "\n"))
		b.WriteString("\n")
	}
	if len(measure) > 0 {
		b.WriteString("\n")
		b.WriteString(strings.Join(measure, "\n"))
		b.WriteString("\n")
	}
	return b.String(), nil
}

func gateStatement(op gate.Operation, index map[string]int) (string, error) {
	args := make([]string, len(op.Qubits))
	for i, q := range op.Qubits {
		args[i] = fmt.Sprintf("q[%d]", index[q.String()])
	}
	operands := strings.Join(args, ", ")

	switch g := op.Gate.(type) {
	case gate.HGate:
		return fmt.Sprintf("h %s;", operands), nil
	case gate.SwapGate:
		return fmt.Sprintf("swap %s;", operands), nil
	case gate.RotXGate:
		return rotStatement("x", "rx", g.Exponent(), operands)
	case gate.RotYGate:
		return rotStatement("y", "ry", g.Exponent(), operands)
	case gate.RotZGate:
		return zStatement(g.Exponent(), operands)
	case gate.Rot11Gate:
		v, ok := g.Exponent().Value()
		if !ok {
			return "", fmt.Errorf("cannot emit symbolic gate %s", g)
		}
		if v == 1 {
			return fmt.Sprintf("cz %s;", operands), nil
		}
		return fmt.Sprintf("cp(pi*%s) %s;", formatTurns(v), operands), nil
	case gate.CNotGate:
		v, ok := g.Exponent().Value()
		if !ok {
			return "", fmt.Errorf("cannot emit symbolic gate %s", g)
		}
		if v != 1 {
			return "", fmt.Errorf("gate %s has no OpenQASM form, expand it first", g)
		}
		return fmt.Sprintf("cx %s;", operands), nil
	default:
		return "", fmt.Errorf("gate %s has no OpenQASM form, expand it first", op.Gate)
	}
}

func rotStatement(full, rot string, e gate.Exponent, operands string) (string, error) {
	v, ok := e.Value()
	if !ok {
		return "", fmt.Errorf("cannot emit symbolic exponent %s", e)
	}
	if v == 1 {
		return fmt.Sprintf("%s %s;", full, operands), nil
	}
	return fmt.Sprintf("%s(pi*%s) %s;", rot, formatTurns(v), operands), nil
}

func zStatement(e gate.Exponent, operands string) (string, error) {
	v, ok := e.Value()
	if !ok {
		return "", fmt.Errorf("cannot emit symbolic exponent %s", e)
	}
	switch v {
	case 1:
		return fmt.Sprintf("z %s;", operands), nil
	case 0.5:
		return fmt.Sprintf("s %s;", operands), nil
	case -0.5:
		return fmt.Sprintf("sdg %s;", operands), nil
	case 0.25:
		return fmt.Sprintf("t %s;", operands), nil
	case -0.25:
		return fmt.Sprintf("tdg %s;", operands), nil
	default:
		return fmt.Sprintf("rz(pi*%s) %s;", formatTurns(v), operands), nil
	}
}

func formatTurns(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
