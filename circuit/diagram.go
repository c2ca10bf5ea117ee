package circuit

import (
	"fmt"
	"strings"

	"github.com/qrane-team/qrane-engine/gate"
)

// Diagram renders the circuit as a text wire diagram, one row per qubit.
// Gates implementing gate.TextDiagrammable draw their wire symbols; other
// gates fall back to their String form on every wire they occupy. An
// exponent annotation is appended to the last wire symbol unless it is "1".
func (c *Circuit) Diagram(args gate.DiagramArgs) string {
	qubits := c.Qubits()
	if len(qubits) == 0 {
		return ""
	}
	row := make(map[string]int, len(qubits))
	for i, q := range qubits {
		row[q.String()] = i
	}

	dash := "─"
	if !args.UseUnicode {
		dash = "-"
	}
	sep := strings.Repeat(dash, 3)

	prefixes := make([]string, len(qubits))
	prefixWidth := 0
	for i, q := range qubits {
		prefixes[i] = fmt.Sprintf("%s: ", q)
		if w := len([]rune(prefixes[i])); w > prefixWidth {
			prefixWidth = w
		}
	}

	lines := make([]string, len(qubits))
	for i := range lines {
		lines[i] = prefixes[i] + strings.Repeat(" ", prefixWidth-len([]rune(prefixes[i]))) + sep
	}

	for _, op := range c.ops {
		cells := opCells(op, args)
		width := 0
		for _, cell := range cells {
			if w := len([]rune(cell)); w > width {
				width = w
			}
		}
		occupied := make(map[int]string, len(op.Qubits))
		for i, q := range op.Qubits {
			occupied[row[q.String()]] = cells[i]
		}
		for i := range lines {
			cell, ok := occupied[i]
			if !ok {
				cell = ""
			}
			pad := width - len([]rune(cell))
			lines[i] += cell + strings.Repeat(dash, pad) + sep
		}
	}
	return strings.Join(lines, "\n") + "\n"
}

func (c *Circuit) String() string {
	return c.Diagram(gate.DefaultDiagramArgs())
}

func opCells(op gate.Operation, args gate.DiagramArgs) []string {
	td, ok := op.Gate.(gate.TextDiagrammable)
	if !ok {
		cells := make([]string, len(op.Qubits))
		for i := range cells {
			cells[i] = op.Gate.String()
		}
		return cells
	}
	gateArgs := args
	gateArgs.QubitCount = len(op.Qubits)
	cells := td.WireSymbols(gateArgs)
	// tolerate single-symbol gates stretched over several wires
	for len(cells) < len(op.Qubits) {
		cells = append(cells, cells[len(cells)-1])
	}
	cells = append([]string(nil), cells...)
	if e := td.DiagramExponent(gateArgs); e != "1" {
		cells[len(cells)-1] += "^" + e
	}
	return cells
}
