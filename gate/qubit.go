package gate

import (
	"fmt"
	"sort"
)

// Qubit identifies a qubit a gate is applied to. The String form is load
// bearing: default measurement keys are derived from it.
type Qubit interface {
	fmt.Stringer
}

// LineQubit is a qubit on a 1D line, identified by its index.
type LineQubit int

func (q LineQubit) String() string {
	return fmt.Sprintf("q%d", int(q))
}

// LineQubitRange returns the qubits q0..q(n-1).
func LineQubitRange(n int) []Qubit {
	qs := make([]Qubit, n)
	for i := range qs {
		qs[i] = LineQubit(i)
	}
	return qs
}

// SortQubits orders qubits deterministically: LineQubits numerically, then
// everything else by its String form.
func SortQubits(qubits []Qubit) {
	sort.Slice(qubits, func(i, j int) bool {
		li, iok := qubits[i].(LineQubit)
		lj, jok := qubits[j].(LineQubit)
		if iok && jok {
			return li < lj
		}
		if iok != jok {
			return iok
		}
		return qubits[i].String() < qubits[j].String()
	})
}
