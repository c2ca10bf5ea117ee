//go:build unit
// +build unit

package gate

import (
	"fmt"
	"testing"

	"github.com/qrane-team/qrane-engine/linalg"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

const tol = 1e-8

func allEigenGates(halfTurns float64) []EigenGate {
	e := HalfTurns(halfTurns)
	return []EigenGate{
		RotXPow(e),
		RotYPow(e),
		RotZPow(e),
		Rot11Pow(e),
		CNotPow(e),
	}
}

func TestEigenGateMatrixIsUnitary(t *testing.T) {
	for _, halfTurns := range []float64{-1.5, -1, -0.25, 0, 0.25, 0.5, 1, 1.75, 3} {
		for _, g := range allEigenGates(halfTurns) {
			t.Run(fmt.Sprintf("%s/halfTurns=%g", g, halfTurns), func(t *testing.T) {
				m, err := g.(KnownMatrix).Matrix()
				assert.Nil(t, err)
				assert.True(t, linalg.IsUnitary(m, tol))
			})
		}
	}
}

func TestEigenComponentsAreProjectorDecomposition(t *testing.T) {
	for _, g := range allEigenGates(1) {
		t.Run(g.String(), func(t *testing.T) {
			comps := g.EigenComponents()
			dim, _ := comps[0].Projector.Dims()
			sum := linalg.Zero(dim)
			for i, c := range comps {
				// idempotent
				assert.True(t, linalg.EqualApprox(
					linalg.Mul(c.Projector, c.Projector), c.Projector, tol))
				// mutually orthogonal
				for j, o := range comps {
					if i == j {
						continue
					}
					assert.True(t, linalg.EqualApprox(
						linalg.Mul(c.Projector, o.Projector), linalg.Zero(dim), tol))
				}
				linalg.AddScaled(sum, 1, c.Projector)
			}
			// jointly sum to identity
			assert.True(t, linalg.EqualApprox(sum, linalg.Identity(dim), tol))
		})
	}
}

func TestKnownMatrixValues(t *testing.T) {
	tests := []struct {
		name string
		gate KnownMatrix
		want *mat.CDense
	}{
		{
			name: "X",
			gate: X,
			want: linalg.Square(2, []complex128{0, 1, 1, 0}),
		},
		{
			name: "Y",
			gate: Y,
			want: linalg.Square(2, []complex128{0, -1i, 1i, 0}),
		},
		{
			name: "Z",
			gate: Z,
			want: linalg.Diag(1, -1),
		},
		{
			name: "CZ",
			gate: CZ,
			want: linalg.Diag(1, 1, 1, -1),
		},
		{
			name: "CNOT",
			gate: CNOT,
			want: linalg.Square(4, []complex128{
				1, 0, 0, 0,
				0, 1, 0, 0,
				0, 0, 0, 1,
				0, 0, 1, 0,
			}),
		},
		{
			name: "SWAP",
			gate: SWAP,
			want: linalg.Square(4, []complex128{
				1, 0, 0, 0,
				0, 0, 1, 0,
				0, 1, 0, 0,
				0, 0, 0, 1,
			}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := tt.gate.Matrix()
			assert.Nil(t, err)
			assert.True(t, linalg.EqualApprox(m, tt.want, tol))
		})
	}
}

func TestExponentCanonicalizationRoundTrip(t *testing.T) {
	for _, e := range []float64{-2, -1, -0.75, 0, 0.25, 0.5, 1, 1.5, 2, 7.25} {
		t.Run(fmt.Sprintf("halfTurns=%g", e), func(t *testing.T) {
			assert.Equal(t, X.RaiseToPower(e), X.RaiseToPower(e+2))
			assert.Equal(t, Y.RaiseToPower(e), Y.RaiseToPower(e+2))
			assert.Equal(t, Z.RaiseToPower(e), Z.RaiseToPower(e+2))
			assert.Equal(t, CZ.RaiseToPower(e), CZ.RaiseToPower(e+2))
			assert.Equal(t, CNOT.RaiseToPower(e), CNOT.RaiseToPower(e+2))
		})
	}
}

func TestCanonicalExponentRange(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{-1, 1}, // Z**-1 == Z
		{1.5, -0.5},
		{2, 0},
		{-0.25, -0.25},
		{3, 1},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("in=%g", tt.in), func(t *testing.T) {
			v, ok := RotZPow(HalfTurns(tt.in)).Exponent().Value()
			assert.True(t, ok)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestGateEquality(t *testing.T) {
	assert.Equal(t, CZ, Rot11Pow(HalfTurns(1)))
	assert.Equal(t, CNOT, CNOT.RaiseToPower(1))
	assert.Equal(t, Z, Z.RaiseToPower(3))
	assert.NotEqual(t, Z, S)

	// comparable values hash consistently with ==
	counts := map[RotZGate]int{}
	counts[Z]++
	counts[RotZPow(HalfTurns(-1))]++
	counts[S]++
	assert.Equal(t, 2, counts[Z])
	assert.Equal(t, 1, counts[S])
}

func TestGateString(t *testing.T) {
	tests := []struct {
		gate Gate
		want string
	}{
		{CZ, "CZ"},
		{CZ.RaiseToPower(0.5), "CZ**0.5"},
		{CNOT, "CNOT"},
		{CNOT.RaiseToPower(0.5), "CNOT**0.5"},
		{X, "X"},
		{X.RaiseToPower(0.5), "X**0.5"},
		{Y, "Y"},
		{Z, "Z"},
		{S, "S"},
		{T, "T"},
		{Z.RaiseToPower(-0.5), "Z**-0.5"},
		{H, "H"},
		{SWAP, "SWAP"},
		{RotZPow(Param("t")), "Z**t"},
		{RotZPow(Param("t")).RaiseToPower(0.5), "Z**t*0.5"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.gate.String())
		})
	}
}

func TestRotZWireSymbols(t *testing.T) {
	args := DefaultDiagramArgs()
	tests := []struct {
		halfTurns    float64
		wantSymbols  []string
		wantExponent string
	}{
		{0.25, []string{"T"}, "1"},
		{-0.25, []string{"T"}, "-1"},
		{0.5, []string{"S"}, "1"},
		{-0.5, []string{"S"}, "-1"},
		{1, []string{"Z"}, "1"},
		{0.75, []string{"Z"}, "0.75"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("halfTurns=%g", tt.halfTurns), func(t *testing.T) {
			g := RotZPow(HalfTurns(tt.halfTurns))
			assert.Equal(t, tt.wantSymbols, g.WireSymbols(args))
			assert.Equal(t, tt.wantExponent, g.DiagramExponent(args))
		})
	}
}

func TestTwoQubitWireSymbols(t *testing.T) {
	args := DefaultDiagramArgs()
	assert.Equal(t, []string{"@", "Z"}, CZ.WireSymbols(args))
	assert.Equal(t, []string{"@", "X"}, CNOT.WireSymbols(args))
	assert.Equal(t, []string{"×", "×"}, SWAP.WireSymbols(args))

	args.UseUnicode = false
	assert.Equal(t, []string{"swap", "swap"}, SWAP.WireSymbols(args))
}

func TestSymbolicExponentDefersArithmetic(t *testing.T) {
	g := RotXPow(Param("t"))
	assert.True(t, g.Exponent().Symbolic())

	powered := g.RaiseToPower(0.5)
	assert.True(t, powered.Exponent().Symbolic())
	assert.Equal(t, "t*0.5", powered.Exponent().String())

	_, err := powered.Matrix()
	assert.Error(t, err)

	resolved := powered.Exponent().Resolve(1)
	v, ok := resolved.Value()
	assert.True(t, ok)
	assert.Equal(t, 0.5, v)
}

func TestCapabilityInterfaces(t *testing.T) {
	var g Gate = H
	_, composite := g.(Composite)
	_, knownMatrix := g.(KnownMatrix)
	si, selfInverse := g.(SelfInverse)
	assert.True(t, composite)
	assert.True(t, knownMatrix)
	assert.True(t, selfInverse)
	assert.True(t, si.SelfInverse())

	var cz Gate = CZ
	iq, ok := cz.(InterchangeableQubits)
	assert.True(t, ok)
	assert.True(t, iq.QubitsInterchangeable())

	var cnot Gate = CNOT
	_, ok = cnot.(InterchangeableQubits)
	assert.False(t, ok)
}
