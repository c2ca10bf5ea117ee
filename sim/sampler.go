package sim

import (
	"fmt"
	"math/cmplx"
	"math/rand"
	"time"

	"github.com/qrane-team/qrane-engine/circuit"
	"github.com/qrane-team/qrane-engine/core"
	"github.com/qrane-team/qrane-engine/gate"
	"go.uber.org/zap"
)

// SamplerSetting is the sampler's entry in the component setting file.
type SamplerSetting struct {
	Shots int   `toml:"shots"`
	Seed  int64 `toml:"seed"`
}

func NewSamplerSetting() SamplerSetting {
	d := core.DefaultSamplerConfig()
	return SamplerSetting{Shots: d.Shots, Seed: d.Seed}
}

// Sampler draws measurement outcomes from the final statevector of a
// circuit. A zero seed derives one from the wall clock; any other seed makes
// runs reproducible.
type Sampler struct {
	shots int
	rng   *rand.Rand
}

func NewSampler(shots int, seed int64) (*Sampler, error) {
	if shots <= 0 {
		return nil, fmt.Errorf("shots(%d) must be greater than 0", shots)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Sampler{
		shots: shots,
		rng:   rand.New(rand.NewSource(seed)),
	}, nil
}

func (s *Sampler) Shots() int { return s.shots }

type measurement struct {
	key       string
	positions []int
	mask      []bool
}

// Run simulates the circuit and returns per-key counts. Measurement gates
// must be terminal on their qubits: once measured, a qubit may not be
// touched again.
func (s *Sampler) Run(c *circuit.Circuit) (core.Measurements, error) {
	qubits := c.Qubits()
	n := len(qubits)
	state, err := NewState(n)
	if err != nil {
		return nil, err
	}
	pos := qubitPositions(qubits)

	var measurements []measurement
	seenKeys := make(map[string]struct{})
	measured := make(map[string]struct{})

	for _, op := range c.Operations() {
		m, isMeasurement := op.Gate.(gate.MeasurementGate)
		for _, q := range op.Qubits {
			if _, done := measured[q.String()]; done {
				return nil, fmt.Errorf("operation %s touches already measured qubit %s", op, q)
			}
		}
		if !isMeasurement {
			if err := state.applyOperation(op, pos); err != nil {
				return nil, err
			}
			continue
		}
		if _, dup := seenKeys[m.Key]; dup {
			return nil, fmt.Errorf("duplicate measurement key %q", m.Key)
		}
		seenKeys[m.Key] = struct{}{}
		positions := make([]int, len(op.Qubits))
		for i, q := range op.Qubits {
			positions[i] = pos[q.String()]
			measured[q.String()] = struct{}{}
		}
		measurements = append(measurements, measurement{
			key:       m.Key,
			positions: positions,
			mask:      m.InvertMask,
		})
	}
	if len(measurements) == 0 {
		return nil, fmt.Errorf("circuit has no measurements to sample")
	}

	probs := make([]float64, len(state.Amplitudes()))
	for i, a := range state.Amplitudes() {
		probs[i] = cmplx.Abs(a) * cmplx.Abs(a)
	}

	out := make(core.Measurements, len(measurements))
	for _, m := range measurements {
		out[m.key] = make(core.Counts)
	}
	for shot := 0; shot < s.shots; shot++ {
		idx := s.sampleIndex(probs)
		for _, m := range measurements {
			out[m.key][m.bitString(idx, n)]++
		}
	}
	zap.L().Debug(fmt.Sprintf("sampled %d shots over %d qubits and %d measurement keys",
		s.shots, n, len(measurements)))
	return out, nil
}

func (s *Sampler) sampleIndex(probs []float64) int {
	r := s.rng.Float64()
	acc := 0.0
	for i, p := range probs {
		acc += p
		if r < acc {
			return i
		}
	}
	return len(probs) - 1
}

func (m measurement) bitString(idx, numQubits int) string {
	bits := make([]byte, len(m.positions))
	for i, p := range m.positions {
		b := byte((idx >> (numQubits - 1 - p)) & 1)
		if i < len(m.mask) && m.mask[i] {
			b ^= 1
		}
		bits[i] = '0' + b
	}
	return string(bits)
}
