package qreg

import (
	"fmt"
	"math"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"
	"github.com/theapemachine/errnie"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
	"gonum.org/v1/gonum/stat/sampleuv"
)

/*
State is a register of qubits stored as one dense amplitude vector of length
2^n. Amplitude i belongs to the basis state in which qubit j has the value of
bit j of i.

A State is not safe for concurrent use. Handles obtained from Qubit share the
register and every mutation goes through its methods.
*/
type State struct {
	id         string
	amplitudes []complex128
	size       int
	src        rand.Source
	config     *Config
	metrics    *Metrics
}

// NewState returns an empty register holding the scalar amplitude 1.
func NewState(options ...Option) *State {
	config := buildConfig(options)

	metrics := config.Metrics
	if metrics == nil {
		metrics = NewMetrics()
	}

	s := &State{
		id:         uuid.New().String(),
		amplitudes: []complex128{1},
		src:        config.source(),
		config:     config,
		metrics:    metrics,
	}

	errnie.Debug("NewState - id %s, initial value %v", s.id, config.InitialValue)
	return s
}

func (s *State) ID() string {
	return s.id
}

// Size returns the number of allocated qubits.
func (s *State) Size() int {
	return s.size
}

func (s *State) Metrics() *Metrics {
	return s.metrics
}

// Amplitudes returns a copy of the amplitude vector.
func (s *State) Amplitudes() []complex128 {
	out := make([]complex128, len(s.amplitudes))
	copy(out, s.amplitudes)
	return out
}

// Probabilities returns |a_i|² for every basis index i.
func (s *State) Probabilities() []float64 {
	out := make([]float64, len(s.amplitudes))
	for i, a := range s.amplitudes {
		out[i] = normSqr(a)
	}
	return out
}

func (s *State) Norm() float64 {
	return norm(s.amplitudes)
}

// IsNormalized reports whether the vector has unit norm within the configured tolerance.
func (s *State) IsNormalized() bool {
	return math.Abs(s.Norm()-1) <= s.config.NormTolerance
}

/*
Overlap returns ⟨ket|ψ⟩ for a vector of the register's dimension, typically
one built with BasisKet.
*/
func (s *State) Overlap(ket []complex128) (complex128, error) {
	if len(ket) != len(s.amplitudes) {
		return 0, fmt.Errorf("%w: got %d, register has %d", ErrDimensionMismatch, len(ket), len(s.amplitudes))
	}

	return cmplxs.Dot(ket, s.amplitudes), nil
}

/*
Qubit allocates a new qubit in the configured initial value and returns its
handle. The new qubit takes the next index, which becomes the most significant
bit of the amplitude index, so the vector becomes b ⊗ ψ.
*/
func (s *State) Qubit() *Qubit {
	idx := s.size

	basis := []complex128{1, 0}
	if s.config.InitialValue == One {
		basis = []complex128{0, 1}
	}

	grown := kronecker(column(basis), column(s.amplitudes)).RawCMatrix()
	s.amplitudes = grown.Data
	s.size++

	s.metrics.recordAllocation(len(s.amplitudes))
	errnie.Debug("Qubit - state %s allocated qubit %d, dimension %d", s.id, idx, len(s.amplitudes))

	return &Qubit{index: idx, state: s}
}

/*
ApplyOperation applies op to qubit idx. The full register operator is the
Kronecker product of op's matrix at position idx with 2×2 identities at every
other position, ordered from the highest qubit down to qubit 0. This costs
O(4^n) time and memory per call.

Operations not built by this package are checked first; a matrix that is not
a 2×2 unitary yields ErrNotUnitary and leaves the register untouched.
*/
func (s *State) ApplyOperation(op Operation, idx int) error {
	if err := s.checkIndex(idx); err != nil {
		return err
	}

	gate := op.Matrix()
	if _, ok := op.(*MatrixOperation); !ok {
		if err := checkUnitary(gate); err != nil {
			return err
		}
	}

	startTime := time.Now()

	full := identity(1)
	id := identity(2)
	for pos := s.size - 1; pos >= 0; pos-- {
		if pos == idx {
			full = kronecker(full, gate)
		} else {
			full = kronecker(full, id)
		}
	}

	s.amplitudes = apply(full, s.amplitudes)
	s.metrics.recordOperation(startTime)

	return nil
}

/*
MeasureAll measures every qubit in the Z basis. A basis index k is drawn with
probability |a_k|², the register collapses onto it, and the outcome for qubit
j is bit j of k.
*/
func (s *State) MeasureAll() ([]Measurement, error) {
	weights := s.Probabilities()

	total := floats.Sum(weights)
	if floats.HasNaN(weights) || math.IsNaN(total) || total <= Tolerance {
		return nil, s.degenerate("MeasureAll", total)
	}

	k, ok := sampleuv.NewWeighted(weights, s.src).Take()
	if !ok {
		return nil, s.degenerate("MeasureAll", total)
	}

	outcomes := make([]Measurement, s.size)
	for j := range outcomes {
		outcomes[j] = Measurement((k >> j) & 1)
	}

	collapsed := make([]complex128, len(s.amplitudes))
	collapsed[k] = 1
	s.amplitudes = collapsed

	s.metrics.recordFullMeasurement(outcomes)
	errnie.Debug("MeasureAll - state %s collapsed to index %d (%s)", s.id, k, Bitstring(outcomes))

	return outcomes, nil
}

/*
MeasureOne measures qubit idx in the Z basis. The probability of Zero is the
total weight of indices whose bit idx is clear; the opposite half of the
vector is zeroed and the rest renormalized, so measuring idx again returns
the same value.
*/
func (s *State) MeasureOne(idx int) (Measurement, error) {
	if err := s.checkIndex(idx); err != nil {
		return Zero, err
	}

	mask := 1 << idx
	var zeroProb, oneProb float64
	for i, a := range s.amplitudes {
		if i&mask == 0 {
			zeroProb += normSqr(a)
		} else {
			oneProb += normSqr(a)
		}
	}

	total := zeroProb + oneProb
	if math.IsNaN(total) || total <= Tolerance {
		return Zero, s.degenerate("MeasureOne", total)
	}

	trial := distuv.Bernoulli{P: math.Min(1, zeroProb/total), Src: s.src}
	outcome := MeasurementFromBool(trial.Rand() == 0)

	collapsed := s.Amplitudes()
	for i := range collapsed {
		if (i&mask != 0) != outcome.Bool() {
			collapsed[i] = 0
		}
	}

	if !normalize(collapsed) {
		return Zero, s.degenerate("MeasureOne", total)
	}
	s.amplitudes = collapsed

	s.metrics.recordQubitMeasurement(idx, outcome)
	errnie.Debug("MeasureOne - state %s qubit %d measured %s (p0=%.6f)", s.id, idx, outcome, zeroProb/total)

	return outcome, nil
}

func (s *State) checkIndex(idx int) error {
	if idx < 0 || idx >= s.size {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrQubitOutOfRange, idx, s.size)
	}
	return nil
}

func (s *State) degenerate(caller string, total float64) error {
	s.metrics.recordDegenerate()
	errnie.Warn("%s - state %s has degenerate distribution (total weight %v)\n%s", caller, s.id, total, spew.Sdump(s.amplitudes))
	return fmt.Errorf("%w: total weight %v", ErrDegenerateDistribution, total)
}
