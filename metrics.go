package qreg

import (
	"sync"
	"time"
)

/*
Metrics counts what registers do. A single Metrics can be shared by many
registers through WithMetrics, so all access goes through the mutex.
*/
type Metrics struct {
	mu sync.RWMutex

	Allocations       int64
	Operations        int64
	FullMeasurements  int64
	QubitMeasurements int64
	DegenerateErrors  int64

	// Outcomes counts full-register measurement results by bitstring.
	Outcomes map[string]int64

	// Per-qubit single measurement results, indexed by qubit.
	QubitZeros []int64
	QubitOnes  []int64

	TotalOperationTime   time.Duration
	AverageOperationTime time.Duration
	MaxDimension         int
}

func NewMetrics() *Metrics {
	return &Metrics{
		Outcomes: make(map[string]int64),
	}
}

func (m *Metrics) recordAllocation(dimension int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Allocations++
	if dimension > m.MaxDimension {
		m.MaxDimension = dimension
	}
}

func (m *Metrics) recordOperation(startTime time.Time) {
	duration := time.Since(startTime)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.Operations++
	m.TotalOperationTime += duration
	m.AverageOperationTime = m.TotalOperationTime / time.Duration(m.Operations)
}

func (m *Metrics) recordFullMeasurement(outcomes []Measurement) {
	key := Bitstring(outcomes)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.FullMeasurements++
	m.Outcomes[key]++
}

func (m *Metrics) recordQubitMeasurement(idx int, outcome Measurement) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for len(m.QubitZeros) <= idx {
		m.QubitZeros = append(m.QubitZeros, 0)
		m.QubitOnes = append(m.QubitOnes, 0)
	}

	m.QubitMeasurements++
	if outcome == One {
		m.QubitOnes[idx]++
	} else {
		m.QubitZeros[idx]++
	}
}

func (m *Metrics) recordDegenerate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DegenerateErrors++
}

// OutcomeCount returns how often key was the result of a full measurement.
func (m *Metrics) OutcomeCount(key string) int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.Outcomes[key]
}

// ExportMetrics returns a snapshot suitable for logging or serialization.
func (m *Metrics) ExportMetrics() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	outcomes := make(map[string]int64, len(m.Outcomes))
	for k, v := range m.Outcomes {
		outcomes[k] = v
	}

	return map[string]interface{}{
		"allocations":        m.Allocations,
		"operations":         m.Operations,
		"full_measurements":  m.FullMeasurements,
		"qubit_measurements": m.QubitMeasurements,
		"degenerate_errors":  m.DegenerateErrors,
		"avg_operation_us":   m.AverageOperationTime.Microseconds(),
		"max_dimension":      m.MaxDimension,
		"outcomes":           outcomes,
	}
}
