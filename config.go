package qreg

import (
	"runtime"
	"time"

	"golang.org/x/exp/rand"
)

type Config struct {
	// Source drives every measurement of a single register. Nil means a
	// source seeded from Seed. RunShots ignores it and seeds each shot from
	// Seed instead.
	Source rand.Source
	Seed   uint64

	// NormTolerance bounds the acceptable deviation from unit norm when a
	// register checks its own vector.
	NormTolerance float64

	// InitialValue is the basis state a freshly allocated qubit starts in.
	InitialValue Measurement

	// Workers bounds the goroutines RunShots uses.
	Workers int

	// Metrics, when set, is shared instead of allocating one per register.
	Metrics *Metrics
}

func NewConfig() *Config {
	return &Config{
		Seed:          uint64(time.Now().UnixNano()),
		NormTolerance: 1e-9,
		InitialValue:  Zero,
		Workers:       runtime.NumCPU(),
	}
}

// Option configures a register or a shot run.
type Option func(*Config)

// WithSource makes measurements draw from src.
func WithSource(src rand.Source) Option {
	return func(c *Config) {
		c.Source = src
	}
}

// WithSeed seeds the default source, making runs reproducible.
func WithSeed(seed uint64) Option {
	return func(c *Config) {
		c.Seed = seed
	}
}

func WithNormTolerance(tol float64) Option {
	return func(c *Config) {
		c.NormTolerance = tol
	}
}

/*
WithInitialValue sets the value new qubits are allocated in. Zero is the
conventional choice; One reproduces registers that start every qubit in |1⟩.
*/
func WithInitialValue(m Measurement) Option {
	return func(c *Config) {
		c.InitialValue = m
	}
}

func WithWorkers(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.Workers = n
		}
	}
}

func WithMetrics(m *Metrics) Option {
	return func(c *Config) {
		c.Metrics = m
	}
}

func buildConfig(options []Option) *Config {
	config := NewConfig()
	for _, option := range options {
		option(config)
	}
	return config
}

func (c *Config) source() rand.Source {
	if c.Source != nil {
		return c.Source
	}
	return rand.NewSource(c.Seed)
}
