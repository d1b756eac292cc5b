package qreg

import "errors"

var (
	ErrNotUnitary             = errors.New("matrix is not a 2x2 unitary")
	ErrQubitOutOfRange        = errors.New("qubit index out of range")
	ErrDegenerateDistribution = errors.New("degenerate measurement distribution")
	ErrInvalidPermutation     = errors.New("invalid permutation")
	ErrDimensionMismatch      = errors.New("vector dimension does not match register")
	ErrInvalidShots           = errors.New("shot count must not be negative")
)
