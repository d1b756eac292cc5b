package qreg

/*
Tolerance is the zero threshold used for every numerical comparison in the
package: unitarity checks, norm checks and degenerate distribution detection.
*/
const Tolerance = 1e-10

// Measurement is the outcome of measuring a single qubit in the Z basis.
type Measurement uint8

const (
	Zero Measurement = 0
	One  Measurement = 1
)

// MeasurementFromBool maps true to One and false to Zero.
func MeasurementFromBool(value bool) Measurement {
	if value {
		return One
	}
	return Zero
}

func (m Measurement) String() string {
	if m == One {
		return "1"
	}
	return "0"
}

// Bool reports whether the outcome is One.
func (m Measurement) Bool() bool {
	return m == One
}

// Bit is a classical bit value, 0 or 1, used by the basis vector builders.
type Bit = Measurement

/*
Bitstring renders outcomes with qubit 0 first, the key format used by
Histogram.
*/
func Bitstring(outcomes []Measurement) string {
	buf := make([]byte, len(outcomes))
	for i, m := range outcomes {
		buf[i] = '0' + byte(m)
	}
	return string(buf)
}
