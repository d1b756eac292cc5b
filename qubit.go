package qreg

/*
Qubit is a handle on one position of a State. It holds no amplitudes of its
own; every call is routed to the register it came from.
*/
type Qubit struct {
	index int
	state *State
}

func (q *Qubit) Index() int {
	return q.index
}

func (q *Qubit) State() *State {
	return q.state
}

// ApplyOperation applies op to this qubit's position in the register.
func (q *Qubit) ApplyOperation(op Operation) error {
	return q.state.ApplyOperation(op, q.index)
}

// Measure performs a projective Z measurement of this qubit alone.
func (q *Qubit) Measure() (Measurement, error) {
	return q.state.MeasureOne(q.index)
}
