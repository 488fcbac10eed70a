package models

// Table is the column-oriented form of the trajectory log.
// All six slices always have the same length and keep file order.
type Table struct {
	T     []float64
	X     []float64
	Y     []float64
	XRef  []float64
	YRef  []float64
	Theta []float64
}

// NewTable returns an empty table with room for n rows.
func NewTable(n int) *Table {
	return &Table{
		T:     make([]float64, 0, n),
		X:     make([]float64, 0, n),
		Y:     make([]float64, 0, n),
		XRef:  make([]float64, 0, n),
		YRef:  make([]float64, 0, n),
		Theta: make([]float64, 0, n),
	}
}

// Append adds one sample at the end of every column.
func (t *Table) Append(s Sample) {
	t.T = append(t.T, s.T)
	t.X = append(t.X, s.X)
	t.Y = append(t.Y, s.Y)
	t.XRef = append(t.XRef, s.XRef)
	t.YRef = append(t.YRef, s.YRef)
	t.Theta = append(t.Theta, s.Theta)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.T)
}

// Sample returns row i as a Sample.
func (t *Table) Sample(i int) Sample {
	return Sample{
		T:     t.T[i],
		X:     t.X[i],
		Y:     t.Y[i],
		XRef:  t.XRef[i],
		YRef:  t.YRef[i],
		Theta: t.Theta[i],
	}
}
