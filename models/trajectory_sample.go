package models

// Column names written by the simulator's logger thread.
const (
	ColTime  = "t"
	ColX     = "y1" // realized X (m)
	ColY     = "y2" // realized Y (m)
	ColXRef  = "xref"
	ColYRef  = "yref"
	ColTheta = "x3" // heading (rad)
)

// RequiredColumns lists every column the report reads, in Sample field order.
var RequiredColumns = []string{ColTime, ColX, ColY, ColXRef, ColYRef, ColTheta}

// Sample is one row of the trajectory log.
type Sample struct {
	T     float64 `json:"t"`    // seconds since start of simulation
	X     float64 `json:"y1"`   // realized position, metres
	Y     float64 `json:"y2"`   // realized position, metres
	XRef  float64 `json:"xref"` // reference position, metres
	YRef  float64 `json:"yref"` // reference position, metres
	Theta float64 `json:"x3"`   // heading angle, radians
}

// CSVHeader returns the required columns in the simulator's naming.
func (Sample) CSVHeader() []string {
	return []string{ColTime, ColX, ColY, ColXRef, ColYRef, ColTheta}
}

// CSVRow serialises the sample in CSVHeader order.
func (s *Sample) CSVRow() []string {
	return []string{
		ftoa(s.T, -1),
		ftoa(s.X, -1),
		ftoa(s.Y, -1),
		ftoa(s.XRef, -1),
		ftoa(s.YRef, -1),
		ftoa(s.Theta, -1),
	}
}
