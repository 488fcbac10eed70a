package models

// TrackingError holds the per-axis difference between reference and
// realized position, one value per table row.
type TrackingError struct {
	X []float64 // xref - y1
	Y []float64 // yref - y2
}

// Len returns the number of error samples.
func (e TrackingError) Len() int {
	return len(e.X)
}

// ErrorSample is one exported row of the tracking error.
type ErrorSample struct {
	T    float64 `json:"t"`
	ErrX float64 `json:"error_x"`
	ErrY float64 `json:"error_y"`
}

func (ErrorSample) CSVHeader() []string {
	return []string{"t", "error_x", "error_y"}
}

func (e *ErrorSample) CSVRow() []string {
	return []string{
		ftoa(e.T, -1),
		ftoa(e.ErrX, -1),
		ftoa(e.ErrY, -1),
	}
}
