// Package analysis derives the tracking error signals from a trajectory table.
package analysis

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"trajectory-report/models"
)

// ComputeErrors returns xref-y1 and yref-y2 for every row, in row order.
func ComputeErrors(t *models.Table) models.TrackingError {
	n := t.Len()
	e := models.TrackingError{
		X: make([]float64, n),
		Y: make([]float64, n),
	}
	floats.SubTo(e.X, t.XRef, t.X)
	floats.SubTo(e.Y, t.YRef, t.Y)
	return e
}

// AxisStats summarises one error signal.
type AxisStats struct {
	Mean   float64
	RMS    float64
	MaxAbs float64
}

// Summary holds error statistics for both axes.
type Summary struct {
	Samples int
	X       AxisStats
	Y       AxisStats
}

// Summarize computes mean, RMS and peak absolute error per axis.
// All statistics are zero for an empty signal.
func Summarize(e models.TrackingError) Summary {
	return Summary{
		Samples: e.Len(),
		X:       axisStats(e.X),
		Y:       axisStats(e.Y),
	}
}

func axisStats(v []float64) AxisStats {
	if len(v) == 0 {
		return AxisStats{}
	}
	return AxisStats{
		Mean:   stat.Mean(v, nil),
		RMS:    math.Sqrt(floats.Dot(v, v) / float64(len(v))),
		MaxAbs: floats.Norm(v, math.Inf(1)),
	}
}

// ExportRows pairs each error sample with its timestamp for CSV export.
func ExportRows(t *models.Table, e models.TrackingError) []models.ErrorSample {
	rows := make([]models.ErrorSample, e.Len())
	for i := range rows {
		rows[i] = models.ErrorSample{T: t.T[i], ErrX: e.X[i], ErrY: e.Y[i]}
	}
	return rows
}
