package analysis

import (
	"math"
	"testing"

	"trajectory-report/models"
)

func twoRowTable() *models.Table {
	t := models.NewTable(2)
	t.Append(models.Sample{T: 0, X: 0, Y: 0, XRef: 1, YRef: 1, Theta: 0})
	t.Append(models.Sample{T: 1, X: 0.5, Y: 0.4, XRef: 1, YRef: 1, Theta: 0.1})
	return t
}

func TestComputeErrors(t *testing.T) {
	t.Parallel()

	t.Run("two-row scenario", func(t *testing.T) {
		t.Parallel()
		e := ComputeErrors(twoRowTable())

		wantX := []float64{1, 0.5}
		wantY := []float64{1, 0.6}
		for i := range wantX {
			if math.Abs(e.X[i]-wantX[i]) > 1e-12 {
				t.Errorf("errorX[%d]: expected %v, got %v", i, wantX[i], e.X[i])
			}
			if math.Abs(e.Y[i]-wantY[i]) > 1e-12 {
				t.Errorf("errorY[%d]: expected %v, got %v", i, wantY[i], e.Y[i])
			}
		}
	})

	t.Run("pointwise and order preserving", func(t *testing.T) {
		t.Parallel()
		table := models.NewTable(0)
		for i := 0; i < 50; i++ {
			f := float64(i)
			table.Append(models.Sample{
				T: 50 - f, X: math.Sin(f), Y: math.Cos(f),
				XRef: f * 0.1, YRef: -f * 0.3, Theta: f,
			})
		}

		e := ComputeErrors(table)
		if e.Len() != table.Len() {
			t.Fatalf("expected %d errors, got %d", table.Len(), e.Len())
		}
		for i := 0; i < table.Len(); i++ {
			if e.X[i] != table.XRef[i]-table.X[i] {
				t.Errorf("errorX[%d] = %v, want %v", i, e.X[i], table.XRef[i]-table.X[i])
			}
			if e.Y[i] != table.YRef[i]-table.Y[i] {
				t.Errorf("errorY[%d] = %v, want %v", i, e.Y[i], table.YRef[i]-table.Y[i])
			}
		}
	})

	t.Run("empty table", func(t *testing.T) {
		t.Parallel()
		if e := ComputeErrors(models.NewTable(0)); e.Len() != 0 {
			t.Errorf("expected no errors, got %d", e.Len())
		}
	})
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	t.Run("statistics per axis", func(t *testing.T) {
		t.Parallel()
		s := Summarize(models.TrackingError{
			X: []float64{3, -4},
			Y: []float64{1, 1},
		})
		if s.Samples != 2 {
			t.Errorf("expected 2 samples, got %d", s.Samples)
		}
		if s.X.Mean != -0.5 {
			t.Errorf("expected mean -0.5, got %v", s.X.Mean)
		}
		if math.Abs(s.X.RMS-math.Sqrt(12.5)) > 1e-12 {
			t.Errorf("expected RMS sqrt(12.5), got %v", s.X.RMS)
		}
		if s.X.MaxAbs != 4 {
			t.Errorf("expected max abs 4, got %v", s.X.MaxAbs)
		}
		if s.Y != (AxisStats{Mean: 1, RMS: 1, MaxAbs: 1}) {
			t.Errorf("unexpected Y stats: %+v", s.Y)
		}
	})

	t.Run("empty signal is all zero", func(t *testing.T) {
		t.Parallel()
		s := Summarize(models.TrackingError{})
		if s != (Summary{}) {
			t.Errorf("expected zero summary, got %+v", s)
		}
	})
}

func TestExportRows(t *testing.T) {
	t.Parallel()
	table := twoRowTable()
	rows := ExportRows(table, ComputeErrors(table))
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[1].T != 1 || rows[1].ErrX != 0.5 {
		t.Errorf("unexpected row: %+v", rows[1])
	}
}
