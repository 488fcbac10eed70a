package ingest

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"trajectory-report/models"
)

// writeCSV stores content in a fresh temp dir and returns its path.
func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "saida.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("reads required columns in file order", func(t *testing.T) {
		t.Parallel()
		path := writeCSV(t, "t,y1,y2,xref,yref,x3\n0,0,0,1,1,0\n1,0.5,0.4,1,1,0.1\n")

		table, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if table.Len() != 2 {
			t.Fatalf("expected 2 rows, got %d", table.Len())
		}
		want := models.Sample{T: 1, X: 0.5, Y: 0.4, XRef: 1, YRef: 1, Theta: 0.1}
		if got := table.Sample(1); got != want {
			t.Errorf("row 1: expected %+v, got %+v", want, got)
		}
	})

	t.Run("column order and extra columns are irrelevant", func(t *testing.T) {
		t.Parallel()
		// Header as written by the simulator's logger thread.
		path := writeCSV(t, "t,xref,yref,x1,x2,x3,y1,y2,v1,v2,u1,u2\n"+
			"0.00,1,2,9,9,0.3,0.1,0.2,9,9,9,9\n"+
			"0.05,1.5,2.5,9,9,0.4,0.6,0.7,9,9,9,9\n")

		table, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(table.T, []float64{0, 0.05}) {
			t.Errorf("unexpected T: %v", table.T)
		}
		if !reflect.DeepEqual(table.X, []float64{0.1, 0.6}) {
			t.Errorf("unexpected X: %v", table.X)
		}
		if !reflect.DeepEqual(table.Y, []float64{0.2, 0.7}) {
			t.Errorf("unexpected Y: %v", table.Y)
		}
		if !reflect.DeepEqual(table.XRef, []float64{1, 1.5}) {
			t.Errorf("unexpected XRef: %v", table.XRef)
		}
		if !reflect.DeepEqual(table.YRef, []float64{2, 2.5}) {
			t.Errorf("unexpected YRef: %v", table.YRef)
		}
		if !reflect.DeepEqual(table.Theta, []float64{0.3, 0.4}) {
			t.Errorf("unexpected Theta: %v", table.Theta)
		}
	})

	t.Run("keeps row order even when time is not sorted", func(t *testing.T) {
		t.Parallel()
		path := writeCSV(t, "t,y1,y2,xref,yref,x3\n2,0,0,0,0,0\n1,0,0,0,0,0\n3,0,0,0,0,0\n")

		table, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(table.T, []float64{2, 1, 3}) {
			t.Errorf("expected file order, got %v", table.T)
		}
	})

	t.Run("trims whitespace in header and values", func(t *testing.T) {
		t.Parallel()
		path := writeCSV(t, " t , y1,y2 ,xref,yref,x3\n 1 , 2,3 ,4,5,6\n")

		table, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := models.Sample{T: 1, X: 2, Y: 3, XRef: 4, YRef: 5, Theta: 6}
		if got := table.Sample(0); got != want {
			t.Errorf("expected %+v, got %+v", want, got)
		}
	})

	t.Run("header only yields an empty table", func(t *testing.T) {
		t.Parallel()
		path := writeCSV(t, "t,y1,y2,xref,yref,x3\n")

		table, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if table.Len() != 0 {
			t.Errorf("expected 0 rows, got %d", table.Len())
		}
	})
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	t.Run("missing file is a DataLoadError", func(t *testing.T) {
		t.Parallel()
		_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))

		var loadErr *models.DataLoadError
		if !errors.As(err, &loadErr) {
			t.Fatalf("expected *DataLoadError, got %T: %v", err, err)
		}
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected wrapped os.ErrNotExist, got %v", err)
		}
	})

	t.Run("empty file is a DataLoadError", func(t *testing.T) {
		t.Parallel()
		_, err := Load(writeCSV(t, ""))
		if !errors.Is(err, models.ErrEmptyFile) {
			t.Fatalf("expected ErrEmptyFile, got %v", err)
		}
	})

	t.Run("missing columns are a SchemaError listing all of them", func(t *testing.T) {
		t.Parallel()
		_, err := Load(writeCSV(t, "t,y1,xref\n0,0,0\n"))

		var schemaErr *models.SchemaError
		if !errors.As(err, &schemaErr) {
			t.Fatalf("expected *SchemaError, got %T: %v", err, err)
		}
		want := []string{"y2", "yref", "x3"}
		if !reflect.DeepEqual(schemaErr.Missing, want) {
			t.Errorf("expected missing %v, got %v", want, schemaErr.Missing)
		}
	})

	t.Run("non-numeric value reports its line", func(t *testing.T) {
		t.Parallel()
		_, err := Load(writeCSV(t, "t,y1,y2,xref,yref,x3\n0,0,0,0,0,0\n1,abc,0,0,0,0\n"))

		var loadErr *models.DataLoadError
		if !errors.As(err, &loadErr) {
			t.Fatalf("expected *DataLoadError, got %T: %v", err, err)
		}
		if loadErr.Line != 3 {
			t.Errorf("expected line 3, got %d", loadErr.Line)
		}
	})

	t.Run("NaN is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := Load(writeCSV(t, "t,y1,y2,xref,yref,x3\n0,NaN,0,0,0,0\n"))
		if !errors.Is(err, models.ErrNonFinite) {
			t.Fatalf("expected ErrNonFinite, got %v", err)
		}
	})

	t.Run("ragged row is a DataLoadError", func(t *testing.T) {
		t.Parallel()
		_, err := Load(writeCSV(t, "t,y1,y2,xref,yref,x3\n0,0,0\n"))

		var loadErr *models.DataLoadError
		if !errors.As(err, &loadErr) {
			t.Fatalf("expected *DataLoadError, got %T: %v", err, err)
		}
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		header  []string
		missing []string
	}{
		{"exact", []string{"t", "y1", "y2", "xref", "yref", "x3"}, nil},
		{"shuffled with extras", []string{"u1", "x3", "yref", "xref", "y2", "y1", "t"}, nil},
		{"byte order mark", []string{"\ufefft", "y1", "y2", "xref", "yref", "x3"}, nil},
		{"no heading", []string{"t", "y1", "y2", "xref", "yref"}, []string{"x3"}},
		{"empty", nil, []string{"t", "y1", "y2", "xref", "yref", "x3"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := Validate(tt.header)
			if tt.missing == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var schemaErr *models.SchemaError
			if !errors.As(err, &schemaErr) {
				t.Fatalf("expected *SchemaError, got %v", err)
			}
			if !reflect.DeepEqual(schemaErr.Missing, tt.missing) {
				t.Errorf("expected missing %v, got %v", tt.missing, schemaErr.Missing)
			}
		})
	}
}
