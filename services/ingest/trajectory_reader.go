package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"trajectory-report/models"
	"trajectory-report/utils"
)

// TrajectoryReader ingests the simulator's CSV log (data/saida.csv).
type TrajectoryReader struct {
	path string
	rows int
}

// NewTrajectoryReader returns a reader for the CSV file at path.
func NewTrajectoryReader(path string) *TrajectoryReader {
	return &TrajectoryReader{path: path}
}

// Load reads the whole file at path into a Table.
func Load(path string) (*models.Table, error) {
	return NewTrajectoryReader(path).Read()
}

// Read parses the file. The header is validated before any row is parsed,
// so a missing column is always reported as *models.SchemaError.
// Every other failure is a *models.DataLoadError.
func (r *TrajectoryReader) Read() (*models.Table, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, &models.DataLoadError{Path: r.path, Err: err}
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, &models.DataLoadError{Path: r.path, Err: models.ErrEmptyFile}
	}
	if err != nil {
		return nil, &models.DataLoadError{Path: r.path, Err: err}
	}

	idx, missing := columnIndex(header)
	if len(missing) > 0 {
		return nil, &models.SchemaError{Path: r.path, Missing: missing}
	}
	utils.L().Debug("trajectory reader: header ok  path=%s  columns=%d", r.path, len(header))

	table := models.NewTable(0)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &models.DataLoadError{Path: r.path, Err: err}
		}
		line, _ := cr.FieldPos(0)

		var vals [6]float64
		for i, col := range models.RequiredColumns {
			v, err := parseValue(rec[idx[col]])
			if err != nil {
				return nil, &models.DataLoadError{
					Path: r.path,
					Line: line,
					Err:  fmt.Errorf("column %q: %w", col, err),
				}
			}
			vals[i] = v
		}
		table.Append(models.Sample{
			T: vals[0], X: vals[1], Y: vals[2],
			XRef: vals[3], YRef: vals[4], Theta: vals[5],
		})
	}

	r.rows = table.Len()
	utils.L().Info("trajectory reader: loaded %d rows from %s", r.rows, r.path)
	return table, nil
}

// Rows returns the number of data rows read by the last successful Read.
func (r *TrajectoryReader) Rows() int {
	return r.rows
}

// Validate reports a *models.SchemaError if header lacks a required column.
func Validate(header []string) error {
	if _, missing := columnIndex(header); len(missing) > 0 {
		return &models.SchemaError{Missing: missing}
	}
	return nil
}

// columnIndex maps each required column to its position in header.
// Names are trimmed; the first occurrence of a duplicated name wins.
func columnIndex(header []string) (map[string]int, []string) {
	pos := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, dup := pos[name]; !dup {
			pos[name] = i
		}
	}

	idx := make(map[string]int, len(models.RequiredColumns))
	var missing []string
	for _, col := range models.RequiredColumns {
		i, ok := pos[col]
		if !ok {
			missing = append(missing, col)
			continue
		}
		idx[col] = i
	}
	return idx, missing
}

func parseValue(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", models.ErrNonFinite, s)
	}
	return v, nil
}
