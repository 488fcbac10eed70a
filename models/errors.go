package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyFile is returned when the input has no header row.
	ErrEmptyFile = errors.New("empty file: no header row")

	// ErrNonFinite is returned when a required column holds NaN or ±Inf.
	ErrNonFinite = errors.New("non-finite value")
)

// DataLoadError reports an input file that is missing, unreadable or not
// parseable as a numeric CSV table.
type DataLoadError struct {
	Path string
	Line int // 1-based CSV line, 0 when the failure is not tied to a line
	Err  error
}

func (e *DataLoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("load data %s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("load data %s: %v", e.Path, e.Err)
}

func (e *DataLoadError) Unwrap() error { return e.Err }

// SchemaError reports required columns absent from the header.
type SchemaError struct {
	Path    string
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema %s: missing required column(s): %s",
		e.Path, strings.Join(e.Missing, ", "))
}

// RenderError reports a chart or export that could not be written.
type RenderError struct {
	Chart string
	Path  string
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s (%s): %v", e.Chart, e.Path, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
