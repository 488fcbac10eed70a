package views

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"sync"

	"trajectory-report/models"
)

// CSVWriter is a buffered CSV writer for derived report data.
// Row encode errors surface on Flush or Close.
type CSVWriter struct {
	mu   sync.Mutex
	file *os.File
	buf  *bufio.Writer
	csv  *csv.Writer
	rows uint64
}

// NewCSVWriter creates (or truncates) a file and writes the CSV header row.
func NewCSVWriter(path string, bufSizeBytes int, header []string) (*CSVWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv create %s: %w", path, err)
	}

	if bufSizeBytes <= 0 {
		bufSizeBytes = 64 * 1024
	}

	bw := bufio.NewWriterSize(f, bufSizeBytes)
	cw := csv.NewWriter(bw)

	w := &CSVWriter{
		file: f,
		buf:  bw,
		csv:  cw,
	}

	if len(header) > 0 {
		if err := cw.Write(header); err != nil {
			f.Close()
			return nil, fmt.Errorf("csv write header: %w", err)
		}
	}

	return w, nil
}

// WriteRow appends a single CSV row.
func (w *CSVWriter) WriteRow(row []string) {
	w.mu.Lock()
	_ = w.csv.Write(row) // error is buffered; checked on Flush
	w.rows++
	w.mu.Unlock()
}

// Flush pushes buffered rows to the OS and reports any buffered error.
func (w *CSVWriter) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		return err
	}
	return w.buf.Flush()
}

// Close flushes remaining data and closes the file.
func (w *CSVWriter) Close() error {
	ferr := w.Flush()
	w.mu.Lock()
	cerr := w.file.Close()
	w.mu.Unlock()
	if ferr != nil {
		return ferr
	}
	return cerr
}

// Rows returns the number of data rows written (excludes header).
func (w *CSVWriter) Rows() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.rows
}

// ExportErrorsCSV writes t,error_x,error_y for every sample to path.
func ExportErrorsCSV(path string, bufSizeBytes int, rows []models.ErrorSample) error {
	w, err := NewCSVWriter(path, bufSizeBytes, models.ErrorSample{}.CSVHeader())
	if err != nil {
		return &models.RenderError{Chart: "errors-csv", Path: path, Err: err}
	}
	for i := range rows {
		w.WriteRow(rows[i].CSVRow())
	}
	if err := w.Close(); err != nil {
		return &models.RenderError{Chart: "errors-csv", Path: path, Err: err}
	}
	return nil
}
