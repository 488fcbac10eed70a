package models

import (
	"strconv"
)

// ─── shared formatting helpers (package-private) ────────────────────────

// ftoa formats v with prec decimals; prec -1 keeps the shortest exact form.
func ftoa(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}

// CSVRowWriter is the interface every exportable model must satisfy.
type CSVRowWriter interface {
	CSVHeader() []string
	CSVRow() []string
}
