package csvutil

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"

	"github.com/gocarina/gocsv"
)

// Write marshals rows (a slice of csv-tagged structs) as comma-separated
// text with CRLF line endings. The header row comes from the csv tags in
// struct field order; fields are quoted only when the value requires it.
func Write(w io.Writer, rows interface{}) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	return gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(cw))
}

// WriteAttachment writes rows as a downloadable CSV file.
func WriteAttachment(w http.ResponseWriter, filename string, rows interface{}) error {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	return Write(w, rows)
}
