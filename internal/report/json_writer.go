package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"droneops-deconflict/internal/deconflict"
)

// JSONWriter prints conflict records and results as JSON lines.
type JSONWriter struct {
	out io.Writer
}

// NewJSONWriter creates a JSONWriter writing to os.Stdout.
func NewJSONWriter() *JSONWriter {
	return &JSONWriter{out: os.Stdout}
}

// NewJSONWriterTo creates a JSONWriter writing to w.
func NewJSONWriterTo(w io.Writer) *JSONWriter {
	return &JSONWriter{out: w}
}

// WriteRecord outputs a single conflict record in JSON format.
func (w *JSONWriter) WriteRecord(rec deconflict.ConflictRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w.out, string(data))
	return err
}

// WriteRecords outputs multiple conflict records.
func (w *JSONWriter) WriteRecords(recs []deconflict.ConflictRecord) error {
	for _, r := range recs {
		if err := w.WriteRecord(r); err != nil {
			return err
		}
	}
	return nil
}

// WriteResult outputs the final verdict in JSON format.
func (w *JSONWriter) WriteResult(res deconflict.Result) error {
	data, err := json.Marshal(res)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w.out, string(data))
	return err
}
