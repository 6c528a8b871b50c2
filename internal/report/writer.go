// Writer interfaces for publishing detection output
package report

import "droneops-deconflict/internal/deconflict"

// RecordWriter is an interface to support different conflict record sinks.
type RecordWriter interface {
	WriteRecord(deconflict.ConflictRecord) error
}

// ResultWriter receives the final verdict of a detection run.
type ResultWriter interface {
	WriteResult(deconflict.Result) error
}

// Optional: record writers may support batch mode.
type batchRecordWriter interface {
	WriteRecords([]deconflict.ConflictRecord) error
}

// WriteAll sends records through w, using batch mode when supported.
func WriteAll(w RecordWriter, recs []deconflict.ConflictRecord) error {
	if bw, ok := w.(batchRecordWriter); ok {
		return bw.WriteRecords(recs)
	}
	for _, r := range recs {
		if err := w.WriteRecord(r); err != nil {
			return err
		}
	}
	return nil
}
