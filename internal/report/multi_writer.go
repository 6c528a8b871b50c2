package report

import "droneops-deconflict/internal/deconflict"

// MultiWriter fans records and results out to multiple writers.
type MultiWriter struct {
	writers []RecordWriter
}

// NewMultiWriter creates a new MultiWriter.
func NewMultiWriter(ws ...RecordWriter) *MultiWriter {
	return &MultiWriter{writers: ws}
}

// WriteRecord sends a conflict record to all writers.
func (mw *MultiWriter) WriteRecord(rec deconflict.ConflictRecord) error {
	for _, w := range mw.writers {
		if err := w.WriteRecord(rec); err != nil {
			return err
		}
	}
	return nil
}

// WriteRecords sends multiple records to all writers, using batch mode
// where supported.
func (mw *MultiWriter) WriteRecords(recs []deconflict.ConflictRecord) error {
	for _, w := range mw.writers {
		if bw, ok := w.(batchRecordWriter); ok {
			if err := bw.WriteRecords(recs); err != nil {
				return err
			}
			continue
		}
		for _, r := range recs {
			if err := w.WriteRecord(r); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteResult forwards the verdict to every writer that accepts one.
func (mw *MultiWriter) WriteResult(res deconflict.Result) error {
	for _, w := range mw.writers {
		if rw, ok := w.(ResultWriter); ok {
			if err := rw.WriteResult(res); err != nil {
				return err
			}
		}
	}
	return nil
}
