package report

import (
	"encoding/json"
	"io"
	"os"

	"droneops-deconflict/internal/deconflict"
)

// FileWriter writes conflict records to a JSONL file and, optionally, the
// final verdict to a separate JSON file.
type FileWriter struct {
	recFile *os.File
	resFile *os.File
	recEnc  *json.Encoder
}

// NewFileWriter creates a FileWriter. resultPath may be empty to skip the
// verdict file.
func NewFileWriter(recordsPath, resultPath string) (*FileWriter, error) {
	rf, err := os.Create(recordsPath)
	if err != nil {
		return nil, err
	}
	fw := &FileWriter{recFile: rf, recEnc: json.NewEncoder(rf)}
	if resultPath != "" {
		sf, err := os.Create(resultPath)
		if err != nil {
			rf.Close()
			return nil, err
		}
		fw.resFile = sf
	}
	return fw, nil
}

// WriteRecord logs a single conflict record.
func (f *FileWriter) WriteRecord(rec deconflict.ConflictRecord) error {
	return f.recEnc.Encode(rec)
}

// WriteRecords logs multiple conflict records.
func (f *FileWriter) WriteRecords(recs []deconflict.ConflictRecord) error {
	for _, r := range recs {
		if err := f.WriteRecord(r); err != nil {
			return err
		}
	}
	return nil
}

// WriteResult logs the final verdict, if enabled.
func (f *FileWriter) WriteResult(res deconflict.Result) error {
	if f.resFile == nil {
		return nil
	}
	return json.NewEncoder(f.resFile).Encode(res)
}

// Close closes the underlying files.
func (f *FileWriter) Close() error {
	var err error
	if f.recFile != nil {
		if e := f.recFile.Close(); e != nil && err == nil {
			err = e
		}
	}
	if f.resFile != nil {
		if e := f.resFile.Close(); e != nil && err == nil {
			err = e
		}
	}
	return err
}

// ReadRecords decodes a JSONL conflict record stream, e.g. a FileWriter
// log from an earlier run.
func ReadRecords(r io.Reader) ([]deconflict.ConflictRecord, error) {
	dec := json.NewDecoder(r)
	var recs []deconflict.ConflictRecord
	for {
		var rec deconflict.ConflictRecord
		if err := dec.Decode(&rec); err != nil {
			if err == io.EOF {
				return recs, nil
			}
			return nil, err
		}
		recs = append(recs, rec)
	}
}

// ReadRecordsFile opens a JSONL log and decodes its conflict records.
func ReadRecordsFile(path string) ([]deconflict.ConflictRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadRecords(f)
}
