package report

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"droneops-deconflict/internal/deconflict"
	"droneops-deconflict/internal/trajectory"
)

func sampleRecords() []deconflict.ConflictRecord {
	return []deconflict.ConflictRecord{
		{
			Type:     deconflict.ConflictSpatial,
			DroneID:  "drone-2",
			Distance: 5,
			Location: trajectory.Position{X: 50, Y: 0, Z: 0},
			Spatial: &deconflict.SpatialDetail{
				MissionSegment:  [2]int{0, 1},
				ScheduleSegment: [2]int{0, 1},
				TimeRange:       deconflict.TimeRange{Start: 0, End: 10},
			},
		},
		{
			Type:     deconflict.ConflictTemporal,
			DroneID:  "drone-2",
			Distance: 5,
			Location: trajectory.Position{X: 25, Y: 0, Z: 0},
			Temporal: &deconflict.TemporalDetail{Time: 2.5},
		},
	}
}

func TestJSONWriterOutput(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriterTo(&buf)

	recs := sampleRecords()
	if err := w.WriteRecords(recs); err != nil {
		t.Fatalf("WriteRecords returned error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 JSON lines, got %d", len(lines))
	}
	var first deconflict.ConflictRecord
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("invalid JSON line: %v", err)
	}
	if diff := cmp.Diff(recs[0], first); diff != "" {
		t.Errorf("record roundtrip mismatch (-want +got):\n%s", diff)
	}
	// The variant payload not set must be omitted entirely.
	if strings.Contains(lines[0], "temporal") {
		t.Errorf("spatial record should omit temporal payload: %s", lines[0])
	}
}

func TestFileWriterRoundtrip(t *testing.T) {
	dir := t.TempDir()
	recPath := filepath.Join(dir, "conflicts.jsonl")
	resPath := filepath.Join(dir, "result.json")

	fw, err := NewFileWriter(recPath, resPath)
	if err != nil {
		t.Fatalf("NewFileWriter returned error: %v", err)
	}
	recs := sampleRecords()
	if err := fw.WriteRecords(recs); err != nil {
		t.Fatalf("WriteRecords returned error: %v", err)
	}
	if err := fw.WriteResult(deconflict.Result{Status: deconflict.StatusConflict, Details: recs}); err != nil {
		t.Fatalf("WriteResult returned error: %v", err)
	}
	if err := fw.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	got, err := ReadRecordsFile(recPath)
	if err != nil {
		t.Fatalf("ReadRecordsFile returned error: %v", err)
	}
	if diff := cmp.Diff(recs, got); diff != "" {
		t.Errorf("log roundtrip mismatch (-want +got):\n%s", diff)
	}
}

func TestMultiWriterFanOut(t *testing.T) {
	var a, b bytes.Buffer
	mw := NewMultiWriter(NewJSONWriterTo(&a), NewJSONWriterTo(&b))

	if err := mw.WriteRecords(sampleRecords()); err != nil {
		t.Fatalf("WriteRecords returned error: %v", err)
	}
	if a.String() != b.String() {
		t.Errorf("expected identical output on both writers")
	}
	if err := mw.WriteResult(deconflict.Result{Status: deconflict.StatusClear}); err != nil {
		t.Fatalf("WriteResult returned error: %v", err)
	}
	if !strings.Contains(a.String(), string(deconflict.StatusClear)) {
		t.Errorf("expected verdict in output, got %s", a.String())
	}
}

func TestColorWriterSummary(t *testing.T) {
	var buf bytes.Buffer
	w := NewColorWriterTo(&buf)

	for _, rec := range sampleRecords() {
		if err := w.WriteRecord(rec); err != nil {
			t.Fatalf("WriteRecord returned error: %v", err)
		}
	}
	res := deconflict.Result{Status: deconflict.StatusConflict, Details: sampleRecords()}
	if err := w.WriteResult(res); err != nil {
		t.Fatalf("WriteResult returned error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"drone-2", "CONFLICT DETECTED", "1 spatial, 1 temporal"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestNewConflictRowFlattens(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	recs := sampleRecords()

	spatial := NewConflictRow("run-1", recs[0], at)
	if spatial.RunID != "run-1" || spatial.Type != "spatial" {
		t.Errorf("unexpected row tags: %+v", spatial)
	}
	if spatial.TimeStart != 0 || spatial.TimeEnd != 10 || spatial.SampleTime != 0 {
		t.Errorf("unexpected spatial row times: %+v", spatial)
	}

	temporal := NewConflictRow("run-1", recs[1], at)
	if temporal.SampleTime != 2.5 {
		t.Errorf("expected sample time 2.5, got %f", temporal.SampleTime)
	}
	if temporal.Timestamp != at {
		t.Errorf("expected shared detection timestamp, got %v", temporal.Timestamp)
	}
}

func TestConflictRowTableName(t *testing.T) {
	orig := ConflictTableName
	ConflictTableName = "custom"
	defer func() { ConflictTableName = orig }()
	if (ConflictRow{}).TableName() != "custom" {
		t.Errorf("expected custom table name, got %s", (ConflictRow{}).TableName())
	}
}
