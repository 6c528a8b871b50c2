package report

import (
	"context"
	"errors"
	"log"
	"net"
	"strconv"
	"time"

	greptime "github.com/GreptimeTeam/greptimedb-ingester-go"
	ingesterContext "github.com/GreptimeTeam/greptimedb-ingester-go/context"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table/types"

	"droneops-deconflict/internal/deconflict"
)

// ingestClient is the subset of the ingester client used by the writer.
type ingestClient interface {
	Write(ctx context.Context, db string, tables []*table.Table) error
}

// greptimeClientAdapter adapts *greptime.Client to ingestClient. The target
// database is fixed in the client's config, so db is informational here.
type greptimeClientAdapter struct {
	c *greptime.Client
}

func (a greptimeClientAdapter) Write(ctx context.Context, db string, tables []*table.Table) error {
	_, err := a.c.Write(ctx, tables...)
	return err
}

// GreptimeDBWriter writes conflict rows to GreptimeDB via the ingester client.
type GreptimeDBWriter struct {
	client ingestClient
	db     string
	table  string
	runID  string
	now    func() time.Time
}

// resolveTableName prefers the configured table name and falls back to
// ConflictTableName (GREPTIMEDB_TABLE env override or the default).
func resolveTableName(name string) string {
	if name != "" {
		return name
	}
	return ConflictTableName
}

// NewGreptimeDBWriter creates a new GreptimeDB writer and auto-creates the
// conflict table if needed. tableName may be empty to use the env override
// or the default name.
func NewGreptimeDBWriter(endpoint, database, tableName, runID string) (*GreptimeDBWriter, error) {
	cfg := greptime.NewConfig(endpoint)
	if h, p, err := net.SplitHostPort(endpoint); err == nil {
		if port, perr := strconv.Atoi(p); perr == nil {
			cfg = greptime.NewConfig(h).WithPort(port)
		}
	}
	cfg = cfg.WithDatabase(database)
	client, err := greptime.NewClient(cfg)
	if err != nil {
		return nil, err
	}

	tbl := resolveTableName(tableName)

	// The gRPC ingest path auto-creates the table (tags, fields and time
	// index from the written schema) on first write; the ingester client
	// exposes no SQL interface for explicit DDL.

	return &GreptimeDBWriter{
		client: greptimeClientAdapter{c: client},
		db:     database,
		table:  tbl,
		runID:  runID,
		now:    time.Now,
	}, nil
}

// WriteRecord inserts a single conflict record.
func (w *GreptimeDBWriter) WriteRecord(rec deconflict.ConflictRecord) error {
	return w.WriteRecords([]deconflict.ConflictRecord{rec})
}

// WriteRecords inserts multiple conflict records.
func (w *GreptimeDBWriter) WriteRecords(recs []deconflict.ConflictRecord) error {
	if len(recs) == 0 {
		return nil
	}

	ctx := ingesterContext.New(context.Background())
	detectedAt := w.now().UTC()

	tbl, err := table.New(w.table)
	if err != nil {
		return err
	}
	if err := errors.Join(
		tbl.AddTagColumn("run_id", types.STRING),
		tbl.AddTagColumn("drone_id", types.STRING),
		tbl.AddTagColumn("type", types.STRING),
		tbl.AddFieldColumn("distance", types.FLOAT64),
		tbl.AddFieldColumn("x", types.FLOAT64),
		tbl.AddFieldColumn("y", types.FLOAT64),
		tbl.AddFieldColumn("z", types.FLOAT64),
		tbl.AddFieldColumn("time_start", types.FLOAT64),
		tbl.AddFieldColumn("time_end", types.FLOAT64),
		tbl.AddFieldColumn("sample_time", types.FLOAT64),
		tbl.AddTimestampColumn("ts", types.TIMESTAMP_MILLISECOND),
	); err != nil {
		return err
	}

	for _, rec := range recs {
		row := NewConflictRow(w.runID, rec, detectedAt)
		if err := tbl.AddRow(
			row.RunID, row.DroneID, row.Type,
			row.Distance, row.X, row.Y, row.Z,
			row.TimeStart, row.TimeEnd, row.SampleTime,
			row.Timestamp,
		); err != nil {
			return err
		}
	}

	if err := w.client.Write(ctx, w.db, []*table.Table{tbl}); err != nil {
		log.Printf("[GreptimeDBWriter] Write failed: %v", err)
		return err
	}

	log.Printf("[GreptimeDBWriter] wrote %d conflict rows", len(recs))
	return nil
}
