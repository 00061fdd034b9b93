package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/htmlslim/htmlslim/internal/model"
)

// HistoryDB provides SQLite-based storage for processing run history.
// It manages connection pooling and provides methods for CRUD operations.
//
// Design decision: We use a single database file for all processed files
// rather than a sidecar file per input. This makes cross-file queries
// ("which files still carry the most script weight") and backup/restore
// trivial.
type HistoryDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures HistoryDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent performance.
	// This is recommended for most use cases.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a HistoryDB at the specified path.
// If CreateIfNotExists is true, the directory and database file are created.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dbDir string, opts Options) (*HistoryDB, error) {
	dbPath := filepath.Join(dbDir, "htmlslim.db")

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// Build connection string
	// We use modernc.org/sqlite which uses a different connection string format.
	// When CreateIfNotExists is false, we use mode=rw to prevent creating new files.
	// When CreateIfNotExists is true, we use mode=rwc to allow creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer; batch workers share this pool.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	hdb := &HistoryDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := hdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return hdb, nil
}

// Close closes the database connection.
func (hdb *HistoryDB) Close() error {
	return hdb.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (hdb *HistoryDB) createTables() error {
	schema := `
	-- Runs store one row per processed input file
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		input_path TEXT NOT NULL,
		mode TEXT NOT NULL,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
		file_size INTEGER NOT NULL,
		output_size INTEGER DEFAULT 0,
		output_path TEXT,
		report_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_input ON runs(input_path);
	CREATE INDEX IF NOT EXISTS idx_runs_mode ON runs(mode);
	CREATE INDEX IF NOT EXISTS idx_runs_timestamp ON runs(timestamp);
	`

	_, err := hdb.db.ExecContext(context.Background(), schema)
	return err
}

// SaveRun saves a complete size report as one run row.
// The full report is stored as JSON alongside the queryable columns.
func (hdb *HistoryDB) SaveRun(ctx context.Context, report *model.SizeReport) (int64, error) {
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return 0, fmt.Errorf("failed to serialize report: %w", err)
	}

	query := `
	INSERT INTO runs (input_path, mode, file_size, output_size, output_path, report_json)
	VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := hdb.db.ExecContext(ctx, query,
		report.InputPath,
		string(report.Mode),
		report.FileSize,
		report.OutputSize,
		report.OutputPath,
		string(reportJSON),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save run: %w", err)
	}

	return result.LastInsertId()
}

// GetLatestRun retrieves the most recent report for an input file.
// Returns nil without error when the file has never been processed.
func (hdb *HistoryDB) GetLatestRun(ctx context.Context, inputPath string) (*model.SizeReport, error) {
	query := `
	SELECT report_json FROM runs
	WHERE input_path = ?
	ORDER BY timestamp DESC, id DESC
	LIMIT 1
	`

	var reportJSON string
	err := hdb.db.QueryRowContext(ctx, query, inputPath).Scan(&reportJSON)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	var report model.SizeReport
	if err := json.Unmarshal([]byte(reportJSON), &report); err != nil {
		return nil, fmt.Errorf("failed to parse report: %w", err)
	}

	return &report, nil
}

// GetRunHistory retrieves all reports for an input file, newest first.
func (hdb *HistoryDB) GetRunHistory(ctx context.Context, inputPath string) ([]*model.SizeReport, error) {
	query := `
	SELECT report_json FROM runs
	WHERE input_path = ?
	ORDER BY timestamp DESC, id DESC
	`

	rows, err := hdb.db.QueryContext(ctx, query, inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get run history: %w", err)
	}
	defer rows.Close()

	var reports []*model.SizeReport
	for rows.Next() {
		var reportJSON string
		if err := rows.Scan(&reportJSON); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}

		var report model.SizeReport
		if err := json.Unmarshal([]byte(reportJSON), &report); err != nil {
			continue // Skip malformed reports
		}
		reports = append(reports, &report)
	}

	return reports, rows.Err()
}

// ListInputs returns the distinct input paths seen so far.
func (hdb *HistoryDB) ListInputs(ctx context.Context) ([]string, error) {
	query := `
	SELECT DISTINCT input_path FROM runs
	ORDER BY input_path
	`

	rows, err := hdb.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list inputs: %w", err)
	}
	defer rows.Close()

	var inputs []string
	for rows.Next() {
		var input string
		if err := rows.Scan(&input); err != nil {
			return nil, fmt.Errorf("failed to scan input: %w", err)
		}
		inputs = append(inputs, input)
	}

	return inputs, rows.Err()
}

// RunMetadata contains summary information about a stored run.
// This is used for displaying history without decoding the full report.
type RunMetadata struct {
	// ID is the unique identifier of the run in the database.
	ID int64

	// InputPath is the processed input file.
	InputPath string

	// Mode is the processing mode of the run.
	Mode model.Mode

	// Timestamp is when the run was performed.
	Timestamp time.Time

	// FileSize is the input size in bytes.
	FileSize int

	// OutputSize is the written output size in bytes, 0 for analyze runs.
	OutputSize int

	// OutputPath is the written output file, empty for analyze runs.
	OutputPath string
}

// GetRunHistoryWithMetadata retrieves run metadata for an input file.
// This is more efficient than GetRunHistory when only metadata is needed.
func (hdb *HistoryDB) GetRunHistoryWithMetadata(ctx context.Context, inputPath string) ([]RunMetadata, error) {
	query := `
	SELECT id, input_path, mode, timestamp, file_size, output_size, output_path
	FROM runs
	WHERE input_path = ?
	ORDER BY timestamp DESC, id DESC
	`

	rows, err := hdb.db.QueryContext(ctx, query, inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get run history: %w", err)
	}
	defer rows.Close()

	var results []RunMetadata
	for rows.Next() {
		var meta RunMetadata
		var mode string
		var timestamp string
		var outputPath sql.NullString

		if err := rows.Scan(&meta.ID, &meta.InputPath, &mode, &timestamp,
			&meta.FileSize, &meta.OutputSize, &outputPath); err != nil {
			return nil, fmt.Errorf("failed to scan metadata: %w", err)
		}

		meta.Mode = model.Mode(mode)
		meta.Timestamp = parseTimestamp(timestamp)
		if outputPath.Valid {
			meta.OutputPath = outputPath.String
		}

		results = append(results, meta)
	}

	return results, rows.Err()
}

// GetRunByID retrieves a run's full report by its database ID.
func (hdb *HistoryDB) GetRunByID(ctx context.Context, id int64) (*model.SizeReport, error) {
	query := `
	SELECT report_json FROM runs
	WHERE id = ?
	`

	var reportJSON string
	err := hdb.db.QueryRowContext(ctx, query, id).Scan(&reportJSON)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	var report model.SizeReport
	if err := json.Unmarshal([]byte(reportJSON), &report); err != nil {
		return nil, fmt.Errorf("failed to parse report: %w", err)
	}

	return &report, nil
}

// timestampFormats contains the timestamp formats that SQLite may return.
// The order matters: more specific formats should come first.
var timestampFormats = []string{
	"2006-01-02 15:04:05",     // SQLite default datetime format
	"2006-01-02T15:04:05Z",    // ISO 8601 with Z suffix
	"2006-01-02T15:04:05",     // ISO 8601 without timezone
	time.RFC3339,              // Full RFC3339 format
	time.RFC3339Nano,          // RFC3339 with nanoseconds
	"2006-01-02 15:04:05.999", // SQLite with milliseconds
}

// parseTimestamp attempts to parse a timestamp string using multiple formats.
// SQLite may return timestamps in different formats depending on configuration.
// If parsing fails with all formats, returns zero time.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
