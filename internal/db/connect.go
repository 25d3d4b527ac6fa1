package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
	_ "modernc.org/sqlite"             // driver: sqlite
)

type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// Open opens a DB and ensures the schema exists.
func Open(ctx context.Context, driver Driver, dsn string) (*sql.DB, error) {
	var drvName string
	switch driver {
	case DriverSQLite:
		drvName = "sqlite" // modernc driver
		if dsn == "" {
			dsn = "file:koreksi.db?cache=shared&mode=rwc&_pragma=busy_timeout(5000)"
		}
	case DriverPostgres:
		drvName = "pgx" // pgx stdlib driver
		if dsn == "" {
			dsn = "postgres://localhost:5432/koreksi?sslmode=disable"
		}
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}

	dbh, err := sql.Open(drvName, dsn)
	if err != nil {
		return nil, err
	}
	if err := dbh.PingContext(ctx); err != nil {
		return nil, err
	}
	if err := ensureSchema(ctx, dbh, driver); err != nil {
		return nil, err
	}
	return dbh, nil
}

func ensureSchema(ctx context.Context, dbh *sql.DB, driver Driver) error {
	var schema string
	switch driver {
	case DriverSQLite:
		schema = schemaSQLite
	case DriverPostgres:
		schema = schemaPostgres
	}
	_, err := dbh.ExecContext(ctx, schema)
	return err
}

const schemaSQLite = `
PRAGMA foreign_keys=ON;

CREATE TABLE IF NOT EXISTS grading_results (
  id TEXT PRIMARY KEY,
  exam_name TEXT NOT NULL DEFAULT '',
  exam_date TEXT NOT NULL DEFAULT '',
  name TEXT NOT NULL,
  student_id TEXT NOT NULL,
  class TEXT NOT NULL,
  mc_score INTEGER,
  mc_details_json TEXT NOT NULL DEFAULT '',
  essay_score INTEGER,
  essay_analysis_json TEXT NOT NULL DEFAULT '',
  final_score INTEGER NOT NULL,
  created_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS grading_results_class_idx ON grading_results(class);
`

const schemaPostgres = `
CREATE TABLE IF NOT EXISTS grading_results (
  id TEXT PRIMARY KEY,
  exam_name TEXT NOT NULL DEFAULT '',
  exam_date TEXT NOT NULL DEFAULT '',
  name TEXT NOT NULL,
  student_id TEXT NOT NULL,
  class TEXT NOT NULL,
  mc_score INTEGER,
  mc_details_json TEXT NOT NULL DEFAULT '',
  essay_score INTEGER,
  essay_analysis_json TEXT NOT NULL DEFAULT '',
  final_score INTEGER NOT NULL,
  created_at BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS grading_results_class_idx ON grading_results(class);
`
