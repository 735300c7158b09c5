// Package benchstore persists benchmark runs in DuckDB so that cost
// regressions across index configurations can be queried later.
package benchstore

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/marcboeker/go-duckdb"
)

const schemaSQL = `CREATE TABLE IF NOT EXISTS bench_runs (
	run_at TIMESTAMP,
	label VARCHAR,
	index_type VARCHAR,
	items BIGINT,
	queries BIGINT,
	domains INTEGER,
	mean_cost DOUBLE,
	total_climb BIGINT,
	elapsed_ms DOUBLE
)`

// Store appends and reads benchmark runs in a DuckDB database.
type Store struct {
	db *sql.DB
}

// Run is one benchmark measurement: a query load executed against one
// index configuration.
type Run struct {
	RunAt      time.Time
	Label      string
	IndexType  string // "iit" or "iitii"
	Items      int64
	Queries    int64
	Domains    int
	MeanCost   float64
	TotalClimb int64
	ElapsedMS  float64
}

// Open opens the bench-run database at path, creating the file and its
// parent directory on first use and making sure the bench_runs table
// exists. An empty path keeps the database in memory.
func Open(path string) (*Store, error) {
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("create %s: %w", filepath.Dir(path), err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", pathLabel(path), err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("create bench_runs table in %s: %w", pathLabel(path), err)
	}

	return &Store{db: db}, nil
}

func pathLabel(path string) string {
	if path == "" {
		return "in-memory duckdb"
	}
	return path
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Append records one benchmark run.
func (s *Store) Append(r Run) error {
	_, err := s.db.Exec(
		`INSERT INTO bench_runs VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunAt, r.Label, r.IndexType, r.Items, r.Queries, r.Domains,
		r.MeanCost, r.TotalClimb, r.ElapsedMS,
	)
	if err != nil {
		return fmt.Errorf("insert bench run: %w", err)
	}
	return nil
}

// Runs returns recorded runs, newest first, optionally filtered by label.
func (s *Store) Runs(label string) ([]Run, error) {
	query := `SELECT run_at, label, index_type, items, queries, domains,
		mean_cost, total_climb, elapsed_ms FROM bench_runs`
	var args []any
	if label != "" {
		query += ` WHERE label = ?`
		args = append(args, label)
	}
	query += ` ORDER BY run_at DESC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query bench runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.RunAt, &r.Label, &r.IndexType, &r.Items,
			&r.Queries, &r.Domains, &r.MeanCost, &r.TotalClimb, &r.ElapsedMS); err != nil {
			return nil, fmt.Errorf("scan bench run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
