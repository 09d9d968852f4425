// Package catalogdb stores the language catalog in a SQL database.
// It is an alternative catalog source and never holds browsing state.
package catalogdb

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	gomysql "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	"github.com/langradar/langradar/internal/catalog"
	"github.com/langradar/langradar/internal/contract"
	"github.com/langradar/langradar/schema"
	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

// Table names for the catalog.
const (
	languagesTable = "langradar_languages"
	notesTable     = "langradar_notes"
	metricsTable   = "langradar_metrics"
)

// Note kinds stored in the notes table.
const (
	proKind = "pro"
	conKind = "con"
)

// Store implements contract.CatalogStore on top of database/sql.
type Store struct {
	db      *sql.DB
	backend schema.CatalogBackend
	connStr string
	now     func() time.Time
}

var _ contract.CatalogStore = &Store{} // Compile-time check

// NewStore migrates the schema to the latest version and opens the store.
func NewStore(backend schema.CatalogBackend, connStr string) (*Store, error) {
	if _, err := Migrate(backend, connStr, -1); err != nil {
		return nil, fmt.Errorf("failed to prepare catalog schema: %w", err)
	}
	db, err := openDB(backend, connStr)
	if err != nil {
		return nil, err
	}
	return &Store{db: db, backend: backend, connStr: connStr, now: time.Now}, nil
}

// openDB opens and pings a connection for the backend.
func openDB(backend schema.CatalogBackend, connStr string) (*sql.DB, error) {
	var (
		db  *sql.DB
		err error
	)

	switch backend {
	case schema.SQLiteBackend:
		dbPath := connStr
		if dbPath == "" {
			dbPath = contract.GetCatalogDBFilePath()
		}
		db, err = sql.Open("sqlite", dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite database at %q: %w. Check that the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)

	case schema.MySQLBackend:
		dsn, dsnErr := mysqlDSN(connStr)
		if dsnErr != nil {
			return nil, dsnErr
		}
		db, err = sql.Open("mysql", dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open MySQL database: %w. Check connection string format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgreSQLBackend:
		db, err = sql.Open("pgx", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to open PostgreSQL database: %w. Check connection string format: host=... dbname=... user=...", err)
		}

	default:
		return nil, fmt.Errorf("unsupported catalog backend: %s", backend)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database: %w. Verify the database server is running and accessible", backend, err)
	}
	return db, nil
}

// mysqlDSN normalizes a MySQL DSN so that BIGINT and TEXT columns scan cleanly.
func mysqlDSN(connStr string) (string, error) {
	cfg, err := gomysql.ParseDSN(connStr)
	if err != nil {
		return "", fmt.Errorf("invalid MySQL connection string: %w", err)
	}
	cfg.ParseTime = true
	if cfg.Params == nil {
		cfg.Params = map[string]string{}
	}
	cfg.Params["charset"] = "utf8mb4"
	return cfg.FormatDSN(), nil
}

// placeholder returns the n-th (1-based) bind parameter for the backend.
func (s *Store) placeholder(n int) string {
	if s.backend == schema.PostgreSQLBackend {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

// placeholders returns a comma-separated list of count bind parameters.
func (s *Store) placeholders(count int) string {
	parts := make([]string, count)
	for i := range parts {
		parts[i] = s.placeholder(i + 1)
	}
	return strings.Join(parts, ", ")
}

// Import replaces the stored catalog with entries in a single transaction.
func (s *Store) Import(ctx context.Context, entries []schema.Language) error {
	if err := catalog.Validate(entries); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin import: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{metricsTable, notesTable, languagesTable} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	langQuery := fmt.Sprintf("INSERT INTO %s (id, ordinal, name, color, philosophy, imported_at) VALUES (%s)", languagesTable, s.placeholders(6))
	noteQuery := fmt.Sprintf("INSERT INTO %s (language_id, kind, ordinal, body) VALUES (%s)", notesTable, s.placeholders(4))
	metricQuery := fmt.Sprintf("INSERT INTO %s (language_id, ordinal, subject, score, max_score) VALUES (%s)", metricsTable, s.placeholders(5))

	importedAt := s.now().Unix()
	for i, l := range entries {
		if _, err := tx.ExecContext(ctx, langQuery, l.ID, i, l.Name, l.Color, l.Philosophy, importedAt); err != nil {
			return fmt.Errorf("failed to insert language %q: %w", l.ID, err)
		}
		for kind, items := range map[string][]string{proKind: l.Pros, conKind: l.Cons} {
			for j, body := range items {
				if _, err := tx.ExecContext(ctx, noteQuery, l.ID, kind, j, body); err != nil {
					return fmt.Errorf("failed to insert %s of %q: %w", kind, l.ID, err)
				}
			}
		}
		for j, m := range l.Metrics {
			if _, err := tx.ExecContext(ctx, metricQuery, l.ID, j, string(m.Subject), m.Value, m.MaxValue); err != nil {
				return fmt.Errorf("failed to insert metric of %q: %w", l.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}
	return nil
}

// Load implements contract.CatalogSource.
func (s *Store) Load(ctx context.Context) ([]schema.Language, error) {
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf("SELECT id, name, color, philosophy FROM %s ORDER BY ordinal", languagesTable))
	if err != nil {
		return nil, fmt.Errorf("failed to query languages: %w", err)
	}
	var entries []schema.Language
	byID := map[string]int{}
	for rows.Next() {
		var l schema.Language
		if err := rows.Scan(&l.ID, &l.Name, &l.Color, &l.Philosophy); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("failed to scan language: %w", err)
		}
		byID[l.ID] = len(entries)
		entries = append(entries, l)
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}

	rows, err = s.db.QueryContext(ctx, fmt.Sprintf("SELECT language_id, kind, body FROM %s ORDER BY language_id, kind, ordinal", notesTable))
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	for rows.Next() {
		var id, kind, body string
		if err := rows.Scan(&id, &kind, &body); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		i, ok := byID[id]
		if !ok {
			continue
		}
		switch kind {
		case proKind:
			entries[i].Pros = append(entries[i].Pros, body)
		case conKind:
			entries[i].Cons = append(entries[i].Cons, body)
		}
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}

	rows, err = s.db.QueryContext(ctx, fmt.Sprintf("SELECT language_id, subject, score, max_score FROM %s ORDER BY language_id, ordinal", metricsTable))
	if err != nil {
		return nil, fmt.Errorf("failed to query metrics: %w", err)
	}
	for rows.Next() {
		var (
			id      string
			subject string
			m       schema.MetricPoint
		)
		if err := rows.Scan(&id, &subject, &m.Value, &m.MaxValue); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("failed to scan metric: %w", err)
		}
		if i, ok := byID[id]; ok {
			m.Subject = schema.Subject(subject)
			entries[i].Metrics = append(entries[i].Metrics, m)
		}
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}

	if err := catalog.Validate(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// closeRows reports iteration errors and closes rows.
func closeRows(rows *sql.Rows) error {
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return fmt.Errorf("error iterating rows: %w", err)
	}
	return rows.Close()
}

// Describe implements contract.CatalogSource.
func (s *Store) Describe() string {
	if s.backend == schema.SQLiteBackend {
		return fmt.Sprintf("%s catalog store %s", s.backend, s.connStr)
	}
	return fmt.Sprintf("%s catalog store", s.backend)
}

// GetStatus returns status information about the catalog store.
func (s *Store) GetStatus(ctx context.Context) (schema.CatalogStatus, error) {
	status := schema.CatalogStatus{
		Backend:    string(s.backend),
		Connected:  s.db != nil,
		TableSizes: make(map[string]int64),
	}
	if s.db == nil {
		return status, nil
	}

	for _, table := range []string{languagesTable, notesTable, metricsTable} {
		var count int64
		if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count); err != nil {
			return status, fmt.Errorf("failed to get count for table %s: %w", table, err)
		}
		status.TableSizes[table] = count
	}
	status.Languages = status.TableSizes[languagesTable]

	if status.Languages > 0 {
		var importedAt int64
		query := fmt.Sprintf("SELECT MAX(imported_at) FROM %s", languagesTable)
		if err := s.db.QueryRowContext(ctx, query).Scan(&importedAt); err != nil {
			return status, fmt.Errorf("failed to get last import time: %w", err)
		}
		status.LastImport = time.Unix(importedAt, 0)
	}
	return status, nil
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
