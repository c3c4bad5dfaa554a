package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/nhle/projecthub/internal/scope"
)

// memoryPath is the SQLite name for a private in-memory database.
const memoryPath = ":memory:"

// SQLiteStore implements the Store interface using a local SQLite database.
type SQLiteStore struct {
	db  *sqlx.DB
	now func() time.Time
}

var _ Store = (*SQLiteStore)(nil)

// Option configures a SQLiteStore.
type Option func(*SQLiteStore)

// WithClock overrides the time source used for created_at/updated_at.
// Timestamps are stored in UTC whatever zone now reports.
func WithClock(now func() time.Time) Option {
	return func(s *SQLiteStore) {
		s.now = func() time.Time { return now().UTC() }
	}
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath,
// enables WAL mode and foreign keys, and runs any pending schema migrations.
func NewSQLiteStore(dbPath string, opts ...Option) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", buildDSN(dbPath))
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// Every connection to ":memory:" is a separate database.
	if dbPath == memoryPath {
		db.SetMaxOpenConns(1)
	}

	s := &SQLiteStore{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// buildDSN appends the per-connection pragmas. They go in the DSN rather
// than through Exec so that every pooled connection gets them. The sqlite
// time format keeps stored timestamps lexically comparable.
func buildDSN(dbPath string) string {
	pragmas := []string{
		"_pragma=foreign_keys(1)",
		"_pragma=busy_timeout(5000)",
		"_time_format=sqlite",
	}
	if dbPath != memoryPath {
		pragmas = append(pragmas, "_pragma=journal_mode(WAL)")
	}

	sep := "?"
	if strings.Contains(dbPath, "?") {
		sep = "&"
	}
	return dbPath + sep + strings.Join(pragmas, "&")
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Ping verifies the database is reachable.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("pinging sqlite db: %w", err)
	}
	return nil
}

// runMigrations checks the current schema version and applies any
// outstanding migrations in order.
func (s *SQLiteStore) runMigrations() error {
	currentVersion := 0

	// Check if schema_version table exists.
	var tableCount int
	err := s.db.Get(
		&tableCount,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	)
	if err != nil {
		return fmt.Errorf("checking schema_version table: %w", err)
	}

	if tableCount > 0 {
		err = s.db.Get(&currentVersion, "SELECT COALESCE(MAX(version), 0) FROM schema_version")
		if err != nil {
			return fmt.Errorf("reading schema version: %w", err)
		}
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}
		if _, err := s.db.Exec(m.sql); err != nil {
			return fmt.Errorf("applying migration v%d: %w", m.version, err)
		}
	}

	return nil
}

// ProjectExists reports whether a project with the given id exists.
func (s *SQLiteStore) ProjectExists(ctx context.Context, id string) (bool, error) {
	var n int
	err := s.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM projects WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("checking project %s: %w", id, err)
	}
	return n > 0, nil
}

// requireProject validates an optional project reference.
func (s *SQLiteStore) requireProject(ctx context.Context, id *string) error {
	if id == nil {
		return nil
	}
	ok, err := s.ProjectExists(ctx, *id)
	if err != nil {
		return err
	}
	if !ok {
		return invalid("Project not found")
	}
	return nil
}

// conditions accumulates WHERE terms and their bound arguments.
type conditions struct {
	terms []string
	args  []any
}

func (c *conditions) add(term string, args ...any) {
	c.terms = append(c.terms, term)
	c.args = append(c.args, args...)
}

// scoped adds a scope predicate; a zero predicate adds nothing.
func (c *conditions) scoped(p scope.Predicate) {
	if p.IsZero() {
		return
	}
	c.add(p.Clause, p.Args...)
}

func (c *conditions) where() string {
	if len(c.terms) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(c.terms, " AND ")
}

// notFound maps sql.ErrNoRows onto ErrNotFound.
func notFound(err error, what, id string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", what, id, ErrNotFound)
	}
	return fmt.Errorf("getting %s %s: %w", what, id, err)
}

// checkAffected turns a zero-row delete or update into ErrNotFound.
func checkAffected(result sql.Result, what, id string) error {
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("%s %s: %w", what, id, ErrNotFound)
	}
	return nil
}

// optionalRef normalizes an optional foreign key: an empty string unassigns.
func optionalRef(id *string) *string {
	if id == nil || *id == "" {
		return nil
	}
	return id
}

// optionalText normalizes optional free text: an empty string is stored as NULL.
func optionalText(v *string) *string {
	if v == nil || *v == "" {
		return nil
	}
	return v
}
