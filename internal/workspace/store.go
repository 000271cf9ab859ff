package workspace

import (
	"context"
	"database/sql"
	stderrors "errors"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	gerror "github.com/msto63/gauss/foundation/core/error"
	"github.com/msto63/gauss/foundation/core/errors"
	"github.com/msto63/gauss/foundation/core/log"
	"github.com/msto63/gauss/foundation/utils/filex"
)

// MemoryPath opens a private in-memory database
const MemoryPath = ":memory:"

// Config holds the store configuration
type Config struct {
	Path string
}

// Store persists workspace entries in SQLite
type Store struct {
	db     *sql.DB
	mu     sync.RWMutex
	logger *log.Logger
}

// Open opens or creates the database at cfg.Path. A nil logger discards
// log output.
func Open(cfg Config, logger *log.Logger) (*Store, error) {
	if logger == nil {
		logger = log.Nop()
	}
	if cfg.Path == "" {
		return nil, errors.InvalidArgument(errors.ModuleWorkspace, "open", cfg.Path, "empty database path")
	}

	dsn := cfg.Path
	if cfg.Path != MemoryPath {
		if err := filex.EnsureParentDir(cfg.Path, 0o755); err != nil {
			return nil, errors.OperationFailed(errors.ModuleWorkspace, "open", gerror.CodeDatabaseError, err)
		}
		dsn = "file:" + cfg.Path + "?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, errors.OperationFailed(errors.ModuleWorkspace, "open", gerror.CodeDatabaseError, err)
	}
	if cfg.Path == MemoryPath {
		// every new connection would see its own empty database
		db.SetMaxOpenConns(1)
	}

	s := &Store{db: db, logger: logger.WithField("path", cfg.Path)}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, errors.OperationFailed(errors.ModuleWorkspace, "open", gerror.CodeDatabaseError, err)
	}
	s.logger.Debug("workspace opened")
	return s, nil
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS entries (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		kind TEXT NOT NULL,
		canonical TEXT NOT NULL,
		locale TEXT NOT NULL,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_entries_kind ON entries(kind);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

func dbError(op string, err error) error {
	return errors.OperationFailed(errors.ModuleWorkspace, op, gerror.CodeDatabaseError, err)
}

// Save inserts e or replaces the entry with the same name. A replaced entry
// keeps its ID and creation time. The stored entry is returned.
func (s *Store) Save(ctx context.Context, e Entry) (Entry, error) {
	if err := e.Validate(); err != nil {
		return Entry{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	existing, err := s.get(ctx, e.Name)
	switch {
	case err == nil:
		e.ID, e.CreatedAt = existing.ID, existing.CreatedAt
	case stderrors.Is(err, errors.ErrNotFound):
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		e.CreatedAt = now
	default:
		return Entry{}, err
	}
	e.UpdatedAt = now

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO entries (id, name, kind, canonical, locale, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			kind = excluded.kind,
			canonical = excluded.canonical,
			locale = excluded.locale,
			updated_at = excluded.updated_at
	`, e.ID, e.Name, string(e.Kind), e.Canonical, e.Locale, e.CreatedAt, e.UpdatedAt)
	if err != nil {
		return Entry{}, dbError("save", err)
	}

	s.logger.Debug("entry saved", log.String("name", e.Name), log.String("kind", string(e.Kind)))
	return e, nil
}

// Get returns the entry with the given name
func (s *Store) Get(ctx context.Context, name string) (Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.get(ctx, name)
}

func (s *Store) get(ctx context.Context, name string) (Entry, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, kind, canonical, locale, created_at, updated_at
		FROM entries WHERE name = ?
	`, name)

	e, err := scanEntry(row)
	if stderrors.Is(err, sql.ErrNoRows) {
		return Entry{}, errors.NotFound(errors.ModuleWorkspace, "get", name)
	}
	if err != nil {
		return Entry{}, dbError("get", err)
	}
	return e, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (Entry, error) {
	var e Entry
	var kind string
	if err := row.Scan(&e.ID, &e.Name, &kind, &e.Canonical, &e.Locale, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return Entry{}, err
	}
	e.Kind = Kind(kind)
	return e, nil
}

// List returns all entries ordered by name. A non-empty kind filters the
// result.
func (s *Store) List(ctx context.Context, kind Kind) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT id, name, kind, canonical, locale, created_at, updated_at FROM entries`
	args := []any{}
	if kind != "" {
		query += ` WHERE kind = ?`
		args = append(args, string(kind))
	}
	query += ` ORDER BY name`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbError("list", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, dbError("list", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError("list", err)
	}
	return entries, nil
}

// Delete removes the entry with the given name
func (s *Store) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM entries WHERE name = ?`, name)
	if err != nil {
		return dbError("delete", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return dbError("delete", err)
	}
	if n == 0 {
		return errors.NotFound(errors.ModuleWorkspace, "delete", name)
	}

	s.logger.Debug("entry deleted", log.String("name", name))
	return nil
}
