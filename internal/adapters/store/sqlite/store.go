// Package sqlite implements the board store on SQLite through the pure-Go
// modernc.org/sqlite driver. Schema changes ship as embedded migrations
// applied on Open.
package sqlite

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"modernc.org/sqlite"

	"github.com/jsamuelsen11/noteboard/internal/ports"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// Compile-time interface checks.
var (
	_ ports.BoardStore    = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// Options configures Open.
type Options struct {
	// Path is the database file, or MemoryPath.
	Path string
	// BusyTimeout is how long SQLite waits on a locked database.
	BusyTimeout time.Duration
}

// Store is the SQLite board store. It holds a single connection, so every
// transaction runs in isolation from the others.
type Store struct {
	db    *sql.DB
	now   func() time.Time
	newID func() string
}

// foldFunc is the SQL function lowercasing text with Unicode case rules.
// SQLite's own lower() and LIKE only fold ASCII.
const foldFunc = "casefold"

var registerFold = sync.OnceValue(func() error {
	return sqlite.RegisterDeterministicScalarFunction(foldFunc, 1,
		func(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
			switch v := args[0].(type) {
			case string:
				return strings.ToLower(v), nil
			case []byte:
				return strings.ToLower(string(v)), nil
			default:
				return v, nil
			}
		})
})

// Open connects to the database described by opts and applies migrations.
func Open(ctx context.Context, opts Options) (*Store, error) {
	if err := registerFold(); err != nil {
		return nil, fmt.Errorf("registering %s: %w", foldFunc, err)
	}

	db, err := sql.Open("sqlite", dsn(opts))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// One connection: SQLite has a single writer, and the pragmas plus an
	// in-memory database only exist on the connection that created them.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		return nil, errors.Join(fmt.Errorf("database ping failed: %w", err), db.Close())
	}

	if err := migrateUp(db); err != nil {
		return nil, errors.Join(err, db.Close())
	}

	return &Store{
		db:    db,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}, nil
}

// dsn builds the driver connection string with per-connection pragmas.
func dsn(opts Options) string {
	q := url.Values{}
	q.Add("_pragma", "foreign_keys(1)")
	if opts.BusyTimeout > 0 {
		q.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", opts.BusyTimeout.Milliseconds()))
	}
	if opts.Path == MemoryPath || opts.Path == "" {
		return "file::memory:?" + q.Encode()
	}
	q.Add("_pragma", "journal_mode(WAL)")
	return "file:" + opts.Path + "?" + q.Encode()
}

// Close releases the connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "sqlite"
}

// HealthCheck implements ports.HealthChecker.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("sqlite ping: %w", err)
	}
	return nil
}

// WithinTx implements ports.BoardStore.
func (s *Store) WithinTx(ctx context.Context, fn func(tx ports.BoardTx) error) error {
	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		// Rollback after a successful commit reports ErrTxDone.
		_ = sqlTx.Rollback()
	}()

	if err := fn(&boardTx{tx: sqlTx, now: s.now, newID: s.newID}); err != nil {
		return err
	}

	if err := sqlTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// boardTx binds the repositories to one transaction.
type boardTx struct {
	tx    *sql.Tx
	now   func() time.Time
	newID func() string
}
