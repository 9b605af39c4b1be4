package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/akyairhashvil/zenith/internal/logging"
)

const defaultDBTimeout = 5 * time.Second

// schemaVersion is stored in PRAGMA user_version.
const schemaVersion = 2

// Database is the local goal store. It is safe for concurrent use.
type Database struct {
	DB   *sql.DB
	path string
}

// Open creates or opens the SQLite file at path and brings its schema up to
// date. The parent directory is created if needed.
func Open(ctx context.Context, path string) (*Database, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL", path)
	sqlDB, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// One writer keeps SQLITE_BUSY out of concurrent toggles.
	sqlDB.SetMaxOpenConns(1)

	d := &Database{DB: sqlDB, path: path}
	if err := d.ping(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	if err := d.migrate(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	logging.L().Debug("database opened", zap.String("path", path))
	return d, nil
}

func (d *Database) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close()
}

// Path returns the file the store was opened from.
func (d *Database) Path() string {
	return d.path
}

func (d *Database) ping(ctx context.Context) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	if err := d.DB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	var result string
	if err := d.DB.QueryRowContext(ctx, "PRAGMA quick_check").Scan(&result); err != nil {
		if strings.Contains(err.Error(), "file is not a database") {
			return ErrDatabaseCorrupted
		}
		return fmt.Errorf("check database: %w", err)
	}
	if result != "ok" {
		return fmt.Errorf("%w: %s", ErrDatabaseCorrupted, result)
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS goals (
		id TEXT PRIMARY KEY,
		plan_year INTEGER NOT NULL,
		title TEXT NOT NULL,
		category TEXT NOT NULL,
		kr_number TEXT NOT NULL DEFAULT '',
		target REAL NOT NULL,
		actual REAL NOT NULL DEFAULT 0,
		unit TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		position INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_goals_year ON goals(plan_year, position);
	CREATE TABLE IF NOT EXISTS daily_logs (
		goal_id TEXT NOT NULL,
		date TEXT NOT NULL,
		value REAL NOT NULL DEFAULT 1,
		PRIMARY KEY (goal_id, date),
		FOREIGN KEY (goal_id) REFERENCES goals(id) ON DELETE CASCADE
	);`,
	`CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT
	);`,
}

func (d *Database) migrate(ctx context.Context) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	var version int
	if err := d.DB.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version > schemaVersion {
		return fmt.Errorf("database schema v%d is newer than this build (v%d)", version, schemaVersion)
	}
	for i := version; i < len(migrations); i++ {
		tx, err := d.DB.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("migration %d begin: %w", i+1, err)
		}
		if _, err := tx.ExecContext(ctx, migrations[i]); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d: %w", i+1, err)
		}
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", i+1)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d version: %w", i+1, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("migration %d commit: %w", i+1, err)
		}
	}
	return nil
}

func (d *Database) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); ok {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

func (d *Database) withDBContext(ctx context.Context, fn func(context.Context) error) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	return fn(ctx)
}

func withDBContextResult[T any](d *Database, ctx context.Context, fn func(context.Context) (T, error)) (T, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	return fn(ctx)
}

// withTx runs fn in a transaction, rolling back on error.
func (d *Database) withTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			logging.L().Warn("rollback failed", zap.Error(rbErr))
		}
		return err
	}
	return tx.Commit()
}
