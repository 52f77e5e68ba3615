package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// schema is applied on every open. All statements are idempotent, so an
// existing database file is left untouched.
const schema = `
CREATE TABLE IF NOT EXISTS students (
    id              INTEGER PRIMARY KEY AUTOINCREMENT,
    grade           INTEGER NOT NULL,
    class_num       INTEGER NOT NULL,
    student_num     INTEGER NOT NULL,
    name            TEXT    NOT NULL,
    phone           TEXT,
    address         TEXT,
    guardian_phone1 TEXT,
    guardian_phone2 TEXT
);

CREATE TABLE IF NOT EXISTS consultations (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    student_id INTEGER NOT NULL REFERENCES students(id) ON DELETE CASCADE,
    seq        INTEGER NOT NULL,
    date       TEXT    NOT NULL,
    content    TEXT    NOT NULL,
    UNIQUE (student_id, seq)
);

CREATE TABLE IF NOT EXISTS work_logs (
    id      INTEGER PRIMARY KEY AUTOINCREMENT,
    date    TEXT NOT NULL UNIQUE,
    content TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS todos (
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    content      TEXT    NOT NULL,
    is_completed BOOLEAN NOT NULL DEFAULT 0
);
`

// SQLiteDB database connection structure
type SQLiteDB struct {
	DB *sqlx.DB
}

// NewSQLiteDB opens the file-backed store and creates the schema if absent.
func NewSQLiteDB(path string) (*SQLiteDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// busy_timeout lets concurrent request transactions queue instead of
	// failing immediately with SQLITE_BUSY.
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)

	dbx, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := dbx.PingContext(ctx); err != nil {
		dbx.Close()
		return nil, fmt.Errorf("failed to establish database connection: %w", err)
	}

	if _, err := dbx.ExecContext(ctx, schema); err != nil {
		dbx.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &SQLiteDB{DB: dbx}, nil
}

// Close closes the underlying handle
func (db *SQLiteDB) Close() error {
	if db.DB != nil {
		return db.DB.Close()
	}
	return nil
}

// TransactionFn is a function that executes within a transaction
type TransactionFn func(ctx context.Context, tx *sqlx.Tx) error

// WithTransaction runs a function within a transaction
func WithTransaction(ctx context.Context, dbx *sqlx.DB, fn TransactionFn) error {
	tx, err := dbx.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("error: %v, rollback error: %w", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
