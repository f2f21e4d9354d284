package credentials

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/pressly/goose/v3"

	"github.com/oshepkov/lockbank/internal/client/migrations"
	"github.com/oshepkov/lockbank/internal/dbx"
)

// SQLiteRepository is the default Repository backend, a single-table
// key-value store in a local SQLite database.
type SQLiteRepository struct {
	db *sql.DB
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		log.Fatal("failed to set goose dialect:", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// OpenSQLite opens (or creates) the credential database at dsn, applies
// schema migrations, and returns a ready repository.
func OpenSQLite(ctx context.Context, dsn string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return NewSQLiteRepository(db), nil
}

// NewSQLiteRepository wraps an already-open database whose schema has been
// migrated.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, key, defaultValue string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM credentials WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return defaultValue, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get credentials[%s]: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteRepository) Set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO credentials (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set credentials[%s]: %w", key, err)
	}
	return nil
}

// SetMany writes all pairs in a single transaction, so a hash and its salt
// are never observable half-updated.
func (r *SQLiteRepository) SetMany(ctx context.Context, pairs map[string]string) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for key, value := range pairs {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO credentials (key, value) VALUES (?, ?)
				ON CONFLICT(key) DO UPDATE SET value = excluded.value
			`, key, value)
			if err != nil {
				return fmt.Errorf("failed to set credentials[%s]: %w", key, err)
			}
		}
		return nil
	})
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}
