package postgres

import (
	"context"
	"database/sql"
	"fmt"

	interfaces "github.com/Miguelburitica/accounts-project/internal/interfaces"
	_ "github.com/lib/pq"
)

const schema = `CREATE TABLE IF NOT EXISTS ledger_state (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

type PostgresStateStore struct {
	db *sql.DB
}

func NewPostgresStateStore(db *sql.DB) *PostgresStateStore {
	return &PostgresStateStore{
		db: db,
	}
}

// Open connects to dsn and makes sure the state table exists.
func Open(ctx context.Context, dsn string) (*PostgresStateStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	p := NewPostgresStateStore(db)
	if err := p.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return p, nil
}

func (p *PostgresStateStore) Migrate(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create ledger_state: %w", err)
	}
	return nil
}

func (p *PostgresStateStore) Get(ctx context.Context, key string) (string, bool, error) {
	const query = `SELECT value FROM ledger_state WHERE key = $1`

	var value string
	err := p.db.QueryRowContext(ctx, query, key).Scan(&value)

	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	return value, true, nil
}

func (p *PostgresStateStore) Set(ctx context.Context, key, value string) error {
	const query = `INSERT INTO ledger_state (key, value, updated_at)
	VALUES ($1, $2, now())
	ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`

	dbTx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			dbTx.Rollback()
		}
	}()

	if _, err = dbTx.ExecContext(ctx, query, key, value); err != nil {
		return err
	}

	err = dbTx.Commit()
	return err
}

func (p *PostgresStateStore) Close() error {
	return p.db.Close()
}

var _ interfaces.StateStore = (*PostgresStateStore)(nil)
