package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/inventorypro/cli/internal/dbx"
)

// stateRepo is a small key/value repository over the state table. It is the
// only code that touches SQL; Store layers the session semantics on top.
type stateRepo struct {
	db dbx.DBTX
}

func newStateRepo(db dbx.DBTX) *stateRepo {
	return &stateRepo{db: db}
}

// Get returns the stored value for key, or nil when the key is absent.
func (r *stateRepo) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM state WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get state[%s]: %w", key, err)
	}
	return value, nil
}

func (r *stateRepo) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set state[%s]: %w", key, err)
	}
	return nil
}

func (r *stateRepo) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM state WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete state[%s]: %w", key, err)
	}
	return nil
}
