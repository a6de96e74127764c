package repository

import (
	"context"
	"database/sql"
	"errors"
)

// PreferenceRepo is a small key/value table for UI state.
type PreferenceRepo struct {
	db DBTX
}

func NewPreferenceRepo(db DBTX) *PreferenceRepo {
	return &PreferenceRepo{db: db}
}

// WithTx returns a repo that writes through tx.
func (r *PreferenceRepo) WithTx(tx *sql.Tx) *PreferenceRepo {
	return &PreferenceRepo{db: tx}
}

// Get returns the stored value, or ErrNotFound.
func (r *PreferenceRepo) Get(ctx context.Context, key string) (string, error) {
	var v string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM preferences WHERE key = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	return v, err
}

func (r *PreferenceRepo) Set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO preferences(key, value, updated_at) VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at;
	`, key, value, now())
	return err
}
