package repository

import (
	"context"
	"database/sql"
)

// SelectionRepo stores which accounts the range filter is limited to.
type SelectionRepo struct {
	db DBTX
}

func NewSelectionRepo(db DBTX) *SelectionRepo {
	return &SelectionRepo{db: db}
}

// WithTx returns a repo that writes through tx.
func (r *SelectionRepo) WithTx(tx *sql.Tx) *SelectionRepo {
	return &SelectionRepo{db: tx}
}

// Save replaces the selection. Duplicates and blank ids are dropped; order is
// kept. On a *sql.DB the replacement runs in its own transaction; on a
// *sql.Tx it joins the caller's.
func (r *SelectionRepo) Save(ctx context.Context, accountIDs []string) error {
	db, ok := r.db.(*sql.DB)
	if !ok {
		return replaceSelection(ctx, r.db, accountIDs)
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()
	if err := replaceSelection(ctx, tx, accountIDs); err != nil {
		return err
	}
	return tx.Commit()
}

func replaceSelection(ctx context.Context, tx DBTX, accountIDs []string) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM account_selection`); err != nil {
		return err
	}
	seen := map[string]bool{}
	pos := 0
	for _, id := range accountIDs {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		if _, err := tx.ExecContext(ctx, `INSERT INTO account_selection(account_id, position) VALUES(?, ?)`, id, pos); err != nil {
			return err
		}
		pos++
	}
	return nil
}

// Load returns the selected account ids in the order they were saved.
func (r *SelectionRepo) Load(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT account_id FROM account_selection ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}
