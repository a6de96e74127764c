package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jask/fireflytui/internal/database/repository"
)

// SeedDefaults ensures a new database has a few accounts to filter by.
// It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB, currency string) error {
	acctRepo := repository.NewAccountRepo(db)
	existing, err := acctRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("list accounts: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}
	defaults := []struct {
		name string
		kind string
	}{
		{"Checking", "asset"},
		{"Savings", "asset"},
		{"Credit Card", "liability"},
		{"Cash", "asset"},
	}
	for _, d := range defaults {
		acct := repository.Account{
			ID:           uuid.NewSHA1(uuid.NameSpaceOID, []byte("account:"+d.name)).String(),
			Name:         d.name,
			AccountType:  d.kind,
			CurrencyCode: currency,
		}
		if err := acctRepo.Upsert(ctx, acct); err != nil {
			return fmt.Errorf("seed %s: %w", d.name, err)
		}
	}
	return nil
}
