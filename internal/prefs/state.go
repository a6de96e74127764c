// Package prefs saves and restores the filter state between sessions.
package prefs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jask/fireflytui/internal/database"
	"github.com/jask/fireflytui/internal/database/repository"
	"github.com/jask/fireflytui/internal/store"
)

const (
	keyCurrency    = "currency"
	keyRangeMonths = "range_months"
	keyRangeStart  = "range_start"

	dateLayout = "2006-01-02"
)

// Repos bundles the tables the state lives in. DB is the handle Save opens
// its transaction on.
type Repos struct {
	DB          *sql.DB
	Preferences *repository.PreferenceRepo
	Selection   *repository.SelectionRepo
}

// Load overlays saved preferences on fallback. Missing or unreadable values
// keep the fallback's value.
func Load(ctx context.Context, repos Repos, fallback store.State) (store.State, error) {
	st := fallback.Clone()

	if code, ok, err := get(ctx, repos, keyCurrency); err != nil {
		return fallback, err
	} else if ok {
		if norm, err := store.NormalizeCurrency(code); err == nil {
			st.CurrencyCode = norm
		}
	}

	months := st.Range.Months
	if raw, ok, err := get(ctx, repos, keyRangeMonths); err != nil {
		return fallback, err
	} else if ok {
		if n, err := strconv.Atoi(raw); err == nil && store.ValidRangeMonths(n) {
			months = n
		}
	}

	anchor := st.Range.Start
	if raw, ok, err := get(ctx, repos, keyRangeStart); err != nil {
		return fallback, err
	} else if ok {
		if t, err := time.ParseInLocation(dateLayout, raw, st.Range.Start.Location()); err == nil {
			anchor = t
		}
	}
	if r, err := store.NewRange(anchor, months); err == nil {
		st.Range = r
	}

	ids, err := repos.Selection.Load(ctx)
	if err != nil {
		return fallback, fmt.Errorf("load selection: %w", err)
	}
	if ids != nil {
		st.SelectedAccountIDs = ids
	}
	return st, nil
}

// Save writes st so the next Load restores it. The snapshot is written in one
// transaction: either every value is stored or none is.
func Save(ctx context.Context, repos Repos, st store.State) error {
	if repos.DB == nil {
		return errors.New("save preferences: db not configured")
	}
	values := []struct{ key, value string }{
		{keyCurrency, st.CurrencyCode},
		{keyRangeMonths, strconv.Itoa(st.Range.Months)},
		{keyRangeStart, st.Range.Start.Format(dateLayout)},
	}
	return database.WithTx(ctx, repos.DB, func(tx *sql.Tx) error {
		p := repos.Preferences.WithTx(tx)
		for _, kv := range values {
			if err := p.Set(ctx, kv.key, kv.value); err != nil {
				return fmt.Errorf("save %s: %w", kv.key, err)
			}
		}
		if err := repos.Selection.WithTx(tx).Save(ctx, st.SelectedAccountIDs); err != nil {
			return fmt.Errorf("save selection: %w", err)
		}
		return nil
	})
}

func get(ctx context.Context, repos Repos, key string) (string, bool, error) {
	v, err := repos.Preferences.Get(ctx, key)
	if errors.Is(err, repository.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("load %s: %w", key, err)
	}
	return v, true, nil
}
