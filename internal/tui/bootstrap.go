package tui

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jask/fireflytui/internal/database/repository"
	"github.com/jask/fireflytui/internal/prefs"
	"github.com/jask/fireflytui/internal/store"
)

// Repos bundles the repositories the UI reads and writes. Any of them may be
// nil, in which case the matching load or save is skipped.
type Repos struct {
	Accounts *repository.AccountRepo
	Prefs    prefs.Repos
}

func (r Repos) persistent() bool {
	return r.Prefs.DB != nil && r.Prefs.Preferences != nil && r.Prefs.Selection != nil
}

// Bootstrap loads the saved filter state and the account list concurrently.
// Selected ids that no longer name an account are dropped.
func Bootstrap(ctx context.Context, repos Repos, fallback store.State) (store.State, []repository.Account, error) {
	var (
		st       = fallback
		accounts []repository.Account
	)
	g, gctx := errgroup.WithContext(ctx)
	if repos.persistent() {
		g.Go(func() error {
			loaded, err := prefs.Load(gctx, repos.Prefs, fallback)
			if err != nil {
				return fmt.Errorf("load preferences: %w", err)
			}
			st = loaded
			return nil
		})
	}
	if repos.Accounts != nil {
		g.Go(func() error {
			list, err := repos.Accounts.List(gctx)
			if err != nil {
				return fmt.Errorf("load accounts: %w", err)
			}
			accounts = list
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fallback, nil, err
	}

	if repos.Accounts != nil {
		known := make(map[string]bool, len(accounts))
		for _, a := range accounts {
			known[a.ID] = true
		}
		kept := st.SelectedAccountIDs[:0:0]
		for _, id := range st.SelectedAccountIDs {
			if known[id] {
				kept = append(kept, id)
			}
		}
		st.SelectedAccountIDs = kept
	}
	return st, accounts, nil
}
