package tui

import (
	"github.com/jask/fireflytui/internal/database/repository"
)

type errMsg struct{ err error }

type accountsMsg []repository.Account

// savedMsg acknowledges a preference save. err is set when it failed.
type savedMsg struct {
	version uint64
	err     error
}

type configSavedMsg struct{}
