package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jask/fireflytui/internal/database/repository"
)

// Route names.
const (
	routeHome          = "Home"
	routeAccounts      = "Accounts"
	routeAccountDetail = "AccountDetail"
)

func accountScopeLabel(n int) string {
	if n == 0 {
		return "all accounts"
	}
	if n == 1 {
		return "1 selected account"
	}
	return strconv.Itoa(n) + " selected accounts"
}

func (a *App) renderHome() string {
	st := a.store.Snapshot()
	var b strings.Builder
	b.WriteString(a.styles.heading.Render(st.Range.Title) + "\n\n")
	row := func(label, value string) {
		b.WriteString(a.styles.label.Render(fmt.Sprintf("%-10s", label)) + value + "\n")
	}
	row("From", a.cal.Format(st.Range.Start, "dddd, MMMM D YYYY"))
	row("To", a.cal.Format(st.Range.End, "dddd, MMMM D YYYY"))
	row("Currency", st.CurrencyCode)
	row("Scope", accountScopeLabel(len(st.SelectedAccountIDs)))
	for _, id := range st.SelectedAccountIDs {
		b.WriteString("  • " + a.accountName(id) + "\n")
	}
	return b.String()
}

func (a *App) renderAccounts() string {
	var b strings.Builder
	b.WriteString(a.styles.heading.Render("Accounts") + "\n\n")
	if len(a.accounts) == 0 {
		b.WriteString(a.styles.muted.Render("no accounts") + "\n")
		return b.String()
	}
	selected := map[string]bool{}
	for _, id := range a.store.Snapshot().SelectedAccountIDs {
		selected[id] = true
	}
	for i, acct := range a.accounts {
		mark := " "
		if selected[acct.ID] {
			mark = a.styles.selected.Render("●")
		}
		line := fmt.Sprintf("%s %-20s %-10s %s", mark, acct.Name, acct.AccountType, acct.CurrencyCode)
		if i == a.accountCursor {
			line = a.styles.cursor.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (a *App) renderAccountDetail(id string) string {
	acct, ok := a.account(id)
	if !ok {
		return a.styles.muted.Render("account not found") + "\n"
	}
	var b strings.Builder
	b.WriteString(a.styles.heading.Render(acct.Name) + "\n\n")
	row := func(label, value string) {
		b.WriteString(a.styles.label.Render(fmt.Sprintf("%-10s", label)) + value + "\n")
	}
	row("Type", acct.AccountType)
	row("Currency", acct.CurrencyCode)
	if !acct.CreatedAt.IsZero() {
		row("Created", a.cal.Format(acct.CreatedAt, "MMMM D, YYYY"))
	}
	return b.String()
}

func (a *App) account(id string) (repository.Account, bool) {
	for _, acct := range a.accounts {
		if acct.ID == id {
			return acct, true
		}
	}
	return repository.Account{}, false
}

func (a *App) accountName(id string) string {
	if acct, ok := a.account(id); ok {
		return acct.Name
	}
	return id
}
