package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/fireflytui/internal/database/repository"
	"github.com/jask/fireflytui/internal/store"
)

type filterField int

const (
	fieldCurrency filterField = iota
	fieldRange
	fieldAccounts
	fieldCount
)

// filterForm is the editable copy of the filters while FiltersScreen is open.
// Nothing reaches the store until the form is applied.
type filterForm struct {
	currencies []string
	currency   int
	width      int
	accounts   []repository.Account
	selected   []string
	cursor     int
	field      filterField
	searching  bool
	search     textinput.Model
}

func newFilterForm(st store.State, currencies []string, accounts []repository.Account) *filterForm {
	ti := textinput.New()
	ti.Placeholder = "search accounts"
	ti.Prompt = "/ "
	ti.CharLimit = 40

	f := &filterForm{
		currencies: slices.Clone(currencies),
		accounts:   accounts,
		selected:   slices.Clone(st.SelectedAccountIDs),
		search:     ti,
	}
	if i := slices.Index(f.currencies, st.CurrencyCode); i >= 0 {
		f.currency = i
	} else {
		f.currencies = append([]string{st.CurrencyCode}, f.currencies...)
	}
	if i := slices.Index(store.RangeWidths, st.Range.Months); i >= 0 {
		f.width = i
	}
	return f
}

// actions returns what applying the form dispatches, in order.
func (f *filterForm) actions() []store.Action {
	return []store.Action{
		store.SetCurrency{Code: f.currencies[f.currency]},
		store.SetRangeMonths{Months: store.RangeWidths[f.width]},
		store.SetSelectedAccounts{IDs: slices.Clone(f.selected)},
	}
}

func (f *filterForm) visible() []repository.Account {
	return matchAccounts(f.accounts, f.search.Value())
}

func (f *filterForm) isSelected(id string) bool {
	return slices.Contains(f.selected, id)
}

func (f *filterForm) toggle(id string) {
	if i := slices.Index(f.selected, id); i >= 0 {
		f.selected = slices.Delete(f.selected, i, i+1)
		return
	}
	f.selected = append(f.selected, id)
}

// filterResult tells the App what the form wants after a key.
type filterResult int

const (
	filterStay filterResult = iota
	filterApply
	filterSaveDefaults
	filterCancel
)

func (f *filterForm) update(msg tea.KeyMsg, keys keyMap) (filterResult, tea.Cmd) {
	if f.searching {
		switch msg.Type {
		case tea.KeyEsc, tea.KeyEnter:
			f.searching = false
			f.search.Blur()
			return filterStay, nil
		}
		var cmd tea.Cmd
		f.search, cmd = f.search.Update(msg)
		f.cursor = 0
		return filterStay, cmd
	}

	switch {
	case key.Matches(msg, keys.Back):
		return filterCancel, nil
	case key.Matches(msg, keys.Apply):
		return filterApply, nil
	case key.Matches(msg, keys.Defaults):
		return filterSaveDefaults, nil
	case key.Matches(msg, keys.NextField):
		f.field = (f.field + 1) % fieldCount
	case key.Matches(msg, keys.PrevField):
		f.field = (f.field + fieldCount - 1) % fieldCount
	case key.Matches(msg, keys.Left):
		f.step(-1)
	case key.Matches(msg, keys.Right):
		f.step(1)
	case key.Matches(msg, keys.Up):
		if f.field == fieldAccounts && f.cursor > 0 {
			f.cursor--
		}
	case key.Matches(msg, keys.Down):
		if f.field == fieldAccounts && f.cursor < len(f.visible())-1 {
			f.cursor++
		}
	case key.Matches(msg, keys.Toggle):
		if vis := f.visible(); f.field == fieldAccounts && f.cursor < len(vis) {
			f.toggle(vis[f.cursor].ID)
		}
	case key.Matches(msg, keys.Clear):
		f.selected = nil
	case key.Matches(msg, keys.Search):
		f.field = fieldAccounts
		f.searching = true
		return filterStay, f.search.Focus()
	}
	return filterStay, nil
}

func (f *filterForm) step(delta int) {
	switch f.field {
	case fieldCurrency:
		f.currency = wrap(f.currency+delta, len(f.currencies))
	case fieldRange:
		f.width = wrap(f.width+delta, len(store.RangeWidths))
	}
}

func wrap(i, n int) int {
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}

func (f *filterForm) view(s styles) string {
	var b strings.Builder
	b.WriteString(s.heading.Render("Filters") + "\n\n")

	field := func(ff filterField, label, value string) {
		v := value
		if f.field == ff {
			v = s.focused.Render("‹ " + value + " ›")
		}
		b.WriteString(s.label.Render(fmt.Sprintf("%-10s", label)) + v + "\n")
	}
	field(fieldCurrency, "Currency", f.currencies[f.currency])
	field(fieldRange, "Range", fmt.Sprintf("%d month(s)", store.RangeWidths[f.width]))

	b.WriteString("\n")
	title := fmt.Sprintf("Accounts (%s)", accountScopeLabel(len(f.selected)))
	if f.field == fieldAccounts {
		title = s.focused.Render(title)
	} else {
		title = s.label.Render(title)
	}
	b.WriteString(title + "\n")
	if f.searching || f.search.Value() != "" {
		b.WriteString(f.search.View() + "\n")
	}
	vis := f.visible()
	if len(vis) == 0 {
		b.WriteString(s.muted.Render("no matching accounts") + "\n")
	}
	for i, a := range vis {
		mark := "○"
		if f.isSelected(a.ID) {
			mark = s.selected.Render("●")
		}
		line := fmt.Sprintf("%s %s", mark, a.Name)
		if f.field == fieldAccounts && i == f.cursor {
			line = s.cursor.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}
