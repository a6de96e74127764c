package tui

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/fireflytui/internal/calendar"
	"github.com/jask/fireflytui/internal/config"
	"github.com/jask/fireflytui/internal/database/repository"
	"github.com/jask/fireflytui/internal/feedback"
	"github.com/jask/fireflytui/internal/header"
	"github.com/jask/fireflytui/internal/nav"
	"github.com/jask/fireflytui/internal/prefs"
	"github.com/jask/fireflytui/internal/store"
	"github.com/jask/fireflytui/internal/theme"
)

// Options wires an App. Store and Nav are required.
type Options struct {
	Config   config.Config
	Store    *store.Store
	Nav      *nav.Navigator
	Repos    Repos
	Accounts []repository.Account
	Feedback feedback.Impactor
	Calendar calendar.Formatter
	Colors   theme.Colors
}

// App is the root Bubble Tea model.
type App struct {
	ctx      context.Context
	cfg      config.Config
	repos    Repos
	store    *store.Store
	nav      *nav.Navigator
	cal      calendar.Formatter
	colors   theme.Colors
	styles   styles
	keys     keyMap
	help     help.Model
	header   *header.Builder
	headText header.Renderer
	actions  *header.Actions

	headOut       *header.Output
	accounts      []repository.Account
	accountCursor int
	filters       *filterForm
	status        string
	statusErr     bool
	width         int
	height        int
	savedVersion  uint64
	saving        bool
}

// NewNavigator builds the navigation container for a layout from config.
func NewNavigator(layout string) *nav.Navigator {
	if layout == config.NavigationTabs {
		return nav.NewTabs([]string{routeHome, routeAccounts}, routeAccountDetail, header.FiltersScreen)
	}
	return nav.NewStack(routeHome, routeAccounts, routeAccountDetail, header.FiltersScreen)
}

func New(ctx context.Context, opts Options) *App {
	if ctx == nil {
		ctx = context.Background()
	}
	cal := opts.Calendar
	if cal == nil {
		cal = calendar.Moment{}
	}
	a := &App{
		ctx:          ctx,
		cfg:          opts.Config,
		repos:        opts.Repos,
		store:        opts.Store,
		nav:          opts.Nav,
		cal:          cal,
		colors:       opts.Colors,
		styles:       newStyles(opts.Colors),
		keys:         defaultKeys(),
		help:         help.New(),
		header:       header.NewBuilder(cal),
		accounts:     opts.Accounts,
		status:       "Ready",
		width:        80,
		height:       24,
		savedVersion: opts.Store.Version(),
	}
	a.actions = header.NewActions(ctx, a.store, a.nav, opts.Feedback)
	a.evaluate()
	return a
}

func (a *App) Init() tea.Cmd {
	return a.loadAccounts()
}

func (a *App) loadAccounts() tea.Cmd {
	if a.repos.Accounts == nil {
		return nil
	}
	return func() tea.Msg {
		list, err := a.repos.Accounts.List(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return accountsMsg(list)
	}
}

func (a *App) saveState(st store.State, version uint64) tea.Cmd {
	if !a.repos.persistent() {
		return nil
	}
	return func() tea.Msg {
		if err := prefs.Save(a.ctx, a.repos.Prefs, st); err != nil {
			return savedMsg{version: version, err: fmt.Errorf("save preferences: %w", err)}
		}
		return savedMsg{version: version}
	}
}

func saveConfig(cfg config.Config) tea.Cmd {
	return func() tea.Msg {
		if err := config.Save(cfg); err != nil {
			return errMsg{fmt.Errorf("save config: %w", err)}
		}
		return configSavedMsg{}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.help.Width = m.Width
	case accountsMsg:
		a.accounts = m
		if a.accountCursor >= len(a.accounts) {
			a.accountCursor = max(len(a.accounts)-1, 0)
		}
	case errMsg:
		a.setError(m.err)
	case savedMsg:
		a.saving = false
		if m.err != nil {
			a.setError(m.err)
		} else {
			log.Printf("tui: saved state version %d", m.version)
		}
	case configSavedMsg:
		a.setStatus("Defaults saved")
	case tea.MouseMsg:
		cmd = a.handleMouse(m)
	case tea.KeyMsg:
		if m.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		if a.nav.Current().Name == header.FiltersScreen {
			cmd = a.handleFilterKey(m)
		} else {
			var quit bool
			cmd, quit = a.handleKey(m)
			if quit {
				return a, tea.Quit
			}
		}
	}
	return a, tea.Batch(cmd, a.afterChange())
}

// afterChange re-evaluates the header and persists store changes. At most one
// save is in flight; changes made meanwhile are written once it is
// acknowledged, so an older snapshot never lands after a newer one.
func (a *App) afterChange() tea.Cmd {
	a.evaluate()
	v := a.store.Version()
	if a.saving || v == a.savedVersion {
		return nil
	}
	cmd := a.saveState(a.store.Snapshot(), v)
	if cmd != nil {
		a.saving = true
		a.savedVersion = v
	}
	return cmd
}

func (a *App) evaluate() {
	a.headOut = a.header.Evaluate(a.nav.State(), a.store.Snapshot(), a.colors)
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	k := a.keys
	route := a.nav.Current()
	switch {
	case key.Matches(msg, k.Quit):
		return nil, true
	case key.Matches(msg, k.Help):
		a.help.ShowAll = !a.help.ShowAll
	case key.Matches(msg, k.Prev):
		a.actions.ShiftBack()
	case key.Matches(msg, k.Next):
		a.actions.ShiftForward()
	case key.Matches(msg, k.Today):
		if err := a.store.Dispatch(store.SetRange{Direction: 0}); err != nil {
			a.setError(err)
		}
	case key.Matches(msg, k.Filters):
		a.openFilters()
	case key.Matches(msg, k.Accounts):
		a.navigate(routeAccounts, nil)
	case key.Matches(msg, k.Home):
		a.navigate(routeHome, nil)
	case key.Matches(msg, k.Reload):
		a.setStatus("Reloading accounts")
		return a.loadAccounts(), false
	case key.Matches(msg, k.Back):
		a.nav.Back()
	case route.Name == routeAccounts && key.Matches(msg, k.Up):
		if a.accountCursor > 0 {
			a.accountCursor--
		}
	case route.Name == routeAccounts && key.Matches(msg, k.Down):
		if a.accountCursor < len(a.accounts)-1 {
			a.accountCursor++
		}
	case route.Name == routeAccounts && key.Matches(msg, k.Open):
		if a.accountCursor < len(a.accounts) {
			a.navigate(routeAccountDetail, map[string]string{"id": a.accounts[a.accountCursor].ID})
		}
	}
	return nil, false
}

func (a *App) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	c, ok := a.headText.HitTest(a.headOut, a.width, msg.X, msg.Y)
	if !ok {
		return nil
	}
	if c.Action == header.ActionOpenFilters {
		a.openFilters()
		return nil
	}
	if err := a.actions.Press(c); err != nil {
		a.setError(err)
	}
	return nil
}

func (a *App) openFilters() {
	if a.nav.Current().Name == header.FiltersScreen && a.filters != nil {
		return
	}
	if err := a.actions.OpenFilters(); err != nil {
		a.setError(err)
		return
	}
	a.filters = newFilterForm(a.store.Snapshot(), a.cfg.UI.Currencies, a.accounts)
}

func (a *App) handleFilterKey(msg tea.KeyMsg) tea.Cmd {
	if a.filters == nil {
		a.filters = newFilterForm(a.store.Snapshot(), a.cfg.UI.Currencies, a.accounts)
	}
	res, cmd := a.filters.update(msg, a.keys)
	switch res {
	case filterSaveDefaults:
		a.cfg.UI.Currency = a.filters.currencies[a.filters.currency]
		a.cfg.UI.RangeMonths = store.RangeWidths[a.filters.width]
		cmd = tea.Batch(cmd, saveConfig(a.cfg))
		fallthrough
	case filterApply:
		var errs []error
		for _, act := range a.filters.actions() {
			if err := a.store.Dispatch(act); err != nil {
				errs = append(errs, err)
			}
		}
		if err := errors.Join(errs...); err != nil {
			a.setError(err)
		} else {
			a.setStatus("Filters applied")
		}
		a.closeFilters()
	case filterCancel:
		a.closeFilters()
	}
	return cmd
}

func (a *App) closeFilters() {
	a.filters = nil
	a.nav.Back()
}

func (a *App) navigate(name string, params map[string]string) {
	if err := a.nav.Navigate(name, params); err != nil {
		a.setError(err)
	}
}

func (a *App) setStatus(s string) {
	a.status = s
	a.statusErr = false
}

func (a *App) setError(err error) {
	if err == nil {
		a.setStatus("")
		return
	}
	log.Printf("tui: %v", err)
	a.status = err.Error()
	a.statusErr = true
}

func (a *App) View() string {
	var parts []string
	if head := a.headText.Render(a.headOut, a.width); head != "" {
		parts = append(parts, head)
	}

	route := a.nav.Current()
	var body string
	switch route.Name {
	case header.FiltersScreen:
		if a.filters != nil {
			body = a.filters.view(a.styles)
		}
	case routeAccounts:
		body = a.renderAccounts()
	case routeAccountDetail:
		body = a.renderAccountDetail(route.Params["id"])
	default:
		body = a.renderHome()
	}
	parts = append(parts, a.styles.app.Render(body))

	status := a.styles.status.Render(a.status)
	if a.statusErr {
		status = a.styles.statusErr.Render(a.status)
	}
	parts = append(parts, status)

	if route.Name == header.FiltersScreen {
		parts = append(parts, a.help.View(filterHelp{a.keys}))
	} else {
		parts = append(parts, a.help.View(a.keys))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// HeaderOutput exposes the last header evaluation.
func (a *App) HeaderOutput() *header.Output {
	return a.headOut
}
