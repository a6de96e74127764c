package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/jask/fireflytui/internal/calendar"
	"github.com/jask/fireflytui/internal/config"
	"github.com/jask/fireflytui/internal/database"
	"github.com/jask/fireflytui/internal/database/repository"
	"github.com/jask/fireflytui/internal/feedback"
	"github.com/jask/fireflytui/internal/prefs"
	"github.com/jask/fireflytui/internal/store"
	"github.com/jask/fireflytui/internal/theme"
	"github.com/jask/fireflytui/internal/tui"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("load .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Log.File), 0o755); err != nil {
		log.Fatalf("mkdir log dir: %v", err)
	}
	logFile, err := tea.LogToFile(cfg.Log.File, "fireflytui")
	if err != nil {
		log.Fatalf("log file: %v", err)
	}
	defer logFile.Close()

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	if err := database.RunMigrations(cfg.Database.Path); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := database.SeedDefaults(ctx, db, cfg.UI.Currency); err != nil {
		log.Fatalf("seed defaults: %v", err)
	}

	loc, err := time.LoadLocation(cfg.UI.Timezone)
	if err != nil {
		log.Printf("warn: using local timezone due to load failure: %v", err)
		loc = time.Local
	}

	palette, err := theme.Named(cfg.UI.Theme)
	if err != nil {
		log.Printf("warn: %v, using default theme", err)
		palette = theme.Mocha
	}

	// repositories
	repos := tui.Repos{
		Accounts: repository.NewAccountRepo(db),
		Prefs: prefs.Repos{
			DB:          db,
			Preferences: repository.NewPreferenceRepo(db),
			Selection:   repository.NewSelectionRepo(db),
		},
	}

	initial, err := store.NewRange(time.Now().In(loc), cfg.UI.RangeMonths)
	if err != nil {
		log.Fatalf("range: %v", err)
	}
	st, accounts, err := tui.Bootstrap(ctx, repos, store.State{CurrencyCode: cfg.UI.Currency, Range: initial})
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}

	// The bell shares the program's *os.File, whose writes do not interleave.
	out := os.Stdout
	var impactor feedback.Impactor = feedback.Nop{}
	if cfg.Feedback.Bell {
		impactor = feedback.NewBell(out)
	}

	app := tui.New(ctx, tui.Options{
		Config:   cfg,
		Store:    store.New(st),
		Nav:      tui.NewNavigator(cfg.UI.Navigation),
		Repos:    repos,
		Accounts: accounts,
		Feedback: impactor,
		Calendar: calendar.Moment{Location: loc},
		Colors:   palette.Semantic(),
	})

	p := tea.NewProgram(app, tea.WithOutput(out), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
