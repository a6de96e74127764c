package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/fireflytui/internal/store"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("FIREFLYTUI_CONFIG", "")
	return home
}

func TestLoadDefaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".local", "share", "fireflytui", "fireflytui.db"), cfg.Database.Path)
	require.Equal(t, "USD", cfg.UI.Currency)
	require.Equal(t, []string{"USD", "EUR", "GBP", "AUD"}, cfg.UI.Currencies)
	require.Equal(t, 1, cfg.UI.RangeMonths)
	require.Equal(t, NavigationStack, cfg.UI.Navigation)
	require.True(t, cfg.Feedback.Bell)
}

func TestLoadFileAndEnvOverrides(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[ui]
currency = "eur"
currencies = ["gbp", "EUR"]
range_months = 3
navigation = "tabs"

[feedback]
bell = false
`), 0o600))
	t.Setenv("FIREFLYTUI_CONFIG", path)
	t.Setenv("FIREFLYTUI_UI_THEME", "latte")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "EUR", cfg.UI.Currency)
	require.Equal(t, []string{"EUR", "GBP"}, cfg.UI.Currencies)
	require.Equal(t, 3, cfg.UI.RangeMonths)
	require.Equal(t, NavigationTabs, cfg.UI.Navigation)
	require.Equal(t, "latte", cfg.UI.Theme)
	require.False(t, cfg.Feedback.Bell)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	home := isolate(t)
	t.Setenv("FIREFLYTUI_CONFIG", filepath.Join(home, "nope.toml"))

	_, err := Load()
	require.Error(t, err)
}

func TestValidateRejectsBadSettings(t *testing.T) {
	t.Parallel()

	base := Config{UI: UIConfig{Currency: "USD", RangeMonths: 1, Navigation: NavigationStack}}

	bad := base
	bad.UI.RangeMonths = 4
	require.ErrorIs(t, bad.Validate(), store.ErrUnsupportedRange)

	bad = base
	bad.UI.Navigation = "drawer"
	require.Error(t, bad.Validate())

	bad = base
	bad.UI.Currency = "US"
	require.ErrorIs(t, bad.Validate(), store.ErrInvalidCurrency)

	ok := base
	require.NoError(t, ok.Validate())
	require.Equal(t, []string{"USD"}, ok.UI.Currencies)
}

func TestSaveThenLoad(t *testing.T) {
	home := isolate(t)
	cfg, err := Load()
	require.NoError(t, err)

	t.Setenv("FIREFLYTUI_CONFIG", filepath.Join(home, "conf", "config.toml"))
	cfg.UI.Currency = "GBP"
	cfg.UI.RangeMonths = 12
	require.NoError(t, Save(cfg))

	again, err := Load()
	require.NoError(t, err)
	require.Equal(t, "GBP", again.UI.Currency)
	require.Equal(t, 12, again.UI.RangeMonths)
}
