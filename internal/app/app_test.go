package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ubuntpunk/xenquotes/internal/notify"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestBootstrap_WiresComponents(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	settingsPath := filepath.Join(dir, "prefs", "settings.toml")
	cfgPath := writeConfig(t, dir, `
quotes_url = "http://127.0.0.1:1"
settings_path = "`+settingsPath+`"

[log]
level = "warn"
file = "`+filepath.Join(dir, "xenquotes.log")+`"
`)

	env, err := Bootstrap(Options{ConfigPath: cfgPath}, &notify.Recorder{})
	if err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	if env.Actions == nil || env.Client == nil || env.Settings == nil {
		t.Fatalf("Bootstrap left components unset: %+v", env)
	}
	if env.Settings.Path() != settingsPath {
		t.Fatalf("settings path = %q, want %q", env.Settings.Path(), settingsPath)
	}
	if got := env.Logger.GetLevel(); got != zerolog.WarnLevel {
		t.Fatalf("log level = %v, want warn", got)
	}
	if env.Actions.Busy() {
		t.Fatal("fresh actions should not be busy")
	}
}

func TestBootstrap_SettingsFlagWinsAndDebugOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	cfgPath := writeConfig(t, dir, `
settings_path = "`+filepath.Join(dir, "from-config.toml")+`"

[log]
file = "`+filepath.Join(dir, "xenquotes.log")+`"
`)
	flagPath := filepath.Join(dir, "from-flag.toml")

	env, err := Bootstrap(Options{ConfigPath: cfgPath, SettingsPath: flagPath, Debug: true}, &notify.Recorder{})
	if err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	if env.Settings.Path() != flagPath {
		t.Fatalf("settings path = %q, want %q", env.Settings.Path(), flagPath)
	}
	if got := env.Logger.GetLevel(); got != zerolog.DebugLevel {
		t.Fatalf("log level = %v, want debug", got)
	}
}

func TestBootstrap_InvalidConfigFails(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	cfgPath := writeConfig(t, dir, "quotes_url = [broken")

	if _, err := Bootstrap(Options{ConfigPath: cfgPath}, &notify.Recorder{}); err == nil {
		t.Fatal("expected error for malformed config")
	}
}
