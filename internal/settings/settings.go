// Package settings owns the user's persisted xenquotes settings.
// Settings are stored in ~/.config/xenquotes/settings.toml.
package settings

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/ubuntpunk/xenquotes/internal/history"
	"github.com/ubuntpunk/xenquotes/internal/zenquotes"
)

// Settings holds everything the user can change from the settings panel.
type Settings struct {
	Mode              string `toml:"mode" validate:"oneof=random today author on-this-day"`
	Author            string `toml:"author" validate:"required_if=Mode author"`
	ShowRibbonIcon    bool   `toml:"show_ribbon_icon"`
	ImageMode         bool   `toml:"image_mode"`
	ImageDir          string `toml:"image_dir" validate:"required_if=SaveImagesLocally true"`
	SaveImagesLocally bool   `toml:"save_images_locally"`
	HistoricalEvents  bool   `toml:"historical_events"`
	Century           *int   `toml:"century,omitempty" validate:"omitnil,min=1,max=100"`
	Decade            *int   `toml:"decade,omitempty" validate:"omitnil,min=0,max=9"`
	AllCenturies      bool   `toml:"all_centuries"`
	AllDecades        bool   `toml:"all_decades"`
	Theme             string `toml:"theme"`
}

const (
	defaultSettingsPath = "~/.config/xenquotes/settings.toml"
	defaultImageDir     = "~/.local/share/xenquotes/images"
	defaultTheme        = "Dracula"
)

// DefaultPath returns the default settings file path.
func DefaultPath() string {
	return defaultSettingsPath
}

// Default returns the settings used when nothing has been saved yet.
func Default() Settings {
	return Settings{
		Mode:           string(zenquotes.ModeRandom),
		ShowRibbonIcon: true,
		ImageDir:       defaultImageDir,
		AllCenturies:   true,
		AllDecades:     true,
		Theme:          defaultTheme,
	}
}

// Clone returns a copy that shares no memory with s.
func (s Settings) Clone() Settings {
	out := s
	out.Century = clonePtr(s.Century)
	out.Decade = clonePtr(s.Decade)
	return out
}

// QuoteMode returns the configured mode, falling back to random.
func (s Settings) QuoteMode() zenquotes.Mode {
	if m, ok := zenquotes.ParseMode(s.Mode); ok {
		return m
	}
	return zenquotes.ModeRandom
}

// Criteria projects the filter settings onto history.Criteria.
func (s Settings) Criteria() history.Criteria {
	return history.Criteria{
		Century:      clonePtr(s.Century),
		Decade:       clonePtr(s.Decade),
		AllCenturies: s.AllCenturies,
		AllDecades:   s.AllDecades,
	}
}

// ResolvedImageDir returns ImageDir with ~ expanded.
func (s Settings) ResolvedImageDir() (string, error) {
	dir := s.ImageDir
	if strings.TrimSpace(dir) == "" {
		dir = defaultImageDir
	}
	return expandPath(dir)
}

// Load reads settings from the given path, falling back to defaults if the
// file is missing or unreadable.
func Load(path string) (Settings, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Default(), nil
	}

	settings := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, nil // Graceful degradation
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return settings, nil // Graceful degradation
	}

	if err := toml.Unmarshal(bytes, &settings); err != nil {
		return Default(), nil // Graceful degradation
	}

	settings.Mode = strings.ToLower(strings.TrimSpace(settings.Mode))
	if settings.Mode == "" {
		settings.Mode = string(zenquotes.ModeRandom)
	}
	if strings.TrimSpace(settings.Theme) == "" {
		settings.Theme = defaultTheme
	}
	if err := settings.Validate(); err != nil {
		return Default(), nil // Graceful degradation
	}

	return settings, nil
}

// Save writes settings to the given path, creating directories as needed.
func Save(path string, s Settings) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}

	bytes, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	tmp := resolved + ".tmp"
	if err := os.WriteFile(tmp, bytes, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	if err := os.Rename(tmp, resolved); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

func clonePtr(v *int) *int {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultSettingsPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
