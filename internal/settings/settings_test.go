package settings

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	s, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if s.Mode != "random" || !s.ShowRibbonIcon || !s.AllCenturies || !s.AllDecades {
		t.Fatalf("Load = %#v, want defaults", s)
	}
	if s.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", s.Theme, defaultTheme)
	}
}

func TestLoad_ReadsExistingFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "xenquotes")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	content := `
mode = "  On-This-Day "
show_ribbon_icon = false
century = 21
decade = 3
all_centuries = false
all_decades = false
theme = "Slate"
`
	if err := os.WriteFile(filepath.Join(dir, "settings.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	s, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if s.Mode != "on-this-day" {
		t.Fatalf("Mode = %q, want on-this-day", s.Mode)
	}
	if s.ShowRibbonIcon {
		t.Fatalf("ShowRibbonIcon = true, want false")
	}
	if s.Century == nil || *s.Century != 21 || s.Decade == nil || *s.Decade != 3 {
		t.Fatalf("Century/Decade = %v/%v, want 21/3", s.Century, s.Decade)
	}
	if s.Theme != "Slate" {
		t.Fatalf("Theme = %q, want Slate", s.Theme)
	}
}

func TestLoad_InvalidTOMLFallsBackToDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	if err := os.WriteFile(path, []byte("not valid toml {{{\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if s.Mode != "random" {
		t.Fatalf("Mode = %q, want random", s.Mode)
	}
}

func TestLoad_OutOfRangeFallsBackToDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	if err := os.WriteFile(path, []byte("decade = 12\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if s.Decade != nil {
		t.Fatalf("Decade = %v, want nil", *s.Decade)
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subdir", "settings.toml")

	s := Default()
	century := 19
	s.Century = &century
	s.AllCenturies = false
	s.Mode = "today"

	if err := Save(path, s); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if loaded.Mode != "today" || loaded.AllCenturies {
		t.Fatalf("loaded = %#v, want saved values", loaded)
	}
	if loaded.Century == nil || *loaded.Century != 19 {
		t.Fatalf("Century = %v, want 19", loaded.Century)
	}
	if loaded.Decade != nil {
		t.Fatalf("Decade = %v, want nil", *loaded.Decade)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr string
	}{
		{"defaults", func(*Settings) {}, ""},
		{"bad mode", func(s *Settings) { s.Mode = "quotes" }, "mode"},
		{"author without name", func(s *Settings) { s.Mode = "author" }, "author"},
		{"decade too high", func(s *Settings) { d := 10; s.Decade = &d }, "decade"},
		{"century zero", func(s *Settings) { c := 0; s.Century = &c }, "century"},
		{"save without dir", func(s *Settings) { s.SaveImagesLocally = true; s.ImageDir = "" }, "image_dir"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.mutate(&s)
			err := s.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate returned error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestCriteriaAndCloneDoNotAlias(t *testing.T) {
	s := Default()
	decade := 4
	s.Decade = &decade

	c := s.Criteria()
	*c.Decade = 7
	clone := s.Clone()
	*clone.Decade = 8

	if *s.Decade != 4 {
		t.Fatalf("Decade = %d, want 4", *s.Decade)
	}
}

func TestQuoteModeFallsBack(t *testing.T) {
	s := Settings{Mode: "bogus"}
	if got := s.QuoteMode(); got != "random" {
		t.Fatalf("QuoteMode = %q, want random", got)
	}
}
