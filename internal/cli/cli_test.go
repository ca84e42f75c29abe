package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

type harness struct {
	dir        string
	configPath string
	notePath   string

	mu    sync.Mutex
	paths []string
}

func (h *harness) requested() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.paths...)
}

func newHarness(t *testing.T, status int) *harness {
	t.Helper()
	h := &harness{dir: t.TempDir()}
	t.Setenv("HOME", h.dir)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.mu.Lock()
		h.paths = append(h.paths, r.URL.Path)
		h.mu.Unlock()
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/api/random":
			fmt.Fprint(w, `[{"q":"Be here now.","a":"Ram Dass"}]`)
		case strings.HasPrefix(r.URL.Path, "/api/7/"):
			fmt.Fprint(w, `{"data":{"Events":[{"text":"1969 &#8211; Apollo 11 lands on the Moon"}],"Births":[],"Deaths":[]}}`)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	h.configPath = filepath.Join(h.dir, "config.toml")
	h.notePath = filepath.Join(h.dir, "note.md")
	cfg := fmt.Sprintf(`quotes_url = %q
history_url = %q
settings_path = %q

[log]
file = %q
`, srv.URL, srv.URL, filepath.Join(h.dir, "settings.toml"), filepath.Join(h.dir, "xenquotes.log"))
	if err := os.WriteFile(h.configPath, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}
	return h
}

func (h *harness) run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", h.configPath}, args...))
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestQuotePrintsToStdout(t *testing.T) {
	h := newHarness(t, http.StatusOK)
	stdout, stderr, err := h.run(t, "quote")
	if err != nil {
		t.Fatalf("quote: %v", err)
	}

	want := "**Quote of the Day:**\n\n> Be here now.\n\n— Ram Dass\n"
	if stdout != want {
		t.Fatalf("stdout = %q, want %q", stdout, want)
	}
	if !strings.Contains(stderr, "Quote inserted successfully!") {
		t.Fatalf("stderr missing success notice: %q", stderr)
	}
}

func TestQuoteInsertsIntoNoteAtCursor(t *testing.T) {
	h := newHarness(t, http.StatusOK)
	if err := os.WriteFile(h.notePath, []byte("first\nlast"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := h.run(t, "quote", "--note", h.notePath, "--at", "2:1"); err != nil {
		t.Fatalf("quote: %v", err)
	}

	data, err := os.ReadFile(h.notePath)
	if err != nil {
		t.Fatal(err)
	}
	want := "first\n**Quote of the Day:**\n\n> Be here now.\n\n— Ram Dass\nlast"
	if string(data) != want {
		t.Fatalf("note = %q, want %q", data, want)
	}

	logData, err := os.ReadFile(filepath.Join(h.dir, "xenquotes.log"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(logData), `"cursor":"7:1"`) {
		t.Fatalf("log missing cursor after insert: %s", logData)
	}
}

func TestOnThisDayWithDate(t *testing.T) {
	h := newHarness(t, http.StatusOK)
	stdout, _, err := h.run(t, "onthisday", "--date", "07-20")
	if err != nil {
		t.Fatalf("onthisday: %v", err)
	}

	if paths := h.requested(); len(paths) != 1 || paths[0] != "/api/7/20" {
		t.Fatalf("requested paths = %v, want [/api/7/20]", paths)
	}
	if !strings.Contains(stdout, "## On This Day: July 20, ") {
		t.Fatalf("missing heading: %q", stdout)
	}
	if !strings.Contains(stdout, "- 1969 - Apollo 11 lands on the Moon ([Wikipedia](") {
		t.Fatalf("missing cleaned bullet: %q", stdout)
	}
	if strings.Contains(stdout, "### Births") {
		t.Fatalf("empty sections should be omitted: %q", stdout)
	}
}

func TestQuoteFailureIsReported(t *testing.T) {
	h := newHarness(t, http.StatusInternalServerError)
	stdout, stderr, err := h.run(t, "quote")

	if !errors.Is(err, ErrReported) {
		t.Fatalf("err = %v, want ErrReported", err)
	}
	if stdout != "" {
		t.Fatalf("nothing should be inserted, got %q", stdout)
	}
	if strings.Count(stderr, "Failed to fetch quote.") != 1 {
		t.Fatalf("want exactly one failure notice, got %q", stderr)
	}
}

func TestInvalidFlags(t *testing.T) {
	h := newHarness(t, http.StatusOK)
	tests := []struct {
		name string
		args []string
	}{
		{name: "bad date", args: []string{"onthisday", "--date", "20-07"}},
		{name: "at without note", args: []string{"quote", "--at", "1:1"}},
		{name: "bad cursor", args: []string{"quote", "--note", "n.md", "--at", "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := h.run(t, tt.args...); err == nil {
				t.Fatal("expected an error")
			}
			if paths := h.requested(); len(paths) != 0 {
				t.Fatalf("no request should be made, got %v", paths)
			}
		})
	}
}

func TestSettingsSetAndShow(t *testing.T) {
	h := newHarness(t, http.StatusOK)

	out, _, err := h.run(t, "settings", "set", "decade", "8")
	if err != nil {
		t.Fatalf("settings set: %v", err)
	}
	if out != "decade = 8\n" {
		t.Fatalf("set output = %q", out)
	}

	if _, _, err := h.run(t, "settings", "set", "decade", "12"); err == nil {
		t.Fatal("decade 12 should be rejected")
	}

	out, _, err = h.run(t, "settings", "show")
	if err != nil {
		t.Fatalf("settings show: %v", err)
	}
	if !strings.Contains(out, "decade") || !strings.Contains(out, " 8\n") {
		t.Fatalf("show output = %q", out)
	}

	out, _, err = h.run(t, "--json", "settings", "show")
	if err != nil {
		t.Fatalf("settings show --json: %v", err)
	}
	if !strings.Contains(out, `"decade": "8"`) {
		t.Fatalf("json output = %q", out)
	}

	out, _, err = h.run(t, "settings", "path")
	if err != nil {
		t.Fatalf("settings path: %v", err)
	}
	if strings.TrimSpace(out) != filepath.Join(h.dir, "settings.toml") {
		t.Fatalf("path = %q", out)
	}
}

func TestVersion(t *testing.T) {
	h := newHarness(t, http.StatusOK)
	out, _, err := h.run(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "xenquotes ") {
		t.Fatalf("version output = %q", out)
	}
}

func TestConfigFlagHelpNamesDefault(t *testing.T) {
	flag := NewRootCmd().PersistentFlags().Lookup("config")
	if flag == nil {
		t.Fatal("root command has no --config flag")
	}
	if !strings.Contains(flag.Usage, "~/.config/xenquotes/config.toml") {
		t.Fatalf("--config usage = %q, want default path", flag.Usage)
	}
}
