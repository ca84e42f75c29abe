// Package notify delivers short, transient messages to the user.
package notify

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Level classifies a notice.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "success"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Notice is a single one-line message.
type Notice struct {
	Level   Level
	Message string
}

// Info builds an informational notice.
func Info(format string, args ...any) Notice {
	return Notice{Level: LevelInfo, Message: fmt.Sprintf(format, args...)}
}

// Success builds a success notice.
func Success(format string, args ...any) Notice {
	return Notice{Level: LevelSuccess, Message: fmt.Sprintf(format, args...)}
}

// Error builds an error notice.
func Error(format string, args ...any) Notice {
	return Notice{Level: LevelError, Message: fmt.Sprintf(format, args...)}
}

// Notifier shows notices. Implementations must not block for long.
type Notifier interface {
	Notify(Notice)
}

// Func adapts a plain function to Notifier.
type Func func(Notice)

// Notify calls f.
func (f Func) Notify(n Notice) { f(n) }

// Terminal writes styled notices, one per line.
type Terminal struct {
	mu  sync.Mutex
	out io.Writer

	info    lipgloss.Style
	success lipgloss.Style
	danger  lipgloss.Style
}

// NewTerminal returns a Terminal writing to out, or os.Stderr when out is nil.
func NewTerminal(out io.Writer) *Terminal {
	if out == nil {
		out = os.Stderr
	}
	return &Terminal{
		out:     out,
		info:    lipgloss.NewStyle().Foreground(lipgloss.Color("#8be9fd")),
		success: lipgloss.NewStyle().Foreground(lipgloss.Color("#50fa7b")).Bold(true),
		danger:  lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5555")).Bold(true),
	}
}

// Notify implements Notifier.
func (t *Terminal) Notify(n Notice) {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, _ = fmt.Fprintln(t.out, t.style(n.Level).Render(n.Message))
}

func (t *Terminal) style(l Level) lipgloss.Style {
	switch l {
	case LevelSuccess:
		return t.success
	case LevelError:
		return t.danger
	default:
		return t.info
	}
}

// Recorder keeps every notice in memory.
type Recorder struct {
	mu      sync.Mutex
	notices []Notice
}

// Notify implements Notifier.
func (r *Recorder) Notify(n Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, n)
}

// Notices returns a copy of the recorded notices.
func (r *Recorder) Notices() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notice(nil), r.notices...)
}
