package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ubuntpunk/xenquotes/internal/history"
	"github.com/ubuntpunk/xenquotes/internal/notify"
	"github.com/ubuntpunk/xenquotes/internal/settings"
	"github.com/ubuntpunk/xenquotes/internal/zenquotes"
)

// settingKind decides how a row reacts to keys.
type settingKind int

const (
	kindBool settingKind = iota
	kindChoice
	kindNumber
	kindText
)

var settingKinds = map[string]settingKind{
	"mode":                kindChoice,
	"author":              kindText,
	"show_ribbon_icon":    kindBool,
	"image_mode":          kindBool,
	"image_dir":           kindText,
	"save_images_locally": kindBool,
	"historical_events":   kindBool,
	"century":             kindNumber,
	"decade":              kindNumber,
	"all_centuries":       kindBool,
	"all_decades":         kindBool,
	"theme":               kindChoice,
}

var labelCaser = cases.Title(language.English)

// settingLabel turns "show_ribbon_icon" into "Show Ribbon Icon".
func settingLabel(key string) string {
	return labelCaser.String(strings.ReplaceAll(key, "_", " "))
}

// settingsPanel is the state of the settings overlay.
type settingsPanel struct {
	cursor  int
	editing bool
	input   textinput.Model
}

func newSettingsPanel() settingsPanel {
	in := textinput.New()
	in.Prompt = "› "
	in.CharLimit = 256
	return settingsPanel{input: in}
}

func (p settingsPanel) selectedKey() string {
	return settings.Keys[p.cursor]
}

// handleSettingsKey processes keyboard input while the settings panel is open.
func (m Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.settingsPanel.editing {
		return m.handleSettingsInput(msg)
	}

	k := m.settingsPanel.selectedKey()
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.panel = panelNone
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.settingsPanel.cursor > 0 {
			m.settingsPanel.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.settingsPanel.cursor < len(settings.Keys)-1 {
			m.settingsPanel.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		if settingKinds[k] == kindText {
			current, _ := m.snapshot.Get(k)
			m.settingsPanel.editing = true
			m.settingsPanel.input.SetValue(current)
			m.settingsPanel.input.CursorEnd()
			return m, m.settingsPanel.input.Focus()
		}
		return m, m.stepSetting(k, 1)

	case key.Matches(msg, m.keys.Right):
		return m, m.stepSetting(k, 1)

	case key.Matches(msg, m.keys.Left):
		return m, m.stepSetting(k, -1)
	}
	return m, nil
}

func (m Model) handleSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.settingsPanel.editing = false
		m.settingsPanel.input.Blur()
		return m, m.applySetting(m.settingsPanel.selectedKey(), m.settingsPanel.input.Value())
	case tea.KeyEsc:
		m.settingsPanel.editing = false
		m.settingsPanel.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.settingsPanel.input, cmd = m.settingsPanel.input.Update(msg)
	return m, cmd
}

// stepSetting moves the value under k by delta. Text rows are left alone.
func (m *Model) stepSetting(k string, delta int) tea.Cmd {
	value, ok := m.steppedValue(k, delta)
	if !ok {
		return nil
	}
	return m.applySetting(k, value)
}

func (m *Model) steppedValue(k string, delta int) (string, bool) {
	s := m.snapshot
	switch settingKinds[k] {
	case kindBool:
		current, err := s.Get(k)
		if err != nil {
			return "", false
		}
		on, _ := strconv.ParseBool(current)
		return strconv.FormatBool(!on), true

	case kindChoice:
		if k == "theme" {
			if delta < 0 {
				return PrevTheme(m.theme.Name), true
			}
			return NextTheme(m.theme.Name), true
		}
		return string(cycleMode(s.QuoteMode(), delta, strings.TrimSpace(s.Author) != "")), true

	case kindNumber:
		if k == "century" {
			century, _ := history.Classify(m.now().Year())
			return stepOptional(s.Century, delta, 1, 100, century), true
		}
		return stepOptional(s.Decade, delta, 0, 9, 0), true
	}
	return "", false
}

// cycleMode returns the mode delta steps away from current. Author mode is
// passed over until an author has been entered.
func cycleMode(current zenquotes.Mode, delta int, hasAuthor bool) zenquotes.Mode {
	n := len(zenquotes.Modes)
	i := 0
	for j, mode := range zenquotes.Modes {
		if mode == current {
			i = j
			break
		}
	}
	step := 1
	if delta < 0 {
		step = -1
	}
	for k := 0; k < n; k++ {
		i = ((i+delta)%n + n) % n
		if zenquotes.Modes[i] != zenquotes.ModeAuthor || hasAuthor {
			return zenquotes.Modes[i]
		}
		delta = step
	}
	return current
}

// stepOptional walks an optional number through none, min..max, none. An
// unset value starts at start.
func stepOptional(current *int, delta, lo, hi, start int) string {
	if current == nil {
		return strconv.Itoa(start)
	}
	next := *current + delta
	if next < lo || next > hi {
		return "none"
	}
	return strconv.Itoa(next)
}

// applySetting persists one change through the store and applies the result.
func (m *Model) applySetting(k, value string) tea.Cmd {
	if m.settings == nil {
		return nil
	}
	snap, err := m.settings.Set(k, value)
	if err != nil {
		return m.showNotice(notify.Error("Could not change %s: %v", settingLabel(k), err))
	}
	m.applySettings(snap)
	return nil
}

// renderSettings renders the settings panel for the body area.
func (m Model) renderSettings(width, height int) string {
	styles := m.theme.Styles()
	var b strings.Builder

	b.WriteString(styles.AccentText.Bold(true).Render("Settings"))
	b.WriteString("\n\n")

	labelWidth := 0
	for _, k := range settings.Keys {
		if l := len(settingLabel(k)); l > labelWidth {
			labelWidth = l
		}
	}

	for i, k := range settings.Keys {
		value, _ := m.snapshot.Get(k)
		if settingKinds[k] == kindBool {
			value = onOff(value)
		}
		if value == "" {
			value = "-"
		}
		if i == m.settingsPanel.cursor && m.settingsPanel.editing {
			value = m.settingsPanel.input.View()
		}

		line := fmt.Sprintf("%-*s  %s", labelWidth, settingLabel(k), value)
		if i == m.settingsPanel.cursor {
			b.WriteString(styles.Selected.Render(line))
		} else {
			b.WriteString(styles.Text.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("↑/↓ select  ←/→ change  enter toggle/edit  esc close"))
	if m.settings != nil {
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render("Saved to " + m.settings.Path()))
	}

	return styles.Panel.
		Width(max(width-2, 0)).
		Height(max(height-2, 0)).
		Render(b.String())
}

func onOff(v string) string {
	if v == "true" {
		return "on"
	}
	return "off"
}

func (m Model) now() time.Time {
	if m.clock != nil {
		return m.clock()
	}
	return time.Now()
}
