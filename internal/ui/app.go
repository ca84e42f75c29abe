package ui

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ubuntpunk/xenquotes/internal/actions"
	"github.com/ubuntpunk/xenquotes/internal/editor"
	"github.com/ubuntpunk/xenquotes/internal/notify"
	"github.com/ubuntpunk/xenquotes/internal/settings"
)

// Actions is the part of actions.Actions the editor drives.
type Actions interface {
	Compose(ctx context.Context, req actions.Request) (actions.Block, error)
	Deliver(block actions.Block, sink editor.Sink) error
	Busy() bool
}

// panel is the overlay shown in place of the text buffer.
type panel int

const (
	panelNone panel = iota
	panelSettings
	panelLogs
)

// Options configures the UI.
type Options struct {
	Context  context.Context
	Actions  Actions
	Settings *settings.Store
	// Notices is the notifier handed to Actions; the UI drains it.
	Notices        *NoticeQueue
	Document       *editor.Document
	LogPath        string
	NoticeDuration time.Duration
	// Clock defaults to time.Now.
	Clock func() time.Time
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx            context.Context
	actions        Actions
	settings       *settings.Store
	notices        *NoticeQueue
	doc            *editor.Document
	logPath        string
	noticeDuration time.Duration
	clock          func() time.Time

	// UI state
	theme  Theme
	keys   keyMap
	help   help.Model
	width  int
	height int
	ready  bool
	panel  panel

	snapshot settings.Settings
	ribbon   ribbon

	// Buffer
	editor textarea.Model
	saved  string

	// Fetch state
	fetching int
	spinner  spinner.Model

	// Status line
	notice    *notify.Notice
	noticeSeq int

	// Overlays
	showHelp      bool
	confirmQuit   bool
	settingsPanel settingsPanel
	logs          logPanel
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	noticeDuration := opts.NoticeDuration
	if noticeDuration <= 0 {
		noticeDuration = defaultNoticeDuration
	}

	snap := settings.Default()
	if opts.Settings != nil {
		snap = opts.Settings.Snapshot()
	}

	ta := textarea.New()
	ta.Prompt = ""
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.ShowLineNumbers = true
	if opts.Document != nil {
		ta.SetValue(opts.Document.Text())
	}
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	m := Model{
		ctx:            ctx,
		actions:        opts.Actions,
		settings:       opts.Settings,
		notices:        opts.Notices,
		doc:            opts.Document,
		logPath:        opts.LogPath,
		noticeDuration: noticeDuration,
		clock:          opts.Clock,
		keys:           DefaultKeyMap(),
		help:           help.New(),
		editor:         ta,
		saved:          ta.Value(),
		spinner:        sp,
		settingsPanel:  newSettingsPanel(),
		logs:           logPanel{viewport: viewport.New(0, 0)},
	}
	m.applySettings(snap)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.notices.wait())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.layout()
		return m, nil

	case composedMsg:
		return m.handleComposed(msg)

	case noticeMsg:
		cmd := m.showNotice(notify.Notice(msg))
		return m, tea.Batch(cmd, m.notices.wait())

	case clearNoticeMsg:
		m.clearNotice(int(msg))
		return m, nil

	case logsMsg:
		m.handleLogs(msg)
		return m, nil

	case spinner.TickMsg:
		if m.fetching == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	bodyW, bodyH := m.bodySize()
	var content string
	switch m.panel {
	case panelSettings:
		content = m.renderSettings(bodyW, bodyH)
	case panelLogs:
		content = m.renderLogs(bodyW, bodyH)
	default:
		content = m.editor.View()
	}
	body := content
	if m.ribbon.present() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderRibbon(bodyH), content)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		body,
		m.renderFooter(),
	)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if key.Matches(msg, m.keys.Quit) {
		return m.quit()
	}
	m.confirmQuit = false

	if m.panel == panelSettings && m.settingsPanel.editing {
		return m.handleSettingsInput(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		return m, m.applySetting("theme", NextTheme(m.theme.Name))

	case key.Matches(msg, m.keys.Settings):
		m.panel = togglePanel(m.panel, panelSettings)
		return m, nil

	case key.Matches(msg, m.keys.Logs):
		m.panel = togglePanel(m.panel, panelLogs)
		if m.panel == panelLogs {
			return m, loadLogsCmd(m.logPath)
		}
		return m, nil

	case key.Matches(msg, m.keys.Save):
		return m, m.save()

	case key.Matches(msg, m.keys.InsertQuote):
		return m, m.trigger(actions.KindDefault)

	case key.Matches(msg, m.keys.InsertOnThisDay):
		return m, m.trigger(actions.KindOnThisDay)

	case key.Matches(msg, m.keys.InsertImage):
		return m, m.trigger(actions.KindImage)
	}

	switch m.panel {
	case panelSettings:
		return m.handleSettingsKey(msg)
	case panelLogs:
		return m.handleLogsKey(msg)
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

// handleMouse treats a left click on the ribbon icon as the insert command.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if m.ribbon.hit(msg.X, msg.Y) {
		return m, m.trigger(actions.KindDefault)
	}
	return m, nil
}

func togglePanel(current, target panel) panel {
	if current == target {
		return panelNone
	}
	return target
}

// trigger starts a fetch for kind. Overlapping triggers are rejected by
// Actions.Compose itself.
func (m *Model) trigger(kind actions.Kind) tea.Cmd {
	if m.actions == nil {
		return m.showNotice(notify.Error("Quotes are not available."))
	}
	if m.actions.Busy() {
		return m.showNotice(notify.Info("A request is already in progress."))
	}
	m.fetching++
	cmds := []tea.Cmd{composeCmd(m.ctx, m.actions, actions.Request{Kind: kind})}
	if m.fetching == 1 {
		cmds = append(cmds, m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

// handleComposed inserts a finished block at the cursor as it is now, not
// where it was when the fetch started.
func (m Model) handleComposed(msg composedMsg) (tea.Model, tea.Cmd) {
	if m.fetching > 0 {
		m.fetching--
	}
	if msg.err != nil {
		// Compose already logged and reported the failure.
		return m, nil
	}
	_ = m.actions.Deliver(msg.block, &textareaSink{ta: &m.editor})
	return m, nil
}

// quit exits, asking once for confirmation when there are unsaved changes.
func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.dirty() && !m.confirmQuit {
		m.confirmQuit = true
		return m, m.showNotice(notify.Info("Unsaved changes. Press ctrl+c again to quit or ctrl+s to save."))
	}
	return m, tea.Quit
}

func (m Model) dirty() bool {
	return m.editor.Value() != m.saved
}

// save writes the buffer to the note file.
func (m *Model) save() tea.Cmd {
	if m.doc == nil {
		return m.showNotice(notify.Error("No active note to save."))
	}
	text := m.editor.Value()
	m.doc.SetText(text)
	if err := m.doc.Save(); err != nil {
		return m.showNotice(notify.Error("Could not save the note: %v", err))
	}
	m.saved = text
	return m.showNotice(notify.Success("Saved %s", filepath.Base(m.doc.Path())))
}

// applySettings takes a fresh snapshot into the view.
func (m *Model) applySettings(snap settings.Settings) {
	m.snapshot = snap
	m.ribbon = m.ribbon.reconcile(snap.ShowRibbonIcon)
	if m.theme.Name != snap.Theme {
		m.theme = GetTheme(snap.Theme)
		m.styleEditor()
	}
	m.layout()
}

func (m *Model) styleEditor() {
	base := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Text))
	m.editor.FocusedStyle.Base = lipgloss.NewStyle()
	m.editor.FocusedStyle.Text = base
	m.editor.FocusedStyle.CursorLine = base.Background(lipgloss.Color(m.theme.SurfaceAlt))
	m.editor.FocusedStyle.LineNumber = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Faint))
	m.editor.FocusedStyle.CursorLineNumber = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))
	m.editor.BlurredStyle = m.editor.FocusedStyle
	m.settingsPanel.input.TextStyle = base
	m.settingsPanel.input.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))
}

// bodySize is the area between the header and footer, minus the ribbon.
func (m Model) bodySize() (int, int) {
	return max(m.width-m.ribbon.width(), 10), max(m.height-2, 3)
}

func (m *Model) layout() {
	if !m.ready {
		return
	}
	w, h := m.bodySize()
	m.editor.SetWidth(w)
	m.editor.SetHeight(h)
	m.settingsPanel.input.Width = max(w-30, 10)
	// Panel border and padding take four columns and two rows; the title one more.
	m.logs.viewport.Width = max(w-4, 0)
	m.logs.viewport.Height = max(h-3, 0)
	m.help.Width = m.width
	m.updateLogViewport()
}

func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	left := styles.Logo.Render("xenquotes")
	if m.doc != nil {
		left += styles.Text.Render("  " + filepath.Base(m.doc.Path()))
	}
	if m.dirty() {
		left += styles.WarningText.Render(" [+]")
	}

	var right []string
	if m.fetching > 0 {
		right = append(right, styles.AccentText.Render(m.spinner.View()+" fetching"))
	}
	right = append(right, styles.MutedText.Render(string(m.snapshot.QuoteMode())))
	rightText := strings.Join(right, "  ")

	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(rightText)-2, 1)
	return styles.Header.Width(m.width).Render(left + strings.Repeat(" ", gap) + rightText)
}

func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	if m.notice != nil {
		text := styles.NoticeStyle(m.notice.Level).Render(m.notice.Message)
		return styles.Footer.Width(m.width).Render(text)
	}
	return styles.Footer.Width(m.width).Render(m.help.View(m.keys))
}

// Messages

type composedMsg struct {
	block actions.Block
	err   error
}

// Commands

func composeCmd(ctx context.Context, a Actions, req actions.Request) tea.Cmd {
	return func() tea.Msg {
		block, err := a.Compose(ctx, req)
		return composedMsg{block: block, err: err}
	}
}

// textareaSink inserts at the textarea's live cursor.
type textareaSink struct {
	ta *textarea.Model
}

func (s *textareaSink) InsertAtCursor(text string) error {
	if s.ta == nil {
		return fmt.Errorf("no text buffer")
	}
	s.ta.InsertString(text)
	return nil
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	if opts.Document == nil {
		return fmt.Errorf("ui requires a note document")
	}
	if opts.Actions == nil {
		return fmt.Errorf("ui requires actions")
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	opts.Context = ctx

	m := New(opts)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
