package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	ribbonWidth = 3
	ribbonIcon  = "⚄"
	// ribbonIconRow is the screen row of the icon, below the header.
	ribbonIconRow = 1
)

// affordance is the lifecycle of the ribbon button.
type affordance int

const (
	affordanceAbsent affordance = iota
	affordancePresent
)

// ribbon tracks whether the sidebar button exists. The show_ribbon_icon
// setting is only the desired value; reconcile moves the button to it.
type ribbon struct {
	state affordance
	// transitions counts create and remove steps.
	transitions int
}

// reconcile returns the ribbon after moving it toward desired. Calling it
// with the current state is a no-op, so the button is never created twice.
func (r ribbon) reconcile(desired bool) ribbon {
	switch {
	case desired && r.state == affordanceAbsent:
		r.state = affordancePresent
		r.transitions++
	case !desired && r.state == affordancePresent:
		r.state = affordanceAbsent
		r.transitions++
	}
	return r
}

func (r ribbon) present() bool {
	return r.state == affordancePresent
}

func (r ribbon) width() int {
	if r.present() {
		return ribbonWidth
	}
	return 0
}

// hit reports whether a click at x, y lands on the button.
func (r ribbon) hit(x, y int) bool {
	return r.present() && x >= 0 && x < ribbonWidth && y == ribbonIconRow
}

// renderRibbon draws the sidebar column for the body height.
func (m Model) renderRibbon(height int) string {
	if !m.ribbon.present() || height <= 0 {
		return ""
	}
	styles := m.theme.Styles()
	icon := styles.RibbonIcon
	if m.fetching > 0 {
		icon = styles.Ribbon
	}

	rows := make([]string, height)
	rows[0] = icon.Width(ribbonWidth).Align(lipgloss.Center).Render(ribbonIcon)
	blank := styles.Ribbon.Render(strings.Repeat(" ", ribbonWidth))
	for i := 1; i < height; i++ {
		rows[i] = blank
	}
	return strings.Join(rows, "\n")
}
