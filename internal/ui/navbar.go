package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kyaoi/termfolio/internal/nav"
)

const navBarHeight = 1

var (
	navBarTransparent = lipgloss.NewStyle()
	navBarScrolled    = lipgloss.NewStyle().Background(lipgloss.Color("#1a1b26"))
	navBrandStyle     = lipgloss.NewStyle().
				Padding(0, 1).
				Bold(true).
				Foreground(lipgloss.Color("#7dcfff"))
	navLabelStyle  = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#a9b1d6"))
	navActiveStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Foreground(lipgloss.Color("#7aa2f7"))
)

// navHit is the clickable column range [x0, x1) of a navigation label.
type navHit struct {
	section nav.Section
	x0, x1  int
}

// layoutNavBar renders the navigation bar and returns the label hit boxes.
func layoutNavBar(width int, brand string, state nav.State) (string, []navHit) {
	labels := make([]string, 0, len(nav.Sections()))
	labelsWidth := 0
	for _, id := range nav.Sections() {
		style := navLabelStyle
		if id == state.Active {
			style = navActiveStyle
		}
		label := style.Render(id.Label())
		labels = append(labels, label)
		labelsWidth += lipgloss.Width(label)
	}

	left := ""
	if brand != "" {
		left = navBrandStyle.Render(brand)
	}
	gap := width - lipgloss.Width(left) - labelsWidth
	if gap < 1 {
		left = ""
		gap = max(width-labelsWidth, 0)
	}

	hits := make([]navHit, 0, len(labels))
	x := lipgloss.Width(left) + gap
	for i, label := range labels {
		w := lipgloss.Width(label)
		hits = append(hits, navHit{section: nav.Sections()[i], x0: x, x1: x + w})
		x += w
	}

	bar := left + strings.Repeat(" ", gap) + strings.Join(labels, "")
	style := navBarTransparent
	if state.Scrolled {
		style = navBarScrolled
	}
	if width > 0 {
		style = style.MaxWidth(width)
	}
	return style.Render(bar), hits
}

func hitSection(hits []navHit, x int) (nav.Section, bool) {
	for _, h := range hits {
		if x >= h.x0 && x < h.x1 {
			return h.section, true
		}
	}
	return nav.Home, false
}
