package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/applemath/internal/session"
	"github.com/abhisek/applemath/internal/ui/components"
	"github.com/abhisek/applemath/internal/ui/theme"
)

const arcadeTitleFull = `▄▀█ █▀█ █▀█ █░░ █▀▀   █▀▄▀█ ▄▀█ ▀█▀ █░█
█▀█ █▀▀ █▀▀ █▄▄ ██▄   █░▀░█ █▀█ ░█░ █▀█`

const arcadeTitleCompact = "🍎 A P P L E · M A T H 🍎"

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.AppleRed).
		Bold(true)

	title := arcadeTitleFull
	if compact {
		title = arcadeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title))
}

// renderStatsBar renders the learner's mastery stats in a bordered box
// matching content width.
func renderStatsBar(learner string, mastered, total int, mode session.Mode, cw int, compact bool) string {
	nameStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	masteredStyle := lipgloss.NewStyle().Foreground(theme.Gold).Bold(true)
	modeStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			nameStyle.Render(learner),
			masteredStyle.Render(fmt.Sprintf("★%d/%d", mastered, total)),
			modeStyle.Render(strings.ToUpper(string(mode))),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			nameStyle.Render(strings.ToUpper(learner)),
			masteredStyle.Render(fmt.Sprintf("★ %d/%d MASTERED", mastered, total)),
			modeStyle.Render(strings.ToUpper(string(mode))+" MODE"),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// renderArcadeMenu renders each menu item as a fixed-width button.
func renderArcadeMenu(items []string, selected int, cw int) string {
	var buttons []string
	for i, label := range items {
		buttons = append(buttons, components.ArcadeButton(label, i == selected, buttonWidth))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderArcadeMenuCompact renders menu items as simple text lines (no borders)
// for very small terminals where bordered buttons would overflow.
func renderArcadeMenuCompact(items []string, selected int, cw int) string {
	var lines []string
	for i, label := range items {
		if i == selected {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Gold).
				Bold(true).
				Render(" ▸ "+label+" "))
		} else {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   "+label))
		}
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// renderNotice renders a one-line status message under the menu.
func renderNotice(text string, cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Success).
		Width(cw).
		Align(lipgloss.Center).
		Render(text)
}

// renderResetConfirm renders the mastery reset confirmation dialog.
func renderResetConfirm(cw int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Reset all mastery?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Every fact goes back to zero."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("[Y] Yes, reset"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Render("[N] No, keep my apples"))
	return components.ArcadeCard(b.String(), cw)
}
