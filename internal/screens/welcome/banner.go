package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/applemath/internal/ui/theme"
)

const bannerArt = `
  ▄▀█ █▀█ █▀█ █░░ █▀▀   █▀▄▀█ ▄▀█ ▀█▀ █░█
  █▀█ █▀▀ █▀▀ █▄▄ ██▄   █░▀░█ █▀█ ░█░ █▀█`

const bannerCompact = "A P P L E · M A T H"

// RenderBanner returns the APPLE MATH banner styled in the apple color.
// Uses a compact fallback for terminals narrower than 48 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.AppleRed).
		Bold(true)

	if width < 48 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
