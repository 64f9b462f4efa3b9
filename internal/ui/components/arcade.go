package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/applemath/internal/ui/theme"
)

// ContentWidth returns the inner width shared by the boxes inside a cabinet.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 6 // border and padding
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}

// CabinetFrame centers content inside an apple-red double border that
// fills width x height.
func CabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.AppleRed).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// ArcadeCard boxes content in a rounded card, cw wide, with a leaf-green edge.
func ArcadeCard(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.LeafGreen).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// ArcadeButton renders a fixed-width label. The selected one is gold with a
// ▸ marker.
func ArcadeButton(label string, selected bool, width int) string {
	if selected {
		return theme.ButtonActive.
			Width(width).
			Align(lipgloss.Center).
			Render("▸ " + label)
	}
	return theme.ButtonInactive.
		Width(width).
		Align(lipgloss.Center).
		Render(label)
}
