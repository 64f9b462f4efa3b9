package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// OptionButtonWidth is the width of each answer button.
const OptionButtonWidth = 14

// OptionGrid lays answer options out as a 2x2 grid of buttons. Pressing a
// number key or Enter on the focused button calls OnChoose with the option
// value.
type OptionGrid struct {
	Options  []int
	Selected int
	OnChoose func(value int) tea.Cmd
}

// NewOptionGrid creates a grid focused on the first option.
func NewOptionGrid(options []int, onChoose func(value int) tea.Cmd) OptionGrid {
	return OptionGrid{
		Options:  options,
		OnChoose: onChoose,
	}
}

// Update handles number keys, arrow navigation and Enter.
func (g OptionGrid) Update(msg tea.Msg) (OptionGrid, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(g.Options) == 0 {
		return g, nil
	}

	switch key := kmsg.String(); key {
	case "1", "2", "3", "4":
		i := int(key[0] - '1')
		if i < len(g.Options) {
			g.Selected = i
			return g, g.choose()
		}
	case "left", "h":
		if g.Selected%2 == 1 {
			g.Selected--
		}
	case "right", "l":
		if g.Selected%2 == 0 && g.Selected+1 < len(g.Options) {
			g.Selected++
		}
	case "up", "k":
		if g.Selected >= 2 {
			g.Selected -= 2
		}
	case "down", "j":
		if g.Selected+2 < len(g.Options) {
			g.Selected += 2
		}
	case "enter":
		return g, g.choose()
	}
	return g, nil
}

func (g OptionGrid) choose() tea.Cmd {
	if g.OnChoose == nil {
		return nil
	}
	return g.OnChoose(g.Options[g.Selected])
}

// View renders the options two per row.
func (g OptionGrid) View() string {
	var rows []string
	for i := 0; i < len(g.Options); i += 2 {
		var cells []string
		for j := i; j < i+2 && j < len(g.Options); j++ {
			label := fmt.Sprintf("%d) %d", j+1, g.Options[j])
			cells = append(cells, ArcadeButton(label, j == g.Selected, OptionButtonWidth), "  ")
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells[:len(cells)-1]...))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}
