package masterymap

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/applemath/internal/mastery"
	"github.com/abhisek/applemath/internal/screen"
	"github.com/abhisek/applemath/internal/ui/layout"
	"github.com/abhisek/applemath/internal/ui/theme"
)

const cellWidth = 5

// MasteryMapScreen shows the 9x9 table of mastery scores.
type MasteryMapScreen struct {
	table *mastery.Table
	row   int // 0-based, A-1
	col   int // 0-based, B-1
}

var _ screen.Screen = (*MasteryMapScreen)(nil)
var _ screen.KeyHintProvider = (*MasteryMapScreen)(nil)

// New creates a MasteryMapScreen over table.
func New(table *mastery.Table) *MasteryMapScreen {
	return &MasteryMapScreen{table: table}
}

func (s *MasteryMapScreen) Init() tea.Cmd {
	return nil
}

func (s *MasteryMapScreen) Title() string {
	return "Mastery Map"
}

func (s *MasteryMapScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←↑↓→", Description: "Move"},
		{Key: "Esc", Description: "Back"},
	}
}

// Cursor returns the fact under the cursor.
func (s *MasteryMapScreen) Cursor() mastery.FactPair {
	return mastery.FactPair{A: s.row + mastery.MinFactor, B: s.col + mastery.MinFactor}
}

func (s *MasteryMapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	last := mastery.MaxFactor - mastery.MinFactor
	switch kmsg.String() {
	case "up", "k":
		if s.row > 0 {
			s.row--
		}
	case "down", "j":
		if s.row < last {
			s.row++
		}
	case "left", "h":
		if s.col > 0 {
			s.col--
		}
	case "right", "l":
		if s.col < last {
			s.col++
		}
	}
	return s, nil
}

func (s *MasteryMapScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	header := lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true)

	// Column header.
	var top strings.Builder
	top.WriteString(header.Width(cellWidth).Render(" ×"))
	for c := mastery.MinFactor; c <= mastery.MaxFactor; c++ {
		top.WriteString(header.Width(cellWidth).Align(lipgloss.Right).Render(fmt.Sprint(c)))
	}
	lines := []string{top.String()}

	for r := mastery.MinFactor; r <= mastery.MaxFactor; r++ {
		var line strings.Builder
		line.WriteString(header.Width(cellWidth).Render(fmt.Sprintf(" %d", r)))
		for c := mastery.MinFactor; c <= mastery.MaxFactor; c++ {
			p := mastery.FactPair{A: r, B: c}
			line.WriteString(s.renderCell(p, p == s.Cursor()))
		}
		lines = append(lines, line.String())
	}

	grid := strings.Join(lines, "\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, grid))
	b.WriteString("\n\n")

	p := s.Cursor()
	score := s.table.Get(p)
	detail := fmt.Sprintf("%s = %d     score %d/%d     %s",
		p, p.Product(), score, mastery.MasteryScore, mastery.StateFor(score))
	b.WriteString(layout.Centered(detail, width, lipgloss.NewStyle().Foreground(theme.Text).Bold(true)))
	b.WriteString("\n\n")

	summary := fmt.Sprintf("%d of %d facts mastered", s.table.MasteredCount(), mastery.NumFacts)
	b.WriteString(layout.Centered(summary, width, lipgloss.NewStyle().Foreground(theme.TextDim)))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderLegend()))

	return b.String()
}

func (s *MasteryMapScreen) renderCell(p mastery.FactPair, cursor bool) string {
	score := s.table.Get(p)
	style := lipgloss.NewStyle().
		Width(cellWidth).
		Align(lipgloss.Right).
		Foreground(stateColor(mastery.StateFor(score)))
	if mastery.StateFor(score) == mastery.StateMastered {
		style = style.Bold(true)
	}
	if cursor {
		style = style.Reverse(true)
	}
	return style.Render(fmt.Sprint(score))
}

func stateColor(st mastery.FactState) color.Color {
	switch st {
	case mastery.StateMastered:
		return theme.AppleRed
	case mastery.StateLearning:
		return theme.LeafGreen
	case mastery.StateStruggling:
		return theme.Accent
	default:
		return theme.TextDim
	}
}

func renderLegend() string {
	item := func(st mastery.FactState) string {
		return lipgloss.NewStyle().Foreground(stateColor(st)).Render("■ " + string(st))
	}
	return strings.Join([]string{
		item(mastery.StateNew),
		item(mastery.StateLearning),
		item(mastery.StateStruggling),
		item(mastery.StateMastered),
	}, "   ")
}
