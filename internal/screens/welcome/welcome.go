package welcome

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/applemath/internal/router"
	"github.com/abhisek/applemath/internal/screen"
	"github.com/abhisek/applemath/internal/ui/components"
	"github.com/abhisek/applemath/internal/ui/layout"
	"github.com/abhisek/applemath/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 2500 * time.Millisecond
)

const mascotArt = `     ▗▖
   ▄█▀▀▄
 ▟█████▙
 ███████
 ▜█████▛
   ▀▀▀`

// sparkle frames cycle around the mascot
var sparkleFrames = []string{"★", "✦"}

type tickMsg time.Time

// WelcomeScreen shows a splash animation, optionally asks the learner's
// name, then replaces itself with the home screen.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	learner      string
	onName       func(string)
	askingName   bool
	input        components.TextInput
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that greets learner and then transitions to
// the screen produced by homeFactory. When onName is non-nil the learner is
// asked for their name first and onName receives the answer (learner if
// left blank).
func New(homeFactory func() screen.Screen, learner string, onName func(string)) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
		learner:     learner,
		onName:      onName,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	if w.askingName {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "any key", Description: "Continue"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tea.Tick(tickInterval, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyPressMsg:
		if w.askingName {
			if msg.String() == "enter" {
				name := w.input.Value()
				if name == "" {
					name = w.learner
				}
				w.learner = name
				w.onName(name)
				return w, w.transition()
			}
			var cmd tea.Cmd
			w.input, cmd = w.input.Update(msg)
			return w, cmd
		}

		// Any key skips the rest of the animation.
		w.elapsed = totalDur
		if w.onName != nil && !w.transitioned {
			w.askingName = true
			w.input = components.NewTextInput(w.learner, true, 20)
			return w, w.input.Init()
		}
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	w.askingName = false
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	mascotStyle := lipgloss.NewStyle().Foreground(theme.AppleRed)

	// Phase 1+: mascot
	rendered := mascotStyle.Render(mascotArt)

	// Phase 2+: sparkles around mascot
	if w.elapsed >= phase1End {
		frame := w.tickCount % len(sparkleFrames)
		sparkle := sparkleFrames[frame]

		s1 := lipgloss.NewStyle().Foreground(theme.Gold).Render(sparkle)
		s2 := lipgloss.NewStyle().Foreground(theme.LeafGreen).Render(sparkle)

		lines := strings.Split(rendered, "\n")
		if len(lines) > 1 {
			lines[1] = s1 + "  " + lines[1] + "  " + s2
		}
		if len(lines) > 4 {
			lines[4] = s2 + "  " + lines[4] + "  " + s1
		}
		rendered = strings.Join(lines, "\n")
	}

	sections = append(sections, rendered)

	// Phase 3+: banner + tagline
	if w.elapsed >= phase2End {
		sections = append(sections, "", RenderBanner(width), "")

		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("Let's count some apples!")
		sections = append(sections, tagline)
	}

	switch {
	case w.askingName:
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.Text).Render("What's your name?"),
			w.input.View())
	case w.elapsed >= phase2End:
		greeting := "press any key to continue"
		if w.onName == nil && w.learner != "" {
			greeting = fmt.Sprintf("Hi %s! press any key to continue", w.learner)
		}
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(greeting))
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
