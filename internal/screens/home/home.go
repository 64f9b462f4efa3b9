package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/applemath/internal/mastery"
	"github.com/abhisek/applemath/internal/router"
	"github.com/abhisek/applemath/internal/screen"
	"github.com/abhisek/applemath/internal/screens/history"
	"github.com/abhisek/applemath/internal/screens/masterymap"
	"github.com/abhisek/applemath/internal/screens/quiz"
	"github.com/abhisek/applemath/internal/session"
	"github.com/abhisek/applemath/internal/store"
	"github.com/abhisek/applemath/internal/ui/components"
	"github.com/abhisek/applemath/internal/ui/layout"
)

// HomeScreen is the main menu.
type HomeScreen struct {
	manager             *session.Manager
	menu                components.Menu
	showingResetConfirm bool
	notice              string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)
var _ screen.BackInterceptor = (*HomeScreen)(nil)
var _ screen.Resumer = (*HomeScreen)(nil)

// New creates a new HomeScreen. eventRepo may be nil.
func New(manager *session.Manager, eventRepo store.EventRepo) *HomeScreen {
	h := &HomeScreen{manager: manager}

	items := []components.MenuItem{
		{Label: "PLAY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quiz.New(manager)}
			}
		}},
		{Label: "MASTERY MAP", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: masterymap.New(manager.Table())}
			}
		}},
		{Label: "HISTORY", Disabled: eventRepo == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(eventRepo)}
			}
		}},
		{Label: "RESET MASTERY", Action: func() tea.Cmd {
			h.showingResetConfirm = true
			h.notice = ""
			return nil
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

// Resume clears stale notices when the learner comes back from a sub-screen.
func (h *HomeScreen) Resume() tea.Cmd {
	h.notice = ""
	return nil
}

// InterceptsBack reports whether Esc should dismiss the reset dialog.
func (h *HomeScreen) InterceptsBack() bool {
	return h.showingResetConfirm
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.showingResetConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Reset"},
			{Key: "N", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if h.showingResetConfirm {
		if kmsg, ok := msg.(tea.KeyMsg); ok {
			switch kmsg.String() {
			case "y", "Y":
				h.manager.ResetMastery(context.Background())
				h.showingResetConfirm = false
				h.notice = "All facts reset. Fresh apples!"
			case "n", "N", "esc":
				h.showingResetConfirm = false
			}
		}
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header + footer for the
	// terminal height.
	termHeight := height + layout.HeaderHeight + layout.FooterHeight
	compact := layout.IsCompactHeight(termHeight) || layout.IsCompactWidth(width)

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	sections = append(sections, renderStatsBar(
		h.manager.Learner(),
		h.manager.Table().MasteredCount(),
		mastery.NumFacts,
		h.manager.State().Mode,
		cw, compact))

	if h.showingResetConfirm {
		sections = append(sections, renderResetConfirm(cw))
	} else if compact {
		sections = append(sections, renderArcadeMenuCompact(h.menu.Labels(), h.menu.Selected, cw))
	} else {
		sections = append(sections, renderArcadeMenu(h.menu.Labels(), h.menu.Selected, cw))
	}

	if h.notice != "" {
		sections = append(sections, renderNotice(h.notice, cw))
	}

	sep := "\n\n"
	if compact {
		sep = "\n"
	}
	return components.CabinetFrame(strings.Join(sections, sep), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
