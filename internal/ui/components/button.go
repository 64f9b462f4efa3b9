package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/applemath/internal/ui/theme"
)

// Button is a styled button bound to a callback. The callback runs when
// the focused button is pressed, before the next render.
type Button struct {
	Label   string
	Active  bool
	OnPress func() tea.Cmd
}

// NewButton creates a new button.
func NewButton(label string, active bool, onPress func() tea.Cmd) Button {
	return Button{
		Label:   label,
		Active:  active,
		OnPress: onPress,
	}
}

// Update handles key events.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if !b.Active {
		return b, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if kmsg.String() == "enter" {
			return b, b.Press()
		}
	}

	return b, nil
}

// Press invokes the bound callback.
func (b Button) Press() tea.Cmd {
	if b.OnPress == nil {
		return nil
	}
	return b.OnPress()
}

// View renders the button.
func (b Button) View() string {
	if b.Active {
		return theme.ButtonActive.Render("▸ " + b.Label)
	}
	return theme.ButtonInactive.Render(b.Label)
}
