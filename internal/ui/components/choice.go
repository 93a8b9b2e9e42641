package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/akverma/loanlens/internal/ui/theme"
)

// Choice is a horizontal option selector. Left and right arrows cycle
// through the options; the current one is highlighted.
type Choice struct {
	Options  []string
	Selected int
	Focused  bool
}

// NewChoice creates a selector over the given options.
func NewChoice(options []string) Choice {
	return Choice{Options: options}
}

// Init returns nil.
func (c Choice) Init() tea.Cmd {
	return nil
}

// Update handles left/right cycling while focused.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	if !c.Focused || len(c.Options) == 0 {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "left", "h":
		c.Selected = (c.Selected - 1 + len(c.Options)) % len(c.Options)
	case "right", "l", " ":
		c.Selected = (c.Selected + 1) % len(c.Options)
	}

	return c, nil
}

// View renders the selector as a row of options.
func (c Choice) View() string {
	var s string
	for i, opt := range c.Options {
		if i > 0 {
			s += "  "
		}
		if i == c.Selected {
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(c.Focused).Render("(•) " + opt)
		} else {
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render("( ) " + opt)
		}
	}
	return s
}

// Value returns the selected option label.
func (c Choice) Value() string {
	if c.Selected < 0 || c.Selected >= len(c.Options) {
		return ""
	}
	return c.Options[c.Selected]
}
