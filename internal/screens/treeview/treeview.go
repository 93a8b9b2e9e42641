// Package treeview renders the fitted decision tree structure.
package treeview

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/akverma/loanlens/internal/analysis"
	"github.com/akverma/loanlens/internal/screen"
	"github.com/akverma/loanlens/internal/ui/layout"
	"github.com/akverma/loanlens/internal/ui/theme"
)

// TreeScreen displays the model's split structure, scrollable when the
// rendering is taller than the viewport.
type TreeScreen struct {
	session *analysis.Session
	lines   []string
	offset  int
}

var _ screen.Screen = (*TreeScreen)(nil)
var _ screen.KeyHintProvider = (*TreeScreen)(nil)

// New creates a TreeScreen over a trained session.
func New(session *analysis.Session) *TreeScreen {
	return &TreeScreen{
		session: session,
		lines:   strings.Split(session.Model.Render(), "\n"),
	}
}

func (s *TreeScreen) Init() tea.Cmd {
	return nil
}

func (s *TreeScreen) Title() string {
	return "Decision Tree"
}

func (s *TreeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *TreeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "up", "k":
			if s.offset > 0 {
				s.offset--
			}
		case "down", "j":
			if s.offset < len(s.lines)-1 {
				s.offset++
			}
		}
	}
	return s, nil
}

func (s *TreeScreen) View(width, height int) string {
	visible := height - 4
	if visible < 1 {
		visible = 1
	}

	end := s.offset + visible
	if end > len(s.lines) {
		end = len(s.lines)
	}
	window := strings.Join(s.lines[s.offset:end], "\n")

	card := theme.Card.Render(theme.Body.Render(window))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
