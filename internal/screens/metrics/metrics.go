// Package metrics shows the held-out evaluation scores of the model.
package metrics

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/akverma/loanlens/internal/analysis"
	"github.com/akverma/loanlens/internal/screen"
	"github.com/akverma/loanlens/internal/ui/theme"
)

// MetricsScreen displays classifier evaluation scores.
type MetricsScreen struct {
	session *analysis.Session
}

var _ screen.Screen = (*MetricsScreen)(nil)

// New creates a MetricsScreen over a trained session.
func New(session *analysis.Session) *MetricsScreen {
	return &MetricsScreen{session: session}
}

func (s *MetricsScreen) Init() tea.Cmd {
	return nil
}

func (s *MetricsScreen) Title() string {
	return "Model Metrics"
}

func (s *MetricsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *MetricsScreen) View(width, height int) string {
	m := s.session.Metrics

	label := lipgloss.NewStyle().Foreground(theme.TextDim).Width(12)
	value := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	rows := []string{
		label.Render("Accuracy") + value.Render(fmt.Sprintf("%.2f", m.Accuracy)),
		label.Render("Precision") + value.Render(fmt.Sprintf("%.2f", m.Precision)),
		label.Render("Recall") + value.Render(fmt.Sprintf("%.2f", m.Recall)),
		label.Render("F1") + value.Render(fmt.Sprintf("%.2f", m.F1)),
	}

	footer := theme.Hint.Render(fmt.Sprintf(
		"Evaluated on %d held-out of %d applications",
		s.session.TestRows, s.session.Rows))

	card := theme.Card.Render(strings.Join(rows, "\n") + "\n\n" + footer)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
