package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/akverma/loanlens/internal/analysis"
	"github.com/akverma/loanlens/internal/decision"
	"github.com/akverma/loanlens/internal/history"
	"github.com/akverma/loanlens/internal/router"
	"github.com/akverma/loanlens/internal/screen"
	"github.com/akverma/loanlens/internal/screens/form"
	historyscreen "github.com/akverma/loanlens/internal/screens/histview"
	"github.com/akverma/loanlens/internal/screens/metrics"
	"github.com/akverma/loanlens/internal/screens/treeview"
	"github.com/akverma/loanlens/internal/ui/components"
	"github.com/akverma/loanlens/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu    components.Menu
	session *analysis.Session
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen over a trained session.
func New(session *analysis.Session, engine *decision.Engine, store *history.Store) *HomeScreen {
	items := []components.MenuItem{
		{Label: "NEW APPLICATION", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: form.New(session, engine, store)}
			}
		}},
		{Label: "MODEL METRICS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: metrics.New(session)}
			}
		}},
		{Label: "DECISION TREE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: treeview.New(session)}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: historyscreen.New(store)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:    components.NewMenu(items),
		session: session,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections,
		theme.Title.Width(width).Render("LOANLENS"),
		theme.Subtitle.Width(width).Render("Loan approval decision support"))

	stats := fmt.Sprintf("%d applications   %d train / %d test   accuracy %.2f",
		h.session.Rows, h.session.TrainRows, h.session.TestRows, h.session.Metrics.Accuracy)
	sections = append(sections,
		lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Card.Render(lipgloss.NewStyle().Foreground(theme.TextDim).Render(stats))))

	sections = append(sections,
		lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
