// Package result renders the verdict card for a single application.
package result

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/akverma/loanlens/internal/decision"
	"github.com/akverma/loanlens/internal/encode"
	"github.com/akverma/loanlens/internal/router"
	"github.com/akverma/loanlens/internal/screen"
	"github.com/akverma/loanlens/internal/ui/layout"
	"github.com/akverma/loanlens/internal/ui/theme"
)

// ResultScreen shows the outcome of one decision.
type ResultScreen struct {
	raw      encode.RawApplication
	decision *decision.Decision
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a ResultScreen for a decided application.
func New(raw encode.RawApplication, d *decision.Decision) *ResultScreen {
	return &ResultScreen{raw: raw, decision: d}
}

func (s *ResultScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultScreen) Title() string {
	return "Decision"
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back to menu"},
	}
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if kmsg.String() == "enter" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *ResultScreen) View(width, height int) string {
	var b strings.Builder

	verdictStyle := theme.Approved
	if s.decision.Verdict != decision.Approved {
		verdictStyle = theme.Denied
	}
	b.WriteString(verdictStyle.Render("Loan "+string(s.decision.Verdict)) + "\n\n")

	b.WriteString(theme.Body.Render(s.decision.Reason()) + "\n")

	if s.decision.ModelLabel >= 0 {
		vote := "Not Approved"
		if s.decision.ModelLabel == 1 {
			vote = "Approved"
		}
		b.WriteString(theme.Hint.Render(fmt.Sprintf("Classifier vote: %s (advisory only)", vote)) + "\n")
	}

	b.WriteString("\n" + theme.Hint.Render(fmt.Sprintf(
		"Applicant income %s, loan amount %s",
		s.raw[encode.ColApplicantIncome], s.raw[encode.ColLoanAmount])))

	card := theme.Card.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
