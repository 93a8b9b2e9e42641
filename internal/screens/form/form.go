// Package form implements the loan application entry screen.
package form

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/akverma/loanlens/internal/analysis"
	"github.com/akverma/loanlens/internal/decision"
	"github.com/akverma/loanlens/internal/encode"
	"github.com/akverma/loanlens/internal/history"
	"github.com/akverma/loanlens/internal/router"
	"github.com/akverma/loanlens/internal/screen"
	"github.com/akverma/loanlens/internal/screens/result"
	"github.com/akverma/loanlens/internal/ui/components"
	"github.com/akverma/loanlens/internal/ui/layout"
	"github.com/akverma/loanlens/internal/ui/theme"
)

type fieldKind int

const (
	choiceField fieldKind = iota
	inputField
	buttonField
)

type field struct {
	label    string
	kind     fieldKind
	required bool
	choice   components.Choice
	input    components.TextInput
}

// FormScreen collects one loan application and submits it for a
// decision.
type FormScreen struct {
	session *analysis.Session
	engine  *decision.Engine
	store   *history.Store

	fields []field
	focus  int
	errMsg string
}

var _ screen.Screen = (*FormScreen)(nil)
var _ screen.KeyHintProvider = (*FormScreen)(nil)

// New creates a new FormScreen.
func New(session *analysis.Session, engine *decision.Engine, store *history.Store) *FormScreen {
	choice := func(label, column string) field {
		return field{label: label, kind: choiceField, choice: components.NewChoice(encode.Labels(column))}
	}
	input := func(label, placeholder string, required bool) field {
		return field{label: label, kind: inputField, required: required,
			input: components.NewTextInput(placeholder, true, 12)}
	}

	fields := []field{
		choice("Gender", encode.ColGender),
		choice("Married", encode.ColMarried),
		choice("Dependents", encode.ColDependents),
		choice("Education", encode.ColEducation),
		choice("Self Employed", encode.ColSelfEmployed),
		choice("Property Area", encode.ColPropertyArea),
		choice("Credit History", encode.ColCreditHistory),
		input("Applicant Income", "e.g. 50000", true),
		input("Coapplicant Income", "0", false),
		input("Loan Amount", "e.g. 150000", true),
		input("Loan Term (months)", "360", false),
		{label: "Check Eligibility", kind: buttonField},
	}

	s := &FormScreen{
		session: session,
		engine:  engine,
		store:   store,
		fields:  fields,
	}
	s.setFocus(0)
	return s
}

func (s *FormScreen) Init() tea.Cmd {
	return nil
}

func (s *FormScreen) Title() string {
	return "New Application"
}

func (s *FormScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab/↑↓", Description: "Next field"},
		{Key: "←→", Description: "Choose"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *FormScreen) setFocus(i int) tea.Cmd {
	s.focus = i
	var cmd tea.Cmd
	for j := range s.fields {
		f := &s.fields[j]
		switch f.kind {
		case choiceField:
			f.choice.Focused = j == i
		case inputField:
			if j == i {
				cmd = f.input.Model.Focus()
			} else {
				f.input.Model.Blur()
			}
		}
	}
	return cmd
}

func (s *FormScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab", "down":
			return s, s.setFocus((s.focus + 1) % len(s.fields))
		case "shift+tab", "up":
			return s, s.setFocus((s.focus - 1 + len(s.fields)) % len(s.fields))
		case "enter":
			if s.fields[s.focus].kind == buttonField {
				return s, s.submit()
			}
			return s, s.setFocus((s.focus + 1) % len(s.fields))
		}
	}

	f := &s.fields[s.focus]
	var cmd tea.Cmd
	switch f.kind {
	case choiceField:
		f.choice, cmd = f.choice.Update(msg)
	case inputField:
		f.input, cmd = f.input.Update(msg)
	}
	return s, cmd
}

// numeric returns the parsed value of the input field at index i. Empty
// optional fields read as 0.
func (s *FormScreen) numeric(i int) (float64, bool) {
	f := &s.fields[i]
	if strings.TrimSpace(f.input.Value()) == "" {
		if f.required {
			f.input.Submit(false)
			return 0, false
		}
		return 0, true
	}
	v, err := f.input.FloatValue()
	if err != nil {
		f.input.Submit(false)
		return 0, false
	}
	f.input.Submit(true)
	return v, true
}

func (s *FormScreen) submit() tea.Cmd {
	applicantIncome, ok1 := s.numeric(7)
	coapplicantIncome, ok2 := s.numeric(8)
	loanAmount, ok3 := s.numeric(9)
	loanTerm, ok4 := s.numeric(10)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		s.errMsg = "Please fill in the highlighted numeric fields."
		return nil
	}
	s.errMsg = ""

	raw := encode.Application(
		s.fields[0].choice.Value(), // gender
		s.fields[1].choice.Value(), // married
		s.fields[2].choice.Value(), // dependents
		s.fields[3].choice.Value(), // education
		s.fields[4].choice.Value(), // self employed
		s.fields[5].choice.Value(), // property area
		s.fields[6].choice.Value(), // credit history
		applicantIncome, coapplicantIncome, loanAmount, loanTerm,
	)

	d, err := s.engine.Decide(raw, s.session.Model, s.session.Columns)
	if err != nil {
		var ie *decision.InputError
		if errors.As(err, &ie) {
			s.errMsg = ie.Error()
			return nil
		}
		s.errMsg = "Decision failed: " + err.Error()
		return nil
	}

	if s.store != nil {
		// A failed log write never blocks the analyst's result.
		_ = s.store.Insert(context.Background(), history.NewRecord(raw, d))
	}

	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: result.New(raw, d)}
	}
}

func (s *FormScreen) View(width, height int) string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim).Width(22)

	var b strings.Builder
	for i := range s.fields {
		f := &s.fields[i]
		switch f.kind {
		case choiceField:
			b.WriteString(labelStyle.Render(f.label) + "  " + f.choice.View())
		case inputField:
			marker := "  "
			if i == s.focus {
				marker = "▸ "
			}
			b.WriteString(labelStyle.Render(f.label) + marker + f.input.View())
		case buttonField:
			b.WriteString("\n" + components.NewButton(f.label, i == s.focus, nil).View())
		}
		b.WriteString("\n")
	}

	if s.errMsg != "" {
		b.WriteString("\n" + theme.FieldError.Render(s.errMsg))
	}

	card := theme.Card.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
