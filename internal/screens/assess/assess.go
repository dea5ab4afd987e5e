// Package assess drives the one-time placement assessment: a fixed question
// walk with per-question feedback, ending in the level placement.
package assess

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/derivio/internal/answers"
	"github.com/abhisek/derivio/internal/assessment"
	"github.com/abhisek/derivio/internal/catalog"
	"github.com/abhisek/derivio/internal/progress"
	"github.com/abhisek/derivio/internal/router"
	"github.com/abhisek/derivio/internal/screen"
	"github.com/abhisek/derivio/internal/screens/topics"
	"github.com/abhisek/derivio/internal/tutor"
	"github.com/abhisek/derivio/internal/ui/components"
	"github.com/abhisek/derivio/internal/ui/layout"
	"github.com/abhisek/derivio/internal/ui/theme"
)

type mode int

const (
	modeQuestion mode = iota
	modeFeedback
	modeResult
)

// Screen walks the learner through the diagnostic question set.
type Screen struct {
	cat     *catalog.Catalog
	tracker *progress.Tracker
	tut     *tutor.Service

	questions []catalog.DiagnosticQuestion
	index     int
	submitted map[string]string

	choice components.MultiChoice
	input  components.TextInput

	mode        mode
	lastCorrect bool
	result      assessment.Result
	saveErr     error
}

var _ screen.Screen = (*Screen)(nil)

// New creates the assessment screen over the catalog's diagnostic set.
func New(cat *catalog.Catalog, tracker *progress.Tracker, tut *tutor.Service) *Screen {
	s := &Screen{
		cat:       cat,
		tracker:   tracker,
		tut:       tut,
		questions: cat.Questions,
		submitted: make(map[string]string),
	}
	s.prepareQuestion()
	return s
}

func (s *Screen) Title() string {
	return "Assessment"
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

// KeyHints implements screen.KeyHintProvider.
func (s *Screen) KeyHints() []layout.KeyHint {
	switch s.mode {
	case modeFeedback:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	case modeResult:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Choose a topic"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
}

// prepareQuestion resets the per-question component for the current index.
func (s *Screen) prepareQuestion() {
	if s.index >= len(s.questions) {
		return
	}
	q := s.questions[s.index]
	if q.Kind == catalog.KindMultipleChoice {
		s.choice = components.NewMultiChoice(q.Prompt, q.Choices, correctChoiceIndex(q))
	} else {
		s.input = components.NewTextInput("your answer", false, 40)
	}
}

// correctChoiceIndex finds which choice matches the canonical answer.
func correctChoiceIndex(q catalog.DiagnosticQuestion) int {
	for i, c := range q.Choices {
		if answers.Match(c, q.Answer) {
			return i
		}
	}
	return -1
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch s.mode {
	case modeQuestion:
		return s.updateQuestion(msg)
	case modeFeedback:
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
			s.advance()
		}
		return s, nil
	case modeResult:
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
			next := topics.New(s.cat, s.tracker, s.tut)
			return s, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: next}
			}
		}
		return s, nil
	}
	return s, nil
}

func (s *Screen) updateQuestion(msg tea.Msg) (screen.Screen, tea.Cmd) {
	q := s.questions[s.index]

	if q.Kind == catalog.KindMultipleChoice {
		var cmd tea.Cmd
		s.choice, cmd = s.choice.Update(msg)
		if s.choice.Submitted {
			s.submitted[q.ID] = s.choice.Options[s.choice.ChosenIndex]
			s.lastCorrect = s.choice.IsCorrect()
			s.mode = modeFeedback
		}
		return s, cmd
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		val := strings.TrimSpace(s.input.Value())
		if val == "" {
			return s, nil
		}
		s.submitted[q.ID] = val
		s.lastCorrect = answers.Match(val, q.Answer)
		s.input.Submit(s.lastCorrect)
		s.mode = modeFeedback
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// advance moves past the feedback view, finishing the assessment after the
// last question.
func (s *Screen) advance() {
	s.index++
	if s.index < len(s.questions) {
		s.mode = modeQuestion
		s.prepareQuestion()
		return
	}

	s.result = assessment.Score(s.questions, s.submitted)
	s.saveErr = s.tracker.CompleteAssessment(context.Background(), s.result)
	s.mode = modeResult
}

func (s *Screen) View(width, height int) string {
	var content string
	switch s.mode {
	case modeResult:
		content = s.viewResult()
	default:
		content = s.viewQuestion()
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *Screen) viewQuestion() string {
	q := s.questions[s.index]

	var b strings.Builder

	bar := components.NewProgressBar(
		fmt.Sprintf("Question %d/%d", s.index+1, len(s.questions)),
		float64(s.index)/float64(len(s.questions)),
		false, 48)
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	diff := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(q.Difficulty.DisplayName() + " · " + q.TopicTag)
	b.WriteString(diff)
	b.WriteString("\n\n")

	if q.Kind == catalog.KindMultipleChoice {
		b.WriteString(s.choice.View())
	} else {
		prompt := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(q.Prompt)
		b.WriteString(prompt)
		b.WriteString("\n\n")
		b.WriteString(s.input.View())
	}

	if s.mode == modeFeedback {
		b.WriteString("\n\n")
		b.WriteString(s.viewFeedback(q))
	}

	return theme.Card.Render(b.String())
}

func (s *Screen) viewFeedback(q catalog.DiagnosticQuestion) string {
	var b strings.Builder

	if s.lastCorrect {
		b.WriteString(theme.Correct.Render("✓ Correct!"))
	} else {
		b.WriteString(theme.Incorrect.Render("✗ Not quite."))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).
			Render("Answer: " + q.Answer))
	}
	if q.Explanation != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
			Width(56).Render(q.Explanation))
	}
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("press enter to continue"))

	return b.String()
}

func (s *Screen) viewResult() string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Assessment Complete!"))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("Score: %d/%d\n", s.result.Score, s.result.TotalQuestions))
	b.WriteString("Level: ")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Gold).Bold(true).
		Render(s.result.Level.DisplayName()))
	b.WriteString("\n")

	if len(s.result.Strengths) > 0 {
		b.WriteString("\n")
		b.WriteString(theme.Correct.Render("Strengths: "))
		b.WriteString(strings.Join(s.result.Strengths, ", "))
	}
	if len(s.result.Weaknesses) > 0 {
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Render("Needs work: "))
		b.WriteString(strings.Join(s.result.Weaknesses, ", "))
	}

	if s.saveErr != nil {
		b.WriteString("\n\n")
		b.WriteString(theme.Incorrect.Render("Could not save progress: " + s.saveErr.Error()))
	}

	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("press enter to choose your first topic"))

	return theme.Card.Render(b.String())
}
