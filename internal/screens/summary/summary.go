package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/derivio/internal/catalog"
	"github.com/abhisek/derivio/internal/router"
	"github.com/abhisek/derivio/internal/screen"
	"github.com/abhisek/derivio/internal/ui/components"
	"github.com/abhisek/derivio/internal/ui/layout"
	"github.com/abhisek/derivio/internal/ui/theme"
)

// Params is everything the summary needs about the finished lesson.
type Params struct {
	Topic        catalog.Topic
	Score        int // completion score, 0-100
	Correct      int
	Total        int
	Review       bool
	PointsEarned int // 0 for reviews and repeat completions
	TotalScore   int
	SaveErr      error
}

// SummaryScreen displays the lesson result.
type SummaryScreen struct {
	p Params
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(p Params) *SummaryScreen {
	return &SummaryScreen{p: p}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Lesson Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Back to topics"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	var b strings.Builder

	heading := "Lesson complete!"
	if s.p.Review {
		heading = "Review complete!"
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(heading))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render(s.p.Topic.Icon + " " + s.p.Topic.Title))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("Score", float64(s.p.Score)/100, true, 40)
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	if s.p.Total > 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).
			Render(fmt.Sprintf("Exercises: %d/%d correct", s.p.Correct, s.p.Total)))
	} else {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("No exercises in this lesson"))
	}
	b.WriteString("\n")

	switch {
	case s.p.Review:
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("Review sessions don't change your progress."))
	case s.p.PointsEarned > 0:
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Gold).Bold(true).
			Render(fmt.Sprintf("+%d points", s.p.PointsEarned)))
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("  (total %d)", s.p.TotalScore)))
	default:
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("Total score: %d", s.p.TotalScore)))
	}

	if s.p.SaveErr != nil {
		b.WriteString("\n\n")
		b.WriteString(theme.Incorrect.Render("Could not save progress: " + s.p.SaveErr.Error()))
	}

	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("press enter to keep going"))

	content := theme.Card.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
