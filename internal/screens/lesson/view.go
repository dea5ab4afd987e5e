package lesson

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/derivio/internal/catalog"
	"github.com/abhisek/derivio/internal/llm"
	"github.com/abhisek/derivio/internal/ui/components"
	"github.com/abhisek/derivio/internal/ui/theme"
)

// chatHistoryLimit caps how many transcript messages the overlay shows.
const chatHistoryLimit = 8

func (s *LessonScreen) View(width, height int) string {
	cw := width - 12
	if cw > 72 {
		cw = 72
	}
	if cw < 30 {
		cw = 30
	}

	var content string
	if s.chat {
		content = s.viewChat(cw)
	} else {
		content = s.viewSection(cw)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *LessonScreen) viewSection(cw int) string {
	section := s.sess.CurrentSection()

	var b strings.Builder

	bar := components.NewProgressBar(
		fmt.Sprintf("Section %d/%d", s.sess.CurrentIndex()+1, len(s.sess.Sections)),
		float64(s.sess.CurrentIndex())/float64(len(s.sess.Sections)),
		false, cw)
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	title := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(section.Title)
	tag := lipgloss.NewStyle().Foreground(theme.TextDim).Render("  [" + string(section.Type) + "]")
	b.WriteString(title + tag)
	b.WriteString("\n\n")

	if section.Content != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(cw).Render(section.Content))
		b.WriteString("\n")
	}

	for _, ex := range section.Examples {
		b.WriteString("\n")
		b.WriteString(s.viewExample(ex, cw))
	}

	if len(s.sectionFlat) > 0 {
		b.WriteString("\n")
		b.WriteString(s.viewExercises(cw))
	}

	b.WriteString("\n")
	b.WriteString(s.viewSectionFooter())

	return theme.Card.Render(b.String())
}

func (s *LessonScreen) viewExample(ex catalog.WorkedExample, cw int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Cyan).Bold(true).Render("Example: "))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(ex.Problem))
	b.WriteString("\n")
	for i, step := range ex.Steps {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Width(cw).
			Render(fmt.Sprintf("  %d. %s", i+1, step)))
		b.WriteString("\n")
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Render("  ⇒ " + ex.Solution))
	b.WriteString("\n")

	return b.String()
}

func (s *LessonScreen) viewExercises(cw int) string {
	flat := s.sess.Exercises()

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Cyan).Bold(true).Render("Practice"))
	b.WriteString("\n")

	for pos, fi := range s.sectionFlat {
		ex := flat[fi]
		active := pos == s.activePos

		var line string
		switch {
		case ex.Checked && ex.Correct:
			line = theme.Correct.Render("  ✓ ") +
				lipgloss.NewStyle().Foreground(theme.Text).Render(ex.Exercise.Question) +
				lipgloss.NewStyle().Foreground(theme.TextDim).Render("  = "+ex.Answer)
		case ex.Checked && !ex.Correct && !active:
			line = theme.Incorrect.Render("  ✗ ") +
				lipgloss.NewStyle().Foreground(theme.Text).Render(ex.Exercise.Question) +
				lipgloss.NewStyle().Foreground(theme.TextDim).Render("  (you: "+ex.Answer+")")
		case active:
			line = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
				Render("  ▸ " + ex.Exercise.Question)
		default:
			line = lipgloss.NewStyle().Foreground(theme.TextDim).
				Render("  · " + ex.Exercise.Question)
		}
		b.WriteString(line)
		b.WriteString("\n")

		if active {
			b.WriteString("    " + s.input.View())
			b.WriteString("\n")
			if s.lastWrong {
				b.WriteString(theme.Incorrect.Render("    Not quite. Try again"))
				if s.tut != nil {
					b.WriteString(theme.Hint.Render("  (ctrl+t asks the tutor)"))
				}
				b.WriteString("\n")
			}
			if ex.HintShown && ex.Exercise.Hint != "" {
				b.WriteString(lipgloss.NewStyle().Foreground(theme.Gold).Width(cw).
					Render("    Hint: " + ex.Exercise.Hint))
				b.WriteString("\n")
			}
			if ex.SolutionShown {
				b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).
					Render("    Solution: " + ex.Exercise.Answer))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

func (s *LessonScreen) viewSectionFooter() string {
	switch {
	case s.activeExercise() != nil:
		return theme.Hint.Render("answer the exercise, or ↓ to skip it")
	case s.sess.OnLastSection():
		if s.sess.Review {
			return theme.Hint.Render("press enter to finish the review")
		}
		return theme.Hint.Render("press enter to complete the lesson")
	default:
		return theme.Hint.Render("press enter for the next section")
	}
}

func (s *LessonScreen) viewChat(cw int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render("AI Tutor: " + s.topic.Title))
	b.WriteString("\n\n")

	transcript := s.tut.Transcript()
	if len(transcript) > chatHistoryLimit {
		transcript = transcript[len(transcript)-chatHistoryLimit:]
	}

	youStyle := lipgloss.NewStyle().Foreground(theme.Cyan).Bold(true)
	tutorStyle := lipgloss.NewStyle().Foreground(theme.Gold).Bold(true)
	textStyle := lipgloss.NewStyle().Foreground(theme.Text).Width(cw)

	for _, m := range transcript {
		if m.Role == llm.RoleUser {
			b.WriteString(youStyle.Render("You: "))
		} else {
			b.WriteString(tutorStyle.Render("Tutor: "))
		}
		b.WriteString("\n")
		b.WriteString(textStyle.Render(m.Content))
		b.WriteString("\n\n")
	}

	if s.thinking {
		b.WriteString(theme.Hint.Render("Tutor is thinking..."))
		b.WriteString("\n\n")
	}

	b.WriteString(s.chatInput.View())

	return theme.Card.Render(b.String())
}
