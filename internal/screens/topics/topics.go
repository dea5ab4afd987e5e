// Package topics shows the learner what to study next: recommended topics
// first, then the rest of the unlocked catalog, then completed topics for
// review.
package topics

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/derivio/internal/catalog"
	"github.com/abhisek/derivio/internal/curriculum"
	lsn "github.com/abhisek/derivio/internal/lesson"
	"github.com/abhisek/derivio/internal/progress"
	"github.com/abhisek/derivio/internal/router"
	"github.com/abhisek/derivio/internal/screen"
	lessonscreen "github.com/abhisek/derivio/internal/screens/lesson"
	"github.com/abhisek/derivio/internal/tutor"
	"github.com/abhisek/derivio/internal/ui/layout"
	"github.com/abhisek/derivio/internal/ui/theme"
)

// entry is one row in the picker: either a section header or a topic.
type entry struct {
	header string
	topic  catalog.Topic
	review bool
}

func (e entry) isHeader() bool { return e.header != "" }

// Screen is the topic picker.
type Screen struct {
	cat     *catalog.Catalog
	tracker *progress.Tracker
	tut     *tutor.Service

	entries   []entry
	selected  int
	notice    string
	builtFrom int
}

var _ screen.Screen = (*Screen)(nil)

// New builds the picker from the learner's current progress.
func New(cat *catalog.Catalog, tracker *progress.Tracker, tut *tutor.Service) *Screen {
	s := &Screen{cat: cat, tracker: tracker, tut: tut}
	s.rebuild()
	return s
}

// rebuild recomputes the entry list; called on construction and after a
// lesson completes (progress may have changed).
func (s *Screen) rebuild() {
	completed := s.tracker.CompletedTopics()
	result := s.tracker.Assessment()
	s.builtFrom = len(completed)

	available := curriculum.AvailableTopics(s.cat, completed, result)

	var weaknesses []string
	if result != nil {
		weaknesses = result.Weaknesses
	}
	recommended, other := curriculum.Recommend(available, weaknesses)
	review := curriculum.ReviewTopics(s.cat, completed)

	var entries []entry
	if len(recommended) > 0 {
		entries = append(entries, entry{header: "RECOMMENDED FOR YOU"})
		for _, t := range recommended {
			entries = append(entries, entry{topic: t})
		}
	}
	if len(other) > 0 {
		entries = append(entries, entry{header: "TOPICS"})
		for _, t := range other {
			entries = append(entries, entry{topic: t})
		}
	}
	if len(review) > 0 {
		entries = append(entries, entry{header: "REVIEW"})
		for _, t := range review {
			entries = append(entries, entry{topic: t, review: true})
		}
	}
	s.entries = entries

	// Land on the first selectable row.
	s.selected = 0
	for i, e := range entries {
		if !e.isHeader() {
			s.selected = i
			break
		}
	}
}

func (s *Screen) Title() string {
	return "Topics"
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

// KeyHints implements screen.KeyHintProvider.
func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start lesson"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	// A lesson may have completed while this screen sat under it on the
	// stack; pick up the new progress before handling input.
	if len(s.tracker.CompletedTopics()) != s.builtFrom {
		s.rebuild()
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		for i := s.selected - 1; i >= 0; i-- {
			if !s.entries[i].isHeader() {
				s.selected = i
				break
			}
		}
	case "down", "j":
		for i := s.selected + 1; i < len(s.entries); i++ {
			if !s.entries[i].isHeader() {
				s.selected = i
				break
			}
		}
	case "enter":
		return s, s.startLesson()
	}

	return s, nil
}

// startLesson opens the selected topic, or surfaces a notice when the
// catalog carries no content for the learner's level.
func (s *Screen) startLesson() tea.Cmd {
	if s.selected >= len(s.entries) {
		return nil
	}
	e := s.entries[s.selected]
	if e.isHeader() {
		return nil
	}

	sess, err := lsn.New(s.cat, e.topic.ID, s.tracker.Level(), e.review)
	if err != nil {
		if errors.Is(err, lsn.ErrContentUnavailable) {
			s.notice = fmt.Sprintf("No %s lesson for %s yet. Try another topic.",
				strings.ToLower(s.tracker.Level().DisplayName()), e.topic.Title)
			return nil
		}
		s.notice = err.Error()
		return nil
	}
	s.notice = ""

	next := lessonscreen.New(s.cat, s.tracker, s.tut, e.topic, sess)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (s *Screen) View(width, height int) string {
	var b strings.Builder

	headerStyle := lipgloss.NewStyle().Foreground(theme.Cyan).Bold(true)
	selectedStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	normalStyle := lipgloss.NewStyle().Foreground(theme.Text)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	for i, e := range s.entries {
		if e.isHeader() {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(headerStyle.Render("  " + e.header))
			b.WriteString("\n")
			continue
		}

		meta := fmt.Sprintf("%s · %d min", e.topic.Difficulty.DisplayName(), e.topic.EstimatedMins)
		line := fmt.Sprintf("%s %s", e.topic.Icon, e.topic.Title)

		if i == s.selected {
			b.WriteString(selectedStyle.Render("  ▸ " + line))
			b.WriteString(dimStyle.Render("  " + meta))
			b.WriteString("\n")
			b.WriteString(dimStyle.Render("      " + e.topic.Description))
		} else {
			b.WriteString(normalStyle.Render("    " + line))
			b.WriteString(dimStyle.Render("  " + meta))
		}
		b.WriteString("\n")
	}

	if s.notice != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render("  " + s.notice))
		b.WriteString("\n")
	}

	content := theme.Card.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
