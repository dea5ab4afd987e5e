// Package lesson is the screen that walks a learner through one lesson
// session: explanation and example sections, practice exercises, and an
// optional AI tutor overlay anchored to the exercise they got wrong.
package lesson

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/derivio/internal/catalog"
	lsn "github.com/abhisek/derivio/internal/lesson"
	"github.com/abhisek/derivio/internal/progress"
	"github.com/abhisek/derivio/internal/router"
	"github.com/abhisek/derivio/internal/screen"
	"github.com/abhisek/derivio/internal/screens/summary"
	"github.com/abhisek/derivio/internal/tutor"
	"github.com/abhisek/derivio/internal/ui/components"
	"github.com/abhisek/derivio/internal/ui/layout"
)

const chatPollInterval = 100 * time.Millisecond

type chatTickMsg time.Time

// LessonScreen renders a lesson session and records its completion.
type LessonScreen struct {
	cat     *catalog.Catalog
	tracker *progress.Tracker
	tut     *tutor.Service
	topic   catalog.Topic
	sess    *lsn.Session

	// Practice state for the current section. sectionFlat holds indices
	// into the session's flattened exercise list; activePos indexes into
	// sectionFlat.
	sectionFlat []int
	activePos   int
	input       components.TextInput
	lastWrong   bool

	// Tutor overlay.
	chat         bool
	chatStarted  bool
	chatMismatch *lsn.Mismatch
	lastMismatch *lsn.Mismatch
	chatInput    components.TextInput
	thinking     bool

	saveErr error
}

var _ screen.Screen = (*LessonScreen)(nil)

// New creates the screen for an already-opened lesson session.
func New(cat *catalog.Catalog, tracker *progress.Tracker, tut *tutor.Service, topic catalog.Topic, sess *lsn.Session) *LessonScreen {
	s := &LessonScreen{
		cat:     cat,
		tracker: tracker,
		tut:     tut,
		topic:   topic,
		sess:    sess,
	}
	s.enterSection()
	return s
}

func (s *LessonScreen) Title() string {
	if s.sess.Review {
		return s.topic.Title + " (review)"
	}
	return s.topic.Title
}

func (s *LessonScreen) Init() tea.Cmd {
	return nil
}

// KeyHints implements screen.KeyHintProvider.
func (s *LessonScreen) KeyHints() []layout.KeyHint {
	if s.chat {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Send"},
			{Key: "Ctrl+T", Description: "Close tutor"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	hints := []layout.KeyHint{
		{Key: "←→", Description: "Sections"},
	}
	if s.activeExercise() != nil {
		hints = append(hints,
			layout.KeyHint{Key: "Enter", Description: "Check"},
			layout.KeyHint{Key: "Ctrl+H", Description: "Hint"},
			layout.KeyHint{Key: "Ctrl+S", Description: "Solution"},
		)
	} else if s.sess.OnLastSection() {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Finish"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Continue"})
	}
	if s.tut != nil {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+T", Description: "Tutor"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	return hints
}

// enterSection resets practice state after section navigation.
func (s *LessonScreen) enterSection() {
	s.sectionFlat = nil
	s.lastWrong = false

	flat := s.sess.Exercises()
	for i := range flat {
		if flat[i].SectionIndex == s.sess.CurrentIndex() {
			s.sectionFlat = append(s.sectionFlat, i)
		}
	}

	s.activePos = -1
	for pos, fi := range s.sectionFlat {
		if !flat[fi].Checked {
			s.activePos = pos
			break
		}
	}
	if s.activePos >= 0 {
		s.input = components.NewTextInput("your answer", false, 40)
	}
}

// activeExercise returns the exercise currently being answered, or nil.
func (s *LessonScreen) activeExercise() *lsn.ExerciseState {
	if s.activePos < 0 || s.activePos >= len(s.sectionFlat) {
		return nil
	}
	flat := s.sess.Exercises()
	return &flat[s.sectionFlat[s.activePos]]
}

// activeFlatIndex returns the flattened index of the active exercise, or -1.
func (s *LessonScreen) activeFlatIndex() int {
	if s.activePos < 0 || s.activePos >= len(s.sectionFlat) {
		return -1
	}
	return s.sectionFlat[s.activePos]
}

func (s *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if tick, ok := msg.(chatTickMsg); ok {
		_ = tick
		return s, s.pollTutor()
	}

	if s.chat {
		return s.updateChat(msg)
	}
	return s.updateLesson(msg)
}

func (s *LessonScreen) updateLesson(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch kmsg.String() {
		case "left":
			if s.sess.Previous() {
				s.enterSection()
			}
			return s, nil
		case "right":
			if s.sess.Next() {
				s.enterSection()
			}
			return s, nil
		case "down":
			// Skip to the next exercise in the section.
			s.moveActive(1)
			return s, nil
		case "up":
			s.moveActive(-1)
			return s, nil
		case "ctrl+h":
			if i := s.activeFlatIndex(); i >= 0 {
				s.sess.ShowHint(i)
			}
			return s, nil
		case "ctrl+s":
			if i := s.activeFlatIndex(); i >= 0 {
				s.sess.ShowSolution(i)
			}
			return s, nil
		case "ctrl+t":
			return s, s.openTutor()
		case "enter":
			return s, s.submitOrAdvance()
		}
	}

	if s.activeExercise() != nil {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// moveActive shifts the active exercise within the section, wrapping at the
// edges into a no-op.
func (s *LessonScreen) moveActive(delta int) {
	if len(s.sectionFlat) == 0 {
		return
	}
	next := s.activePos + delta
	if next < 0 || next >= len(s.sectionFlat) {
		return
	}
	s.activePos = next
	s.lastWrong = false
	s.input = components.NewTextInput("your answer", false, 40)
}

// submitOrAdvance checks the active exercise, or moves forward when there is
// nothing left to answer in the section.
func (s *LessonScreen) submitOrAdvance() tea.Cmd {
	if ex := s.activeExercise(); ex != nil {
		val := s.input.Value()
		if val == "" {
			return nil
		}
		ok, mismatch := s.sess.Check(s.activeFlatIndex(), val)
		if ok {
			s.lastWrong = false
			s.lastMismatch = nil
			s.advanceToUnchecked()
			return nil
		}
		// Stay on the exercise for a retry and hand the mismatch to the
		// tutor right away; closing the overlay returns here.
		s.lastWrong = true
		s.lastMismatch = mismatch
		s.input = components.NewTextInput("try again", false, 40)
		return s.openTutor()
	}

	if s.sess.OnLastSection() {
		return s.finish()
	}
	if s.sess.Next() {
		s.enterSection()
	}
	return nil
}

// advanceToUnchecked moves the active marker to the next unanswered exercise
// in the section, or clears it when none remain.
func (s *LessonScreen) advanceToUnchecked() {
	flat := s.sess.Exercises()
	for pos := range s.sectionFlat {
		if !flat[s.sectionFlat[pos]].Checked {
			s.activePos = pos
			s.input = components.NewTextInput("your answer", false, 40)
			return
		}
	}
	s.activePos = -1
}

// finish records the completion and swaps in the summary screen. Review
// sessions replay without touching progress; the tracker enforces that.
func (s *LessonScreen) finish() tea.Cmd {
	s.sess.Complete()
	score := s.sess.Score()

	firstTime := !s.sess.Review && !s.tracker.HasCompleted(s.topic.ID)
	s.saveErr = s.tracker.CompleteTopic(context.Background(), progress.Completion{
		SessionID: s.sess.ID,
		TopicID:   s.topic.ID,
		Level:     s.sess.Level,
		Score:     score,
		Review:    s.sess.Review,
	})

	pointsEarned := 0
	if firstTime && s.saveErr == nil {
		pointsEarned = score
	}

	if s.tut != nil {
		s.tut.Reset()
	}

	next := summary.New(summary.Params{
		Topic:        s.topic,
		Score:        score,
		Correct:      s.sess.CorrectCount(),
		Total:        len(s.sess.Exercises()),
		Review:       s.sess.Review,
		PointsEarned: pointsEarned,
		TotalScore:   s.tracker.TotalScore(),
		SaveErr:      s.saveErr,
	})
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

// openTutor opens the chat overlay, starting a conversation anchored to the
// most recent wrong answer.
func (s *LessonScreen) openTutor() tea.Cmd {
	if s.tut == nil {
		return nil
	}
	s.chat = true
	s.chatInput = components.NewTextInput("ask the tutor", false, 60)

	if !s.chatStarted || s.chatMismatch != s.lastMismatch {
		s.chatStarted = true
		s.chatMismatch = s.lastMismatch
		s.tut.Start(context.Background(), s.topic, s.sess.Level, s.sess.ID, s.lastMismatch)
		s.thinking = true
		return s.chatTick()
	}
	return nil
}

func (s *LessonScreen) updateChat(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "ctrl+t":
			s.chat = false
			return s, nil
		case "enter":
			text := s.chatInput.Value()
			if text == "" || s.thinking {
				return s, nil
			}
			s.tut.Send(context.Background(), text)
			s.chatInput = components.NewTextInput("ask the tutor", false, 60)
			s.thinking = true
			return s, s.chatTick()
		}
	}

	var cmd tea.Cmd
	s.chatInput, cmd = s.chatInput.Update(msg)
	return s, cmd
}

// pollTutor consumes a finished reply or keeps polling while one is being
// generated.
func (s *LessonScreen) pollTutor() tea.Cmd {
	if _, ok := s.tut.ConsumeReply(); ok {
		s.thinking = false
		return nil
	}
	if s.tut.Busy() {
		return s.chatTick()
	}
	s.thinking = false
	return nil
}

func (s *LessonScreen) chatTick() tea.Cmd {
	return tea.Tick(chatPollInterval, func(t time.Time) tea.Msg {
		return chatTickMsg(t)
	})
}
