// Package lesson drives a learner through the sections of one topic at one
// level: section navigation, exercise checking, and the completion score.
package lesson

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/derivio/internal/answers"
	"github.com/abhisek/derivio/internal/assessment"
	"github.com/abhisek/derivio/internal/catalog"
)

// ErrContentUnavailable is returned by New when the catalog has no lesson
// content for the requested topic and level.
var ErrContentUnavailable = errors.New("no lesson content for topic at this level")

// Mismatch captures a wrong exercise answer with enough context for the
// tutor to help.
type Mismatch struct {
	Question  string
	Expected  string
	Submitted string
	Hint      string
}

// ExerciseState tracks one exercise across the whole session. Exercises are
// flattened in section order so the summary can score them uniformly.
type ExerciseState struct {
	SectionIndex  int
	Index         int // position within the section
	Exercise      catalog.Exercise
	Answer        string // last submitted answer
	Checked       bool
	Correct       bool
	HintShown     bool
	SolutionShown bool
}

// Session is the progression state for one lesson run. A review session
// behaves identically but must not be written back to progress.
type Session struct {
	ID       string
	Topic    catalog.Topic
	Level    assessment.Level
	Sections []catalog.LessonSection
	Review   bool

	current   int
	completed bool
	exercises []ExerciseState
}

// New starts a lesson session for the topic at the learner's level. It fails
// with ErrContentUnavailable when the catalog carries no sections for the
// (topic, level) pair.
func New(cat *catalog.Catalog, topicID string, level assessment.Level, review bool) (*Session, error) {
	topic, err := cat.TopicByID(topicID)
	if err != nil {
		return nil, err
	}
	sections, ok := cat.Sections(topicID, string(level))
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrContentUnavailable, topicID, level)
	}

	var exercises []ExerciseState
	for si, section := range sections {
		for ei, ex := range section.Exercises {
			exercises = append(exercises, ExerciseState{
				SectionIndex: si,
				Index:        ei,
				Exercise:     ex,
			})
		}
	}

	return &Session{
		ID:        uuid.New().String(),
		Topic:     topic,
		Level:     level,
		Sections:  sections,
		Review:    review,
		exercises: exercises,
	}, nil
}

// CurrentIndex returns the index of the section being viewed.
func (s *Session) CurrentIndex() int { return s.current }

// CurrentSection returns the section being viewed.
func (s *Session) CurrentSection() catalog.LessonSection {
	return s.Sections[s.current]
}

// OnLastSection reports whether the learner is viewing the final section.
func (s *Session) OnLastSection() bool {
	return s.current == len(s.Sections)-1
}

// Next advances to the following section. It reports false, without moving,
// when already on the last section.
func (s *Session) Next() bool {
	if s.OnLastSection() {
		return false
	}
	s.current++
	return true
}

// Previous steps back one section. It reports false, without moving, when
// already on the first section.
func (s *Session) Previous() bool {
	if s.current == 0 {
		return false
	}
	s.current--
	return true
}

// Complete marks the session finished. Idempotent.
func (s *Session) Complete() { s.completed = true }

// Completed reports whether the session has been marked finished.
func (s *Session) Completed() bool { return s.completed }

// Exercises returns the flattened exercise states in section order. The
// returned slice aliases session state; callers mutate it through Check,
// ShowHint and ShowSolution only.
func (s *Session) Exercises() []ExerciseState { return s.exercises }

// SectionExercises returns pointers to the exercise states belonging to one
// section, in order.
func (s *Session) SectionExercises(sectionIndex int) []*ExerciseState {
	var out []*ExerciseState
	for i := range s.exercises {
		if s.exercises[i].SectionIndex == sectionIndex {
			out = append(out, &s.exercises[i])
		}
	}
	return out
}

// Check records a submitted answer for the i'th flattened exercise and
// reports whether it matches. On a mismatch it returns the context a tutor
// needs. Re-checking overwrites the previous verdict.
func (s *Session) Check(i int, submitted string) (bool, *Mismatch) {
	ex := &s.exercises[i]
	ex.Answer = submitted
	ex.Checked = true
	ex.Correct = answers.Match(submitted, ex.Exercise.Answer)
	if ex.Correct {
		return true, nil
	}
	return false, &Mismatch{
		Question:  ex.Exercise.Question,
		Expected:  ex.Exercise.Answer,
		Submitted: submitted,
		Hint:      ex.Exercise.Hint,
	}
}

// ShowHint marks the hint revealed for the i'th flattened exercise.
func (s *Session) ShowHint(i int) { s.exercises[i].HintShown = true }

// ShowSolution marks the solution revealed for the i'th flattened exercise.
func (s *Session) ShowSolution(i int) { s.exercises[i].SolutionShown = true }

// CorrectCount returns the number of exercises currently answered correctly.
func (s *Session) CorrectCount() int {
	n := 0
	for i := range s.exercises {
		if s.exercises[i].Correct {
			n++
		}
	}
	return n
}

// Score returns the completion score as a rounded percentage of exercises
// answered correctly. A lesson with no exercises scores 100.
func (s *Session) Score() int {
	total := len(s.exercises)
	if total == 0 {
		return 100
	}
	return int(float64(s.CorrectCount())/float64(total)*100 + 0.5)
}
