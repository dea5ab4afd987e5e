package lesson

import (
	"errors"
	"testing"

	"github.com/abhisek/derivio/internal/assessment"
	"github.com/abhisek/derivio/internal/catalog"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return c
}

func TestNew_UnknownTopic(t *testing.T) {
	c := testCatalog(t)
	if _, err := New(c, "no-such-topic", assessment.LevelBeginner, false); err == nil {
		t.Error("unknown topic should fail")
	}
}

func TestNew_ContentUnavailable(t *testing.T) {
	c := testCatalog(t)
	_, err := New(c, "quotient-rule", assessment.LevelBeginner, false)
	if !errors.Is(err, ErrContentUnavailable) {
		t.Errorf("err = %v, want ErrContentUnavailable", err)
	}
}

func TestNew_AssignsSessionID(t *testing.T) {
	c := testCatalog(t)
	s1, err := New(c, "basic-rules", assessment.LevelBeginner, false)
	if err != nil {
		t.Fatal(err)
	}
	s2, _ := New(c, "basic-rules", assessment.LevelBeginner, false)
	if s1.ID == "" || s1.ID == s2.ID {
		t.Errorf("session ids should be unique and non-empty, got %q and %q", s1.ID, s2.ID)
	}
}

func TestNavigation_Clamped(t *testing.T) {
	c := testCatalog(t)
	s, err := New(c, "basic-rules", assessment.LevelBeginner, false)
	if err != nil {
		t.Fatal(err)
	}

	if s.Previous() {
		t.Error("Previous on first section should report false")
	}
	if s.CurrentIndex() != 0 {
		t.Errorf("index = %d after clamped Previous, want 0", s.CurrentIndex())
	}

	steps := 0
	for s.Next() {
		steps++
	}
	if steps != len(s.Sections)-1 {
		t.Errorf("advanced %d times, want %d", steps, len(s.Sections)-1)
	}
	if !s.OnLastSection() {
		t.Error("should be on last section after exhausting Next")
	}
	if s.Next() {
		t.Error("Next on last section should report false")
	}
}

func TestCheck_MismatchContext(t *testing.T) {
	c := testCatalog(t)
	s, err := New(c, "basic-rules", assessment.LevelBeginner, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Exercises()) == 0 {
		t.Fatal("beginner basic-rules lesson should have exercises")
	}

	correct, mismatch := s.Check(0, "definitely wrong")
	if correct {
		t.Fatal("wrong answer reported correct")
	}
	ex := s.Exercises()[0]
	if mismatch == nil || mismatch.Expected != ex.Exercise.Answer || mismatch.Submitted != "definitely wrong" {
		t.Errorf("mismatch = %+v", mismatch)
	}
	if !ex.Checked || ex.Correct {
		t.Errorf("exercise state = %+v after wrong answer", ex)
	}

	// Re-checking with the right answer overwrites the verdict.
	correct, mismatch = s.Check(0, "  "+ex.Exercise.Answer+" ")
	if !correct || mismatch != nil {
		t.Error("normalized correct answer should pass on retry")
	}
	if !s.Exercises()[0].Correct {
		t.Error("verdict not overwritten on retry")
	}
}

func TestScore_Rounding(t *testing.T) {
	s := &Session{exercises: []ExerciseState{
		{Correct: true}, {Correct: true}, {Correct: false},
	}}
	if got := s.Score(); got != 67 { // 2/3 = 66.67, rounds up
		t.Errorf("score = %d, want 67", got)
	}
}

func TestScore_NoExercisesIsFull(t *testing.T) {
	s := &Session{}
	if got := s.Score(); got != 100 {
		t.Errorf("score = %d, want 100 for lesson without exercises", got)
	}
}

func TestScore_UncheckedCountsIncorrect(t *testing.T) {
	c := testCatalog(t)
	s, err := New(c, "basic-rules", assessment.LevelBeginner, false)
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Score(); got != 0 {
		t.Errorf("score = %d before any checking, want 0", got)
	}
}

func TestSectionExercises_AliasesState(t *testing.T) {
	c := testCatalog(t)
	s, err := New(c, "basic-rules", assessment.LevelBeginner, false)
	if err != nil {
		t.Fatal(err)
	}

	si := s.Exercises()[0].SectionIndex
	s.ShowHint(0)
	s.ShowSolution(0)
	for _, ex := range s.SectionExercises(si) {
		if ex.SectionIndex == si && ex.Index == 0 {
			if !ex.HintShown || !ex.SolutionShown {
				t.Error("hint/solution flags should be visible through SectionExercises")
			}
			return
		}
	}
	t.Fatal("exercise 0 not found in its section")
}

func TestComplete_Idempotent(t *testing.T) {
	c := testCatalog(t)
	s, err := New(c, "basic-rules", assessment.LevelBeginner, false)
	if err != nil {
		t.Fatal(err)
	}
	s.Complete()
	s.Complete()
	if !s.Completed() {
		t.Error("session should be completed")
	}
}
