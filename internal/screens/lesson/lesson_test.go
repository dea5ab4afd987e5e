package lesson

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/derivio/internal/assessment"
	"github.com/abhisek/derivio/internal/catalog"
	lsn "github.com/abhisek/derivio/internal/lesson"
	"github.com/abhisek/derivio/internal/llm"
	"github.com/abhisek/derivio/internal/progress"
	"github.com/abhisek/derivio/internal/router"
	"github.com/abhisek/derivio/internal/store"
	"github.com/abhisek/derivio/internal/tutor"
)

// dbCounter gives every testLessonScreen call its own in-memory database
// so two screens opened in the same test do not share state.
var dbCounter atomic.Int64

func testLessonScreen(t *testing.T, review bool) (*LessonScreen, *progress.Tracker) {
	t.Helper()
	ctx := context.Background()

	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	st, err := store.Open(fmt.Sprintf("file:lessontest%d?mode=memory&cache=shared", dbCounter.Add(1)))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	tracker, err := progress.NewTracker(ctx, st.ProgressRepo(), st.EventRepo())
	if err != nil {
		t.Fatalf("new tracker: %v", err)
	}
	if err := tracker.CompleteAssessment(ctx, assessment.Result{
		Level:          assessment.LevelBeginner,
		Score:          2,
		TotalQuestions: 6,
	}); err != nil {
		t.Fatalf("complete assessment: %v", err)
	}

	sess, err := lsn.New(cat, "basic-rules", assessment.LevelBeginner, review)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	topic, err := cat.TopicByID("basic-rules")
	if err != nil {
		t.Fatal(err)
	}
	return New(cat, tracker, nil, topic, sess), tracker
}

// toPractice advances sections until an exercise is active.
func toPractice(t *testing.T, s *LessonScreen) {
	t.Helper()
	for i := 0; i < 20 && s.activeExercise() == nil; i++ {
		s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	}
	if s.activeExercise() == nil {
		t.Fatal("never reached a practice section")
	}
}

// answerAll submits the correct answer for every remaining exercise in the
// current section.
func answerAll(t *testing.T, s *LessonScreen) {
	t.Helper()
	for i := 0; i < 20; i++ {
		ex := s.activeExercise()
		if ex == nil {
			return
		}
		s.input.Model.SetValue(ex.Exercise.Answer)
		s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	}
	t.Fatal("section exercises never drained")
}

// finishAllSections answers every exercise and stops on the last section,
// ready for the finishing Enter press.
func finishAllSections(t *testing.T, s *LessonScreen) {
	t.Helper()
	for i := 0; i < 20; i++ {
		answerAll(t, s)
		if s.sess.OnLastSection() {
			return
		}
		s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	}
	t.Fatal("never reached the last section")
}

func TestTitle(t *testing.T) {
	s, _ := testLessonScreen(t, false)
	if s.Title() != "Basic Rules of Differentiation" {
		t.Errorf("Title = %q", s.Title())
	}

	r, _ := testLessonScreen(t, true)
	if !strings.HasSuffix(r.Title(), "(review)") {
		t.Errorf("review Title = %q, want (review) suffix", r.Title())
	}
}

func TestExplanationSectionHasNoActiveExercise(t *testing.T) {
	s, _ := testLessonScreen(t, false)
	if s.activeExercise() != nil {
		t.Error("first section is an explanation, no exercise should be active")
	}

	hints := s.KeyHints()
	found := false
	for _, h := range hints {
		if h.Description == "Continue" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a Continue hint, got %+v", hints)
	}
}

func TestCorrectAnswerAdvances(t *testing.T) {
	s, _ := testLessonScreen(t, false)
	toPractice(t, s)

	first := s.activeFlatIndex()
	s.input.Model.SetValue(s.activeExercise().Exercise.Answer)
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	flat := s.sess.Exercises()
	if !flat[first].Checked || !flat[first].Correct {
		t.Errorf("exercise state = %+v, want checked and correct", flat[first])
	}
	if s.activeFlatIndex() == first {
		t.Error("active exercise did not advance after a correct answer")
	}
}

func TestWrongAnswerAllowsRetry(t *testing.T) {
	s, _ := testLessonScreen(t, false)
	toPractice(t, s)

	first := s.activeFlatIndex()
	s.input.Model.SetValue("nope")
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	flat := s.sess.Exercises()
	if !flat[first].Checked || flat[first].Correct {
		t.Errorf("exercise state = %+v, want checked and wrong", flat[first])
	}
	if !s.lastWrong {
		t.Error("expected retry state after a wrong answer")
	}
	if s.activeFlatIndex() != first {
		t.Error("active exercise should stay put for a retry")
	}

	// A retry with the right answer overwrites the verdict.
	s.input.Model.SetValue(flat[first].Exercise.Answer)
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	flat = s.sess.Exercises()
	if !flat[first].Correct {
		t.Error("retry with correct answer should overwrite the verdict")
	}
}

func TestWrongAnswerOpensTutor(t *testing.T) {
	s, _ := testLessonScreen(t, false)
	mock := llm.NewMockProvider(llm.MockResponse{Text: "Check the exponent first."})
	s.tut = tutor.NewService(mock, nil, tutor.DefaultConfig())

	toPractice(t, s)
	s.input.Model.SetValue("3x")
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if !s.chat {
		t.Fatal("tutor overlay should open on a wrong answer")
	}
	if cmd == nil {
		t.Fatal("expected the chat poll command to start")
	}
	if !s.chatStarted || s.chatMismatch == nil {
		t.Error("conversation should be anchored to the mismatch")
	}
	if s.chatMismatch.Submitted != "3x" {
		t.Errorf("mismatch submitted = %q, want the learner's answer", s.chatMismatch.Submitted)
	}

	// Closing the overlay returns to the exercise for a retry.
	s.Update(tea.KeyPressMsg{Code: 't', Mod: tea.ModCtrl})
	if s.chat {
		t.Error("ctrl+t should close the overlay")
	}
	if !s.lastWrong {
		t.Error("retry state should survive the tutor exchange")
	}
}

func TestHintAndSolutionKeys(t *testing.T) {
	s, _ := testLessonScreen(t, false)
	toPractice(t, s)
	i := s.activeFlatIndex()

	s.Update(tea.KeyPressMsg{Code: 'h', Mod: tea.ModCtrl})
	s.Update(tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl})

	flat := s.sess.Exercises()
	if !flat[i].HintShown || !flat[i].SolutionShown {
		t.Errorf("exercise state = %+v, want hint and solution shown", flat[i])
	}
}

func TestFinishRecordsCompletion(t *testing.T) {
	s, tracker := testLessonScreen(t, false)
	finishAllSections(t, s)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from finishing the lesson")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok || msg.Screen == nil {
		t.Fatalf("finish message = %#v, want ReplaceScreenMsg with a summary", cmd())
	}

	if !tracker.HasCompleted("basic-rules") {
		t.Error("completion was not recorded")
	}
	if tracker.TotalScore() != 100 {
		t.Errorf("total score = %d, want 100 for a perfect run", tracker.TotalScore())
	}
	if s.saveErr != nil {
		t.Errorf("save error: %v", s.saveErr)
	}
}

func TestReviewDoesNotRecordProgress(t *testing.T) {
	s, tracker := testLessonScreen(t, true)
	finishAllSections(t, s)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from finishing the review")
	}

	if tracker.HasCompleted("basic-rules") {
		t.Error("review must not mark the topic completed")
	}
	if tracker.TotalScore() != 0 {
		t.Errorf("total score = %d, want 0 after a review", tracker.TotalScore())
	}
}

func TestViewRenders(t *testing.T) {
	s, _ := testLessonScreen(t, false)
	view := s.View(100, 40)
	if !strings.Contains(view, "What is differentiation?") {
		t.Errorf("view missing section title:\n%s", view)
	}
}
