package summary

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/derivio/internal/catalog"
)

func testParams() Params {
	return Params{
		Topic:        catalog.Topic{ID: "chain-rule", Title: "Chain Rule", Icon: "⛓"},
		Score:        75,
		Correct:      3,
		Total:        4,
		PointsEarned: 75,
		TotalScore:   175,
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testParams())
	if s.Title() != "Lesson Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Lesson Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testParams())
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty summary view")
	}
	if !strings.Contains(view, "Chain Rule") {
		t.Error("expected topic title in view")
	}
	if !strings.Contains(view, "+75 points") {
		t.Error("expected earned points in view")
	}
}

func TestSummaryScreen_ReviewEarnsNothing(t *testing.T) {
	p := testParams()
	p.Review = true
	p.PointsEarned = 0

	view := New(p).View(80, 24)
	if !strings.Contains(view, "Review complete!") {
		t.Error("expected review heading")
	}
	if strings.Contains(view, "+75 points") {
		t.Error("review should not show earned points")
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testParams())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testParams())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testParams())
	hints := s.KeyHints()
	if len(hints) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(hints))
	}
}
