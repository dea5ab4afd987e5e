package assessment

import (
	"testing"

	"github.com/abhisek/derivio/internal/catalog"
)

// makeQuestions builds n questions all tagged with the same topic,
// answered correctly with "yes".
func makeQuestions(n int, tag string) []catalog.DiagnosticQuestion {
	qs := make([]catalog.DiagnosticQuestion, n)
	for i := range qs {
		qs[i] = catalog.DiagnosticQuestion{
			ID:       tag + string(rune('a'+i)),
			Kind:     catalog.KindInput,
			Answer:   "yes",
			TopicTag: tag,
		}
	}
	return qs
}

// answerFirst answers the first k questions correctly.
func answerFirst(qs []catalog.DiagnosticQuestion, k int) map[string]string {
	m := make(map[string]string)
	for i := 0; i < k && i < len(qs); i++ {
		m[qs[i].ID] = "yes"
	}
	return m
}

func TestScore_LevelThresholds(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		correct int
		want    Level
	}{
		{"all wrong", 10, 0, LevelBeginner},
		{"just below intermediate", 10, 4, LevelBeginner},
		{"exactly 0.5 is intermediate", 10, 5, LevelIntermediate},
		{"just below advanced", 10, 7, LevelIntermediate},
		{"exactly 0.8 is advanced", 10, 8, LevelAdvanced},
		{"perfect", 10, 10, LevelAdvanced},
		{"five of six is advanced", 6, 5, LevelAdvanced}, // 0.833
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qs := makeQuestions(tt.total, "tag")
			res := Score(qs, answerFirst(qs, tt.correct))
			if res.Level != tt.want {
				t.Errorf("level = %q, want %q (%d/%d)", res.Level, tt.want, tt.correct, tt.total)
			}
			if res.Score != tt.correct {
				t.Errorf("score = %d, want %d", res.Score, tt.correct)
			}
			if res.TotalQuestions != tt.total {
				t.Errorf("total = %d, want %d", res.TotalQuestions, tt.total)
			}
		})
	}
}

func TestScore_TagThresholdBoundaries(t *testing.T) {
	// 100 questions per tag lets us hit exact accuracy fractions.
	tests := []struct {
		name         string
		correct      int
		wantStrength bool
		wantWeakness bool
	}{
		{"0.49 is weakness", 49, false, true},
		{"0.50 is neither", 50, false, false},
		{"0.69 is neither", 69, false, false},
		{"0.70 is strength", 70, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qs := makeQuestions(100, "chain rule")
			res := Score(qs, answerFirst(qs, tt.correct))

			gotStrength := res.HasStrength("chain rule")
			gotWeakness := false
			for _, w := range res.Weaknesses {
				if w == "chain rule" {
					gotWeakness = true
				}
			}

			if gotStrength != tt.wantStrength {
				t.Errorf("strength = %v, want %v", gotStrength, tt.wantStrength)
			}
			if gotWeakness != tt.wantWeakness {
				t.Errorf("weakness = %v, want %v", gotWeakness, tt.wantWeakness)
			}
		})
	}
}

func TestScore_UnansweredCountsIncorrect(t *testing.T) {
	qs := makeQuestions(4, "tag")
	res := Score(qs, nil)
	if res.Score != 0 {
		t.Errorf("score = %d, want 0 for fully unanswered", res.Score)
	}
	if res.Level != LevelBeginner {
		t.Errorf("level = %q, want beginner", res.Level)
	}
}

func TestScore_NormalizesBeforeComparing(t *testing.T) {
	qs := []catalog.DiagnosticQuestion{
		{ID: "q1", Kind: catalog.KindInput, Answer: "2x", TopicTag: "basic rules"},
	}
	res := Score(qs, map[string]string{"q1": "  2X "})
	if res.Score != 1 {
		t.Errorf("score = %d, want 1 (case/whitespace normalized)", res.Score)
	}
}

func TestScore_TagOrderIsFirstAppearance(t *testing.T) {
	qs := []catalog.DiagnosticQuestion{
		{ID: "a", Kind: catalog.KindInput, Answer: "y", TopicTag: "beta"},
		{ID: "b", Kind: catalog.KindInput, Answer: "y", TopicTag: "alpha"},
		{ID: "c", Kind: catalog.KindInput, Answer: "y", TopicTag: "beta"},
	}
	// Answer everything correctly: both tags become strengths.
	res := Score(qs, map[string]string{"a": "y", "b": "y", "c": "y"})
	if len(res.Strengths) != 2 || res.Strengths[0] != "beta" || res.Strengths[1] != "alpha" {
		t.Errorf("strengths = %v, want [beta alpha] (question order)", res.Strengths)
	}
}

func TestScore_MixedTagsScenario(t *testing.T) {
	// Two tags: one answered perfectly, one answered 0/2.
	qs := []catalog.DiagnosticQuestion{
		{ID: "s1", Kind: catalog.KindInput, Answer: "y", TopicTag: "basic rules"},
		{ID: "s2", Kind: catalog.KindInput, Answer: "y", TopicTag: "basic rules"},
		{ID: "w1", Kind: catalog.KindInput, Answer: "y", TopicTag: "chain rule"},
		{ID: "w2", Kind: catalog.KindInput, Answer: "y", TopicTag: "chain rule"},
	}
	res := Score(qs, map[string]string{"s1": "y", "s2": "y", "w1": "n", "w2": ""})

	if !res.HasStrength("basic rules") {
		t.Error("basic rules should be a strength")
	}
	if len(res.Weaknesses) != 1 || res.Weaknesses[0] != "chain rule" {
		t.Errorf("weaknesses = %v, want [chain rule]", res.Weaknesses)
	}
	if res.Level != LevelIntermediate { // 2/4 = 0.5
		t.Errorf("level = %q, want intermediate", res.Level)
	}
}
