package curriculum

import (
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

func TestIsUnlockable_EmptyPrereqsAlwaysTrue(t *testing.T) {
	topic := catalog.Topic{ID: "basic-rules"}
	if !IsUnlockable(topic, nil, nil) {
		t.Error("topic without prerequisites should always be unlockable")
	}
}

func TestIsUnlockable_MissingPrereqBlocks(t *testing.T) {
	topic := catalog.Topic{ID: "chain-rule", Prerequisites: []string{"basic-rules", "polynomial-functions"}}

	if IsUnlockable(topic, map[string]bool{"basic-rules": true}, nil) {
		t.Error("one missing prerequisite should block unlock")
	}
	if !IsUnlockable(topic, map[string]bool{"basic-rules": true, "polynomial-functions": true}, nil) {
		t.Error("all prerequisites completed should unlock")
	}
}

func TestIsUnlockable_StrengthSubstitutesForCompletion(t *testing.T) {
	topic := catalog.Topic{ID: "chain-rule", Prerequisites: []string{"basic-rules", "polynomial-functions"}}

	completed := map[string]bool{"polynomial-functions": true}
	strengths := map[string]bool{"basic-rules": true}
	if !IsUnlockable(topic, completed, strengths) {
		t.Error("a demonstrated strength should substitute for completing the prerequisite")
	}
}

func TestAvailableTopics_FreshLearnerGetsRoots(t *testing.T) {
	c := testCatalog(t)

	available := AvailableTopics(c, nil, nil)

	found := false
	for _, topic := range available {
		if topic.ID == "basic-rules" {
			found = true
		}
		if len(topic.Prerequisites) > 0 {
			t.Errorf("fresh learner should not see %q (has prerequisites)", topic.ID)
		}
	}
	if !found {
		t.Error("basic-rules (no prerequisites) should always be available to a fresh learner")
	}
}

func TestAvailableTopics_ExcludesCompleted(t *testing.T) {
	c := testCatalog(t)

	available := AvailableTopics(c, []string{"basic-rules"}, nil)
	for _, topic := range available {
		if topic.ID == "basic-rules" {
			t.Error("completed topic must not be available")
		}
	}

	// Completing basic-rules unlocks its direct dependents.
	ids := make(map[string]bool)
	for _, topic := range available {
		ids[topic.ID] = true
	}
	for _, want := range []string{"polynomial-functions", "trigonometric-functions", "exponential-functions"} {
		if !ids[want] {
			t.Errorf("%s should be available after completing basic-rules", want)
		}
	}
	if ids["quotient-rule"] {
		t.Error("quotient-rule requires product-rule and should stay locked")
	}
}

func TestRecommend_StablePartitionOnWeakness(t *testing.T) {
	c := testCatalog(t)
	available := AvailableTopics(c, []string{"basic-rules", "polynomial-functions"}, nil)

	recommended, other := Recommend(available, []string{"chain-rule"})

	if len(recommended) != 1 || recommended[0].ID != "chain-rule" {
		t.Fatalf("recommended = %v, want exactly chain-rule", topicIDs(recommended))
	}

	// Catalog order must be preserved in the remainder.
	wantOther := []string{"trigonometric-functions", "exponential-functions", "product-rule"}
	gotOther := topicIDs(other)
	if len(gotOther) != len(wantOther) {
		t.Fatalf("other = %v, want %v", gotOther, wantOther)
	}
	for i := range wantOther {
		if gotOther[i] != wantOther[i] {
			t.Errorf("other[%d] = %s, want %s (catalog order must be preserved)", i, gotOther[i], wantOther[i])
		}
	}
}

func TestRecommend_MatchesRawAndWordedTag(t *testing.T) {
	available := []catalog.Topic{
		{ID: "a", Title: "Advanced", Description: "Drills the chain-rule inside integrals"},
		{ID: "b", Title: "Chain Rule", Description: "Differentiating compositions"},
		{ID: "c", Title: "Product Rule", Description: "Differentiating products"},
	}

	recommended, other := Recommend(available, []string{"chain-rule"})

	got := topicIDs(recommended)
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("recommended = %v, want [a b] (hyphenated and worded mentions both match)", got)
	}
	if len(other) != 1 || other[0].ID != "c" {
		t.Errorf("other = %v, want [c]", topicIDs(other))
	}
}

func TestRecommend_NoWeaknesses(t *testing.T) {
	c := testCatalog(t)
	available := AvailableTopics(c, nil, nil)

	recommended, other := Recommend(available, nil)
	if len(recommended) != 0 {
		t.Errorf("no weaknesses should yield no recommendations, got %v", topicIDs(recommended))
	}
	if len(other) != len(available) {
		t.Errorf("all available topics should land in other, got %d of %d", len(other), len(available))
	}
}

func TestReviewTopics_CatalogOrder(t *testing.T) {
	c := testCatalog(t)

	review := ReviewTopics(c, []string{"polynomial-functions", "basic-rules"})
	got := topicIDs(review)
	want := []string{"basic-rules", "polynomial-functions"}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("review = %v, want %v (catalog order, not completion order)", got, want)
	}
}

func TestAvailableTopics_AssessmentStrengthUnlocks(t *testing.T) {
	c := testCatalog(t)
	result := &assessment.Result{Strengths: []string{"basic-rules"}}

	available := AvailableTopics(c, nil, result)
	ids := make(map[string]bool)
	for _, topic := range available {
		ids[topic.ID] = true
	}
	if !ids["trigonometric-functions"] {
		t.Error("strength in basic-rules should unlock trigonometric-functions without completing the lesson")
	}
}

func topicIDs(topics []catalog.Topic) []string {
	ids := make([]string, len(topics))
	for i, t := range topics {
		ids[i] = t.ID
	}
	return ids
}
