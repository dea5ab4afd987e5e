package catalog

import "testing"

func TestLoad_EmbeddedCatalogIsValid(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("load embedded catalog: %v", err)
	}
	if len(c.Questions) == 0 {
		t.Fatal("expected diagnostic questions")
	}
	if len(c.Topics) == 0 {
		t.Fatal("expected topics")
	}
}

func TestLoad_MultipleChoiceAnswersAreChoices(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	for _, q := range c.Questions {
		if q.Kind != KindMultipleChoice {
			continue
		}
		found := false
		for _, choice := range q.Choices {
			if choice == q.Answer {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("question %q: answer %q not among choices %v", q.ID, q.Answer, q.Choices)
		}
	}
}

func TestTopicByID(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	topic, err := c.TopicByID("basic-rules")
	if err != nil {
		t.Fatalf("TopicByID(basic-rules): %v", err)
	}
	if len(topic.Prerequisites) != 0 {
		t.Errorf("basic-rules should have no prerequisites, got %v", topic.Prerequisites)
	}

	if _, err := c.TopicByID("no-such-topic"); err == nil {
		t.Error("expected error for unknown topic id")
	}
}

func TestSections_KnownAndUnknownPairs(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	sections, ok := c.Sections("basic-rules", "beginner")
	if !ok {
		t.Fatal("expected beginner content for basic-rules")
	}
	if len(sections) == 0 {
		t.Fatal("expected non-empty section list")
	}

	if _, ok := c.Sections("quotient-rule", "beginner"); ok {
		t.Error("expected no content for quotient-rule (not yet authored)")
	}
	if _, ok := c.Sections("basic-rules", "wizard"); ok {
		t.Error("expected no content for unknown level")
	}
}

func TestLessonLevelsReferToKnownTopics(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	for topicID := range c.Lessons {
		if _, err := c.TopicByID(topicID); err != nil {
			t.Errorf("lesson content for unknown topic %q", topicID)
		}
	}
}
