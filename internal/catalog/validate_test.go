package catalog

import (
	"strings"
	"testing"
)

func TestValidateTopics_DetectsCycle(t *testing.T) {
	topics := []Topic{
		{ID: "a", Prerequisites: []string{"b"}},
		{ID: "b", Prerequisites: []string{"a"}},
	}
	err := validateTopics(topics)
	if err == nil {
		t.Fatal("expected error for cycle, got nil")
	}
	if !strings.Contains(err.Error(), "cycle") {
		t.Errorf("error should mention cycle, got: %v", err)
	}
}

func TestValidateTopics_DetectsDanglingPrereq(t *testing.T) {
	topics := []Topic{
		{ID: "a"},
		{ID: "b", Prerequisites: []string{"nonexistent"}},
	}
	err := validateTopics(topics)
	if err == nil {
		t.Fatal("expected error for dangling prerequisite, got nil")
	}
	if !strings.Contains(err.Error(), "nonexistent") {
		t.Errorf("error should mention the missing ID, got: %v", err)
	}
}

func TestValidateTopics_DetectsDuplicateID(t *testing.T) {
	topics := []Topic{
		{ID: "a"},
		{ID: "a"},
	}
	err := validateTopics(topics)
	if err == nil {
		t.Fatal("expected error for duplicate ID, got nil")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("error should mention duplicate, got: %v", err)
	}
}

func TestValidateTopics_RequiresAtLeastOneRoot(t *testing.T) {
	topics := []Topic{
		{ID: "a", Prerequisites: []string{"b"}},
		{ID: "b", Prerequisites: []string{"a"}},
	}
	err := validateTopics(topics)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "root") && !strings.Contains(err.Error(), "cycle") {
		t.Errorf("error should mention root or cycle, got: %v", err)
	}
}

func TestValidateTopics_AcceptsValidDAG(t *testing.T) {
	topics := []Topic{
		{ID: "a"},
		{ID: "b", Prerequisites: []string{"a"}},
		{ID: "c", Prerequisites: []string{"a", "b"}},
	}
	if err := validateTopics(topics); err != nil {
		t.Fatalf("valid DAG rejected: %v", err)
	}
}

func TestValidateSchema_RejectsMalformedCatalog(t *testing.T) {
	raw := []byte(`{"questions": [], "topics": [], "lessons": {}}`)
	if err := validateSchema(raw); err == nil {
		t.Fatal("expected schema error for empty question/topic lists")
	}
}
