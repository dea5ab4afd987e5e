// Package catalog holds the static content table: the diagnostic question
// set, the topic DAG, and per-(topic, level) lesson content. It is loaded
// once at startup from embedded JSON and never mutated at runtime.
package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed data/catalog.json data/catalog.schema.json
var dataFS embed.FS

// Difficulty is a content difficulty tier.
type Difficulty string

const (
	DifficultyBasic        Difficulty = "basic"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// DisplayName returns a human-readable label for a difficulty tier.
func (d Difficulty) DisplayName() string {
	switch d {
	case DifficultyBasic:
		return "Basic"
	case DifficultyIntermediate:
		return "Intermediate"
	case DifficultyAdvanced:
		return "Advanced"
	default:
		return string(d)
	}
}

// QuestionKind distinguishes how a diagnostic question is answered.
type QuestionKind string

const (
	KindMultipleChoice QuestionKind = "multiple-choice"
	KindInput          QuestionKind = "input"
)

// DiagnosticQuestion is a single question in the fixed placement assessment.
type DiagnosticQuestion struct {
	ID          string       `json:"id"`
	Prompt      string       `json:"prompt"`
	Kind        QuestionKind `json:"kind"`
	Choices     []string     `json:"choices,omitempty"`
	Answer      string       `json:"answer"`
	Difficulty  Difficulty   `json:"difficulty"`
	TopicTag    string       `json:"topicTag"`
	Explanation string       `json:"explanation"`
}

// Topic is a node in the prerequisite DAG.
type Topic struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Difficulty    Difficulty `json:"difficulty"`
	Prerequisites []string   `json:"prerequisites"`
	EstimatedMins int        `json:"estimatedMins"`
	Icon          string     `json:"icon"`
}

// SectionType classifies a lesson section.
type SectionType string

const (
	SectionExplanation SectionType = "explanation"
	SectionExample     SectionType = "example"
	SectionPractice    SectionType = "practice"
)

// WorkedExample is a solved problem with its solution steps.
type WorkedExample struct {
	Problem  string   `json:"problem"`
	Solution string   `json:"solution"`
	Steps    []string `json:"steps"`
}

// Exercise is a practice problem inside a practice section.
type Exercise struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Hint     string `json:"hint,omitempty"`
}

// LessonSection is one step of a lesson for a (topic, level) pair.
type LessonSection struct {
	Type      SectionType     `json:"type"`
	Title     string          `json:"title"`
	Content   string          `json:"content"`
	Examples  []WorkedExample `json:"examples,omitempty"`
	Exercises []Exercise      `json:"exercises,omitempty"`
}

// Catalog is the full content table. Consumers receive it by handle and
// treat it as read-only.
type Catalog struct {
	Questions []DiagnosticQuestion `json:"questions"`
	Topics    []Topic              `json:"topics"`
	// Lessons maps topic id -> level -> ordered sections. Levels are the
	// learner levels "beginner", "intermediate", "advanced".
	Lessons map[string]map[string][]LessonSection `json:"lessons"`

	byID map[string]*Topic
}

// Load parses and validates the embedded catalog. It fails only on a build
// defect (malformed or inconsistent embedded data), never on learner input.
func Load() (*Catalog, error) {
	raw, err := dataFS.ReadFile("data/catalog.json")
	if err != nil {
		return nil, fmt.Errorf("read embedded catalog: %w", err)
	}

	if err := validateSchema(raw); err != nil {
		return nil, fmt.Errorf("catalog schema: %w", err)
	}

	var c Catalog
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	if err := validateTopics(c.Topics); err != nil {
		return nil, fmt.Errorf("catalog topics: %w", err)
	}

	c.byID = make(map[string]*Topic, len(c.Topics))
	for i := range c.Topics {
		c.byID[c.Topics[i].ID] = &c.Topics[i]
	}
	return &c, nil
}

// TopicByID returns a topic by id, or an error if the catalog has no entry.
func (c *Catalog) TopicByID(id string) (Topic, error) {
	t, ok := c.byID[id]
	if !ok {
		return Topic{}, fmt.Errorf("topic not found: %q", id)
	}
	return *t, nil
}

// Sections returns the ordered lesson sections for a topic at a level.
// ok is false when the catalog carries no content for the pair.
func (c *Catalog) Sections(topicID, level string) ([]LessonSection, bool) {
	byLevel, ok := c.Lessons[topicID]
	if !ok {
		return nil, false
	}
	sections, ok := byLevel[level]
	if !ok || len(sections) == 0 {
		return nil, false
	}
	return sections, true
}
