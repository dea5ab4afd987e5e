// Package assessment scores the fixed diagnostic into a level placement and
// a strength/weakness profile.
package assessment

import (
	"github.com/abhisek/derivio/internal/answers"
	"github.com/abhisek/derivio/internal/catalog"
)

// Level is the learner's classified skill tier.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// DisplayName returns a human-readable label for a level.
func (l Level) DisplayName() string {
	switch l {
	case LevelBeginner:
		return "Beginner"
	case LevelIntermediate:
		return "Intermediate"
	case LevelAdvanced:
		return "Advanced"
	default:
		return string(l)
	}
}

// Level classification thresholds on overall accuracy.
const (
	advancedThreshold     = 0.8
	intermediateThreshold = 0.5
)

// Per-topic-tag classification thresholds.
const (
	strengthThreshold = 0.7
	weaknessThreshold = 0.5
)

// Result is the immutable outcome of one completed diagnostic pass.
type Result struct {
	Level          Level    `json:"level"`
	Strengths      []string `json:"strengths"`
	Weaknesses     []string `json:"weaknesses"`
	Score          int      `json:"score"`
	TotalQuestions int      `json:"totalQuestions"`
}

// HasStrength reports whether tag is among the demonstrated strengths.
func (r *Result) HasStrength(tag string) bool {
	for _, s := range r.Strengths {
		if s == tag {
			return true
		}
	}
	return false
}

// Score evaluates submitted answers against the diagnostic question set.
// submitted maps question id to the learner's answer and may be incomplete;
// an unanswered question counts as incorrect. Pure function; persisting the
// result is the caller's job.
func Score(questions []catalog.DiagnosticQuestion, submitted map[string]string) Result {
	type tagScore struct {
		correct int
		total   int
	}

	correct := 0
	perTag := make(map[string]*tagScore)
	var tagOrder []string

	for _, q := range questions {
		ts := perTag[q.TopicTag]
		if ts == nil {
			ts = &tagScore{}
			perTag[q.TopicTag] = ts
			tagOrder = append(tagOrder, q.TopicTag)
		}
		ts.total++

		if answers.Match(submitted[q.ID], q.Answer) {
			correct++
			ts.correct++
		}
	}

	var strengths, weaknesses []string
	for _, tag := range tagOrder {
		ts := perTag[tag]
		accuracy := float64(ts.correct) / float64(ts.total)
		switch {
		case accuracy >= strengthThreshold:
			strengths = append(strengths, tag)
		case accuracy < weaknessThreshold:
			weaknesses = append(weaknesses, tag)
		}
	}

	return Result{
		Level:          classifyLevel(correct, len(questions)),
		Strengths:      strengths,
		Weaknesses:     weaknesses,
		Score:          correct,
		TotalQuestions: len(questions),
	}
}

// classifyLevel maps the overall accuracy onto a level using the fixed
// thresholds. No hysteresis: the level is never re-derived later.
func classifyLevel(correct, total int) Level {
	if total == 0 {
		return LevelBeginner
	}
	accuracy := float64(correct) / float64(total)
	switch {
	case accuracy >= advancedThreshold:
		return LevelAdvanced
	case accuracy >= intermediateThreshold:
		return LevelIntermediate
	default:
		return LevelBeginner
	}
}
