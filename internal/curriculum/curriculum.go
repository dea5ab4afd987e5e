// Package curriculum derives what the learner can study next: prerequisite
// resolution over the topic DAG and weakness-first recommendation ordering.
package curriculum

import (
	"strings"

	"github.com/abhisek/derivio/internal/assessment"
	"github.com/abhisek/derivio/internal/catalog"
)

// IsUnlockable reports whether every prerequisite of the topic is satisfied
// by a completed topic or an assessment-demonstrated strength. Topics with
// no prerequisites are always unlockable.
func IsUnlockable(topic catalog.Topic, completed map[string]bool, strengths map[string]bool) bool {
	for _, prereqID := range topic.Prerequisites {
		if !completed[prereqID] && !strengths[prereqID] {
			return false
		}
	}
	return true
}

// AvailableTopics returns the catalog topics that are unlockable and not yet
// completed, in catalog order. result may be nil (no assessment yet).
func AvailableTopics(cat *catalog.Catalog, completedTopics []string, result *assessment.Result) []catalog.Topic {
	completed := toSet(completedTopics)
	strengths := strengthSet(result)

	var available []catalog.Topic
	for _, t := range cat.Topics {
		if completed[t.ID] {
			continue
		}
		if IsUnlockable(t, completed, strengths) {
			available = append(available, t)
		}
	}
	return available
}

// Recommend partitions available topics into (recommended, other). A topic
// is recommended when its title or description mentions one of the learner's
// weakness tags, case-insensitively. The partition is stable: catalog order
// is preserved within both lists.
func Recommend(available []catalog.Topic, weaknesses []string) (recommended, other []catalog.Topic) {
	for _, t := range available {
		if addressesWeakness(t, weaknesses) {
			recommended = append(recommended, t)
		} else {
			other = append(other, t)
		}
	}
	return recommended, other
}

// ReviewTopics returns the completed topics in catalog order. They are
// always offered again for review, regardless of prerequisites.
func ReviewTopics(cat *catalog.Catalog, completedTopics []string) []catalog.Topic {
	completed := toSet(completedTopics)
	var review []catalog.Topic
	for _, t := range cat.Topics {
		if completed[t.ID] {
			review = append(review, t)
		}
	}
	return review
}

func addressesWeakness(t catalog.Topic, weaknesses []string) bool {
	title := strings.ToLower(t.Title)
	desc := strings.ToLower(t.Description)
	for _, w := range weaknesses {
		raw := strings.ToLower(w)
		if raw == "" {
			continue
		}
		if strings.Contains(title, raw) || strings.Contains(desc, raw) {
			return true
		}
		// Weakness tags are topic ids ("chain-rule"); titles and
		// descriptions usually spell them as words ("Chain Rule").
		worded := strings.ReplaceAll(raw, "-", " ")
		if strings.Contains(title, worded) || strings.Contains(desc, worded) {
			return true
		}
	}
	return false
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func strengthSet(result *assessment.Result) map[string]bool {
	if result == nil {
		return nil
	}
	set := make(map[string]bool, len(result.Strengths))
	for _, s := range result.Strengths {
		set[s] = true
	}
	return set
}
