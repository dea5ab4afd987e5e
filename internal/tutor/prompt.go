package tutor

import (
	"fmt"
	"strings"

	"github.com/abhisek/derivio/internal/assessment"
	"github.com/abhisek/derivio/internal/catalog"
	"github.com/abhisek/derivio/internal/lesson"
)

const tutorPersona = `You are a patient, encouraging calculus tutor helping a student learn differentiation. Guide the student towards the answer with questions and small hints. Never give the full solution outright. Keep replies to 2-4 sentences. Use plain ASCII for all math: write x^2 for powers and / for fractions. No LaTeX.`

// openingUserTurn seeds the first request so the tutor greets the learner.
const openingUserTurn = "Please greet me briefly and ask what I'm stuck on."

// buildSystemPrompt assembles the tutor's instructions with the lesson
// context and, when present, the exercise the learner got wrong.
func buildSystemPrompt(topic catalog.Topic, level assessment.Level, mismatch *lesson.Mismatch) string {
	var b strings.Builder

	b.WriteString(tutorPersona)
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Topic: %s\n", topic.Title))
	if topic.Description != "" {
		b.WriteString(fmt.Sprintf("Description: %s\n", topic.Description))
	}
	b.WriteString(fmt.Sprintf("Student level: %s\n", level.DisplayName()))

	if mismatch != nil {
		b.WriteString("\nThe student just answered an exercise incorrectly:\n")
		b.WriteString(fmt.Sprintf("Exercise: %s\n", mismatch.Question))
		b.WriteString(fmt.Sprintf("Student's answer: %s\n", mismatch.Submitted))
		b.WriteString(fmt.Sprintf("Correct answer: %s\n", mismatch.Expected))
		if mismatch.Hint != "" {
			b.WriteString(fmt.Sprintf("Built-in hint: %s\n", mismatch.Hint))
		}
		b.WriteString("\nHelp the student see where their answer went wrong without revealing the correct answer directly.")
	}

	return b.String()
}
