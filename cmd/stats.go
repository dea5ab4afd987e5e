package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/derivio/internal/llm"
	"github.com/abhisek/derivio/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning progress and LLM usage",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		data, err := st.ProgressRepo().Load(ctx)
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}

		sep := strings.Repeat("─", 72)

		fmt.Println("Learner")
		fmt.Println(sep)
		if data.Phase == store.PhaseAssessment || data.Assessment == nil {
			fmt.Println("Placement assessment not taken yet.")
		} else {
			res := data.Assessment
			fmt.Printf("Level:        %s\n", res.Level.DisplayName())
			fmt.Printf("Assessment:   %d/%d correct\n", res.Score, res.TotalQuestions)
			if len(res.Strengths) > 0 {
				fmt.Printf("Strengths:    %s\n", strings.Join(res.Strengths, ", "))
			}
			if len(res.Weaknesses) > 0 {
				fmt.Printf("Weaknesses:   %s\n", strings.Join(res.Weaknesses, ", "))
			}
			fmt.Printf("Completed:    %d topics\n", len(data.CompletedTopics))
			fmt.Printf("Total score:  %d\n", data.TotalScore)
		}

		history, err := st.EventRepo().TopicHistory(ctx)
		if err != nil {
			return fmt.Errorf("query lesson history: %w", err)
		}
		if len(history) > 0 {
			fmt.Println()
			fmt.Println("Lesson History")
			fmt.Println(sep)
			fmt.Printf("%-17s  %-26s  %-13s  %5s\n", "Date", "Topic", "Level", "Score")
			fmt.Println(sep)
			for _, h := range history {
				topic := h.TopicID
				if h.Review {
					topic += " (review)"
				}
				fmt.Printf("%-17s  %-26s  %-13s  %5d\n",
					h.Timestamp.Local().Format("2006-01-02 15:04"),
					topic, h.Level, h.Score)
			}
		}

		usage, err := st.EventRepo().LLMUsage(ctx)
		if err != nil {
			return fmt.Errorf("query LLM usage: %w", err)
		}
		if len(usage) > 0 {
			fmt.Println()
			fmt.Println("LLM Usage and Estimated Cost (USD)")
			fmt.Println(sep)
			fmt.Printf("%-32s  %6s  %10s  %10s  %9s\n",
				"Model", "Calls", "Input", "Output", "Cost")
			fmt.Println(sep)

			var totalCost float64
			var unknownModels []string
			for _, mu := range usage {
				cost := llm.LookupCost(mu.Model)
				if cost == nil {
					unknownModels = append(unknownModels, mu.Model)
					fmt.Printf("%-32s  %6d  %10d  %10d  %9s\n",
						truncate(mu.Model, 32), mu.Requests, mu.InputTokens, mu.OutputTokens, "?")
					continue
				}
				c := cost.Cost(mu.InputTokens, mu.OutputTokens)
				totalCost += c
				fmt.Printf("%-32s  %6d  %10d  %10d  %9s\n",
					truncate(mu.Model, 32), mu.Requests, mu.InputTokens, mu.OutputTokens, formatCost(c))
			}

			fmt.Println(sep)
			label := "TOTAL"
			if len(unknownModels) > 0 {
				label = "TOTAL (partial)"
			}
			fmt.Printf("%-32s  %6s  %10s  %10s  %9s\n", label, "", "", "", formatCost(totalCost))

			if len(unknownModels) > 0 {
				fmt.Printf("\nPricing unavailable for: %s\n", strings.Join(unknownModels, ", "))
			}
		}

		return nil
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}
