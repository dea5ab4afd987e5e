package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/derivio/internal/catalog"
	"github.com/spf13/cobra"
)

var topicCmd = &cobra.Command{
	Use:   "topic",
	Short: "Browse the topic catalog",
}

var topicListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all topics with prerequisites and available lesson levels",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Load()
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}

		fmt.Printf("%-24s  %-12s  %-8s  %-28s  %s\n",
			"ID", "Difficulty", "Minutes", "Prerequisites", "Levels")
		fmt.Println(strings.Repeat("─", 96))

		for _, t := range cat.Topics {
			prereqs := "-"
			if len(t.Prerequisites) > 0 {
				prereqs = strings.Join(t.Prerequisites, ", ")
			}
			fmt.Printf("%-24s  %-12s  %-8d  %-28s  %s\n",
				t.ID, t.Difficulty, t.EstimatedMins, prereqs, lessonLevels(cat, t.ID))
		}
		return nil
	},
}

var topicShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one topic in detail",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Load()
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		t, err := cat.TopicByID(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("ID:             %s\n", t.ID)
		fmt.Printf("Title:          %s %s\n", t.Icon, t.Title)
		fmt.Printf("Description:    %s\n", t.Description)
		fmt.Printf("Difficulty:     %s\n", t.Difficulty.DisplayName())
		fmt.Printf("Estimated:      %d min\n", t.EstimatedMins)
		if len(t.Prerequisites) > 0 {
			fmt.Printf("Prerequisites:  %s\n", strings.Join(t.Prerequisites, ", "))
		}
		fmt.Printf("Lesson levels:  %s\n", lessonLevels(cat, t.ID))
		return nil
	},
}

// lessonLevels reports which learner levels have lesson content for a topic.
func lessonLevels(cat *catalog.Catalog, topicID string) string {
	var levels []string
	for _, lvl := range []string{"beginner", "intermediate", "advanced"} {
		if _, ok := cat.Sections(topicID, lvl); ok {
			levels = append(levels, lvl)
		}
	}
	if len(levels) == 0 {
		return "(none)"
	}
	return strings.Join(levels, ", ")
}

func init() {
	topicCmd.AddCommand(topicListCmd)
	topicCmd.AddCommand(topicShowCmd)
}
