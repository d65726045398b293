package cmd

import (
	"fmt"

	"github.com/quizbuddy/quizbuddy/internal/session"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past quiz attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		attempts, err := st.History(ctx, limit)
		if err != nil {
			return fmt.Errorf("load history: %w", err)
		}
		if len(attempts) == 0 {
			fmt.Println("No attempts yet.")
			return nil
		}

		for _, att := range attempts {
			fmt.Printf("%s  %-40s  %d/%d (%d%%)\n",
				att.CompletedAt.Format("2006-01-02 15:04"),
				att.QuizTitle,
				att.Score,
				att.TotalQuestions,
				session.Percent(att.Score, att.TotalQuestions),
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of attempts to show")
}
