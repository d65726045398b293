package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/quizbuddy/quizbuddy/internal/content"
	"github.com/quizbuddy/quizbuddy/internal/quiz"
	"github.com/spf13/cobra"
)

var quizCmd = &cobra.Command{
	Use:   "quiz <url>",
	Short: "Generate a quiz from a page and print it",
	Long:  "Extracts the page's content, generates a quiz from it, and prints the questions with their answers marked. Use the bare `quizbuddy` command to take a quiz interactively.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		svc, _, err := buildService(ctx, cmd, st)
		if err != nil {
			return err
		}

		fetcher := content.NewFetcher()
		scan, err := fetcher.Scan(ctx, args[0])
		if err != nil {
			return fmt.Errorf("read page: %w", err)
		}

		frag := scan.Fragment
		if frag.Empty() {
			if len(scan.PDFLinks) == 0 {
				return fmt.Errorf("nothing quizzable on %s", args[0])
			}
			link := scan.PDFLinks[0]
			fmt.Fprintf(os.Stderr, "No readable page content; using linked PDF %s\n", link.Href)
			frag = quiz.Fragment{Kind: quiz.ContentPDF, Locator: link.Href, Label: link.Text}
		}

		qz, err := svc.CreateQuiz(ctx, frag)
		if err != nil {
			return fmt.Errorf("create quiz: %w", err)
		}
		questions, err := svc.Questions(ctx, qz.ID)
		if err != nil {
			return fmt.Errorf("load questions: %w", err)
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(struct {
				Quiz      *quiz.Quiz      `json:"quiz"`
				Questions []quiz.Question `json:"questions"`
			}{qz, questions})
		}

		printQuiz(qz, questions)
		return nil
	},
}

func init() {
	quizCmd.Flags().Bool("json", false, "Print the quiz as JSON")
}

func printQuiz(qz *quiz.Quiz, questions []quiz.Question) {
	fmt.Printf("%s\n\n", qz.Name)
	labels := "ABCDEFGH"
	for i, q := range questions {
		fmt.Printf("%d. %s\n", i+1, q.Text)
		for j, a := range q.Answers {
			label := "?"
			if j < len(labels) {
				label = string(labels[j])
			}
			mark := " "
			if a.IsCorrect {
				mark = "*"
			}
			fmt.Printf("  %s %s) %s\n", mark, label, a.Text)
		}
		fmt.Println()
	}
	fmt.Println("(* marks the correct answer)")
}
