package cmd

import (
	"fmt"
	"os"

	"github.com/quizbuddy/quizbuddy/internal/app"
	"github.com/quizbuddy/quizbuddy/internal/content"
	"github.com/quizbuddy/quizbuddy/internal/messenger"
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract <url>",
	Short: "Extract a page's quizzable content",
	Long:  "Runs the same extraction pipeline the TUI uses and prints the simplified markup, for checking what a quiz would be generated from.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		bus := messenger.New()
		defer bus.Close()
		fetcher := content.NewFetcher()
		if err := app.RegisterWorkers(bus, fetcher, nil); err != nil {
			return err
		}

		reply, err := bus.Request(ctx, messenger.ActionExtractPage, args[0])
		if err != nil {
			return fmt.Errorf("extract: %w", err)
		}
		scan := reply.(*content.PageScan)

		if linksOnly, _ := cmd.Flags().GetBool("links"); linksOnly {
			if len(scan.PDFLinks) == 0 && len(scan.WordLinks) == 0 {
				fmt.Fprintln(os.Stderr, "No document links found.")
				return nil
			}
			for _, link := range scan.PDFLinks {
				fmt.Printf("pdf\t%s\t%s\n", link.Href, link.Text)
			}
			// Word documents are listed for visibility but cannot feed
			// quiz generation.
			for _, link := range scan.WordLinks {
				fmt.Printf("word\t%s\t%s\n", link.Href, link.Text)
			}
			return nil
		}

		if scan.Fragment.Empty() {
			fmt.Fprintf(os.Stderr, "No quizzable content on %s (%d PDF links; try --links)\n",
				args[0], len(scan.PDFLinks))
			return nil
		}

		fmt.Fprintf(os.Stderr, "# %s\n", scan.Title)
		fmt.Println(scan.Fragment.Body)
		return nil
	},
}

func init() {
	extractCmd.Flags().Bool("links", false, "List linked PDFs instead of page content")
}
